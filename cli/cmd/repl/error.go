package repl

import "errors"

// ErrOutOfBounds is returned for history lookups outside the stored range.
var ErrOutOfBounds = errors.New("history index out of bounds")
