package lang

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ardnew/dash/log"
)

// options configures parsing and evaluation.
type options struct {
	out    io.Writer
	logger log.Logger
}

// Option configures ParseString, NewEvaluator, and Run.
type Option func(*options)

// WithOutput redirects print statement output. The default is stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogger sets the logger used for trace instrumentation.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func makeOptions(opts ...Option) options {
	o := options{out: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Run parses and executes a complete program in a fresh Context.
//
// Malformed source is reported on the output writer and returns nil;
// a syntax error is not a process failure. Runtime errors panic with a
// [*Error] and are deliberately not recovered here.
func Run(ctx context.Context, source string, opts ...Option) error {
	o := makeOptions(opts...)

	tree, err := ParseString(ctx, source, opts...)
	if err != nil {
		fmt.Fprintln(o.out, err)

		return nil
	}

	eval := NewEvaluator(opts...)
	eval.Execute(Build(tree), NewContext())

	return nil
}
