package lang

// Function is a user-defined function: parameter names and the body to
// execute when called.
type Function struct {
	Params []string
	Body   []Stmt
}

// Context holds the mutable interpreter state: variable bindings and
// function definitions. Every value is a string.
//
// A Context is flat. Function calls do not extend it; they execute in a
// fresh Context holding only the bound parameters, so callees see no
// caller variables and, notably, no function definitions either.
type Context struct {
	Variables map[string]string
	Functions map[string]Function
}

// NewContext returns an empty, ready-to-use Context.
func NewContext() *Context {
	return &Context{
		Variables: make(map[string]string),
		Functions: make(map[string]Function),
	}
}
