package lang

// Expr is an expression node in the typed AST. The set of implementations
// is closed: IntLit, StrLit, VarRef, CallExpr, and BinaryExpr.
type Expr interface {
	exprNode()
}

// IntLit is an integer literal.
type IntLit struct {
	Value int64
}

// StrLit is a string literal. Value holds the text between the quote
// delimiters, verbatim.
type StrLit struct {
	Value string
}

// VarRef references a variable by name.
type VarRef struct {
	Name string
}

// CallExpr invokes a function for its value.
type CallExpr struct {
	Name string
	Args []Expr
}

// BinaryExpr applies an arithmetic or comparison operator to two
// sub-expressions.
type BinaryExpr struct {
	Left  Expr
	Op    Op
	Right Expr
}

func (*IntLit) exprNode()     {}
func (*StrLit) exprNode()     {}
func (*VarRef) exprNode()     {}
func (*CallExpr) exprNode()   {}
func (*BinaryExpr) exprNode() {}

// Op enumerates the binary operators.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpGreater
	OpLess
	OpGreaterEq
	OpLessEq
	OpEqual
	OpNotEqual
)

// String returns the operator's source token.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpGreater:
		return ">"
	case OpLess:
		return "<"
	case OpGreaterEq:
		return ">="
	case OpLessEq:
		return "<="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return "?"
	}
}

// Stmt is a statement node in the typed AST. The set of implementations
// is closed: PrintStmt, LetStmt, IfStmt, WhileStmt, BreakStmt,
// ContinueStmt, FnStmt, CallStmt, and ReturnStmt.
type Stmt interface {
	stmtNode()
}

// PrintStmt evaluates an expression and emits it as one line of output.
type PrintStmt struct {
	Value Expr
}

// LetStmt evaluates an expression and binds the result to a variable in
// the current Context.
type LetStmt struct {
	Name  string
	Value Expr
}

// IfStmt executes Then when its condition is truthy, or Else (which may
// be nil) otherwise.
type IfStmt struct {
	Condition Expr
	Then      []Stmt
	Else      []Stmt
}

// WhileStmt repeats Body while its condition is not exactly "0".
type WhileStmt struct {
	Condition Expr
	Body      []Stmt
}

// BreakStmt exits the nearest enclosing loop.
type BreakStmt struct{}

// ContinueStmt skips to the next iteration of the nearest enclosing loop.
type ContinueStmt struct{}

// FnStmt registers a function definition in the current Context.
type FnStmt struct {
	Name   string
	Params []string
	Body   []Stmt
}

// CallStmt invokes a function for effect, discarding any result.
type CallStmt struct {
	Name string
	Args []Expr
}

// ReturnStmt evaluates an expression and signals a return carrying the
// result.
type ReturnStmt struct {
	Value Expr
}

func (*PrintStmt) stmtNode()    {}
func (*LetStmt) stmtNode()      {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*FnStmt) stmtNode()       {}
func (*CallStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode()   {}
