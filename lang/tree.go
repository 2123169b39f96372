package lang

// Kind labels a parse-tree node with the grammar rule that produced it.
type Kind int

const (
	KindProgram Kind = iota
	KindStatement
	KindPrintStmt
	KindLetStmt
	KindIfStmt
	KindWhileStmt
	KindBreakStmt
	KindContinueStmt
	KindFnStmt
	KindCallStmt
	KindReturnStmt
	KindBlock
	KindComparison
	KindExpr
	KindTerm
	KindNumber
	KindString
	KindIdent
	KindCallExpr
	KindArgList
	KindParamList
	KindOp
)

// String returns the grammar rule name for the kind.
func (k Kind) String() string {
	switch k {
	case KindProgram:
		return "Program"
	case KindStatement:
		return "Statement"
	case KindPrintStmt:
		return "PrintStmt"
	case KindLetStmt:
		return "LetStmt"
	case KindIfStmt:
		return "IfStmt"
	case KindWhileStmt:
		return "WhileStmt"
	case KindBreakStmt:
		return "BreakStmt"
	case KindContinueStmt:
		return "ContinueStmt"
	case KindFnStmt:
		return "FnStmt"
	case KindCallStmt:
		return "CallStmt"
	case KindReturnStmt:
		return "ReturnStmt"
	case KindBlock:
		return "Block"
	case KindComparison:
		return "Comparison"
	case KindExpr:
		return "Expr"
	case KindTerm:
		return "Term"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindIdent:
		return "Ident"
	case KindCallExpr:
		return "CallExpr"
	case KindArgList:
		return "ArgList"
	case KindParamList:
		return "ParamList"
	case KindOp:
		return "Op"
	default:
		return "Unknown"
	}
}

// Position locates a node in the original source.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Node is a generic, rule-labeled parse-tree node. Leaf nodes (Number,
// String, Ident, Op) carry their token text; interior nodes carry the
// child nodes their rule matched, in grammar order.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node
	Pos      Position
}

// Tree is the parse tree for one program, paired with its source text
// for error reporting.
type Tree struct {
	Root   *Node
	Source string
}

// child returns the i-th child, or nil if out of range.
func (n *Node) child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}

	return n.Children[i]
}
