package lang

import (
	"fmt"
	"strconv"
)

// Build converts a parse tree into a typed statement list. The tree is
// trusted: it came from ParseString, so any shape the grammar cannot
// produce is an internal bug and panics.
func Build(tree *Tree) []Stmt {
	if tree == nil || tree.Root == nil {
		return nil
	}

	return buildStmts(tree.Root.Children)
}

func buildStmts(nodes []*Node) []Stmt {
	stmts := make([]Stmt, len(nodes))
	for i, n := range nodes {
		stmts[i] = buildStmt(n)
	}

	return stmts
}

func buildStmt(n *Node) Stmt {
	if n.Kind == KindStatement {
		n = n.child(0)
	}

	switch n.Kind {
	case KindPrintStmt:
		return &PrintStmt{Value: buildExpr(n.child(0))}

	case KindLetStmt:
		return &LetStmt{
			Name:  n.child(0).Text,
			Value: buildExpr(n.child(1)),
		}

	case KindIfStmt:
		stmt := &IfStmt{
			Condition: buildExpr(n.child(0)),
			Then:      buildStmts(n.child(1).Children),
		}
		if alt := n.child(2); alt != nil {
			stmt.Else = buildStmts(alt.Children)
		}

		return stmt

	case KindWhileStmt:
		return &WhileStmt{
			Condition: buildExpr(n.child(0)),
			Body:      buildStmts(n.child(1).Children),
		}

	case KindBreakStmt:
		return &BreakStmt{}

	case KindContinueStmt:
		return &ContinueStmt{}

	case KindFnStmt:
		params := n.child(1)

		names := make([]string, len(params.Children))
		for i, c := range params.Children {
			names[i] = c.Text
		}

		return &FnStmt{
			Name:   n.child(0).Text,
			Params: names,
			Body:   buildStmts(n.child(2).Children),
		}

	case KindCallStmt:
		call := n.child(0)

		return &CallStmt{
			Name: call.child(0).Text,
			Args: buildExprs(call.child(1).Children),
		}

	case KindReturnStmt:
		return &ReturnStmt{Value: buildExpr(n.child(0))}

	default:
		panic(fmt.Sprintf("lang: unexpected %s node in statement position", n.Kind))
	}
}

func buildExprs(nodes []*Node) []Expr {
	exprs := make([]Expr, len(nodes))
	for i, n := range nodes {
		exprs[i] = buildExpr(n)
	}

	return exprs
}

func buildExpr(n *Node) Expr {
	switch n.Kind {
	case KindNumber:
		value, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			panic(fmt.Sprintf("lang: invalid integer literal %q", n.Text))
		}

		return &IntLit{Value: value}

	case KindString:
		return &StrLit{Value: n.Text}

	case KindIdent:
		return &VarRef{Name: n.Text}

	case KindCallExpr:
		return &CallExpr{
			Name: n.child(0).Text,
			Args: buildExprs(n.child(1).Children),
		}

	case KindComparison:
		return &BinaryExpr{
			Left:  buildExpr(n.child(0)),
			Op:    buildOp(n.child(1)),
			Right: buildExpr(n.child(2)),
		}

	case KindExpr, KindTerm:
		// Children alternate operand, operator, operand. Folding here
		// makes the chain left-associative.
		left := buildExpr(n.child(0))
		for i := 1; i+1 < len(n.Children); i += 2 {
			left = &BinaryExpr{
				Left:  left,
				Op:    buildOp(n.child(i)),
				Right: buildExpr(n.child(i + 1)),
			}
		}

		return left

	default:
		panic(fmt.Sprintf("lang: unexpected %s node in expression position", n.Kind))
	}
}

func buildOp(n *Node) Op {
	switch n.Text {
	case "+":
		return OpAdd
	case "-":
		return OpSub
	case "*":
		return OpMul
	case "/":
		return OpDiv
	case ">":
		return OpGreater
	case "<":
		return OpLess
	case ">=":
		return OpGreaterEq
	case "<=":
		return OpLessEq
	case "==":
		return OpEqual
	case "!=":
		return OpNotEqual
	default:
		panic(fmt.Sprintf("lang: unknown operator %q", n.Text))
	}
}
