package lang

import "fmt"

// ToNative converts a statement list into plain maps and slices fit for
// JSON or YAML encoding. Statement and expression nodes become maps
// keyed by a "kind" discriminator.
func ToNative(stmts []Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = stmtNative(s)
	}

	return out
}

func stmtNative(stmt Stmt) map[string]any {
	switch s := stmt.(type) {
	case *PrintStmt:
		return map[string]any{
			"kind":  "print",
			"value": exprNative(s.Value),
		}

	case *LetStmt:
		return map[string]any{
			"kind":  "let",
			"name":  s.Name,
			"value": exprNative(s.Value),
		}

	case *IfStmt:
		m := map[string]any{
			"kind":      "if",
			"condition": exprNative(s.Condition),
			"then":      ToNative(s.Then),
		}
		if s.Else != nil {
			m["else"] = ToNative(s.Else)
		}

		return m

	case *WhileStmt:
		return map[string]any{
			"kind":      "while",
			"condition": exprNative(s.Condition),
			"body":      ToNative(s.Body),
		}

	case *BreakStmt:
		return map[string]any{"kind": "break"}

	case *ContinueStmt:
		return map[string]any{"kind": "continue"}

	case *FnStmt:
		return map[string]any{
			"kind":   "fn",
			"name":   s.Name,
			"params": s.Params,
			"body":   ToNative(s.Body),
		}

	case *CallStmt:
		return map[string]any{
			"kind": "call",
			"name": s.Name,
			"args": exprsNative(s.Args),
		}

	case *ReturnStmt:
		return map[string]any{
			"kind":  "return",
			"value": exprNative(s.Value),
		}

	default:
		panic(fmt.Sprintf("lang: unknown statement type %T", stmt))
	}
}

func exprsNative(exprs []Expr) []any {
	out := make([]any, len(exprs))
	for i, x := range exprs {
		out[i] = exprNative(x)
	}

	return out
}

func exprNative(expr Expr) map[string]any {
	switch x := expr.(type) {
	case *IntLit:
		return map[string]any{"kind": "int", "value": x.Value}

	case *StrLit:
		return map[string]any{"kind": "string", "value": x.Value}

	case *VarRef:
		return map[string]any{"kind": "var", "name": x.Name}

	case *CallExpr:
		return map[string]any{
			"kind": "call",
			"name": x.Name,
			"args": exprsNative(x.Args),
		}

	case *BinaryExpr:
		return map[string]any{
			"kind":  "binary",
			"op":    x.Op.String(),
			"left":  exprNative(x.Left),
			"right": exprNative(x.Right),
		}

	default:
		panic(fmt.Sprintf("lang: unknown expression type %T", expr))
	}
}
