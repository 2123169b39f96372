package lang

import (
	"testing"
)

// mustBuild parses and builds a program, failing the test on syntax
// errors.
func mustBuild(t *testing.T, input string) []Stmt {
	t.Helper()

	tree, err := ParseString(t.Context(), input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return Build(tree)
}

func TestBuild_Empty(t *testing.T) {
	if stmts := Build(nil); stmts != nil {
		t.Errorf("expected nil statements, got %v", stmts)
	}

	if stmts := mustBuild(t, "# comments only\n"); len(stmts) != 0 {
		t.Errorf("expected no statements, got %d", len(stmts))
	}
}

func TestBuild_Precedence(t *testing.T) {
	stmts := mustBuild(t, `let x = 1 + 2 * 3`)

	let, ok := stmts[0].(*LetStmt)
	if !ok {
		t.Fatalf("expected *LetStmt, got %T", stmts[0])
	}

	add, ok := let.Value.(*BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("expected addition at root, got %#v", let.Value)
	}

	if lit, ok := add.Left.(*IntLit); !ok || lit.Value != 1 {
		t.Errorf("expected left operand 1, got %#v", add.Left)
	}

	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Op != OpMul {
		t.Fatalf("expected multiplication on right, got %#v", add.Right)
	}
}

func TestBuild_LeftAssociative(t *testing.T) {
	stmts := mustBuild(t, `print(20 - 5 - 3)`)

	print, ok := stmts[0].(*PrintStmt)
	if !ok {
		t.Fatalf("expected *PrintStmt, got %T", stmts[0])
	}

	// (20 - 5) - 3, not 20 - (5 - 3)
	outer, ok := print.Value.(*BinaryExpr)
	if !ok || outer.Op != OpSub {
		t.Fatalf("expected subtraction at root, got %#v", print.Value)
	}

	if lit, ok := outer.Right.(*IntLit); !ok || lit.Value != 3 {
		t.Errorf("expected right operand 3, got %#v", outer.Right)
	}

	inner, ok := outer.Left.(*BinaryExpr)
	if !ok || inner.Op != OpSub {
		t.Fatalf("expected nested subtraction on left, got %#v", outer.Left)
	}

	if lit, ok := inner.Left.(*IntLit); !ok || lit.Value != 20 {
		t.Errorf("expected left operand 20, got %#v", inner.Left)
	}
}

func TestBuild_Comparison(t *testing.T) {
	stmts := mustBuild(t, `let ok = x + 1 >= limit`)

	let := stmts[0].(*LetStmt)

	cmp, ok := let.Value.(*BinaryExpr)
	if !ok || cmp.Op != OpGreaterEq {
		t.Fatalf("expected >= at root, got %#v", let.Value)
	}

	if _, ok := cmp.Left.(*BinaryExpr); !ok {
		t.Errorf("expected additive left operand, got %#v", cmp.Left)
	}

	if ref, ok := cmp.Right.(*VarRef); !ok || ref.Name != "limit" {
		t.Errorf("expected VarRef limit, got %#v", cmp.Right)
	}
}

func TestBuild_Function(t *testing.T) {
	stmts := mustBuild(t, "fn add(a, b) {\n  return a + b\n}\nadd(1, 2)")

	fn, ok := stmts[0].(*FnStmt)
	if !ok {
		t.Fatalf("expected *FnStmt, got %T", stmts[0])
	}

	if fn.Name != "add" {
		t.Errorf("expected name add, got %q", fn.Name)
	}

	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Errorf("unexpected params %v", fn.Params)
	}

	if len(fn.Body) != 1 {
		t.Fatalf("expected 1 body statement, got %d", len(fn.Body))
	}

	if _, ok := fn.Body[0].(*ReturnStmt); !ok {
		t.Errorf("expected *ReturnStmt body, got %T", fn.Body[0])
	}

	call, ok := stmts[1].(*CallStmt)
	if !ok {
		t.Fatalf("expected *CallStmt, got %T", stmts[1])
	}

	if call.Name != "add" || len(call.Args) != 2 {
		t.Errorf("unexpected call %q with %d args", call.Name, len(call.Args))
	}
}

func TestBuild_IfElse(t *testing.T) {
	stmts := mustBuild(t,
		`if n > 0 { print("pos") } else { print("neg") }`)

	cond, ok := stmts[0].(*IfStmt)
	if !ok {
		t.Fatalf("expected *IfStmt, got %T", stmts[0])
	}

	if len(cond.Then) != 1 || len(cond.Else) != 1 {
		t.Errorf("expected 1 statement per branch, got then=%d else=%d",
			len(cond.Then), len(cond.Else))
	}

	bare := mustBuild(t, `if n > 0 { print("pos") }`)
	if iff := bare[0].(*IfStmt); iff.Else != nil {
		t.Errorf("expected nil else branch, got %v", iff.Else)
	}
}

func TestBuild_CallExprNested(t *testing.T) {
	stmts := mustBuild(t, `print(add(mul(2, 3), 4))`)

	print := stmts[0].(*PrintStmt)

	outer, ok := print.Value.(*CallExpr)
	if !ok || outer.Name != "add" {
		t.Fatalf("expected call to add, got %#v", print.Value)
	}

	inner, ok := outer.Args[0].(*CallExpr)
	if !ok || inner.Name != "mul" {
		t.Fatalf("expected nested call to mul, got %#v", outer.Args[0])
	}

	if len(inner.Args) != 2 {
		t.Errorf("expected 2 args to mul, got %d", len(inner.Args))
	}
}
