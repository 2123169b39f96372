package lang

import (
	"testing"
)

func TestToNative_Statements(t *testing.T) {
	stmts := mustBuild(t, `fn add(a, b) {
  return a + b
}
let x = add(1, 2)
if x > 2 { print(x) } else { print("small") }`)

	native := ToNative(stmts)
	if len(native) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(native))
	}

	fn := native[0].(map[string]any)
	if fn["kind"] != "fn" || fn["name"] != "add" {
		t.Errorf("unexpected fn entry %v", fn)
	}

	params := fn["params"].([]string)
	if len(params) != 2 || params[0] != "a" {
		t.Errorf("unexpected params %v", params)
	}

	let := native[1].(map[string]any)
	if let["kind"] != "let" || let["name"] != "x" {
		t.Errorf("unexpected let entry %v", let)
	}

	call := let["value"].(map[string]any)
	if call["kind"] != "call" || call["name"] != "add" {
		t.Errorf("unexpected call value %v", call)
	}

	iff := native[2].(map[string]any)
	if iff["kind"] != "if" {
		t.Errorf("unexpected if entry %v", iff)
	}

	cond := iff["condition"].(map[string]any)
	if cond["kind"] != "binary" || cond["op"] != ">" {
		t.Errorf("unexpected condition %v", cond)
	}

	if _, ok := iff["else"]; !ok {
		t.Errorf("expected else branch in %v", iff)
	}
}

func TestToNative_OmitsEmptyElse(t *testing.T) {
	stmts := mustBuild(t, `if 1 { print(1) }`)

	iff := ToNative(stmts)[0].(map[string]any)
	if _, ok := iff["else"]; ok {
		t.Errorf("expected no else key in %v", iff)
	}
}
