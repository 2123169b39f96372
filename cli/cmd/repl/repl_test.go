package repl

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/dash/lang"
	"github.com/ardnew/dash/log"
)

func testModel(t *testing.T) model {
	t.Helper()

	h := NewHistory(filepath.Join(t.TempDir(), "history.dash"))

	return newModel(t.Context(), h, log.Logger{})
}

func TestEval_StatePersistsAcrossSubmissions(t *testing.T) {
	m := testModel(t)

	if _, err := m.eval("let x = 41"); err != nil {
		t.Fatalf("eval error: %v", err)
	}

	output, err := m.eval("print(x + 1)")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if output != "42\n" {
		t.Errorf("expected %q, got %q", "42\n", output)
	}
}

func TestEval_FunctionsPersist(t *testing.T) {
	m := testModel(t)

	if _, err := m.eval("fn twice(n) { return n * 2 }"); err != nil {
		t.Fatalf("eval error: %v", err)
	}

	output, err := m.eval("print(twice(21))")
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}

	if output != "42\n" {
		t.Errorf("expected %q, got %q", "42\n", output)
	}
}

func TestEval_RecoversRuntimeError(t *testing.T) {
	m := testModel(t)

	_, _ = m.eval("let x = 1")

	_, err := m.eval("print(1 / 0)")
	if !errors.Is(err, lang.ErrDivisionByZero) {
		t.Fatalf("expected division by zero, got %v", err)
	}

	// The session survives and keeps its bindings.
	output, err := m.eval("print(x)")
	if err != nil {
		t.Fatalf("eval error after recovery: %v", err)
	}

	if output != "1\n" {
		t.Errorf("expected %q, got %q", "1\n", output)
	}
}

func TestEval_ParseErrorReturned(t *testing.T) {
	m := testModel(t)

	_, err := m.eval("let x = (1)")

	perr := &lang.ParseError{}
	if !errors.As(err, &perr) {
		t.Errorf("expected *lang.ParseError, got %v", err)
	}
}

func TestFormatVars(t *testing.T) {
	m := testModel(t)

	_, _ = m.eval("let greeting = \"hi\"")
	_, _ = m.eval("let n = 3")

	text := m.formatVars()

	if !strings.Contains(text, "greeting") || !strings.Contains(text, `"hi"`) {
		t.Errorf("vars listing missing greeting: %q", text)
	}

	// Sorted: greeting before n.
	if strings.Index(text, "greeting") > strings.Index(text, "n =") {
		t.Errorf("expected sorted listing, got %q", text)
	}
}

func TestFormatFns(t *testing.T) {
	m := testModel(t)

	_, _ = m.eval("fn add(a, b) { return a + b }")

	if text := m.formatFns(); !strings.Contains(text, "add(a, b)") {
		t.Errorf("fns listing missing signature: %q", text)
	}
}
