package repl

import (
	"errors"
	"path/filepath"
	"slices"
	"testing"
)

func TestHistory_WriteAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.dash")

	h := NewHistory(path)
	for _, entry := range []string{"let x = 1", "print(x)", "let x = 2"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	// A fresh instance must see the persisted entries.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	want := []string{"let x = 1", "print(x)", "let x = 2"}
	if !slices.Equal(reloaded.Entries(), want) {
		t.Errorf("expected %v, got %v", want, reloaded.Entries())
	}
}

func TestHistory_SkipsConsecutiveDuplicates(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.dash"))

	_, _ = h.Write("print(1)")
	_, _ = h.Write("print(1)")

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", h.Len())
	}
}

func TestHistory_DeduplicatesToNewest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.dash")

	h := NewHistory(path)
	_, _ = h.Write("let x = 1")
	_, _ = h.Write("print(x)")
	_, _ = h.Write("let x = 1")

	want := []string{"print(x)", "let x = 1"}
	if !slices.Equal(h.Entries(), want) {
		t.Errorf("expected %v, got %v", want, h.Entries())
	}

	// The rewritten file must match.
	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	if !slices.Equal(reloaded.Entries(), want) {
		t.Errorf("expected persisted %v, got %v", want, reloaded.Entries())
	}
}

func TestHistory_MissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "nope.dash"))
	if err := h.Load(); err != nil {
		t.Errorf("missing file should not error, got %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", h.Len())
	}
}

func TestHistory_GetLineBounds(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "history.dash"))
	_, _ = h.Write("print(1)")

	if _, err := h.GetLine(1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}

	line, err := h.GetLine(0)
	if err != nil || line != "print(1)" {
		t.Errorf("expected print(1), got %q (%v)", line, err)
	}
}
