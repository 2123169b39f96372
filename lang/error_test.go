package lang

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := ErrUndefinedVariable.With(slog.String("name", "x"))

	if !errors.Is(err, ErrUndefinedVariable) {
		t.Errorf("attributed copy should match its sentinel")
	}

	if errors.Is(err, ErrUndefinedFunction) {
		t.Errorf("sentinel match should require the same base message")
	}
}

func TestError_WrapUnwrap(t *testing.T) {
	err := ErrReadInput.Wrap(io.ErrUnexpectedEOF)

	if !errors.Is(err, ErrReadInput) {
		t.Errorf("wrapped copy should match its sentinel")
	}

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("wrapped cause should be reachable via Unwrap")
	}
}

func TestError_Message(t *testing.T) {
	err := ErrArityMismatch.With(
		slog.String("function", "f"),
		slog.Int("want", 2),
	)

	text := err.Error()
	for _, part := range []string{"function arity mismatch", "function=f", "want=2"} {
		if !strings.Contains(text, part) {
			t.Errorf("error %q missing %q", text, part)
		}
	}
}

func TestWrapError_PassThrough(t *testing.T) {
	if got := WrapError(ErrDivisionByZero); got != ErrDivisionByZero {
		t.Errorf("wrapping an *Error should return it unchanged")
	}
}
