package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestNormalizeNewlines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lf untouched", input: "a\nb\n", want: "a\nb\n"},
		{name: "crlf", input: "a\r\nb\r\n", want: "a\nb\n"},
		{name: "bare cr", input: "a\rb\r", want: "a\nb\n"},
		{name: "mixed", input: "a\r\nb\rc\n", want: "a\nb\nc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeNewlines(tt.input); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestReadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.dash")
	if err := os.WriteFile(path, []byte("print(1)\r\nprint(2)\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	source, err := readScript(path)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	if source != "print(1)\nprint(2)\n" {
		t.Errorf("unexpected source %q", source)
	}
}

func TestReadScript_Missing(t *testing.T) {
	_, err := readScript(filepath.Join(t.TempDir(), "nope.dash"))
	if !errors.Is(err, ErrReadScript) {
		t.Errorf("expected ErrReadScript, got %v", err)
	}
}

// testContext builds a context carrying a kong.Context whose stdout is
// the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()

	var (
		cli struct{}
		buf bytes.Buffer
	)

	parser, err := kong.New(&cli, kong.Writers(&buf, &buf))
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(t.Context(), ktx), &buf
}

func TestRun_ScriptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.dash")
	src := "let x = 2\nprint(x * 21)\n"

	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, buf := testContext(t)

	cmd := &Run{Script: path}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if got := buf.String(); got != "42\n" {
		t.Errorf("expected %q, got %q", "42\n", got)
	}
}

func TestRun_DefaultScript(t *testing.T) {
	ctx, buf := testContext(t)

	cmd := &Run{}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if got := buf.String(); got != "0\n1\n2\n3\n4\n" {
		t.Errorf("unexpected demo output %q", got)
	}
}

func TestRun_SyntaxErrorReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dash")
	if err := os.WriteFile(path, []byte("let x = (1)\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, buf := testContext(t)

	// Malformed source is reported, not returned as an error.
	cmd := &Run{Script: path}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("run error: %v", err)
	}

	if !strings.Contains(buf.String(), "parse error") {
		t.Errorf("expected parse error report, got %q", buf.String())
	}
}

func TestAst_Formats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.dash")
	if err := os.WriteFile(path, []byte("let x = 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		format string
		want   []string
	}{
		{format: "yaml", want: []string{"kind: let", "name: x"}},
		{format: "json", want: []string{`"kind": "let"`, `"name": "x"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			ctx, buf := testContext(t)

			cmd := &Ast{Script: path, Format: tt.format}
			if err := cmd.Run(ctx); err != nil {
				t.Fatalf("ast error: %v", err)
			}

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}
}

func TestAst_SyntaxError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dash")
	if err := os.WriteFile(path, []byte("print 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, _ := testContext(t)

	cmd := &Ast{Script: path, Format: "yaml"}
	if err := cmd.Run(ctx); err == nil {
		t.Errorf("expected parse error, got none")
	}
}
