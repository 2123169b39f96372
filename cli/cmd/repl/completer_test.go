package repl

import (
	"slices"
	"testing"

	"github.com/ardnew/dash/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{name: "empty", input: "", cursor: 0, word: "", start: 0, end: 0},
		{name: "mid word", input: "print(count)", cursor: 8, word: "count", start: 6, end: 11},
		{name: "start of line", input: "let", cursor: 2, word: "let", start: 0, end: 3},
		{name: "after boundary", input: "x + ", cursor: 4, word: "", start: 4, end: 4},
		{name: "command word", input: ":he", cursor: 3, word: "he", start: 1, end: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf("expected (%q, %d, %d), got (%q, %d, %d)",
					tt.word, tt.start, tt.end, word, start, end)
			}
		})
	}
}

func TestCandidates_Commands(t *testing.T) {
	got := candidates(":he", 1, lang.NewContext())
	if !slices.Equal(got, replCommands) {
		t.Errorf("expected command candidates, got %v", got)
	}
}

func TestCandidates_SessionNames(t *testing.T) {
	ctx := lang.NewContext()
	ctx.Variables["total"] = "10"
	ctx.Functions["double"] = lang.Function{Params: []string{"x"}}

	got := candidates("to", 0, ctx)

	for _, want := range []string{"total", "double", "while", "print"} {
		if !slices.Contains(got, want) {
			t.Errorf("candidates missing %q: %v", want, got)
		}
	}

	if !slices.IsSorted(got) {
		t.Errorf("expected sorted candidates, got %v", got)
	}
}
