package repl

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/dash/lang"
)

// replCommands are the available colon-prefixed commands.
var replCommands = []string{"clear", "fns", "help", "quit", "reset", "vars"}

// langKeywords are always offered as completions in script input.
var langKeywords = []string{
	"break", "continue", "else", "fn", "if", "let", "print", "return", "while",
}

// isWordRune reports whether r can appear in a completable word.
// Identifiers are letters, digits, and underscores; everything else is a
// boundary.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// wordBounds returns the word at the cursor position and its byte
// boundaries within input. Returns an empty word when the cursor sits on
// a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Walk backward from cursor to find word start.
	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if !isWordRune(r) {
			break
		}

		start -= size
	}

	// Walk forward from cursor to find word end.
	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if !isWordRune(r) {
			break
		}

		end += size
	}

	word = input[start:end]

	return word, start, end
}

// candidates returns the completion vocabulary for the given input: the
// colon commands when the line is a command, otherwise the language
// keywords plus every variable and function name in the session Context.
func candidates(input string, wordStart int, ctx *lang.Context) []string {
	if wordStart == 1 && strings.HasPrefix(input, ":") {
		return replCommands
	}

	names := slices.Clone(langKeywords)

	for name := range ctx.Variables {
		names = append(names, name)
	}

	for name := range ctx.Functions {
		names = append(names, name)
	}

	slices.Sort(names)

	return slices.Compact(names)
}

// computeMatches finds fuzzy completion candidates for the word at the
// cursor.
func (m *model) computeMatches() (fuzzy.Matches, []string, int, int) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, start, end := wordBounds(input, cursor)
	if word == "" {
		return nil, nil, start, end
	}

	pool := candidates(input, start, m.context)

	return fuzzy.Find(word, pool), pool, start, end
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is true and the typed word already equals the sole
// remaining candidate, the completion is confirmed and dismissed.
// autoConfirm should be false for deletions and cursor navigation so
// that the user can freely edit without unexpected completions.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	candidate := m.matches[0].Str
	word := m.input.Value()[m.wordStart:m.wordEnd]

	if word == candidate {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// replaceCurrentWord replaces the current word boundaries in the input
// with the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	newInput := input[:m.wordStart] + replacement + input[m.wordEnd:]
	newCursor := m.wordStart + len(replacement)

	m.input.SetValue(newInput)
	m.input.SetCursor(newCursor)

	m.wordEnd = newCursor
}

// renderCandidateBar renders the horizontal completion bar, truncated to
// the terminal width. The selected candidate is highlighted only while
// tab-cycling.
func renderCandidateBar(
	matches fuzzy.Matches,
	selected int,
	tabActive bool,
	width int,
) string {
	var b strings.Builder

	used := 0

	for i, match := range matches {
		cell := match.Str

		cellWidth := lipgloss.Width(cell) + 2
		if used+cellWidth > width && i > 0 {
			b.WriteString(hintStyle.Render("…"))

			break
		}

		if tabActive && i == selected {
			b.WriteString(selectedStyle.Render(" " + cell + " "))
		} else {
			b.WriteString(suggestionStyle.Render(" " + cell + " "))
		}

		used += cellWidth
	}

	return b.String()
}
