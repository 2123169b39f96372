// Package repl implements the interactive dash session.
//
// Input lines are parsed and executed as complete statements against a
// Context that persists across submissions, so variables and functions
// accumulate over the session. Runtime failures that would abort a
// script are recovered here and reported inline, leaving the session
// state intact.
package repl

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/dash/lang"
	"github.com/ardnew/dash/log"
)

const prompt = "➜ "

func helpMessage() string {
	return `
Commands (prefix with ':'):

  :help     Print this cruft
  :vars     List session variables
  :fns      List session functions
  :reset    Discard all session state
  :clear    Clear screen
  :quit     Exit

Usage:
  Type a statement to execute it (print(x) to inspect a value)
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Esc to dismiss the candidates
  Use Up/Down arrows for history navigation
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// formatInput formats the echo line with prompt and input styled.
func formatInput(input string) string {
	return promptStyle.Render(prompt) + inputStyle.Render(input)
}

// Repl is the kong command starting an interactive session.
type Repl struct {
	History string `default:"${cache}/history.dash" help:"History file path" type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) error {
	history := NewHistory(r.History)
	if err := history.Load(); err != nil {
		fmt.Printf("Warning: could not load history: %v\n", err)
	}

	m := newModel(ctx, history, log.Default())

	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := p.Run()

	return err
}

const defaultWidth = 80

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	context      *lang.Context
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for truncation
	quitting     bool
}

func newModel(
	ctx context.Context,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		context:    lang.NewContext(),
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		width:      defaultWidth,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(prompt) - 2

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Input line.
	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()
	viewingHistory := m.historyIdx < m.history.Len()

	switch {
	case viewingHistory:
		// Show history position indicator
		pos := m.historyIdx + 1 // 1-based for display
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(pos)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))
		b.WriteString("\n")

	case strings.TrimSpace(input) == "":
		b.WriteString(hintStyle.Render(
			"Type a statement, or :help for commands"))
		b.WriteString("\n")

	case len(m.matches) > 0:
		bar := renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width)
		b.WriteString(bar)
		b.WriteString("\n")

	default:
		// Non-empty input but no matches: blank line.
		b.WriteString("\n")
	}

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.handleTab(1)

	case tea.KeyShiftTab:
		return m.handleTab(-1)

	case tea.KeyUp:
		return m.historyPrev()

	case tea.KeyDown:
		return m.historyNext()

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
		}

		refreshMatches(&m, false)
		m.matches = nil

		return m, nil

	case tea.KeyRunes:
		// Space is a "breaking" key while tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		// Reset history index when typing
		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// For any other key (backspace, delete, arrows, etc.),
	// update input and recompute matches without auto-confirm.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// handleTab cycles through completion candidates in the given direction.
func (m model) handleTab(dir int) (model, tea.Cmd) {
	if len(m.matches) == 0 {
		return m, nil
	}

	// Single candidate: complete and confirm immediately.
	if len(m.matches) == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	if m.tabActive {
		m.suggIdx += dir
		if m.suggIdx >= len(m.matches) {
			m.suggIdx = 0
		}

		if m.suggIdx < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	} else {
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()

		m.suggIdx = 0
		if dir < 0 {
			m.suggIdx = len(m.matches) - 1
		}
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

func (m model) historyPrev() (model, tea.Cmd) {
	if m.historyIdx <= 0 {
		return m, nil
	}

	m.historyIdx--

	line, err := m.history.GetLine(m.historyIdx)
	if err != nil {
		return m, nil
	}

	m.tabActive = false
	m.input.SetValue(line)
	m.input.CursorEnd()
	m.matches = nil

	return m, nil
}

func (m model) historyNext() (model, tea.Cmd) {
	if m.historyIdx >= m.history.Len() {
		return m, nil
	}

	m.historyIdx++

	if m.historyIdx == m.history.Len() {
		m.input.SetValue("")
		m.matches = nil

		return m, nil
	}

	line, err := m.history.GetLine(m.historyIdx)
	if err != nil {
		return m, nil
	}

	m.tabActive = false
	m.input.SetValue(line)
	m.input.CursorEnd()
	m.matches = nil

	return m, nil
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.input.SetValue("")
	m.tabActive = false
	m.matches = nil

	_, _ = m.history.Write(input)
	m.historyIdx = m.history.Len()

	echo := tea.Println(formatInput(input))

	if name, ok := strings.CutPrefix(input, ":"); ok {
		return m.executeCommand(strings.TrimSpace(name), echo)
	}

	output, err := m.eval(input)

	cmds := []tea.Cmd{echo}

	if output != "" {
		cmds = append(cmds,
			tea.Println(resultStyle.Render(strings.TrimRight(output, "\n"))))
	}

	if err != nil {
		cmds = append(cmds,
			tea.Println(errorStyle.Render("error: "+err.Error())))
	}

	return m, tea.Sequence(cmds...)
}

// eval parses and executes one submission against the session Context.
// The evaluator's fatal panics are recovered here so a typo cannot kill
// the session.
func (m model) eval(input string) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("%v", r)
			}

			err = e
		}
	}()

	tree, perr := lang.ParseString(m.ctxFunc(), input,
		lang.WithLogger(m.logger))
	if perr != nil {
		return "", perr
	}

	var buf bytes.Buffer

	eval := lang.NewEvaluator(
		lang.WithOutput(&buf),
		lang.WithLogger(m.logger),
	)
	eval.Execute(lang.Build(tree), m.context)

	return buf.String(), nil
}

func (m model) executeCommand(name string, echo tea.Cmd) (model, tea.Cmd) {
	switch name {
	case "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "vars":
		return m, tea.Sequence(echo, tea.Println(m.formatVars()))

	case "fns":
		return m, tea.Sequence(echo, tea.Println(m.formatFns()))

	case "reset":
		m.context = lang.NewContext()

		return m, tea.Sequence(echo,
			tea.Println(hintStyle.Render("session state discarded")))

	case "clear":
		return m, tea.Sequence(echo, tea.ClearScreen)

	case "quit":
		m.quitting = true

		return m, tea.Quit

	default:
		return m, tea.Sequence(echo,
			tea.Println(errorStyle.Render("unknown command :"+name)))
	}
}

func (m model) formatVars() string {
	if len(m.context.Variables) == 0 {
		return hintStyle.Render("no variables defined")
	}

	names := make([]string, 0, len(m.context.Variables))
	for name := range m.context.Variables {
		names = append(names, name)
	}

	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = name + " = " +
			resultStyle.Render(strconv.Quote(m.context.Variables[name]))
	}

	return strings.Join(lines, "\n")
}

func (m model) formatFns() string {
	if len(m.context.Functions) == 0 {
		return hintStyle.Render("no functions defined")
	}

	names := make([]string, 0, len(m.context.Functions))
	for name := range m.context.Functions {
		names = append(names, name)
	}

	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		fn := m.context.Functions[name]
		lines[i] = name + "(" + strings.Join(fn.Params, ", ") + ")"
	}

	return strings.Join(lines, "\n")
}
