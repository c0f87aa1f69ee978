package prompt

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	messageStyle  = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Quit   key.Binding
	Yes    key.Binding
	No     key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move down")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
}

// TUI is a prompter that renders each question as a small bubbletea program.
type TUI struct {
	in  io.Reader
	out io.Writer
}

// NewTUI creates a terminal UI prompter.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{in: in, out: out}
}

// killWait bounds how long StopActive waits for a killed program to return.
const killWait = time.Second

var (
	activeMu sync.Mutex
	active   *runningProgram
)

type runningProgram struct {
	p    *tea.Program
	done chan struct{}
}

// StopActive kills the prompt program that is currently running, if any, and
// waits briefly for it to restore the terminal. Signal handling is left to the
// caller, so this must run before the process exits on a signal.
func StopActive() {
	activeMu.Lock()
	rp := active
	active = nil
	activeMu.Unlock()
	if rp == nil {
		return
	}

	go rp.p.Kill()
	select {
	case <-rp.done:
	case <-time.After(killWait):
	}
}

func (t *TUI) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.in),
		tea.WithOutput(t.out),
		tea.WithoutSignalHandler(),
	)

	rp := &runningProgram{p: p, done: make(chan struct{})}
	activeMu.Lock()
	active = rp
	activeMu.Unlock()
	defer func() {
		activeMu.Lock()
		if active == rp {
			active = nil
		}
		activeMu.Unlock()
		close(rp.done)
	}()

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	return final, nil
}

// Select implements Prompter.
func (t *TUI) Select(ctx context.Context, message string, options []Option, pageSize int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", message)
	}
	final, err := t.run(ctx, newSelectModel(message, options, pageSize))
	if err != nil {
		return "", err
	}
	m := final.(selectModel)
	if m.interrupted {
		return "", ErrInterrupted
	}
	return m.options[m.cursor].Value, nil
}

// Input implements Prompter.
func (t *TUI) Input(ctx context.Context, message, defaultValue string, validate ValidateFunc) (string, error) {
	final, err := t.run(ctx, newInputModel(message, defaultValue, validate))
	if err != nil {
		return "", err
	}
	m := final.(inputModel)
	if m.interrupted {
		return "", ErrInterrupted
	}
	return m.value, nil
}

// Confirm implements Prompter.
func (t *TUI) Confirm(ctx context.Context, message string, defaultValue bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(message, defaultValue))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.interrupted {
		return false, ErrInterrupted
	}
	return m.value, nil
}

func header(message string) string {
	return questionStyle.Render("?") + " " + messageStyle.Render(message)
}

// selectModel is a single-choice list with a wrapping cursor.
type selectModel struct {
	message     string
	options     []Option
	pageSize    int
	cursor      int
	done        bool
	interrupted bool
}

func newSelectModel(message string, options []Option, pageSize int) selectModel {
	return selectModel{message: message, options: options, pageSize: pageSize}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.interrupted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
	case key.Matches(keyMsg, keys.Down):
		m.cursor = (m.cursor + 1) % len(m.options)
	case key.Matches(keyMsg, keys.Submit):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// window returns the [start, end) range of options visible for the cursor.
func (m selectModel) window() (int, int) {
	n := len(m.options)
	if m.pageSize <= 0 || m.pageSize >= n {
		return 0, n
	}
	start := m.cursor - m.pageSize/2
	if start < 0 {
		start = 0
	}
	if start+m.pageSize > n {
		start = n - m.pageSize
	}
	return start, start + m.pageSize
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(header(m.message))

	if m.done {
		b.WriteString(" " + answerStyle.Render(m.options[m.cursor].Short) + "\n")
		return b.String()
	}
	if m.interrupted {
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(" " + hintStyle.Render("(Use arrow keys)") + "\n")
	start, end := m.window()
	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ ") + m.options[i].Label)
		} else {
			b.WriteString("  " + m.options[i].Label)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// inputModel is a single-line text field with inline validation.
type inputModel struct {
	message      string
	defaultValue string
	validate     ValidateFunc
	field        textinput.Model
	errMsg       string
	value        string
	done         bool
	interrupted  bool
}

func newInputModel(message, defaultValue string, validate ValidateFunc) inputModel {
	field := textinput.New()
	field.Prompt = ""
	field.Placeholder = defaultValue
	field.Focus()
	return inputModel{
		message:      message,
		defaultValue: defaultValue,
		validate:     validate,
		field:        field,
	}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.Quit):
			m.interrupted = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.Submit):
			answer := m.field.Value()
			if answer == "" {
				answer = m.defaultValue
			}
			if m.validate != nil {
				if err := m.validate(answer); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.value = answer
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(header(m.message) + " ")

	if m.done {
		b.WriteString(answerStyle.Render(m.value) + "\n")
		return b.String()
	}
	if m.interrupted {
		b.WriteString("\n")
		return b.String()
	}

	if m.defaultValue != "" {
		b.WriteString(hintStyle.Render("("+m.defaultValue+")") + " ")
	}
	b.WriteString(m.field.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(">> "+m.errMsg) + "\n")
	}
	return b.String()
}

// confirmModel is a yes/no question answered with a single key.
type confirmModel struct {
	message      string
	defaultValue bool
	value        bool
	done         bool
	interrupted  bool
}

func newConfirmModel(message string, defaultValue bool) confirmModel {
	return confirmModel{message: message, defaultValue: defaultValue}
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		m.interrupted = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Yes):
		m.value, m.done = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.No):
		m.value, m.done = false, true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Submit):
		m.value, m.done = m.defaultValue, true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	var b strings.Builder
	b.WriteString(header(m.message) + " ")

	switch {
	case m.done:
		answer := "No"
		if m.value {
			answer = "Yes"
		}
		b.WriteString(answerStyle.Render(answer))
	case m.interrupted:
	default:
		hint := "(y/N)"
		if m.defaultValue {
			hint = "(Y/n)"
		}
		b.WriteString(hintStyle.Render(hint))
	}
	b.WriteString("\n")
	return b.String()
}
