// Package ui provides the optional full-screen terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/planner-go/internal/menu"
	"github.com/nibzard/planner-go/internal/planner"
	"github.com/nibzard/planner-go/internal/render"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*Model)

// WithDescriptionLimit sets the advised description length.
func WithDescriptionLimit(limit int) TUIOption {
	return func(m *Model) {
		if limit > 0 {
			m.limit = limit
		}
	}
}

// WithLogger sets the logger for UI events.
func WithLogger(logger *log.Logger) TUIOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// RunTUI runs the full-screen planner until the user quits or ctx is done.
func RunTUI(ctx context.Context, mgr *planner.Manager, r *render.Renderer, opts ...TUIOption) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	return runProgram(ctx, New(mgr, r, opts...))
}

func runProgram(ctx context.Context, model *Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// Model is the bubbletea model of the planner. While idle it shows the
// table and the options; once an option is chosen it asks for each field in
// turn.
type Model struct {
	mgr      *planner.Manager
	renderer *render.Renderer
	limit    int
	logger   *log.Logger

	option  menu.Option
	fields  []menu.Field
	step    int
	answers menu.Answers
	input   textinput.Model

	status string
}

// New returns an idle model over mgr.
func New(mgr *planner.Manager, r *render.Renderer, opts ...TUIOption) *Model {
	if r == nil {
		r = render.New(render.DefaultOptions())
	}
	m := &Model{
		mgr:      mgr,
		renderer: r,
		limit:    planner.DescriptionSoftLimit,
		logger:   log.New(io.Discard),
		input:    textinput.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.editing() {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if !m.editing() {
		return m.updateIdle(key)
	}
	return m.updateForm(key)
}

func (m *Model) updateIdle(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.String() == "q" {
		return m, tea.Quit
	}
	opt, err := menu.ParseOption(key.String())
	if err != nil {
		return m, nil
	}
	if opt == menu.OptionQuit {
		return m, tea.Quit
	}

	m.logger.Debug("menu option selected", "option", opt.String())
	m.option = opt
	m.fields = opt.Fields()
	m.step = 0
	m.answers = menu.Answers{}
	m.setStatus("")
	return m, m.prompt()
}

func (m *Model) updateForm(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.reset()
		m.setStatus("Cancelled.")
		return m, nil
	case tea.KeyEnter:
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

// submit parses the current field and moves on to the next one, or runs the
// option once every field is in.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	f := m.fields[m.step]
	if err := m.answers.Set(f, m.input.Value()); err != nil {
		if f.Retry() {
			m.setStatus(fmt.Sprintf("Error: %v. Please try again.", err))
			m.input.SetValue("")
			return m, nil
		}
		m.logger.Info("menu option abandoned", "option", m.option.String(), "err", err)
		m.reset()
		m.setStatus(fmt.Sprintf("Error: %v.", err))
		return m, nil
	}

	m.step++
	if m.step < len(m.fields) {
		m.setStatus("")
		return m, m.prompt()
	}

	opt, answers := m.option, m.answers
	m.reset()
	msg, err := menu.ExecuteWithLimit(m.mgr, opt, answers, m.limit)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v.", err))
		return m, nil
	}
	m.setStatus(msg)
	return m, nil
}

func (m *Model) prompt() tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	label := m.fields[m.step].Label()
	if m.fields[m.step] == menu.FieldDescription {
		label = fmt.Sprintf("%s (max. %d symbols)", label, m.limit)
	}
	m.input.Reset()
	m.input.Prompt = label + ": "
	m.input.Focus()
	return textinput.Blink
}

func (m *Model) reset() {
	m.option = 0
	m.fields = nil
	m.step = 0
	m.answers = menu.Answers{}
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) setStatus(s string) {
	m.status = s
}

func (m *Model) editing() bool {
	return m.option != 0
}

// Status returns the last status line.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b)
	b.WriteString(m.renderer.Render(m.mgr.Render()))
	b.WriteString("\n")
	writeStatusLine(&b, m.status)

	if m.editing() {
		fmt.Fprintf(&b, "%s\n\n", m.option)
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString("enter to confirm | esc to cancel | ctrl+c to quit\n")
		return b.String()
	}

	b.WriteString(menu.Text())
	b.WriteString("\n")
	writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder) {
	title := "Task Planner"
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func writeStatusLine(b *strings.Builder, status string) {
	if status == "" {
		return
	}
	b.WriteString(status + "\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString("Press 1-9 to choose an option | q to quit\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	return menu.IsTerminal(w)
}
