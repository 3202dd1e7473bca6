// Package tui implements the interactive terminal calculator.
package tui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/history"
	"github.com/zephyrtronium/calculator/internal/logging"
)

// Recorder stores evaluated expressions. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, e *history.Entry) error
}

// Config holds TUI configuration.
type Config struct {
	// Options are passed to every calculation.
	Options []calculator.Option
	// Recorder, if not nil, receives every evaluated expression.
	Recorder Recorder
	// Log receives recording failures. nil discards them.
	Log *slog.Logger
}

// line is one evaluated expression shown above the input.
type line struct {
	expr   string
	answer string
	failed bool
}

// maxLines bounds the lines kept for display.
const maxLines = 100

// recordedMsg reports the outcome of recording an entry.
type recordedMsg struct {
	err error
}

// Model is the Bubbletea model for the calculator.
type Model struct {
	width  int
	height int

	textarea textarea.Model
	session  Session
	lines    []line

	cfg Config
	err error
}

// New creates a calculator model.
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Expression (Enter to evaluate, Alt+Enter for a new line)"
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(60)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	// Plain Enter evaluates, so newlines need another key. Terminals can't
	// report Shift+Enter.
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	if cfg.Log == nil {
		cfg.Log = logging.Discard()
	}
	return Model{textarea: ta, cfg: cfg}
}

// Session returns the current session state.
func (m Model) Session() Session {
	s := m.session
	s.Text = m.textarea.Value()
	return s
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 4; w > 10 {
			m.textarea.SetWidth(w)
		}
		return m, nil

	case recordedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.cfg.Log.Warn("recording history failed", "err", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlL:
		m.lines = nil
		m.session = Session{}
		m.err = nil
		m.textarea.Reset()
		return m, nil

	case tea.KeyEnter:
		if msg.Alt {
			break
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit evaluates the input, appends it to the display, and clears the
// input for the next expression.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.session.Text = m.textarea.Value()
	if m.session.Text == "" {
		return m, nil
	}
	err := m.session.Submit(m.cfg.Options...)
	entry := &history.Entry{Expression: m.session.Text}
	if err != nil {
		entry.Error = err.Error()
	} else {
		entry.Result = m.session.Answer
	}
	m.lines = append(m.lines, line{
		expr:   m.session.Text,
		answer: m.session.Answer,
		failed: err != nil,
	})
	if len(m.lines) > maxLines {
		m.lines = m.lines[len(m.lines)-maxLines:]
	}
	m.textarea.Reset()
	return m, m.record(entry)
}

func (m Model) record(e *history.Entry) tea.Cmd {
	if m.cfg.Recorder == nil {
		return nil
	}
	rec := m.cfg.Recorder
	return func() tea.Msg {
		return recordedMsg{err: rec.Record(context.Background(), e)}
	}
}

// View renders the UI.
func (m Model) View() string {
	parts := []string{TitleStyle.Render("Calculator")}
	parts = append(parts, m.renderLines()...)
	parts = append(parts, InputStyle.Render(m.textarea.View()))
	if m.session.Answer != "" {
		parts = append(parts, AnswerStyle.Render(m.session.Answer))
	}
	if m.err != nil {
		parts = append(parts, ErrorStyle.Render("history: "+m.err.Error()))
	}
	parts = append(parts, m.renderHelpBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderLines renders as many past lines as fit above the input.
func (m Model) renderLines() []string {
	lines := m.lines
	if m.height > 0 {
		// Title, input box, answer box, and help take about twelve rows.
		room := m.height - 12
		if room < 0 {
			room = 0
		}
		if len(lines) > room {
			lines = lines[len(lines)-room:]
		}
	}
	r := make([]string, 0, len(lines))
	for _, l := range lines {
		expr := strings.ReplaceAll(l.expr, "\n", " ")
		if l.failed {
			r = append(r, ExprStyle.Render(expr)+"  "+ErrorStyle.Render(l.answer))
			continue
		}
		r = append(r, ExprStyle.Render(expr+" =")+" "+ResultStyle.Render(l.answer))
	}
	return r
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "evaluate"),
		RenderKeyHint("Alt+Enter", "new line"),
		RenderKeyHint("Ctrl+L", "clear"),
		RenderKeyHint("Esc", "quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the calculator TUI.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
