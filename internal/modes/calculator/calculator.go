// internal/modes/calculator/calculator.go
//
// Calculator mode: the "ordinary" calculator screen. Key presses become
// calculator tokens; the engine state is replaced wholesale on every press.
// Finished formulas are kept in a short history and written to the journey log.

package calculator

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calc "github.com/kingrea/parallel/internal/calculator"
	"github.com/kingrea/parallel/internal/config"
	"github.com/kingrea/parallel/internal/modes"
)

const defaultHistory = 20

// keypad mirrors the on-screen button grid, top row first.
var keypad = [][]calc.Token{
	{calc.Clear, calc.Sign, calc.Percent, calc.Divide},
	{calc.Digit(7), calc.Digit(8), calc.Digit(9), calc.Multiply},
	{calc.Digit(4), calc.Digit(5), calc.Digit(6), calc.Subtract},
	{calc.Digit(1), calc.Digit(2), calc.Digit(3), calc.Add},
	{calc.Digit(0), calc.Point, calc.Equals},
}

// Mode handles the calculator screen
type Mode struct {
	modes.BaseMode
	state    calc.State
	keys     keyMap
	help     help.Model
	history  []string
	limit    int
	lastTok  calc.Token
	hasPress bool
}

// New creates a new Calculator mode
func New() *Mode {
	return &Mode{
		BaseMode: modes.NewBaseMode("Calculator", config.ScreenCalculator),
		state:    calc.Initial(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		limit:    defaultHistory,
	}
}

// Init initializes the calculator mode
func (m *Mode) Init(ctx *modes.ModeContext) tea.Cmd {
	m.SetContext(ctx)
	if ctx != nil && ctx.Config != nil {
		m.limit = ctx.Config.HistoryLimit()
	}
	m.SetStatusMsg("Ready")
	return nil
}

// Update handles messages for the calculator mode
func (m *Mode) Update(msg tea.Msg) (modes.Mode, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.SetComplete(true)
			return m, modes.Complete(m.Screen())
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if tok, ok := m.keys.tokenFor(msg); ok {
			m.Press(tok)
		}
	}
	return m, nil
}

// Press feeds one button press to the engine.
func (m *Mode) Press(tok calc.Token) {
	prev := m.state
	m.state = calc.Transition(prev, tok)
	m.lastTok = tok
	m.hasPress = true

	switch {
	case m.state.Phase == calc.PhaseError && prev.Phase != calc.PhaseError:
		failed := strings.Join(append(slices.Clone(prev.Trace), prev.Display), " ")
		m.SetStatusMsg("Cannot divide by zero")
		if lb := m.Logbook(); lb != nil {
			lb.Warn("Calculator · %s failed: %v", failed, calc.ErrDivideByZero)
		}
	case tok.Kind == calc.KindEquals && m.state.Phase == calc.PhaseResultShown && prev.Phase != calc.PhaseResultShown:
		formula := strings.Join(m.state.Trace, " ")
		m.remember(formula)
		m.SetStatusMsg(fmt.Sprintf("= %s", m.state.Display))
		if lb := m.Logbook(); lb != nil {
			lb.Info("Calculator · %s", formula)
		}
	case tok.Kind == calc.KindClear:
		m.SetStatusMsg("Cleared")
	}
}

func (m *Mode) remember(formula string) {
	if m.limit <= 0 {
		return
	}
	m.history = append(m.history, formula)
	if over := len(m.history) - m.limit; over > 0 {
		m.history = m.history[over:]
	}
}

// State returns the current engine state.
func (m *Mode) State() calc.State {
	return m.state
}

// History returns finished formulas, oldest first.
func (m *Mode) History() []string {
	return append([]string(nil), m.history...)
}

var (
	screenStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	traceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	displayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	buttonStyle = lipgloss.NewStyle().
			Width(5).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444"))
	operatorStyle = buttonStyle.
			Foreground(lipgloss.Color("#FF9F0A"))
	functionStyle = buttonStyle.
			Foreground(lipgloss.Color("#AAAAAA"))
	pressedStyle = buttonStyle.
			BorderForeground(lipgloss.Color("#5B8DEF")).
			Bold(true)
	activeOperatorStyle = buttonStyle.
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color("#FF9F0A"))
	historyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAAAAA")).
			MarginLeft(2)
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1)
)

const displayWidth = 26

// View renders the calculator mode
func (m *Mode) View() string {
	trace := strings.Join(m.state.Trace, " ")
	if len([]rune(trace)) > displayWidth {
		runes := []rune(trace)
		trace = "…" + string(runes[len(runes)-displayWidth+1:])
	}
	display := displayStyle.Render(m.state.Display)
	if m.state.IsError() {
		display = errorStyle.Render(m.state.Display)
	}
	right := lipgloss.NewStyle().Width(displayWidth).Align(lipgloss.Right)
	screen := screenStyle.Render(lipgloss.JoinVertical(lipgloss.Right,
		right.Render(traceStyle.Render(trace)),
		right.Render(display),
	))

	rows := make([]string, 0, len(keypad))
	for _, row := range keypad {
		cells := make([]string, 0, len(row))
		for _, tok := range row {
			cells = append(cells, m.renderButton(tok))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	pad := lipgloss.JoinVertical(lipgloss.Left, rows...)
	left := lipgloss.JoinVertical(lipgloss.Left, screen, pad)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderHistory())
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		statusStyle.Render(m.StatusMsg()),
		m.help.View(m.keys),
	)
}

func (m *Mode) renderButton(tok calc.Token) string {
	label := tok.String()
	_, pendingOp, hasPending := m.state.Pending()
	switch {
	case tok.Kind == calc.KindOperator && hasPending && m.state.AwaitingOperand && tok.Op == pendingOp:
		return activeOperatorStyle.Render(label)
	case m.hasPress && tok == m.lastTok:
		return pressedStyle.Render(label)
	case tok.Kind == calc.KindOperator || tok.Kind == calc.KindEquals:
		return operatorStyle.Render(label)
	case tok.Kind == calc.KindClear || tok.Kind == calc.KindSign || tok.Kind == calc.KindPercent:
		return functionStyle.Render(label)
	default:
		return buttonStyle.Render(label)
	}
}

func (m *Mode) renderHistory() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("HISTORY")
	if len(m.history) == 0 {
		return historyStyle.Render(title + "\n" + traceStyle.Render("No finished formulas yet."))
	}
	lines := []string{title}
	for i := len(m.history) - 1; i >= 0; i-- {
		lines = append(lines, m.history[i])
	}
	return historyStyle.Render(strings.Join(lines, "\n"))
}
