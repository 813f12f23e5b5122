package calculator

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	calc "github.com/kingrea/parallel/internal/calculator"
)

type keyMap struct {
	Digit    key.Binding
	Point    key.Binding
	Operator key.Binding
	Equals   key.Binding
	Clear    key.Binding
	Sign     key.Binding
	Percent  key.Binding
	Help     key.Binding
	Back     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Point: key.NewBinding(
			key.WithKeys(".", ","),
			key.WithHelp(".", "point"),
		),
		Operator: key.NewBinding(
			key.WithKeys("+", "-", "*", "x", "/"),
			key.WithHelp("+ - * /", "operator"),
		),
		Equals: key.NewBinding(
			key.WithKeys("=", "enter"),
			key.WithHelp("=/enter", "equals"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c", "delete", "backspace"),
			key.WithHelp("c", "clear"),
		),
		Sign: key.NewBinding(
			key.WithKeys("n", "_"),
			key.WithHelp("n", "±"),
		),
		Percent: key.NewBinding(
			key.WithKeys("%"),
			key.WithHelp("%", "percent"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Operator, k.Equals, k.Clear, k.Help, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Point, k.Operator},
		{k.Equals, k.Clear, k.Sign, k.Percent},
		{k.Help, k.Back},
	}
}

// tokenFor maps a key press to a calculator token.
func (k keyMap) tokenFor(msg tea.KeyMsg) (calc.Token, bool) {
	switch {
	case key.Matches(msg, k.Digit), key.Matches(msg, k.Operator):
		tok, err := calc.ParseToken(msg.String())
		return tok, err == nil
	case key.Matches(msg, k.Point):
		return calc.Point, true
	case key.Matches(msg, k.Equals):
		return calc.Equals, true
	case key.Matches(msg, k.Clear):
		return calc.Clear, true
	case key.Matches(msg, k.Sign):
		return calc.Sign, true
	case key.Matches(msg, k.Percent):
		return calc.Percent, true
	}
	return calc.Token{}, false
}
