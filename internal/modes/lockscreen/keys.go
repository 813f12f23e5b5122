package lockscreen

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Suit    key.Binding
	Left    key.Binding
	Right   key.Binding
	Choose  key.Binding
	Dismiss key.Binding
	Swipe   key.Binding
	Help    key.Binding
	Back    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Suit: key.NewBinding(
			key.WithKeys("s", "h", "c", "d", "1", "2", "3", "4"),
			key.WithHelp("s/h/c/d", "deal suit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev suit"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next suit"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "deal selected"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hide card"),
		),
		Swipe: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "swipe card away"),
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
	return []key.Binding{k.Suit, k.Dismiss, k.Swipe, k.Help, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Suit, k.Left, k.Right, k.Choose},
		{k.Dismiss, k.Swipe},
		{k.Help, k.Back},
	}
}
