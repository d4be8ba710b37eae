package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Money     key.Binding
	Highlight key.Binding
	Delete    key.Binding
	WaterUp   key.Binding
	WaterDown key.Binding
	Rate      key.Binding
	Period    key.Binding
	Help      key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Add, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit},
		{k.Up, k.Down, k.Toggle, k.Add, k.Money, k.Highlight, k.Delete},
		{k.WaterUp, k.WaterDown, k.Rate, k.Period, k.Help},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle todo"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add todo"),
		),
		Money: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "add money entry"),
		),
		Highlight: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit highlight"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "delete todo"),
		),
		WaterUp: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add water"),
		),
		WaterDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove water"),
		),
		Rate: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "0"),
			key.WithHelp("1-5", "rate day (0 clears)"),
		),
		Period: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle stats period"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
