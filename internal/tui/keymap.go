package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	ClearSel  key.Binding
	Expand    key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Postex    key.Binding
	Leopard   key.Binding
	Recommend key.Binding
	Search    key.Binding
	NextField key.Binding
	Refresh   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("x", " "),
		key.WithHelp("x/space", "select"),
	),
	SelectAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
	ClearSel: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "clear selection"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "details"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "cancel"),
	),
	Postex: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "book postex"),
	),
	Leopard: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "book leopard"),
	),
	Recommend: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "book recommended"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "filter field"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
