package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for nav mode.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Switch      key.Binding
	Select      key.Binding
	Back        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Quit        key.Binding
	Help        key.Binding
	Home        key.Binding
	Restaurants key.Binding
	Account     key.Binding
	Review      key.Binding
	Reload      key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "h", "l", "left", "right"),
			key.WithHelp("tab/h/l", "switch list"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "esc"),
			key.WithHelp("b/esc", "back"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		Restaurants: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "restaurants"),
		),
		Account: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "log in/out"),
		),
		Review: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write review"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload"),
		),
	}
}

// FormKeyMap defines keybindings for insert/edit mode.
type FormKeyMap struct {
	NextField key.Binding
	PrevField key.Binding
	Save      key.Binding
	Cancel    key.Binding
}

// DefaultFormKeyMap returns the default form keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s", "enter"),
			key.WithHelp("ctrl+s/enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
