package menu

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the keyboard bindings for each menu state. Bindings with
// plain letters only apply outside text entry.
type keyMap struct {
	// Global
	Quit key.Binding

	// Menu
	Exit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding

	// Form
	Back      key.Binding
	NextField key.Binding
	PrevField key.Binding

	// Result
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc", "q"),
			key.WithHelp("enter/esc", "back to menu"),
		),
	}
}
