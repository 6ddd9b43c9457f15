package ui

import "github.com/charmbracelet/bubbles/key"

// GState represents the state for "gg" navigation.
type GState int

const (
	GStateIdle GState = iota
	GStateFirstG
)

// KeyMap defines all keybindings.
type KeyMap struct {
	Day           key.Binding
	PrevDay       key.Binding
	NextDay       key.Binding
	Accommodation key.Binding
	Transport     key.Binding
	Close         key.Binding
	NextLink      key.Binding
	OpenLink      key.Binding
	Up            key.Binding
	Down          key.Binding
	HalfPageDown  key.Binding
	HalfPageUp    key.Binding
	Top           key.Binding
	Bottom        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Day: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-7", "select day"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next day"),
		),
		Accommodation: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accommodation"),
		),
		Transport: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transport"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc/x", "close panel"),
		),
		NextLink: key.NewBinding(
			key.WithKeys("o", "tab"),
			key.WithHelp("o/tab", "next link"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open link"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "scroll down"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "½ page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "½ page up"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
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
}
