package components

import "github.com/charmbracelet/bubbles/key"

// ListKeyMap defines key bindings for list navigation
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
}

// DefaultListKeyMap returns the default list key bindings
func DefaultListKeyMap() ListKeyMap {
	return ListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
	}
}

// ArrowListKeyMap is used while a text input has focus, so letters stay free for typing.
func ArrowListKeyMap() ListKeyMap {
	km := DefaultListKeyMap()
	km.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
	km.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
	km.Home = key.NewBinding(key.WithKeys("home"))
	km.End = key.NewBinding(key.WithKeys("end"))
	return km
}
