package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	NextTab     key.Binding
	PrevTab     key.Binding
	TabHome     key.Binding
	TabSearch   key.Binding
	TabUpcoming key.Binding
	TabSaved    key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Enter       key.Binding
	Back        key.Binding

	// Actions
	Quit       key.Binding
	ForceQuit  key.Binding
	Help       key.Binding
	Focus      key.Binding
	ToggleKind key.Binding
	Retry      key.Binding
	Save       key.Binding
	Play       key.Binding
	Delete     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous tab"),
		),
		TabHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		TabSearch: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "search"),
		),
		TabUpcoming: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "upcoming"),
		),
		TabSaved: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "saved"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next row"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous row"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Focus: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search/filter"),
		),
		ToggleKind: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "movies/tv"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play trailer"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "remove"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
