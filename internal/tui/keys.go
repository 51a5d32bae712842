package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings for the strategy explorer
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	RateUp   key.Binding
	RateDown key.Binding
	Rerun    key.Binding
	Details  key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "smaller upfront"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "larger upfront"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("0", "no upfront"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "b"),
			key.WithHelp("b", "jump to best"),
		),
		RateUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise savings rate"),
		),
		RateDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower savings rate"),
		),
		Rerun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "re-run search"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle monthly detail"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
