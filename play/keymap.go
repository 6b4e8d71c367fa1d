package play

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	action  key.Binding
	newGame key.Binding
	records key.Binding
	back    key.Binding
	reset   key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	action: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space/enter", "start/stop"),
	),
	newGame: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new game"),
	),
	records: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "records"),
	),
	back: key.NewBinding(
		key.WithKeys("esc", "p"),
		key.WithHelp("esc", "back"),
	),
	reset: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reset all"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
