package quiz

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quizbox/internal/ui/layout"
)

type keyMap struct {
	Start   key.Binding
	Up      key.Binding
	Down    key.Binding
	Choose  key.Binding
	Submit  key.Binding
	Next    key.Binding
	Restart key.Binding
	History key.Binding
}

var keys = keyMap{
	Start: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Start"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Choose"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Choose: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "Pick"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Submit"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "space", "n"),
		key.WithHelp("Enter", "Next"),
	),
	Restart: key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("R", "Play again"),
	),
	History: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("H", "Runs"),
	),
}

// hints converts bindings into footer hints, skipping those without help.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}
