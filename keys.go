package dockbar

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/jenilutfifauzi/dockbar/focus"
)

// KeyMap extends the traversal bindings with activation.
type KeyMap struct {
	focus.KeyMap
	Activate key.Binding
}

// DefaultKeyMap returns arrows/home/end traversal plus enter or space to
// open the focused item.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: focus.DefaultKeyMap(),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "open item"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Activate}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.First, k.Last},
		{k.Activate},
	}
}
