package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap declares the key bindings the splash host understands. Only Jump
// reaches the widget as an action; the rest is host chrome.
type KeyMap struct {
	Jump       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up"),
			key.WithHelp("space/↑", "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// HelpLine renders a short hint string from the bindings.
func (k KeyMap) HelpLine() string {
	return fmt.Sprintf("%s %s · %s %s",
		k.Jump.Help().Key, k.Jump.Help().Desc,
		k.Quit.Help().Key, k.Quit.Help().Desc)
}
