package keymap

import "github.com/charmbracelet/bubbles/key"

var Up = key.NewBinding(
	key.WithKeys("up", "k"),
	key.WithHelp("↑/k", "previous item"),
)

var Down = key.NewBinding(
	key.WithKeys("down", "j"),
	key.WithHelp("↓/j", "next item"),
)

var Activate = key.NewBinding(
	key.WithKeys("enter", "right", "l"),
	key.WithHelp("enter", "activate item or open submenu"),
)

var Back = key.NewBinding(
	key.WithKeys("left", "h", "backspace"),
	key.WithHelp("←/h", "back to parent menu"),
)

var Dismiss = key.NewBinding(
	key.WithKeys("esc", "q"),
	key.WithHelp("esc", "close menu"),
)

var ForceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "force quit"),
)

var Help = key.NewBinding(
	key.WithKeys("?"),
	key.WithHelp("?", "toggle help view"),
)

// Menu lists the bindings shown in the menu help
func Menu() []key.Binding {
	return []key.Binding{Up, Down, Activate, Back, Dismiss, Help}
}
