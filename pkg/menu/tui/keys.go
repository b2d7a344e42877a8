package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/menu/pkg/menu"
)

// KeyMap binds terminal keys to the key codes understood by menu.Update.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Escape   key.Binding
	Tab      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
}

// DefaultKeyMap leaves letters free so the list can sit under a text input.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Tab:      key.NewBinding(key.WithKeys("tab")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		Home:     key.NewBinding(key.WithKeys("home")),
		End:      key.NewBinding(key.WithKeys("end")),
	}
}

// ShortHelp returns the bindings worth showing in a footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Escape}
}

// KeyCode returns the numeric key code for msg. Bound keys map to their
// conventional codes; a single printable rune reports its upper-case value.
func KeyCode(km KeyMap, msg tea.KeyMsg) (int, bool) {
	switch {
	case key.Matches(msg, km.Up):
		return menu.KeyUp, true
	case key.Matches(msg, km.Down):
		return menu.KeyDown, true
	case key.Matches(msg, km.Enter):
		return menu.KeyEnter, true
	case key.Matches(msg, km.Escape):
		return menu.KeyEscape, true
	case key.Matches(msg, km.Tab):
		return menu.KeyTab, true
	case key.Matches(msg, km.PageUp):
		return menu.KeyPageUp, true
	case key.Matches(msg, km.PageDown):
		return menu.KeyPageDown, true
	case key.Matches(msg, km.Home):
		return menu.KeyHome, true
	case key.Matches(msg, km.End):
		return menu.KeyEnd, true
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		return int(r), true
	}
	return 0, false
}

// Subscription translates a bubbletea message into a menu message. Anything
// that is not a recognized key press becomes menu.NoOpMsg.
func Subscription(km KeyMap, msg tea.Msg) menu.Msg {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return menu.NoOpMsg{}
	}
	code, ok := KeyCode(km, keyMsg)
	if !ok {
		return menu.NoOpMsg{}
	}
	return menu.KeyDownMsg{Code: code}
}
