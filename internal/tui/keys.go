package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Submit  key.Binding
	Back    key.Binding
	Forward key.Binding
	Home    key.Binding
	Docs    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Quit, k.Help},
		{k.Back, k.Forward, k.Home, k.Docs},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "get forecast"),
		),
		Back: key.NewBinding(
			key.WithKeys("alt+left"),
			key.WithHelp("alt+←", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("alt+right"),
			key.WithHelp("alt+→", "forward"),
		),
		Home: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "home"),
		),
		Docs: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "about the UV index"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// withoutRouter disables the bindings that only make sense with an address bar
func (k KeyMap) withoutRouter() KeyMap {
	k.Back.SetEnabled(false)
	k.Forward.SetEnabled(false)
	k.Home.SetEnabled(false)
	return k
}
