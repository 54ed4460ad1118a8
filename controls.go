package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Singles key.Binding
	Raw     key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Singles: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "hide single-thread points"),
	),
	Raw: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "raw symbols"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Singles, k.Raw, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Singles, k.Raw, k.Quit}}
}
