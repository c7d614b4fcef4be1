package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter  key.Binding
	cancel key.Binding
}

var keys = keyMap{
	enter:  key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}
