package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	logout    key.Binding
	switchTo  key.Binding
	edit      key.Binding
	submit    key.Binding
	toggleAcc key.Binding
	toggle    key.Binding
	thumbUp   key.Binding
	thumbDown key.Binding
	copy      key.Binding
	retry     key.Binding
	info      key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("ctrl+o")),
	switchTo:  key.NewBinding(key.WithKeys("ctrl+n")),
	edit:      key.NewBinding(key.WithKeys("ctrl+e")),
	submit:    key.NewBinding(key.WithKeys("ctrl+s")),
	toggleAcc: key.NewBinding(key.WithKeys("ctrl+t")),
	toggle:    key.NewBinding(key.WithKeys(" ", "x")),
	thumbUp:   key.NewBinding(key.WithKeys("+")),
	thumbDown: key.NewBinding(key.WithKeys("-")),
	copy:      key.NewBinding(key.WithKeys("c")),
	retry:     key.NewBinding(key.WithKeys("r")),
	info:      key.NewBinding(key.WithKeys("ctrl+v")),
}
