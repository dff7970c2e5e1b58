package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newPage  key.Binding
	refresh  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	preview  key.Binding
	addMedia key.Binding
	remove   key.Binding
	moveUp   key.Binding
	moveDown key.Binding
	genID    key.Binding
	save     key.Binding
	auto     key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("l")),
	newPage:  key.NewBinding(key.WithKeys("n")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	preview:  key.NewBinding(key.WithKeys("v")),
	addMedia: key.NewBinding(key.WithKeys("ctrl+a")),
	remove:   key.NewBinding(key.WithKeys("ctrl+x")),
	moveUp:   key.NewBinding(key.WithKeys("ctrl+up")),
	moveDown: key.NewBinding(key.WithKeys("ctrl+down")),
	genID:    key.NewBinding(key.WithKeys("ctrl+g")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
	auto:     key.NewBinding(key.WithKeys("a")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n")),
}
