package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	logout    key.Binding
	newItem   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	copyUser  key.Binding
	favourite key.Binding
	search    key.Binding
	scope     key.Binding
	generate  key.Binding
	sweep     key.Binding
	settings  key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding

	fillPassword  key.Binding
	toggleUpper   key.Binding
	toggleDigits  key.Binding
	toggleSpecial key.Binding
	deleteAccount key.Binding
	copyResult    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("l")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyUser:  key.NewBinding(key.WithKeys("u")),
	favourite: key.NewBinding(key.WithKeys("f")),
	search:    key.NewBinding(key.WithKeys("/")),
	scope:     key.NewBinding(key.WithKeys("s")),
	generate:  key.NewBinding(key.WithKeys("g")),
	sweep:     key.NewBinding(key.WithKeys("x")),
	settings:  key.NewBinding(key.WithKeys("o")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),

	fillPassword:  key.NewBinding(key.WithKeys("ctrl+g")),
	toggleUpper:   key.NewBinding(key.WithKeys("ctrl+u")),
	toggleDigits:  key.NewBinding(key.WithKeys("ctrl+d")),
	toggleSpecial: key.NewBinding(key.WithKeys("ctrl+s")),
	deleteAccount: key.NewBinding(key.WithKeys("ctrl+x")),
	copyResult:    key.NewBinding(key.WithKeys("ctrl+y")),
}
