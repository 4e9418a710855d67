package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggle      key.Binding
	selectAll   key.Binding
	unselectAll key.Binding
	sort        key.Binding
	onlySel     key.Binding
	open        key.Binding
	export      key.Binding
	preview     key.Binding
	copy        key.Binding
	up          key.Binding
	down        key.Binding
	help        key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		toggle:      key.NewBinding(key.WithKeys(" ", "x", "enter"), key.WithHelp("space", "toggle")),
		selectAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		unselectAll: key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "unselect all")),
		sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by name")),
		onlySel:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "selected only")),
		open:        key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		export:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export")),
		preview:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preview")),
		copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy card")),
		up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.toggle, k.selectAll, k.unselectAll, k.sort, k.onlySel, k.open, k.export, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.toggle},
		{k.selectAll, k.unselectAll},
		{k.sort, k.onlySel, k.preview},
		{k.open, k.export, k.copy},
		{k.help, k.quit},
	}
}
