package main

import "github.com/charmbracelet/bubbles/key"

var (
	keyQuit     = key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit"))
	keyHelp     = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	keyUp       = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown     = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyLeft     = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left"))
	keyRight    = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right"))
	keyPageUp   = key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up"))
	keyPageDown = key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdown", "page down"))
	keyTop      = key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "top"))
	keyBottom   = key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "bottom"))
)

type helpKeymap struct{}

var HelpKeymap = helpKeymap{}

func (h helpKeymap) ShortHelp() []key.Binding {
	return []key.Binding{keyUp, keyDown, keyLeft, keyRight, keyHelp, keyQuit}
}

func (h helpKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keyUp, keyDown, keyPageUp, keyPageDown},
		{keyLeft, keyRight, keyTop, keyBottom},
		{keyHelp, keyQuit},
	}
}
