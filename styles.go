package main

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	mainColor = lipgloss.Color("#825DF2")
	barColor  = lipgloss.Color("#5C5C5C")
	bold      lipgloss.Style
	danger    lipgloss.Style
	hint      lipgloss.Style
	bar       lipgloss.Style
	barAccent lipgloss.Style
)

func initStyles() {
	bold = lipgloss.NewStyle().Bold(true)
	danger = lipgloss.NewStyle().Background(lipgloss.Color("#FF0000")).Foreground(lipgloss.Color("#FFFFFF"))
	hint = lipgloss.NewStyle().Foreground(mainColor)
	bar = lipgloss.NewStyle().Background(barColor).Foreground(lipgloss.Color("#FFFFFF"))
	barAccent = lipgloss.NewStyle().Background(mainColor).Foreground(lipgloss.Color("#FFFFFF")).PaddingLeft(1).PaddingRight(1)
}
