package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

func (m *pager) statusBar() string {
	name := barAccent.Render(m.name)
	info := fmt.Sprintf(" %s  %s  %s", sizeOf(m.raster), m.mode, position(m.viewport.ScrollPercent(), m.x))
	gap := m.width - lipgloss.Width(name) - lipgloss.Width(info)
	if gap < 0 {
		gap = 0
	}
	return name + bar.Render(info+fmt.Sprintf("%*s", gap, ""))
}

func sizeOf(r Raster) string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

func position(percent float64, column int) string {
	return fmt.Sprintf("%3.0f%% col %d", math.Floor(percent*100), column/glyphRepeat+1)
}
