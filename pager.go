package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// pager shows rendered art in a viewport that scrolls both ways. Lines are
// cropped horizontally before they reach the viewport.
type pager struct {
	name          string
	raster        Raster
	mode          Mode
	lines         []string
	x             int // First visible column.
	width, height int
	viewport      viewport.Model
	help          help.Model
}

func newPager(name string, r Raster, mode Mode) (*pager, error) {
	art, err := renderString(r, mode)
	if err != nil {
		return nil, err
	}
	art = strings.TrimPrefix(art, "\n")
	return &pager{
		name:     name,
		raster:   r,
		mode:     mode,
		lines:    strings.Split(art, "\n"),
		viewport: viewport.New(0, 0),
		help:     help.New(),
	}, nil
}

func (m *pager) Init() tea.Cmd {
	return nil
}

func (m *pager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keyQuit):
			return m, tea.Quit
		case key.Matches(msg, keyHelp):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		case key.Matches(msg, keyUp):
			m.viewport.LineUp(1)
		case key.Matches(msg, keyDown):
			m.viewport.LineDown(1)
		case key.Matches(msg, keyPageUp):
			m.viewport.ViewUp()
		case key.Matches(msg, keyPageDown):
			m.viewport.ViewDown()
		case key.Matches(msg, keyTop):
			m.viewport.GotoTop()
		case key.Matches(msg, keyBottom):
			m.viewport.GotoBottom()
		case key.Matches(msg, keyLeft):
			m.scroll(-glyphRepeat)
		case key.Matches(msg, keyRight):
			m.scroll(glyphRepeat)
		}
	}
	return m, nil
}

func (m *pager) View() string {
	return m.viewport.View() + "\n" + m.statusBar() + "\n" + m.help.View(HelpKeymap)
}

func (m *pager) resize() {
	h := m.height - 1 - strings.Count(m.help.View(HelpKeymap), "\n") - 1
	if h < 1 {
		h = 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = h
	m.scroll(0)
}

// scroll moves the horizontal offset by dx columns, keeping the last column
// of the art within reach.
func (m *pager) scroll(dx int) {
	m.x += dx
	if limit := m.raster.Width*glyphRepeat - m.viewport.Width; m.x > limit {
		m.x = limit
	}
	if m.x < 0 {
		m.x = 0
	}

	visible := make([]string, len(m.lines))
	for i, line := range m.lines {
		visible[i] = cut(line, m.x, m.viewport.Width)
	}
	m.viewport.SetContent(strings.Join(visible, "\n"))
}
