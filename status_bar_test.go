package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testPager(t *testing.T, width, height int) *pager {
	t.Helper()
	initStyles()
	r := Raster{Pix: gradientPixels(width * height), Width: width, Height: height}
	m, err := newPager("fixture.png", r, Inverted)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func press(m *pager, msg tea.KeyMsg, times int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < times; i++ {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestPagerHorizontalScroll(t *testing.T) {
	m := testPager(t, 10, 4)
	m.Update(tea.WindowSizeMsg{Width: 12, Height: 10})

	right := tea.KeyMsg{Type: tea.KeyRight}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	testCases := []struct {
		msg      tea.KeyMsg
		times    int
		expected int
	}{
		{right, 1, 3},
		{right, 2, 9},
		{right, 10, 18},
		{left, 1, 15},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}}, 10, 0},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, 1, 3},
	}

	for _, tc := range testCases {
		press(m, tc.msg, tc.times)
		if m.x != tc.expected {
			t.Errorf("Failed: %v x%d: %v != %v", tc.msg, tc.times, m.x, tc.expected)
		}
	}

	if view := m.View(); !strings.Contains(view, m.lines[0][3:15]) {
		t.Errorf("Failed: view does not show columns 3 to 15: %q", view)
	}
}

func TestPagerVerticalScroll(t *testing.T) {
	m := testPager(t, 4, 20)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	testCases := []struct {
		msg      tea.KeyMsg
		expected int
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, 1},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, 2},
		{tea.KeyMsg{Type: tea.KeyUp}, 1},
		{tea.KeyMsg{Type: tea.KeyEnd}, 12},
		{tea.KeyMsg{Type: tea.KeyHome}, 0},
	}

	for _, tc := range testCases {
		m.Update(tc.msg)
		if m.viewport.YOffset != tc.expected {
			t.Errorf("Failed: %v: %v != %v", tc.msg, m.viewport.YOffset, tc.expected)
		}
	}
}

func TestPagerHelpToggle(t *testing.T) {
	m := testPager(t, 4, 4)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	if m.viewport.Height != 8 {
		t.Errorf("Failed: viewport height %d", m.viewport.Height)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll || m.viewport.Height != 5 {
		t.Errorf("Failed: full help %v, viewport height %d", m.help.ShowAll, m.viewport.Height)
	}
}

func TestPagerQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := testPager(t, 2, 2)
		if cmd := press(m, msg, 1); cmd == nil {
			t.Errorf("Failed: %v does not quit", msg)
		}
	}
}

func TestStatusBar(t *testing.T) {
	m := testPager(t, 10, 4)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	bar := m.statusBar()
	for _, expected := range []string{"fixture.png", "10x4", "inverted", "col 1"} {
		if !strings.Contains(bar, expected) {
			t.Errorf("Failed: %q not in %q", expected, bar)
		}
	}
}

func TestPosition(t *testing.T) {
	testCases := []struct {
		percent  float64
		column   int
		expected string
	}{
		{0, 0, "  0% col 1"},
		{0.5, 6, " 50% col 3"},
		{0.999, 3, " 99% col 2"},
		{1, 897, "100% col 300"},
	}

	for _, tc := range testCases {
		result := position(tc.percent, tc.column)
		if result != tc.expected {
			t.Errorf("Failed: %v != %v", result, tc.expected)
		}
	}
}
