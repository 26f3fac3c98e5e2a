package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/expresscore/cli"
	"github.com/nathoo/expresscore/engine"
)

// Panel layout.
const (
	listWidth = 30
	minPanel  = 6
)

// renderStatusBar produces a full-width status line showing the chapter,
// the clock, the bus and the run mode.
func (m Model) renderStatusBar() string {
	e := m.engine
	now := e.Clock.Now()

	left := fmt.Sprintf(" Ch.%d | %s | t=%d | x%d | bus %d",
		e.State.Chapter, cli.WallClock(now), e.Clock.NowTicks(), e.Clock.TimeDelta(), e.Bus.Len())

	style := styleStatusBar
	right := "paused "
	switch {
	case e.State.GameOver != nil:
		style = styleStatusOver
		right = "GAME OVER "
	case m.running:
		style = styleStatusRunning
		right = "running "
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return style.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// panelHeight is the number of rows the character and stack panels use.
func (m Model) panelHeight() int {
	h := len(m.engine.Characters()) + 1
	if h < minPanel {
		h = minPanel
	}
	return h
}

// renderPanels draws the character list beside the selected character's
// call stack.
func (m Model) renderPanels() string {
	views := m.engine.Characters()
	height := m.panelHeight()

	list := []string{stylePanelTitle.Render("Characters")}
	for i, v := range views {
		line := fmt.Sprintf("%-6s %s", v.Name, v.Current().Name)
		if len(line) > listWidth-2 {
			line = line[:listWidth-2]
		}
		if i == m.selected {
			list = append(list, styleSelected.Render(line))
		} else {
			list = append(list, styleCharacter.Render(line))
		}
	}
	left := stylePanel.Width(listWidth).Height(height).Render(strings.Join(list, "\n"))

	var stack []string
	if m.selected < len(views) {
		stack = renderStack(views[m.selected])
	}
	rightWidth := m.width - listWidth - 2
	if rightWidth < 10 {
		rightWidth = 10
	}
	right := lipgloss.NewStyle().Width(rightWidth).Height(height).PaddingLeft(1).
		Render(strings.Join(stack, "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderStack lists v's frames, newest first, with the running one
// highlighted.
func renderStack(v engine.CharacterView) []string {
	lines := []string{stylePanelTitle.Render(fmt.Sprintf("%s  %s", v.Name, cli.PositionString(v.Position)))}
	for i := len(v.Stack) - 1; i >= 0; i-- {
		f := v.Stack[i]
		line := fmt.Sprintf("#%d %-16s cb=%-2d %s", i, f.Name, f.Callback, formatInts(f.Params.Int[:]))
		if f.Params.Str[0] != "" {
			line += " " + f.Params.Str[0]
		}
		if i == len(v.Stack)-1 {
			lines = append(lines, styleCurrentFrame.Render(line))
		} else {
			lines = append(lines, styleFrame.Render(line))
		}
	}
	return lines
}

// formatInts prints parameter slots, trimming trailing zeros.
func formatInts(ints []uint32) string {
	n := len(ints)
	for n > 0 && ints[n-1] == 0 {
		n--
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprint(ints[i])
	}
	return "[" + strings.Join(parts, " ") + "]"
}
