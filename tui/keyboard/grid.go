package keyboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/stroke/layout"
	"github.com/grovetools/stroke/tui/theme"
)

var outerArrows = map[layout.Zone]string{
	layout.OutTop:    "↑",
	layout.OutRight:  "→",
	layout.OutBottom: "↓",
	layout.OutLeft:   "←",
}

// RenderGrid draws one key face per start zone, in reading order. Each face
// shows the labels of the strokes ending in its nine inner zones and, below
// it, the strokes that leave the key. active, when valid, marks the pending
// start zone.
func RenderGrid(l *layout.Layout, shift layout.ShiftState, t *theme.Theme, active layout.Zone, hasActive bool) string {
	var rows []string
	for r := 0; r < 3; r++ {
		var faces []string
		for c := 0; c < 3; c++ {
			start := layout.InnerZones[r*3+c]
			faces = append(faces, renderFace(l, shift, t, start, hasActive && start == active))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, faces...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderFace(l *layout.Layout, shift layout.ShiftState, t *theme.Theme, start layout.Zone, active bool) string {
	row := shift.Row()

	var lines []string
	for r := 0; r < 3; r++ {
		var cells []string
		for c := 0; c < 3; c++ {
			end := layout.InnerZones[r*3+c]
			cells = append(cells, renderCell(l, row, shift, t, start, end))
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	var outer []string
	for _, end := range layout.OuterZones {
		k, ok := l.Key(row, start, end)
		if !ok {
			continue
		}
		outer = append(outer, outerArrows[end]+k.LabelFor(shift).String())
	}
	footer := t.OuterLabel.Render(truncate(strings.Join(outer, " "), 9))

	face := t.Key
	if active {
		face = t.KeyActive
	}
	return lipgloss.JoinVertical(lipgloss.Center, face.Render(strings.Join(lines, "\n")), footer)
}

func renderCell(l *layout.Layout, row layout.Row, shift layout.ShiftState, t *theme.Theme, start, end layout.Zone) string {
	k, ok := l.Key(row, start, end)
	if !ok {
		return t.ZoneEmpty.Render("·")
	}
	label := truncate(k.LabelFor(shift).String(), 3)
	if start == end {
		return t.ZoneStart.Render(label)
	}
	return t.ZoneLabel.Render(label)
}

// truncate cuts s to at most n cells.
func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
