package keyboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/stroke/layout"
)

// View renders the keyboard.
func (m Model) View() string {
	t := m.theme
	sess := m.dispatcher.Session()

	header := t.LayoutBadge.Render(sess.Layout.Title()) + " " + m.shiftBadge(sess.Shift)

	grid := RenderGrid(sess.Layout, sess.Shift, t, m.pending, m.hasPending)

	text := strings.ReplaceAll(m.buffer.String(), "\t", "    ")
	out := t.Output.Render(text + "▏")

	var status string
	if m.status != "" {
		if m.statusErr {
			status = t.Error.Render(m.status)
		} else {
			status = t.Muted.Render(m.status)
		}
	}

	parts := []string{header, grid, out, status}
	if m.showHelp {
		parts = append(parts, m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) shiftBadge(s layout.ShiftState) string {
	switch s {
	case layout.ShiftOn:
		return m.theme.ShiftOn.Render("⇧ shift")
	case layout.ShiftLock:
		return m.theme.ShiftLock.Render("⇪ caps")
	}
	return m.theme.Muted.Render("shift off")
}
