package tui

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/wa-chat-stats/internal/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// participant is one selectable scope in the left panel.
type participant struct {
	Name     string
	Messages int
}

// renderList renders the left panel: the participant list with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.visible) == 0 {
		return lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No participants")
	}

	var lines []string
	for i := m.listOffset; i < len(m.visible) && len(lines) < height; i++ {
		lines = append(lines, formatParticipant(m.visible[i], width, i == m.cursor))
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

// formatParticipant renders "> name ........ count" fitted to width.
func formatParticipant(p participant, width int, selected bool) string {
	count := fmt.Sprintf("%d", p.Messages)
	nameMax := width - 2 - len(count) - 1
	if nameMax < 1 {
		nameMax = 1
	}
	name := runewidth.Truncate(p.Name, nameMax, "…")
	name = runewidth.FillRight(name, nameMax)

	if p.Name == stats.Overall {
		name = styleOverall.Render(name)
	}
	line := name + " " + styleCount.Render(count)
	if selected {
		return styleListSelected.Render("> ") + line
	}
	return "  " + line
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	if listHeight < 1 {
		listHeight = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+listHeight {
		m.listOffset = m.cursor - listHeight + 1
	}
}

// applyFilter narrows the list to names containing the filter text.
func (m *model) applyFilter(filter string) {
	filter = strings.ToLower(strings.TrimSpace(filter))
	visible := make([]participant, 0, len(m.participants))
	for _, p := range m.participants {
		if filter == "" || strings.Contains(strings.ToLower(p.Name), filter) {
			visible = append(visible, p)
		}
	}
	m.visible = visible
	m.cursor = 0
	m.listOffset = 0
}
