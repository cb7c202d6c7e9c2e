package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const pagerHelp = "←/h prev · →/l next · g first · G last · : jump · q quit"

// View renders the current view (Bubble Tea interface).
func (m *PagerModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	sections := []string{
		HeaderStyle.Render("pagebar"),
		m.table.View(),
		RenderRange(m.pager.Range(), m.pager.ActivePage()),
		m.renderStatus(),
	}

	if m.state == ViewStateJump {
		sections = append(sections, m.jumpInput.View())
	} else {
		sections = append(sections, SubtleStyle.Render(pagerHelp))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStatus shows the page position and the item span of the active page.
func (m *PagerModel) renderStatus() string {
	status := PageStatus(m.pager.ActivePage(), m.pager.Pages())

	start, end := m.params.Window(m.pager.ActivePage())
	if end > start {
		status += " | items " + FormatNumber(start+1) + "-" + FormatNumber(end) +
			" of " + FormatNumber(m.params.Items)
	}

	return LabelStyle.Render(status)
}
