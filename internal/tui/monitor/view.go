package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/views"
)

// View renders the dashboard
func (m *Model) View() string {
	if m.Width == 0 {
		return "loading..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.Height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	leftWidth := m.Width * 3 / 5
	rightWidth := m.Width - leftWidth

	notes := m.renderPanel(PanelNotes,
		fmt.Sprintf("Notes (%d)", m.Data.NoteCount),
		m.noteLines(), leftWidth, bodyHeight)

	halves := bodyHeight / 2
	reminders := m.renderPanel(PanelReminders,
		fmt.Sprintf("Reminders (%d pending, %d overdue)",
			m.Data.ReminderStats.Pending, m.Data.ReminderStats.Overdue),
		m.reminderLines(), rightWidth, halves)
	orders := m.renderPanel(PanelOrders,
		fmt.Sprintf("Orders (%d active)", m.Data.OrderStats.Active()),
		m.orderLines(), rightWidth, bodyHeight-halves)

	right := lipgloss.JoinVertical(lipgloss.Left, reminders, orders)
	body := lipgloss.JoinHorizontal(lipgloss.Top, notes, right)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) renderHeader() string {
	parts := []string{titleStyle.Render("cn monitor")}

	if m.SearchMode {
		parts = append(parts, m.SearchInput.View())
	} else if m.SearchQuery != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.SearchQuery))
	}

	if m.StatusFilter != "" {
		parts = append(parts, "status: "+string(m.StatusFilter))
	}
	parts = append(parts, "group: "+string(m.Grouping))

	if m.Err != nil {
		parts = append(parts, overdueStyle.Render("error: "+m.Err.Error()))
	} else if !m.LastRefresh.IsZero() {
		parts = append(parts, timestampStyle.Render(m.LastRefresh.Format("15:04:05")))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "  "))
}

func (m *Model) renderFooter() string {
	return helpStyle.Render(" /: search  s: status  g: group  tab: panel  j/k: scroll  r: refresh  q: quit")
}

func (m *Model) renderPanel(panel Panel, title string, lines []string, width, height int) string {
	style := panelStyle
	if panel == m.ActivePanel {
		style = activePanelStyle
	}

	innerWidth := width - style.GetHorizontalFrameSize()
	innerHeight := height - style.GetVerticalFrameSize() - 1
	if innerHeight < 1 {
		innerHeight = 1
	}

	offset := m.Scroll[panel]
	if offset > len(lines) {
		offset = len(lines)
		m.Scroll[panel] = offset
	}
	visible := lines[offset:]
	if len(visible) > innerHeight {
		visible = visible[:innerHeight]
	}

	var b strings.Builder
	b.WriteString(panelTitleStyle.Render(title))
	b.WriteString("\n")
	if len(visible) == 0 {
		b.WriteString(subtleStyle.Render("(nothing here)"))
	} else {
		for i, line := range visible {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(truncate(line, innerWidth))
		}
	}

	return style.Width(innerWidth).Height(height - style.GetVerticalFrameSize()).Render(b.String())
}

func (m *Model) noteLines() []string {
	var lines []string
	appendGroups(&lines, m.Data.Groups, 0)
	return lines
}

func appendGroups(lines *[]string, groups []views.NoteGroup, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, g := range groups {
		*lines = append(*lines, indent+titleStyle.Render(g.Title))
		for i := range g.Notes {
			*lines = append(*lines, indent+"  "+noteLine(&g.Notes[i]))
		}
		appendGroups(lines, g.Subgroups, depth+1)
	}
}

func noteLine(n *models.CallNote) string {
	style, ok := statusStyles[n.Status]
	if !ok {
		style = subtleStyle
	}
	label := style.Render("[" + n.StatusLabel() + "]")

	text := firstLine(n.Text)
	if text == "" {
		text = subtleStyle.Render("(no text)")
	}
	return fmt.Sprintf("%s %s  %s", label, text, timestampStyle.Render(n.CreatedAt.Format("Jan 2")))
}

func (m *Model) reminderLines() []string {
	now := time.Now()
	var lines []string
	for i := range m.Data.Reminders {
		r := &m.Data.Reminders[i]
		due := r.DueDate.Format("Jan 2")
		if r.DueDate.Before(now) {
			due = overdueStyle.Render(due + " !")
		}
		line := fmt.Sprintf("%s  %s", due, r.Title)
		if r.ContactName != "" {
			line += "  " + subtleStyle.Render(r.ContactName)
		}
		lines = append(lines, line)
	}
	return lines
}

func (m *Model) orderLines() []string {
	var lines []string
	for i := range m.Data.Orders {
		o := &m.Data.Orders[i]
		style, ok := orderStatusStyles[o.Status]
		if !ok {
			style = subtleStyle
		}
		lines = append(lines, fmt.Sprintf("%s %s  %.2f",
			style.Render("["+string(o.Status)+"]"), o.ContactName, o.Total))
	}
	return lines
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// truncate clips a line to the panel width. Styled lines may render slightly
// narrow because escape codes count toward the budget; acceptable for a
// dashboard.
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
