// Package output provides styled terminal output helpers (success, error,
// warning, note/reminder/order formatting) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/cn/internal/models"
)

var (
	// Styles
	titleStyle    = lipgloss.NewStyle().Bold(true)
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	priorityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	statusStyles  = map[models.NoteStatus]lipgloss.Style{
		models.StatusFollowUp:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.StatusWaitingReply: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.StatusClosed:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		models.StatusOther:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	}
	orderStatusStyles = map[models.OrderStatus]lipgloss.Style{
		models.OrderPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		models.OrderConfirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.OrderShipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		models.OrderDelivered: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		models.OrderCancelled: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("ERROR: " + fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Println(warningStyle.Render("Warning: " + fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Println(fmt.Sprintf(format, args...))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// FormatStatus formats a note status with color
func FormatStatus(s models.NoteStatus) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatOrderStatus formats an order status with color
func FormatOrderStatus(s models.OrderStatus) string {
	style, ok := orderStatusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(fmt.Sprintf("[%s]", s))
}

// FormatPriority formats a priority; empty priorities render as nothing
func FormatPriority(p models.Priority) string {
	if p == "" {
		return ""
	}
	return priorityStyle.Render(fmt.Sprintf("[%s]", p))
}

// FormatDirection returns an arrow for the call direction
func FormatDirection(d models.CallDirection) string {
	switch d {
	case models.DirectionInbound:
		return "←"
	case models.DirectionOutbound:
		return "→"
	}
	return " "
}

// FormatDuration renders call duration as "3m 05s" or "45s"
func FormatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %02ds", secs/60, secs%60)
}

// FormatMoney renders an amount with two decimals
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatNoteShort formats a note as a single list line
func FormatNoteShort(n *models.CallNote, display models.NoteDisplay) string {
	var parts []string
	parts = append(parts, titleStyle.Render(n.ID))
	if display.ShowDirection {
		parts = append(parts, FormatDirection(n.Direction))
	}
	parts = append(parts, n.ContactName)
	if p := FormatPriority(n.Priority); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, FormatStatus(n.Status))
	if display.ShowDuration && n.DurationSecs > 0 {
		parts = append(parts, subtleStyle.Render(FormatDuration(n.DurationSecs)))
	}
	if display.ShowTags && len(n.Tags) > 0 {
		parts = append(parts, subtleStyle.Render("#"+strings.Join(n.Tags, " #")))
	}
	parts = append(parts, subtleStyle.Render(FormatTimeAgo(n.CreatedAt)))
	return strings.Join(parts, "  ")
}

// FormatReminderShort formats a reminder as a single list line
func FormatReminderShort(r *models.Reminder, now time.Time) string {
	var parts []string
	parts = append(parts, titleStyle.Render(r.ID))

	mark := "○"
	switch {
	case r.Completed:
		mark = successStyle.Render("✓")
	case r.DueDate.Before(now):
		mark = errorStyle.Render("!")
	}
	parts = append(parts, mark)

	parts = append(parts, r.Title)
	if r.ContactName != "" {
		parts = append(parts, subtleStyle.Render(r.ContactName))
	}
	parts = append(parts, subtleStyle.Render(r.DueDate.Format("2006-01-02 15:04")))
	return strings.Join(parts, "  ")
}

// FormatOrderShort formats an order as a single list line
func FormatOrderShort(o *models.Order) string {
	var parts []string
	parts = append(parts, titleStyle.Render(o.ID))
	parts = append(parts, o.ContactName)
	parts = append(parts, fmt.Sprintf("%d item(s)", len(o.Items)))
	parts = append(parts, FormatMoney(o.Total))
	parts = append(parts, FormatOrderStatus(o.Status))
	parts = append(parts, subtleStyle.Render(FormatTimeAgo(o.CreatedAt)))
	return strings.Join(parts, "  ")
}

// FormatTimeAgo formats a time as a human-readable "ago" string
func FormatTimeAgo(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1h ago"
		}
		return fmt.Sprintf("%dh ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Format("2006-01-02")
	}
}

// SectionHeader returns a formatted section header for CLI output
func SectionHeader(title string) string {
	return fmt.Sprintf("\n%s:\n", strings.ToUpper(title))
}

// Subtle renders text in the muted style
func Subtle(s string) string {
	return subtleStyle.Render(s)
}

// Bold renders text in the title style
func Bold(s string) string {
	return titleStyle.Render(s)
}
