package monitor

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/cn/internal/models"
)

var (
	// Base colors
	primaryColor = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("241")
	successColor = lipgloss.Color("42")
	warningColor = lipgloss.Color("214")
	errorColor   = lipgloss.Color("196")

	// Panel styles
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(primaryColor).
				Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("237")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	// Text styles
	titleStyle     = lipgloss.NewStyle().Bold(true)
	subtleStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle      = lipgloss.NewStyle().Foreground(mutedColor)
	timestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	overdueStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	doneStyle      = lipgloss.NewStyle().Foreground(successColor)

	// Status styles
	statusStyles = map[models.NoteStatus]lipgloss.Style{
		models.StatusFollowUp:     lipgloss.NewStyle().Foreground(warningColor),
		models.StatusWaitingReply: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.StatusClosed:       lipgloss.NewStyle().Foreground(mutedColor),
		models.StatusOther:        lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
	}

	orderStatusStyles = map[models.OrderStatus]lipgloss.Style{
		models.OrderPending:   lipgloss.NewStyle().Foreground(warningColor),
		models.OrderConfirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
		models.OrderShipped:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		models.OrderDelivered: lipgloss.NewStyle().Foreground(successColor),
		models.OrderCancelled: lipgloss.NewStyle().Foreground(errorColor),
	}
)
