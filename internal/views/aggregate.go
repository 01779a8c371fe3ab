package views

import (
	"time"

	"github.com/marcus/cn/internal/models"
)

// ReminderStats holds the reminder counts shown in list headers. Counts are
// computed against the supplied "now" on every call, never cached.
type ReminderStats struct {
	Pending   int
	Overdue   int
	DueToday  int
	Completed int
}

// ReminderCounts tallies non-archived reminders against now. Overdue and
// due-today reminders are also pending; the buckets overlap deliberately so
// each badge reads correctly on its own.
func ReminderCounts(reminders []models.Reminder, now time.Time) ReminderStats {
	var stats ReminderStats
	for _, r := range reminders {
		if r.Archived {
			continue
		}
		if r.Completed {
			stats.Completed++
			continue
		}
		stats.Pending++
		if sameDay(r.DueDate, now) {
			stats.DueToday++
		} else if r.DueDate.Before(now) {
			stats.Overdue++
		}
	}
	return stats
}

// OrderStats holds per-status order counts
type OrderStats struct {
	Pending   int
	Confirmed int
	Shipped   int
	Delivered int
	Cancelled int
}

// Active returns the number of orders still moving through the pipeline
func (s OrderStats) Active() int {
	return s.Pending + s.Confirmed + s.Shipped
}

// OrderCounts tallies orders by status
func OrderCounts(orders []models.Order) OrderStats {
	var stats OrderStats
	for _, o := range orders {
		switch o.Status {
		case models.OrderPending:
			stats.Pending++
		case models.OrderConfirmed:
			stats.Confirmed++
		case models.OrderShipped:
			stats.Shipped++
		case models.OrderDelivered:
			stats.Delivered++
		case models.OrderCancelled:
			stats.Cancelled++
		}
	}
	return stats
}
