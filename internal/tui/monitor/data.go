package monitor

import (
	"sort"
	"time"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/views"
)

// RefreshDataMsg carries a full snapshot for the dashboard
type RefreshDataMsg struct {
	Timestamp time.Time

	Groups        []views.NoteGroup
	NoteCount     int
	Reminders     []models.Reminder
	ReminderStats views.ReminderStats
	Orders        []models.Order
	OrderStats    views.OrderStats

	Err error
}

// FetchData retrieves everything the dashboard displays in one pass
func FetchData(s *store.Store, search string, status models.NoteStatus, grouping views.Grouping) RefreshDataMsg {
	msg := RefreshDataMsg{Timestamp: time.Now()}
	now := msg.Timestamp

	notes, err := s.Notes()
	if err != nil {
		msg.Err = err
		return msg
	}
	contacts, err := s.Contacts()
	if err != nil {
		msg.Err = err
		return msg
	}
	folders, err := s.Folders()
	if err != nil {
		msg.Err = err
		return msg
	}

	filtered := views.FilterNotes(notes, contacts, views.NoteFilter{
		Search: search,
		Status: status,
	}, now)
	msg.Groups = views.GroupNotes(filtered, folders, grouping)
	msg.NoteCount = len(filtered)

	reminders, err := s.Reminders()
	if err != nil {
		msg.Err = err
		return msg
	}
	msg.ReminderStats = views.ReminderCounts(reminders, now)
	for _, r := range reminders {
		if r.Archived || r.Completed {
			continue
		}
		msg.Reminders = append(msg.Reminders, r)
	}
	sort.Slice(msg.Reminders, func(i, j int) bool {
		return msg.Reminders[i].DueDate.Before(msg.Reminders[j].DueDate)
	})

	orders, err := s.Orders()
	if err != nil {
		msg.Err = err
		return msg
	}
	msg.OrderStats = views.OrderCounts(orders)
	for _, o := range orders {
		if o.Status == models.OrderDelivered || o.Status == models.OrderCancelled {
			continue
		}
		msg.Orders = append(msg.Orders, o)
	}

	return msg
}
