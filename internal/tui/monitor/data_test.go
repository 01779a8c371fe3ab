package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/views"
)

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Initialize(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	contact, err := s.AddContact("Maria", "555")
	require.NoError(t, err)

	_, err = s.AddNote(store.NoteDraft{ContactID: contact.ID, ContactName: contact.Name, Text: "discussed pricing"})
	require.NoError(t, err)

	_, err = s.AddReminder(contact.ID, contact.Name, "Send quote", "", time.Now().Add(24*time.Hour), "")
	require.NoError(t, err)

	_, err = s.AddOrder(contact.ID, contact.Name, []models.OrderItem{{Name: "Mug", Price: 10, Quantity: 2}}, "")
	require.NoError(t, err)

	return s
}

func TestFetchData(t *testing.T) {
	s := seededStore(t)

	msg := FetchData(s, "", "", views.GroupByContact)
	require.NoError(t, msg.Err)

	assert.Equal(t, 1, msg.NoteCount)
	require.Len(t, msg.Groups, 1)
	assert.Equal(t, "Maria", msg.Groups[0].Title)

	assert.Len(t, msg.Reminders, 1)
	assert.Equal(t, 1, msg.ReminderStats.Pending)

	assert.Len(t, msg.Orders, 1)
	assert.Equal(t, 1, msg.OrderStats.Active())
}

func TestFetchDataSearchNarrows(t *testing.T) {
	s := seededStore(t)

	msg := FetchData(s, "pricing", "", views.GroupByContact)
	require.NoError(t, msg.Err)
	assert.Equal(t, 1, msg.NoteCount)

	msg = FetchData(s, "nonexistent", "", views.GroupByContact)
	require.NoError(t, msg.Err)
	assert.Equal(t, 0, msg.NoteCount)
}

func TestFetchDataHidesSettledWork(t *testing.T) {
	s := seededStore(t)

	reminders, err := s.Reminders()
	require.NoError(t, err)
	require.NoError(t, s.CompleteReminder(reminders[0].ID))

	orders, err := s.Orders()
	require.NoError(t, err)
	delivered := models.OrderDelivered
	require.NoError(t, s.UpdateOrder(orders[0].ID, store.OrderPatch{Status: &delivered}))

	msg := FetchData(s, "", "", views.GroupByContact)
	require.NoError(t, msg.Err)
	assert.Empty(t, msg.Reminders, "completed reminders stay off the dashboard")
	assert.Empty(t, msg.Orders, "delivered orders stay off the dashboard")
	assert.Equal(t, 1, msg.ReminderStats.Completed)
	assert.Equal(t, 1, msg.OrderStats.Delivered)
}

func TestStatusFilterCycle(t *testing.T) {
	got := models.NoteStatus("")
	var seen []models.NoteStatus
	for i := 0; i < 4; i++ {
		got = nextStatusFilter(got)
		seen = append(seen, got)
	}
	assert.Equal(t, []models.NoteStatus{
		models.StatusFollowUp, models.StatusWaitingReply, models.StatusClosed, "",
	}, seen)
}

func TestGroupingCycleCoversAllModes(t *testing.T) {
	g := views.GroupByContact
	seen := map[views.Grouping]bool{g: true}
	for i := 0; i < 4; i++ {
		g = nextGrouping(g)
		seen[g] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, views.GroupByContact, nextGrouping(g), "cycle wraps back to contact")
}
