package views

import (
	"testing"
	"time"

	"github.com/marcus/cn/internal/models"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local) // Tuesday

func note(id, contactID, contactName string, created time.Time) models.CallNote {
	return models.CallNote{
		ID:            id,
		ContactID:     contactID,
		ContactName:   contactName,
		Status:        models.StatusFollowUp,
		CallStartTime: created,
		CallEndTime:   created,
		CreatedAt:     created,
	}
}

func TestContactSections(t *testing.T) {
	contacts := []models.Contact{
		{ID: "1", Name: "maria"},
		{ID: "2", Name: "Marcos"},
		{ID: "3", Name: "Ana"},
		{ID: "4", Name: "123 Bakery"},
		{ID: "5", Name: "  zoe"},
	}

	sections := ContactSections(contacts)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	want := []string{"#", "A", "M", "Z"}
	if len(titles) != len(want) {
		t.Fatalf("sections = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("sections = %v, want %v", titles, want)
		}
	}

	// Members sorted case-insensitively within a section
	var m *Section
	for i := range sections {
		if sections[i].Title == "M" {
			m = &sections[i]
		}
	}
	if m == nil || len(m.Contacts) != 2 {
		t.Fatalf("expected 2 contacts under M")
	}
	if m.Contacts[0].Name != "Marcos" || m.Contacts[1].Name != "maria" {
		t.Errorf("M section order = %q, %q", m.Contacts[0].Name, m.Contacts[1].Name)
	}
}

func TestFilterNotesFacets(t *testing.T) {
	notes := []models.CallNote{
		note("n1", "c1", "Maria", testNow.Add(-time.Hour)),
		note("n2", "c2", "Jo", testNow.Add(-48*time.Hour)),
	}
	notes[0].Priority = models.PriorityHigh
	notes[1].Status = models.StatusClosed
	notes[1].FolderID = "f1"
	notes[1].Direction = models.DirectionInbound

	tests := []struct {
		name   string
		filter NoteFilter
		want   []string
	}{
		{"no filter", NoteFilter{}, []string{"n1", "n2"}},
		{"by status", NoteFilter{Status: models.StatusClosed}, []string{"n2"}},
		{"by priority", NoteFilter{Priority: models.PriorityHigh}, []string{"n1"}},
		{"by folder", NoteFilter{FolderID: "f1"}, []string{"n2"}},
		{"by direction", NoteFilter{Direction: models.DirectionInbound}, []string{"n2"}},
		{"today bucket", NoteFilter{Bucket: BucketToday}, []string{"n1"}},
		{"facets AND", NoteFilter{Status: models.StatusClosed, FolderID: "f2"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterNotes(notes, nil, tt.filter, testNow)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d notes, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("note %d = %s, want %s", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestFilterNotesSearch(t *testing.T) {
	contacts := []models.Contact{{ID: "c1", Name: "Maria Santos", Phone: "+5511987654321"}}

	n := note("n1", "c1", "Maria Santos", testNow)
	n.Text = "Discussed bulk pricing for mugs.\nShe wants delivery by Friday."
	n.Tags = []string{"quote"}
	n.Category = "wholesale"
	notes := []models.CallNote{n}

	match := []string{
		"maria",      // contact name
		"pricing",    // body word
		"pric",       // body word prefix
		"livery",     // body substring fallback
		"follow",     // status label
		"quote",      // tag
		"wholesale",  // category
		"5511987654", // phone via contact
	}
	for _, term := range match {
		if got := FilterNotes(notes, contacts, NoteFilter{Search: term}, testNow); len(got) != 1 {
			t.Errorf("search %q missed", term)
		}
	}

	miss := []string{"invoice", "carlos"}
	for _, term := range miss {
		if got := FilterNotes(notes, contacts, NoteFilter{Search: term}, testNow); len(got) != 0 {
			t.Errorf("search %q should not match", term)
		}
	}
}

func TestGroupByContactOrder(t *testing.T) {
	t1 := testNow.Add(-2 * time.Hour)
	t2 := testNow.Add(-1 * time.Hour)
	notes := []models.CallNote{
		note("older", "c1", "Maria", t1),
		note("newer", "c1", "Maria", t2),
		note("other", "c2", "Ana", t1),
	}

	groups := GroupNotes(notes, nil, GroupByContact)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Title != "Ana" || groups[1].Title != "Maria" {
		t.Errorf("group order = %q, %q", groups[0].Title, groups[1].Title)
	}

	maria := groups[1]
	if maria.Notes[0].ID != "newer" || maria.Notes[1].ID != "older" {
		t.Errorf("notes must sort newest first, got %s then %s", maria.Notes[0].ID, maria.Notes[1].ID)
	}
}

func TestGroupByTimeBucketsDescend(t *testing.T) {
	notes := []models.CallNote{
		note("jan", "c1", "Maria", time.Date(2026, 1, 5, 10, 0, 0, 0, time.Local)),
		note("mar", "c1", "Maria", time.Date(2026, 3, 5, 10, 0, 0, 0, time.Local)),
	}

	groups := GroupNotes(notes, nil, GroupByMonth)
	if len(groups) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(groups))
	}
	if groups[0].Key != "2026-03" || groups[1].Key != "2026-01" {
		t.Errorf("buckets = %s, %s; want most recent first", groups[0].Key, groups[1].Key)
	}
	if len(groups[0].Subgroups) != 1 || groups[0].Subgroups[0].Title != "Maria" {
		t.Errorf("time buckets carry contact subgroups")
	}
}

func TestGroupByFolderUnfiledLast(t *testing.T) {
	folders := []models.NoteFolder{
		{ID: "f1", Name: "Leads"},
		{ID: "f2", Name: "Customers"},
	}
	n1 := note("n1", "c1", "Maria", testNow)
	n1.FolderID = "f1"
	n2 := note("n2", "c1", "Maria", testNow)
	n2.FolderID = "f2"
	n3 := note("n3", "c1", "Maria", testNow) // unfiled
	n4 := note("n4", "c1", "Maria", testNow)
	n4.FolderID = "gone" // dangling reference counts as unfiled

	groups := GroupNotes([]models.CallNote{n1, n2, n3, n4}, folders, GroupByFolder)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Title != "Customers" || groups[1].Title != "Leads" {
		t.Errorf("folder groups sort by name, got %q, %q", groups[0].Title, groups[1].Title)
	}
	last := groups[2]
	if last.Title != "Unfiled" {
		t.Fatalf("last group = %q, want Unfiled", last.Title)
	}
	if len(last.Subgroups) != 1 || len(last.Subgroups[0].Notes) != 2 {
		t.Errorf("unfiled bucket should hold 2 notes")
	}
}

func TestReminderCounts(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)
	today := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	nextWeek := testNow.AddDate(0, 0, 7)
	done := testNow

	reminders := []models.Reminder{
		{ID: "r1", Title: "overdue", DueDate: yesterday},
		{ID: "r2", Title: "today", DueDate: today},
		{ID: "r3", Title: "future", DueDate: nextWeek},
		{ID: "r4", Title: "done", DueDate: yesterday, Completed: true, CompletedAt: &done},
		{ID: "r5", Title: "archived", DueDate: yesterday, Archived: true},
	}

	stats := ReminderCounts(reminders, testNow)
	if stats.Pending != 3 {
		t.Errorf("Pending = %d, want 3 (overdue and due-today stay pending)", stats.Pending)
	}
	if stats.Overdue != 1 {
		t.Errorf("Overdue = %d, want 1", stats.Overdue)
	}
	if stats.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", stats.DueToday)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1 (archived excluded)", stats.Completed)
	}
}

func TestOrderCounts(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderPending},
		{Status: models.OrderConfirmed},
		{Status: models.OrderShipped},
		{Status: models.OrderShipped},
		{Status: models.OrderDelivered},
		{Status: models.OrderCancelled},
	}

	stats := OrderCounts(orders)
	if stats.Active() != 4 {
		t.Errorf("Active() = %d, want 4", stats.Active())
	}
	if stats.Delivered != 1 || stats.Cancelled != 1 {
		t.Errorf("Delivered/Cancelled = %d/%d, want 1/1", stats.Delivered, stats.Cancelled)
	}
}

func TestStartOfWeekIsMonday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	sunday := time.Date(2026, 3, 15, 12, 0, 0, 0, time.Local)
	got := startOfWeek(sunday)
	want := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("startOfWeek(Sunday) = %v, want %v", got, want)
	}
}
