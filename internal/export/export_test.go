package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
)

var testNow = time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)

func sampleBundle() *Bundle {
	return &Bundle{
		Contacts: []models.Contact{
			{ID: "ct-2", Name: "maria", Phone: "555"},
			{ID: "ct-1", Name: "Ana", Phone: "556"},
		},
		Notes: []models.CallNote{
			{ID: "cn-1", ContactName: "Ana", Text: "first line\nsecond line", Status: models.StatusFollowUp, CreatedAt: testNow},
		},
		Reminders: []models.Reminder{
			{ID: "rm-1", Title: "Send quote", ContactName: "Ana", DueDate: testNow, Completed: true},
		},
		Orders: []models.Order{
			{ID: "or-1", ContactName: "maria", Total: 25, Status: models.OrderPending,
				Items: []models.OrderItem{{Name: "Mug", Price: 12.5, Quantity: 2}}},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleBundle()))

	var decoded Bundle
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.Contacts, 2)
	assert.Len(t, decoded.Notes, 1)

	// Empty collections must be absent, not null
	assert.NotContains(t, buf.String(), "note_folders")
	assert.NotContains(t, buf.String(), "product_catalogs")
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleBundle()))
	out := buf.String()

	assert.Contains(t, out, "CONTACTS (2)")
	assert.Contains(t, out, "CALL NOTES (1)")
	assert.Contains(t, out, "REMINDERS (1)")
	assert.Contains(t, out, "ORDERS (1)")
	assert.NotContains(t, out, "FOLDERS")

	// Contacts sort case-insensitively
	assert.Less(t, strings.Index(out, "Ana"), strings.Index(out, "maria"))

	// Multi-line note text is clipped to its first line
	assert.Contains(t, out, "first line")
	assert.NotContains(t, out, "second line")

	// Completed reminders show a checked box
	assert.Contains(t, out, "[x] Send quote")

	assert.Contains(t, out, "2x Mug @ 12.50")
}

func TestCollectSelectsCollections(t *testing.T) {
	s, err := store.Initialize(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	contact, err := s.AddContact("Maria", "555")
	require.NoError(t, err)
	_, err = s.AddNote(store.NoteDraft{ContactID: contact.ID, ContactName: contact.Name, Text: "hi"})
	require.NoError(t, err)

	onlyContacts, err := Collect(s, []string{"contacts"})
	require.NoError(t, err)
	assert.Len(t, onlyContacts.Contacts, 1)
	assert.Empty(t, onlyContacts.Notes)
	assert.Empty(t, onlyContacts.Folders)

	everything, err := Collect(s, nil)
	require.NoError(t, err)
	assert.Len(t, everything.Contacts, 1)
	assert.Len(t, everything.Notes, 1)
	assert.Len(t, everything.Folders, 4, "seeded folders come along")
}

func TestFirstLineTruncation(t *testing.T) {
	long := strings.Repeat("a", 80)
	got := firstLine(long)
	assert.Len(t, got, 60)
	assert.True(t, strings.HasSuffix(got, "..."))

	assert.Equal(t, "short", firstLine("short"))
}
