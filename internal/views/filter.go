package views

import (
	"strings"
	"time"

	"github.com/marcus/cn/internal/models"
)

// DateBucket limits notes to a recency window relative to "now"
type DateBucket string

const (
	BucketAny   DateBucket = ""
	BucketToday DateBucket = "today"
	BucketWeek  DateBucket = "week"
	BucketMonth DateBucket = "month"
)

// NoteFilter combines a free-text search with facet filters. Facets are
// ANDed together; empty facets match everything.
type NoteFilter struct {
	Search    string
	Status    models.NoteStatus
	Priority  models.Priority
	FolderID  string
	Direction models.CallDirection
	Bucket    DateBucket
}

// FilterNotes returns the notes matching the filter. The contact slice is
// consulted so the search can also hit the associated contact's phone number.
func FilterNotes(notes []models.CallNote, contacts []models.Contact, f NoteFilter, now time.Time) []models.CallNote {
	phones := make(map[string]string, len(contacts))
	for _, c := range contacts {
		phones[c.ID] = c.Phone
	}

	var out []models.CallNote
	for _, n := range notes {
		if f.Status != "" && n.Status != f.Status {
			continue
		}
		if f.Priority != "" && n.Priority != f.Priority {
			continue
		}
		if f.FolderID != "" && n.FolderID != f.FolderID {
			continue
		}
		if f.Direction != "" && n.Direction != f.Direction {
			continue
		}
		if !inBucket(n.CreatedAt, f.Bucket, now) {
			continue
		}
		if f.Search != "" && !matchesSearch(&n, phones[n.ContactID], f.Search) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// matchesSearch checks the term against contact name, note body (word
// boundary first, then substring), status label, tags, category, and the
// contact's phone number.
func matchesSearch(n *models.CallNote, phone, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	if strings.Contains(strings.ToLower(n.ContactName), term) {
		return true
	}

	body := strings.ToLower(n.Text)
	for _, word := range strings.FieldsFunc(body, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == ',' || r == '.' || r == ';' || r == ':'
	}) {
		if strings.HasPrefix(word, term) {
			return true
		}
	}
	if strings.Contains(body, term) {
		return true
	}

	if strings.Contains(strings.ToLower(n.StatusLabel()), term) {
		return true
	}
	for _, tag := range n.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	if n.Category != "" && strings.Contains(strings.ToLower(n.Category), term) {
		return true
	}
	if phone != "" && strings.Contains(phone, term) {
		return true
	}

	return false
}

func inBucket(t time.Time, bucket DateBucket, now time.Time) bool {
	switch bucket {
	case BucketAny:
		return true
	case BucketToday:
		return sameDay(t, now)
	case BucketWeek:
		start := startOfWeek(now)
		return !t.Before(start) && t.Before(start.AddDate(0, 0, 7))
	case BucketMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	}
	return true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfWeek returns midnight Monday of the week containing t
func startOfWeek(t time.Time) time.Time {
	daysBack := (int(t.Weekday()) - int(time.Monday) + 7) % 7
	y, m, d := t.AddDate(0, 0, -daysBack).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
