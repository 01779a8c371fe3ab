package views

import (
	"fmt"
	"sort"

	"github.com/marcus/cn/internal/models"
)

// Grouping selects how the note list is bucketed
type Grouping string

const (
	GroupByContact Grouping = "contact" // default: one group per contact
	GroupByDay     Grouping = "day"
	GroupByWeek    Grouping = "week"
	GroupByMonth   Grouping = "month"
	GroupByYear    Grouping = "year"
	GroupByFolder  Grouping = "folder"
)

// ValidGroupings returns all grouping modes as strings
func ValidGroupings() []string {
	return []string{
		string(GroupByContact),
		string(GroupByDay),
		string(GroupByWeek),
		string(GroupByMonth),
		string(GroupByYear),
		string(GroupByFolder),
	}
}

// IsValidGrouping checks if a grouping mode is valid
func IsValidGrouping(g Grouping) bool {
	switch g {
	case GroupByContact, GroupByDay, GroupByWeek, GroupByMonth, GroupByYear, GroupByFolder:
		return true
	}
	return false
}

// NoteGroup is one display bucket of notes. Time and folder groupings carry
// contact subgroups instead of a flat note list.
type NoteGroup struct {
	Key       string
	Title     string
	Notes     []models.CallNote
	Subgroups []NoteGroup
}

// GroupNotes buckets notes for display. Contact groups sort by name; time
// buckets sort most recent first; folder groups sort by folder name with an
// "Unfiled" bucket last. Notes sort CreatedAt-descending, except inside
// folder-contact subgroups which sort by call start time descending.
func GroupNotes(notes []models.CallNote, folders []models.NoteFolder, grouping Grouping) []NoteGroup {
	switch grouping {
	case GroupByFolder:
		return groupByFolder(notes, folders)
	case GroupByDay, GroupByWeek, GroupByMonth, GroupByYear:
		return groupByTime(notes, grouping)
	default:
		return groupByContact(notes, byCreatedDesc)
	}
}

func byCreatedDesc(a, b models.CallNote) bool {
	return a.CreatedAt.After(b.CreatedAt)
}

func byCallStartDesc(a, b models.CallNote) bool {
	return a.CallStartTime.After(b.CallStartTime)
}

func groupByContact(notes []models.CallNote, less func(a, b models.CallNote) bool) []NoteGroup {
	buckets := make(map[string][]models.CallNote)
	for _, n := range notes {
		buckets[n.ContactName] = append(buckets[n.ContactName], n)
	}

	groups := make([]NoteGroup, 0, len(buckets))
	for name, members := range buckets {
		sort.SliceStable(members, func(i, j int) bool { return less(members[i], members[j]) })
		groups = append(groups, NoteGroup{Key: name, Title: name, Notes: members})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

func timeBucketKey(n models.CallNote, grouping Grouping) (key, title string) {
	t := n.CreatedAt
	switch grouping {
	case GroupByDay:
		return t.Format("2006-01-02"), t.Format("Mon, Jan 2 2006")
	case GroupByWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week), fmt.Sprintf("Week %d, %d", week, year)
	case GroupByMonth:
		return t.Format("2006-01"), t.Format("January 2006")
	default:
		return t.Format("2006"), t.Format("2006")
	}
}

func groupByTime(notes []models.CallNote, grouping Grouping) []NoteGroup {
	type bucket struct {
		title string
		notes []models.CallNote
	}
	buckets := make(map[string]*bucket)
	for _, n := range notes {
		key, title := timeBucketKey(n, grouping)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{title: title}
			buckets[key] = b
		}
		b.notes = append(b.notes, n)
	}

	groups := make([]NoteGroup, 0, len(buckets))
	for key, b := range buckets {
		groups = append(groups, NoteGroup{
			Key:       key,
			Title:     b.title,
			Subgroups: groupByContact(b.notes, byCreatedDesc),
		})
	}
	// Most recent bucket first
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key > groups[j].Key })
	return groups
}

func groupByFolder(notes []models.CallNote, folders []models.NoteFolder) []NoteGroup {
	names := make(map[string]string, len(folders))
	for _, f := range folders {
		names[f.ID] = f.Name
	}

	buckets := make(map[string][]models.CallNote)
	var unfiled []models.CallNote
	for _, n := range notes {
		if name, ok := names[n.FolderID]; n.FolderID != "" && ok {
			buckets[name] = append(buckets[name], n)
		} else {
			unfiled = append(unfiled, n)
		}
	}

	groups := make([]NoteGroup, 0, len(buckets)+1)
	for name, members := range buckets {
		groups = append(groups, NoteGroup{
			Key:       name,
			Title:     name,
			Subgroups: groupByContact(members, byCallStartDesc),
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })

	if len(unfiled) > 0 {
		groups = append(groups, NoteGroup{
			Key:       "~unfiled",
			Title:     "Unfiled",
			Subgroups: groupByContact(unfiled, byCallStartDesc),
		})
	}

	return groups
}
