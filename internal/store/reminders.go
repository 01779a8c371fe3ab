package store

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/timeparse"
)

// ReminderPatch holds the fields an update may change. Nil fields are left as-is.
type ReminderPatch struct {
	Title       *string
	Description *string
	DueDate     *time.Time
}

// Reminders returns the full reminder collection
func (s *Store) Reminders() ([]models.Reminder, error) {
	return loadCollection[models.Reminder](s, KeyReminders)
}

// GetReminder returns the reminder with the given id, or an error if absent
func (s *Store) GetReminder(id string) (*models.Reminder, error) {
	reminders, err := s.Reminders()
	if err != nil {
		return nil, err
	}
	for i := range reminders {
		if reminders[i].ID == id {
			return &reminders[i], nil
		}
	}
	return nil, fmt.Errorf("reminder not found: %s", id)
}

// AddReminder creates a reminder. Title and due date are required.
// noteID links back to the originating note when the reminder came out of
// time detection.
func (s *Store) AddReminder(contactID, contactName, title, description string, due time.Time, noteID string) (*models.Reminder, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("reminder title is required")
	}
	if due.IsZero() {
		return nil, fmt.Errorf("reminder due date is required")
	}

	reminders, err := s.Reminders()
	if err != nil {
		return nil, err
	}

	reminder := models.Reminder{
		ID:          newID(reminderIDPrefix),
		ContactID:   contactID,
		ContactName: contactName,
		Title:       strings.TrimSpace(title),
		Description: description,
		DueDate:     due,
		NoteID:      noteID,
		CreatedAt:   time.Now(),
	}

	reminders = append(reminders, reminder)
	if err := saveCollection(s, KeyReminders, reminders); err != nil {
		return nil, err
	}
	return &reminder, nil
}

// UpdateReminder applies a patch to the matching reminder. A missing id is a
// silent no-op.
func (s *Store) UpdateReminder(id string, patch ReminderPatch) error {
	reminders, err := s.Reminders()
	if err != nil {
		return err
	}

	updated := make([]models.Reminder, len(reminders))
	for i, r := range reminders {
		if r.ID == id {
			if patch.Title != nil {
				r.Title = *patch.Title
			}
			if patch.Description != nil {
				r.Description = *patch.Description
			}
			if patch.DueDate != nil {
				r.DueDate = *patch.DueDate
			}
		}
		updated[i] = r
	}

	return saveCollection(s, KeyReminders, updated)
}

// CompleteReminder marks the matching reminder done and stamps the completion
// time. A missing id is a silent no-op.
func (s *Store) CompleteReminder(id string) error {
	reminders, err := s.Reminders()
	if err != nil {
		return err
	}

	now := time.Now()
	updated := make([]models.Reminder, len(reminders))
	for i, r := range reminders {
		if r.ID == id && !r.Completed {
			r.Completed = true
			r.CompletedAt = &now
		}
		updated[i] = r
	}

	return saveCollection(s, KeyReminders, updated)
}

// ArchiveReminder flags the matching reminder archived. Archived reminders
// are the only soft-deleted records in the system.
func (s *Store) ArchiveReminder(id string) error {
	reminders, err := s.Reminders()
	if err != nil {
		return err
	}

	updated := make([]models.Reminder, len(reminders))
	for i, r := range reminders {
		if r.ID == id {
			r.Archived = true
		}
		updated[i] = r
	}

	return saveCollection(s, KeyReminders, updated)
}

// SuggestFollowUps creates a follow-up reminder for each clock time detected
// in the note's text. The note is already saved when this runs, so failures
// are reported on stderr and swallowed rather than propagated. Candidates
// land in the same millisecond, so ids take the bulk form.
func (s *Store) SuggestFollowUps(note *models.CallNote, now time.Time) []models.Reminder {
	candidates := timeparse.DetectTimes(note.Text, now)
	if len(candidates) == 0 {
		return nil
	}

	reminders, err := s.Reminders()
	if err != nil {
		fmt.Fprintf(os.Stderr, "reminder suggestion failed: %v\n", err)
		return nil
	}

	var created []models.Reminder
	for _, c := range candidates {
		id, err := newBulkID(reminderIDPrefix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reminder suggestion failed: %v\n", err)
			continue
		}
		created = append(created, models.Reminder{
			ID:          id,
			ContactID:   note.ContactID,
			ContactName: note.ContactName,
			Title:       fmt.Sprintf("Follow up with %s", note.ContactName),
			Description: fmt.Sprintf("Suggested from note %s", note.ID),
			DueDate:     c.At,
			NoteID:      note.ID,
			CreatedAt:   time.Now(),
		})
	}
	if len(created) == 0 {
		return nil
	}

	if err := saveCollection(s, KeyReminders, append(reminders, created...)); err != nil {
		fmt.Fprintf(os.Stderr, "reminder suggestion failed: %v\n", err)
		return nil
	}
	return created
}

// DeleteReminder removes the matching reminder. A missing id is a silent no-op.
func (s *Store) DeleteReminder(id string) error {
	reminders, err := s.Reminders()
	if err != nil {
		return err
	}

	kept := reminders[:0:0]
	for _, r := range reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	return saveCollection(s, KeyReminders, kept)
}
