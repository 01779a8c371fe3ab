package store

import (
	"fmt"
	"time"

	"github.com/marcus/cn/internal/models"
)

// NoteDraft carries the fields for a new call note. The façade fills in
// id and creation timestamp.
type NoteDraft struct {
	ContactID     string
	ContactName   string
	Text          string
	CallStartTime time.Time
	CallEndTime   time.Time
	Direction     models.CallDirection
	Status        models.NoteStatus
	StatusCustom  string
	Priority      models.Priority
	Category      string
	Tags          []string
	FolderID      string
	AutoGenerated bool
}

// NotePatch holds the fields an update may change. Nil fields are left as-is.
type NotePatch struct {
	Text         *string
	Status       *models.NoteStatus
	StatusCustom *string
	Priority     *models.Priority
	Category     *string
	Tags         *[]string
	FolderID     *string
}

// Notes returns the full call-note collection
func (s *Store) Notes() ([]models.CallNote, error) {
	return loadCollection[models.CallNote](s, KeyNotes)
}

// GetNote returns the note with the given id, or an error if absent
func (s *Store) GetNote(id string) (*models.CallNote, error) {
	notes, err := s.Notes()
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ID == id {
			return &notes[i], nil
		}
	}
	return nil, fmt.Errorf("note not found: %s", id)
}

// AddNote creates a call note from a draft. The contact name is denormalized
// here and never re-synced afterwards.
func (s *Store) AddNote(draft NoteDraft) (*models.CallNote, error) {
	if draft.ContactID == "" {
		return nil, fmt.Errorf("note contact is required")
	}
	if draft.Status == "" {
		draft.Status = models.StatusFollowUp
	}
	if !models.IsValidStatus(draft.Status) {
		return nil, fmt.Errorf("invalid status: %s", draft.Status)
	}
	if !models.IsValidPriority(draft.Priority) {
		return nil, fmt.Errorf("invalid priority: %s", draft.Priority)
	}

	notes, err := s.Notes()
	if err != nil {
		return nil, err
	}

	duration := int(draft.CallEndTime.Sub(draft.CallStartTime).Seconds())
	if duration < 0 {
		duration = 0
	}

	note := models.CallNote{
		ID:            newID(noteIDPrefix),
		ContactID:     draft.ContactID,
		ContactName:   draft.ContactName,
		Text:          draft.Text,
		CallStartTime: draft.CallStartTime,
		CallEndTime:   draft.CallEndTime,
		DurationSecs:  duration,
		Direction:     draft.Direction,
		Status:        draft.Status,
		StatusCustom:  draft.StatusCustom,
		Priority:      draft.Priority,
		Category:      draft.Category,
		Tags:          draft.Tags,
		FolderID:      draft.FolderID,
		AutoGenerated: draft.AutoGenerated,
		CreatedAt:     time.Now(),
	}

	notes = append(notes, note)
	if err := saveCollection(s, KeyNotes, notes); err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote applies a patch to the matching note and refreshes UpdatedAt.
// A missing id is a silent no-op.
func (s *Store) UpdateNote(id string, patch NotePatch) error {
	notes, err := s.Notes()
	if err != nil {
		return err
	}

	updated := make([]models.CallNote, len(notes))
	for i, n := range notes {
		if n.ID == id {
			if patch.Text != nil {
				n.Text = *patch.Text
			}
			if patch.Status != nil {
				if !models.IsValidStatus(*patch.Status) {
					return fmt.Errorf("invalid status: %s", *patch.Status)
				}
				n.Status = *patch.Status
			}
			if patch.StatusCustom != nil {
				n.StatusCustom = *patch.StatusCustom
			}
			if patch.Priority != nil {
				if !models.IsValidPriority(*patch.Priority) {
					return fmt.Errorf("invalid priority: %s", *patch.Priority)
				}
				n.Priority = *patch.Priority
			}
			if patch.Category != nil {
				n.Category = *patch.Category
			}
			if patch.Tags != nil {
				n.Tags = *patch.Tags
			}
			if patch.FolderID != nil {
				n.FolderID = *patch.FolderID
			}
			n.UpdatedAt = time.Now()
		}
		updated[i] = n
	}

	return saveCollection(s, KeyNotes, updated)
}

// DeleteNote removes the matching note. A missing id is a silent no-op.
func (s *Store) DeleteNote(id string) error {
	notes, err := s.Notes()
	if err != nil {
		return err
	}

	kept := notes[:0:0]
	for _, n := range notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}

	return saveCollection(s, KeyNotes, kept)
}
