package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/cn/internal/models"
)

// Folders returns the full note-folder collection
func (s *Store) Folders() ([]models.NoteFolder, error) {
	return loadCollection[models.NoteFolder](s, KeyFolders)
}

// GetFolder returns the folder with the given id, or an error if absent
func (s *Store) GetFolder(id string) (*models.NoteFolder, error) {
	folders, err := s.Folders()
	if err != nil {
		return nil, err
	}
	for i := range folders {
		if folders[i].ID == id {
			return &folders[i], nil
		}
	}
	return nil, fmt.Errorf("folder not found: %s", id)
}

// FindFolder resolves a CLI reference to a folder: exact id, then
// case-insensitive name.
func (s *Store) FindFolder(ref string) (*models.NoteFolder, error) {
	folders, err := s.Folders()
	if err != nil {
		return nil, err
	}
	for i := range folders {
		if folders[i].ID == ref {
			return &folders[i], nil
		}
	}
	for i := range folders {
		if strings.EqualFold(folders[i].Name, ref) {
			return &folders[i], nil
		}
	}
	return nil, fmt.Errorf("folder not found: %s", ref)
}

// AddFolder creates a note folder
func (s *Store) AddFolder(name, color, description string) (*models.NoteFolder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	folders, err := s.Folders()
	if err != nil {
		return nil, err
	}

	folder := models.NoteFolder{
		ID:          newID(folderIDPrefix),
		Name:        strings.TrimSpace(name),
		Color:       color,
		Description: description,
		CreatedAt:   time.Now(),
	}

	folders = append(folders, folder)
	if err := saveCollection(s, KeyFolders, folders); err != nil {
		return nil, err
	}
	return &folder, nil
}

// DeleteFolder removes the folder and clears FolderID on every note that
// referenced it. Notes are unfiled, never deleted. A missing id is a silent
// no-op.
func (s *Store) DeleteFolder(id string) error {
	folders, err := s.Folders()
	if err != nil {
		return err
	}

	kept := folders[:0:0]
	for _, f := range folders {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if err := saveCollection(s, KeyFolders, kept); err != nil {
		return err
	}

	notes, err := s.Notes()
	if err != nil {
		return err
	}
	changed := false
	updated := make([]models.CallNote, len(notes))
	for i, n := range notes {
		if n.FolderID == id {
			n.FolderID = ""
			changed = true
		}
		updated[i] = n
	}
	if !changed {
		return nil
	}
	return saveCollection(s, KeyNotes, updated)
}

// seedDefaultFolders creates the four starter folders on first run
func (s *Store) seedDefaultFolders() error {
	folders, err := s.Folders()
	if err != nil {
		return err
	}
	if len(folders) > 0 {
		return nil
	}

	defaults := []struct{ name, color string }{
		{"Leads", "#3B82F6"},
		{"Customers", "#22C55E"},
		{"Suppliers", "#F97316"},
		{"Personal", "#A855F7"},
	}

	now := time.Now()
	for _, d := range defaults {
		id, err := newBulkID(folderIDPrefix)
		if err != nil {
			return fmt.Errorf("generate folder id: %w", err)
		}
		folders = append(folders, models.NoteFolder{
			ID:        id,
			Name:      d.name,
			Color:     d.color,
			CreatedAt: now,
		})
	}

	return saveCollection(s, KeyFolders, folders)
}
