package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcus/cn/internal/models"
)

// ContactPatch holds the fields an update may change. Nil fields are left as-is.
type ContactPatch struct {
	Name      *string
	Phone     *string
	CardImage *string
}

// Contacts returns the full contact collection
func (s *Store) Contacts() ([]models.Contact, error) {
	return loadCollection[models.Contact](s, KeyContacts)
}

// GetContact returns the contact with the given id, or an error if absent
func (s *Store) GetContact(id string) (*models.Contact, error) {
	contacts, err := s.Contacts()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == id {
			return &contacts[i], nil
		}
	}
	return nil, fmt.Errorf("contact not found: %s", id)
}

// FindContact resolves a CLI reference to a contact: exact id first, then
// case-insensitive name, then phone.
func (s *Store) FindContact(ref string) (*models.Contact, error) {
	contacts, err := s.Contacts()
	if err != nil {
		return nil, err
	}
	for i := range contacts {
		if contacts[i].ID == ref {
			return &contacts[i], nil
		}
	}
	for i := range contacts {
		if strings.EqualFold(contacts[i].Name, ref) {
			return &contacts[i], nil
		}
	}
	for i := range contacts {
		if contacts[i].Phone == ref {
			return &contacts[i], nil
		}
	}
	return nil, fmt.Errorf("contact not found: %s", ref)
}

// AddContact creates a contact. Name and phone are required.
func (s *Store) AddContact(name, phone string) (*models.Contact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("contact name is required")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("contact phone number is required")
	}

	contacts, err := s.Contacts()
	if err != nil {
		return nil, err
	}

	contact := models.Contact{
		ID:        newID(contactIDPrefix),
		Name:      strings.TrimSpace(name),
		Phone:     strings.TrimSpace(phone),
		CreatedAt: time.Now(),
	}

	contacts = append(contacts, contact)
	if err := saveCollection(s, KeyContacts, contacts); err != nil {
		return nil, err
	}
	return &contact, nil
}

// AddContacts bulk-inserts contacts with collision-safe ids. Callers are
// responsible for de-duplication; the store appends what it is given.
func (s *Store) AddContacts(newContacts []models.Contact) (int, error) {
	if len(newContacts) == 0 {
		return 0, nil
	}

	contacts, err := s.Contacts()
	if err != nil {
		return 0, err
	}

	now := time.Now()
	for i := range newContacts {
		id, err := newBulkID(contactIDPrefix)
		if err != nil {
			return 0, fmt.Errorf("generate contact id: %w", err)
		}
		newContacts[i].ID = id
		newContacts[i].CreatedAt = now
		contacts = append(contacts, newContacts[i])
	}

	if err := saveCollection(s, KeyContacts, contacts); err != nil {
		return 0, err
	}
	return len(newContacts), nil
}

// UpdateContact applies a patch to the matching contact. A missing id is a
// silent no-op. Renames do not touch the denormalized names on existing
// notes, reminders, or orders.
func (s *Store) UpdateContact(id string, patch ContactPatch) error {
	contacts, err := s.Contacts()
	if err != nil {
		return err
	}

	updated := make([]models.Contact, len(contacts))
	for i, c := range contacts {
		if c.ID == id {
			if patch.Name != nil {
				c.Name = *patch.Name
			}
			if patch.Phone != nil {
				c.Phone = *patch.Phone
			}
			if patch.CardImage != nil {
				c.CardImage = *patch.CardImage
			}
		}
		updated[i] = c
	}

	return saveCollection(s, KeyContacts, updated)
}

// DeleteContact removes the matching contact. A missing id is a silent no-op.
// Notes, reminders, and orders that reference the contact keep their
// denormalized name.
func (s *Store) DeleteContact(id string) error {
	contacts, err := s.Contacts()
	if err != nil {
		return err
	}

	kept := contacts[:0:0]
	for _, c := range contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}

	return saveCollection(s, KeyContacts, kept)
}
