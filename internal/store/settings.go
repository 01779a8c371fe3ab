package store

import "github.com/marcus/cn/internal/models"

// Settings are singleton values, not collections. They live in the same
// table under their own keys.

// NoteTemplate returns the configured note template, or the default
func (s *Store) NoteTemplate() (string, error) {
	tpl, ok, err := loadValue[string](s, KeyNoteTemplate)
	if err != nil {
		return "", err
	}
	if !ok {
		return models.DefaultNoteTemplate, nil
	}
	return tpl, nil
}

// SetNoteTemplate stores the note template
func (s *Store) SetNoteTemplate(tpl string) error {
	return saveValue(s, KeyNoteTemplate, tpl)
}

// PresetTags returns the quick-pick tag list, or the defaults
func (s *Store) PresetTags() ([]string, error) {
	tags, ok, err := loadValue[[]string](s, KeyPresetTags)
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.DefaultPresetTags(), nil
	}
	return tags, nil
}

// SetPresetTags stores the quick-pick tag list
func (s *Store) SetPresetTags(tags []string) error {
	return saveValue(s, KeyPresetTags, tags)
}

// NoteDisplay returns the note-list display toggles, or the defaults
func (s *Store) NoteDisplay() (models.NoteDisplay, error) {
	d, ok, err := loadValue[models.NoteDisplay](s, KeyNoteDisplay)
	if err != nil {
		return models.NoteDisplay{}, err
	}
	if !ok {
		return models.DefaultNoteDisplay(), nil
	}
	return d, nil
}

// SetNoteDisplay stores the note-list display toggles
func (s *Store) SetNoteDisplay(d models.NoteDisplay) error {
	return saveValue(s, KeyNoteDisplay, d)
}

// PremiumFlag returns a premium-feature flag. The second return value
// indicates whether the flag is explicitly set.
func (s *Store) PremiumFlag(name string) (bool, bool, error) {
	flags, ok, err := loadValue[map[string]bool](s, KeyPremiumFlags)
	if err != nil || !ok {
		return false, false, err
	}
	v, set := flags[name]
	return v, set, nil
}

// SetPremiumFlag persists a premium-feature flag
func (s *Store) SetPremiumFlag(name string, enabled bool) error {
	flags, ok, err := loadValue[map[string]bool](s, KeyPremiumFlags)
	if err != nil {
		return err
	}
	if !ok || flags == nil {
		flags = make(map[string]bool)
	}
	flags[name] = enabled
	return saveValue(s, KeyPremiumFlags, flags)
}
