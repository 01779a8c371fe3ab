// Package views holds the derived-view layer: pure functions that filter,
// group, and sort the loaded collections for display. Everything here is
// recomputed from the full in-memory slices on each call; nothing is cached
// or persisted.
package views

import (
	"sort"
	"strings"
	"unicode"

	"github.com/marcus/cn/internal/models"
)

// Section is one alphabetical bucket of contacts
type Section struct {
	Title    string
	Contacts []models.Contact
}

// ContactSections groups contacts by the first letter of their name.
// Names not starting with a letter land under "#". Sections and their
// members are sorted.
func ContactSections(contacts []models.Contact) []Section {
	buckets := make(map[string][]models.Contact)
	for _, c := range contacts {
		title := "#"
		for _, r := range strings.TrimSpace(c.Name) {
			if unicode.IsLetter(r) {
				title = strings.ToUpper(string(r))
			}
			break
		}
		buckets[title] = append(buckets[title], c)
	}

	sections := make([]Section, 0, len(buckets))
	for title, members := range buckets {
		sort.Slice(members, func(i, j int) bool {
			return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
		})
		sections = append(sections, Section{Title: title, Contacts: members})
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].Title < sections[j].Title })

	return sections
}
