// Package importer merges external contact lists into the local contact
// collection. De-duplication is by normalized phone number and happens only
// here, at import time; the store itself never enforces phone uniqueness.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
)

// Record is one external contact: a name and its first phone number
type Record struct {
	Name  string
	Phone string
}

// Result summarizes an import run
type Result struct {
	Added   int
	Skipped int
}

// NormalizePhone strips everything but digits and a leading "+"
func NormalizePhone(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else if r == '+' && i == 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReadCSV parses name,phone rows. A header row naming the columns is
// accepted and skipped. Rows without both fields are ignored.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	var records []Record
	for i, row := range rows {
		if len(row) < 2 {
			continue
		}
		name := strings.TrimSpace(row[0])
		phone := strings.TrimSpace(row[1])
		if i == 0 && strings.EqualFold(name, "name") && strings.EqualFold(phone, "phone") {
			continue
		}
		if name == "" || phone == "" {
			continue
		}
		records = append(records, Record{Name: name, Phone: phone})
	}
	return records, nil
}

// Import merges records into the store's contact collection, skipping any
// whose normalized phone number already exists (or repeats within the batch).
func Import(s *store.Store, records []Record) (Result, error) {
	existing, err := s.Contacts()
	if err != nil {
		return Result{}, err
	}

	seen := make(map[string]bool, len(existing))
	for _, c := range existing {
		if p := NormalizePhone(c.Phone); p != "" {
			seen[p] = true
		}
	}

	var result Result
	var toAdd []models.Contact
	for _, rec := range records {
		phone := NormalizePhone(rec.Phone)
		if phone == "" || seen[phone] {
			result.Skipped++
			continue
		}
		seen[phone] = true
		toAdd = append(toAdd, models.Contact{Name: rec.Name, Phone: phone})
	}

	added, err := s.AddContacts(toAdd)
	if err != nil {
		return Result{}, err
	}
	result.Added = added
	return result, nil
}
