// Package export serializes collections into a JSON or plain-text document
// for sharing. The output is an export convenience, not a stable API.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
)

// Bundle is the exported snapshot. Absent collections are omitted.
type Bundle struct {
	Contacts  []models.Contact        `json:"contacts,omitempty"`
	Notes     []models.CallNote       `json:"call_notes,omitempty"`
	Reminders []models.Reminder       `json:"reminders,omitempty"`
	Orders    []models.Order          `json:"orders,omitempty"`
	Folders   []models.NoteFolder     `json:"note_folders,omitempty"`
	Catalogs  []models.ProductCatalog `json:"product_catalogs,omitempty"`
}

// CollectionNames returns the exportable collection names
func CollectionNames() []string {
	return []string{"contacts", "notes", "reminders", "orders", "folders", "catalogs"}
}

// Collect loads the named collections from the store. An empty selection
// means everything.
func Collect(s *store.Store, names []string) (*Bundle, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[strings.ToLower(n)] = true
	}
	all := len(want) == 0

	var b Bundle
	var err error
	if all || want["contacts"] {
		if b.Contacts, err = s.Contacts(); err != nil {
			return nil, err
		}
	}
	if all || want["notes"] {
		if b.Notes, err = s.Notes(); err != nil {
			return nil, err
		}
	}
	if all || want["reminders"] {
		if b.Reminders, err = s.Reminders(); err != nil {
			return nil, err
		}
	}
	if all || want["orders"] {
		if b.Orders, err = s.Orders(); err != nil {
			return nil, err
		}
	}
	if all || want["folders"] {
		if b.Folders, err = s.Folders(); err != nil {
			return nil, err
		}
	}
	if all || want["catalogs"] {
		if b.Catalogs, err = s.Catalogs(); err != nil {
			return nil, err
		}
	}
	return &b, nil
}

// WriteJSON writes the bundle as indented JSON
func WriteJSON(w io.Writer, b *Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// WriteText writes the bundle as a plain-text report
func WriteText(w io.Writer, b *Bundle) error {
	if len(b.Contacts) > 0 {
		fmt.Fprintf(w, "CONTACTS (%d)\n", len(b.Contacts))
		sorted := append([]models.Contact(nil), b.Contacts...)
		sort.Slice(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
		for _, c := range sorted {
			fmt.Fprintf(w, "  %s  %s\n", c.Name, c.Phone)
		}
		fmt.Fprintln(w)
	}

	if len(b.Notes) > 0 {
		fmt.Fprintf(w, "CALL NOTES (%d)\n", len(b.Notes))
		for _, n := range b.Notes {
			fmt.Fprintf(w, "  %s  %s  [%s]  %s\n",
				n.CreatedAt.Format("2006-01-02 15:04"), n.ContactName, n.StatusLabel(), firstLine(n.Text))
		}
		fmt.Fprintln(w)
	}

	if len(b.Reminders) > 0 {
		fmt.Fprintf(w, "REMINDERS (%d)\n", len(b.Reminders))
		for _, r := range b.Reminders {
			mark := " "
			if r.Completed {
				mark = "x"
			}
			fmt.Fprintf(w, "  [%s] %s  due %s", mark, r.Title, r.DueDate.Format("2006-01-02"))
			if r.ContactName != "" {
				fmt.Fprintf(w, "  (%s)", r.ContactName)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if len(b.Orders) > 0 {
		fmt.Fprintf(w, "ORDERS (%d)\n", len(b.Orders))
		for _, o := range b.Orders {
			fmt.Fprintf(w, "  %s  %s  %.2f  [%s]\n", o.ID, o.ContactName, o.Total, o.Status)
			for _, it := range o.Items {
				fmt.Fprintf(w, "      %dx %s @ %.2f\n", it.Quantity, it.Name, it.Price)
			}
		}
		fmt.Fprintln(w)
	}

	if len(b.Folders) > 0 {
		fmt.Fprintf(w, "FOLDERS (%d)\n", len(b.Folders))
		for _, f := range b.Folders {
			fmt.Fprintf(w, "  %s\n", f.Name)
		}
		fmt.Fprintln(w)
	}

	if len(b.Catalogs) > 0 {
		fmt.Fprintf(w, "CATALOGS (%d)\n", len(b.Catalogs))
		for _, c := range b.Catalogs {
			fmt.Fprintf(w, "  %s (%d products)\n", c.Name, len(c.Products))
			for _, p := range c.Products {
				fmt.Fprintf(w, "      %s  %.2f", p.Name, p.Price)
				if p.SKU != "" {
					fmt.Fprintf(w, "  [%s]", p.SKU)
				}
				fmt.Fprintln(w)
			}
		}
	}

	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
