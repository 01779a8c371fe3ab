package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/cn/internal/store"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"+55 11 98765-4321", "+5511987654321"},
		{"(11) 98765 4321", "11987654321"},
		{"555", "555"},
		{"ext+123", "123"}, // "+" only survives at the front
		{"abc", ""},
	}
	for _, tt := range tests {
		if got := NormalizePhone(tt.in); got != tt.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadCSV(t *testing.T) {
	input := `name,phone
Maria Santos,+55 11 98765-4321
Corner Bakery,5551234
,missing-name
No Phone,
Extra,555,ignored-column
`
	records, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Record{Name: "Maria Santos", Phone: "+55 11 98765-4321"}, records[0])
	assert.Equal(t, Record{Name: "Extra", Phone: "555"}, records[2])
}

func TestReadCSVNoHeader(t *testing.T) {
	records, err := ReadCSV(strings.NewReader("Maria,555\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Maria", records[0].Name)
}

func TestImportDeduplicates(t *testing.T) {
	s, err := store.Initialize(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.AddContact("Maria", "+5511987654321")
	require.NoError(t, err)

	result, err := Import(s, []Record{
		{Name: "Maria S", Phone: "+55 (11) 98765-4321"}, // existing, normalized
		{Name: "Jo", Phone: "5551234"},
		{Name: "Jo Again", Phone: "555 1234"}, // duplicate within the batch
		{Name: "Blank", Phone: "---"},         // normalizes to nothing
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 3, result.Skipped)

	contacts, err := s.Contacts()
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}
