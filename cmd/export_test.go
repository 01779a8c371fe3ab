package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/marcus/cn/internal/store"
)

// runCommand executes the CLI with the given args and captures stdout
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	rootCmd.SetArgs(args)
	runErr := rootCmd.Execute()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), runErr
}

// seedExportStore points CN_DATA_DIR at a fresh store with one contact
func seedExportStore(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("CN_DATA_DIR", dir)

	s, err := store.Initialize(dir)
	if err != nil {
		t.Fatalf("initialize store: %v", err)
	}
	defer s.Close()
	if _, err := s.AddContact("Maria Santos", "+5511987654321"); err != nil {
		t.Fatalf("seed contact: %v", err)
	}
}

func TestExportToFile(t *testing.T) {
	seedExportStore(t)
	out := filepath.Join(t.TempDir(), "export.json")

	stdout, err := runCommand(t, "export", "--out", out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(stdout, "Exported to "+out) {
		t.Errorf("missing confirmation, got %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var bundle map[string]json.RawMessage
	if err := json.Unmarshal(data, &bundle); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if _, ok := bundle["contacts"]; !ok {
		t.Error("export missing contacts collection")
	}
}

func TestExportFailedWriteIsNotAnnounced(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("needs /dev/full")
	}
	seedExportStore(t)

	stdout, err := runCommand(t, "export", "--out", "/dev/full")
	if err == nil {
		t.Fatal("expected the write to fail")
	}
	if strings.Contains(stdout, "Exported to") {
		t.Errorf("confirmation printed despite failed write: %q", stdout)
	}
}
