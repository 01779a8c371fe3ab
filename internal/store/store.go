// Package store persists every collection as a single JSON blob under a fixed
// key in a local SQLite table, with an in-memory cache invalidated on every
// mutation. Mutations follow a load/modify/rewrite cycle with no locking:
// concurrent writers race and the last write wins, matching the app's
// single-user usage pattern.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite"
)

const dbFile = "cn.db"

// Collection keys. One JSON blob per key.
const (
	KeyContacts  = "contacts"
	KeyNotes     = "call_notes"
	KeyReminders = "reminders"
	KeyOrders    = "orders"
	KeyFolders   = "note_folders"
	KeyCatalogs  = "product_catalogs"

	// Settings singletons share the same table
	KeyNoteTemplate = "note_template"
	KeyPresetTags   = "preset_tags"
	KeyNoteDisplay  = "note_display"
	KeyPremiumFlags = "premium_flags"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	key        TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store wraps the collections table plus the collection cache
type Store struct {
	conn  *sql.DB
	cache *gocache.Cache

	mu      sync.Mutex
	subs    map[int]func(key string)
	nextSub int
}

// Open opens an existing data store. Returns an error if the store has not
// been initialized.
func Open(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, dbFile)

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("data store not found: run 'cn init' first")
	}

	return open(dbPath)
}

// Initialize creates the data store, its schema, and the default note folders
func Initialize(dataDir string) (*Store, error) {
	dbPath := filepath.Join(dataDir, dbFile)

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s, err := open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := s.seedDefaultFolders(); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

func open(dbPath string) (*Store, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open data store: %w", err)
	}

	// WAL keeps reads cheap while a rewrite is in flight
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	conn.Exec("PRAGMA synchronous=NORMAL")

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{
		conn:  conn,
		cache: gocache.New(gocache.NoExpiration, 0),
		subs:  make(map[int]func(key string)),
	}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.conn.Close()
}

// Subscribe registers a callback fired after any mutation to the named key.
// The returned function unsubscribes.
func (s *Store) Subscribe(fn func(key string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// invalidate drops the cached copy of key and notifies subscribers so
// reactive consumers refetch.
func (s *Store) invalidate(key string) {
	s.cache.Delete(key)

	s.mu.Lock()
	subs := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key)
	}
}

// Refresh drops every cached collection so the next reads hit the database.
// Mutations made by other processes go through their own caches; a long-lived
// reader like the monitor calls this to pick them up.
func (s *Store) Refresh() {
	s.cache.Flush()
}

// loadCollection reads a whole collection, serving from cache when possible.
// A missing key is an empty collection, not an error.
func loadCollection[T any](s *Store, key string) ([]T, error) {
	if cached, ok := s.cache.Get(key); ok {
		if items, ok := cached.([]T); ok {
			return items, nil
		}
	}

	var data string
	err := s.conn.QueryRow(`SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}

	s.cache.Set(key, items, gocache.NoExpiration)
	return items, nil
}

// saveCollection rewrites a whole collection under its key, then invalidates
func saveCollection[T any](s *Store, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	_, err = s.conn.Exec(`
		INSERT INTO collections (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data), time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	s.invalidate(key)
	return nil
}

// loadValue reads a settings singleton. Returns ok=false when unset.
func loadValue[T any](s *Store, key string) (T, bool, error) {
	var zero T

	var data string
	err := s.conn.QueryRow(`SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("load %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return zero, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, true, nil
}

// saveValue writes a settings singleton
func saveValue[T any](s *Store, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	_, err = s.conn.Exec(`
		INSERT INTO collections (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data), time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}

	s.invalidate(key)
	return nil
}
