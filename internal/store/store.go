package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/lucyai/lucy-support-be/internal/shared/utils"
)

// Collection documents, one JSON file each.
const (
	configFile       = "bot_config.json"
	usersFile        = "users.json"
	clientsFile      = "clients.json"
	appointmentsFile = "appointments.json"
	turnsFile        = "conversations.json"
)

// maxTurns caps the conversation document; oldest turns are dropped first.
const maxTurns = 500

var (
	ErrNotFound = errors.New("record not found")
	ErrExists   = errors.New("record already exists")
)

// LoadState tells how a collection snapshot was obtained, so callers can
// distinguish "empty because the document is absent" from "empty because
// the document could not be parsed".
type LoadState int

const (
	LoadOK LoadState = iota
	LoadMissing
	LoadRecovered
)

// Store persists every collection as a whole JSON document under dir.
// Writes are read-modify-write of the full document, serialized by a
// per-collection mutex. Reads are lenient: a missing or corrupt document
// yields an empty collection (or the default config), never an error.
type Store struct {
	dir       string
	clientKey string

	configMu sync.Mutex
	usersMu  sync.Mutex
	clientMu sync.Mutex
	apptMu   sync.Mutex
	turnMu   sync.Mutex
}

// New opens a store rooted at dir. clientKey is the process-level support
// key (CLIENT_API_KEY); it backs the resolved config whenever no key is
// stored.
func New(dir, clientKey string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir, clientKey: clientKey}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readDoc unmarshals a collection document into v. On LoadMissing or
// LoadRecovered the caller must fall back to its empty value; v may be
// partially filled after a failed unmarshal.
func (s *Store) readDoc(name string, v interface{}) LoadState {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			utils.LogWarn("unreadable collection document, falling back to empty", map[string]interface{}{"file": name, "reason": err.Error()})
			return LoadRecovered
		}
		return LoadMissing
	}
	if err := json.Unmarshal(data, v); err != nil {
		utils.LogWarn("corrupt collection document, falling back to empty", map[string]interface{}{"file": name, "reason": err.Error()})
		return LoadRecovered
	}
	return LoadOK
}

func (s *Store) writeDoc(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// nextID probes "{prefix}{n:03d}" starting at count+1 until a free id is
// found. Manual out-of-band inserts are skipped, never overwritten.
func nextID(prefix string, taken map[string]bool, count int) string {
	n := count + 1
	for {
		id := fmt.Sprintf("%s%03d", prefix, n)
		if !taken[id] {
			return id
		}
		n++
	}
}
