// Package history keeps the recency-ordered list of previously launched
// commands, matches queries against it, and persists it through a pluggable
// Persister.
package history

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/runger/lume/internal/result"
)

// DefaultMaxEntries caps the stored history.
const DefaultMaxEntries = 200

// Entry is one previously successful command.
type Entry struct {
	ID       string
	Command  string
	Display  string // optional display override
	Subtitle string
	Target   *result.TargetRef // what the command resolved to, if known
}

// Persister loads and saves the ordered entry list. Implementations own the
// storage format; the store only requires ordered round-tripping.
type Persister interface {
	Load() ([]Entry, error)
	Save(entries []Entry) error
}

// Store is the mutable shared history. All access is serialized through one
// lock; writes are rare (one per launch) and reads are short list scans, so
// a coarse lock is plenty.
type Store struct {
	mu      sync.Mutex
	entries []Entry // most recent first
	max     int
	persist Persister
	logger  *slog.Logger
}

// NewStore creates a Store backed by persist. A load failure falls back to an
// empty history: corrupt persisted state must never take the launcher down.
// persist may be nil for a memory-only store.
func NewStore(persist Persister, max int, logger *slog.Logger) *Store {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{max: max, persist: persist, logger: logger}
	if persist != nil {
		entries, err := persist.Load()
		if err != nil {
			logger.Warn("history load failed, starting empty", "error", err)
		} else {
			if len(entries) > max {
				entries = entries[:max]
			}
			s.entries = entries
		}
	}
	return s
}

// Record inserts e at the front. Re-recording an existing command
// (case-insensitive) moves it to the front instead of duplicating it; the
// fresh entry's display, subtitle, and target replace the old ones.
func (s *Store) Record(e Entry) {
	if strings.TrimSpace(e.Command) == "" {
		return
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	s.mu.Lock()
	key := strings.ToLower(e.Command)
	for i := range s.entries {
		if strings.ToLower(s.entries[i].Command) == key {
			e.ID = s.entries[i].ID
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.entries = append([]Entry{e}, s.entries...)
	if len(s.entries) > s.max {
		s.entries = s.entries[:s.max]
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.save(snapshot)
}

// Remove deletes the entry whose command equals command case-insensitively.
func (s *Store) Remove(command string) bool {
	key := strings.ToLower(strings.TrimSpace(command))
	if key == "" {
		return false
	}

	s.mu.Lock()
	removed := false
	for i := range s.entries {
		if strings.ToLower(s.entries[i].Command) == key {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			removed = true
			break
		}
	}
	var snapshot []Entry
	if removed {
		snapshot = s.snapshotLocked()
	}
	s.mu.Unlock()

	if removed {
		s.save(snapshot)
	}
	return removed
}

// Clear deletes every entry.
func (s *Store) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	s.save(nil)
}

// Recent returns up to n entries, most recent first.
func (s *Store) Recent(n int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]Entry, n)
	copy(out, s.entries[:n])
	return out
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) snapshotLocked() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) save(snapshot []Entry) {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(snapshot); err != nil {
		s.logger.Warn("history save failed", "error", err)
	}
}
