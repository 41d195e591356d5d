package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/lume/internal/result"
)

func TestRecordDedupAndOrder(t *testing.T) {
	s := NewStore(nil, 10, nil)
	s.Record(Entry{Command: "git status"})
	s.Record(Entry{Command: "make build"})
	s.Record(Entry{Command: "Git Status"}) // same command, different case

	recent := s.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "Git Status", recent[0].Command)
	assert.Equal(t, "make build", recent[1].Command)
}

func TestRecordKeepsStableID(t *testing.T) {
	s := NewStore(nil, 10, nil)
	s.Record(Entry{Command: "git status"})
	first := s.Recent(1)[0].ID
	require.NotEmpty(t, first)

	s.Record(Entry{Command: "GIT STATUS"})
	assert.Equal(t, first, s.Recent(1)[0].ID)
}

func TestRecordCap(t *testing.T) {
	s := NewStore(nil, 3, nil)
	for _, c := range []string{"a", "b", "c", "d"} {
		s.Record(Entry{Command: c})
	}
	recent := s.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "d", recent[0].Command)
	assert.Equal(t, "b", recent[2].Command) // "a" fell off the end
}

func TestRecordIgnoresBlank(t *testing.T) {
	s := NewStore(nil, 10, nil)
	s.Record(Entry{Command: "   "})
	assert.Equal(t, 0, s.Len())
}

func TestRemove(t *testing.T) {
	s := NewStore(nil, 10, nil)
	s.Record(Entry{Command: "git status"})
	s.Record(Entry{Command: "make build"})

	assert.True(t, s.Remove("GIT STATUS"))
	assert.False(t, s.Remove("git status"))
	assert.Equal(t, 1, s.Len())
}

func TestClear(t *testing.T) {
	p := &memPersister{}
	s := NewStore(p, 10, nil)
	s.Record(Entry{Command: "git status"})
	s.Record(Entry{Command: "make build"})

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, p.saved)
}

type failingPersister struct{}

func (failingPersister) Load() ([]Entry, error) { return nil, errors.New("corrupt") }
func (failingPersister) Save([]Entry) error     { return errors.New("disk gone") }

func TestCorruptLoadFallsBackToEmpty(t *testing.T) {
	s := NewStore(failingPersister{}, 10, nil)
	assert.Equal(t, 0, s.Len())

	// Saves keep failing silently; the in-memory list still works.
	s.Record(Entry{Command: "ls"})
	assert.Equal(t, 1, s.Len())
}

type memPersister struct {
	saved []Entry
}

func (m *memPersister) Load() ([]Entry, error)      { return m.saved, nil }
func (m *memPersister) Save(entries []Entry) error { m.saved = entries; return nil }

func TestPersistRoundTrip(t *testing.T) {
	p := &memPersister{}
	s := NewStore(p, 10, nil)
	s.Record(Entry{Command: "open safari", Target: &result.TargetRef{
		Kind: result.KindInstalledProgram, Name: "Safari", BundleID: "com.apple.Safari",
	}})

	reloaded := NewStore(p, 10, nil)
	recent := reloaded.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "open safari", recent[0].Command)
	require.NotNil(t, recent[0].Target)
	assert.Equal(t, "com.apple.Safari", recent[0].Target.BundleID)
}
