// Package catalog holds the offline package catalog: an in-memory store
// built once at startup and treated as read-only afterwards, plus the search
// provider that scans it.
package catalog

import (
	"path/filepath"
	"strings"
)

// Entry is one installable package from the catalog.
type Entry struct {
	Token        string
	FullToken    string
	Names        []string
	Description  string
	Homepage     string
	Deprecated   bool
	AppFilenames []string // filenames of .app artifacts the package provides
}

// DisplayName returns the entry's primary display name, falling back to the
// token.
func (e *Entry) DisplayName() string {
	if len(e.Names) > 0 {
		return e.Names[0]
	}
	return e.Token
}

// Store indexes catalog entries by display name, token, and provided-program
// filename, all case-insensitive. It is immutable after construction and safe
// for concurrent readers.
type Store struct {
	entries    []*Entry
	byName     map[string]*Entry
	byToken    map[string]*Entry
	byFilename map[string]*Entry
}

// NewStore builds a Store from entries. Index collisions are last-write-wins.
func NewStore(entries []*Entry) *Store {
	s := &Store{
		entries:    entries,
		byName:     make(map[string]*Entry, len(entries)),
		byToken:    make(map[string]*Entry, len(entries)*2),
		byFilename: make(map[string]*Entry),
	}
	for _, e := range entries {
		for _, name := range e.Names {
			s.byName[strings.ToLower(name)] = e
		}
		if e.Token != "" {
			s.byToken[strings.ToLower(e.Token)] = e
		}
		if e.FullToken != "" {
			s.byToken[strings.ToLower(e.FullToken)] = e
		}
		for _, fn := range e.AppFilenames {
			s.byFilename[strings.ToLower(fn)] = e
		}
	}
	return s
}

// Entries returns all entries for linear scans. Callers must not mutate.
func (s *Store) Entries() []*Entry {
	return s.entries
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// LookupByNameOrToken finds an entry whose display name, token, or full token
// equals key case-insensitively.
func (s *Store) LookupByNameOrToken(key string) *Entry {
	k := strings.ToLower(key)
	if e, ok := s.byName[k]; ok {
		return e
	}
	return s.byToken[k]
}

// LookupByProvidedFilename finds the entry providing the given program
// filename (e.g. "Visual Studio Code.app"). If the exact filename misses, the
// name without its extension is tried against the name and token indices.
func (s *Store) LookupByProvidedFilename(filename string) *Entry {
	k := strings.ToLower(filename)
	if e, ok := s.byFilename[k]; ok {
		return e
	}
	bare := strings.TrimSuffix(k, filepath.Ext(k))
	if bare == k {
		return nil
	}
	if e, ok := s.byFilename[bare]; ok {
		return e
	}
	return s.LookupByNameOrToken(bare)
}
