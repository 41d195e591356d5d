package programs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/runger/lume/internal/fuzzy"
)

// walkDepth bounds how deep the walker descends below each root; application
// folders nest at most one sub-folder deep in practice (e.g.
// /Applications/Utilities).
const walkDepth = 2

// DirIndex is a filesystem-walking Index: it scans configured application
// roots for ".app" bundles. It serves as the portable fallback when no
// metadata service is available, and as the test double's production twin.
type DirIndex struct {
	roots []string
}

// NewDirIndex creates a DirIndex over the given roots. Missing roots are
// skipped at query time.
func NewDirIndex(roots []string) *DirIndex {
	return &DirIndex{roots: roots}
}

// Query walks the roots collecting bundles whose display name matches the
// wildcard pattern, stopping at limit hits.
func (d *DirIndex) Query(ctx context.Context, pattern string, limit int) ([]Hit, error) {
	var hits []Hit
	for _, root := range d.roots {
		if err := ctx.Err(); err != nil {
			return hits, err
		}
		if len(hits) >= limit {
			break
		}
		hits = d.walkRoot(root, pattern, limit, hits)
	}
	return hits, nil
}

func (d *DirIndex) walkRoot(root, pattern string, limit int, hits []Hit) []Hit {
	root = filepath.Clean(root)
	baseDepth := strings.Count(root, string(filepath.Separator))

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree, keep going
		}
		if len(hits) >= limit {
			return filepath.SkipAll
		}
		if !entry.IsDir() {
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".app") {
			name := strings.TrimSuffix(entry.Name(), ".app")
			if fuzzy.MatchWildcard(name, pattern) {
				hits = append(hits, Hit{Name: name, Path: path})
			}
			return filepath.SkipDir // never descend into a bundle
		}
		if strings.Count(path, string(filepath.Separator))-baseDepth >= walkDepth {
			return filepath.SkipDir
		}
		return nil
	})
	return hits
}

// DefaultRoots returns the conventional application directories for the
// current user.
func DefaultRoots() []string {
	roots := []string{"/Applications", "/System/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		roots = append(roots, filepath.Join(home, "Applications"))
	}
	return roots
}
