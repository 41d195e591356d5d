package search

import (
	"io/fs"
	"os"
	"strings"

	"github.com/runger/lume/internal/catalog"
	"github.com/runger/lume/internal/result"
)

// TargetResolver resolves stored history target references against the
// current machine state, so a recent entry surfaces as the program or file
// it launched. A target that no longer exists fails to resolve and the
// entry falls back to its command form.
type TargetResolver struct {
	catalog *catalog.Store
	stat    func(string) (fs.FileInfo, error)
}

// NewTargetResolver creates a resolver. The catalog store may be nil.
func NewTargetResolver(store *catalog.Store) *TargetResolver {
	return &TargetResolver{catalog: store, stat: os.Stat}
}

// Resolve implements Resolver.
func (r *TargetResolver) Resolve(ref *result.TargetRef) (result.SearchResult, bool) {
	if ref == nil {
		return result.SearchResult{}, false
	}

	switch ref.Kind {
	case result.KindInstalledProgram:
		if ref.Path == "" {
			return result.SearchResult{}, false
		}
		if _, err := r.stat(ref.Path); err != nil {
			return result.SearchResult{}, false
		}
		res := result.InstalledProgram(ref.Name, ref.Path, ref.BundleID, "")
		if r.catalog != nil {
			if e := r.catalog.LookupByNameOrToken(strings.ToLower(ref.Name)); e != nil {
				res.Description = e.Description
			}
		}
		return res, true

	case result.KindCatalogEntry:
		if r.catalog == nil {
			return result.SearchResult{}, false
		}
		e := r.catalog.LookupByNameOrToken(strings.ToLower(ref.Token))
		if e == nil {
			return result.SearchResult{}, false
		}
		return result.CatalogEntry(e.Token, e.FullToken, e.Names, e.Description, e.Homepage, e.Deprecated, e.AppFilenames), true

	case result.KindURLTarget:
		if ref.URL == "" {
			return result.SearchResult{}, false
		}
		return result.URLTarget(ref.URL), true

	case result.KindFileSystemEntry:
		info, err := r.stat(ref.Path)
		if err != nil {
			return result.SearchResult{}, false
		}
		return result.FileSystemEntry(ref.Path, info.IsDir(), ""), true
	}

	return result.SearchResult{}, false
}
