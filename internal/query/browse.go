package query

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/runger/lume/internal/result"
)

// browseLimit caps directory listings so a huge directory cannot flood the
// result list.
const browseLimit = 64

// Browse resolves a path-classified input into filesystem results:
//
//   - an existing directory lists its non-hidden children, directories before
//     files, then case-insensitive name order;
//   - an existing file yields that single entry;
//   - a missing child of an existing directory treats the last path component
//     as a case-insensitive prefix filter over that directory's listing.
//
// Any resolution failure yields nil; browsing never errors out of the search.
func Browse(input string) []result.SearchResult {
	path := ExpandTilde(input)
	if path == "" {
		return nil
	}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return listDir(path, "")
		}
		return []result.SearchResult{result.FileSystemEntry(path, false, "")}
	}

	parent := filepath.Dir(path)
	if info, err := os.Stat(parent); err != nil || !info.IsDir() {
		return nil
	}
	return listDir(parent, strings.ToLower(filepath.Base(path)))
}

// ExpandTilde replaces a leading "~" with the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// listDir returns the non-hidden children of dir, optionally filtered by a
// lowercase name prefix, sorted directories-first then by name.
func listDir(dir, prefix string) []result.SearchResult {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	type child struct {
		name  string
		isDir bool
	}
	var children []child
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if prefix != "" && !strings.HasPrefix(strings.ToLower(name), prefix) {
			continue
		}
		children = append(children, child{name: name, isDir: e.IsDir()})
	}

	sort.Slice(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		return strings.ToLower(children[i].name) < strings.ToLower(children[j].name)
	})

	if len(children) > browseLimit {
		children = children[:browseLimit]
	}

	results := make([]result.SearchResult, 0, len(children))
	for _, c := range children {
		results = append(results, result.FileSystemEntry(filepath.Join(dir, c.name), c.isDir, ""))
	}
	return results
}
