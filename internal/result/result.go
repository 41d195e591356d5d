// Package result defines the search result variants produced by the
// providers and the scored candidate envelope the conductor reranks.
//
// SearchResult is a closed tagged union: one struct with a Kind discriminant
// and per-variant fields, switched on where behavior differs. The variants
// are known and fixed, so a switch beats an interface hierarchy here.
package result

import (
	"path/filepath"
	"strings"
)

// Kind discriminates the SearchResult variants.
type Kind int

const (
	KindInstalledProgram Kind = iota
	KindCatalogEntry
	KindHistoryCommand
	KindURLTarget
	KindFileSystemEntry
)

// String returns a short tag for logging.
func (k Kind) String() string {
	switch k {
	case KindInstalledProgram:
		return "program"
	case KindCatalogEntry:
		return "catalog"
	case KindHistoryCommand:
		return "history"
	case KindURLTarget:
		return "url"
	case KindFileSystemEntry:
		return "file"
	default:
		return "unknown"
	}
}

// Source tags which provider produced a candidate. Scores are only comparable
// across sources after the conductor applies its priority tiers.
type Source string

const (
	SourceInstalled Source = "installed"
	SourceCatalog   Source = "catalog"
	SourceHistory   Source = "history"
	SourceSynthetic Source = "synthetic" // URL/path short-circuit results
)

// TargetRef lets a history entry re-resolve into the concrete result it
// originally pointed to. It is a re-resolution hint, not a cache: the fields
// carry just enough identity to rebuild the target.
type TargetRef struct {
	Kind     Kind   `yaml:"kind"`
	Name     string `yaml:"name,omitempty"`
	Path     string `yaml:"path,omitempty"`
	BundleID string `yaml:"bundle_id,omitempty"`
	Token    string `yaml:"token,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

// SearchResult is the tagged union over everything the launcher can surface.
// Only the fields of the active Kind are meaningful.
type SearchResult struct {
	Kind Kind

	// KindInstalledProgram
	Name         string
	Path         string
	BundleID     string
	Description  string
	CatalogToken string // set when the program was cross-referenced to a catalog entry

	// KindCatalogEntry
	Token             string
	FullToken         string
	DisplayNames      []string
	Homepage          string
	Deprecated        bool
	ProvidedFilenames []string

	// KindHistoryCommand
	Command  string
	Subtitle string
	IsRecent bool
	Target   *TargetRef

	// KindURLTarget
	URL string

	// KindFileSystemEntry
	IsDirectory     bool
	DisplayOverride string
}

// InstalledProgram builds a program result.
func InstalledProgram(name, path, bundleID, description string) SearchResult {
	return SearchResult{
		Kind:        KindInstalledProgram,
		Name:        name,
		Path:        path,
		BundleID:    bundleID,
		Description: description,
	}
}

// CatalogEntry builds a catalog result.
func CatalogEntry(token, fullToken string, names []string, desc, homepage string, deprecated bool, provided []string) SearchResult {
	return SearchResult{
		Kind:              KindCatalogEntry,
		Token:             token,
		FullToken:         fullToken,
		DisplayNames:      names,
		Description:       desc,
		Homepage:          homepage,
		Deprecated:        deprecated,
		ProvidedFilenames: provided,
	}
}

// HistoryCommand builds a history result. display may be empty, in which case
// the command itself is shown.
func HistoryCommand(command, display, subtitle string, target *TargetRef) SearchResult {
	return SearchResult{
		Kind:     KindHistoryCommand,
		Command:  command,
		Name:     display,
		Subtitle: subtitle,
		Target:   target,
	}
}

// URLTarget builds a navigable URL result.
func URLTarget(url string) SearchResult {
	return SearchResult{Kind: KindURLTarget, URL: url}
}

// FileSystemEntry builds a filesystem result.
func FileSystemEntry(path string, isDir bool, displayOverride string) SearchResult {
	return SearchResult{
		Kind:            KindFileSystemEntry,
		Path:            path,
		IsDirectory:     isDir,
		DisplayOverride: displayOverride,
	}
}

// DisplayName returns the row title for the result.
func (r SearchResult) DisplayName() string {
	switch r.Kind {
	case KindInstalledProgram:
		return r.Name
	case KindCatalogEntry:
		if len(r.DisplayNames) > 0 {
			return r.DisplayNames[0]
		}
		return r.Token
	case KindHistoryCommand:
		if r.Name != "" {
			return r.Name
		}
		return r.Command
	case KindURLTarget:
		return r.URL
	case KindFileSystemEntry:
		if r.DisplayOverride != "" {
			return r.DisplayOverride
		}
		return filepath.Base(r.Path)
	default:
		return ""
	}
}

// IdentityKey returns the canonical string used to decide whether two results
// represent the same real-world entity, regardless of producing provider.
func (r SearchResult) IdentityKey() string {
	switch r.Kind {
	case KindInstalledProgram:
		if r.BundleID != "" {
			return r.BundleID
		}
		if r.Path != "" {
			return r.Path
		}
		return strings.ToLower(r.Name)
	case KindCatalogEntry:
		if len(r.DisplayNames) > 0 {
			return strings.ToLower(r.DisplayNames[0])
		}
		return r.Token
	case KindHistoryCommand:
		return strings.ToLower(r.Command)
	case KindURLTarget:
		return strings.ToLower(r.URL)
	case KindFileSystemEntry:
		return strings.ToLower(r.Path)
	default:
		return ""
	}
}

// AsTargetRef returns the re-resolution hint recorded alongside a history
// entry when this result is launched. History results pass through their own
// target.
func (r SearchResult) AsTargetRef() *TargetRef {
	switch r.Kind {
	case KindInstalledProgram:
		return &TargetRef{Kind: r.Kind, Name: r.Name, Path: r.Path, BundleID: r.BundleID}
	case KindCatalogEntry:
		return &TargetRef{Kind: r.Kind, Name: r.DisplayName(), Token: r.Token}
	case KindHistoryCommand:
		return r.Target
	case KindURLTarget:
		return &TargetRef{Kind: r.Kind, URL: r.URL}
	case KindFileSystemEntry:
		return &TargetRef{Kind: r.Kind, Path: r.Path}
	default:
		return nil
	}
}

// LaunchCommand returns the command string a launch of this result records
// into history.
func (r SearchResult) LaunchCommand() string {
	switch r.Kind {
	case KindHistoryCommand:
		return r.Command
	case KindURLTarget:
		return r.URL
	case KindFileSystemEntry:
		return r.Path
	default:
		return r.DisplayName()
	}
}

// Candidate is a provider-scored, not-yet-reranked result. The score is
// source-local until the conductor applies its tiers.
type Candidate struct {
	Source Source
	Result SearchResult
	Score  int
}
