// Package programs finds installed applications and scores them against
// launcher queries. The OS metadata lookup sits behind the Index interface so
// the scoring and filtering logic is testable without a real program index.
package programs

import "context"

// Hit is one raw entry from a program index, before scoring.
type Hit struct {
	Name        string // display name, without a trailing ".app"
	Path        string
	BundleID    string
	Description string
}

// Index is the OS-level program metadata query. Implementations match
// display names against a glyph-interleaved wildcard pattern (see
// fuzzy.WildcardPattern) case-insensitively and cap their own result count.
type Index interface {
	Query(ctx context.Context, pattern string, limit int) ([]Hit, error)
}
