package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/runger/lume/internal/query"
	"github.com/runger/lume/internal/result"
)

// Relevance tiers. Display names use the program ladder; tokens sit one
// notch below so "Visual Studio Code" beats "visual-studio-code" on a tie.
const (
	scoreNameExact     = 1000
	scoreTokenExact    = 950
	scoreNamePrefix    = 900
	scoreTokenPrefix   = 850
	scoreNameContains  = 800
	scoreTokenContains = 750
	scoreDescContains  = 500
	scoreFloor         = 100

	// DeprecationPenalty is subtracted, floored at zero, from entries
	// flagged deprecated: demoted, never hidden.
	DeprecationPenalty = 200
)

// Provider searches the catalog store.
type Provider struct {
	store  *Store
	logger *slog.Logger
}

// NewProvider creates a catalog search provider.
func NewProvider(store *Store, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{store: store, logger: logger}
}

// Name returns the provider tag.
func (p *Provider) Name() string { return string(result.SourceCatalog) }

// Search scans the catalog for entries whose names, tokens, or description
// contain the lowercased query, scoring each by the tier ladder above.
func (p *Provider) Search(ctx context.Context, q query.Query) ([]result.Candidate, error) {
	if q.IsEmpty() {
		return nil, nil
	}

	needle := q.Lowered
	var out []result.Candidate
	for _, e := range p.store.Entries() {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
		score, ok := scoreEntry(e, needle)
		if !ok {
			continue
		}
		if e.Deprecated {
			score = deprecatedScore(score)
		}
		out = append(out, result.Candidate{
			Source: result.SourceCatalog,
			Score:  score,
			Result: result.CatalogEntry(e.Token, e.FullToken, e.Names, e.Description, e.Homepage, e.Deprecated, e.AppFilenames),
		})
	}
	return out, nil
}

// scoreEntry computes the entry's relevance to the lowercased needle, taking
// the maximum across display names, token, and full token. The second return
// is false when nothing matches at all.
func scoreEntry(e *Entry, needle string) (int, bool) {
	best := 0
	matched := false

	for _, name := range e.Names {
		if s, ok := ladderScore(strings.ToLower(name), needle, scoreNameExact, scoreNamePrefix, scoreNameContains); ok {
			matched = true
			if s > best {
				best = s
			}
		}
	}
	for _, token := range []string{e.Token, e.FullToken} {
		if token == "" {
			continue
		}
		if s, ok := ladderScore(strings.ToLower(token), needle, scoreTokenExact, scoreTokenPrefix, scoreTokenContains); ok {
			matched = true
			if s > best {
				best = s
			}
		}
	}
	if strings.Contains(strings.ToLower(e.Description), needle) {
		matched = true
		if scoreDescContains > best {
			best = scoreDescContains
		}
	}

	if !matched {
		return 0, false
	}
	if best < scoreFloor {
		best = scoreFloor
	}
	return best, true
}

// deprecatedScore applies the flat deprecation penalty, floored at zero.
func deprecatedScore(score int) int {
	score -= DeprecationPenalty
	if score < 0 {
		score = 0
	}
	return score
}

// ladderScore places needle against a lowercased haystack on the
// exact/prefix/contains ladder.
func ladderScore(haystack, needle string, exact, prefix, contains int) (int, bool) {
	switch {
	case haystack == needle:
		return exact, true
	case strings.HasPrefix(haystack, needle):
		return prefix, true
	case strings.Contains(haystack, needle):
		return contains, true
	default:
		return 0, false
	}
}
