package history

import (
	"context"
	"log/slog"
	"strings"

	"github.com/runger/lume/internal/query"
	"github.com/runger/lume/internal/result"
)

const (
	// DefaultFuzzyLimit is how many fuzzy matches the provider pulls from
	// the store before conversion.
	DefaultFuzzyLimit = 8

	// DefaultPruneWindow drops matches trailing more than this many points
	// behind the best one, so one strong hit is not drowned by weak noise.
	DefaultPruneWindow = 120

	providerBase  = 200  // base candidate score
	recencyStep   = 10   // per-rank recency bonus: (limit - rank) * recencyStep
	exactFloor    = 1000 // minimum score for an exact command match
	deprecatedCut = 200  // same demotion the catalog provider applies
)

// DeprecatedFunc reports whether the catalog entry referenced by token is
// deprecated. Injected so the provider stays decoupled from the catalog
// package.
type DeprecatedFunc func(token string) bool

// Provider converts store fuzzy matches into scored candidates.
type Provider struct {
	store       *Store
	deprecated  DeprecatedFunc
	fuzzyLimit  int
	pruneWindow int
	logger      *slog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithFuzzyLimit sets how many fuzzy matches are pulled from the store per
// query. Non-positive values keep the default.
func WithFuzzyLimit(limit int) ProviderOption {
	return func(p *Provider) {
		if limit > 0 {
			p.fuzzyLimit = limit
		}
	}
}

// WithPruneWindow sets the trailing score window. Negative values keep the
// default; zero keeps only candidates tied with the best.
func WithPruneWindow(window int) ProviderOption {
	return func(p *Provider) {
		if window >= 0 {
			p.pruneWindow = window
		}
	}
}

// NewProvider creates a history provider. deprecated may be nil when no
// catalog is available.
func NewProvider(store *Store, deprecated DeprecatedFunc, logger *slog.Logger, opts ...ProviderOption) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{
		store:       store,
		deprecated:  deprecated,
		fuzzyLimit:  DefaultFuzzyLimit,
		pruneWindow: DefaultPruneWindow,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider tag.
func (p *Provider) Name() string { return string(result.SourceHistory) }

// Search scores history entries against the query. The empty query is handled
// by the conductor's recents fast path, not here.
func (p *Provider) Search(ctx context.Context, q query.Query) ([]result.Candidate, error) {
	if q.IsEmpty() {
		return nil, nil
	}

	matches := p.store.Match(q.Trimmed, p.fuzzyLimit)
	if len(matches) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(matches))
	out := make([]result.Candidate, 0, len(matches))
	for rank, m := range matches {
		key := strings.ToLower(m.Entry.Command)
		if seen[key] {
			continue
		}
		seen[key] = true

		score := providerBase + (p.fuzzyLimit-rank)*recencyStep + m.Score
		if key == q.Lowered && score < exactFloor {
			// History must never lose to a weaker fuzzy hit on the very
			// string the user launched before.
			score = exactFloor
		}
		if p.isDeprecatedTarget(m.Entry.Target) {
			score -= deprecatedCut
			if score < 0 {
				score = 0
			}
		}

		out = append(out, result.Candidate{
			Source: result.SourceHistory,
			Score:  score,
			Result: result.HistoryCommand(m.Entry.Command, m.Entry.Display, m.Entry.Subtitle, m.Entry.Target),
		})
	}

	return pruneTrailing(out, p.pruneWindow), nil
}

// isDeprecatedTarget reports whether the entry's resolved target references a
// deprecated catalog entry.
func (p *Provider) isDeprecatedTarget(target *result.TargetRef) bool {
	if target == nil || target.Token == "" || p.deprecated == nil {
		return false
	}
	return p.deprecated(target.Token)
}

// pruneTrailing drops candidates more than window points behind the best.
func pruneTrailing(cands []result.Candidate, window int) []result.Candidate {
	if len(cands) == 0 {
		return cands
	}
	best := cands[0].Score
	for _, c := range cands[1:] {
		if c.Score > best {
			best = c.Score
		}
	}
	kept := cands[:0]
	for _, c := range cands {
		if best-c.Score <= window {
			kept = append(kept, c)
		}
	}
	return kept
}
