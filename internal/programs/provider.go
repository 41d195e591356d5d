package programs

import (
	"context"
	"log/slog"
	"strings"

	"github.com/runger/lume/internal/catalog"
	"github.com/runger/lume/internal/fuzzy"
	"github.com/runger/lume/internal/query"
	"github.com/runger/lume/internal/result"
)

const (
	// DefaultHitLimit caps how many raw index hits are scored per query.
	DefaultHitLimit = 300

	scoreExact       = 1000
	scoreTokenEqual  = 950
	scoreNamePrefix  = 900
	scoreTokenPrefix = 880
	scoreContains    = 800
	scoreWildcard    = 100 // admitted only because the wildcard matched

	// minConfidentQuery is the query length from which noisy system paths
	// are admitted on prefix or near-exact name evidence.
	minConfidentQuery = 5
)

// dataVolumePrefix is the APFS data-volume alias that must collapse before
// any path-prefix policy check ("/System/Volumes/Data/Applications" is
// "/Applications").
const dataVolumePrefix = "/system/volumes/data"

// systemPathPrefixes are directories whose applications are mostly embedded
// helpers; hits under them are suppressed for short, low-confidence queries.
var systemPathPrefixes = []string{
	"/system/applications/",
	"/system/library/",
	"/library/",
	"/usr/",
}

// Provider scores installed programs from an Index.
type Provider struct {
	index    Index
	catalog  *catalog.Store
	hitLimit int
	logger   *slog.Logger
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithHitLimit caps the raw index hits scored per query. Non-positive values
// keep the default.
func WithHitLimit(limit int) ProviderOption {
	return func(p *Provider) {
		if limit > 0 {
			p.hitLimit = limit
		}
	}
}

// NewProvider creates an installed-programs provider. catalogStore may be nil
// when no catalog is loaded; cross-referencing is then skipped.
func NewProvider(index Index, catalogStore *catalog.Store, logger *slog.Logger, opts ...ProviderOption) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Provider{
		index:    index,
		catalog:  catalogStore,
		hitLimit: DefaultHitLimit,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the provider tag.
func (p *Provider) Name() string { return string(result.SourceInstalled) }

// Search queries the program index with the wildcard form of the query and
// scores every hit. Index errors degrade to an empty list; this provider
// never fails the search.
func (p *Provider) Search(ctx context.Context, q query.Query) ([]result.Candidate, error) {
	if q.IsEmpty() {
		return nil, nil
	}

	hits, err := p.index.Query(ctx, fuzzy.WildcardPattern(q.Lowered), p.hitLimit)
	if err != nil {
		p.logger.Warn("program index query failed", "error", err)
		return nil, nil
	}

	out := make([]result.Candidate, 0, len(hits))
	for _, hit := range hits {
		score := scoreName(hit.Name, q.Lowered)
		if !p.admit(hit, q.Lowered, score) {
			continue
		}

		res := result.InstalledProgram(hit.Name, hit.Path, hit.BundleID, hit.Description)
		p.crossReference(&res)

		out = append(out, result.Candidate{
			Source: result.SourceInstalled,
			Score:  score,
			Result: res,
		})
	}
	return out, nil
}

// scoreName places the program name on the relevance ladder for the
// lowercased query.
func scoreName(name, q string) int {
	lower := strings.ToLower(name)
	if lower == q {
		return scoreExact
	}

	best := scoreWildcard
	tokens := fuzzy.Tokenize(name)
	for _, tok := range tokens {
		if tok == q {
			return scoreTokenEqual
		}
	}
	if strings.HasPrefix(lower, q) {
		best = scoreNamePrefix
	} else {
		for _, tok := range tokens {
			if strings.HasPrefix(tok, q) {
				best = scoreTokenPrefix
				break
			}
		}
	}
	if best < scoreContains && strings.Contains(lower, q) {
		best = scoreContains
	}
	return best
}

// admit applies the system/embedded-path filter: noisy system-internal hits
// only pass on an exact score, or on long queries with strong name evidence.
func (p *Provider) admit(hit Hit, q string, score int) bool {
	if !isSystemPath(hit.Path) {
		return true
	}
	if score >= scoreExact {
		return true
	}
	if len(q) < minConfidentQuery {
		return false
	}
	lower := strings.ToLower(hit.Name)
	return strings.HasPrefix(lower, q) || fuzzy.EditDistanceLeOne(lower, q)
}

// isSystemPath reports whether path falls under a system application or
// library directory, any user Library directory, or inside another ".app"
// bundle.
func isSystemPath(path string) bool {
	if path == "" {
		return false
	}
	lower := strings.ToLower(path)
	lower = strings.TrimPrefix(lower, dataVolumePrefix)

	for _, prefix := range systemPathPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	if strings.HasPrefix(lower, "/users/") {
		rest := lower[len("/users/"):]
		if i := strings.IndexByte(rest, '/'); i >= 0 && strings.HasPrefix(rest[i:], "/library/") {
			return true
		}
	}
	// A bundle nested inside another bundle is an embedded helper.
	return strings.Contains(strings.ToLower(dirOf(lower)), ".app/")
}

func dirOf(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[:i+1]
	}
	return ""
}

// crossReference borrows a description from the catalog when the OS metadata
// lacks one and attaches the catalog token for later deprecation and dedup
// logic. Lookup order: display name, then program filename, then the
// filename without its extension.
func (p *Provider) crossReference(res *result.SearchResult) {
	if p.catalog == nil {
		return
	}
	entry := p.catalog.LookupByNameOrToken(res.Name)
	if entry == nil && res.Path != "" {
		entry = p.catalog.LookupByProvidedFilename(baseName(res.Path))
	}
	if entry == nil {
		return
	}
	res.CatalogToken = entry.Token
	if res.Description == "" {
		res.Description = entry.Description
	}
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
