package search

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/runger/lume/internal/query"
	"github.com/runger/lume/internal/result"
)

// Priority tiers applied before fine-grained score comparison. An exact name
// or command match outranks everything; installed programs, history, and
// exact catalog token/name hits share the middle band; the rest trail.
const (
	tierExact   = 5
	tierPrimary = 3
	tierTrail   = 1
)

// scored pairs a candidate with its resolved tier for the final sort.
type scored struct {
	cand result.Candidate
	tier int
}

// rerank runs the cross-source pipeline: partition, suppress
// already-installed catalog entries, merge history into matching installed
// rows, tier-sort, then deduplicate. synthetic results (URL/path
// short-circuit) ride ahead of everything and participate in dedup.
func rerank(cands []result.Candidate, synthetic []result.SearchResult, q query.Query, obs ScoreObserver) []result.SearchResult {
	installed, hist, cat := partition(cands)

	installedFiles := installedFilenames(installed)
	cat = dropInstalledCatalog(cat, installedFiles)
	installed, hist = mergeHistoryIntoInstalled(installed, hist)

	ordered := make([]scored, 0, len(installed)+len(hist)+len(cat))
	for _, c := range installed {
		ordered = append(ordered, scored{cand: c, tier: tierOf(c, q)})
	}
	for _, c := range hist {
		ordered = append(ordered, scored{cand: c, tier: tierOf(c, q)})
	}
	for _, c := range cat {
		ordered = append(ordered, scored{cand: c, tier: tierOf(c, q)})
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].tier != ordered[j].tier {
			return ordered[i].tier > ordered[j].tier
		}
		if ordered[i].cand.Score != ordered[j].cand.Score {
			return ordered[i].cand.Score > ordered[j].cand.Score
		}
		return strings.ToLower(ordered[i].cand.Result.DisplayName()) <
			strings.ToLower(ordered[j].cand.Result.DisplayName())
	})

	return dedup(synthetic, ordered, obs)
}

// partition splits candidates into per-source buckets.
func partition(cands []result.Candidate) (installed, hist, cat []result.Candidate) {
	for _, c := range cands {
		switch c.Source {
		case result.SourceInstalled:
			installed = append(installed, c)
		case result.SourceHistory:
			hist = append(hist, c)
		case result.SourceCatalog:
			cat = append(cat, c)
		default:
			// Synthetic results never arrive as candidates.
		}
	}
	return installed, hist, cat
}

// installedFilenames collects the lowercased path filenames of installed
// candidates, e.g. "visual studio code.app".
func installedFilenames(installed []result.Candidate) map[string]bool {
	files := make(map[string]bool, len(installed))
	for _, c := range installed {
		if c.Result.Path != "" {
			files[strings.ToLower(filepath.Base(c.Result.Path))] = true
		}
	}
	return files
}

// dropInstalledCatalog removes catalog candidates whose provided program
// filenames intersect the installed set: an already-installed package is not
// offered as available to install.
func dropInstalledCatalog(cat []result.Candidate, installedFiles map[string]bool) []result.Candidate {
	if len(installedFiles) == 0 {
		return cat
	}
	kept := cat[:0]
	for _, c := range cat {
		drop := false
		for _, fn := range c.Result.ProvidedFilenames {
			if installedFiles[strings.ToLower(fn)] {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	return kept
}

// mergeHistoryIntoInstalled folds history candidates into installed
// candidates with the same display name (case-insensitive), adding their
// scores, so a recently launched program does not appear twice.
func mergeHistoryIntoInstalled(installed, hist []result.Candidate) ([]result.Candidate, []result.Candidate) {
	if len(installed) == 0 || len(hist) == 0 {
		return installed, hist
	}
	byName := make(map[string]int, len(installed))
	for i, c := range installed {
		byName[strings.ToLower(c.Result.DisplayName())] = i
	}

	remaining := hist[:0]
	for _, h := range hist {
		if i, ok := byName[strings.ToLower(h.Result.DisplayName())]; ok {
			installed[i].Score += h.Score
			continue
		}
		remaining = append(remaining, h)
	}
	return installed, remaining
}

// tierOf resolves the candidate's priority tier against the query.
func tierOf(c result.Candidate, q query.Query) int {
	switch c.Source {
	case result.SourceInstalled:
		if strings.ToLower(c.Result.Name) == q.Lowered {
			return tierExact
		}
		return tierPrimary
	case result.SourceHistory:
		if strings.ToLower(c.Result.Command) == q.Lowered {
			return tierExact
		}
		return tierPrimary
	case result.SourceCatalog:
		if c.Result.Token == q.Lowered {
			return tierPrimary
		}
		for _, name := range c.Result.DisplayNames {
			if strings.ToLower(name) == q.Lowered {
				return tierPrimary
			}
		}
		return tierTrail
	default:
		return tierTrail
	}
}

// dedup walks synthetic results then sorted candidates, keeping the first
// occurrence of each identity key. A second result with the same lowercased
// display name is also suppressed, unless it is a history entry: a history
// row may share a name with a surviving catalog or synthetic row. The UI
// renders the two distinctly, so the asymmetry is intentional. History
// sharing a name with an installed row never reaches this point; the merge
// step folds it in first.
func dedup(synthetic []result.SearchResult, ordered []scored, obs ScoreObserver) []result.SearchResult {
	seenIdentity := make(map[string]bool, len(ordered)+len(synthetic))
	seenName := make(map[string]bool, len(ordered)+len(synthetic))

	out := make([]result.SearchResult, 0, len(ordered)+len(synthetic))
	admit := func(r result.SearchResult) bool {
		id := r.IdentityKey()
		if seenIdentity[id] {
			return false
		}
		name := strings.ToLower(r.DisplayName())
		if seenName[name] && r.Kind != result.KindHistoryCommand {
			return false
		}
		seenIdentity[id] = true
		seenName[name] = true
		return true
	}

	for _, r := range synthetic {
		if admit(r) {
			out = append(out, r)
		}
	}
	for _, s := range ordered {
		if admit(s.cand.Result) {
			out = append(out, s.cand.Result)
			if obs != nil {
				obs.ObserveScore(s.cand.Result.IdentityKey(), s.cand.Source, s.tier, s.cand.Score)
			}
		}
	}
	return out
}
