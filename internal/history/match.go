package history

import (
	"sort"
	"strings"
)

// Match scoring bands. The constants are chosen so the four tiers can never
// overlap, whatever the string lengths: a prefix hit always beats the best
// substring hit, which always beats the best subsequence hit.
//
//	exact                    300
//	prefix                   260
//	substring        180 ... 239  (base + proximity, offset >= 1)
//	subsequence      100 ... 179  (base + clamped adjacency sum)
const (
	scoreExact         = 300
	scorePrefix        = 260
	scoreSubstring     = 180
	proximityWindow    = 60 // substring bonus: max(0, proximityWindow-offset)
	scoreSubsequence   = 100
	adjacencyMax       = 8  // per-character contribution: max(1, adjacencyMax-gap)
	subsequenceCeiling = 79 // clamp on the adjacency sum, keeps the tier closed
)

// Match is one fuzzy hit against the store.
type Match struct {
	Entry Entry
	Score int
}

// Match scores the query against every stored command, case-insensitively,
// and returns the top matches sorted by score descending with ties broken by
// recency (more recent wins). Commands that do not even contain the query as
// a subsequence are rejected outright.
func (s *Store) Match(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	s.mu.Lock()
	entries := s.snapshotLocked()
	s.mu.Unlock()

	matches := make([]Match, 0, len(entries))
	for _, e := range entries {
		if score, ok := matchScore(strings.ToLower(e.Command), q); ok {
			matches = append(matches, Match{Entry: e, Score: score})
		}
	}

	// Stable sort keeps store order (most recent first) within equal scores.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// matchScore computes the tiered fuzzy score of the lowercased query q
// against the lowercased candidate. The bool is false when the candidate is
// not a match at all.
func matchScore(candidate, q string) (int, bool) {
	if candidate == q {
		return scoreExact, true
	}
	if strings.HasPrefix(candidate, q) {
		return scorePrefix, true
	}
	if off := strings.Index(candidate, q); off >= 0 {
		bonus := proximityWindow - off
		if bonus < 0 {
			bonus = 0
		}
		return scoreSubstring + bonus, true
	}
	return subsequenceScore(candidate, q)
}

// subsequenceScore walks q character by character through candidate. Every
// query character must be found at or after the previous hit; a miss rejects
// the candidate. Matched characters reward tight clustering: a character
// right after the previous hit contributes adjacencyMax, one adjacencyMax-1
// runes later contributes 1, and the per-character floor is 1.
func subsequenceScore(candidate, q string) (int, bool) {
	cr := []rune(candidate)
	sum := 0
	pos := 0
	prev := -1
	for _, want := range q {
		found := -1
		for i := pos; i < len(cr); i++ {
			if cr[i] == want {
				found = i
				break
			}
		}
		if found < 0 {
			return 0, false
		}
		gap := 0
		if prev >= 0 {
			gap = found - prev - 1
		}
		contribution := adjacencyMax - gap
		if contribution < 1 {
			contribution = 1
		}
		sum += contribution
		prev = found
		pos = found + 1
	}
	if sum > subsequenceCeiling {
		sum = subsequenceCeiling
	}
	return scoreSubsequence + sum, true
}
