package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchScoreTiers(t *testing.T) {
	exact, ok := matchScore("git status", "git status")
	require.True(t, ok)
	assert.Equal(t, scoreExact, exact)

	prefix, ok := matchScore("git status --short", "git status")
	require.True(t, ok)
	assert.Equal(t, scorePrefix, prefix)

	substr, ok := matchScore("sudo git status", "git status")
	require.True(t, ok)
	assert.Equal(t, scoreSubstring+proximityWindow-5, substr) // match starts at offset 5

	subseq, ok := matchScore("goto iterm", "gti")
	require.True(t, ok)
	assert.Greater(t, subseq, scoreSubsequence)
	assert.Less(t, subseq, scoreSubstring)

	_, ok = matchScore("make build", "xyz")
	assert.False(t, ok)
}

func TestMatchScoreProximityFloor(t *testing.T) {
	// A substring hit far into the string gets no proximity bonus but still
	// outranks every subsequence hit.
	candidate := strings.Repeat("x", 100) + "git"
	score, ok := matchScore(candidate, "git")
	require.True(t, ok)
	assert.Equal(t, scoreSubstring, score)
}

func TestMatchScoreRewardsAdjacency(t *testing.T) {
	tight, ok := matchScore("gi-th", "gith")
	require.True(t, ok)
	loose, ok2 := matchScore("g-i-t-h", "gith")
	require.True(t, ok2)
	assert.Greater(t, tight, loose)
}

// Tier bands must never overlap, even with adversarial lengths: a long
// subsequence accumulates per-character points but is clamped below the
// substring base, and the substring proximity bonus stays below the prefix
// score.
func TestTierOrderingInvariant(t *testing.T) {
	longQuery := strings.Repeat("ab", 40)
	subseq, ok := matchScore(strings.Repeat("ab-", 50), longQuery)
	require.True(t, ok)
	assert.Less(t, subseq, scoreSubstring)

	substr, ok := matchScore("x"+longQuery, longQuery)
	require.True(t, ok)
	assert.Less(t, substr, scorePrefix)

	prefix, ok := matchScore(longQuery+"x", longQuery)
	require.True(t, ok)
	assert.Less(t, prefix, scoreExact)
}

func TestMatchSortAndRecencyTieBreak(t *testing.T) {
	s := NewStore(nil, 10, nil)
	// Recorded oldest first; the store keeps most recent at index 0.
	s.Record(Entry{Command: "git push origin"}) // oldest
	s.Record(Entry{Command: "git pull"})
	s.Record(Entry{Command: "git push"}) // newest

	matches := s.Match("git pu", 10)
	require.Len(t, matches, 3)
	// All three are prefix matches with equal scores; recency breaks ties.
	assert.Equal(t, "git push", matches[0].Entry.Command)
	assert.Equal(t, "git pull", matches[1].Entry.Command)
	assert.Equal(t, "git push origin", matches[2].Entry.Command)
}

func TestMatchLimitAndReject(t *testing.T) {
	s := NewStore(nil, 50, nil)
	for _, c := range []string{"make test", "make build", "make clean", "docker ps"} {
		s.Record(Entry{Command: c})
	}

	matches := s.Match("make", 2)
	require.Len(t, matches, 2)

	assert.Empty(t, s.Match("zzz", 10))
	assert.Empty(t, s.Match("   ", 10))
	assert.Empty(t, s.Match("make", 0))
}

func TestMatchScoreIdempotent(t *testing.T) {
	a, _ := matchScore("open visual studio code", "vsc")
	b, _ := matchScore("open visual studio code", "vsc")
	assert.Equal(t, a, b)
}
