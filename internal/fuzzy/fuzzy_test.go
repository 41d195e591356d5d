package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWildcardPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"", "*"},
		{"a", "*a*"},
		{"abc", "*a*b*c*"},
		{"go!", "*g*o*!*"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WildcardPattern(tt.query), "query %q", tt.query)
	}
}

func TestMatchWildcard(t *testing.T) {
	tests := []struct {
		s       string
		pattern string
		want    bool
	}{
		{"Visual Studio Code", "*c*o*d*", true},
		{"Visual Studio Code", "*x*y*z*", false},
		{"anything", "*", true},
		{"", "*", true},
		{"", "*a*", false},
		{"Terminal", "*t*e*r*m*", true},
		{"Terminal", "*m*r*e*t*", false}, // order matters
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchWildcard(tt.s, tt.pattern), "%q vs %q", tt.s, tt.pattern)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Visual Studio Code", []string{"visual", "studio", "code"}},
		{"iTerm2", []string{"iterm2"}},
		{"foo--bar_baz", []string{"foo", "bar", "baz"}},
		{"  ", nil},
		{"", nil},
		{"a.b.c", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tokenize(tt.in), "input %q", tt.in)
	}
}

func TestEditDistanceLeOne(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"warp", "warp", true},
		{"warp", "warpp", true},  // insertion
		{"warp", "war", true},    // deletion
		{"warp", "wasp", true},   // substitution
		{"warp", "wrap", false},  // transposition = two substitutions
		{"warp", "warpxx", false},
		{"abc", "xyz", false},
		{"", "", true},
		{"", "a", true},
		{"", "ab", false},
		{"abcdef", "abdef", true},
		{"abcdef", "abdeef", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EditDistanceLeOne(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.want, EditDistanceLeOne(tt.b, tt.a), "symmetric %q vs %q", tt.b, tt.a)
	}
}
