// Package fuzzy provides the pure lexical matching primitives shared by the
// search providers: wildcard pattern construction, alphanumeric tokenization,
// and a bounded edit-distance gate.
package fuzzy

import (
	"strings"
	"unicode"
)

// WildcardPattern builds a glyph-interleaved wildcard from a lowercased query,
// e.g. "abc" becomes "*a*b*c*". External indices that only understand wildcard
// matching can then approximate a subsequence search. An empty query yields
// "*", which matches everything.
func WildcardPattern(query string) string {
	if query == "" {
		return "*"
	}
	var b strings.Builder
	b.Grow(len(query)*2 + 1)
	b.WriteByte('*')
	for _, r := range query {
		b.WriteRune(r)
		b.WriteByte('*')
	}
	return b.String()
}

// MatchWildcard reports whether s matches a glyph-interleaved pattern as
// produced by WildcardPattern. Both sides are compared case-insensitively.
// Only '*' is treated specially; every other rune must appear in order.
func MatchWildcard(s, pattern string) bool {
	target := []rune(strings.ToLower(s))
	pos := 0
	for _, p := range strings.ToLower(pattern) {
		if p == '*' {
			continue
		}
		found := false
		for pos < len(target) {
			if target[pos] == p {
				found = true
				pos++
				break
			}
			pos++
		}
		if !found {
			return false
		}
	}
	return true
}

// Tokenize splits s on non-alphanumeric boundaries into non-empty lowercase
// tokens. "Visual Studio Code" yields ["visual", "studio", "code"].
func Tokenize(s string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// EditDistanceLeOne reports whether a and b are identical or differ by exactly
// one substitution, insertion, or deletion. It is a gate, not a metric: the
// caller only learns pass/fail. Pairs whose lengths differ by more than one
// are rejected without comparing characters. A transposition ("warp"/"wrap")
// counts as two substitutions and does not pass.
func EditDistanceLeOne(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	switch {
	case len(ra) == len(rb):
		diff := 0
		for i := range ra {
			if ra[i] != rb[i] {
				diff++
				if diff > 1 {
					return false
				}
			}
		}
		return true
	case len(ra)+1 == len(rb):
		ra, rb = rb, ra
		fallthrough
	case len(ra) == len(rb)+1:
		// ra is the longer string; one deletion from ra must yield rb.
		i, j := 0, 0
		skipped := false
		for i < len(ra) && j < len(rb) {
			if ra[i] == rb[j] {
				i++
				j++
				continue
			}
			if skipped {
				return false
			}
			skipped = true
			i++
		}
		return true
	default:
		return false
	}
}
