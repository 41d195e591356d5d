// Package query wraps raw launcher input and classifies it as plain text,
// URL, or filesystem path.
package query

import "strings"

// Query is an immutable view of one search invocation's input.
type Query struct {
	Raw     string
	Trimmed string
	Lowered string
}

// New builds a Query from raw user input.
func New(raw string) Query {
	trimmed := strings.TrimSpace(raw)
	return Query{
		Raw:     raw,
		Trimmed: trimmed,
		Lowered: strings.ToLower(trimmed),
	}
}

// IsEmpty reports whether the query is empty after trimming. An empty query
// is a distinguished state: providers return nothing and the conductor shows
// recent history instead.
func (q Query) IsEmpty() bool {
	return q.Trimmed == ""
}
