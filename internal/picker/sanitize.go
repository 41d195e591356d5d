package picker

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// escapeRE matches terminal escape sequences that may appear in history
// commands or file names: CSI sequences (SGR and cursor movement), OSC
// sequences terminated by ST or BEL, charset designations, and other
// two-byte escapes.
var escapeRE = regexp.MustCompile(
	`\x1b(?:\[[0-9;]*[A-Za-z]|\].*?(?:\x1b\\|\x07)|[()][A-B0-2]|[#()*+\-./][A-Za-z0-9])`,
)

// StripANSI removes terminal escape sequences so a row can never restyle or
// scribble on the picker.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}
	return escapeRE.ReplaceAllString(s, "")
}

// ValidateUTF8 replaces invalid UTF-8 bytes with U+FFFD.
func ValidateUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// MiddleTruncate shortens s to maxWidth display columns, keeping the head
// and tail around an ellipsis. Width is counted in terminal columns, so CJK
// runes and emoji count as two. Below three columns there is no room for an
// ellipsis and the string is cut from the right instead.
func MiddleTruncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth < 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}

	remaining := maxWidth - 1 // one column for the ellipsis
	headWidth := remaining - remaining/2
	head := runewidth.Truncate(s, headWidth, "")
	tail := suffixWithin(s, remaining/2)
	return head + "…" + tail
}

// suffixWithin returns the longest suffix of s that fits in maxWidth display
// columns.
func suffixWithin(s string, maxWidth int) string {
	runes := []rune(s)
	w := 0
	for i := len(runes) - 1; i >= 0; i-- {
		w += runewidth.RuneWidth(runes[i])
		if w > maxWidth {
			return string(runes[i+1:])
		}
	}
	return s
}
