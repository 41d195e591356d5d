package query

import (
	"net/url"
	"regexp"
	"strings"
)

// InputClass is the result of classifying trimmed launcher input.
type InputClass int

const (
	ClassPlain InputClass = iota
	ClassURL
	ClassPath
)

// Classification carries the classified input. For ClassURL, URL holds the
// absolute URL (an https:// scheme is assumed when the input had none). For
// ClassPath, Path holds the input as typed, before tilde expansion.
type Classification struct {
	Class InputClass
	URL   string
	Path  string
}

// schemeRE matches a "scheme:" prefix per RFC 3986 (letter followed by
// letters, digits, '+', '-', '.').
var schemeRE = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// Classify decides, in order, whether trimmed input is a URL, a filesystem
// path, or plain search text:
//
//  1. An input with an explicit scheme that parses as a URL is used as-is.
//  2. An input that looks like a path (starts with "/", "~", or ".", or
//     contains a "/" without a scheme prefix) is a path.
//  3. An input containing a dot and no whitespace is an implicit https URL.
//
// Path-shaped inputs are checked before the implicit-URL rule so that
// "./notes" or "src/main.go" never turn into URLs, while "example.com" and
// "example.com/page" still do (a host with a dot before the first slash).
func Classify(trimmed string) Classification {
	if trimmed == "" {
		return Classification{Class: ClassPlain}
	}

	if schemeRE.MatchString(trimmed) && !strings.ContainsAny(trimmed, " \t") {
		if u, err := url.Parse(trimmed); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
			return Classification{Class: ClassURL, URL: trimmed}
		}
	}

	if looksLikePath(trimmed) {
		return Classification{Class: ClassPath, Path: trimmed}
	}

	if strings.Contains(trimmed, ".") && !strings.ContainsAny(trimmed, " \t") {
		return Classification{Class: ClassURL, URL: "https://" + trimmed}
	}

	return Classification{Class: ClassPlain}
}

// looksLikePath reports whether s is shaped like a filesystem path. A host
// with a dot before the first slash (e.g. "example.com/page") is not a path.
func looksLikePath(s string) bool {
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "~") || strings.HasPrefix(s, ".") {
		return true
	}
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return false
	}
	if schemeRE.MatchString(s) {
		return false
	}
	head := s[:slash]
	return !strings.Contains(head, ".")
}
