package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// rawEntry mirrors the catalog JSON document schema. Only the fields the
// engine consumes are decoded; the rest of the document is ignored.
type rawEntry struct {
	Token     string   `json:"token"`
	FullToken string   `json:"full_token"`
	Name      []string `json:"name"`
	Desc      string   `json:"desc"`
	Homepage  string   `json:"homepage"`
	URL       string   `json:"url"`
	Version   string   `json:"version"`
	SHA256    string   `json:"sha256"`
	Deprecated bool    `json:"deprecated"`
	Artifacts []struct {
		App []string `json:"app"`
	} `json:"artifacts"`
}

// Load reads a catalog JSON document (a top-level array of entries) from
// path and builds the Store. A missing or malformed file yields an empty
// store: the launcher must come up even when the catalog is broken.
func Load(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("catalog unavailable", "path", path, "error", err)
		return NewStore(nil)
	}
	defer f.Close()

	store, err := Decode(f)
	if err != nil {
		logger.Warn("catalog load failed", "path", path, "error", err)
		return NewStore(nil)
	}
	logger.Debug("catalog loaded", "path", path, "entries", store.Len())
	return store
}

// Decode parses a catalog JSON array from r into a Store. Entries without a
// token are skipped; a document-level parse error fails the whole decode.
func Decode(r io.Reader) (*Store, error) {
	var raw []rawEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	entries := make([]*Entry, 0, len(raw))
	for _, re := range raw {
		if re.Token == "" {
			continue
		}
		e := &Entry{
			Token:       re.Token,
			FullToken:   re.FullToken,
			Names:       re.Name,
			Description: re.Desc,
			Homepage:    re.Homepage,
			Deprecated:  re.Deprecated,
		}
		for _, a := range re.Artifacts {
			e.AppFilenames = append(e.AppFilenames, a.App...)
		}
		entries = append(entries, e)
	}
	return NewStore(entries), nil
}
