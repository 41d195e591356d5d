package programs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sys/execabs"
)

// SpotlightIndex queries the macOS metadata service through mdfind. The
// wildcard pattern maps directly onto Spotlight's own wildcard matching, so
// no post-filtering is needed beyond the hit cap.
type SpotlightIndex struct{}

// NewSpotlightIndex creates a SpotlightIndex. Available reports whether the
// mdfind binary can be resolved; callers should fall back to a DirIndex when
// it cannot.
func NewSpotlightIndex() *SpotlightIndex { return &SpotlightIndex{} }

// Available reports whether mdfind is on PATH.
func (s *SpotlightIndex) Available() bool {
	_, err := execabs.LookPath("mdfind")
	return err == nil
}

// Query runs an mdfind metadata query for application bundles whose display
// name matches the wildcard pattern, case-insensitively.
func (s *SpotlightIndex) Query(ctx context.Context, pattern string, limit int) ([]Hit, error) {
	mdQuery := fmt.Sprintf(
		`kMDItemContentTypeTree == 'com.apple.application-bundle' && kMDItemDisplayName == %q c`,
		pattern,
	)
	out, err := execabs.CommandContext(ctx, "mdfind", mdQuery).Output()
	if err != nil {
		return nil, fmt.Errorf("mdfind: %w", err)
	}

	var hits []Hit
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if len(hits) >= limit {
			break
		}
		path := strings.TrimSpace(scanner.Text())
		if path == "" {
			continue
		}
		hits = append(hits, Hit{
			Name: strings.TrimSuffix(filepath.Base(path), ".app"),
			Path: path,
		})
	}
	return hits, scanner.Err()
}
