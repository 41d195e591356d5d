package programs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirIndexQuery(t *testing.T) {
	root := t.TempDir()
	mkApp := func(parts ...string) {
		require.NoError(t, os.MkdirAll(filepath.Join(append([]string{root}, parts...)...), 0o755))
	}
	mkApp("Safari.app")
	mkApp("Utilities", "Terminal.app")
	mkApp("Safari.app", "Contents", "Helper.app") // embedded, never reached
	mkApp("Too", "Deep", "Hidden.app")            // beyond the walk depth

	idx := NewDirIndex([]string{root, "/nonexistent-root"})

	hits, err := idx.Query(context.Background(), "*s*a*f*a*r*i*", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Safari", hits[0].Name)
	assert.Equal(t, filepath.Join(root, "Safari.app"), hits[0].Path)

	hits, err = idx.Query(context.Background(), "*t*e*r*m*", 10)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Terminal", hits[0].Name)

	// "*" matches everything visible; the embedded and too-deep bundles stay
	// hidden.
	hits, err = idx.Query(context.Background(), "*", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}

func TestDirIndexLimit(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"A.app", "B.app", "C.app"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}
	idx := NewDirIndex([]string{root})
	hits, err := idx.Query(context.Background(), "*", 2)
	require.NoError(t, err)
	assert.Len(t, hits, 2)
}
