package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeHistoryFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestImportBash(t *testing.T) {
	path := writeHistoryFile(t, ".bash_history", "#1700000000\nls -la\ngit status\nls -la\n")
	t.Setenv("HISTFILE", path)

	got, err := ImportShellHistory("bash", 10)
	require.NoError(t, err)
	// Latest occurrence wins; newest first.
	assert.Equal(t, []string{"ls -la", "git status"}, got)
}

func TestImportZshExtendedFormat(t *testing.T) {
	path := writeHistoryFile(t, ".zsh_history",
		": 1700000000:0;make build\n: 1700000001:2;echo one \\\ntwo\nplain command\n")
	t.Setenv("HISTFILE", path)

	got, err := ImportShellHistory("zsh", 10)
	require.NoError(t, err)
	// The multiline command and its continuation are skipped.
	assert.Equal(t, []string{"plain command", "make build"}, got)
}

func TestImportLimit(t *testing.T) {
	path := writeHistoryFile(t, ".bash_history", "one\ntwo\nthree\nfour\n")
	t.Setenv("HISTFILE", path)

	got, err := ImportShellHistory("bash", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"four", "three"}, got)
}

func TestImportMissingFile(t *testing.T) {
	t.Setenv("HISTFILE", filepath.Join(t.TempDir(), "nope"))

	got, err := ImportShellHistory("zsh", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestImportUnknownShell(t *testing.T) {
	got, err := ImportShellHistory("tcsh", 10)
	require.NoError(t, err)
	assert.Nil(t, got)
}
