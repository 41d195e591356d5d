package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityKey(t *testing.T) {
	tests := []struct {
		name string
		r    SearchResult
		want string
	}{
		{
			name: "program prefers bundle id",
			r:    InstalledProgram("Safari", "/Applications/Safari.app", "com.apple.Safari", ""),
			want: "com.apple.Safari",
		},
		{
			name: "program falls back to path",
			r:    InstalledProgram("Safari", "/Applications/Safari.app", "", ""),
			want: "/Applications/Safari.app",
		},
		{
			name: "program falls back to lowercased name",
			r:    InstalledProgram("Safari", "", "", ""),
			want: "safari",
		},
		{
			name: "catalog uses lowercased first display name",
			r:    CatalogEntry("visual-studio-code", "", []string{"Visual Studio Code"}, "", "", false, nil),
			want: "visual studio code",
		},
		{
			name: "catalog without names uses token",
			r:    CatalogEntry("wget", "", nil, "", "", false, nil),
			want: "wget",
		},
		{
			name: "history uses lowercased command",
			r:    HistoryCommand("Open Safari", "", "", nil),
			want: "open safari",
		},
		{
			name: "url lowercased",
			r:    URLTarget("https://Example.com"),
			want: "https://example.com",
		},
		{
			name: "file lowercased path",
			r:    FileSystemEntry("/Users/Me/Notes.txt", false, ""),
			want: "/users/me/notes.txt",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.IdentityKey())
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Safari", InstalledProgram("Safari", "", "", "").DisplayName())
	assert.Equal(t, "Visual Studio Code",
		CatalogEntry("visual-studio-code", "", []string{"Visual Studio Code"}, "", "", false, nil).DisplayName())
	assert.Equal(t, "wget", CatalogEntry("wget", "", nil, "", "", false, nil).DisplayName())
	assert.Equal(t, "git status", HistoryCommand("git status", "", "", nil).DisplayName())
	assert.Equal(t, "Git Status", HistoryCommand("git status", "Git Status", "", nil).DisplayName())
	assert.Equal(t, "Notes.txt", FileSystemEntry("/tmp/Notes.txt", false, "").DisplayName())
	assert.Equal(t, "My Notes", FileSystemEntry("/tmp/Notes.txt", false, "My Notes").DisplayName())
}

func TestSameEntityAcrossSources(t *testing.T) {
	// A history entry that replays an installed program shares no identity key
	// with it; the conductor merges those by display name instead.
	installed := InstalledProgram("Visual Studio Code", "/Applications/Visual Studio Code.app", "", "")
	history := HistoryCommand("Visual Studio Code", "Visual Studio Code", "", nil)
	assert.NotEqual(t, installed.IdentityKey(), history.IdentityKey())
	assert.Equal(t, installed.DisplayName(), history.DisplayName())
}
