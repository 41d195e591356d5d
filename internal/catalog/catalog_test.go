package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/lume/internal/query"
)

func testStore() *Store {
	return NewStore([]*Entry{
		{
			Token:        "visual-studio-code",
			FullToken:    "homebrew/cask/visual-studio-code",
			Names:        []string{"Microsoft Visual Studio Code", "VS Code"},
			Description:  "Open-source code editor",
			AppFilenames: []string{"Visual Studio Code.app"},
		},
		{
			Token:       "wget",
			Names:       []string{"Wget"},
			Description: "Internet file retriever",
		},
		{
			Token:       "adoptopenjdk8",
			Names:       []string{"AdoptOpenJDK 8"},
			Description: "Prebuilt OpenJDK binaries",
			Deprecated:  true,
		},
	})
}

func TestStoreLookups(t *testing.T) {
	s := testStore()

	assert.Equal(t, "visual-studio-code", s.LookupByNameOrToken("vs code").Token)
	assert.Equal(t, "visual-studio-code", s.LookupByNameOrToken("VISUAL-STUDIO-CODE").Token)
	assert.Equal(t, "visual-studio-code", s.LookupByNameOrToken("homebrew/cask/visual-studio-code").Token)
	assert.Nil(t, s.LookupByNameOrToken("emacs"))

	assert.Equal(t, "visual-studio-code", s.LookupByProvidedFilename("Visual Studio Code.app").Token)
	assert.Equal(t, "wget", s.LookupByProvidedFilename("Wget.app").Token) // extension stripped, name index
	assert.Nil(t, s.LookupByProvidedFilename("Unknown.app"))
}

func TestStoreLastWriteWins(t *testing.T) {
	s := NewStore([]*Entry{
		{Token: "first", Names: []string{"Same Name"}},
		{Token: "second", Names: []string{"same name"}},
	})
	assert.Equal(t, "second", s.LookupByNameOrToken("Same Name").Token)
}

func TestDecode(t *testing.T) {
	doc := `[
		{"token":"wget","full_token":"homebrew/core/wget","name":["Wget"],"desc":"Internet file retriever","homepage":"https://www.gnu.org/software/wget/"},
		{"token":"thing","name":["Thing"],"deprecated":true,"artifacts":[{"app":["Thing.app","Thing Helper.app"]}]},
		{"name":["tokenless, skipped"]}
	]`
	s, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	thing := s.LookupByNameOrToken("thing")
	require.NotNil(t, thing)
	assert.True(t, thing.Deprecated)
	assert.Equal(t, []string{"Thing.app", "Thing Helper.app"}, thing.AppFilenames)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"not":"an array"`))
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	s := Load("/nonexistent/catalog.json", nil)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())
}

func searchScores(t *testing.T, p *Provider, q string) map[string]int {
	t.Helper()
	cands, err := p.Search(context.Background(), query.New(q))
	require.NoError(t, err)
	scores := make(map[string]int, len(cands))
	for _, c := range cands {
		scores[c.Result.Token] = c.Score
	}
	return scores
}

func TestProviderScoring(t *testing.T) {
	p := NewProvider(testStore(), nil)

	// Exact token match (the display name differs from the token).
	assert.Equal(t, scoreTokenExact, searchScores(t, p, "visual-studio-code")["visual-studio-code"])

	// Exact display name; "wget" is both token and name, name tier wins.
	assert.Equal(t, scoreNameExact, searchScores(t, p, "wget")["wget"])
	assert.Equal(t, scoreNameExact, searchScores(t, p, "vs code")["visual-studio-code"])

	// Name prefix.
	assert.Equal(t, scoreNamePrefix, searchScores(t, p, "microsoft")["visual-studio-code"])

	// Token prefix.
	assert.Equal(t, scoreTokenPrefix, searchScores(t, p, "visual-stu")["visual-studio-code"])

	// Name substring.
	assert.Equal(t, scoreNameContains, searchScores(t, p, "studio")["visual-studio-code"])

	// Description-only hit.
	assert.Equal(t, scoreDescContains, searchScores(t, p, "retriever")["wget"])

	// No match at all.
	assert.Empty(t, searchScores(t, p, "zzzzz"))
}

func TestProviderDeprecationPenalty(t *testing.T) {
	p := NewProvider(testStore(), nil)

	// Name prefix 900 minus the 200 penalty.
	assert.Equal(t, scoreNamePrefix-DeprecationPenalty, searchScores(t, p, "adopt")["adoptopenjdk8"])

	// Description-only hit on a deprecated entry.
	floored := NewProvider(NewStore([]*Entry{
		{Token: "old-tool", Names: []string{"Old Tool"}, Description: "works with sprockets", Deprecated: true},
	}), nil)
	got := searchScores(t, floored, "sprocket")
	assert.Equal(t, scoreDescContains-DeprecationPenalty, got["old-tool"])
}

func TestDeprecatedScoreFloorsAtZero(t *testing.T) {
	assert.Equal(t, 700, deprecatedScore(900))
	assert.Equal(t, 0, deprecatedScore(100))
	assert.Equal(t, 0, deprecatedScore(0))
}

func TestProviderEmptyQuery(t *testing.T) {
	p := NewProvider(testStore(), nil)
	cands, err := p.Search(context.Background(), query.New("   "))
	require.NoError(t, err)
	assert.Nil(t, cands)
}
