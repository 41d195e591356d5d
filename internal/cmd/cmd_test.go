package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runger/lume/internal/result"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "program", kindString(result.KindInstalledProgram))
	assert.Equal(t, "package", kindString(result.KindCatalogEntry))
	assert.Equal(t, "command", kindString(result.KindHistoryCommand))
	assert.Equal(t, "url", kindString(result.KindURLTarget))
	assert.Equal(t, "file", kindString(result.KindFileSystemEntry))
}

func TestFormatResult(t *testing.T) {
	program := result.InstalledProgram("Safari", "/Applications/Safari.app", "", "")
	assert.Equal(t, "Safari\t/Applications/Safari.app", formatResult(program))

	url := result.URLTarget("https://go.dev")
	assert.Equal(t, "https://go.dev", formatResult(url))

	pkg := result.CatalogEntry("wget", "wget", []string{"Wget"}, "network downloader", "", false, nil)
	assert.Equal(t, "Wget\t[package] network downloader", formatResult(pkg))

	dep := result.CatalogEntry("old", "old", []string{"Old"}, "", "", true, nil)
	assert.Contains(t, formatResult(dep), "deprecated")

	recent := result.HistoryCommand("make build", "", "", nil)
	recent.IsRecent = true
	assert.Equal(t, "make build\t(recent)", formatResult(recent))
}

func TestRootHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"search", "open", "history", "catalog", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
