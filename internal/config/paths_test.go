package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()

	if paths.ConfigDir == "" {
		t.Error("ConfigDir is empty")
	}
	if paths.DataDir == "" {
		t.Error("DataDir is empty")
	}
	if paths.CacheDir == "" {
		t.Error("CacheDir is empty")
	}

	// All paths should be absolute
	if !filepath.IsAbs(paths.ConfigDir) {
		t.Errorf("ConfigDir should be absolute: %s", paths.ConfigDir)
	}
	if !filepath.IsAbs(paths.DataDir) {
		t.Errorf("DataDir should be absolute: %s", paths.DataDir)
	}
}

func TestDefaultPaths_XDG(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("XDG test not applicable on Windows")
	}

	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")

	paths := DefaultPaths()

	if !strings.HasPrefix(paths.ConfigDir, "/custom/config") {
		t.Errorf("ConfigDir should respect XDG_CONFIG_HOME: %s", paths.ConfigDir)
	}
	if !strings.HasPrefix(paths.DataDir, "/custom/data") {
		t.Errorf("DataDir should respect XDG_DATA_HOME: %s", paths.DataDir)
	}
	if !strings.HasPrefix(paths.CacheDir, "/custom/cache") {
		t.Errorf("CacheDir should respect XDG_CACHE_HOME: %s", paths.CacheDir)
	}
}

func TestPaths_ConfigFile(t *testing.T) {
	paths := DefaultPaths()
	configFile := paths.ConfigFile()

	if !strings.HasSuffix(configFile, "config.yaml") {
		t.Errorf("ConfigFile should end with config.yaml: %s", configFile)
	}
	if !strings.Contains(configFile, "lume") {
		t.Errorf("ConfigFile should contain 'lume': %s", configFile)
	}
}

func TestPaths_HistoryFile(t *testing.T) {
	paths := DefaultPaths()
	historyFile := paths.HistoryFile()

	if !strings.HasSuffix(historyFile, "history.db") {
		t.Errorf("HistoryFile should end with history.db: %s", historyFile)
	}
}

func TestPaths_EnsureDirectories(t *testing.T) {
	tmp := t.TempDir()
	paths := &Paths{
		ConfigDir: filepath.Join(tmp, "config"),
		DataDir:   filepath.Join(tmp, "data"),
		CacheDir:  filepath.Join(tmp, "cache"),
	}

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	for _, dir := range []string{paths.ConfigDir, paths.DataDir, paths.CacheDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("directory not created: %s", dir)
			continue
		}
		if !info.IsDir() {
			t.Errorf("not a directory: %s", dir)
		}
	}
}
