package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Paths holds all the path configurations for lume.
type Paths struct {
	// ConfigDir is the directory for configuration files (~/.config/lume)
	ConfigDir string

	// DataDir is the directory for data files (~/.local/share/lume)
	DataDir string

	// CacheDir is the directory for cache files (~/.cache/lume)
	CacheDir string
}

// DefaultPaths returns the default paths based on XDG Base Directory spec.
// On Windows, it uses %APPDATA% instead.
func DefaultPaths() *Paths {
	home := homeDir()

	if runtime.GOOS == "windows" {
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(home, "AppData", "Local")
		}

		return &Paths{
			ConfigDir: filepath.Join(appData, "lume"),
			DataDir:   filepath.Join(localAppData, "lume"),
			CacheDir:  filepath.Join(localAppData, "lume", "cache"),
		}
	}

	// Unix-like systems follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	cacheHome := os.Getenv("XDG_CACHE_HOME")
	if cacheHome == "" {
		cacheHome = filepath.Join(home, ".cache")
	}

	return &Paths{
		ConfigDir: filepath.Join(configHome, "lume"),
		DataDir:   filepath.Join(dataHome, "lume"),
		CacheDir:  filepath.Join(cacheHome, "lume"),
	}
}

// ConfigFile returns the path to the main configuration file.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.yaml")
}

// HistoryFile returns the path to the SQLite history database.
func (p *Paths) HistoryFile() string {
	return filepath.Join(p.DataDir, "history.db")
}

// CatalogFile returns the path to the package catalog.
func (p *Paths) CatalogFile() string {
	return filepath.Join(p.DataDir, "catalog.json")
}

// LogFile returns the path to the log file.
func (p *Paths) LogFile() string {
	return filepath.Join(p.DataDir, "lume.log")
}

// EnsureDirectories creates all necessary directories.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{
		p.ConfigDir,
		p.DataDir,
		p.CacheDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		if runtime.GOOS == "windows" {
			return os.Getenv("USERPROFILE")
		}
		return os.Getenv("HOME")
	}
	return home
}
