package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/runger/lume/internal/catalog"
	"github.com/runger/lume/internal/config"
	"github.com/runger/lume/internal/history"
	"github.com/runger/lume/internal/launch"
	"github.com/runger/lume/internal/logging"
	"github.com/runger/lume/internal/programs"
	"github.com/runger/lume/internal/search"
)

// engine bundles the wired search pipeline shared by the subcommands.
type engine struct {
	cfg       *config.Config
	logger    *slog.Logger
	catalog   *catalog.Store
	store     *history.Store
	persister *history.SQLitePersister
	conductor *search.Conductor
	launcher  *launch.Launcher
	logFile   *os.File
}

// newEngine loads config and wires providers, history, and the conductor.
func newEngine() (*engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paths := config.DefaultPaths()
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("creating data directories: %w", err)
	}

	// Log to a file so warnings never scribble on the picker; stderr is the
	// fallback when the file cannot be opened.
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = paths.LogFile()
	}
	logCfg := &logging.Config{Level: logging.ParseLevel(cfg.Logging.Level)}
	var logFile *os.File
	if f, err := logging.OpenLogFile(logPath); err == nil {
		logFile = f
		logCfg.Output = f
	}
	logger := logging.New(logCfg)

	catalogPath := cfg.Catalog.Path
	if catalogPath == "" {
		catalogPath = paths.CatalogFile()
	}
	catStore := catalog.Load(catalogPath, logger)

	historyPath := cfg.History.Path
	if historyPath == "" {
		historyPath = paths.HistoryFile()
	}

	// History must survive a broken database: fall back to in-memory.
	var persister *history.SQLitePersister
	if p, err := history.NewSQLitePersister(historyPath); err != nil {
		logger.Warn("history database unavailable", "path", historyPath, "error", err)
	} else {
		persister = p
	}

	var storePersister history.Persister
	if persister != nil {
		storePersister = persister
	}
	store := history.NewStore(storePersister, cfg.History.MaxEntries, logger)

	var index programs.Index
	if cfg.Programs.UseSpotlight {
		index = programs.NewSpotlightIndex()
	} else {
		roots := cfg.Programs.Roots
		if len(roots) == 0 {
			roots = programs.DefaultRoots()
		}
		index = programs.NewDirIndex(roots)
	}

	deprecated := func(token string) bool {
		e := catStore.LookupByNameOrToken(strings.ToLower(token))
		return e != nil && e.Deprecated
	}

	providers := []search.Provider{
		programs.NewProvider(index, catStore, logger,
			programs.WithHitLimit(cfg.Programs.HitLimit)),
		catalog.NewProvider(catStore, logger),
		history.NewProvider(store, deprecated, logger,
			history.WithFuzzyLimit(cfg.Search.FuzzyLimit),
			history.WithPruneWindow(cfg.History.PruneWindow)),
	}

	conductor := search.NewConductor(providers, store,
		search.WithLogger(logger),
		search.WithResolver(search.NewTargetResolver(catStore)),
		search.WithRecentLimit(cfg.Search.RecentLimit),
		search.WithMaxResults(cfg.Search.MaxResults),
	)

	return &engine{
		cfg:       cfg,
		logger:    logger,
		catalog:   catStore,
		store:     store,
		persister: persister,
		conductor: conductor,
		launcher:  launch.New(logger),
		logFile:   logFile,
	}, nil
}

// Close releases the engine's resources.
func (e *engine) Close() error {
	var err error
	if e.persister != nil {
		err = e.persister.Close()
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
	return err
}
