package main

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/younwookim/engine2d/internal/infrastructure/config"
	"github.com/younwookim/engine2d/internal/infrastructure/logging"
	"github.com/younwookim/engine2d/internal/infrastructure/storage"
	"github.com/younwookim/engine2d/internal/registry"
)

//go:embed configs
var configFS embed.FS

// configLoader reads --config if given, the embedded configs otherwise.
func configLoader() (*config.Loader, error) {
	if flagConfig != "" {
		return config.NewLoader(flagConfig), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// setup loads the engine config and builds the logger, applying the
// global flag overrides.
func setup() (*config.Loader, *config.EngineConfig, *log.Logger, error) {
	loader, err := configLoader()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := loader.LoadEngine()
	if err != nil {
		return nil, nil, nil, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, nil, err
	}
	return loader, cfg, logger, nil
}

// checkGame returns an error naming the list command for unknown ids.
func checkGame(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown game %q (run 'engine2d list' to see available games)", id)
	}
	return nil
}

// openScores opens the score database. Games still run without one, so
// failures are logged and a nil store is returned.
func openScores(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}
