package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/inconvenience/internal/config"
	"github.com/vovakirdan/inconvenience/internal/levels"
	"github.com/vovakirdan/inconvenience/internal/storage"
)

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagProgress != "" {
		cfg.Progress.Path = flagProgress
	}
	if flagLogPath != "" {
		cfg.Log.Path = flagLogPath
	}
	return cfg, nil
}

// mustLoadConfig is loadConfig for commands that cannot do without one.
func mustLoadConfig() config.GameConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openLevels returns the configured level table.
func openLevels(cfg config.GameConfig) (*levels.Table, error) {
	if cfg.Levels.Dir == "" {
		return levels.Embedded(), nil
	}
	dir, err := storage.ExpandPath(cfg.Levels.Dir)
	if err != nil {
		return nil, err
	}
	return levels.Dir(dir, cfg.Levels.Count, cfg.Levels.Pattern)
}

// openWatcher watches the configured level directory for edits.
func openWatcher(cfg config.GameConfig) (*levels.Watcher, error) {
	if cfg.Levels.Dir == "" {
		return nil, errors.New("--watch needs a level directory (--levels)")
	}
	dir, err := storage.ExpandPath(cfg.Levels.Dir)
	if err != nil {
		return nil, err
	}
	return levels.NewWatcher(dir)
}

// newLogger creates a logger writing to the configured log file. The
// terminal belongs to the game, so nothing is logged there. The returned
// closer must be called when done.
func newLogger(cfg config.GameConfig, prefix string) (*log.Logger, io.Closer) {
	var out io.Writer = io.Discard
	var closer io.Closer = nopCloser{}

	if cfg.Log.Path != "" {
		path, err := storage.ExpandPath(cfg.Log.Path)
		if err == nil {
			f, openErr := openLogFile(path)
			if openErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", openErr)
			} else {
				out, closer = f, f
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
	return logger, closer
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
