package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/testcraft/internal/config"
	"github.com/vovakirdan/testcraft/internal/storage"
)

// gameConfig loads the config from --config and applies --difficulty.
// It also returns the label runs are saved under.
func gameConfig() (config.Config, string, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}
	config.ApplyPreset(&cfg, preset)

	label := string(preset)
	if label == "" {
		label = storage.DefaultDifficulty
	}
	return cfg, label, nil
}

// sessionLogger returns the logger for an interactive session. The UI owns
// stdout, so logs go to --log or nowhere.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "testcraft",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database, or returns nil so the game runs
// without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
