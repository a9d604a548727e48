// Package main implements a cross-platform GUI application for counting
// source lines in Unreal Engine projects using the Fyne framework.
package main

import (
	"errors"

	"go.uber.org/zap"

	"ueloc/internal/config"
	"ueloc/internal/log"
	"ueloc/internal/ui"
)

// verboseLogging turns on debug output, including per-file scan
// diagnostics. There are no flags or environment variables; flip it here
// and rebuild.
const verboseLogging = false

func main() {
	logger := log.New(verboseLogging)
	defer func() { _ = logger.Sync() }()

	logger.Info("starting UE Project Line Counter")

	cfg := config.Default()
	if file, err := config.LoadFile(config.GlobalPath()); err == nil {
		cfg.ApplyFile(file)
		logger.Info("applied user configuration", zap.String("path", config.GlobalPath()))
	} else if !errors.Is(err, config.ErrNotFound) {
		logger.Warn("ignoring unreadable user configuration",
			zap.String("path", config.GlobalPath()), zap.Error(err))
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("user configuration invalid, using defaults", zap.Error(err))
		cfg = config.Default()
	}

	logger.Info("configuration loaded",
		zap.Strings("extensions", cfg.IncludeExts),
		zap.Strings("excluded_dirs", cfg.ExcludeDirs))

	ui.New(cfg, logger).Run()
}
