package main

import (
	"github.com/osse101/CropProfit_Go/internal/config"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

// initLogger installs the default logger from the app configuration.
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
	))
}
