package main

import (
	"github.com/osse101/gachabox/internal/config"
	"github.com/osse101/gachabox/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		logger.ComponentAPI,
	))
}
