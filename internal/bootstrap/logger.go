package bootstrap

import (
	"log/slog"

	"github.com/osse101/ItemForge_Go/internal/config"
	"github.com/osse101/ItemForge_Go/internal/logger"
)

// SetupLogger installs the process logger from the loaded configuration.
// Source locations are only added in development.
func SetupLogger(cfg *config.Config, version string) {
	addSource := cfg.Environment == logger.EnvironmentDev
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, ServiceName, version, cfg.Environment, addSource))

	slog.Info(LogMsgStarting, "environment", cfg.Environment, "version", version)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"catalog_dir", cfg.CatalogDir,
		"storage_workers", cfg.StorageWorkers,
		"bonus_cache_size", cfg.BonusCacheSize)
}
