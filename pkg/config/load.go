package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable, e.g. PAYENGINE_LOG_LEVEL.
const envPrefix = "PAYENGINE"

// Load reads configuration from the environment, after loading a .env file
// best-effort. A missing .env is not an error.
func Load(logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	} else {
		logger.Info("Environment variables loaded from .env file")
	}

	var cfg App
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, err
	}
	logger.Debug("App config loaded",
		"env", cfg.Env,
		"input", cfg.Input,
		"log_level", cfg.Log.Level,
		"log_format", cfg.Log.Format,
	)
	return &cfg, nil
}
