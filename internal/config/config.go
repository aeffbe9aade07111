package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/rocket-maintenance/autoparts/internal/config/env"
)

var cfg *config

type config struct {
	Logger Logger
	Store  Store
}

// Load reads the environment. A .env file is honoured only with APP_ENV=local.
func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	storeCfg, err := envconfig.NewStoreConfig()
	if err != nil {
		return fmt.Errorf("%s Store: %w", op, err)
	}

	cfg = &config{
		Logger: loggerCfg,
		Store:  storeCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
