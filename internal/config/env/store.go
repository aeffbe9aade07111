package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type storeEnv struct {
	SeedDemo        bool          `env:"STORE_SEED_DEMO"        envDefault:"false"`
	ShutdownTimeout time.Duration `env:"STORE_SHUTDOWN_TIMEOUT" envDefault:"2s"`
}

type store struct {
	raw storeEnv
}

func NewStoreConfig() (*store, error) {
	var raw storeEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &store{raw: raw}, nil
}

func (cfg *store) SeedDemo() bool                 { return cfg.raw.SeedDemo }
func (cfg *store) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
