package envconfig

import "github.com/caarlos0/env/v11"

type loggerEnv struct {
	Level  string `env:"LOGGER_LEVEL"   envDefault:"warn"`
	AsJSON bool   `env:"LOGGER_AS_JSON" envDefault:"false"`
	Output string `env:"LOGGER_OUTPUT"  envDefault:"stderr"`
}

type logger struct {
	raw loggerEnv
}

func NewLoggerConfig() (*logger, error) {
	var raw loggerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &logger{raw: raw}, nil
}

func (cfg *logger) Level() string  { return cfg.raw.Level }
func (cfg *logger) AsJSON() bool   { return cfg.raw.AsJSON }
func (cfg *logger) Output() string { return cfg.raw.Output }
