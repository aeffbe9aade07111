package config

import "time"

type Logger interface {
	Level() string
	AsJSON() bool
	Output() string
}

type Store interface {
	SeedDemo() bool
	ShutdownTimeout() time.Duration
}
