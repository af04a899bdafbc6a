package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-only-secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	// SessionTTL bounds how long an issued session token stays valid.
	SessionTTL time.Duration `env:"SESSION_TTL, default=24h"`

	Activity ActivityConfig
}

type ActivityConfig struct {
	// Workers is the number of dispatcher goroutines feeding the
	// recent-activity feed.
	Workers int `env:"ACTIVITY_WORKERS,       default=4"`
	// FeedCapacity caps how many entries the feed retains.
	FeedCapacity int `env:"ACTIVITY_FEED_CAPACITY, default=100"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// Development reports whether the service runs in a development environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}
