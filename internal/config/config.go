package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains static server configuration. Per-session values (push
// tokens, display title, phone number) are looked up dynamically through
// Resolver instead.
type Config struct {
	AppPort string `env:"APP_PORT" envDefault:"8080"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ChannelTimeout bounds each outbound push-channel call so a slow
	// provider cannot stall a notify indefinitely.
	ChannelTimeout time.Duration `env:"CHANNEL_TIMEOUT" envDefault:"5s"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
