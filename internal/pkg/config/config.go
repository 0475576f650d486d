package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,            default=8080"`
	Env        string        `env:"ENV,             default=development"`
	JWTSecret  string        `env:"JWT_ACCESS_TOKEN_SECRET"`
	CookieName string        `env:"JWT_COOKIE_NAME, default=vending-machine-jwt"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,       default=15m"`
	LogLevel   string        `env:"LOG_LEVEL,       default=info"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
