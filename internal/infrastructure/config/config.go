package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. The signing secret and token
// expiry have no defaults: the process refuses to start without them.
type Config struct {
	Port           string        `env:"PORT" envDefault:"3000"`
	DatabasePath   string        `env:"DATABASE_PATH" envDefault:"./data/taskhub.db"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenExpiry    time.Duration `env:"TOKEN_EXPIRY,required"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads configuration from the environment, first loading a .env
// file if one exists.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
