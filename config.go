package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the service reads from the environment. It is
// built once in main and handed to the components that need it; nothing
// touches the environment after startup.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8081"`
	DatabaseDSN     string        `env:"DB_DSN"`
	JWTSecret       string        `env:"JWT_SECRET" envDefault:"dev-insecure-secret-change"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"60m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`
	GinMode         string        `env:"GIN_MODE" envDefault:"debug"`
}

// LoadConfig overlays a local .env file (variables already set in the
// environment win) and parses the result into a Config.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // missing .env is fine
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
