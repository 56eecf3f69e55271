// Package config loads application configuration from environment
// variables (optionally seeded from a .env file, for parity with how the
// server was configured in development).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// insecureDefaultSecret is the fallback signing secret used when
// JWT_SECRET is unset. It exists so a fresh checkout boots without
// ceremony; main logs a loud warning whenever it is in effect.
const insecureDefaultSecret = "secret"

// Config holds everything the server reads from its environment.
//
// The two behaviour flags encode decisions the API deliberately leaves to
// deployment rather than hardcoding:
//
//   - OpenRegistration: whether POST /api/auth/register is callable
//     without a token. Open registration is how the first admin account
//     is bootstrapped; once it exists, turn this off.
//   - StrictAuth: whether the auth gate rejects tokens whose subject no
//     longer resolves to a stored user. When false, such requests proceed
//     with an empty identity.
type Config struct {
	Port   int    `env:"PORT" envDefault:"5000"`
	DBPath string `env:"DB_PATH" envDefault:"data/portfolio.db"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"secret"`

	OpenRegistration bool `env:"OPEN_REGISTRATION" envDefault:"true"`
	StrictAuth       bool `env:"STRICT_AUTH" envDefault:"false"`

	// CORSOrigins restricts browser origins; empty means allow all,
	// which is what the public portfolio site needs.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads a .env file if one is present, then parses the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case in production — ignore it.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("config: invalid PORT %d", cfg.Port)
	}

	return cfg, nil
}

// UsingInsecureSecret reports whether the signing secret is the built-in
// fallback rather than an operator-provided value.
func (c *Config) UsingInsecureSecret() bool {
	return c.JWTSecret == insecureDefaultSecret
}

// ListenAddr returns the address ListenAndServe binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
