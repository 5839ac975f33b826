// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config maps environment variables onto the runtime settings of the
biolink server and CLI.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The store backend is chosen by STORE_DRIVER. SQLite is the default so a
fresh checkout runs without any external service.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Supported store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"

	// DriverMemory keeps both blobs in process memory. Nothing survives a restart.
	DriverMemory = "memory"
)

// # Configuration Schema

// Config holds all runtime configuration.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// PublicBaseURL prefixes share links printed by the CLI and dashboard.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// StoreDriver selects where the users blob lives.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`

	// SessionDriver selects where the session blob lives. Empty means StoreDriver.
	SessionDriver string `env:"SESSION_DRIVER"`

	// Embedded database (SQLite)
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/biolink.db"`

	// Relational database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL"`

	// Key-Value store (Redis)
	RedisURL       string `env:"REDIS_URL"`
	RedisKeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"biolink:"`

	// Cross-Origin Resource Sharing
	AllowedOriginSuffix string `env:"ALLOWED_ORIGIN_SUFFIX" envDefault:"biolink.app"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] and checks that every
// selected driver has its connection settings.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.SessionDriver == "" {
		cfg.SessionDriver = cfg.StoreDriver
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for _, driver := range []string{c.StoreDriver, c.SessionDriver} {
		switch driver {
		case DriverMemory:
		case DriverSQLite:
			if c.SQLitePath == "" {
				return fmt.Errorf("config: SQLITE_PATH is required for the sqlite driver")
			}
		case DriverPostgres:
			if c.DatabaseURL == "" {
				return fmt.Errorf("config: DATABASE_URL is required for the postgres driver")
			}
		case DriverRedis:
			if c.RedisURL == "" {
				return fmt.Errorf("config: REDIS_URL is required for the redis driver")
			}
		default:
			return fmt.Errorf("config: unknown store driver %q", driver)
		}
	}
	return nil
}

// Uses reports whether either blob is stored with driver.
func (c *Config) Uses(driver string) bool {
	return c.StoreDriver == driver || c.SessionDriver == driver
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// OriginSuffix returns the allowed CORS origin suffix for production.
func (c *Config) OriginSuffix() string {
	return c.AllowedOriginSuffix
}
