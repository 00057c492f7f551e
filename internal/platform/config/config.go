// Copyright (c) 2026 OpenSinta. All rights reserved.
// Author: OpenSinta Authors

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. An optional '.env'
file is read first through 'joho/godotenv'; variables already set in the
process environment win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (Loader, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/opensinta/opensinta/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the OpenSinta API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Dataset source. DatasetURL switches from the local file to HTTP; the
	// path is then resolved relative to it.
	DatasetPath    string        `env:"DATASET_PATH"    envDefault:"sinta_journals.json"`
	DatasetURL     string        `env:"DATASET_URL"`
	DatasetTimeout time.Duration `env:"DATASET_TIMEOUT" envDefault:"15s"`
	DatasetWatch   bool          `env:"DATASET_WATCH"   envDefault:"false"`

	// Key-Value Cache (Redis). Empty disables the snapshot fallback.
	RedisURL    string        `env:"REDIS_URL"`
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL" envDefault:"168h"`

	// PageSize is the default catalogue page size.
	PageSize int `env:"PAGE_SIZE" envDefault:"6"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// # Configuration Loading

// Load reads an optional .env file, then parses environment variables into a [Config].
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read env file: %w", err)
	}

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if strings.TrimSpace(cfg.DatasetPath) == "" {
		cfg.DatasetPath = constants.DefaultDatasetPath
	}
	if cfg.PageSize < 1 {
		return nil, fmt.Errorf("config: PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// UsesHTTPSource reports whether the dataset is fetched over HTTP.
func (c *Config) UsesHTTPSource() bool {
	return strings.TrimSpace(c.DatasetURL) != ""
}

// AllowedOrigins returns the extra CORS origins with blanks removed.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.ExtraOrigins))
	for _, origin := range c.ExtraOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
