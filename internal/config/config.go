package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/internal/types"
)

// Storage backends for recorded runs
const (
	StorageMemory        = "memory"
	StorageSQLite        = "sqlite"
	StorageElasticsearch = "elasticsearch"
)

// Config holds all configuration for the application
type Config struct {
	// Seed for the next game; empty picks one from the clock
	Seed string `env:"ROGUEJACK_SEED"`

	// Environment
	Environment string `env:"ROGUEJACK_ENVIRONMENT" envDefault:"development"` // "development" or "production"
	LogLevel    string `env:"ROGUEJACK_LOG_LEVEL"   envDefault:"info"`

	// Run storage
	Storage string `env:"ROGUEJACK_STORAGE"  envDefault:"sqlite"`
	DataDir string `env:"ROGUEJACK_DATA_DIR" envDefault:"data"`
	DBPath  string `env:"ROGUEJACK_DB_PATH"`

	// Elasticsearch indexing, layered over SQLite
	ESURL         string `env:"ROGUEJACK_ES_URL"`
	ESUsername    string `env:"ROGUEJACK_ES_USERNAME"`
	ESPassword    string `env:"ROGUEJACK_ES_PASSWORD"`
	ESIndexPrefix string `env:"ROGUEJACK_ES_INDEX_PREFIX" envDefault:"roguejack"`
}

// Load reads an optional .env file, then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, types.WrapError(types.ErrConfigError, "error loading .env file", err)
		}
	}
	return parse(env.Options{})
}

// FromMap builds a config from explicit variables instead of the process environment
func FromMap(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, types.WrapError(types.ErrConfigError, "parse env", err)
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "roguejack.db")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	case StorageElasticsearch:
		if c.ESURL == "" {
			errs = append(errs, errors.New("ROGUEJACK_ES_URL is required for elasticsearch storage"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown ROGUEJACK_STORAGE %q", c.Storage))
	}
	if c.Environment != "development" && c.Environment != "production" {
		errs = append(errs, fmt.Errorf("unknown ROGUEJACK_ENVIRONMENT %q", c.Environment))
	}

	if err := errors.Join(errs...); err != nil {
		return types.WrapError(types.ErrConfigError, "invalid configuration", err)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Level returns the configured log level
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}
