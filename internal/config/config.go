// Package config manages environment variables.
//
// It reads variables from the `.env` file and the process environment,
// loads them into structured Go types, and validates that required values
// are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (search, observability).
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists in the working directory,
	// it gets loaded into the process env before any value is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the prefix LIGHTBNB_. Keys are lowercased with
	the prefix removed, and "." is the nesting delimiter:

	  LIGHTBNB_DATABASE.HOST          -> database.host          -> Config.Database.Host
	  LIGHTBNB_SEARCH.DEFAULT_LIMIT   -> search.default_limit   -> Config.Search.DefaultLimit
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "LIGHTBNB_"

// ServiceName identifies this application in logs and APM.
const ServiceName = "lightbnb"

// Config is the root configuration object for the application.
//
// Search and Observability are pointers because they are optional. If not
// provided, defaults are injected by Load.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Search        *SearchConfig        `koanf:"search"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// Lifetimes are in seconds.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// SearchConfig tunes the property search.
type SearchConfig struct {
	// DefaultLimit caps result size when the caller gives no limit.
	DefaultLimit int `koanf:"default_limit" validate:"min=0"`

	// JoinUnreviewed keeps properties without any review in search results
	// (left join). When false, only reviewed properties are listed.
	JoinUnreviewed bool `koanf:"join_unreviewed"`
}

// DefaultSearchConfig is used when Config.Search is not provided.
func DefaultSearchConfig() *SearchConfig {
	return &SearchConfig{
		DefaultLimit:   10,
		JoinUnreviewed: false,
	}
}

// Load reads configuration from environment variables, unmarshals it into
// Config, validates it, applies defaults and returns the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	validate := validator.New()

	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Search == nil {
		mainConfig.Search = DefaultSearchConfig()
	}
	if mainConfig.Search.DefaultLimit == 0 {
		mainConfig.Search.DefaultLimit = DefaultSearchConfig().DefaultLimit
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config so
	// every log line and trace carries the same labels.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
