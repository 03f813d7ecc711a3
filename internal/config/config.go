// Package config loads service settings from defaults, an optional TOML
// file and environment variable overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Storage driver names accepted by Config.Storage.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// EnvConfigFile names an alternative config file location.
const EnvConfigFile = "CAMPUSCOFFEE_CONFIG"

// Config holds all service settings.
type Config struct {
	HTTP    HTTPConfig    `toml:"http"`
	Storage StorageConfig `toml:"storage"`
	OSM     OSMConfig     `toml:"osm"`
	Log     LogConfig     `toml:"log"`
}

// HTTPConfig configures the REST server.
type HTTPConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`
	// ShutdownTimeoutSeconds bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`
}

// ShutdownTimeout returns the shutdown bound as a duration.
func (c HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// StorageConfig selects and configures the POS store backend.
type StorageConfig struct {
	// Driver is one of "sqlite", "postgres" or "memory".
	Driver string `toml:"driver"`
	// SQLitePath is the database file for the sqlite driver.
	SQLitePath string `toml:"sqlite_path"`
	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string `toml:"postgres_dsn"`
}

// OSMConfig configures the OpenStreetMap API client.
type OSMConfig struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `toml:"base_url"`
	// UserAgent identifies this service to the API, per OSM usage policy.
	UserAgent string `toml:"user_agent"`
	// TimeoutSeconds bounds a single node fetch.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// RateLimit is the sustained request rate in requests per second.
	RateLimit float64 `toml:"rate_limit"`
	// Burst is the token bucket size for the rate limiter.
	Burst int `toml:"burst"`
}

// Timeout returns the fetch bound as a duration.
func (c OSMConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogConfig configures the global logger.
type LogConfig struct {
	// Verbose enables debug level logging.
	Verbose bool `toml:"verbose"`
	// File, when set, adds a rotating JSON log file.
	File string `toml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 10,
		},
		Storage: StorageConfig{
			Driver:     DriverSQLite,
			SQLitePath: defaultSQLitePath(),
		},
		OSM: OSMConfig{
			BaseURL:        "https://api.openstreetmap.org/api/0.6",
			UserAgent:      "CampusCoffee/1.0",
			TimeoutSeconds: 10,
			RateLimit:      1,
			Burst:          2,
		},
		Log: LogConfig{},
	}
}

// defaultSQLitePath places the database under the user's config directory,
// falling back to the working directory when no home is available.
func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "campuscoffee.db"
	}
	return filepath.Join(home, ".campuscoffee", "campuscoffee.db")
}

// Load builds the configuration: defaults, then the TOML file at path (or
// $CAMPUSCOFFEE_CONFIG, or ~/.campuscoffee/config.toml if present), then
// environment overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	explicit := path != ""
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".campuscoffee", "config.toml")
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		case os.IsNotExist(err) && !explicit:
			// The implicit default file is optional.
		default:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides individual settings from the environment.
func applyEnv(cfg *Config) {
	envString(&cfg.HTTP.Addr, "CAMPUSCOFFEE_HTTP_ADDR")
	envString(&cfg.Storage.Driver, "CAMPUSCOFFEE_STORAGE_DRIVER")
	envString(&cfg.Storage.SQLitePath, "CAMPUSCOFFEE_SQLITE_PATH")
	envString(&cfg.Storage.PostgresDSN, "CAMPUSCOFFEE_POSTGRES_DSN")
	envString(&cfg.OSM.BaseURL, "CAMPUSCOFFEE_OSM_BASE_URL")
	envString(&cfg.OSM.UserAgent, "CAMPUSCOFFEE_OSM_USER_AGENT")
	envString(&cfg.Log.File, "CAMPUSCOFFEE_LOG_FILE")
	envBool(&cfg.Log.Verbose, "CAMPUSCOFFEE_VERBOSE")
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http addr must not be empty")
	}
	if c.HTTP.ShutdownTimeoutSeconds <= 0 {
		return errors.New("http shutdown timeout must be positive")
	}
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("sqlite driver requires storage.sqlite_path")
		}
	case DriverPostgres:
		if c.Storage.PostgresDSN == "" {
			return errors.New("postgres driver requires storage.postgres_dsn")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.OSM.BaseURL == "" {
		return errors.New("osm base_url must not be empty")
	}
	if c.OSM.UserAgent == "" {
		return errors.New("osm user_agent must not be empty")
	}
	if c.OSM.TimeoutSeconds <= 0 {
		return errors.New("osm timeout must be positive")
	}
	if c.OSM.RateLimit <= 0 {
		return errors.New("osm rate_limit must be positive")
	}
	if c.OSM.Burst < 1 {
		return errors.New("osm burst must be at least 1")
	}
	return nil
}
