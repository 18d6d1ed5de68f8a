// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session goes to the OS keychain.
//
// Sources, later ones winning: built-in defaults, config.json in the XDG
// config dir, a .env file, WALL_* environment variables. Command-line flags
// are applied by the cmd package on top of the result.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wall/cli/internal/manifest"
	"wall/cli/internal/xdg"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "WALL_"

// Config holds non-sensitive CLI settings.
type Config struct {
	APIBaseURL  string                 `json:"api_base_url" env:"API_BASE_URL"`
	LogLevel    string                 `json:"log_level" env:"LOG_LEVEL"`
	Timeout     Duration               `json:"timeout" env:"TIMEOUT"`
	PageSize    int                    `json:"page_size" env:"PAGE_SIZE"`
	MaxPageSize int                    `json:"max_page_size" env:"MAX_PAGE_SIZE"`
	Endpoints   manifest.HTTPEndpoints `json:"endpoints"`
}

// Duration is a time.Duration written as "10s" in JSON and environment values.
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", b, err)
	}
	*d = Duration(v)
	return nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		APIBaseURL:  "http://localhost:8000",
		LogLevel:    "info",
		Timeout:     Duration(10 * time.Second),
		PageSize:    10,
		MaxPageSize: 100,
		Endpoints:   manifest.Default(),
	}
}

// Path returns the path to the config file.
func Path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration from the XDG config file, .env and the environment.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Defaults(), err
	}
	return LoadFrom(p, ".env", filepath.Join(filepath.Dir(p), ".env"))
}

// LoadFrom is Load with explicit file locations. Missing files are skipped.
// The result is not validated: callers apply their own overrides first and
// then call Validate.
func LoadFrom(configPath string, dotenvPaths ...string) (Config, error) {
	c := Defaults()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("parse %s: %w", configPath, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return c, err
	}

	for _, p := range dotenvPaths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return c, fmt.Errorf("load %s: %w", p, err)
		}
	}

	if err := env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}

	c.Endpoints = c.Endpoints.Merge()
	return c, nil
}

// Validate reports settings the CLI cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("api_base_url is required")
	}
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("api_base_url must start with http:// or https://, got %q", c.APIBaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.PageSize <= 0 || (c.MaxPageSize > 0 && c.PageSize > c.MaxPageSize) {
		return fmt.Errorf("page_size must be between 1 and %d", c.MaxPageSize)
	}
	return c.Endpoints.Validate()
}
