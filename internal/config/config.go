// Package config loads the jobads settings: defaults, then an optional YAML
// file, then an optional .env file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath    = "jobads.yaml"
	DefaultEnvFile = ".env"
	DefaultTimeout = 30 * time.Second
)

// Config holds application configuration
type Config struct {
	// SheetID selects the Google Sheet. URL, when set, is used verbatim instead.
	SheetID string `yaml:"sheet_id" env:"JOBADS_SHEET_ID"`
	URL     string `yaml:"url" env:"JOBADS_URL"`

	ProxyURL string        `yaml:"proxy" env:"JOBADS_PROXY"`
	Insecure bool          `yaml:"insecure" env:"JOBADS_INSECURE"`
	Timeout  time.Duration `yaml:"timeout" env:"JOBADS_TIMEOUT"`

	Sort     string `yaml:"sort" env:"JOBADS_SORT"`
	Format   string `yaml:"format" env:"JOBADS_FORMAT"`
	Timezone string `yaml:"timezone" env:"JOBADS_TIMEZONE"`
	Debug    bool   `yaml:"debug" env:"JOBADS_DEBUG"`

	// AssetOrigin is the site whose static files the offline cache installs.
	AssetOrigin string `yaml:"asset_origin" env:"JOBADS_ASSET_ORIGIN"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SheetID: "1_n6qYGMfMG2xNVkCzbr71Jjl4NfTSyV0aaas_tXgGIg",
		Timeout: DefaultTimeout,
		Sort:    "earliest",
		Format:  "cards",
	}
}

// Load builds the configuration. A missing YAML or .env file is not an
// error; a malformed one is.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %v", path, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("failed to read %s: %v", path, err)
		}
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %v", envFile, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %v", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// Sanitize applies guardrails to values from file, environment or flags.
func (c *Config) Sanitize() {
	c.Sort = strings.ToLower(strings.TrimSpace(c.Sort))
	if c.Sort != "latest" {
		c.Sort = "earliest"
	}
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	if c.Format == "" {
		c.Format = "cards"
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	c.SheetID = strings.TrimSpace(c.SheetID)
	c.URL = strings.TrimSpace(c.URL)
}

// Location resolves Timezone; empty means the local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %v", c.Timezone, err)
	}
	return loc, nil
}
