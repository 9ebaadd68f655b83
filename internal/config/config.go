// SPDX-FileCopyrightText: The outside developers
//
// SPDX-License-Identifier: MIT

// Package config handles the configuration of the outside web service.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kkyr/fig"
)

const configEnv = "OUTSIDE"

// Config represents the application's configuration structure.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string `fig:"listen_addr" default:"localhost:8000"`
	// Allowed values: metric, imperial. When empty, each viewer's locale
	// decides the unit system.
	Units    string     `fig:"units"`
	Locale   string     `fig:"locale"`
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	// Location is the default spot pages render when a visitor passes no
	// coordinates of their own.
	Location struct {
		Name      string  `fig:"name" default:"Portland, OR"`
		Latitude  float64 `fig:"latitude" default:"45.5152"`
		Longitude float64 `fig:"longitude" default:"-122.6784"`
	} `fig:"location"`

	AirNow struct {
		APIKey  string `fig:"api_key"`
		BaseURL string `fig:"base_url" default:"https://www.airnowapi.org"`
	} `fig:"airnow"`

	OpenMeteo struct {
		// BaseURL overrides the Open-Meteo endpoint; empty keeps the
		// library default.
		BaseURL string `fig:"base_url"`
	} `fig:"openmeteo"`

	Sessions struct {
		TTL           time.Duration `fig:"ttl" default:"720h"`
		OTPTTL        time.Duration `fig:"otp_ttl" default:"15m"`
		SweepInterval time.Duration `fig:"sweep_interval" default:"1h"`
	} `fig:"sessions"`
}

// NewFromFile loads the configuration from the given file, applying environment overrides.
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// New loads the configuration from the environment only.
func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// Validate checks the configuration for consistency and fills in derived defaults.
func (c *Config) Validate() error {
	if c.Units != "" && c.Units != "metric" && c.Units != "imperial" {
		return fmt.Errorf("invalid units: %s", c.Units)
	}
	if c.Locale == "" {
		c.Locale = getLocale()
	}
	if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %f", c.Location.Latitude)
	}
	if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %f", c.Location.Longitude)
	}
	if c.Sessions.TTL <= 0 {
		return fmt.Errorf("invalid session ttl: %s", c.Sessions.TTL)
	}
	if c.Sessions.OTPTTL <= 0 {
		return fmt.Errorf("invalid otp ttl: %s", c.Sessions.OTPTTL)
	}
	if c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("invalid sweep interval: %s", c.Sessions.SweepInterval)
	}

	return nil
}

func getLocale() string {
	locale := os.Getenv("LC_MESSAGES")
	if idx := strings.Index(locale, "."); idx != -1 {
		lang := locale[:idx]
		return strings.ReplaceAll(lang, "_", "-")
	}
	return locale
}
