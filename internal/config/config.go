// Package config reads the service settings from the environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrNoInventorySource = errors.New("neither POSTGRES_DSN nor UPSTREAM_URL is set")

type Config struct {
	HTTPAddr string

	PostgresDSN       string
	CuringPostgresDSN string
	UpstreamURL       string
	UpstreamTimeout   time.Duration

	RefreshInterval time.Duration
	InventoryYear   int
	InventoryLimit  int

	CORSOrigins string

	DashboardUsername string
	DashboardPassword string
	SessionTTL        time.Duration
}

// Load reads .env (if any) and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds the config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		HTTPAddr:          env("HTTP_ADDR", ":8080"),
		PostgresDSN:       env("POSTGRES_DSN", ""),
		CuringPostgresDSN: env("CURING_POSTGRES_DSN", ""),
		UpstreamURL:       env("UPSTREAM_URL", ""),
		CORSOrigins:       env("CORS_ORIGINS", "*"),
		DashboardUsername: env("DASHBOARD_USERNAME", "admin"),
		DashboardPassword: env("DASHBOARD_PASSWORD", "admin"),
	}

	var err error
	if cfg.UpstreamTimeout, err = duration("UPSTREAM_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = duration("REFRESH_INTERVAL", 4*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SessionTTL, err = duration("SESSION_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.InventoryYear, err = integer("INVENTORY_YEAR", 0); err != nil {
		return nil, err
	}
	if cfg.InventoryLimit, err = integer("INVENTORY_LIMIT", 10000); err != nil {
		return nil, err
	}

	if cfg.PostgresDSN == "" && cfg.UpstreamURL == "" {
		return nil, ErrNoInventorySource
	}
	if cfg.CuringPostgresDSN == "" {
		cfg.CuringPostgresDSN = cfg.PostgresDSN
	}
	return cfg, nil
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

func integer(key string, def int) (int, error) {
	v := env(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: invalid number %q", key, v)
	}
	return n, nil
}
