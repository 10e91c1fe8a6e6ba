package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	// Backend
	BaseURL string

	// Local snapshot store
	SnapshotDBPath string

	// Snapshot worker
	SnapshotInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		BaseURL:          getEnv("HEARTH_BASE_URL", "http://localhost:3001"),
		SnapshotDBPath:   getEnv("HEARTH_SNAPSHOT_DB_PATH", "./data/hearth.db"),
		SnapshotInterval: getEnvDuration("HEARTH_SNAPSHOT_INTERVAL", time.Hour),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate backend base URL
	if parsedURL, err := url.Parse(c.BaseURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid base URL '%s': %v", c.BaseURL, err))
	} else {
		if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			errors = append(errors, fmt.Sprintf("invalid base URL scheme '%s': must be 'http' or 'https'", parsedURL.Scheme))
		}
		if parsedURL.Host == "" {
			errors = append(errors, fmt.Sprintf("invalid base URL '%s': missing host", c.BaseURL))
		}
	}

	// Validate snapshot store path. Missing parent directories are
	// fine; the store creates them on open. Only paths that can never
	// hold a database file are invalid.
	if c.SnapshotDBPath == "" {
		errors = append(errors, "snapshot database path cannot be empty")
	} else if info, err := os.Stat(c.SnapshotDBPath); err == nil && info.IsDir() {
		errors = append(errors, fmt.Sprintf("invalid snapshot database path '%s': is a directory", c.SnapshotDBPath))
	} else {
		dir := filepath.Dir(c.SnapshotDBPath)
		if info, err := os.Stat(dir); err == nil && !info.IsDir() {
			errors = append(errors, fmt.Sprintf("invalid snapshot database path '%s': '%s' is not a directory", c.SnapshotDBPath, dir))
		}
	}

	// Validate worker interval
	if c.SnapshotInterval < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid snapshot interval %v: must be at least 1 minute", c.SnapshotInterval))
	} else if c.SnapshotInterval > 7*24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid snapshot interval %v: must be at most 7 days", c.SnapshotInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
