// ABOUTME: Centralized configuration for the memkeeper MCP server
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/keeperhq/memkeeper/internal/storage/sqlite"
)

// Config holds all configuration for the memory service
type Config struct {
	// DBPath is the absolute path to the SQLite file
	DBPath string

	// MetricsAddr enables the Prometheus /metrics listener when non-empty
	MetricsAddr string

	// DefaultLimit caps list results when no limit argument is given
	DefaultLimit int
}

// Load reads configuration from environment variables. explicitPath wins
// over the environment when non-empty; resolution order is explicit path,
// MEMKEEPER_DB_PATH, DATABASE_URL (file: prefix stripped), XDG default.
func Load(explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv("MEMKEEPER_DB_PATH")
	}
	if path == "" {
		path = dbPathFromURL(os.Getenv("DATABASE_URL"))
	}
	if path == "" {
		path = sqlite.DefaultDBPath()
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path %q: %w", path, err)
	}

	cfg := &Config{
		DBPath:       absPath,
		MetricsAddr:  os.Getenv("MEMKEEPER_METRICS_ADDR"),
		DefaultLimit: getEnvInt("MEMKEEPER_DEFAULT_LIMIT", 10),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.DefaultLimit < 1 || c.DefaultLimit > 1000 {
		return fmt.Errorf("MEMKEEPER_DEFAULT_LIMIT must be 1-1000, got %d", c.DefaultLimit)
	}
	return nil
}

// dbPathFromURL extracts a local file path from a connection string
func dbPathFromURL(url string) string {
	if url == "" {
		return ""
	}
	return strings.TrimPrefix(url, "file:")
}

// Helper functions
func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
