// Package config handles configuration for the guestbook, including
// defaults, a JSON overlay, environment variables and command-line flags.
package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
)

// Config holds runtime settings.
//
// Fields:
//   - Driver: storage backend, "sqlite" or "pgx" ("postgres" is accepted as an alias).
//   - DatabaseDSN: DSN passed to database/sql for the selected driver.
//   - PageSize: number of entries per listed page.
//   - LogLevel: debug, info, warn or error.
//   - QueryTimeout: upper bound for each storage operation.
type Config struct {
	Driver       string
	DatabaseDSN  string
	PageSize     int
	LogLevel     string
	QueryTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Driver = "sqlite"
	c.DatabaseDSN = "file:guestbook.db?_pragma=busy_timeout(5000)"
	c.PageSize = 10
	c.LogLevel = "info"
	c.QueryTimeout = 5 * time.Second
}

// Validate reports settings the application cannot start with.
func (c *Config) Validate() error {
	switch c.Driver {
	case "sqlite", "pgx", "postgres":
	default:
		return fmt.Errorf("%w: %q", common.ErrUnknownDriver, c.Driver)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("query timeout must be positive, got %s", c.QueryTimeout)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
