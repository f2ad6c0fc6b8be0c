package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig lists the GUESTBOOK_* variables. Unset variables leave the
// corresponding Config field untouched. Names are spelled out in full so
// that unprefixed variables such as DRIVER are never consulted.
type EnvConfig struct {
	Driver       *string        `envconfig:"GUESTBOOK_DRIVER"`
	DatabaseDSN  *string        `envconfig:"GUESTBOOK_DATABASE_DSN"`
	PageSize     *int           `envconfig:"GUESTBOOK_PAGE_SIZE"`
	LogLevel     *string        `envconfig:"GUESTBOOK_LOG_LEVEL"`
	QueryTimeout *time.Duration `envconfig:"GUESTBOOK_QUERY_TIMEOUT"`
}

// parseEnv overlays values from the environment. Malformed values panic.
func parseEnv(config *Config) {
	var c EnvConfig
	if err := envconfig.Process("", &c); err != nil {
		panic(err)
	}

	if c.Driver != nil {
		config.Driver = *c.Driver
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.PageSize != nil {
		config.PageSize = *c.PageSize
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.QueryTimeout != nil {
		config.QueryTimeout = *c.QueryTimeout
	}
}
