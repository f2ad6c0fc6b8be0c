package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/guestbook/internal/flagx"
	"github.com/dmitrijs2005/guestbook/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	Driver       *string         `json:"driver"`
	DatabaseDSN  *string         `json:"database_dsn"`
	PageSize     *int            `json:"page_size"`
	LogLevel     *string         `json:"log_level"`
	QueryTimeout *timex.Duration `json:"query_timeout"`
}

// parseJson overlays values from the file named by -c/-config. Without the
// flag nothing is loaded. An unreadable file or invalid JSON panics.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
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
		config.QueryTimeout = c.QueryTimeout.Duration
	}
}
