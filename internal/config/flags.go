package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/flagx"
)

// configFlags are the short flags owned by this package. Everything else on
// the command line belongs to subcommands.
var configFlags = []string{"-k", "-d", "-p", "-l", "-t"}

// OwnedFlags lists every flag consumed by LoadConfig, including the config
// file flags, so that callers can strip them before parsing their own.
func OwnedFlags() []string {
	return append([]string{"-c", "-config"}, configFlags...)
}

// parseFlags populates Config fields from command-line flags.
//
//	-k string   storage driver (sqlite, pgx)
//	-d string   database DSN
//	-p int      entries per page
//	-l string   log level
//	-t int      query timeout, seconds
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], configFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Driver, "k", config.Driver, "storage driver (sqlite, pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.PageSize, "p", config.PageSize, "entries per page")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")
	queryTimeout := fs.Int("t", int(config.QueryTimeout.Seconds()), "query timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.QueryTimeout = time.Duration(*queryTimeout) * time.Second
}
