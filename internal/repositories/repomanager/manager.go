// Package repomanager vends storage-specific repository implementations and
// runs the matching schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/dbx"
	"github.com/dmitrijs2005/guestbook/internal/repositories/entries"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	// DriverName is the database/sql driver the manager's repositories expect.
	DriverName() string
	RunMigrations(ctx context.Context, db *sql.DB) error
	Entries(db dbx.DBTX) entries.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// New returns the manager for the named storage driver.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case "sqlite":
		return NewSQLiteRepositoryManager(), nil
	case "pgx", "postgres":
		return NewPostgresRepositoryManager(), nil
	}
	return nil, fmt.Errorf("%w: %q", common.ErrUnknownDriver, driver)
}

// Open opens a connection pool for m and verifies it with a ping.
func Open(ctx context.Context, m RepositoryManager, dsn string) (*sql.DB, error) {
	db, err := sql.Open(m.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	return db, nil
}
