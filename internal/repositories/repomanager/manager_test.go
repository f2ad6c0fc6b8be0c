package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/repositories/entries"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func stubGoose(t *testing.T, fn func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error) {
	t.Helper()
	orig := gooseUpContext
	gooseUpContext = fn
	t.Cleanup(func() { gooseUpContext = orig })
}

func TestNew(t *testing.T) {
	tests := []struct {
		driver     string
		wantDriver string
		wantErr    error
	}{
		{driver: "sqlite", wantDriver: "sqlite"},
		{driver: "pgx", wantDriver: "pgx"},
		{driver: "postgres", wantDriver: "pgx"},
		{driver: "mysql", wantErr: common.ErrUnknownDriver},
	}
	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			m, err := New(tt.driver)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, m.DriverName())
		})
	}
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db := newDB(t)

	pg := NewPostgresRepositoryManager().Entries(db)
	_, ok := pg.(*entries.PostgresRepository)
	assert.True(t, ok)

	lite := NewSQLiteRepositoryManager().Entries(db)
	_, ok = lite.(*entries.SQLiteRepository)
	assert.True(t, ok)
}

func TestRunMigrations_Success(t *testing.T) {
	db := newDB(t)

	calls := 0
	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		calls++
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	})

	require.NoError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db))
	require.NoError(t, NewSQLiteRepositoryManager().RunMigrations(context.Background(), db))
	assert.Equal(t, 2, calls)
}

func TestRunMigrations_Error(t *testing.T) {
	db := newDB(t)

	stubGoose(t, func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	})

	assert.EqualError(t, NewPostgresRepositoryManager().RunMigrations(context.Background(), db), "boom")
	assert.EqualError(t, NewSQLiteRepositoryManager().RunMigrations(context.Background(), db), "boom")
}

func TestOpen_SQLiteAndMigrate(t *testing.T) {
	ctx := context.Background()
	m := NewSQLiteRepositoryManager()

	db, err := Open(ctx, m, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, m.RunMigrations(ctx, db))

	n, err := m.Entries(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpen_PingFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, NewSQLiteRepositoryManager(), "file:"+t.Name()+"?mode=memory")
	assert.Error(t, err)
}
