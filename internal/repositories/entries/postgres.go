package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/dbx"
	"github.com/dmitrijs2005/guestbook/internal/guestbook"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx)
// opened with the pgx stdlib driver.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, entry *guestbook.Entry) error {
	if err := checkUnsaved(entry); err != nil {
		return err
	}

	query := `
		INSERT INTO entries (name, text, email, date, last_edit_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		entry.Name(), entry.Text(), entry.Email(), entry.Date(), lastEditArg(entry)).Scan(&id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return entry.MarkPersisted(id)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*guestbook.Entry, error) {
	query := `SELECT id, name, text, email, date, last_edit_date FROM entries WHERE id=$1`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %d: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context, limit, offset int) ([]*guestbook.Entry, error) {
	query := `
		SELECT id, name, text, email, date, last_edit_date FROM entries
		ORDER BY date DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	return scanEntries(rows)
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return checkAffected(res, id)
}
