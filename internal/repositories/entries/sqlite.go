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

// SQLiteRepository implements Repository over a dbx.DBTX opened with the
// modernc.org/sqlite driver. Timestamps are stored in UTC so that their text
// form sorts chronologically.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, entry *guestbook.Entry) error {
	if err := checkUnsaved(entry); err != nil {
		return err
	}

	lastEdit := lastEditArg(entry)
	if lastEdit.Valid {
		lastEdit.Time = lastEdit.Time.UTC()
	}

	query := ` INSERT INTO entries (name, text, email, date, last_edit_date)
			values (?, ?, ?, ?, ?)
			RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query,
		entry.Name(), entry.Text(), entry.Email(), entry.Date().UTC(), lastEdit).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	return entry.MarkPersisted(id)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*guestbook.Entry, error) {
	query := `select id, name, text, email, date, last_edit_date from entries where id=?`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("entry %d: %w", id, common.ErrorNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit, offset int) ([]*guestbook.Entry, error) {
	query := `select id, name, text, email, date, last_edit_date from entries
			order by date desc, id desc
			limit ? offset ?`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	return scanEntries(rows)
}

func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `select count(*) from entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `delete from entries where id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return checkAffected(res, id)
}
