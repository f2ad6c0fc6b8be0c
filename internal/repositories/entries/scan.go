package entries

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/guestbook"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*guestbook.Entry, error) {
	var (
		id               int64
		name, text, mail string
		date             sql.NullTime
		lastEdit         sql.NullTime
	)
	if err := row.Scan(&id, &name, &text, &mail, &date, &lastEdit); err != nil {
		return nil, err
	}
	if !date.Valid {
		return nil, fmt.Errorf("entry %d has no date", id)
	}

	var edited *time.Time
	if lastEdit.Valid {
		edited = &lastEdit.Time
	}
	return guestbook.Restore(id, name, text, mail, date.Time, edited), nil
}

func scanEntries(rows *sql.Rows) ([]*guestbook.Entry, error) {
	defer rows.Close()

	var result []*guestbook.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// lastEditArg converts the optional last-edit date into a driver argument.
func lastEditArg(e *guestbook.Entry) sql.NullTime {
	t, ok := e.LastEditDate()
	return sql.NullTime{Time: t, Valid: ok}
}

func checkUnsaved(e *guestbook.Entry) error {
	if id, ok := e.ID(); ok {
		return fmt.Errorf("save entry %d: %w", id, common.ErrAlreadyPersisted)
	}
	return nil
}

func checkAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("entry %d: %w", id, common.ErrorNotFound)
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
