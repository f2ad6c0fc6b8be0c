// Package entries provides the storage adapters for guestbook entries.
//
// Adapters assign identifiers on insert through Entry.MarkPersisted and
// rebuild stored rows through guestbook.Restore. Listings are ordered by
// date, newest first, with ties broken by id.
package entries

import (
	"context"

	"github.com/dmitrijs2005/guestbook/internal/guestbook"
)

// Repository describes storage operations for guestbook entries.
type Repository interface {
	// Save inserts a new entry and marks it persisted with the assigned id.
	Save(ctx context.Context, entry *guestbook.Entry) error

	// GetByID returns the entry with the given id or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*guestbook.Entry, error)

	// List returns at most limit entries starting at offset.
	List(ctx context.Context, limit, offset int) ([]*guestbook.Entry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// Delete removes the entry with the given id or returns common.ErrorNotFound.
	Delete(ctx context.Context, id int64) error
}
