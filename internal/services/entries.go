// Package services holds the guestbook use cases built on top of the
// repositories: signing, importing, listing and removing entries.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/config"
	"github.com/dmitrijs2005/guestbook/internal/dbx"
	"github.com/dmitrijs2005/guestbook/internal/guestbook"
	"github.com/dmitrijs2005/guestbook/internal/logging"
	"github.com/dmitrijs2005/guestbook/internal/repositories/repomanager"
	"github.com/samber/lo"
)

// ImportRecord is one previously written entry to be loaded into storage.
type ImportRecord struct {
	Name  string    `json:"name"`
	Text  string    `json:"text"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// Page is one page of entries, newest first.
type Page struct {
	Entries      []*guestbook.Entry
	Number       int
	TotalEntries int
	PageCount    int
}

type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	factory     *guestbook.Factory
	config      *config.Config
	logger      logging.Logger
}

func NewEntryService(db *sql.DB, repomanager repomanager.RepositoryManager, factory *guestbook.Factory,
	config *config.Config, logger logging.Logger) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: repomanager,
		factory:     factory,
		config:      config,
		logger:      logger.With("module", "entry_service"),
	}
}

func (s *EntryService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.QueryTimeout)
}

// Sign creates a fresh entry dated now and stores it.
func (s *EntryService) Sign(ctx context.Context, name, text, email string) (*guestbook.Entry, error) {
	entry, err := s.factory.Create(name, text, email, nil)
	if err != nil {
		s.logger.Warn(ctx, "entry rejected", "error", err)
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repomanager.Entries(s.db).Save(ctx, entry); err != nil {
		s.logger.Error(ctx, "save entry failed", "error", err)
		return nil, fmt.Errorf("error saving entry: %w", err)
	}

	id, _ := entry.ID()
	s.logger.Info(ctx, "entry saved", "id", id)
	return entry, nil
}

// Import creates backdated entries from records and stores them in a single
// transaction. Every record is validated before anything is written; the
// first invalid record aborts the import. On a failed write the entries built
// so far already hold ids discarded by the rollback; they must not be returned.
func (s *EntryService) Import(ctx context.Context, records []ImportRecord) ([]*guestbook.Entry, error) {
	created := make([]*guestbook.Entry, 0, len(records))
	for i, r := range records {
		date := r.Date
		e, err := s.factory.Create(r.Name, r.Text, r.Email, &date)
		if err != nil {
			s.logger.Warn(ctx, "import record rejected", "index", i, "error", err)
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		created = append(created, e)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Entries(tx)
		for _, e := range created {
			if err := repo.Save(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "import failed", "error", err)
		return nil, fmt.Errorf("error importing entries: %w", err)
	}

	s.logger.Info(ctx, "entries imported", "count", len(created))
	return created, nil
}

// Get returns a stored entry by id.
func (s *EntryService) Get(ctx context.Context, id int64) (*guestbook.Entry, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e, err := s.repomanager.Entries(s.db).GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "get entry failed", "id", id, "error", err)
		}
		return nil, err
	}
	return e, nil
}

// Delete removes a stored entry by id.
func (s *EntryService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.repomanager.Entries(s.db).Delete(ctx, id); err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "delete entry failed", "id", id, "error", err)
		}
		return err
	}

	s.logger.Info(ctx, "entry deleted", "id", id)
	return nil
}

// List returns the given 1-based page of entries.
func (s *EntryService) List(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", common.ErrInvalidPage, page)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	repo := s.repomanager.Entries(s.db)
	size := s.config.PageSize

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting entries: %w", err)
	}

	items, err := repo.List(ctx, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("error loading entries: %w", err)
	}

	return &Page{
		Entries:      lo.Ternary(items == nil, []*guestbook.Entry{}, items),
		Number:       page,
		TotalEntries: total,
		PageCount:    (total + size - 1) / size,
	}, nil
}
