// Package guestbook defines the guestbook Entry and the rules for creating it.
//
// An Entry is immutable once constructed, except for its storage identifier,
// which is assigned exactly once by a storage adapter through MarkPersisted.
// Adapters rebuild stored rows with Restore, which skips validation.
package guestbook

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
)

// Entry is a single guestbook record.
type Entry struct {
	id           int64
	persisted    bool
	name         string
	text         string
	email        string
	date         time.Time
	lastEditDate *time.Time
}

// Factory creates entries using an injected clock.
type Factory struct {
	clock Clock
}

// NewFactory returns a Factory reading time from clock.
// A nil clock falls back to SystemClock.
func NewFactory(clock Clock) *Factory {
	if clock == nil {
		clock = SystemClock
	}
	return &Factory{clock: clock}
}

// Create validates name, text and email (in that order) and builds an entry.
//
// When date is nil the entry is dated now and carries no last-edit date.
// When date is set it is kept verbatim and the last-edit date is stamped now.
// A zero date is rejected.
func (f *Factory) Create(name, text, email string, date *time.Time) (*Entry, error) {
	if err := validateInput(entryInput{Name: name, Text: text, Email: email}); err != nil {
		return nil, err
	}
	if date != nil && date.IsZero() {
		return nil, &ValidationError{Field: "date"}
	}

	e := &Entry{name: name, text: text, email: email}

	now := f.clock.Now()
	if date == nil {
		e.date = now
	} else {
		e.date = *date
		e.lastEditDate = &now
	}

	return e, nil
}

var defaultFactory = NewFactory(SystemClock)

// NewEntry creates a fresh entry dated by the system clock.
func NewEntry(name, text, email string) (*Entry, error) {
	return defaultFactory.Create(name, text, email, nil)
}

// NewEntryAt creates an entry with an explicit date, stamping its last-edit
// date with the system clock.
func NewEntryAt(name, text, email string, date time.Time) (*Entry, error) {
	return defaultFactory.Create(name, text, email, &date)
}

// Restore rebuilds a stored entry. It is meant for storage adapters only:
// the values are trusted as already validated and the clock is not read.
func Restore(id int64, name, text, email string, date time.Time, lastEditDate *time.Time) *Entry {
	e := &Entry{
		id:        id,
		persisted: true,
		name:      name,
		text:      text,
		email:     email,
		date:      date,
	}
	if lastEditDate != nil {
		t := *lastEditDate
		e.lastEditDate = &t
	}
	return e
}

// MarkPersisted records the identifier assigned by storage.
// It succeeds only once per entry.
func (e *Entry) MarkPersisted(id int64) error {
	if e.persisted {
		return fmt.Errorf("mark persisted %d: %w", id, common.ErrAlreadyPersisted)
	}
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", common.ErrInvalidArgument, id)
	}
	e.id = id
	e.persisted = true
	return nil
}

// ID returns the storage identifier and whether one has been assigned.
func (e *Entry) ID() (int64, bool) {
	return e.id, e.persisted
}

func (e *Entry) Name() string {
	return e.name
}

func (e *Entry) Text() string {
	return e.text
}

func (e *Entry) Email() string {
	return e.email
}

// Date returns the creation date.
func (e *Entry) Date() time.Time {
	return e.date
}

// LastEditDate returns the last-edit date, if the entry has one.
func (e *Entry) LastEditDate() (time.Time, bool) {
	if e.lastEditDate == nil {
		return time.Time{}, false
	}
	return *e.lastEditDate, true
}
