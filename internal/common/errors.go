// Package common defines sentinel errors shared by the guestbook layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Entry lifecycle errors.
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrAlreadyPersisted = errors.New("entry already persisted")

	// Service-level errors.
	ErrInvalidPage = errors.New("invalid page number")

	// Wiring errors.
	ErrUnknownDriver  = errors.New("unknown database driver")
	ErrUnknownCommand = errors.New("unknown command")
)
