package repository

import "errors"

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("already exists")
	// ErrUnavailable tags an underlying store failure. Callers must
	// propagate it unchanged, never collapse it into ErrNotFound.
	ErrUnavailable = errors.New("store unavailable")
)
