package dao

import "errors"

// Store errors shared by every dao.Service implementation; match them with
// errors.Is.
var (
	// ErrNotFound is returned when no record is stored under the key.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID is returned when a record yields the zero key.
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity is returned when saving a nil record.
	ErrNilEntity = errors.New("dao: nil entity")
)
