package types

import (
	"errors"
	"fmt"
)

// Error kinds reported by the scheduler, metrics and banker services. Callers
// detect them with errors.Is; none of them is transient.
var (
	// ErrConfiguration reports malformed input: duplicate pid, non-positive
	// burst, missing quantum, ragged resource matrices and similar.
	ErrConfiguration = errors.New("configuration error")

	// ErrEmptyInput is returned when aggregates are requested over no processes.
	ErrEmptyInput = errors.New("empty input")

	// ErrExceedsMax is returned when a resource request exceeds the outstanding
	// need of the requesting process.
	ErrExceedsMax = errors.New("request exceeds maximum need")

	// ErrInsufficientResources is returned when a resource request exceeds the
	// currently available units.
	ErrInsufficientResources = errors.New("insufficient resources")

	// ErrUnsafeState is returned when granting a request would leave the system
	// without a safe completion order. The request is rolled back.
	ErrUnsafeState = errors.New("unsafe state")
)

// Error carries an error kind together with a human readable detail.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

// Unwrap exposes the kind so that errors.Is works against the sentinels above.
func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

func NewConfigurationError(format string, args ...interface{}) error {
	return newError(ErrConfiguration, format, args...)
}

func NewEmptyInputError(format string, args ...interface{}) error {
	return newError(ErrEmptyInput, format, args...)
}

func NewExceedsMaxError(format string, args ...interface{}) error {
	return newError(ErrExceedsMax, format, args...)
}

func NewInsufficientResourcesError(format string, args ...interface{}) error {
	return newError(ErrInsufficientResources, format, args...)
}

func NewUnsafeStateError(format string, args ...interface{}) error {
	return newError(ErrUnsafeState, format, args...)
}
