package dao

import (
	"context"
)

// Service is a generic keyed repository. Implementations return ErrNotFound
// for unknown keys and ErrNilEntity when asked to save nil.
type Service[K comparable, T any] interface {
	Save(ctx context.Context, t *T) error

	Load(ctx context.Context, id K) (*T, error)

	Delete(ctx context.Context, id K) error

	List(ctx context.Context, parameters ...*Parameter) ([]*T, error)
}
