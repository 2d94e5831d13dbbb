package ports

import (
	"context"
	"errors"
)

// ErrStoreUnavailable marks a backend that cannot be reached at all, such as
// a missing pass binary, as opposed to one that failed an operation.
var ErrStoreUnavailable = errors.New("key-value store unavailable")

// KeyValueStore persists small string values across restarts. Get returns an
// error wrapping domain.ErrEntryNotFound for missing keys and Delete is
// idempotent.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
