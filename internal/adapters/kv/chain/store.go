package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/kv/file"
	passstore "github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/adapters/kv/pass"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/domain"
	"github.com/Zaidshaikh2811/Personalized-Career-Path-Advisor/internal/ports"
)

// Store reads and writes through an ordered list of backends. Reads and
// writes stop at the first backend that succeeds. A write that lands on a
// lower tier clears the key from the tiers above it, and deletes reach
// every backend, so a stale value cannot shadow the latest one.
type Store struct {
	backends []ports.KeyValueStore
}

var _ ports.KeyValueStore = (*Store)(nil)

var errNoBackends = errors.New("chain store needs at least one backend")

func NewStore(backends ...ports.KeyValueStore) *Store {
	store, err := NewStoreChecked(backends...)
	if err != nil {
		panic(err)
	}
	return store
}

func NewStoreChecked(backends ...ports.KeyValueStore) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend == nil {
			return nil, fmt.Errorf("chain store backend %d is nil", i)
		}
	}
	return &Store{backends: backends}, nil
}

func NewPassFirstWithFileFallback(fileRoot string) *Store {
	return NewStore(passstore.NewStore(), filestore.NewStore(fileRoot))
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var failures []error
	missing := 0
	for i, backend := range s.backends {
		value, err := backend.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if isContextError(err) {
			return "", err
		}
		if errors.Is(err, domain.ErrEntryNotFound) {
			missing++
			continue
		}
		failures = append(failures, fmt.Errorf("backend %d get: %w", i, err))
	}

	if len(failures) == 0 || missing > 0 && onlyUnavailable(failures) {
		return "", fmt.Errorf("chain entry %q: %w", key, domain.ErrEntryNotFound)
	}
	return "", errors.Join(failures...)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var failures []error
	for i, backend := range s.backends {
		err := backend.Put(ctx, key, value)
		if err == nil {
			return s.clearAbove(ctx, i, key)
		}
		if isContextError(err) {
			return err
		}
		failures = append(failures, fmt.Errorf("backend %d put: %w", i, err))
	}
	return errors.Join(failures...)
}

// clearAbove removes key from the backends ahead of index. Unavailable
// backends cannot serve a read either, so they are skipped.
func (s *Store) clearAbove(ctx context.Context, index int, key string) error {
	var failures []error
	for i, backend := range s.backends[:index] {
		err := backend.Delete(ctx, key)
		if err == nil || errors.Is(err, ports.ErrStoreUnavailable) {
			continue
		}
		if isContextError(err) {
			return err
		}
		failures = append(failures, fmt.Errorf("backend %d clear stale entry: %w", i, err))
	}
	return errors.Join(failures...)
}

// Delete skips backends that are unavailable and fails only if a reachable
// backend could not remove the key or none was reachable.
func (s *Store) Delete(ctx context.Context, key string) error {
	var failures []error
	reached := 0
	for i, backend := range s.backends {
		err := backend.Delete(ctx, key)
		if err == nil {
			reached++
			continue
		}
		if isContextError(err) {
			return err
		}
		failures = append(failures, fmt.Errorf("backend %d delete: %w", i, err))
	}

	if reached > 0 && onlyUnavailable(failures) {
		return nil
	}
	return errors.Join(failures...)
}

func onlyUnavailable(errs []error) bool {
	for _, err := range errs {
		if !errors.Is(err, ports.ErrStoreUnavailable) {
			return false
		}
	}
	return true
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
