package table

import (
	"context"
	"sync"
)

// Loader fetches a collection from upstream and holds the latest successful
// snapshot. One fetch per trigger: the first use of the page, an explicit
// refresh, or a successful row action. There is no retry, no caching beyond
// the held slice, and no pagination beyond what upstream returns.
//
// Concurrent triggers are not deduplicated. Two overlapping reloads race and
// the last response to land wins, even if it was the first one issued. The
// backend owns consistency; the worst case here is a briefly stale list.
type Loader[T any] struct {
	fetch func(context.Context) ([]T, error)

	mu     sync.RWMutex
	rows   []T
	loaded bool
}

// NewLoader creates a Loader around the given fetch function.
func NewLoader[T any](fetch func(context.Context) ([]T, error)) *Loader[T] {
	return &Loader[T]{fetch: fetch}
}

// Reload performs one fetch and replaces the held collection on success. On
// failure the previous collection is left untouched and the error is
// returned for the caller to surface as a notification.
func (l *Loader[T]) Reload(ctx context.Context) error {
	rows, err := l.fetch(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.rows = rows
	l.loaded = true
	l.mu.Unlock()
	return nil
}

// Ensure loads the collection if it has never been loaded. It is the mount
// trigger: subsequent calls are no-ops until a Reload replaces the snapshot.
func (l *Loader[T]) Ensure(ctx context.Context) error {
	l.mu.RLock()
	loaded := l.loaded
	l.mu.RUnlock()
	if loaded {
		return nil
	}
	return l.Reload(ctx)
}

// Rows returns the current snapshot. Callers must not mutate it; the filter
// and sorter both derive copies.
func (l *Loader[T]) Rows() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.rows
}
