package table

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// DefaultQuietPeriod is how long the debouncer waits after the last
// keystroke before issuing the upstream search.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer coalesces keystroke-level search queries into at most one
// upstream request per quiet period. Each call restarts the countdown; a call
// overtaken by a newer one returns domain.ErrSearchSuperseded instead of a
// result. The countdown prevents a new request from firing, but a request
// already in flight is not aborted: its response is checked on arrival and
// discarded when a newer query has since been registered.
type Debouncer[T any] struct {
	quiet  time.Duration
	search func(context.Context, string) ([]T, error)

	mu  sync.Mutex
	gen uint64
}

// NewDebouncer creates a Debouncer. A non-positive quiet period falls back
// to DefaultQuietPeriod.
func NewDebouncer[T any](quiet time.Duration, search func(context.Context, string) ([]T, error)) *Debouncer[T] {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer[T]{quiet: quiet, search: search}
}

// Search registers query as the current one and blocks until either the
// quiet period elapses (issuing exactly one upstream request) or a newer
// query supersedes this call. An empty query clears the result set without
// touching upstream.
func (d *Debouncer[T]) Search(ctx context.Context, query string) ([]T, error) {
	q := strings.TrimSpace(query)

	d.mu.Lock()
	d.gen++
	mine := d.gen
	d.mu.Unlock()

	if q == "" {
		return nil, nil
	}

	timer := time.NewTimer(d.quiet)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	if d.superseded(mine) {
		return nil, domain.ErrSearchSuperseded
	}

	rows, err := d.search(ctx, q)
	if err != nil {
		return nil, err
	}
	if d.superseded(mine) {
		// Late response: a newer query won while this one was in flight.
		return nil, domain.ErrSearchSuperseded
	}
	return rows, nil
}

func (d *Debouncer[T]) superseded(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen != gen
}
