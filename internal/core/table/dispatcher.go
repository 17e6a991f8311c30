package table

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

// Dispatcher runs confirmed row actions (delete, renew, mark-returned,
// mark-fulfilled). While an action for a given row key is pending, a second
// confirm for the same key is rejected with domain.ErrActionPending, so a
// double submission cannot happen. Actions on different rows run freely in
// parallel, and nothing serializes an action against an in-flight list
// refresh.
//
// Callers supply typed callbacks; there is no broadcast signalling between
// the row menu and the page.
type Dispatcher struct {
	log zerolog.Logger

	mu      sync.Mutex
	pending map[string]struct{}
}

// NewDispatcher creates a Dispatcher logging through log.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log, pending: make(map[string]struct{})}
}

// Run executes do for the row identified by key. On success onSuccess fires
// once (the list refresh trigger) before the dispatcher returns to idle; on
// failure the error propagates and the dispatcher returns to idle without
// retrying. Either way the pending mark is cleared.
func (d *Dispatcher) Run(ctx context.Context, key string, do func(context.Context) error, onSuccess func(context.Context)) error {
	d.mu.Lock()
	if _, busy := d.pending[key]; busy {
		d.mu.Unlock()
		return domain.ErrActionPending
	}
	d.pending[key] = struct{}{}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		delete(d.pending, key)
		d.mu.Unlock()
	}()

	if err := do(ctx); err != nil {
		d.log.Error().Err(err).Str("row", key).Msg("row action failed")
		return err
	}

	if onSuccess != nil {
		onSuccess(ctx)
	}
	return nil
}

// Pending reports whether an action for key is currently in flight.
func (d *Dispatcher) Pending(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, busy := d.pending[key]
	return busy
}
