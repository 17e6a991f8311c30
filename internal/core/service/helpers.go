package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/biblioteca-cpe/console-gateway/internal/api/metrics"
	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
	"github.com/biblioteca-cpe/console-gateway/internal/core/table"
)

// reload applies the list-loader trigger discipline shared by every screen:
// a forced refresh reloads unconditionally, otherwise the first call loads
// and later calls reuse the held snapshot.
func reload[T any](ctx context.Context, loader *table.Loader[T], resource string, force bool) error {
	var err error
	if force {
		err = loader.Reload(ctx)
	} else {
		err = loader.Ensure(ctx)
	}
	if err != nil {
		metrics.ListReloadsTotal.WithLabelValues(resource, "error").Inc()
		return err
	}
	metrics.ListReloadsTotal.WithLabelValues(resource, "ok").Inc()
	return nil
}

// refreshAfterAction is the onSuccess callback handed to the action
// dispatcher: one list reload per successful mutation. A failed refresh is
// logged but does not turn the action into a failure.
func refreshAfterAction[T any](loader *table.Loader[T], resource string, log zerolog.Logger) func(context.Context) {
	return func(ctx context.Context) {
		if err := loader.Reload(ctx); err != nil {
			metrics.ListReloadsTotal.WithLabelValues(resource, "error").Inc()
			log.Warn().Err(err).Str("resource", resource).Msg("list refresh after action failed")
			return
		}
		metrics.ListReloadsTotal.WithLabelValues(resource, "ok").Inc()
	}
}

func countAction(resource, action string, err error) {
	result := "ok"
	switch {
	case errors.Is(err, domain.ErrActionPending):
		result = "pending"
	case err != nil:
		result = "error"
	}
	metrics.RowActionsTotal.WithLabelValues(resource, action, result).Inc()
}
