package table

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

func TestDispatcher_SuccessTriggersExactlyOneRefresh(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	deletes := 0
	refreshes := 0
	err := d.Run(context.Background(), "10016/EX-1/2026-01-05",
		func(context.Context) error { deletes++; return nil },
		func(context.Context) { refreshes++ },
	)

	require.NoError(t, err)
	assert.Equal(t, 1, deletes)
	assert.Equal(t, 1, refreshes)
	assert.False(t, d.Pending("10016/EX-1/2026-01-05"))
}

func TestDispatcher_FailureSkipsRefreshAndReturnsIdle(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	refreshes := 0
	err := d.Run(context.Background(), "k",
		func(context.Context) error { return errors.New("409 from upstream") },
		func(context.Context) { refreshes++ },
	)

	require.Error(t, err)
	assert.Zero(t, refreshes)
	assert.False(t, d.Pending("k"))
}

func TestDispatcher_PendingBlocksSecondConfirm(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- d.Run(context.Background(), "k", func(context.Context) error {
			close(started)
			<-release
			return nil
		}, nil)
	}()

	<-started
	assert.True(t, d.Pending("k"))
	err := d.Run(context.Background(), "k", func(context.Context) error { return nil }, nil)
	assert.ErrorIs(t, err, domain.ErrActionPending)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, d.Pending("k"))
}

func TestDispatcher_DifferentRowsRunIndependently(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = d.Run(context.Background(), "a", func(context.Context) error {
			close(started)
			<-release
			return nil
		}, nil)
	}()

	<-started
	err := d.Run(context.Background(), "b", func(context.Context) error { return nil }, nil)
	assert.NoError(t, err)
	close(release)
}
