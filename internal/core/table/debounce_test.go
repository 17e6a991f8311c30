package table

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblioteca-cpe/console-gateway/internal/core/domain"
)

func TestDebouncer_EmptyQueryIssuesNoRequest(t *testing.T) {
	var calls int64
	d := NewDebouncer(time.Millisecond, func(context.Context, string) ([]string, error) {
		atomic.AddInt64(&calls, 1)
		return []string{"x"}, nil
	})

	rows, err := d.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, rows)
	assert.Zero(t, atomic.LoadInt64(&calls))
}

func TestDebouncer_SingleQueryIssuesOneRequest(t *testing.T) {
	var calls int64
	d := NewDebouncer(time.Millisecond, func(_ context.Context, q string) ([]string, error) {
		atomic.AddInt64(&calls, 1)
		return []string{"result for " + q}, nil
	})

	rows, err := d.Search(context.Background(), "helena")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "result for helena", rows[0])
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestDebouncer_RapidKeystrokesIssueOneRequest(t *testing.T) {
	var calls int64
	d := NewDebouncer(50*time.Millisecond, func(_ context.Context, q string) ([]string, error) {
		atomic.AddInt64(&calls, 1)
		return []string{q}, nil
	})

	var wg sync.WaitGroup
	for _, q := range []string{"h", "he"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			_, err := d.Search(context.Background(), q)
			assert.ErrorIs(t, err, domain.ErrSearchSuperseded)
		}(q)
		time.Sleep(10 * time.Millisecond)
	}

	rows, err := d.Search(context.Background(), "hel")
	wg.Wait()

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "hel", rows[0])
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestDebouncer_LateResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	d := NewDebouncer(time.Millisecond, func(_ context.Context, q string) ([]string, error) {
		if q == "slow" {
			close(entered)
			<-release
		}
		return []string{q}, nil
	})

	var slowErr error
	done := make(chan struct{})
	go func() {
		_, slowErr = d.Search(context.Background(), "slow")
		close(done)
	}()

	// Wait until the slow request is in flight, then supersede it.
	<-entered
	rows, err := d.Search(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, rows)

	close(release)
	<-done
	assert.ErrorIs(t, slowErr, domain.ErrSearchSuperseded)
}

func TestDebouncer_ContextCancelStopsCountdown(t *testing.T) {
	var calls int64
	d := NewDebouncer(time.Hour, func(context.Context, string) ([]string, error) {
		atomic.AddInt64(&calls, 1)
		return nil, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Search(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt64(&calls))
}
