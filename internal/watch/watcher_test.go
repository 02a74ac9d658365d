package watch_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/watch"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newWatcher() *watch.Watcher {
	return watch.NewWatcher(&adapter.RealClock{})
}

func receiveUpdate(t *testing.T, sub *watch.Subscription) watch.Update {
	t.Helper()
	select {
	case update, ok := <-sub.Updates():
		require.True(t, ok, "updates channel closed unexpectedly")
		return update
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
		return watch.Update{}
	}
}

func TestWatch_FetchesImmediately(t *testing.T) {
	watcher := newWatcher()

	sub := watcher.Watch(context.Background(), "totals", func(ctx context.Context) (interface{}, error) {
		return 42, nil
	}, time.Hour)
	defer sub.Stop()

	update := receiveUpdate(t, sub)
	assert.Equal(t, 42, update.Value)
	assert.NoError(t, update.Err)
	assert.False(t, update.At.IsZero())
}

func TestWatch_RefreshesOnInterval(t *testing.T) {
	watcher := newWatcher()

	var calls atomic.Int64
	sub := watcher.Watch(context.Background(), "totals", func(ctx context.Context) (interface{}, error) {
		return calls.Add(1), nil
	}, 20*time.Millisecond)
	defer sub.Stop()

	first := receiveUpdate(t, sub)
	second := receiveUpdate(t, sub)
	assert.Equal(t, int64(1), first.Value)
	assert.Less(t, first.Value.(int64), second.Value.(int64))
}

func TestWatch_KeepsLastGoodValueOnError(t *testing.T) {
	watcher := newWatcher()

	var calls atomic.Int64
	sub := watcher.Watch(context.Background(), "totals", func(ctx context.Context) (interface{}, error) {
		if calls.Add(1) == 1 {
			return "good", nil
		}
		return nil, errors.New("upstream down")
	}, 20*time.Millisecond)
	defer sub.Stop()

	first := receiveUpdate(t, sub)
	require.NoError(t, first.Err)
	assert.Equal(t, "good", first.Value)

	second := receiveUpdate(t, sub)
	require.Error(t, second.Err)
	assert.Equal(t, "good", second.Value)
}

func TestWatch_StopEndsDelivery(t *testing.T) {
	watcher := newWatcher()

	sub := watcher.Watch(context.Background(), "totals", func(ctx context.Context) (interface{}, error) {
		return 1, nil
	}, 10*time.Millisecond)

	receiveUpdate(t, sub)
	sub.Stop()
	sub.Stop() // idempotent

	// the channel closes; anything still buffered drains first
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("updates channel never closed after Stop")
		}
	}
}

func TestWatch_ContextCancellationEndsDelivery(t *testing.T) {
	watcher := newWatcher()
	ctx, cancel := context.WithCancel(context.Background())

	sub := watcher.Watch(ctx, "totals", func(ctx context.Context) (interface{}, error) {
		return 1, nil
	}, 10*time.Millisecond)
	defer sub.Stop()

	receiveUpdate(t, sub)
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-sub.Updates():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("updates channel never closed after cancellation")
		}
	}
}

func TestWatch_CoalescesConcurrentFetchesByKey(t *testing.T) {
	watcher := newWatcher()

	var inFlight, peak atomic.Int64
	fetch := func(ctx context.Context) (interface{}, error) {
		current := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			observed := peak.Load()
			if current <= observed || peak.CompareAndSwap(observed, current) {
				break
			}
		}
		time.Sleep(50 * time.Millisecond)
		return "shared", nil
	}

	var wg sync.WaitGroup
	subs := make([]*watch.Subscription, 4)
	for i := range subs {
		subs[i] = watcher.Watch(context.Background(), "same-key", fetch, time.Hour)
	}
	for _, sub := range subs {
		sub := sub
		wg.Add(1)
		go func() {
			defer wg.Done()
			update := receiveUpdate(t, sub)
			assert.Equal(t, "shared", update.Value)
		}()
	}
	wg.Wait()

	for _, sub := range subs {
		sub.Stop()
	}
	assert.Equal(t, int64(1), peak.Load(), "concurrent fetches for one key must coalesce")
}

func TestWatch_SlowConsumerSeesFreshestSnapshot(t *testing.T) {
	watcher := newWatcher()

	var calls atomic.Int64
	sub := watcher.Watch(context.Background(), "totals", func(ctx context.Context) (interface{}, error) {
		return calls.Add(1), nil
	}, 10*time.Millisecond)
	defer sub.Stop()

	// let several refreshes pile up while nobody reads
	time.Sleep(100 * time.Millisecond)

	update := receiveUpdate(t, sub)
	assert.Greater(t, update.Value.(int64), int64(1), "stale buffered snapshot was not replaced")
}
