package watch

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/logger"
)

// FetchFunc produces one snapshot of the watched value
type FetchFunc func(ctx context.Context) (interface{}, error)

// Update is one delivery to a subscription. When the fetch failed, Value
// holds the last good snapshot so consumers never lose data they already
// had, and Err carries the failure alongside it.
type Update struct {
	Value interface{}
	Err   error
	At    time.Time
}

// Subscription is one consumer's handle on a watched key. After Stop
// returns no further updates are delivered.
type Subscription struct {
	id       string
	updates  chan Update
	stop     chan struct{}
	stopOnce sync.Once
}

// Updates returns the delivery channel. It is closed when the subscription
// ends, by Stop or by context cancellation.
func (s *Subscription) Updates() <-chan Update {
	return s.updates
}

// Stop ends the subscription. Safe to call more than once.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

// Watcher refreshes values on an interval. Concurrent subscriptions for the
// same key coalesce their in-flight fetches into one upstream call.
type Watcher struct {
	group singleflight.Group
	clock adapter.Clock
}

// NewWatcher creates a watcher
func NewWatcher(clock adapter.Clock) *Watcher {
	return &Watcher{clock: clock}
}

// Watch fetches immediately and then on every interval tick until the
// subscription is stopped or the context is canceled
func (w *Watcher) Watch(ctx context.Context, key string, fetch FetchFunc, interval time.Duration) *Subscription {
	sub := &Subscription{
		id:      uuid.NewString(),
		updates: make(chan Update, 1),
		stop:    make(chan struct{}),
	}
	go w.run(ctx, key, fetch, interval, sub)
	return sub
}

func (w *Watcher) run(ctx context.Context, key string, fetch FetchFunc, interval time.Duration, sub *Subscription) {
	defer close(sub.updates)

	var lastGood interface{}

	refresh := func() bool {
		value, err, shared := w.group.Do(key, func() (interface{}, error) {
			return fetch(ctx)
		})
		if err == nil {
			lastGood = value
		} else {
			value = lastGood
			logger.WarnCtx(ctx, "watch fetch failed",
				zap.String("key", key),
				zap.String("subscription", sub.id),
				zap.Bool("shared", shared),
				zap.Error(err),
			)
		}

		// A subscription stopped mid-fetch must not see the stale response
		select {
		case <-sub.stop:
			return false
		case <-ctx.Done():
			return false
		default:
		}

		update := Update{Value: value, Err: err, At: w.clock.Now()}
		for {
			select {
			case sub.updates <- update:
				return true
			case <-sub.stop:
				return false
			case <-ctx.Done():
				return false
			default:
			}
			// Slow consumer: drop the oldest pending update and retry so
			// the channel always holds the freshest snapshot
			select {
			case <-sub.updates:
			default:
			}
		}
	}

	if !refresh() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !refresh() {
				return
			}
		case <-sub.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}
