package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/logger"
)

// RequestFunc is a function that performs the actual API request
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Proxy defines the interface for the rate-limiting proxy that sits in
// front of every upstream data source
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// proxy is the concrete implementation of the rate-limiting proxy.
// Limits are process-local; the service is a single deployment.
type proxy struct {
	pool      pond.ResultPool[*requestResult]
	limiters  map[string]*rate.Limiter
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewProxy creates a new rate-limiting proxy from per-provider limits
func NewProxy(cfg config.RateLimiterConfig) (Proxy, error) {
	poolSize := cfg.PoolSize
	if poolSize <= 0 {
		poolSize = 64
	}

	limiters := make(map[string]*rate.Limiter)
	for name, providerConfig := range cfg.Providers {
		if providerConfig.RPS <= 0 {
			return nil, fmt.Errorf("provider %q: rps must be positive", name)
		}
		burst := providerConfig.Burst
		if burst <= 0 {
			burst = 1
		}
		limiters[name] = rate.NewLimiter(rate.Limit(providerConfig.RPS), burst)
	}

	pool := pond.NewResultPool[*requestResult](poolSize)

	logger.Info("Rate limit proxy initialized",
		zap.Int("pool_size", poolSize),
		zap.Int("providers", len(limiters)),
	)

	return &proxy{
		pool:     pool,
		limiters: limiters,
	}, nil
}

// Request submits a rate-limited request for execution and returns the
// result with type safety. A nil proxy executes the function directly,
// which keeps unit tests free of rate-limiting setup.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// Request submits a rate-limited request for execution. It blocks until a
// token is acquired and the request completes, or the context is canceled.
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, fmt.Errorf("proxy is closed")
	}

	resultTask := p.pool.Submit(func() *requestResult {
		if limiter, ok := p.limiters[providerName]; ok {
			if err := limiter.Wait(ctx); err != nil {
				return &requestResult{err: err}
			}
		}
		// Providers without a configured limit run unthrottled
		value, err := fn(ctx)
		return &requestResult{value: value, err: err}
	})

	result, err := resultTask.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// Close gracefully shuts down the proxy, waiting for in-flight requests
func (p *proxy) Close() error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.pool.StopAndWait()
	})
	return nil
}
