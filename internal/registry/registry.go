package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/providers/tokens"
)

const defaultPoolSize = 16

// Registry resolves and caches ERC-20 metadata across networks
//
//go:generate mockgen -source=registry.go -destination=../mocks/token_registry.go -package=mocks -mock_names=Registry=MockTokenRegistry
type Registry interface {
	// ResolveTokens resolves metadata for a batch of token addresses on one
	// network. Addresses that failed to resolve are omitted from the result.
	ResolveTokens(ctx context.Context, network domain.Network, addresses []domain.Address) (map[domain.Address]domain.TokenMetadata, error)

	// Reset drops all cached metadata
	Reset()
}

// TokenRegistry is the process-lifetime token metadata cache. Entries are
// keyed by (network, address) and written through a merge that never
// erases a known field with an unknown one.
type TokenRegistry struct {
	source tokens.Source
	pool   pond.ResultPool[*resolved]
	group  singleflight.Group

	mu    sync.RWMutex
	cache map[string]domain.TokenMetadata
}

type resolved struct {
	address domain.Address
	meta    *domain.TokenMetadata
}

// New creates a token registry over the given metadata source
func New(source tokens.Source, poolSize int) *TokenRegistry {
	if poolSize <= 0 {
		poolSize = defaultPoolSize
	}
	return &TokenRegistry{
		source: source,
		pool:   pond.NewResultPool[*resolved](poolSize),
		cache:  make(map[string]domain.TokenMetadata),
	}
}

// ResolveTokens resolves metadata for a batch of token addresses on one
// network. Lookups within the batch fan out concurrently; identical
// lookups across concurrent batches collapse into a single upstream
// request. Addresses that failed to resolve are omitted so one bad token
// never sinks the batch.
func (r *TokenRegistry) ResolveTokens(ctx context.Context, network domain.Network, addresses []domain.Address) (map[domain.Address]domain.TokenMetadata, error) {
	if !domain.IsValidNetwork(network) {
		return nil, domain.ErrNetworkUnsupported
	}

	unique := make([]domain.Address, 0, len(addresses))
	seen := make(map[domain.Address]struct{}, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		unique = append(unique, address)
	}

	group := r.pool.NewGroup()
	for _, address := range unique {
		address := address
		group.Submit(func() *resolved {
			meta, err := r.resolveOne(ctx, network, address)
			if err != nil {
				logger.WarnCtx(ctx, "token resolution failed",
					zap.String("address", string(address)),
					zap.String("network", string(network)),
					zap.Error(err),
				)
				return &resolved{address: address}
			}
			return &resolved{address: address, meta: meta}
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, err
	}

	out := make(map[domain.Address]domain.TokenMetadata, len(results))
	for _, result := range results {
		if result.meta == nil {
			continue
		}
		out[result.address] = *result.meta
	}
	return out, nil
}

// resolveOne serves a single lookup from the cache, or fetches it through
// the singleflight group so concurrent callers share one upstream request
func (r *TokenRegistry) resolveOne(ctx context.Context, network domain.Network, address domain.Address) (*domain.TokenMetadata, error) {
	key := cacheKey(network, address)

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return &cached, nil
	}

	value, err, _ := r.group.Do(key, func() (interface{}, error) {
		fresh, err := r.source.FetchToken(ctx, network, address)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Cache the miss as an empty entry so the label fallback
				// applies without refetching every request
				fresh = &domain.TokenMetadata{Address: address, Network: network}
			} else {
				return nil, err
			}
		}
		return r.write(key, *fresh), nil
	})
	if err != nil {
		return nil, err
	}

	meta := value.(domain.TokenMetadata)
	return &meta, nil
}

// write merges fresh metadata into the cache entry, keeping any field the
// cache already knows, and returns the merged entry
func (r *TokenRegistry) write(key string, fresh domain.TokenMetadata) domain.TokenMetadata {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.cache[key]; ok {
		existing.Merge(fresh)
		r.cache[key] = existing
		return existing
	}
	r.cache[key] = fresh
	return fresh
}

// Reset drops all cached metadata. In-flight lookups still complete and
// repopulate the cache.
func (r *TokenRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]domain.TokenMetadata)
	logger.Info("token registry cache reset")
}

// Close stops the fan-out pool, waiting for in-flight lookups
func (r *TokenRegistry) Close() {
	r.pool.StopAndWait()
}

func cacheKey(network domain.Network, address domain.Address) string {
	return fmt.Sprintf("%s|%s", network, address)
}
