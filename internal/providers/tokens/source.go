package tokens

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
)

// Source resolves ERC-20 metadata for one (network, address) pair
//
//go:generate mockgen -source=source.go -destination=../../mocks/token_source.go -package=mocks -mock_names=Source=MockTokenSource
type Source interface {
	FetchToken(ctx context.Context, network domain.Network, address domain.Address) (*domain.TokenMetadata, error)
}

// CompositeSource chains an on-chain source with a token-list fallback.
// The on-chain read is authoritative; the list only fills fields the chain
// could not provide (bytes32 symbols, missing decimals on odd tokens).
type CompositeSource struct {
	primary  Source
	fallback Source
}

// NewCompositeSource creates a source that merges primary and fallback reads
func NewCompositeSource(primary, fallback Source) *CompositeSource {
	return &CompositeSource{primary: primary, fallback: fallback}
}

// FetchToken resolves metadata, merging the fallback into gaps left by the
// primary source. It fails only when both sources failed.
func (s *CompositeSource) FetchToken(ctx context.Context, network domain.Network, address domain.Address) (*domain.TokenMetadata, error) {
	meta, primaryErr := s.primary.FetchToken(ctx, network, address)

	complete := meta != nil && meta.Symbol != "" && meta.Name != "" && meta.Decimals != nil
	if complete || s.fallback == nil {
		return meta, primaryErr
	}

	fallbackMeta, fallbackErr := s.fallback.FetchToken(ctx, network, address)
	if fallbackErr != nil {
		if !errors.Is(fallbackErr, domain.ErrNotFound) {
			logger.DebugCtx(ctx, "token list fallback failed",
				zap.String("address", string(address)),
				zap.Error(fallbackErr),
			)
		}
		return meta, primaryErr
	}

	if meta == nil {
		return fallbackMeta, nil
	}
	meta.Merge(*fallbackMeta)
	return meta, nil
}
