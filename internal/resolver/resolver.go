package resolver

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/providers/orderbook"
)

// Enricher turns raw orders into enriched views on their own network
//
//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=Enricher=MockEnricher,Resolver=MockResolver
type Enricher interface {
	// EnrichOrder merges one raw order with token metadata and derived fields
	EnrichOrder(ctx context.Context, network domain.Network, order *domain.RawOrder) (*domain.EnrichedOrder, error)

	// EnrichOrders enriches a batch of orders settled on one network
	EnrichOrders(ctx context.Context, network domain.Network, orders []domain.RawOrder) ([]*domain.EnrichedOrder, error)
}

// Resolver locates orders and transactions across networks
type Resolver interface {
	// ResolveOrder searches for an order, trying the current network first
	ResolveOrder(ctx context.Context, uid domain.OrderUID, current domain.Network) (*domain.ResolutionResult, error)

	// ResolveTx searches for the orders settled by a transaction
	ResolveTx(ctx context.Context, txHash domain.TxHash, current domain.Network) (*domain.TxResolution, error)
}

// CrossNetworkResolver searches the current network first and then the
// remaining networks in configured priority order. The search is a plain
// sequential loop with early return; a hit on another network reports only
// where the subject lives, never its payload.
type CrossNetworkResolver struct {
	orderbook   orderbook.Client
	enricher    Enricher
	searchOrder []domain.Network
}

// New creates a cross-network resolver
func New(orderbookClient orderbook.Client, enricher Enricher, cfg config.ResolverConfig) *CrossNetworkResolver {
	searchOrder := cfg.SearchOrder
	if len(searchOrder) == 0 {
		searchOrder = domain.AllNetworks()
	}
	return &CrossNetworkResolver{
		orderbook:   orderbookClient,
		enricher:    enricher,
		searchOrder: searchOrder,
	}
}

// ResolveOrder searches for an order by UID. The outcome is tri-state:
// found on the current network (with payload), found elsewhere (network
// name only) or absent. Lookup failures on individual networks are
// collected, not fatal, so one dead upstream cannot mask a hit elsewhere.
func (r *CrossNetworkResolver) ResolveOrder(ctx context.Context, uid domain.OrderUID, current domain.Network) (*domain.ResolutionResult, error) {
	if !domain.IsValidNetwork(current) {
		return nil, domain.ErrNetworkUnsupported
	}

	result := &domain.ResolutionResult{}

	order, err := r.orderbook.GetOrder(ctx, current, uid)
	switch {
	case err == nil:
		enriched, err := r.enricher.EnrichOrder(ctx, current, order)
		if err != nil {
			return nil, err
		}
		result.Order = enriched
		result.FoundOn = current
		return result, nil
	case !isMiss(err):
		result.Errors = append(result.Errors, err)
	}

	for _, network := range r.searchOrder {
		if network == current {
			continue
		}

		_, err := r.orderbook.GetOrder(ctx, network, uid)
		switch {
		case err == nil:
			logger.DebugCtx(ctx, "order found on another network",
				zap.String("uid", string(uid)),
				zap.String("network", string(network)),
			)
			result.FoundOn = network
			return result, nil
		case !isMiss(err):
			result.Errors = append(result.Errors, err)
		}
	}

	return result, nil
}

// ResolveTx searches for the orders settled by a transaction, same skeleton
// as ResolveOrder
func (r *CrossNetworkResolver) ResolveTx(ctx context.Context, txHash domain.TxHash, current domain.Network) (*domain.TxResolution, error) {
	if !domain.IsValidNetwork(current) {
		return nil, domain.ErrNetworkUnsupported
	}

	result := &domain.TxResolution{}

	orders, err := r.orderbook.GetOrdersByTx(ctx, current, txHash)
	switch {
	case err == nil && len(orders) > 0:
		enriched, err := r.enricher.EnrichOrders(ctx, current, orders)
		if err != nil {
			return nil, err
		}
		result.Orders = enriched
		result.FoundOn = current
		return result, nil
	case err != nil && !isMiss(err):
		result.Errors = append(result.Errors, err)
	}

	for _, network := range r.searchOrder {
		if network == current {
			continue
		}

		orders, err := r.orderbook.GetOrdersByTx(ctx, network, txHash)
		switch {
		case err == nil && len(orders) > 0:
			result.FoundOn = network
			return result, nil
		case err != nil && !isMiss(err):
			result.Errors = append(result.Errors, err)
		}
	}

	return result, nil
}

// isMiss reports whether a lookup failure just means "keep looking":
// confirmed misses and unconfigured networks are not worth recording
func isMiss(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNetworkUnsupported)
}
