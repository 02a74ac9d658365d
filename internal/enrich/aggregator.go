package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/providers/trace"
	"github.com/dexplorer/orderscan/internal/registry"
)

// Aggregator merges raw orders with token metadata and derived fields, and
// reconciles settlement traces into the transaction view. Metadata lookups
// always run on the order's own network. Partial failure degrades the
// affected fields, never the whole view.
type Aggregator struct {
	registry    registry.Registry
	traceClient trace.Client
	clock       adapter.Clock
}

// New creates an aggregator
func New(tokenRegistry registry.Registry, traceClient trace.Client, clock adapter.Clock) *Aggregator {
	return &Aggregator{
		registry:    tokenRegistry,
		traceClient: traceClient,
		clock:       clock,
	}
}

// EnrichOrder merges one raw order with token metadata and derived status,
// fill and surplus fields
func (a *Aggregator) EnrichOrder(ctx context.Context, network domain.Network, order *domain.RawOrder) (*domain.EnrichedOrder, error) {
	tokens := a.resolveTokens(ctx, network, []domain.Address{order.SellToken, order.BuyToken})
	return a.enrichWithTokens(order, tokens), nil
}

// EnrichOrders enriches a batch of orders settled on one network, sharing
// a single token metadata lookup across the batch
func (a *Aggregator) EnrichOrders(ctx context.Context, network domain.Network, orders []domain.RawOrder) ([]*domain.EnrichedOrder, error) {
	addresses := make([]domain.Address, 0, len(orders)*2)
	for i := range orders {
		addresses = append(addresses, orders[i].SellToken, orders[i].BuyToken)
	}
	tokens := a.resolveTokens(ctx, network, addresses)

	enriched := make([]*domain.EnrichedOrder, len(orders))
	for i := range orders {
		enriched[i] = a.enrichWithTokens(&orders[i], tokens)
	}
	return enriched, nil
}

// SettlementTrace fetches and reconciles the decoded execution trace of a
// settlement transaction
func (a *Aggregator) SettlementTrace(ctx context.Context, network domain.Network, txHash domain.TxHash) (*domain.SettlementTrace, error) {
	txTrace, err := a.traceClient.GetTransactionTrace(ctx, network, txHash)
	if err != nil {
		return nil, err
	}

	// Contract names are decoration; a failed lookup degrades them only
	contracts, err := a.traceClient.GetContracts(ctx, network, txHash)
	if err != nil {
		logger.WarnCtx(ctx, "contract name lookup failed",
			zap.String("txHash", string(txHash)),
			zap.String("network", string(network)),
			zap.Error(err),
		)
		contracts = nil
	}

	return reconcileTrace(network, txHash, txTrace, contracts), nil
}

// resolveTokens looks up metadata for the given addresses, degrading to an
// empty map on registry failure so the order view renders without labels
func (a *Aggregator) resolveTokens(ctx context.Context, network domain.Network, addresses []domain.Address) map[domain.Address]domain.TokenMetadata {
	tokens, err := a.registry.ResolveTokens(ctx, network, addresses)
	if err != nil {
		logger.WarnCtx(ctx, "token metadata lookup failed",
			zap.String("network", string(network)),
			zap.Error(err),
		)
		return nil
	}
	return tokens
}

func (a *Aggregator) enrichWithTokens(order *domain.RawOrder, tokens map[domain.Address]domain.TokenMetadata) *domain.EnrichedOrder {
	enriched := &domain.EnrichedOrder{
		RawOrder:         *order,
		Status:           deriveStatus(order, a.clock.Now()),
		PartiallyFilled:  partiallyFilled(order),
		FilledAmount:     atomsFromBig(filledAmount(order)),
		FilledPercentage: filledPercentage(order),
		Surplus:          computeSurplus(order),
	}

	if meta, ok := tokens[order.SellToken]; ok {
		sellMeta := meta
		enriched.SellTokenMeta = &sellMeta
	}
	if meta, ok := tokens[order.BuyToken]; ok {
		buyMeta := meta
		enriched.BuyTokenMeta = &buyMeta
	}

	return enriched
}

// Prices returns the limit and execution prices of an enriched order,
// normalized by whatever decimals its metadata resolved to
func Prices(order *domain.EnrichedOrder) (limit, execution Price) {
	sellDecimals := order.SellTokenMeta.DecimalsOrDefault()
	buyDecimals := order.BuyTokenMeta.DecimalsOrDefault()
	return NewPrice(&order.RawOrder, sellDecimals, buyDecimals),
		ExecutionPrice(&order.RawOrder, sellDecimals, buyDecimals)
}
