package executor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/dexplorer/orderscan/internal/api/shared/dto"
	apierrors "github.com/dexplorer/orderscan/internal/api/shared/errors"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/providers/orderbook"
	"github.com/dexplorer/orderscan/internal/providers/subgraph"
	"github.com/dexplorer/orderscan/internal/registry"
	"github.com/dexplorer/orderscan/internal/resolver"
)

// TraceBuilder produces the reconciled settlement trace for a transaction
type TraceBuilder interface {
	SettlementTrace(ctx context.Context, network domain.Network, txHash domain.TxHash) (*domain.SettlementTrace, error)
}

// Executor is the interface for the API executor, the business logic
// shared by every REST handler
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor,TraceBuilder=MockTraceBuilder
type Executor interface {
	// GetNetworks lists the supported networks with their aggregates
	GetNetworks(ctx context.Context) *dto.NetworkListResponse

	// GetOrder resolves an order across networks, current network first
	GetOrder(ctx context.Context, uid domain.OrderUID, current domain.Network) (*dto.OrderResolutionResponse, error)

	// GetOrderTrades lists the fills of an order on one network
	GetOrderTrades(ctx context.Context, uid domain.OrderUID, network domain.Network) (*dto.TradeListResponse, error)

	// GetAccountOrders lists an account's orders on one network, newest first
	GetAccountOrders(ctx context.Context, owner domain.Address, network domain.Network, limit, offset int) (*dto.OrderListResponse, error)

	// GetTransaction resolves a settlement transaction across networks and
	// builds the transaction view: orders, settlement record and trace
	GetTransaction(ctx context.Context, txHash domain.TxHash, current domain.Network) (*dto.TransactionResponse, error)

	// ResetTokenCache drops all cached token metadata
	ResetTokenCache(ctx context.Context)
}

type executor struct {
	resolver        resolver.Resolver
	orderbookClient orderbook.Client
	subgraphClient  subgraph.Client
	enricher        resolver.Enricher
	traceBuilder    TraceBuilder
	tokenRegistry   registry.Registry
}

// NewExecutor creates the shared API executor
func NewExecutor(
	crossNetworkResolver resolver.Resolver,
	orderbookClient orderbook.Client,
	subgraphClient subgraph.Client,
	enricher resolver.Enricher,
	traceBuilder TraceBuilder,
	tokenRegistry registry.Registry,
) Executor {
	return &executor{
		resolver:        crossNetworkResolver,
		orderbookClient: orderbookClient,
		subgraphClient:  subgraphClient,
		enricher:        enricher,
		traceBuilder:    traceBuilder,
		tokenRegistry:   tokenRegistry,
	}
}

// GetNetworks lists supported networks. Totals are decoration from the
// subgraph; a failed or unconfigured subgraph degrades them to absent.
func (e *executor) GetNetworks(ctx context.Context) *dto.NetworkListResponse {
	response := &dto.NetworkListResponse{}
	for _, network := range domain.AllNetworks() {
		info := dto.NetworkInfo{
			Network: string(network),
			ChainID: network.ChainID(),
		}

		totals, err := e.subgraphClient.GetTotals(ctx, network)
		switch {
		case err == nil:
			info.Totals = dto.MapTotals(totals)
		case !errors.Is(err, domain.ErrNetworkUnsupported) && !errors.Is(err, domain.ErrNotFound):
			logger.WarnCtx(ctx, "network totals lookup failed",
				zap.String("network", string(network)),
				zap.Error(err),
			)
		}

		response.Networks = append(response.Networks, info)
	}
	return response
}

func (e *executor) GetOrder(ctx context.Context, uid domain.OrderUID, current domain.Network) (*dto.OrderResolutionResponse, error) {
	result, err := e.resolver.ResolveOrder(ctx, uid, current)
	if err != nil {
		return nil, mapResolveError(err)
	}

	response := &dto.OrderResolutionResponse{
		FoundOn:      string(result.FoundOn),
		LookupErrors: mapLookupErrors(result.Errors),
	}
	if result.Order != nil {
		order := dto.MapOrder(result.Order)
		response.Order = &order
	}
	return response, nil
}

func (e *executor) GetOrderTrades(ctx context.Context, uid domain.OrderUID, network domain.Network) (*dto.TradeListResponse, error) {
	trades, err := e.orderbookClient.GetOrderTrades(ctx, network, uid)
	if err != nil {
		return nil, mapResolveError(err)
	}

	response := &dto.TradeListResponse{Trades: make([]dto.TradeInfo, len(trades))}
	for i, trade := range trades {
		response.Trades[i] = dto.MapTrade(trade)
	}
	return response, nil
}

func (e *executor) GetAccountOrders(ctx context.Context, owner domain.Address, network domain.Network, limit, offset int) (*dto.OrderListResponse, error) {
	orders, err := e.orderbookClient.GetOrdersByOwner(ctx, network, owner, limit, offset)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, mapResolveError(err)
	}

	enriched, err := e.enricher.EnrichOrders(ctx, network, orders)
	if err != nil {
		return nil, apierrors.NewInternalError("Failed to enrich orders", err.Error())
	}

	return &dto.OrderListResponse{
		Orders: dto.MapOrders(enriched),
		Limit:  limit,
		Offset: offset,
	}, nil
}

// GetTransaction builds the transaction view. Order data is the spine;
// the settlement record and the trace are sub-views that degrade
// independently when their sources fail.
func (e *executor) GetTransaction(ctx context.Context, txHash domain.TxHash, current domain.Network) (*dto.TransactionResponse, error) {
	result, err := e.resolver.ResolveTx(ctx, txHash, current)
	if err != nil {
		return nil, mapResolveError(err)
	}

	response := &dto.TransactionResponse{
		FoundOn:      string(result.FoundOn),
		LookupErrors: mapLookupErrors(result.Errors),
	}
	if len(result.Orders) == 0 {
		return response, nil
	}
	response.Orders = dto.MapOrders(result.Orders)

	// Sub-views only make sense when the transaction was found here
	if result.FoundOn != current {
		return response, nil
	}

	settlement, err := e.subgraphClient.GetSettlement(ctx, current, txHash)
	if err == nil {
		response.Settlement = dto.MapSettlement(settlement)
	} else if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrNetworkUnsupported) {
		logger.WarnCtx(ctx, "settlement lookup failed",
			zap.String("txHash", string(txHash)),
			zap.Error(err),
		)
	}

	settlementTrace, err := e.traceBuilder.SettlementTrace(ctx, current, txHash)
	if err == nil {
		response.Trace = dto.MapTrace(settlementTrace)
	} else if !errors.Is(err, domain.ErrNetworkUnsupported) {
		// Malformed or missing traces abort only this sub-view; the order
		// data above still renders
		response.TraceError = err.Error()
		logger.WarnCtx(ctx, "settlement trace failed",
			zap.String("txHash", string(txHash)),
			zap.Error(err),
		)
	}

	return response, nil
}

func (e *executor) ResetTokenCache(ctx context.Context) {
	e.tokenRegistry.Reset()
	logger.InfoCtx(ctx, "token cache reset via admin API")
}

func mapResolveError(err error) *apierrors.APIError {
	switch {
	case errors.Is(err, domain.ErrNetworkUnsupported):
		return apierrors.NewBadRequestError("Network unsupported")
	case errors.Is(err, domain.ErrNotFound):
		return apierrors.NewNotFoundError("Not found")
	default:
		return apierrors.NewUpstreamError("Upstream lookup failed", err.Error())
	}
}

func mapLookupErrors(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	messages := make([]string, len(errs))
	for i, err := range errs {
		messages[i] = fmt.Sprintf("%v", err)
	}
	return messages
}
