package orderbook

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/ratelimit"
)

// ProviderName is the rate-limiter bucket for the order-book API
const ProviderName = "orderbook"

// orderResponse is the source-shaped order payload
type orderResponse struct {
	UID                string        `json:"uid"`
	Owner              string        `json:"owner"`
	Receiver           string        `json:"receiver"`
	SellToken          string        `json:"sellToken"`
	BuyToken           string        `json:"buyToken"`
	SellAmount         *domain.Atoms `json:"sellAmount"`
	BuyAmount          *domain.Atoms `json:"buyAmount"`
	FeeAmount          *domain.Atoms `json:"feeAmount"`
	ExecutedSellAmount *domain.Atoms `json:"executedSellAmount"`
	ExecutedBuyAmount  *domain.Atoms `json:"executedBuyAmount"`
	ExecutedFeeAmount  *domain.Atoms `json:"executedFeeAmount"`
	ValidTo            int64         `json:"validTo"`
	Kind               string        `json:"kind"`
	PartiallyFillable  bool          `json:"partiallyFillable"`
	Invalidated        bool          `json:"invalidated"`
	Signature          string        `json:"signature"`
	CreationDate       time.Time     `json:"creationDate"`
}

// tradeResponse is the source-shaped trade payload
type tradeResponse struct {
	OrderUID    string        `json:"orderUid"`
	TxHash      string        `json:"txHash"`
	Owner       string        `json:"owner"`
	SellToken   string        `json:"sellToken"`
	BuyToken    string        `json:"buyToken"`
	SellAmount  *domain.Atoms `json:"sellAmount"`
	BuyAmount   *domain.Atoms `json:"buyAmount"`
	FeeAmount   *domain.Atoms `json:"feeAmount"`
	BlockNumber uint64        `json:"blockNumber"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Client defines the order-book API operations
//
//go:generate mockgen -source=client.go -destination=../../mocks/orderbook_client.go -package=mocks -mock_names=Client=MockOrderbookClient
type Client interface {
	// GetOrder fetches a single order by UID, probing each configured
	// environment (prod then barn) for the network in order
	GetOrder(ctx context.Context, network domain.Network, uid domain.OrderUID) (*domain.RawOrder, error)

	// GetOrderTrades fetches the fills recorded for an order
	GetOrderTrades(ctx context.Context, network domain.Network, uid domain.OrderUID) ([]domain.Trade, error)

	// GetOrdersByTx fetches all orders settled in a transaction
	GetOrdersByTx(ctx context.Context, network domain.Network, txHash domain.TxHash) ([]domain.RawOrder, error)

	// GetOrdersByOwner fetches orders created by an address, newest first
	GetOrdersByOwner(ctx context.Context, network domain.Network, owner domain.Address, limit, offset int) ([]domain.RawOrder, error)
}

// OrderbookClient implements Client against per-network endpoint lists
type OrderbookClient struct {
	httpClient adapter.HTTPClient
	proxy      ratelimit.Proxy
	endpoints  map[domain.Network][]config.OrderbookEndpoint
}

// NewClient creates a new order-book client
func NewClient(httpClient adapter.HTTPClient, proxy ratelimit.Proxy, endpoints map[domain.Network][]config.OrderbookEndpoint) Client {
	return &OrderbookClient{
		httpClient: httpClient,
		proxy:      proxy,
		endpoints:  endpoints,
	}
}

// GetOrder fetches a single order by UID
func (c *OrderbookClient) GetOrder(ctx context.Context, network domain.Network, uid domain.OrderUID) (*domain.RawOrder, error) {
	return forEachEnvironment(ctx, c, network, func(ctx context.Context, endpoint config.OrderbookEndpoint) (*domain.RawOrder, error) {
		url := fmt.Sprintf("%s/api/v1/orders/%s", endpoint.URL, uid)

		var resp orderResponse
		if err := c.get(ctx, network, url, &resp); err != nil {
			return nil, err
		}
		return mapOrder(&resp, network, endpoint.Environment), nil
	})
}

// GetOrderTrades fetches the fills recorded for an order
func (c *OrderbookClient) GetOrderTrades(ctx context.Context, network domain.Network, uid domain.OrderUID) ([]domain.Trade, error) {
	trades, err := forEachEnvironment(ctx, c, network, func(ctx context.Context, endpoint config.OrderbookEndpoint) ([]domain.Trade, error) {
		url := fmt.Sprintf("%s/api/v1/trades?orderUid=%s", endpoint.URL, uid)

		var resp []tradeResponse
		if err := c.get(ctx, network, url, &resp); err != nil {
			return nil, err
		}
		if len(resp) == 0 {
			// Empty result set; the order may live in another environment
			return nil, domain.ErrNotFound
		}
		return mapTrades(resp), nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return trades, err
}

// GetOrdersByTx fetches all orders settled in a transaction
func (c *OrderbookClient) GetOrdersByTx(ctx context.Context, network domain.Network, txHash domain.TxHash) ([]domain.RawOrder, error) {
	return forEachEnvironment(ctx, c, network, func(ctx context.Context, endpoint config.OrderbookEndpoint) ([]domain.RawOrder, error) {
		url := fmt.Sprintf("%s/api/v1/transactions/%s/orders", endpoint.URL, txHash)

		var resp []orderResponse
		if err := c.get(ctx, network, url, &resp); err != nil {
			return nil, err
		}
		if len(resp) == 0 {
			return nil, domain.ErrNotFound
		}
		return mapOrders(resp, network, endpoint.Environment), nil
	})
}

// GetOrdersByOwner fetches orders created by an address, newest first.
// Unlike the single-order lookups, results from every environment are
// merged: an owner can have orders in both prod and barn.
func (c *OrderbookClient) GetOrdersByOwner(ctx context.Context, network domain.Network, owner domain.Address, limit, offset int) ([]domain.RawOrder, error) {
	endpoints, ok := c.endpoints[network]
	if !ok || len(endpoints) == 0 {
		return nil, domain.ErrNetworkUnsupported
	}

	var orders []domain.RawOrder
	var firstErr error
	for _, endpoint := range endpoints {
		url := fmt.Sprintf("%s/api/v1/account/%s/orders?limit=%d&offset=%d", endpoint.URL, owner, limit, offset)

		var resp []orderResponse
		if err := c.get(ctx, network, url, &resp); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		orders = append(orders, mapOrders(resp, network, endpoint.Environment)...)
	}

	if len(orders) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return orders, nil
}

// forEachEnvironment probes each configured environment for a network in
// order. A 404 moves on to the next environment; any other failure is
// remembered but the probe continues, so a prod outage cannot mask an
// order that lives in barn.
func forEachEnvironment[T any](ctx context.Context, c *OrderbookClient, network domain.Network, fn func(ctx context.Context, endpoint config.OrderbookEndpoint) (T, error)) (T, error) {
	var zero T

	endpoints, ok := c.endpoints[network]
	if !ok || len(endpoints) == 0 {
		return zero, domain.ErrNetworkUnsupported
	}

	var firstErr error
	for _, endpoint := range endpoints {
		result, err := fn(ctx, endpoint)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return zero, firstErr
	}
	return zero, domain.ErrNotFound
}

// get performs a rate-limited GET and maps transport failures onto the
// domain error taxonomy
func (c *OrderbookClient) get(ctx context.Context, network domain.Network, url string, result interface{}) error {
	_, err := ratelimit.Request(ctx, c.proxy, ProviderName, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.httpClient.Get(ctx, url, nil, result)
	})
	if err != nil {
		var statusErr *adapter.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.ErrNotFound
		}
		return domain.NewUpstreamError(ProviderName, network, err)
	}
	return nil
}

func mapOrder(resp *orderResponse, network domain.Network, env domain.Environment) *domain.RawOrder {
	return &domain.RawOrder{
		UID:                domain.OrderUID(resp.UID),
		Network:            network,
		Environment:        env,
		Owner:              domain.Address(resp.Owner),
		Receiver:           domain.Address(resp.Receiver),
		SellToken:          domain.Address(resp.SellToken),
		BuyToken:           domain.Address(resp.BuyToken),
		SellAmount:         resp.SellAmount,
		BuyAmount:          resp.BuyAmount,
		FeeAmount:          resp.FeeAmount,
		ExecutedSellAmount: resp.ExecutedSellAmount,
		ExecutedBuyAmount:  resp.ExecutedBuyAmount,
		ExecutedFeeAmount:  resp.ExecutedFeeAmount,
		ValidTo:            resp.ValidTo,
		Kind:               domain.OrderKind(resp.Kind),
		PartiallyFillable:  resp.PartiallyFillable,
		Invalidated:        resp.Invalidated,
		Signature:          resp.Signature,
		CreationDate:       resp.CreationDate,
	}
}

func mapOrders(resp []orderResponse, network domain.Network, env domain.Environment) []domain.RawOrder {
	orders := make([]domain.RawOrder, 0, len(resp))
	for i := range resp {
		orders = append(orders, *mapOrder(&resp[i], network, env))
	}
	return orders
}

func mapTrades(resp []tradeResponse) []domain.Trade {
	trades := make([]domain.Trade, 0, len(resp))
	for _, t := range resp {
		trades = append(trades, domain.Trade{
			OrderUID:    domain.OrderUID(t.OrderUID),
			TxHash:      domain.TxHash(t.TxHash),
			Owner:       domain.Address(t.Owner),
			SellToken:   domain.Address(t.SellToken),
			BuyToken:    domain.Address(t.BuyToken),
			SellAmount:  t.SellAmount,
			BuyAmount:   t.BuyAmount,
			FeeAmount:   t.FeeAmount,
			BlockNumber: t.BlockNumber,
			Timestamp:   t.Timestamp,
		})
	}
	return trades
}
