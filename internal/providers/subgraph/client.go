package subgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/ratelimit"
)

// ProviderName is the rate-limiter bucket for the subgraph API
const ProviderName = "subgraph"

// GraphQLRequest represents a GraphQL request
type GraphQLRequest struct {
	Query         string      `json:"query"`
	Variables     interface{} `json:"variables"`
	OperationName string      `json:"operationName"`
}

// envelope is the standard GraphQL response wrapper
type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Totals are protocol-wide aggregates for one network
type Totals struct {
	Orders    uint64 `json:"orders,string"`
	Trades    uint64 `json:"trades,string"`
	Tokens    uint64 `json:"tokens,string"`
	VolumeUSD string `json:"volumeUsd"`
}

// Settlement is the subgraph's view of one settlement transaction
type Settlement struct {
	TxHash     domain.TxHash  `json:"txHash"`
	Solver     domain.Address `json:"solver"`
	Timestamp  int64          `json:"timestamp"`
	TradeCount int            `json:"tradeCount"`
}

// Client defines the subgraph operations
//
//go:generate mockgen -source=client.go -destination=../../mocks/subgraph_client.go -package=mocks -mock_names=Client=MockSubgraphClient
type Client interface {
	// GetTotals fetches protocol-wide aggregates for a network
	GetTotals(ctx context.Context, network domain.Network) (*Totals, error)

	// GetSettlement fetches the settlement record for a transaction,
	// returning ErrNotFound when the subgraph has not indexed it
	GetSettlement(ctx context.Context, network domain.Network, txHash domain.TxHash) (*Settlement, error)
}

// SubgraphClient implements Client against per-network GraphQL endpoints
type SubgraphClient struct {
	httpClient adapter.HTTPClient
	proxy      ratelimit.Proxy
	json       adapter.JSON
	endpoints  map[domain.Network]string
}

// NewClient creates a new subgraph client
func NewClient(httpClient adapter.HTTPClient, proxy ratelimit.Proxy, jsonAdapter adapter.JSON, endpoints map[domain.Network]string) Client {
	return &SubgraphClient{
		httpClient: httpClient,
		proxy:      proxy,
		json:       jsonAdapter,
		endpoints:  endpoints,
	}
}

// GetTotals fetches protocol-wide aggregates for a network
func (c *SubgraphClient) GetTotals(ctx context.Context, network domain.Network) (*Totals, error) {
	query := `query Totals {
  totals {
    orders
    trades
    tokens
    volumeUsd
  }
}`

	var data struct {
		Totals []Totals `json:"totals"`
	}
	if err := c.query(ctx, network, query, "Totals", &data); err != nil {
		return nil, err
	}

	if len(data.Totals) == 0 {
		return nil, domain.ErrNotFound
	}
	return &data.Totals[0], nil
}

// GetSettlement fetches the settlement record for a transaction
func (c *SubgraphClient) GetSettlement(ctx context.Context, network domain.Network, txHash domain.TxHash) (*Settlement, error) {
	query := fmt.Sprintf(`query Settlement {
  settlements(where: {txHash: "%s"}) {
    txHash
    solver { address }
    firstTradeTimestamp
    trades { id }
  }
}`, txHash)

	var data struct {
		Settlements []struct {
			TxHash string `json:"txHash"`
			Solver struct {
				Address string `json:"address"`
			} `json:"solver"`
			FirstTradeTimestamp int64 `json:"firstTradeTimestamp"`
			Trades              []struct {
				ID string `json:"id"`
			} `json:"trades"`
		} `json:"settlements"`
	}
	if err := c.query(ctx, network, query, "Settlement", &data); err != nil {
		return nil, err
	}

	if len(data.Settlements) == 0 {
		return nil, domain.ErrNotFound
	}

	s := data.Settlements[0]
	return &Settlement{
		TxHash:     domain.TxHash(s.TxHash),
		Solver:     domain.Address(s.Solver.Address),
		Timestamp:  s.FirstTradeTimestamp,
		TradeCount: len(s.Trades),
	}, nil
}

// query posts a GraphQL document to the network's endpoint and unmarshals
// the data section into out
func (c *SubgraphClient) query(ctx context.Context, network domain.Network, query, operation string, out interface{}) error {
	endpoint, ok := c.endpoints[network]
	if !ok || endpoint == "" {
		return domain.ErrNetworkUnsupported
	}

	requestBody, err := c.json.Marshal(GraphQLRequest{
		Query:         query,
		OperationName: operation,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	responseBody, err := ratelimit.Request(ctx, c.proxy, ProviderName, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.Post(ctx, endpoint, "application/json", bytes.NewReader(requestBody))
	})
	if err != nil {
		return domain.NewUpstreamError(ProviderName, network, err)
	}

	var env envelope
	if err := c.json.Unmarshal(responseBody, &env); err != nil {
		return domain.NewMalformedDataError(ProviderName, err)
	}
	if len(env.Errors) > 0 {
		return domain.NewUpstreamError(ProviderName, network, fmt.Errorf("graphql: %s", env.Errors[0].Message))
	}

	if err := c.json.Unmarshal(env.Data, out); err != nil {
		return domain.NewMalformedDataError(ProviderName, err)
	}

	return nil
}
