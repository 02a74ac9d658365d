package trace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/ratelimit"
)

// ProviderName is the rate-limiter bucket for the trace API
const ProviderName = "trace"

// DecodedInput is one decoded argument of an emitted event
type DecodedInput struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// DecodedLog is one decoded log entry of a transaction trace
type DecodedLog struct {
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Inputs  []DecodedInput `json:"inputs"`
}

// Input returns the string value of a named input, if present
func (l *DecodedLog) Input(name string) (string, bool) {
	for _, input := range l.Inputs {
		if input.Name != name {
			continue
		}
		var value string
		if err := json.Unmarshal(input.Value, &value); err != nil {
			return "", false
		}
		return value, true
	}
	return "", false
}

// TxTrace is the source-shaped execution trace of one transaction
type TxTrace struct {
	From string       `json:"from"`
	To   string       `json:"to"`
	Logs []DecodedLog `json:"logs"`
}

// Contract is a contract touched by a transaction, with its verified name
type Contract struct {
	Address string `json:"address"`
	Name    string `json:"contract_name"`
}

// Client defines the trace API operations
//
//go:generate mockgen -source=client.go -destination=../../mocks/trace_client.go -package=mocks -mock_names=Client=MockTraceClient
type Client interface {
	// GetTransactionTrace fetches the decoded execution trace of a transaction
	GetTransactionTrace(ctx context.Context, network domain.Network, txHash domain.TxHash) (*TxTrace, error)

	// GetContracts fetches the verified contracts touched by a transaction
	GetContracts(ctx context.Context, network domain.Network, txHash domain.TxHash) ([]Contract, error)
}

// TraceClient implements Client against a trace/simulation API
type TraceClient struct {
	httpClient adapter.HTTPClient
	proxy      ratelimit.Proxy
	cfg        config.TraceConfig
}

// NewClient creates a new trace client
func NewClient(httpClient adapter.HTTPClient, proxy ratelimit.Proxy, cfg config.TraceConfig) Client {
	return &TraceClient{
		httpClient: httpClient,
		proxy:      proxy,
		cfg:        cfg,
	}
}

// GetTransactionTrace fetches the decoded execution trace of a transaction
func (c *TraceClient) GetTransactionTrace(ctx context.Context, network domain.Network, txHash domain.TxHash) (*TxTrace, error) {
	url := fmt.Sprintf("%s/trace/%d/%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), network.ChainID(), txHash)

	var result TxTrace
	if err := c.get(ctx, network, url, &result); err != nil {
		return nil, err
	}

	// A trace without logs cannot be reconciled; treat it as a shape failure
	// so only the trace sub-view aborts
	if result.Logs == nil {
		return nil, domain.NewMalformedDataError(ProviderName, errors.New("trace payload missing logs"))
	}

	return &result, nil
}

// GetContracts fetches the verified contracts touched by a transaction
func (c *TraceClient) GetContracts(ctx context.Context, network domain.Network, txHash domain.TxHash) ([]Contract, error) {
	url := fmt.Sprintf("%s/contracts/%d/%s", strings.TrimSuffix(c.cfg.BaseURL, "/"), network.ChainID(), txHash)

	var result []Contract
	if err := c.get(ctx, network, url, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *TraceClient) get(ctx context.Context, network domain.Network, url string, result interface{}) error {
	if c.cfg.BaseURL == "" {
		return domain.ErrNetworkUnsupported
	}

	var headers map[string]string
	if c.cfg.AccessKey != "" {
		headers = map[string]string{"X-Access-Key": c.cfg.AccessKey}
	}

	_, err := ratelimit.Request(ctx, c.proxy, ProviderName, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, c.httpClient.Get(ctx, url, headers, result)
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
