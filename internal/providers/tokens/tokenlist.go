package tokens

import (
	"context"
	"strings"
	"sync"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/ratelimit"
)

// ListProviderName is the rate-limiter bucket for token-list fetches
const ListProviderName = "tokenlist"

// tokenListResponse is the standard token-list document shape
type tokenListResponse struct {
	Tokens []struct {
		ChainID  uint64 `json:"chainId"`
		Address  string `json:"address"`
		Symbol   string `json:"symbol"`
		Name     string `json:"name"`
		Decimals int32  `json:"decimals"`
	} `json:"tokens"`
}

// ListSource resolves token metadata from published token lists. The list
// for each network is fetched once and held for the process lifetime.
type ListSource struct {
	httpClient adapter.HTTPClient
	proxy      ratelimit.Proxy
	listURLs   map[domain.Network]string

	mu    sync.Mutex
	lists map[domain.Network]map[domain.Address]domain.TokenMetadata
}

// NewListSource creates a token-list-backed metadata source
func NewListSource(httpClient adapter.HTTPClient, proxy ratelimit.Proxy, listURLs map[domain.Network]string) *ListSource {
	return &ListSource{
		httpClient: httpClient,
		proxy:      proxy,
		listURLs:   listURLs,
		lists:      make(map[domain.Network]map[domain.Address]domain.TokenMetadata),
	}
}

// FetchToken looks a token up in the network's token list
func (s *ListSource) FetchToken(ctx context.Context, network domain.Network, address domain.Address) (*domain.TokenMetadata, error) {
	list, err := s.list(ctx, network)
	if err != nil {
		return nil, err
	}

	meta, ok := list[domain.Address(strings.ToLower(string(address)))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &meta, nil
}

func (s *ListSource) list(ctx context.Context, network domain.Network) (map[domain.Address]domain.TokenMetadata, error) {
	url, ok := s.listURLs[network]
	if !ok || url == "" {
		return nil, domain.ErrNetworkUnsupported
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if list, ok := s.lists[network]; ok {
		return list, nil
	}

	var response tokenListResponse
	_, err := ratelimit.Request(ctx, s.proxy, ListProviderName, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.httpClient.Get(ctx, url, nil, &response)
	})
	if err != nil {
		return nil, domain.NewUpstreamError(ListProviderName, network, err)
	}

	list := make(map[domain.Address]domain.TokenMetadata, len(response.Tokens))
	for _, token := range response.Tokens {
		if token.ChainID != network.ChainID() {
			continue
		}
		decimals := token.Decimals
		address := domain.Address(strings.ToLower(token.Address))
		list[address] = domain.TokenMetadata{
			Address:  address,
			Network:  network,
			Symbol:   token.Symbol,
			Name:     token.Name,
			Decimals: &decimals,
		}
	}
	s.lists[network] = list

	return list, nil
}
