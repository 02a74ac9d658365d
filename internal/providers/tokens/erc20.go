package tokens

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/ratelimit"
)

// RPCProviderName is the rate-limiter bucket for node RPC reads
const RPCProviderName = "rpc"

// ERC-20 read selectors
var (
	symbolSelector   = []byte{0x95, 0xd8, 0x9b, 0x41}
	nameSelector     = []byte{0x06, 0xfd, 0xde, 0x03}
	decimalsSelector = []byte{0x31, 0x3c, 0xe5, 0x67}
)

// RPCSource resolves ERC-20 metadata through eth_call reads, dialing each
// network's node lazily on first use
type RPCSource struct {
	dialer  adapter.EthClientDialer
	proxy   ratelimit.Proxy
	rpcURLs map[domain.Network]string

	mu      sync.Mutex
	clients map[domain.Network]adapter.EthClient
}

// NewRPCSource creates an RPC-backed token metadata source
func NewRPCSource(dialer adapter.EthClientDialer, proxy ratelimit.Proxy, rpcURLs map[domain.Network]string) *RPCSource {
	return &RPCSource{
		dialer:  dialer,
		proxy:   proxy,
		rpcURLs: rpcURLs,
		clients: make(map[domain.Network]adapter.EthClient),
	}
}

// FetchToken reads symbol, name and decimals for a token. Fields that fail
// to decode are left unset; an error is returned only when every read
// failed, so non-compliant tokens still resolve partially.
func (s *RPCSource) FetchToken(ctx context.Context, network domain.Network, address domain.Address) (*domain.TokenMetadata, error) {
	client, err := s.client(ctx, network)
	if err != nil {
		return nil, err
	}

	meta := &domain.TokenMetadata{Address: address, Network: network}
	contract := common.HexToAddress(string(address))

	var lastErr error
	if symbol, err := s.callString(ctx, network, client, contract, symbolSelector); err == nil {
		meta.Symbol = symbol
	} else {
		lastErr = err
	}
	if name, err := s.callString(ctx, network, client, contract, nameSelector); err == nil {
		meta.Name = name
	} else {
		lastErr = err
	}
	if decimals, err := s.callDecimals(ctx, network, client, contract); err == nil {
		meta.Decimals = &decimals
	} else {
		lastErr = err
	}

	if meta.Symbol == "" && meta.Name == "" && meta.Decimals == nil {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, domain.ErrNotFound
	}
	if lastErr != nil {
		logger.DebugCtx(ctx, "partial token metadata",
			zap.String("address", string(address)),
			zap.String("network", string(network)),
			zap.Error(lastErr),
		)
	}

	return meta, nil
}

// client returns the cached connection for a network, dialing on first use
func (s *RPCSource) client(ctx context.Context, network domain.Network) (adapter.EthClient, error) {
	url, ok := s.rpcURLs[network]
	if !ok || url == "" {
		return nil, domain.ErrNetworkUnsupported
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if client, ok := s.clients[network]; ok {
		return client, nil
	}

	client, err := s.dialer.Dial(ctx, url)
	if err != nil {
		return nil, domain.NewUpstreamError(RPCProviderName, network, err)
	}
	s.clients[network] = client
	return client, nil
}

// Close closes all dialed connections
func (s *RPCSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, client := range s.clients {
		client.Close()
	}
	s.clients = make(map[domain.Network]adapter.EthClient)
}

func (s *RPCSource) call(ctx context.Context, network domain.Network, client adapter.EthClient, contract common.Address, selector []byte) ([]byte, error) {
	ret, err := ratelimit.Request(ctx, s.proxy, RPCProviderName, func(ctx context.Context) ([]byte, error) {
		return client.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: selector}, nil)
	})
	if err != nil {
		return nil, domain.NewUpstreamError(RPCProviderName, network, err)
	}
	return ret, nil
}

func (s *RPCSource) callString(ctx context.Context, network domain.Network, client adapter.EthClient, contract common.Address, selector []byte) (string, error) {
	ret, err := s.call(ctx, network, client, contract, selector)
	if err != nil {
		return "", err
	}
	return decodeStringReturn(ret)
}

func (s *RPCSource) callDecimals(ctx context.Context, network domain.Network, client adapter.EthClient, contract common.Address) (int32, error) {
	ret, err := s.call(ctx, network, client, contract, decimalsSelector)
	if err != nil {
		return 0, err
	}
	if len(ret) < 32 {
		return 0, fmt.Errorf("decimals return too short (%d bytes)", len(ret))
	}
	// uint8 is ABI-encoded as a uint256; the value lives in the last byte
	for _, b := range ret[:31] {
		if b != 0 {
			return 0, errors.New("decimals value out of range")
		}
	}
	return int32(ret[31]), nil
}

// decodeStringReturn decodes an ABI string return, falling back to the
// bytes32 encoding used by pre-standard tokens such as MKR
func decodeStringReturn(ret []byte) (string, error) {
	if len(ret) == 0 {
		return "", errors.New("empty return data")
	}

	if len(ret) == 32 {
		// bytes32: zero-padded ASCII
		return strings.TrimRight(string(ret), "\x00"), nil
	}

	stringTy, err := abi.NewType("string", "", nil)
	if err != nil {
		return "", err
	}
	values, err := abi.Arguments{{Type: stringTy}}.Unpack(ret)
	if err != nil {
		return "", fmt.Errorf("failed to decode string return: %w", err)
	}
	value, ok := values[0].(string)
	if !ok {
		return "", errors.New("unexpected string return type")
	}
	return value, nil
}
