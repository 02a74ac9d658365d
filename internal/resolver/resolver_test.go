package resolver_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/mocks"
	"github.com/dexplorer/orderscan/internal/resolver"
)

var (
	testUID    = domain.OrderUID("0x" + strings.Repeat("ab", 56))
	testTxHash = domain.TxHash("0x" + strings.Repeat("cd", 32))
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newResolver(t *testing.T) (*resolver.CrossNetworkResolver, *mocks.MockOrderbookClient, *mocks.MockEnricher) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	orderbookClient := mocks.NewMockOrderbookClient(ctrl)
	enricher := mocks.NewMockEnricher(ctrl)
	r := resolver.New(orderbookClient, enricher, config.ResolverConfig{
		SearchOrder: domain.AllNetworks(),
	})
	return r, orderbookClient, enricher
}

func rawOrder() *domain.RawOrder {
	return &domain.RawOrder{UID: testUID, Network: domain.NetworkMainnet}
}

func TestResolveOrder_FoundOnCurrentNetwork(t *testing.T) {
	r, orderbookClient, enricher := newResolver(t)

	order := rawOrder()
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkMainnet, testUID).
		Return(order, nil)
	enricher.EXPECT().EnrichOrder(gomock.Any(), domain.NetworkMainnet, order).
		Return(&domain.EnrichedOrder{RawOrder: *order, Status: domain.OrderStatusOpen}, nil)

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	require.NotNil(t, result.Order)
	assert.Equal(t, domain.NetworkMainnet, result.FoundOn)
	assert.Empty(t, result.Errors)
}

func TestResolveOrder_FoundElsewhereWithholdsPayload(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	gomock.InOrder(
		orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkMainnet, testUID).
			Return(nil, domain.ErrNotFound),
		orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkGnosis, testUID).
			Return(&domain.RawOrder{UID: testUID, Network: domain.NetworkGnosis}, nil),
	)

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Nil(t, result.Order)
	assert.Equal(t, domain.NetworkGnosis, result.FoundOn)
	assert.False(t, result.Absent())
}

func TestResolveOrder_EarlyReturnSkipsRemainingNetworks(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	// Sepolia must never be queried once gnosis hits
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkMainnet, testUID).
		Return(nil, domain.ErrNotFound)
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkGnosis, testUID).
		Return(&domain.RawOrder{UID: testUID, Network: domain.NetworkGnosis}, nil)

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkGnosis, result.FoundOn)
}

func TestResolveOrder_AbsentEverywhere(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	for _, network := range domain.AllNetworks() {
		orderbookClient.EXPECT().GetOrder(gomock.Any(), network, testUID).
			Return(nil, domain.ErrNotFound)
	}

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.True(t, result.Absent())
}

func TestResolveOrder_UpstreamErrorDoesNotMaskHit(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	upstreamErr := domain.NewUpstreamError("orderbook", domain.NetworkMainnet, errors.New("503"))
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkMainnet, testUID).
		Return(nil, upstreamErr)
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkGnosis, testUID).
		Return(&domain.RawOrder{UID: testUID, Network: domain.NetworkGnosis}, nil)

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkGnosis, result.FoundOn)
	require.Len(t, result.Errors, 1)
	assert.ErrorIs(t, result.Errors[0], upstreamErr)
}

func TestResolveOrder_ExhaustedWithErrorsIsNotAbsent(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkMainnet, testUID).
		Return(nil, domain.ErrNotFound)
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkGnosis, testUID).
		Return(nil, domain.NewUpstreamError("orderbook", domain.NetworkGnosis, errors.New("timeout")))
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkSepolia, testUID).
		Return(nil, domain.ErrNotFound)

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Nil(t, result.Order)
	assert.Empty(t, result.FoundOn)
	assert.Len(t, result.Errors, 1)
	assert.False(t, result.Absent())
}

func TestResolveOrder_UnconfiguredNetworksSkippedSilently(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkMainnet, testUID).
		Return(nil, domain.ErrNotFound)
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkGnosis, testUID).
		Return(nil, domain.ErrNetworkUnsupported)
	orderbookClient.EXPECT().GetOrder(gomock.Any(), domain.NetworkSepolia, testUID).
		Return(nil, domain.ErrNotFound)

	result, err := r.ResolveOrder(context.Background(), testUID, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.True(t, result.Absent())
}

func TestResolveOrder_InvalidCurrentNetwork(t *testing.T) {
	r, _, _ := newResolver(t)

	_, err := r.ResolveOrder(context.Background(), testUID, domain.Network("polygon"))
	assert.ErrorIs(t, err, domain.ErrNetworkUnsupported)
}

func TestResolveTx_FoundOnCurrentNetwork(t *testing.T) {
	r, orderbookClient, enricher := newResolver(t)

	orders := []domain.RawOrder{{UID: testUID, Network: domain.NetworkMainnet}}
	orderbookClient.EXPECT().GetOrdersByTx(gomock.Any(), domain.NetworkMainnet, testTxHash).
		Return(orders, nil)
	enricher.EXPECT().EnrichOrders(gomock.Any(), domain.NetworkMainnet, orders).
		Return([]*domain.EnrichedOrder{{RawOrder: orders[0]}}, nil)

	result, err := r.ResolveTx(context.Background(), testTxHash, domain.NetworkMainnet)
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, domain.NetworkMainnet, result.FoundOn)
}

func TestResolveTx_EmptyResultKeepsSearching(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	// An empty order list is a miss, not a hit
	orderbookClient.EXPECT().GetOrdersByTx(gomock.Any(), domain.NetworkMainnet, testTxHash).
		Return([]domain.RawOrder{}, nil)
	orderbookClient.EXPECT().GetOrdersByTx(gomock.Any(), domain.NetworkGnosis, testTxHash).
		Return([]domain.RawOrder{{UID: testUID, Network: domain.NetworkGnosis}}, nil)

	result, err := r.ResolveTx(context.Background(), testTxHash, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Empty(t, result.Orders)
	assert.Equal(t, domain.NetworkGnosis, result.FoundOn)
}

func TestResolveTx_AbsentEverywhere(t *testing.T) {
	r, orderbookClient, _ := newResolver(t)

	for _, network := range domain.AllNetworks() {
		orderbookClient.EXPECT().GetOrdersByTx(gomock.Any(), network, testTxHash).
			Return(nil, domain.ErrNotFound)
	}

	result, err := r.ResolveTx(context.Background(), testTxHash, domain.NetworkMainnet)
	require.NoError(t, err)
	assert.Empty(t, result.Orders)
	assert.Empty(t, result.FoundOn)
	assert.Empty(t, result.Errors)
}

func TestResolveTx_CurrentNetworkSearchedFirst(t *testing.T) {
	r, orderbookClient, enricher := newResolver(t)

	// current = sepolia, which is last in the priority list; it must still
	// be probed first and short-circuit the search
	orders := []domain.RawOrder{{UID: testUID, Network: domain.NetworkSepolia}}
	orderbookClient.EXPECT().GetOrdersByTx(gomock.Any(), domain.NetworkSepolia, testTxHash).
		Return(orders, nil)
	enricher.EXPECT().EnrichOrders(gomock.Any(), domain.NetworkSepolia, orders).
		Return([]*domain.EnrichedOrder{{RawOrder: orders[0]}}, nil)

	result, err := r.ResolveTx(context.Background(), testTxHash, domain.NetworkSepolia)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkSepolia, result.FoundOn)
}
