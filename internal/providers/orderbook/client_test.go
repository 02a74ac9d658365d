package orderbook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexplorer/orderscan/internal/adapter"
	"github.com/dexplorer/orderscan/internal/config"
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/mocks"
	"github.com/dexplorer/orderscan/internal/providers/orderbook"
)

const (
	prodURL = "https://api.cow.fi/mainnet"
	barnURL = "https://barn.api.cow.fi/mainnet"
)

var testUID = domain.OrderUID("0x" + repeatHex(112))

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func repeatHex(n int) string {
	const digits = "0123456789abcdef"
	out := make([]byte, n)
	for i := range out {
		out[i] = digits[i%len(digits)]
	}
	return string(out)
}

func testEndpoints() map[domain.Network][]config.OrderbookEndpoint {
	return map[domain.Network][]config.OrderbookEndpoint{
		domain.NetworkMainnet: {
			{Environment: domain.EnvironmentProd, URL: prodURL},
			{Environment: domain.EnvironmentBarn, URL: barnURL},
		},
	}
}

// fillJSON unmarshals a JSON document into the result pointer the client
// passed to the HTTP adapter, emulating a live response
func fillJSON(t *testing.T, doc string) func(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	t.Helper()
	return func(ctx context.Context, url string, headers map[string]string, result interface{}) error {
		return json.Unmarshal([]byte(doc), result)
	}
}

const orderDoc = `{
	"uid": "0x0123",
	"owner": "0x40a50cf069e992aa4536211b23f286ef88752187",
	"sellToken": "0x6810e776880c02933d47db1b9fc05908e5386b96",
	"buyToken": "0xc778417e063141139fce010982780140aa0cd5ab",
	"sellAmount": "1000000000000000000",
	"buyAmount": "500000000000000000",
	"feeAmount": "10000000000000000",
	"executedSellAmount": "0",
	"executedBuyAmount": "0",
	"executedFeeAmount": "0",
	"validTo": 2524608000,
	"kind": "sell",
	"partiallyFillable": false,
	"invalidated": false
}`

func TestClient_GetOrder_FoundOnProd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	httpClient.EXPECT().
		Get(gomock.Any(), prodURL+"/api/v1/orders/"+string(testUID), gomock.Nil(), gomock.Any()).
		DoAndReturn(fillJSON(t, orderDoc))

	order, err := client.GetOrder(context.Background(), domain.NetworkMainnet, testUID)
	require.NoError(t, err)
	assert.Equal(t, domain.NetworkMainnet, order.Network)
	assert.Equal(t, domain.EnvironmentProd, order.Environment)
	assert.Equal(t, domain.OrderKindSell, order.Kind)
	assert.Equal(t, "1000000000000000000", order.SellAmount.String())
	assert.Equal(t, domain.Address("0x40a50cf069e992aa4536211b23f286ef88752187"), order.Owner)
}

func TestClient_GetOrder_FallsBackToBarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	notFound := &adapter.StatusError{StatusCode: http.StatusNotFound}
	gomock.InOrder(
		httpClient.EXPECT().
			Get(gomock.Any(), prodURL+"/api/v1/orders/"+string(testUID), gomock.Nil(), gomock.Any()).
			Return(notFound),
		httpClient.EXPECT().
			Get(gomock.Any(), barnURL+"/api/v1/orders/"+string(testUID), gomock.Nil(), gomock.Any()).
			DoAndReturn(fillJSON(t, orderDoc)),
	)

	order, err := client.GetOrder(context.Background(), domain.NetworkMainnet, testUID)
	require.NoError(t, err)
	assert.Equal(t, domain.EnvironmentBarn, order.Environment)
}

func TestClient_GetOrder_NotFoundAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	notFound := &adapter.StatusError{StatusCode: http.StatusNotFound}
	httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).Return(notFound).Times(2)

	_, err := client.GetOrder(context.Background(), domain.NetworkMainnet, testUID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_GetOrder_UpstreamErrorDoesNotMaskBarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	serverErr := &adapter.StatusError{StatusCode: http.StatusInternalServerError}
	gomock.InOrder(
		httpClient.EXPECT().
			Get(gomock.Any(), prodURL+"/api/v1/orders/"+string(testUID), gomock.Nil(), gomock.Any()).
			Return(serverErr),
		httpClient.EXPECT().
			Get(gomock.Any(), barnURL+"/api/v1/orders/"+string(testUID), gomock.Nil(), gomock.Any()).
			DoAndReturn(fillJSON(t, orderDoc)),
	)

	order, err := client.GetOrder(context.Background(), domain.NetworkMainnet, testUID)
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestClient_GetOrder_UpstreamErrorSurfaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	serverErr := &adapter.StatusError{StatusCode: http.StatusBadGateway}
	notFound := &adapter.StatusError{StatusCode: http.StatusNotFound}
	gomock.InOrder(
		httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).Return(serverErr),
		httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).Return(notFound),
	)

	_, err := client.GetOrder(context.Background(), domain.NetworkMainnet, testUID)
	require.Error(t, err)

	var upstreamErr *domain.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_GetOrder_NetworkUnsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	_, err := client.GetOrder(context.Background(), domain.NetworkSepolia, testUID)
	assert.ErrorIs(t, err, domain.ErrNetworkUnsupported)
}

func TestClient_GetOrderTrades_EmptyIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	httpClient.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any()).
		DoAndReturn(fillJSON(t, `[]`)).Times(2)

	trades, err := client.GetOrderTrades(context.Background(), domain.NetworkMainnet, testUID)
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestClient_GetOrderTrades_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	tradesDoc := `[{
		"orderUid": "` + string(testUID) + `",
		"txHash": "0x` + repeatHex(64) + `",
		"sellAmount": "400",
		"buyAmount": "200",
		"feeAmount": "1",
		"blockNumber": 123456
	}]`

	httpClient.EXPECT().
		Get(gomock.Any(), prodURL+"/api/v1/trades?orderUid="+string(testUID), gomock.Nil(), gomock.Any()).
		DoAndReturn(fillJSON(t, tradesDoc))

	trades, err := client.GetOrderTrades(context.Background(), domain.NetworkMainnet, testUID)
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, testUID, trades[0].OrderUID)
	assert.Equal(t, "400", trades[0].SellAmount.String())
	assert.Equal(t, uint64(123456), trades[0].BlockNumber)
}

func TestClient_GetOrdersByOwner_MergesEnvironments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := orderbook.NewClient(httpClient, nil, testEndpoints())

	owner := domain.Address("0x40a50cf069e992aa4536211b23f286ef88752187")
	gomock.InOrder(
		httpClient.EXPECT().
			Get(gomock.Any(), prodURL+"/api/v1/account/"+string(owner)+"/orders?limit=10&offset=0", gomock.Nil(), gomock.Any()).
			DoAndReturn(fillJSON(t, `[`+orderDoc+`]`)),
		httpClient.EXPECT().
			Get(gomock.Any(), barnURL+"/api/v1/account/"+string(owner)+"/orders?limit=10&offset=0", gomock.Nil(), gomock.Any()).
			DoAndReturn(fillJSON(t, `[`+orderDoc+`]`)),
	)

	orders, err := client.GetOrdersByOwner(context.Background(), domain.NetworkMainnet, owner, 10, 0)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, domain.EnvironmentProd, orders[0].Environment)
	assert.Equal(t, domain.EnvironmentBarn, orders[1].Environment)
}
