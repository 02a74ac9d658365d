package tokens

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math/big"
	"os"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/mocks"
)

const testTokenAddress = domain.Address("0x6810e776880c02933d47db1b9fc05908e5386b96")

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// abiString encodes a string the way an ABI-compliant token returns it
func abiString(s string) []byte {
	out := make([]byte, 64)
	out[31] = 0x20
	binary.BigEndian.PutUint64(out[56:64], uint64(len(s)))
	padded := make([]byte, (len(s)+31)/32*32)
	copy(padded, s)
	return append(out, padded...)
}

// abiBytes32 encodes a string the way pre-standard tokens return it
func abiBytes32(s string) []byte {
	out := make([]byte, 32)
	copy(out, s)
	return out
}

// abiUint8 encodes a uint8 as an ABI uint256
func abiUint8(v uint8) []byte {
	out := make([]byte, 32)
	out[31] = v
	return out
}

func TestDecodeStringReturn(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr bool
	}{
		{"abi string", abiString("GNO"), "GNO", false},
		{"bytes32 string", abiBytes32("MKR"), "MKR", false},
		{"long abi string", abiString("Wrapped Ether Token"), "Wrapped Ether Token", false},
		{"empty return", nil, "", true},
		{"garbage", []byte{0x01, 0x02}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeStringReturn(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newRPCSourceWithMock(t *testing.T) (*RPCSource, *mocks.MockEthClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), "https://eth.example.com").Return(client, nil).MaxTimes(1)

	source := NewRPCSource(dialer, nil, map[domain.Network]string{
		domain.NetworkMainnet: "https://eth.example.com",
	})
	return source, client
}

// routeCalls answers symbol/name/decimals reads from the given returns,
// with a nil return meaning the call reverts
func routeCalls(symbol, name, decimals []byte) func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return func(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
		var ret []byte
		switch {
		case bytes.Equal(msg.Data, symbolSelector):
			ret = symbol
		case bytes.Equal(msg.Data, nameSelector):
			ret = name
		case bytes.Equal(msg.Data, decimalsSelector):
			ret = decimals
		}
		if ret == nil {
			return nil, errors.New("execution reverted")
		}
		return ret, nil
	}
}

func TestRPCSource_FetchToken_FullMetadata(t *testing.T) {
	source, client := newRPCSourceWithMock(t)

	client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(ctx context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			return routeCalls(abiString("GNO"), abiString("Gnosis Token"), abiUint8(18))(ctx, msg, nil)
		}).Times(3)

	meta, err := source.FetchToken(context.Background(), domain.NetworkMainnet, testTokenAddress)
	require.NoError(t, err)
	assert.Equal(t, "GNO", meta.Symbol)
	assert.Equal(t, "Gnosis Token", meta.Name)
	require.NotNil(t, meta.Decimals)
	assert.Equal(t, int32(18), *meta.Decimals)
	assert.Equal(t, domain.NetworkMainnet, meta.Network)
}

func TestRPCSource_FetchToken_PartialMetadata(t *testing.T) {
	source, client := newRPCSourceWithMock(t)

	// Symbol read reverts; the token still resolves with what succeeded
	client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(ctx context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			return routeCalls(nil, abiString("Odd Token"), abiUint8(6))(ctx, msg, nil)
		}).Times(3)

	meta, err := source.FetchToken(context.Background(), domain.NetworkMainnet, testTokenAddress)
	require.NoError(t, err)
	assert.Empty(t, meta.Symbol)
	assert.Equal(t, "Odd Token", meta.Name)
	assert.Equal(t, int32(6), *meta.Decimals)
}

func TestRPCSource_FetchToken_AllReadsFail(t *testing.T) {
	source, client := newRPCSourceWithMock(t)

	client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		Return(nil, errors.New("execution reverted")).Times(3)

	_, err := source.FetchToken(context.Background(), domain.NetworkMainnet, testTokenAddress)
	require.Error(t, err)

	var upstreamErr *domain.UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}

func TestRPCSource_FetchToken_NetworkUnsupported(t *testing.T) {
	source, _ := newRPCSourceWithMock(t)

	_, err := source.FetchToken(context.Background(), domain.NetworkGnosis, testTokenAddress)
	assert.ErrorIs(t, err, domain.ErrNetworkUnsupported)
}

func TestRPCSource_DialsOncePerNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	dialer := mocks.NewMockEthClientDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), "https://eth.example.com").Return(client, nil).Times(1)

	source := NewRPCSource(dialer, nil, map[domain.Network]string{
		domain.NetworkMainnet: "https://eth.example.com",
	})

	client.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(ctx context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
			return routeCalls(abiString("GNO"), abiString("Gnosis Token"), abiUint8(18))(ctx, msg, nil)
		}).Times(6)

	for i := 0; i < 2; i++ {
		_, err := source.FetchToken(context.Background(), domain.NetworkMainnet, testTokenAddress)
		require.NoError(t, err)
	}
}
