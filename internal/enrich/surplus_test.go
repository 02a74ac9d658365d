package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dexplorer/orderscan/internal/domain"
)

func TestComputeSurplus_SellOrder(t *testing.T) {
	// limit: 1000 sell atoms must bring at least 2000 buy atoms; execution
	// brought 2100, a 5% surplus on the buy leg
	order := &domain.RawOrder{
		Kind:               domain.OrderKindSell,
		SellToken:          domain.Address("0xaaa0000000000000000000000000000000000aaa"),
		BuyToken:           domain.Address("0xbbb0000000000000000000000000000000000bbb"),
		SellAmount:         atoms("1000"),
		BuyAmount:          atoms("2000"),
		ExecutedSellAmount: atoms("1000"),
		ExecutedBuyAmount:  atoms("2100"),
		ExecutedFeeAmount:  atoms("0"),
	}

	surplus := computeSurplus(order)
	require.NotNil(t, surplus)
	assert.Equal(t, "100", surplus.Amount.String())
	assert.Equal(t, order.BuyToken, surplus.Token)
	assert.True(t, surplus.Percent.Equal(decimalFromString(t, "5")))
}

func TestComputeSurplus_SellOrderPartialFill(t *testing.T) {
	// half the order executed; the expectation scales with the fill
	order := &domain.RawOrder{
		Kind:               domain.OrderKindSell,
		BuyToken:           domain.Address("0xbbb0000000000000000000000000000000000bbb"),
		SellAmount:         atoms("1000"),
		BuyAmount:          atoms("2000"),
		ExecutedSellAmount: atoms("500"),
		ExecutedBuyAmount:  atoms("1050"),
		ExecutedFeeAmount:  atoms("0"),
	}

	surplus := computeSurplus(order)
	require.NotNil(t, surplus)
	assert.Equal(t, "50", surplus.Amount.String())
	assert.True(t, surplus.Percent.Equal(decimalFromString(t, "5")))
}

func TestComputeSurplus_BuyOrder(t *testing.T) {
	// limit: at most 1000 sell atoms for 2000 buy atoms; execution spent
	// only 950, a 5% saving on the sell leg
	order := &domain.RawOrder{
		Kind:               domain.OrderKindBuy,
		SellToken:          domain.Address("0xaaa0000000000000000000000000000000000aaa"),
		BuyToken:           domain.Address("0xbbb0000000000000000000000000000000000bbb"),
		SellAmount:         atoms("1000"),
		BuyAmount:          atoms("2000"),
		ExecutedSellAmount: atoms("950"),
		ExecutedBuyAmount:  atoms("2000"),
		ExecutedFeeAmount:  atoms("0"),
	}

	surplus := computeSurplus(order)
	require.NotNil(t, surplus)
	assert.Equal(t, "50", surplus.Amount.String())
	assert.Equal(t, order.SellToken, surplus.Token)
	assert.True(t, surplus.Percent.Equal(decimalFromString(t, "5")))
}

func TestComputeSurplus_NothingExecuted(t *testing.T) {
	order := &domain.RawOrder{
		Kind:               domain.OrderKindSell,
		SellAmount:         atoms("1000"),
		BuyAmount:          atoms("2000"),
		ExecutedSellAmount: atoms("0"),
		ExecutedBuyAmount:  atoms("0"),
		ExecutedFeeAmount:  atoms("0"),
	}

	assert.Nil(t, computeSurplus(order))
}

func TestComputeSurplus_ExecutionAtLimitClampsToZero(t *testing.T) {
	order := &domain.RawOrder{
		Kind:               domain.OrderKindSell,
		BuyToken:           domain.Address("0xbbb0000000000000000000000000000000000bbb"),
		SellAmount:         atoms("1000"),
		BuyAmount:          atoms("2000"),
		ExecutedSellAmount: atoms("1000"),
		ExecutedBuyAmount:  atoms("2000"),
		ExecutedFeeAmount:  atoms("0"),
	}

	surplus := computeSurplus(order)
	require.NotNil(t, surplus)
	assert.Equal(t, "0", surplus.Amount.String())
	assert.True(t, surplus.Percent.IsZero())
}
