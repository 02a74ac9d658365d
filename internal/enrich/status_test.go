package enrich

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func atoms(s string) *domain.Atoms {
	a, err := domain.ParseAtoms(s)
	if err != nil {
		panic(err)
	}
	return a
}

func sellOrder(sellAmount, executedSell string, validTo time.Time) *domain.RawOrder {
	return &domain.RawOrder{
		Kind:               domain.OrderKindSell,
		SellAmount:         atoms(sellAmount),
		BuyAmount:          atoms("2000"),
		FeeAmount:          atoms("0"),
		ExecutedSellAmount: atoms(executedSell),
		ExecutedBuyAmount:  atoms("0"),
		ExecutedFeeAmount:  atoms("0"),
		ValidTo:            validTo.Unix(),
	}
}

func TestDeriveStatus(t *testing.T) {
	future := testNow.Add(time.Hour)
	past := testNow.Add(-time.Hour)

	tests := []struct {
		name            string
		order           *domain.RawOrder
		status          domain.OrderStatus
		partiallyFilled bool
	}{
		{
			name:   "sell order fully executed",
			order:  sellOrder("1000", "1000", future),
			status: domain.OrderStatusFilled,
		},
		{
			name:            "sell order partially executed past expiry",
			order:           sellOrder("1000", "400", past),
			status:          domain.OrderStatusExpired,
			partiallyFilled: true,
		},
		{
			name: "invalidated buy order beats expiry",
			order: &domain.RawOrder{
				Kind:               domain.OrderKindBuy,
				SellAmount:         atoms("1000"),
				BuyAmount:          atoms("2000"),
				ExecutedSellAmount: atoms("0"),
				ExecutedBuyAmount:  atoms("0"),
				ExecutedFeeAmount:  atoms("0"),
				ValidTo:            past.Unix(),
				Invalidated:        true,
			},
			status: domain.OrderStatusCancelled,
		},
		{
			name:   "sell order untouched and valid",
			order:  sellOrder("1000", "0", future),
			status: domain.OrderStatusOpen,
		},
		{
			name:            "sell order partially executed and valid",
			order:           sellOrder("1000", "400", future),
			status:          domain.OrderStatusOpen,
			partiallyFilled: true,
		},
		{
			name: "buy order fully executed",
			order: &domain.RawOrder{
				Kind:               domain.OrderKindBuy,
				SellAmount:         atoms("1000"),
				BuyAmount:          atoms("2000"),
				ExecutedSellAmount: atoms("900"),
				ExecutedBuyAmount:  atoms("2000"),
				ExecutedFeeAmount:  atoms("0"),
				ValidTo:            future.Unix(),
			},
			status: domain.OrderStatusFilled,
		},
		{
			name: "buy order measures the buy leg, not the sell leg",
			order: &domain.RawOrder{
				Kind:               domain.OrderKindBuy,
				SellAmount:         atoms("1000"),
				BuyAmount:          atoms("2000"),
				ExecutedSellAmount: atoms("1000"),
				ExecutedBuyAmount:  atoms("1500"),
				ExecutedFeeAmount:  atoms("0"),
				ValidTo:            future.Unix(),
			},
			status:          domain.OrderStatusOpen,
			partiallyFilled: true,
		},
		{
			name: "filled order past expiry stays filled",
			order: &domain.RawOrder{
				Kind:               domain.OrderKindSell,
				SellAmount:         atoms("1000"),
				BuyAmount:          atoms("2000"),
				ExecutedSellAmount: atoms("1000"),
				ExecutedBuyAmount:  atoms("2100"),
				ExecutedFeeAmount:  atoms("0"),
				ValidTo:            past.Unix(),
			},
			status: domain.OrderStatusFilled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, deriveStatus(tt.order, testNow))
			assert.Equal(t, tt.partiallyFilled, partiallyFilled(tt.order))
		})
	}
}

func TestFilledAmount_SellLegIsNetOfFees(t *testing.T) {
	order := &domain.RawOrder{
		Kind:               domain.OrderKindSell,
		SellAmount:         atoms("1000"),
		BuyAmount:          atoms("2000"),
		ExecutedSellAmount: atoms("1010"),
		ExecutedBuyAmount:  atoms("2000"),
		ExecutedFeeAmount:  atoms("10"),
	}

	assert.Equal(t, "1000", filledAmount(order).String())
	assert.True(t, fullyFilled(order))
}

func TestFilledPercentage(t *testing.T) {
	order := sellOrder("1000", "400", testNow.Add(time.Hour))
	assert.True(t, filledPercentage(order).Equal(decimalFromString(t, "40")))

	zeroTarget := sellOrder("0", "0", testNow.Add(time.Hour))
	assert.True(t, filledPercentage(zeroTarget).IsZero())
}
