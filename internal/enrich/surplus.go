package enrich

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/dexplorer/orderscan/internal/domain"
)

// computeSurplus measures how much better than its limit price an order
// executed, denominated in the leg the order kind does not fix: the buy
// leg for sell orders, the sell leg for buy orders. Orders with nothing
// executed have no surplus. All amount math is big.Int; decimal enters
// only for the final percentage.
func computeSurplus(order *domain.RawOrder) *domain.Surplus {
	filled := filledAmount(order)
	if filled.Sign() == 0 {
		return nil
	}

	var expected, executed *big.Int
	var token domain.Address

	if order.Kind == domain.OrderKindBuy {
		// limit: at most sellAmount for buyAmount; surplus is sell atoms saved
		if order.BuyAmount.Sign() == 0 {
			return nil
		}
		expected = new(big.Int).Mul(order.SellAmount.BigInt(), order.ExecutedBuyAmount.BigInt())
		expected.Quo(expected, order.BuyAmount.BigInt())
		executed = executedSellNet(order).BigInt()

		token = order.SellToken
		amount := new(big.Int).Sub(expected, executed)
		return buildSurplus(amount, expected, token)
	}

	// limit: at least buyAmount for sellAmount; surplus is extra buy atoms
	if order.SellAmount.Sign() == 0 {
		return nil
	}
	expected = new(big.Int).Mul(order.BuyAmount.BigInt(), filled)
	expected.Quo(expected, order.SellAmount.BigInt())
	executed = order.ExecutedBuyAmount.BigInt()

	token = order.BuyToken
	amount := new(big.Int).Sub(executed, expected)
	return buildSurplus(amount, expected, token)
}

func buildSurplus(amount, expected *big.Int, token domain.Address) *domain.Surplus {
	if amount.Sign() < 0 {
		amount = big.NewInt(0)
	}

	percent := decimal.Zero
	if expected.Sign() > 0 {
		percent = decimal.NewFromBigInt(amount, 0).
			Div(decimal.NewFromBigInt(expected, 0)).
			Mul(decimal.NewFromInt(100))
	}

	atoms := new(domain.Atoms)
	atoms.Set(amount)
	return &domain.Surplus{Amount: atoms, Percent: percent, Token: token}
}
