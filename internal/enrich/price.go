package enrich

import (
	"github.com/shopspring/decimal"

	"github.com/dexplorer/orderscan/internal/domain"
)

// Price is the exchange rate between an order's two legs, normalized by
// each token's decimals. The Inverted flag swaps numerator and denominator
// for display; the underlying amounts are never mutated.
type Price struct {
	BuyAmount  decimal.Decimal `json:"buyAmount"`
	SellAmount decimal.Decimal `json:"sellAmount"`
	BuyToken   domain.Address  `json:"buyToken"`
	SellToken  domain.Address  `json:"sellToken"`
	Inverted   bool            `json:"inverted"`
}

// NewPrice builds the price of an order from its limit amounts
func NewPrice(order *domain.RawOrder, sellDecimals, buyDecimals int32) Price {
	return Price{
		BuyAmount:  order.BuyAmount.Decimal(buyDecimals),
		SellAmount: order.SellAmount.Decimal(sellDecimals),
		BuyToken:   order.BuyToken,
		SellToken:  order.SellToken,
	}
}

// ExecutionPrice builds the realized price of an order from its executed
// amounts, with fees taken out of the sell leg
func ExecutionPrice(order *domain.RawOrder, sellDecimals, buyDecimals int32) Price {
	return Price{
		BuyAmount:  order.ExecutedBuyAmount.Decimal(buyDecimals),
		SellAmount: executedSellNet(order).Decimal(sellDecimals),
		BuyToken:   order.BuyToken,
		SellToken:  order.SellToken,
	}
}

// Invert returns a copy with numerator and denominator swapped for display
func (p Price) Invert() Price {
	inverted := p
	inverted.Inverted = !p.Inverted
	return inverted
}

// Value returns buy-per-sell, or sell-per-buy when inverted. A zero
// denominator yields zero rather than a division panic.
func (p Price) Value() decimal.Decimal {
	numerator, denominator := p.BuyAmount, p.SellAmount
	if p.Inverted {
		numerator, denominator = denominator, numerator
	}
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}
