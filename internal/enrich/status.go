package enrich

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dexplorer/orderscan/internal/domain"
)

// The two order kinds define "fully filled" against different legs: a sell
// order fixes the amount sold, a buy order the amount bought. Every piece
// of fill math goes through these helpers so the asymmetry lives in one
// place.

// targetAmount returns the limit amount on the leg the order kind fixes
func targetAmount(order *domain.RawOrder) *big.Int {
	if order.Kind == domain.OrderKindBuy {
		return order.BuyAmount.BigInt()
	}
	return order.SellAmount.BigInt()
}

// filledAmount returns the executed amount on the leg the order kind
// fixes. Fees are charged on the sell leg, so sell-side fills are measured
// net of fees.
func filledAmount(order *domain.RawOrder) *big.Int {
	if order.Kind == domain.OrderKindBuy {
		return order.ExecutedBuyAmount.BigInt()
	}
	return executedSellNet(order).BigInt()
}

// executedSellNet is the executed sell amount with executed fees taken out
func executedSellNet(order *domain.RawOrder) *domain.Atoms {
	net := new(domain.Atoms)
	net.Sub(order.ExecutedSellAmount.BigInt(), order.ExecutedFeeAmount.BigInt())
	if net.Sign() < 0 {
		net.SetInt64(0)
	}
	return net
}

// fullyFilled reports whether the order's fixed leg is completely executed
func fullyFilled(order *domain.RawOrder) bool {
	target := targetAmount(order)
	if target.Sign() == 0 {
		return false
	}
	return filledAmount(order).Cmp(target) >= 0
}

// partiallyFilled reports whether anything at all was executed
func partiallyFilled(order *domain.RawOrder) bool {
	return filledAmount(order).Sign() > 0 && !fullyFilled(order)
}

// filledPercentage is filled/target scaled to 0..100. Display-level only;
// status decisions compare atoms directly.
func filledPercentage(order *domain.RawOrder) decimal.Decimal {
	target := targetAmount(order)
	if target.Sign() == 0 {
		return decimal.Zero
	}
	filled := decimal.NewFromBigInt(filledAmount(order), 0)
	return filled.Div(decimal.NewFromBigInt(target, 0)).Mul(decimal.NewFromInt(100))
}

func atomsFromBig(v *big.Int) *domain.Atoms {
	atoms := new(domain.Atoms)
	atoms.Set(v)
	return atoms
}

// deriveStatus runs the status machine. Precedence is fixed: cancellation
// beats expiry beats fill; first match wins.
func deriveStatus(order *domain.RawOrder, now time.Time) domain.OrderStatus {
	switch {
	case order.Invalidated:
		return domain.OrderStatusCancelled
	case order.ValidTo < now.Unix() && !fullyFilled(order):
		return domain.OrderStatusExpired
	case fullyFilled(order):
		return domain.OrderStatusFilled
	default:
		return domain.OrderStatusOpen
	}
}
