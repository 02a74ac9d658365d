package dto

import (
	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/enrich"
	"github.com/dexplorer/orderscan/internal/providers/subgraph"
)

// MapOrder converts an enriched order to its API shape
func MapOrder(order *domain.EnrichedOrder) OrderInfo {
	info := OrderInfo{
		UID:                string(order.UID),
		Network:            string(order.Network),
		Environment:        string(order.Environment),
		Owner:              string(order.Owner),
		Receiver:           string(order.Receiver),
		SellToken:          string(order.SellToken),
		BuyToken:           string(order.BuyToken),
		SellAmount:         order.SellAmount,
		BuyAmount:          order.BuyAmount,
		FeeAmount:          order.FeeAmount,
		ExecutedSellAmount: order.ExecutedSellAmount,
		ExecutedBuyAmount:  order.ExecutedBuyAmount,
		ExecutedFeeAmount:  order.ExecutedFeeAmount,
		ValidTo:            order.ValidTo,
		Kind:               string(order.Kind),
		PartiallyFillable:  order.PartiallyFillable,
		Invalidated:        order.Invalidated,
		CreationDate:       order.CreationDate,
		Status:             string(order.Status),
		PartiallyFilled:    order.PartiallyFilled,
		FilledAmount:       order.FilledAmount,
		FilledPercentage:   order.FilledPercentage.String(),
	}

	if order.Surplus != nil {
		info.Surplus = &SurplusInfo{
			Amount:  order.Surplus.Amount,
			Percent: order.Surplus.Percent.String(),
			Token:   string(order.Surplus.Token),
		}
	}

	info.SellTokenInfo = mapToken(order.SellTokenMeta)
	info.BuyTokenInfo = mapToken(order.BuyTokenMeta)

	limit, execution := enrich.Prices(order)
	info.LimitPrice = &PriceInfo{Value: limit.Value().String()}
	if order.ExecutedBuyAmount.BigInt().Sign() > 0 {
		info.ExecutionPrice = &PriceInfo{Value: execution.Value().String()}
	}

	return info
}

// MapOrders converts a batch of enriched orders
func MapOrders(orders []*domain.EnrichedOrder) []OrderInfo {
	infos := make([]OrderInfo, len(orders))
	for i, order := range orders {
		infos[i] = MapOrder(order)
	}
	return infos
}

func mapToken(meta *domain.TokenMetadata) *TokenInfo {
	if meta == nil {
		return nil
	}
	return &TokenInfo{
		Address:  string(meta.Address),
		Label:    meta.Label(),
		Symbol:   meta.Symbol,
		Name:     meta.Name,
		Decimals: meta.Decimals,
	}
}

// MapTrade converts one fill record to its API shape
func MapTrade(trade domain.Trade) TradeInfo {
	return TradeInfo{
		OrderUID:    string(trade.OrderUID),
		TxHash:      string(trade.TxHash),
		Owner:       string(trade.Owner),
		SellAmount:  trade.SellAmount,
		BuyAmount:   trade.BuyAmount,
		FeeAmount:   trade.FeeAmount,
		BlockNumber: trade.BlockNumber,
		Timestamp:   trade.Timestamp,
	}
}

// MapTrace converts a reconciled settlement trace to its API shape
func MapTrace(trace *domain.SettlementTrace) *TraceInfo {
	info := &TraceInfo{
		Settlement: string(trace.Settlement),
		Transfers:  make([]TransferInfo, len(trace.Transfers)),
		Trades:     make([]TradeEventInfo, len(trace.Trades)),
	}

	for i, transfer := range trace.Transfers {
		info.Transfers[i] = TransferInfo{
			Token:     string(transfer.Token),
			From:      string(transfer.From),
			To:        string(transfer.To),
			Value:     transfer.Value,
			Synthetic: transfer.Synthetic,
		}
	}
	for i, trade := range trace.Trades {
		info.Trades[i] = TradeEventInfo{
			Owner:      string(trade.Owner),
			SellToken:  string(trade.SellToken),
			BuyToken:   string(trade.BuyToken),
			SellAmount: trade.SellAmount,
			BuyAmount:  trade.BuyAmount,
			OrderUID:   string(trade.OrderUID),
		}
	}

	if len(trace.Contracts) > 0 {
		info.Contracts = make(map[string]string, len(trace.Contracts))
		for address, name := range trace.Contracts {
			info.Contracts[string(address)] = name
		}
	}

	return info
}

// MapSettlement converts a subgraph settlement record to its API shape
func MapSettlement(settlement *subgraph.Settlement) *SettlementInfo {
	if settlement == nil {
		return nil
	}
	return &SettlementInfo{
		Solver:     string(settlement.Solver),
		Timestamp:  settlement.Timestamp,
		TradeCount: settlement.TradeCount,
	}
}

// MapTotals converts subgraph totals to their API shape
func MapTotals(totals *subgraph.Totals) *NetworkTotals {
	if totals == nil {
		return nil
	}
	return &NetworkTotals{
		Orders:    totals.Orders,
		Trades:    totals.Trades,
		Tokens:    totals.Tokens,
		VolumeUSD: totals.VolumeUSD,
	}
}
