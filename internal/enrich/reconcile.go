package enrich

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dexplorer/orderscan/internal/domain"
	"github.com/dexplorer/orderscan/internal/logger"
	"github.com/dexplorer/orderscan/internal/providers/trace"
)

const (
	transferEventName = "Transfer"
	tradeEventName    = "Trade"
)

// reconcileTrace classifies the decoded logs of a settlement transaction
// into transfers and trades. Native-asset buys get a synthesized transfer:
// the chain emits no ERC-20 Transfer log for them, so the movement from
// the settlement contract to the trade owner is implied by the Trade log
// itself. One transfer is synthesized per native trade log, even when
// several such trades share an owner.
func reconcileTrace(network domain.Network, txHash domain.TxHash, txTrace *trace.TxTrace, contracts []trace.Contract) *domain.SettlementTrace {
	result := &domain.SettlementTrace{
		TxHash:     txHash,
		Network:    network,
		Settlement: domain.Address(strings.ToLower(txTrace.To)),
	}

	for i := range txTrace.Logs {
		log := &txTrace.Logs[i]
		switch log.Name {
		case transferEventName:
			transfer, ok := decodeTransfer(log)
			if !ok {
				logger.Debug("skipping undecodable transfer log",
					zap.String("txHash", string(txHash)),
					zap.String("contract", log.Address),
				)
				continue
			}
			result.Transfers = append(result.Transfers, *transfer)

		case tradeEventName:
			trade, ok := decodeTrade(log)
			if !ok {
				logger.Debug("skipping undecodable trade log",
					zap.String("txHash", string(txHash)),
					zap.String("contract", log.Address),
				)
				continue
			}
			result.Trades = append(result.Trades, *trade)

			if trade.BuyToken == domain.NATIVE_TOKEN_ADDRESS {
				result.Transfers = append(result.Transfers, domain.TransferEvent{
					Token:     domain.NATIVE_TOKEN_ADDRESS,
					From:      domain.Address(strings.ToLower(log.Address)),
					To:        trade.Owner,
					Value:     trade.BuyAmount,
					Synthetic: true,
				})
			}
		}
	}

	if len(contracts) > 0 {
		result.Contracts = make(map[domain.Address]string, len(contracts))
		for _, contract := range contracts {
			result.Contracts[domain.Address(strings.ToLower(contract.Address))] = contract.Name
		}
	}

	return result
}

func decodeTransfer(log *trace.DecodedLog) (*domain.TransferEvent, bool) {
	from, fromOK := log.Input("from")
	to, toOK := log.Input("to")
	value, valueOK := log.Input("value")
	if !fromOK || !toOK || !valueOK {
		return nil, false
	}

	atoms, err := domain.ParseAtoms(value)
	if err != nil {
		return nil, false
	}

	return &domain.TransferEvent{
		Token: domain.Address(strings.ToLower(log.Address)),
		From:  domain.Address(strings.ToLower(from)),
		To:    domain.Address(strings.ToLower(to)),
		Value: atoms,
	}, true
}

func decodeTrade(log *trace.DecodedLog) (*domain.TradeEvent, bool) {
	owner, ownerOK := log.Input("owner")
	sellToken, sellTokenOK := log.Input("sellToken")
	buyToken, buyTokenOK := log.Input("buyToken")
	sellAmount, sellAmountOK := log.Input("sellAmount")
	buyAmount, buyAmountOK := log.Input("buyAmount")
	if !ownerOK || !sellTokenOK || !buyTokenOK || !sellAmountOK || !buyAmountOK {
		return nil, false
	}

	sellAtoms, err := domain.ParseAtoms(sellAmount)
	if err != nil {
		return nil, false
	}
	buyAtoms, err := domain.ParseAtoms(buyAmount)
	if err != nil {
		return nil, false
	}

	event := &domain.TradeEvent{
		Owner:      domain.Address(strings.ToLower(owner)),
		SellToken:  domain.Address(strings.ToLower(sellToken)),
		BuyToken:   domain.Address(strings.ToLower(buyToken)),
		SellAmount: sellAtoms,
		BuyAmount:  buyAtoms,
	}
	if uid, ok := log.Input("orderUid"); ok {
		event.OrderUID = domain.OrderUID(strings.ToLower(uid))
	}
	return event, true
}
