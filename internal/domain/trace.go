package domain

// TransferEvent is one token movement decoded from a settlement trace.
// Synthetic transfers are implied native-asset movements that the chain
// does not emit as ERC-20 Transfer logs.
type TransferEvent struct {
	Token     Address `json:"token"`
	From      Address `json:"from"`
	To        Address `json:"to"`
	Value     *Atoms  `json:"value"`
	Synthetic bool    `json:"synthetic,omitempty"`
}

// TradeEvent is one protocol-level trade decoded from a settlement trace
type TradeEvent struct {
	Owner      Address  `json:"owner"`
	SellToken  Address  `json:"sellToken"`
	BuyToken   Address  `json:"buyToken"`
	SellAmount *Atoms   `json:"sellAmount"`
	BuyAmount  *Atoms   `json:"buyAmount"`
	OrderUID   OrderUID `json:"orderUid,omitempty"`
}

// SettlementTrace is the decoded execution trace of one settlement
// transaction: its transfers and trades plus any contract names resolved
// from the trace source
type SettlementTrace struct {
	TxHash     TxHash             `json:"txHash"`
	Network    Network            `json:"network"`
	Settlement Address            `json:"settlement"`
	Transfers  []TransferEvent    `json:"transfers"`
	Trades     []TradeEvent       `json:"trades"`
	Contracts  map[Address]string `json:"contracts,omitempty"`
}
