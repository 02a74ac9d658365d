package dto

import (
	"time"

	"github.com/dexplorer/orderscan/internal/domain"
)

// NetworkInfo describes one supported network, with protocol-wide totals
// when the subgraph could supply them
type NetworkInfo struct {
	Network string         `json:"network"`
	ChainID uint64         `json:"chain_id"`
	Totals  *NetworkTotals `json:"totals,omitempty"`
}

// NetworkTotals are protocol-wide aggregates for one network
type NetworkTotals struct {
	Orders    uint64 `json:"orders"`
	Trades    uint64 `json:"trades"`
	Tokens    uint64 `json:"tokens"`
	VolumeUSD string `json:"volume_usd"`
}

// NetworkListResponse is the response for listing supported networks
type NetworkListResponse struct {
	Networks []NetworkInfo `json:"networks"`
}

// TokenInfo is resolved ERC-20 metadata attached to an order leg
type TokenInfo struct {
	Address  string `json:"address"`
	Label    string `json:"label"`
	Symbol   string `json:"symbol,omitempty"`
	Name     string `json:"name,omitempty"`
	Decimals *int32 `json:"decimals,omitempty"`
}

// SurplusInfo is the execution surplus of an order
type SurplusInfo struct {
	Amount  *domain.Atoms `json:"amount"`
	Percent string        `json:"percent"`
	Token   string        `json:"token"`
}

// PriceInfo is a normalized exchange rate between an order's legs
type PriceInfo struct {
	Value    string `json:"value"`
	Inverted bool   `json:"inverted"`
}

// OrderInfo is the enriched order payload
type OrderInfo struct {
	UID                string        `json:"uid"`
	Network            string        `json:"network"`
	Environment        string        `json:"environment,omitempty"`
	Owner              string        `json:"owner"`
	Receiver           string        `json:"receiver,omitempty"`
	SellToken          string        `json:"sell_token"`
	BuyToken           string        `json:"buy_token"`
	SellAmount         *domain.Atoms `json:"sell_amount"`
	BuyAmount          *domain.Atoms `json:"buy_amount"`
	FeeAmount          *domain.Atoms `json:"fee_amount"`
	ExecutedSellAmount *domain.Atoms `json:"executed_sell_amount"`
	ExecutedBuyAmount  *domain.Atoms `json:"executed_buy_amount"`
	ExecutedFeeAmount  *domain.Atoms `json:"executed_fee_amount"`
	ValidTo            int64         `json:"valid_to"`
	Kind               string        `json:"kind"`
	PartiallyFillable  bool          `json:"partially_fillable"`
	Invalidated        bool          `json:"invalidated"`
	CreationDate       time.Time     `json:"creation_date"`

	Status           string        `json:"status"`
	PartiallyFilled  bool          `json:"partially_filled"`
	FilledAmount     *domain.Atoms `json:"filled_amount"`
	FilledPercentage string        `json:"filled_percentage"`
	Surplus          *SurplusInfo  `json:"surplus,omitempty"`

	SellTokenInfo  *TokenInfo `json:"sell_token_info,omitempty"`
	BuyTokenInfo   *TokenInfo `json:"buy_token_info,omitempty"`
	LimitPrice     *PriceInfo `json:"limit_price,omitempty"`
	ExecutionPrice *PriceInfo `json:"execution_price,omitempty"`
}

// OrderResolutionResponse is the tri-state outcome of an order lookup:
// Order set means found here; FoundOn alone means the order lives on
// another network; neither means absent. LookupErrors lets a caller tell
// "confirmed absent" from "a network could not be searched".
type OrderResolutionResponse struct {
	Order        *OrderInfo `json:"order"`
	FoundOn      string     `json:"found_on,omitempty"`
	LookupErrors []string   `json:"lookup_errors,omitempty"`
}

// TradeInfo is one recorded fill of an order
type TradeInfo struct {
	OrderUID    string        `json:"order_uid"`
	TxHash      string        `json:"tx_hash"`
	Owner       string        `json:"owner"`
	SellAmount  *domain.Atoms `json:"sell_amount"`
	BuyAmount   *domain.Atoms `json:"buy_amount"`
	FeeAmount   *domain.Atoms `json:"fee_amount"`
	BlockNumber uint64        `json:"block_number"`
	Timestamp   time.Time     `json:"timestamp"`
}

// TradeListResponse is the response for listing an order's fills
type TradeListResponse struct {
	Trades []TradeInfo `json:"trades"`
}

// OrderListResponse is the response for listing an account's orders
type OrderListResponse struct {
	Orders []OrderInfo `json:"orders"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// TransferInfo is one token movement in a settlement trace
type TransferInfo struct {
	Token     string        `json:"token"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Value     *domain.Atoms `json:"value"`
	Synthetic bool          `json:"synthetic,omitempty"`
}

// TradeEventInfo is one protocol-level trade in a settlement trace
type TradeEventInfo struct {
	Owner      string        `json:"owner"`
	SellToken  string        `json:"sell_token"`
	BuyToken   string        `json:"buy_token"`
	SellAmount *domain.Atoms `json:"sell_amount"`
	BuyAmount  *domain.Atoms `json:"buy_amount"`
	OrderUID   string        `json:"order_uid,omitempty"`
}

// TraceInfo is the reconciled settlement trace of a transaction
type TraceInfo struct {
	Settlement string            `json:"settlement"`
	Transfers  []TransferInfo    `json:"transfers"`
	Trades     []TradeEventInfo  `json:"trades"`
	Contracts  map[string]string `json:"contracts,omitempty"`
}

// SettlementInfo is the subgraph's record of the settlement transaction
type SettlementInfo struct {
	Solver     string `json:"solver"`
	Timestamp  int64  `json:"timestamp"`
	TradeCount int    `json:"trade_count"`
}

// TransactionResponse is the transaction view: the orders a settlement
// executed plus its decoded trace. Missing sub-views mean that source
// failed; TraceError carries the reason.
type TransactionResponse struct {
	Orders       []OrderInfo     `json:"orders"`
	FoundOn      string          `json:"found_on,omitempty"`
	Settlement   *SettlementInfo `json:"settlement,omitempty"`
	Trace        *TraceInfo      `json:"trace,omitempty"`
	TraceError   string          `json:"trace_error,omitempty"`
	LookupErrors []string        `json:"lookup_errors,omitempty"`
}

// CacheResetResponse acknowledges an admin cache reset
type CacheResetResponse struct {
	Reset bool      `json:"reset"`
	At    time.Time `json:"at"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
