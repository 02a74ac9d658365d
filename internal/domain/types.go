package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Network represents a supported chain, used as a partition key everywhere
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkGnosis  Network = "gnosis"
	NetworkSepolia Network = "sepolia"
)

// IsValidNetwork checks if a network is supported
func IsValidNetwork(n Network) bool {
	return n == NetworkMainnet || n == NetworkGnosis || n == NetworkSepolia
}

// AllNetworks returns the supported networks in default search priority
// order, reflecting expected traffic distribution
func AllNetworks() []Network {
	return []Network{NetworkMainnet, NetworkGnosis, NetworkSepolia}
}

// ChainID returns the numeric chain id for a network
func (n Network) ChainID() uint64 {
	switch n {
	case NetworkMainnet:
		return 1
	case NetworkGnosis:
		return 100
	case NetworkSepolia:
		return 11155111
	default:
		return 0
	}
}

// Environment represents an order-book deployment flavor within a network.
// Each network can expose several environments which are probed in order.
type Environment string

const (
	EnvironmentProd Environment = "prod"
	EnvironmentBarn Environment = "barn"
)

// Address is a lowercase 0x-prefixed ERC-20 or account address
type Address string

// OrderUID is an on-chain order identifier: 32-byte digest, 20-byte owner
// and 4-byte validTo packed into 56 bytes of 0x-prefixed hex. Not guaranteed
// unique across networks.
type OrderUID string

// TxHash is a 0x-prefixed 32-byte transaction hash
type TxHash string

var (
	orderUIDPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{112}$`)
	txHashPattern   = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// ParseAddress validates and normalizes an address to lowercase
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return "", fmt.Errorf("invalid address %q", s)
	}
	return Address(strings.ToLower(common.HexToAddress(s).Hex())), nil
}

// ParseOrderUID validates an order UID string
func ParseOrderUID(s string) (OrderUID, error) {
	if !orderUIDPattern.MatchString(s) {
		return "", fmt.Errorf("invalid order uid %q", s)
	}
	return OrderUID(strings.ToLower(s)), nil
}

// ParseTxHash validates a transaction hash string
func ParseTxHash(s string) (TxHash, error) {
	if !txHashPattern.MatchString(s) {
		return "", fmt.Errorf("invalid tx hash %q", s)
	}
	return TxHash(strings.ToLower(s)), nil
}

// Owner extracts the owner address packed into an order UID
func (u OrderUID) Owner() Address {
	// 0x + 64 digest chars, then 40 owner chars
	return Address("0x" + strings.ToLower(string(u)[66:106]))
}

// Atoms is an arbitrary-precision token amount in the token's smallest unit.
// It marshals to and from decimal-string JSON, the wire format all upstream
// APIs use for amounts.
type Atoms struct {
	big.Int
}

// NewAtoms creates an Atoms value from an int64
func NewAtoms(v int64) *Atoms {
	a := new(Atoms)
	a.SetInt64(v)
	return a
}

// ParseAtoms parses a decimal-string amount
func ParseAtoms(s string) (*Atoms, error) {
	a := new(Atoms)
	if _, ok := a.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return a, nil
}

// BigInt returns the underlying big.Int
func (a *Atoms) BigInt() *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return &a.Int
}

// Decimal converts the amount to a decimal scaled by the token's decimals
func (a *Atoms) Decimal(decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(a.BigInt(), 0).Shift(-decimals)
}

func (a *Atoms) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		a.SetInt64(0)
		return nil
	}
	if _, ok := a.SetString(s, 10); !ok {
		return fmt.Errorf("invalid amount %q", s)
	}
	return nil
}

func (a *Atoms) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// OrderKind distinguishes buy orders from sell orders. The two kinds define
// "fully filled" against different legs, so all fill math is keyed on it.
type OrderKind string

const (
	OrderKindBuy  OrderKind = "buy"
	OrderKindSell OrderKind = "sell"
)

// IsValidOrderKind checks if an order kind is known
func IsValidOrderKind(k OrderKind) bool {
	return k == OrderKindBuy || k == OrderKindSell
}

// RawOrder is the source-shaped order record, immutable once fetched.
// Its identifying key is (Network, UID).
type RawOrder struct {
	UID                OrderUID    `json:"uid"`
	Network            Network     `json:"network"`
	Environment        Environment `json:"environment"`
	Owner              Address     `json:"owner"`
	Receiver           Address     `json:"receiver"`
	SellToken          Address     `json:"sellToken"`
	BuyToken           Address     `json:"buyToken"`
	SellAmount         *Atoms      `json:"sellAmount"`
	BuyAmount          *Atoms      `json:"buyAmount"`
	FeeAmount          *Atoms      `json:"feeAmount"`
	ExecutedSellAmount *Atoms      `json:"executedSellAmount"`
	ExecutedBuyAmount  *Atoms      `json:"executedBuyAmount"`
	ExecutedFeeAmount  *Atoms      `json:"executedFeeAmount"`
	ValidTo            int64       `json:"validTo"`
	Kind               OrderKind   `json:"kind"`
	PartiallyFillable  bool        `json:"partiallyFillable"`
	Invalidated        bool        `json:"invalidated"`
	Signature          string      `json:"signature"`
	CreationDate       time.Time   `json:"creationDate"`
}

// TokenMetadata holds resolved ERC-20 metadata for one (network, address)
// pair. Optional fields reflect real-world ERC-20 non-compliance; absence
// must degrade gracefully.
type TokenMetadata struct {
	Address  Address `json:"address"`
	Network  Network `json:"network"`
	Symbol   string  `json:"symbol,omitempty"`
	Name     string  `json:"name,omitempty"`
	Decimals *int32  `json:"decimals,omitempty"`
}

// Label returns the symbol if known, falling back to a shortened address
func (m *TokenMetadata) Label() string {
	if m != nil && m.Symbol != "" {
		return m.Symbol
	}
	if m == nil || len(m.Address) < 12 {
		return "unknown"
	}
	return string(m.Address[:6]) + "..." + string(m.Address[len(m.Address)-4:])
}

// DecimalsOrDefault returns the decimals if known, defaulting to 18
func (m *TokenMetadata) DecimalsOrDefault() int32 {
	if m == nil || m.Decimals == nil {
		return 18
	}
	return *m.Decimals
}

// Merge fills missing fields of m from other without erasing known ones.
// Writes are commutative unions, which keeps concurrent cache writers safe.
func (m *TokenMetadata) Merge(other TokenMetadata) {
	if m.Symbol == "" {
		m.Symbol = other.Symbol
	}
	if m.Name == "" {
		m.Name = other.Name
	}
	if m.Decimals == nil {
		m.Decimals = other.Decimals
	}
}

// Trade is a single fill event tied to an order and a transaction
type Trade struct {
	OrderUID    OrderUID  `json:"orderUid"`
	TxHash      TxHash    `json:"txHash"`
	Owner       Address   `json:"owner"`
	SellToken   Address   `json:"sellToken"`
	BuyToken    Address   `json:"buyToken"`
	SellAmount  *Atoms    `json:"sellAmount"`
	BuyAmount   *Atoms    `json:"buyAmount"`
	FeeAmount   *Atoms    `json:"feeAmount"`
	BlockNumber uint64    `json:"blockNumber"`
	Timestamp   time.Time `json:"timestamp"`
}

// OrderStatus is the derived order state
type OrderStatus string

const (
	OrderStatusOpen      OrderStatus = "open"
	OrderStatusFilled    OrderStatus = "filled"
	OrderStatusExpired   OrderStatus = "expired"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Surplus is the favorable difference between an order's limit price and
// its execution price, expressed both ways
type Surplus struct {
	// Amount is the absolute surplus in atoms of the leg the order kind
	// does not fix (buy leg for sell orders, sell leg for buy orders)
	Amount *Atoms `json:"amount"`
	// Percent is the surplus relative to the limit amount
	Percent decimal.Decimal `json:"percent"`
	// Token is the token the amount is denominated in
	Token Address `json:"token"`
}

// EnrichedOrder is a RawOrder merged with token metadata and derived fields.
// Token metadata is always looked up on the order's own network.
type EnrichedOrder struct {
	RawOrder

	SellTokenMeta *TokenMetadata `json:"sellTokenMeta,omitempty"`
	BuyTokenMeta  *TokenMetadata `json:"buyTokenMeta,omitempty"`

	Status          OrderStatus `json:"status"`
	PartiallyFilled bool        `json:"partiallyFilled"`
	// FilledAmount is measured on the leg the order kind fixes
	FilledAmount     *Atoms          `json:"filledAmount"`
	FilledPercentage decimal.Decimal `json:"filledPercentage"`
	Surplus          *Surplus        `json:"surplus,omitempty"`
}

// ResolutionResult is the tri-state outcome of a cross-network search:
// found on the queried network (Order set), found elsewhere (Order nil,
// FoundOn set) or absent everywhere (both zero). The two nil-order states
// are never conflated.
type ResolutionResult struct {
	Order   *EnrichedOrder
	FoundOn Network
	// Errors collects per-network lookup failures so callers can tell
	// "confirmed absent" from "lookup failed"
	Errors []error
}

// Absent reports whether the search exhausted all networks with no match
// and no lookup failure
func (r *ResolutionResult) Absent() bool {
	return r.Order == nil && r.FoundOn == "" && len(r.Errors) == 0
}

// TxResolution is the cross-network outcome of a transaction hash search
type TxResolution struct {
	Orders  []*EnrichedOrder
	FoundOn Network
	Errors  []error
}
