package domain

const (
	// NATIVE_TOKEN_ADDRESS is the sentinel address used by the settlement
	// contract for the chain's native asset (ETH, xDAI)
	NATIVE_TOKEN_ADDRESS Address = "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"

	// ZERO_ADDRESS is the Ethereum zero address
	ZERO_ADDRESS Address = "0x0000000000000000000000000000000000000000"
)
