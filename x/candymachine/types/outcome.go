package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Payment instructs the module account to pay Amount to Recipient.
type Payment struct {
	Recipient string   `json:"recipient"`
	Amount    sdk.Coin `json:"amount"`
}

// Transfer instructs the ownership ledger to move TokenID to Recipient.
type Transfer struct {
	Contract  string `json:"contract"`
	TokenID   string `json:"token_id"`
	Recipient string `json:"recipient"`
}

// MintOutcome is the result of an allocation. Payments are ordered creator
// first, then the protocol collector when its share is non-zero.
type MintOutcome struct {
	TokenID  string    `json:"token_id"`
	Price    sdk.Coin  `json:"price"`
	Payments []Payment `json:"payments"`
	Transfer Transfer  `json:"transfer"`
}
