package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type AccountKeeper interface {
	GetModuleAddress(moduleName string) sdk.AccAddress
}

type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
}

// OwnershipLedger is the external NFT registry that holds the concrete tokens
// of the inventory.
type OwnershipLedger interface {
	// HeldTokenIDs lists, in ascending order, up to limit ids of contract
	// owned by owner that sort after startAfter and start with prefix. An
	// empty prefix or startAfter disables that filter.
	HeldTokenIDs(ctx context.Context, contract string, owner sdk.AccAddress, prefix, startAfter string, limit uint32) ([]string, error)
	// Transfer moves tokenID from sender to recipient.
	Transfer(ctx context.Context, contract string, sender, recipient sdk.AccAddress, tokenID string) error
}

// WasmViewKeeper is the read side of x/wasm used to query CW721 contracts.
type WasmViewKeeper interface {
	QuerySmart(ctx context.Context, contractAddr sdk.AccAddress, req []byte) ([]byte, error)
}

// WasmOpsKeeper is the write side of x/wasm used to execute CW721 transfers.
type WasmOpsKeeper interface {
	Execute(ctx sdk.Context, contractAddress sdk.AccAddress, caller sdk.AccAddress, msg []byte, coins sdk.Coins) ([]byte, error)
}
