package types

import (
	errorsmod "cosmossdk.io/errors"
)

// x/candymachine module sentinel errors
var (
	ErrUnauthorized          = errorsmod.Register(ModuleName, 1100, "sender is not the candy machine owner")
	ErrNotWhitelisted        = errorsmod.Register(ModuleName, 1101, "address is not in the whitelist")
	ErrMintingClosed         = errorsmod.Register(ModuleName, 1102, "candy machine is not yet open")
	ErrInsufficientPayment   = errorsmod.Register(ModuleName, 1103, "attached funds do not match the mint price")
	ErrNoInventoryRemaining  = errorsmod.Register(ModuleName, 1104, "no inventory remaining")
	ErrIndexOutOfRange       = errorsmod.Register(ModuleName, 1105, "inventory index out of range")
	ErrPrefixNotFound        = errorsmod.Register(ModuleName, 1106, "inventory prefix not found")
	ErrAddressNotFound       = errorsmod.Register(ModuleName, 1107, "address doesn't exist")
	ErrInvalidConfig         = errorsmod.Register(ModuleName, 1108, "invalid candy machine config")
	ErrInvalidInventory      = errorsmod.Register(ModuleName, 1109, "invalid inventory")
	ErrInvalidWhitelist      = errorsmod.Register(ModuleName, 1110, "invalid whitelist entry")
	ErrInvalidLedgerResponse = errorsmod.Register(ModuleName, 1111, "invalid ownership ledger response")
	ErrTokenNotHeld          = errorsmod.Register(ModuleName, 1112, "token is not held by the sender")
)
