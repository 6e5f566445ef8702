package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MsgMint asks the candy machine for one token. Funds are the coins the
// sender attaches as payment.
type MsgMint struct {
	Sender string    `json:"sender"`
	Funds  sdk.Coins `json:"funds"`
}

type MsgMintResponse struct {
	TokenID  string    `json:"token_id"`
	Payments []Payment `json:"payments"`
	Transfer Transfer  `json:"transfer"`
}

// MsgSetConfig toggles minting and whitelist gating and selects the round.
type MsgSetConfig struct {
	Sender           string `json:"sender"`
	IsOpen           bool   `json:"is_open"`
	WhitelistEnabled bool   `json:"enable_whitelist"`
	Round            uint64 `json:"round"`
}

type MsgSetConfigResponse struct{}

// MsgSetNftAddress points the candy machine at a new CW721 contract.
type MsgSetNftAddress struct {
	Sender   string `json:"sender"`
	Contract string `json:"addr"`
}

type MsgSetNftAddressResponse struct{}

// MsgSetInventory replaces the remaining inventory buckets.
type MsgSetInventory struct {
	Sender  string    `json:"sender"`
	Buckets Inventory `json:"seeds"`
}

type MsgSetInventoryResponse struct{}

// MsgUpdateWhitelist upserts the allowance of Address in Round, or removes
// it when Delist is set.
type MsgUpdateWhitelist struct {
	Sender  string `json:"sender"`
	Address string `json:"register_addr"`
	Count   uint64 `json:"count"`
	Round   uint64 `json:"round"`
	Delist  bool   `json:"is_delist"`
}

type MsgUpdateWhitelistResponse struct{}

func (m *MsgMint) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	if err := m.Funds.Validate(); err != nil {
		return ErrInsufficientPayment.Wrapf("invalid funds: %v", err)
	}
	return nil
}

func (m *MsgSetConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	return nil
}

func (m *MsgSetNftAddress) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Contract); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid token contract address: %v", err)
	}
	return nil
}

func (m *MsgSetInventory) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	return m.Buckets.Validate()
}

func (m *MsgUpdateWhitelist) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %v", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Address); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid register address: %v", err)
	}
	return nil
}

// MsgServer is the set of state transitions of the candy machine.
type MsgServer interface {
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	SetConfig(ctx context.Context, msg *MsgSetConfig) (*MsgSetConfigResponse, error)
	SetNftAddress(ctx context.Context, msg *MsgSetNftAddress) (*MsgSetNftAddressResponse, error)
	SetInventory(ctx context.Context, msg *MsgSetInventory) (*MsgSetInventoryResponse, error)
	UpdateWhitelist(ctx context.Context, msg *MsgUpdateWhitelist) (*MsgUpdateWhitelistResponse, error)
}
