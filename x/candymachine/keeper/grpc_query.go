package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

var _ types.QueryServer = Querier{}

// Querier is used as Keeper will have duplicate methods if used directly
type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier {
	return Querier{Keeper: k}
}

func (q Querier) Config(ctx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	cfg, err := q.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryConfigResponse{Config: cfg}, nil
}

// Whitelist returns the allowance of an address in the current round.
func (q Querier) Whitelist(ctx context.Context, req *types.QueryWhitelistRequest) (*types.QueryWhitelistResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}
	cfg, err := q.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	return q.WhitelistByRound(ctx, &types.QueryWhitelistByRoundRequest{
		Address: req.Address,
		Round:   cfg.Round,
	})
}

func (q Querier) WhitelistByRound(ctx context.Context, req *types.QueryWhitelistByRoundRequest) (*types.QueryWhitelistResponse, error) {
	if req == nil {
		return nil, sdkerrors.ErrInvalidRequest.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, sdkerrors.ErrInvalidAddress.Wrapf("invalid address %q: %v", req.Address, err)
	}
	entry, err := q.GetWhitelist(ctx, addr, req.Round)
	if err != nil {
		return nil, err
	}
	return &types.QueryWhitelistResponse{Entry: entry}, nil
}

func (q Querier) Inventory(ctx context.Context, _ *types.QueryInventoryRequest) (*types.QueryInventoryResponse, error) {
	inv, err := q.GetInventory(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryInventoryResponse{
		Buckets:   inv,
		Remaining: inv.Remaining(),
	}, nil
}

func (q Querier) LastMint(ctx context.Context, _ *types.QueryLastMintRequest) (*types.QueryLastMintResponse, error) {
	cursor, err := q.GetCursor(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryLastMintResponse{Cursor: cursor}, nil
}
