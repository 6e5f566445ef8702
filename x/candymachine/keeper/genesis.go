package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx context.Context, gs types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}

	if err := k.SetConfig(ctx, gs.Config); err != nil {
		return err
	}
	if err := k.SetInventory(ctx, gs.Inventory); err != nil {
		return err
	}
	for _, entry := range gs.Whitelists {
		addr, err := sdk.AccAddressFromBech32(entry.Address)
		if err != nil {
			return err
		}
		if err := k.UpsertWhitelist(ctx, addr, entry.Round, entry.Count); err != nil {
			return err
		}
	}
	return k.setCursor(ctx, gs.Cursor)
}

// ExportGenesis returns the module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	inv, err := k.GetInventory(ctx)
	if err != nil {
		return nil, err
	}
	whitelists, err := k.AllWhitelists(ctx)
	if err != nil {
		return nil, err
	}
	cursor, err := k.GetCursor(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Config:     cfg,
		Inventory:  inv,
		Whitelists: whitelists,
		Cursor:     cursor,
	}, nil
}
