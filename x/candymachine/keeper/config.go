package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// SetConfig validates and stores the candy machine config.
func (k Keeper) SetConfig(ctx context.Context, cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return k.config.Set(ctx, cfg)
}

// GetConfig returns the candy machine config.
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	return k.config.Get(ctx)
}

// checkOwner fails with ErrUnauthorized unless sender owns the candy machine.
func (k Keeper) checkOwner(ctx context.Context, sender string) (types.Config, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return types.Config{}, err
	}
	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return types.Config{}, types.ErrUnauthorized.Wrapf("invalid sender %q: %v", sender, err)
	}
	ownerAddr, err := sdk.AccAddressFromBech32(cfg.Owner)
	if err != nil || !ownerAddr.Equals(senderAddr) {
		return types.Config{}, types.ErrUnauthorized.Wrapf("%s is not the owner", sender)
	}
	return cfg, nil
}
