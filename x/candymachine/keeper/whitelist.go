package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// GetWhitelist returns the entry stored at (addr, round), or nil when none is.
func (k Keeper) GetWhitelist(ctx context.Context, addr sdk.AccAddress, round uint64) (*types.WhitelistEntry, error) {
	entry, err := k.whitelists.Get(ctx, collections.Join(addr, round))
	if errors.Is(err, collections.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// IsEligible reports whether addr may mint under the allowance stored for
// round. The stored round has to match the configured one, so leftovers of a
// previous round never grant a mint. A missing entry is not an error.
func (k Keeper) IsEligible(ctx context.Context, addr sdk.AccAddress, round uint64) (bool, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return false, err
	}
	entry, err := k.GetWhitelist(ctx, addr, round)
	if err != nil {
		return false, err
	}
	if entry == nil {
		return false, nil
	}
	return entry.GrantsMint(cfg.Round), nil
}

// UpsertWhitelist replaces or inserts the allowance of addr in round.
func (k Keeper) UpsertWhitelist(ctx context.Context, addr sdk.AccAddress, round, count uint64) error {
	entry := types.NewWhitelistEntry(addr, round, count)
	k.Logger(ctx).Debug("whitelist upserted", "address", entry.Address, "round", round, "count", count)
	return k.whitelists.Set(ctx, collections.Join(addr, round), entry)
}

// DelistWhitelist removes the allowance of addr in round.
func (k Keeper) DelistWhitelist(ctx context.Context, addr sdk.AccAddress, round uint64) error {
	key := collections.Join(addr, round)
	has, err := k.whitelists.Has(ctx, key)
	if err != nil {
		return err
	}
	if !has {
		return types.ErrAddressNotFound.Wrapf("%s in round %d", addr, round)
	}
	k.Logger(ctx).Debug("whitelist delisted", "address", addr.String(), "round", round)
	return k.whitelists.Remove(ctx, key)
}

// DecrementWhitelist consumes one allowance of addr in round. An exhausted
// entry is rejected instead of wrapping around.
func (k Keeper) DecrementWhitelist(ctx context.Context, addr sdk.AccAddress, round uint64) error {
	entry, err := k.GetWhitelist(ctx, addr, round)
	if err != nil {
		return err
	}
	if entry == nil {
		return types.ErrAddressNotFound.Wrapf("%s in round %d", addr, round)
	}
	if entry.Count == 0 {
		return types.ErrNotWhitelisted.Wrapf("%s has no allowance left in round %d", addr, round)
	}
	entry.Count--
	return k.whitelists.Set(ctx, collections.Join(addr, round), *entry)
}

// AllWhitelists returns every stored entry, in key order.
func (k Keeper) AllWhitelists(ctx context.Context) ([]types.WhitelistEntry, error) {
	entries := []types.WhitelistEntry{}
	err := k.whitelists.Walk(ctx, nil, func(_ collections.Pair[sdk.AccAddress, uint64], entry types.WhitelistEntry) (bool, error) {
		entries = append(entries, entry)
		return false, nil
	})
	return entries, err
}
