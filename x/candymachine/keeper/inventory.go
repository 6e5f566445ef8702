package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// SetInventory replaces the remaining buckets.
func (k Keeper) SetInventory(ctx context.Context, inv types.Inventory) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	return k.inventory.Set(ctx, inv)
}

// GetInventory returns the remaining buckets. A candy machine that was never
// seeded has an empty inventory.
func (k Keeper) GetInventory(ctx context.Context) (types.Inventory, error) {
	inv, err := k.inventory.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Inventory{}, nil
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// DecrementBucket takes one token from the bucket matching prefix and
// persists the whole inventory again.
func (k Keeper) DecrementBucket(ctx context.Context, prefix string) error {
	inv, err := k.GetInventory(ctx)
	if err != nil {
		return err
	}
	next, err := inv.Decrement(prefix)
	if err != nil {
		return err
	}
	return k.inventory.Set(ctx, next)
}
