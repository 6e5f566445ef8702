package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func (k Keeper) GetCursor(ctx context.Context) (types.MintCursor, error) {
	cursor, err := k.cursor.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.InitialCursor(), nil
	}
	return cursor, err
}

func (k Keeper) setCursor(ctx context.Context, cursor types.MintCursor) error {
	return k.cursor.Set(ctx, cursor)
}
