package candymachine

import (
	"context"

	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx context.Context, k keeper.Keeper, genState types.GenesisState) error {
	return k.InitGenesis(ctx, genState)
}

// ExportGenesis returns the module's exported genesis
func ExportGenesis(ctx context.Context, k keeper.Keeper) (*types.GenesisState, error) {
	return k.ExportGenesis(ctx)
}
