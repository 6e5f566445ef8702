package keeper_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fractalnft/candymachine/testutil/datagen"
	testkeeper "github.com/fractalnft/candymachine/testutil/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/ledger"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func TestGenesis(t *testing.T) {
	r := rand.New(rand.NewSource(30))
	inv := datagen.GenRandomInventory(r, 5, 10)
	addrs := datagen.GenRandomAddresses(r, 4)

	genState := types.GenesisState{
		Config:     datagen.GenRandomConfig(r, inv),
		Inventory:  inv,
		Whitelists: datagen.GenRandomWhitelist(r, addrs, 1, 5),
		Cursor: types.MintCursor{
			LastMinter:  addrs[0].String(),
			LastTokenID: "q3",
		},
	}

	k, ctx := testkeeper.CandyMachineKeeper(t, nil, nil, ledger.NewMemory(), &genState)

	got, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	requireConfigEqual(t, genState.Config, got.Config)
	require.Equal(t, genState.Inventory, got.Inventory)
	require.ElementsMatch(t, genState.Whitelists, got.Whitelists)
	require.Equal(t, genState.Cursor, got.Cursor)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	genState := types.DefaultGenesis()
	genState.Inventory = types.Inventory{{Prefix: "a", Count: 0}}

	k, ctx := testkeeper.CandyMachineKeeper(t, nil, nil, ledger.NewMemory(), nil)
	require.ErrorIs(t, k.InitGenesis(ctx, *genState), types.ErrInvalidInventory)
}

func TestDefaultGenesisExport(t *testing.T) {
	k, ctx := testkeeper.CandyMachineKeeper(t, nil, nil, ledger.NewMemory(), nil)

	got, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	require.Empty(t, got.Inventory)
	require.Empty(t, got.Whitelists)
	require.Equal(t, types.InitialCursor(), got.Cursor)
	require.False(t, got.Config.IsOpen)
}
