package types_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fractalnft/candymachine/testutil/datagen"
	fractal "github.com/fractalnft/candymachine/types"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func TestGenesisState_Validate(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	addrs := datagen.GenRandomAddresses(r, 3)
	inv := datagen.GenRandomInventory(r, 4, 5)

	validGenesis := func() *types.GenesisState {
		return &types.GenesisState{
			Config:     datagen.GenRandomConfig(r, inv),
			Inventory:  inv,
			Whitelists: datagen.GenRandomWhitelist(r, addrs, 2, 3),
			Cursor:     types.InitialCursor(),
		}
	}

	for _, tc := range []struct {
		desc     string
		genState func() *types.GenesisState
		valid    bool
		err      error
	}{
		{
			desc:     "default is valid",
			genState: types.DefaultGenesis,
			valid:    true,
		},
		{
			desc:     "populated is valid",
			genState: validGenesis,
			valid:    true,
		},
		{
			desc: "same address in two rounds is valid",
			genState: func() *types.GenesisState {
				gs := validGenesis()
				gs.Whitelists = append(gs.Whitelists, types.NewWhitelistEntry(addrs[0], 3, 1))
				return gs
			},
			valid: true,
		},
		{
			desc: "duplicate whitelist entry",
			genState: func() *types.GenesisState {
				gs := validGenesis()
				gs.Whitelists = append(gs.Whitelists, types.NewWhitelistEntry(addrs[0], 2, 1))
				return gs
			},
			err: fractal.ErrDuplicateKey,
		},
		{
			desc: "invalid whitelist address",
			genState: func() *types.GenesisState {
				gs := validGenesis()
				gs.Whitelists[1].Address = "fractal1bad"
				return gs
			},
			err: types.ErrInvalidWhitelist,
		},
		{
			desc: "empty bucket",
			genState: func() *types.GenesisState {
				gs := validGenesis()
				gs.Inventory = append(types.Inventory{}, inv...)
				gs.Inventory[0].Count = 0
				return gs
			},
			err: types.ErrInvalidInventory,
		},
		{
			desc: "invalid config",
			genState: func() *types.GenesisState {
				gs := validGenesis()
				gs.Config.Owner = ""
				return gs
			},
			err: types.ErrInvalidConfig,
		},
		{
			desc: "empty cursor token",
			genState: func() *types.GenesisState {
				gs := validGenesis()
				gs.Cursor.LastTokenID = ""
				return gs
			},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			err := tc.genState().Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
			}
		})
	}
}
