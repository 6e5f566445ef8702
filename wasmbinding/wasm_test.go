package wasmbinding_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	"github.com/stretchr/testify/require"

	"github.com/fractalnft/candymachine/testutil/datagen"
	testkeeper "github.com/fractalnft/candymachine/testutil/keeper"
	"github.com/fractalnft/candymachine/wasmbinding"
	"github.com/fractalnft/candymachine/wasmbinding/bindings"
	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/ledger"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func TestCustomQuerier(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	inv := datagen.GenRandomInventory(r, 4, 6)
	addr := datagen.GenRandomAddress(r)

	genState := types.DefaultGenesis()
	genState.Config = datagen.GenRandomConfig(r, inv)
	genState.Config.Round = 3
	genState.Inventory = inv
	genState.Whitelists = []types.WhitelistEntry{
		types.NewWhitelistEntry(addr, 3, 2),
		types.NewWhitelistEntry(addr, 8, 4),
	}

	k, ctx := testkeeper.CandyMachineKeeper(t, nil, nil, ledger.NewMemory(), genState)
	querier := wasmbinding.CustomQuerier(wasmbinding.NewQueryPlugin(keeper.NewQuerier(*k)))

	query := func(q bindings.CandyMachineQuery, res any) {
		t.Helper()
		req, err := json.Marshal(q)
		require.NoError(t, err)
		bz, err := querier(ctx, req)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(bz, res))
	}

	var cfg types.Config
	query(bindings.CandyMachineQuery{Config: &struct{}{}}, &cfg)
	require.Equal(t, genState.Config.Owner, cfg.Owner)
	require.Equal(t, genState.Config.TotalTokenCount, cfg.TotalTokenCount)
	require.True(t, genState.Config.ProtocolFee.Equal(cfg.ProtocolFee))

	var entry *types.WhitelistEntry
	query(bindings.CandyMachineQuery{WhitelistSingle: &bindings.WhitelistSingleQuery{Addr: addr.String()}}, &entry)
	require.Equal(t, &genState.Whitelists[0], entry)

	query(bindings.CandyMachineQuery{WhitelistAddress: &bindings.WhitelistAddressQuery{Addr: addr.String(), Round: 8}}, &entry)
	require.Equal(t, &genState.Whitelists[1], entry)

	query(bindings.CandyMachineQuery{WhitelistAddress: &bindings.WhitelistAddressQuery{Addr: addr.String(), Round: 1}}, &entry)
	require.Nil(t, entry)

	var seed types.Inventory
	query(bindings.CandyMachineQuery{Seed: &struct{}{}}, &seed)
	require.Equal(t, inv, seed)

	_, err := querier(ctx, []byte(`{"whitelist_single":{"addr":"nope"}}`))
	require.Error(t, err)

	_, err = querier(ctx, []byte(`{"mint_price":{}}`))
	require.ErrorAs(t, err, &wasmvmtypes.UnsupportedRequest{})

	_, err = querier(ctx, []byte(`not json`))
	require.Error(t, err)
}
