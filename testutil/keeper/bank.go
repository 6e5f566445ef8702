package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankk "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktestutil "github.com/cosmos/cosmos-sdk/x/bank/testutil"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/fractalnft/candymachine/app/params"
)

// BankKeeper returns an x/bank keeper sharing stateStore with the other test
// keepers. No address is blocked from receiving funds.
func BankKeeper(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
	accountKeeper banktypes.AccountKeeper,
) bankk.BaseKeeper {
	storeKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	banktypes.RegisterInterfaces(registry)

	return bankk.NewBaseKeeper(
		codec.NewProtoCodec(registry),
		runtime.NewKVStoreService(storeKey),
		accountKeeper,
		map[string]bool{},
		appparams.AccGov.String(),
		log.NewNopLogger(),
	)
}

// Fund mints coins into addr through the mint module account.
func Fund(t testing.TB, ctx sdk.Context, bankK bankk.BaseKeeper, addr sdk.AccAddress, coins sdk.Coins) {
	require.NoError(t, banktestutil.FundAccount(ctx, bankK, addr, coins))
}
