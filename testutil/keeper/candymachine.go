package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	accountk "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	bankk "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	"github.com/stretchr/testify/require"

	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func CandyMachineKeeperWithStore(
	t testing.TB,
	db dbm.DB,
	stateStore store.CommitMultiStore,
	storeKey *storetypes.KVStoreKey,
	bankK types.BankKeeper,
	accK types.AccountKeeper,
	ledger types.OwnershipLedger,
) (*keeper.Keeper, sdk.Context) {
	if storeKey == nil {
		storeKey = storetypes.NewKVStoreKey(types.StoreKey)
	}

	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		bankK,
		accK,
		ledger,
	)

	ctx := sdk.NewContext(
		stateStore,
		cmtproto.Header{
			Height: 1,
			Time:   time.Unix(1_700_000_000, 0).UTC(),
		},
		false,
		log.NewNopLogger(),
	)

	return &k, ctx
}

// CandyMachineKeeper returns a keeper on a fresh in-memory store, initialized
// with the given genesis state.
func CandyMachineKeeper(
	t testing.TB,
	bankK types.BankKeeper,
	accK types.AccountKeeper,
	ledger types.OwnershipLedger,
	genState *types.GenesisState,
) (*keeper.Keeper, sdk.Context) {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())

	k, ctx := CandyMachineKeeperWithStore(t, db, stateStore, nil, bankK, accK, ledger)

	if genState == nil {
		genState = types.DefaultGenesis()
	}
	require.NoError(t, k.InitGenesis(ctx, *genState))

	return k, ctx
}

// CandyMachineEnv is a candy machine keeper wired to real x/auth and x/bank
// keepers on one store.
type CandyMachineEnv struct {
	Keeper  *keeper.Keeper
	Bank    bankk.BaseKeeper
	Account accountk.AccountKeeper
	Ctx     sdk.Context
}

func NewCandyMachineEnv(t testing.TB, ledger types.OwnershipLedger, genState *types.GenesisState) *CandyMachineEnv {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewTestLogger(t), storemetrics.NewNoOpMetrics())

	accK := AccountKeeper(t, db, stateStore)
	bankK := BankKeeper(t, db, stateStore, accK)
	k, ctx := CandyMachineKeeperWithStore(t, db, stateStore, nil, bankK, accK, ledger)

	if genState == nil {
		genState = types.DefaultGenesis()
	}
	require.NoError(t, k.InitGenesis(ctx, *genState))

	return &CandyMachineEnv{
		Keeper:  k,
		Bank:    bankK,
		Account: accK,
		Ctx:     ctx,
	}
}
