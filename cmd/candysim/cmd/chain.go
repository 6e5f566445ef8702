package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authcodec "github.com/cosmos/cosmos-sdk/x/auth/codec"
	accountk "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankk "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"

	appparams "github.com/fractalnft/candymachine/app/params"
	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// genesisTime is the block time of the first simulated block.
var genesisTime = time.Unix(1_700_000_000, 0).UTC()

// chain is the minimal state machine a candy machine needs: accounts, bank
// balances and the module itself, sharing one multistore.
type chain struct {
	db         dbm.DB
	stateStore store.CommitMultiStore

	account accountk.AccountKeeper
	bank    bankk.BaseKeeper
	candy   *keeper.Keeper

	ctx sdk.Context
}

// OpenDB opens a goleveldb database at dir, which must end with .db.
func OpenDB(dir string) (dbm.DB, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	ext := filepath.Ext(dir)
	if !strings.EqualFold(ext, ".db") {
		return nil, fmt.Errorf("database directory must end with .db")
	}

	name := strings.TrimSuffix(filepath.Base(dir), ext)
	return dbm.NewGoLevelDB(name, filepath.Dir(dir), nil)
}

func newChain(db dbm.DB, logger log.Logger, ledger types.OwnershipLedger) (*chain, error) {
	stateStore := store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())

	authKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankKey := storetypes.NewKVStoreKey(banktypes.StoreKey)
	candyKey := storetypes.NewKVStoreKey(types.StoreKey)
	// a nil db gives every IAVL tree its own prefix of the root db
	for _, key := range []*storetypes.KVStoreKey{authKey, bankKey, candyKey} {
		stateStore.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := stateStore.LoadLatestVersion(); err != nil {
		return nil, err
	}

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	accountKeeper := accountk.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authKey),
		authtypes.ProtoBaseAccount,
		map[string][]string{
			minttypes.ModuleName: {authtypes.Minter},
			types.ModuleName:     nil,
		},
		authcodec.NewBech32Codec(appparams.Bech32PrefixAccAddr),
		appparams.Bech32PrefixAccAddr,
		appparams.AccGov.String(),
	)
	bankKeeper := bankk.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankKey),
		accountKeeper,
		map[string]bool{},
		appparams.AccGov.String(),
		logger,
	)
	candyKeeper := keeper.NewKeeper(
		runtime.NewKVStoreService(candyKey),
		bankKeeper,
		accountKeeper,
		ledger,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{
		ChainID: "candysim",
		Height:  stateStore.LastCommitID().Version + 1,
		Time:    genesisTime,
	}, false, logger)

	return &chain{
		db:         db,
		stateStore: stateStore,
		account:    accountKeeper,
		bank:       bankKeeper,
		candy:      &candyKeeper,
		ctx:        ctx,
	}, nil
}

// fund mints coins to addr through the mint module account.
func (c *chain) fund(addr sdk.AccAddress, coins sdk.Coins) error {
	if err := c.bank.MintCoins(c.ctx, minttypes.ModuleName, coins); err != nil {
		return err
	}
	return c.bank.SendCoinsFromModuleToAccount(c.ctx, minttypes.ModuleName, addr, coins)
}

// blockContext returns the context of the txIndex-th transaction in block
// height. Blocks are five seconds apart.
func (c *chain) blockContext(height int64, txIndex uint32) sdk.Context {
	blockTime := genesisTime.Add(time.Duration(height-c.ctx.BlockHeight()) * 5 * time.Second)
	ctx := c.ctx.WithBlockHeight(height).WithBlockTime(blockTime)
	return wasmtypes.WithTXCounter(ctx, txIndex)
}

func (c *chain) commit() storetypes.CommitID {
	return c.stateStore.Commit()
}
