package keeper

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/collections"
	corestoretypes "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

type (
	Keeper struct {
		storeService corestoretypes.KVStoreService

		bankK  types.BankKeeper
		accK   types.AccountKeeper
		ledger types.OwnershipLedger

		// entropy derives the pseudo-random draws of a mint
		entropy types.EntropySource

		// mintMu serializes the whole mint sequence so two mints never read
		// the same inventory snapshot
		mintMu *sync.Mutex

		Schema collections.Schema

		// config stores the candy machine configuration
		config collections.Item[types.Config]

		// inventory stores the remaining buckets as one value
		inventory collections.Item[types.Inventory]

		// whitelists maps (address, round) => WhitelistEntry
		whitelists collections.Map[collections.Pair[sdk.AccAddress, uint64], types.WhitelistEntry]

		// cursor stores the last minter and token id
		cursor collections.Item[types.MintCursor]
	}
)

func NewKeeper(
	storeService corestoretypes.KVStoreService,
	bankK types.BankKeeper,
	accK types.AccountKeeper,
	ledger types.OwnershipLedger,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,

		bankK:  bankK,
		accK:   accK,
		ledger: ledger,

		entropy: types.Keccak256Entropy,
		mintMu:  &sync.Mutex{},

		config: collections.NewItem(
			sb,
			types.ConfigKey,
			"config",
			types.JSONValue[types.Config]{},
		),
		inventory: collections.NewItem(
			sb,
			types.InventoryKey,
			"inventory",
			types.JSONValue[types.Inventory]{},
		),
		whitelists: collections.NewMap(
			sb,
			types.WhitelistPrefix,
			"whitelists",
			// key: (address, round)
			collections.PairKeyCodec(sdk.AccAddressKey, collections.Uint64Key),
			types.JSONValue[types.WhitelistEntry]{},
		),
		cursor: collections.NewItem(
			sb,
			types.CursorKey,
			"cursor",
			types.JSONValue[types.MintCursor]{},
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// SetEntropySource replaces the draw function. Only tests and simulations
// should need this.
func (k *Keeper) SetEntropySource(source types.EntropySource) {
	k.entropy = source
}

// ModuleAddress is the account holding the inventory and collecting payments.
func (k Keeper) ModuleAddress() sdk.AccAddress {
	return k.accK.GetModuleAddress(types.ModuleName)
}

func (k Keeper) Logger(goCtx context.Context) log.Logger {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}
