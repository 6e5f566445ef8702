package keeper_test

import (
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	appparams "github.com/fractalnft/candymachine/app/params"
	"github.com/fractalnft/candymachine/testutil/datagen"
	testkeeper "github.com/fractalnft/candymachine/testutil/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/ledger"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

var moduleAddr = authtypes.NewModuleAddress(types.ModuleName)

// candyFixture is a candy machine with real bank and account keepers and an
// in-memory ownership ledger holding one token per inventory unit.
type candyFixture struct {
	*testkeeper.CandyMachineEnv

	ledger *ledger.Memory
	cfg    types.Config
	owner  sdk.AccAddress
}

func newCandyFixture(t *testing.T, r *rand.Rand, inv types.Inventory, mutate func(cfg *types.Config)) *candyFixture {
	owner := datagen.GenRandomAddress(r)

	cfg := datagen.GenRandomConfig(r, inv)
	cfg.Owner = owner.String()
	if mutate != nil {
		mutate(&cfg)
	}

	l := ledger.NewMemory()
	l.Mint(cfg.TokenContract, moduleAddr, datagen.TokenIDs(inv)...)

	genState := types.DefaultGenesis()
	genState.Config = cfg
	genState.Inventory = inv

	env := testkeeper.NewCandyMachineEnv(t, l, genState)
	return &candyFixture{
		CandyMachineEnv: env,
		ledger:          l,
		cfg:             cfg,
		owner:           owner,
	}
}

// msgServer is built on demand so it sees entropy sources set on the keeper.
func (f *candyFixture) msgServer() types.MsgServer {
	return keeper.NewMsgServerImpl(*f.Keeper)
}

// price returns the funds a minter has to attach.
func (f *candyFixture) price() sdk.Coins {
	if f.cfg.IsFree() {
		return sdk.NewCoins()
	}
	return sdk.NewCoins(f.cfg.MintPrice)
}

// fundedMinter returns a new address holding exactly n mint prices.
func (f *candyFixture) fundedMinter(t *testing.T, r *rand.Rand, n int64) sdk.AccAddress {
	minter := datagen.GenRandomAddress(r)
	if !f.cfg.IsFree() {
		amount := f.cfg.MintPrice.Amount.MulRaw(n)
		testkeeper.Fund(t, f.Ctx, f.Bank, minter, sdk.NewCoins(sdk.NewCoin(f.cfg.MintPrice.Denom, amount)))
	}
	return minter
}

func (f *candyFixture) mint(minter sdk.AccAddress) (*types.MsgMintResponse, error) {
	return f.msgServer().Mint(f.Ctx, &types.MsgMint{
		Sender: minter.String(),
		Funds:  f.price(),
	})
}

func (f *candyFixture) balance(addr string) math.Int {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return f.Bank.GetBalance(f.Ctx, acc, appparams.DefaultMintDenom).Amount
}

// requireUnchanged checks that inventory, cursor and counters still match
// the values before a failed mint.
func (f *candyFixture) requireUnchanged(t *testing.T, inv types.Inventory, cursor types.MintCursor, count uint64) {
	t.Helper()

	gotInv, err := f.Keeper.GetInventory(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, inv, gotInv)

	gotCursor, err := f.Keeper.GetCursor(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, cursor, gotCursor)

	cfg, err := f.Keeper.GetConfig(f.Ctx)
	require.NoError(t, err)
	require.Equal(t, count, cfg.TotalTokenCount)
}

// requireConfigEqual compares configs through their stored encoding, since
// decoded amounts do not share the internal layout of constructed ones.
func requireConfigEqual(t *testing.T, expected, actual types.Config) {
	t.Helper()
	codec := types.JSONValue[types.Config]{}
	require.Equal(t, codec.Stringify(expected), codec.Stringify(actual))
}
