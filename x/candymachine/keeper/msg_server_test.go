package keeper_test

import (
	"errors"
	"math/rand"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	appparams "github.com/fractalnft/candymachine/app/params"
	"github.com/fractalnft/candymachine/testutil/datagen"
	"github.com/fractalnft/candymachine/testutil/events"
	testkeeper "github.com/fractalnft/candymachine/testutil/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// newMockedKeeper returns a keeper whose bank and ledger are gomock mocks.
func newMockedKeeper(t *testing.T, genState *types.GenesisState) (*keeper.Keeper, sdk.Context, *types.MockBankKeeper, *types.MockOwnershipLedger) {
	ctrl := gomock.NewController(t)

	accK := types.NewMockAccountKeeper(ctrl)
	accK.EXPECT().GetModuleAddress(types.ModuleName).Return(moduleAddr).AnyTimes()
	bankK := types.NewMockBankKeeper(ctrl)
	ledgerK := types.NewMockOwnershipLedger(ctrl)

	k, ctx := testkeeper.CandyMachineKeeper(t, bankK, accK, ledgerK, genState)
	return k, ctx, bankK, ledgerK
}

func freeGenesis(r *rand.Rand, inv types.Inventory) *types.GenesisState {
	cfg := datagen.GenRandomConfig(r, inv)
	cfg.MintPrice = sdk.NewInt64Coin(appparams.DefaultMintDenom, 0)

	genState := types.DefaultGenesis()
	genState.Config = cfg
	genState.Inventory = inv
	return genState
}

func TestMintQueriesLedgerByBucketPrefix(t *testing.T) {
	r := rand.New(rand.NewSource(20))
	inv := types.Inventory{{Prefix: "a", Count: 1}, {Prefix: "b", Count: 1}}
	genState := freeGenesis(r, inv)
	contract := genState.Config.TokenContract
	minter := datagen.GenRandomAddress(r)

	k, ctx, _, ledgerK := newMockedKeeper(t, genState)
	gomock.InOrder(
		ledgerK.EXPECT().HeldTokenIDs(gomock.Any(), contract, moduleAddr, "a", "a", uint32(types.TokenQueryLimit)).Return([]string{}, nil),
		ledgerK.EXPECT().HeldTokenIDs(gomock.Any(), contract, moduleAddr, "", "", uint32(types.TokenQueryLimit)).Return([]string{"b7"}, nil),
		ledgerK.EXPECT().Transfer(gomock.Any(), contract, moduleAddr, minter, "b7").Return(nil),
	)

	res, err := keeper.NewMsgServerImpl(*k).Mint(ctx, &types.MsgMint{Sender: minter.String()})
	require.NoError(t, err)
	require.Equal(t, types.Transfer{Contract: contract, TokenID: "b7", Recipient: minter.String()}, res.Transfer)

	remaining, err := k.GetInventory(ctx)
	require.NoError(t, err)
	require.Equal(t, types.Inventory{{Prefix: "a", Count: 1}}, remaining)
}

func TestMintRollsBackOnTransferFailure(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	inv := types.Inventory{{Prefix: "a", Count: 2}}
	genState := freeGenesis(r, inv)

	k, ctx, _, ledgerK := newMockedKeeper(t, genState)
	ledgerK.EXPECT().HeldTokenIDs(gomock.Any(), gomock.Any(), moduleAddr, "a", "a", gomock.Any()).Return([]string{"a0", "a1"}, nil)
	ledgerK.EXPECT().Transfer(gomock.Any(), gomock.Any(), moduleAddr, gomock.Any(), "a0").Return(errors.New("contract paused"))

	_, err := keeper.NewMsgServerImpl(*k).Mint(ctx, &types.MsgMint{Sender: datagen.GenRandomAddress(r).String()})
	require.ErrorContains(t, err, "contract paused")

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Equal(t, genState.Inventory, exported.Inventory)
	require.Equal(t, genState.Config.TotalTokenCount, exported.Config.TotalTokenCount)
	require.Equal(t, types.InitialCursor(), exported.Cursor)
	require.Empty(t, ctx.EventManager().Events())
}

func TestMintCollectsBeforePaying(t *testing.T) {
	r := rand.New(rand.NewSource(22))
	inv := types.Inventory{{Prefix: "z", Count: 1}}
	genState := freeGenesis(r, inv)
	genState.Config.MintPrice = sdk.NewInt64Coin(appparams.DefaultMintDenom, 1000)
	genState.Config.ProtocolFee = math.LegacyMustNewDecFromStr("0.1")
	cfg := genState.Config
	minter := datagen.GenRandomAddress(r)

	k, ctx, bankK, ledgerK := newMockedKeeper(t, genState)
	ledgerK.EXPECT().HeldTokenIDs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"z0"}, nil)
	gomock.InOrder(
		bankK.EXPECT().SendCoinsFromAccountToModule(gomock.Any(), minter, types.ModuleName, sdk.NewCoins(cfg.MintPrice)).Return(nil),
		bankK.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, sdk.MustAccAddressFromBech32(cfg.Creator), sdk.NewCoins(sdk.NewInt64Coin(cfg.MintPrice.Denom, 900))).Return(nil),
		bankK.EXPECT().SendCoinsFromModuleToAccount(gomock.Any(), types.ModuleName, sdk.MustAccAddressFromBech32(cfg.Collector), sdk.NewCoins(sdk.NewInt64Coin(cfg.MintPrice.Denom, 100))).Return(nil),
		ledgerK.EXPECT().Transfer(gomock.Any(), cfg.TokenContract, moduleAddr, minter, "z0").Return(nil),
	)

	res, err := keeper.NewMsgServerImpl(*k).Mint(ctx, &types.MsgMint{Sender: minter.String(), Funds: sdk.NewCoins(cfg.MintPrice)})
	require.NoError(t, err)
	require.Len(t, res.Payments, 2)
}

func TestAdminMsgsRequireOwner(t *testing.T) {
	r := rand.New(rand.NewSource(23))
	genState := freeGenesis(r, types.Inventory{{Prefix: "a", Count: 1}})
	k, ctx, _, _ := newMockedKeeper(t, genState)
	ms := keeper.NewMsgServerImpl(*k)

	stranger := datagen.GenRandomAddress(r).String()
	_, err := ms.SetConfig(ctx, &types.MsgSetConfig{Sender: stranger, IsOpen: true, Round: 2})
	require.ErrorIs(t, err, types.ErrUnauthorized)
	_, err = ms.SetNftAddress(ctx, &types.MsgSetNftAddress{Sender: stranger, Contract: stranger})
	require.ErrorIs(t, err, types.ErrUnauthorized)
	_, err = ms.SetInventory(ctx, &types.MsgSetInventory{Sender: stranger, Buckets: types.Inventory{{Prefix: "b", Count: 9}}})
	require.ErrorIs(t, err, types.ErrUnauthorized)
	_, err = ms.UpdateWhitelist(ctx, &types.MsgUpdateWhitelist{Sender: stranger, Address: stranger, Count: 1, Round: 1})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	requireConfigEqual(t, genState.Config, exported.Config)
	require.Equal(t, genState.Inventory, exported.Inventory)
	require.Empty(t, exported.Whitelists)
}

func TestAdminMsgs(t *testing.T) {
	r := rand.New(rand.NewSource(24))
	genState := freeGenesis(r, types.Inventory{{Prefix: "a", Count: 1}})
	genState.Config.IsOpen = false
	owner := genState.Config.Owner

	k, ctx, _, _ := newMockedKeeper(t, genState)
	ms := keeper.NewMsgServerImpl(*k)

	_, err := ms.SetConfig(ctx, &types.MsgSetConfig{Sender: owner, IsOpen: true, WhitelistEnabled: true, Round: 3})
	require.NoError(t, err)
	ev := events.RequireLastEvent(t, ctx.EventManager().Events(), types.EventTypeSetConfig)
	events.RequireEventAttribute(t, ev, types.AttributeKeyRound, "3")

	contract := datagen.GenRandomAddress(r).String()
	_, err = ms.SetNftAddress(ctx, &types.MsgSetNftAddress{Sender: owner, Contract: contract})
	require.NoError(t, err)

	cfg, err := k.GetConfig(ctx)
	require.NoError(t, err)
	require.True(t, cfg.IsOpen)
	require.True(t, cfg.WhitelistEnabled)
	require.Equal(t, uint64(3), cfg.Round)
	require.Equal(t, contract, cfg.TokenContract)
	// minting state is left alone
	require.Equal(t, genState.Config.TotalTokenCount, cfg.TotalTokenCount)

	buckets := types.Inventory{{Prefix: "x", Count: 4}, {Prefix: "y", Count: 2}}
	_, err = ms.SetInventory(ctx, &types.MsgSetInventory{Sender: owner, Buckets: buckets})
	require.NoError(t, err)
	inv, err := k.GetInventory(ctx)
	require.NoError(t, err)
	require.Equal(t, buckets, inv)

	_, err = ms.SetInventory(ctx, &types.MsgSetInventory{Sender: owner, Buckets: types.Inventory{{Prefix: "x", Count: 0}}})
	require.ErrorIs(t, err, types.ErrInvalidInventory)

	_, err = ms.SetNftAddress(ctx, &types.MsgSetNftAddress{Sender: owner, Contract: "nope"})
	require.Error(t, err)
}

func TestUpdateWhitelist(t *testing.T) {
	r := rand.New(rand.NewSource(25))
	genState := freeGenesis(r, types.Inventory{{Prefix: "a", Count: 1}})
	owner := genState.Config.Owner

	k, ctx, _, _ := newMockedKeeper(t, genState)
	ms := keeper.NewMsgServerImpl(*k)
	addr := datagen.GenRandomAddress(r)

	_, err := ms.UpdateWhitelist(ctx, &types.MsgUpdateWhitelist{Sender: owner, Address: addr.String(), Count: 2, Round: 1})
	require.NoError(t, err)
	_, err = ms.UpdateWhitelist(ctx, &types.MsgUpdateWhitelist{Sender: owner, Address: addr.String(), Count: 7, Round: 2})
	require.NoError(t, err)

	// upsert overwrites
	_, err = ms.UpdateWhitelist(ctx, &types.MsgUpdateWhitelist{Sender: owner, Address: addr.String(), Count: 5, Round: 1})
	require.NoError(t, err)
	entry, err := k.GetWhitelist(ctx, addr, 1)
	require.NoError(t, err)
	require.Equal(t, types.NewWhitelistEntry(addr, 1, 5), *entry)

	// rounds are independent
	eligible, err := k.IsEligible(ctx, addr, 2)
	require.NoError(t, err)
	require.False(t, eligible, "round 2 is not the configured round")

	_, err = ms.UpdateWhitelist(ctx, &types.MsgUpdateWhitelist{Sender: owner, Address: addr.String(), Round: 1, Delist: true})
	require.NoError(t, err)
	entry, err = k.GetWhitelist(ctx, addr, 1)
	require.NoError(t, err)
	require.Nil(t, entry)

	entry, err = k.GetWhitelist(ctx, addr, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(7), entry.Count)

	_, err = ms.UpdateWhitelist(ctx, &types.MsgUpdateWhitelist{Sender: owner, Address: addr.String(), Round: 1, Delist: true})
	require.ErrorIs(t, err, types.ErrAddressNotFound)
}
