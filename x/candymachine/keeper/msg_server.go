package keeper

import (
	"context"
	"strconv"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

var _ types.MsgServer = MsgServer{}

type MsgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
// for the provided Keeper.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &MsgServer{Keeper: k}
}

// Mint allocates a token to the sender, collects the price, pays creator and
// collector and transfers the token. Nothing is written unless every step
// succeeds.
func (ms MsgServer) Mint(goCtx context.Context, req *types.MsgMint) (*types.MsgMintResponse, error) {
	defer telemetry.ModuleMeasureSince(types.ModuleName, time.Now(), types.MetricsKeyMint)

	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	requester, err := sdk.AccAddressFromBech32(req.Sender)
	if err != nil {
		return nil, err
	}

	ms.mintMu.Lock()
	defer ms.mintMu.Unlock()

	ctx := sdk.UnwrapSDKContext(goCtx)
	cacheCtx, writeCache := ctx.CacheContext()

	outcome, err := ms.AllocateMint(cacheCtx, requester, req.Funds)
	if err != nil {
		countFailedMint(err)
		return nil, err
	}
	if err := ms.settle(cacheCtx, requester, outcome); err != nil {
		countFailedMint(err)
		return nil, err
	}

	cacheCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMint,
		sdk.NewAttribute(types.AttributeKeyAction, types.AttributeValueMint),
		sdk.NewAttribute(types.AttributeKeyID, outcome.TokenID),
		sdk.NewAttribute(types.AttributeKeyMinter, req.Sender),
		sdk.NewAttribute(types.AttributeKeyPrice, outcome.Price.String()),
	))
	writeCache()

	telemetry.IncrCounter(1, types.ModuleName, types.MetricsKeyMint)
	ms.Logger(ctx).Info("minted token",
		"token_id", outcome.TokenID,
		"minter", req.Sender,
		"price", outcome.Price.String(),
	)

	return &types.MsgMintResponse{
		TokenID:  outcome.TokenID,
		Payments: outcome.Payments,
		Transfer: outcome.Transfer,
	}, nil
}

// countFailedMint increments the failure counter labelled with the ABCI
// code of err.
func countFailedMint(err error) {
	_, code, _ := errorsmod.ABCIInfo(err, false)
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, types.MetricsKeyMintFailed},
		1,
		[]metrics.Label{telemetry.NewLabel(types.MetricsLabelCode, strconv.FormatUint(uint64(code), 10))},
	)
}

// settle carries out the instructions of an allocation: collect the price
// into the module account, pay it out, then hand over the token.
func (ms MsgServer) settle(ctx context.Context, requester sdk.AccAddress, outcome *types.MintOutcome) error {
	if outcome.Price.IsPositive() {
		if err := ms.bankK.SendCoinsFromAccountToModule(ctx, requester, types.ModuleName, sdk.NewCoins(outcome.Price)); err != nil {
			return types.ErrInsufficientPayment.Wrapf("failed to collect %s: %v", outcome.Price, err)
		}
	}

	for _, payment := range outcome.Payments {
		recipient, err := sdk.AccAddressFromBech32(payment.Recipient)
		if err != nil {
			return err
		}
		if err := ms.bankK.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, sdk.NewCoins(payment.Amount)); err != nil {
			return err
		}
	}

	recipient, err := sdk.AccAddressFromBech32(outcome.Transfer.Recipient)
	if err != nil {
		return err
	}
	return ms.ledger.Transfer(ctx, outcome.Transfer.Contract, ms.ModuleAddress(), recipient, outcome.Transfer.TokenID)
}

// SetConfig updates the open and whitelist flags and the round.
func (ms MsgServer) SetConfig(goCtx context.Context, req *types.MsgSetConfig) (*types.MsgSetConfigResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	cfg, err := ms.checkOwner(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}

	cfg.IsOpen = req.IsOpen
	cfg.WhitelistEnabled = req.WhitelistEnabled
	cfg.Round = req.Round
	if err := ms.Keeper.SetConfig(goCtx, cfg); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetConfig,
		sdk.NewAttribute(types.AttributeKeyIsOpen, strconv.FormatBool(req.IsOpen)),
		sdk.NewAttribute(types.AttributeKeyWhitelist, strconv.FormatBool(req.WhitelistEnabled)),
		sdk.NewAttribute(types.AttributeKeyRound, strconv.FormatUint(req.Round, 10)),
	))

	return &types.MsgSetConfigResponse{}, nil
}

// SetNftAddress points the candy machine at another CW721 contract.
func (ms MsgServer) SetNftAddress(goCtx context.Context, req *types.MsgSetNftAddress) (*types.MsgSetNftAddressResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	cfg, err := ms.checkOwner(goCtx, req.Sender)
	if err != nil {
		return nil, err
	}

	cfg.TokenContract = req.Contract
	if err := ms.Keeper.SetConfig(goCtx, cfg); err != nil {
		return nil, err
	}
	return &types.MsgSetNftAddressResponse{}, nil
}

// SetInventory replaces the inventory seed.
func (ms MsgServer) SetInventory(goCtx context.Context, req *types.MsgSetInventory) (*types.MsgSetInventoryResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	if _, err := ms.checkOwner(goCtx, req.Sender); err != nil {
		return nil, err
	}

	if err := ms.Keeper.SetInventory(goCtx, req.Buckets); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetInventory,
		sdk.NewAttribute(types.AttributeKeyBuckets, strconv.Itoa(req.Buckets.Len())),
		sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatUint(req.Buckets.Remaining(), 10)),
	))
	ms.Logger(ctx).Debug("inventory replaced", "buckets", req.Buckets.String())

	return &types.MsgSetInventoryResponse{}, nil
}

// UpdateWhitelist upserts or delists the allowance of an address in a round.
func (ms MsgServer) UpdateWhitelist(goCtx context.Context, req *types.MsgUpdateWhitelist) (*types.MsgUpdateWhitelistResponse, error) {
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	if _, err := ms.checkOwner(goCtx, req.Sender); err != nil {
		return nil, err
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, err
	}

	if req.Delist {
		err = ms.DelistWhitelist(goCtx, addr, req.Round)
	} else {
		err = ms.UpsertWhitelist(goCtx, addr, req.Round, req.Count)
	}
	if err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateWhitelist,
		sdk.NewAttribute(types.AttributeKeyAddress, req.Address),
		sdk.NewAttribute(types.AttributeKeyRound, strconv.FormatUint(req.Round, 10)),
		sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatUint(req.Count, 10)),
		sdk.NewAttribute(types.AttributeKeyDelist, strconv.FormatBool(req.Delist)),
	))

	return &types.MsgUpdateWhitelistResponse{}, nil
}
