package keeper

import (
	"context"

	"cosmossdk.io/math"
	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	fractal "github.com/fractalnft/candymachine/types"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

// AllocateMint picks a token for requester and records the allocation in
// the store: inventory, supply counter, cursor and whitelist allowance. It
// returns the payments and the transfer the caller must carry out. Every
// check happens before the first write; callers must run it inside a branch
// of the store that is discarded when an error is returned.
func (k Keeper) AllocateMint(ctx context.Context, requester sdk.AccAddress, funds sdk.Coins) (*types.MintOutcome, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.WhitelistEnabled {
		eligible, err := k.IsEligible(ctx, requester, cfg.Round)
		if err != nil {
			return nil, err
		}
		if !eligible {
			return nil, types.ErrNotWhitelisted.Wrapf("%s in round %d", requester, cfg.Round)
		}
	}

	if !cfg.IsOpen {
		return nil, types.ErrMintingClosed
	}

	if !cfg.IsFree() && !fractal.ExactlyCoin(funds, cfg.MintPrice) {
		return nil, types.ErrInsufficientPayment.Wrapf("expected %s, got %s", cfg.MintPrice, funds)
	}

	inv, err := k.GetInventory(ctx)
	if err != nil {
		return nil, err
	}
	if inv.Len() == 0 {
		return nil, types.ErrNoInventoryRemaining
	}
	if cfg.TotalTokenCount == 0 {
		return nil, types.ErrNoInventoryRemaining.Wrapf("total token count exhausted with %d buckets left", inv.Len())
	}

	cursor, err := k.GetCursor(ctx)
	if err != nil {
		return nil, err
	}
	seed := k.entropySeed(ctx, requester, cursor)

	bucketIndex := types.DrawIndex(k.entropy, seed, uint64(inv.Len()-1))
	bucket, err := inv.Pick(int(bucketIndex))
	if err != nil {
		return nil, err
	}

	candidates, err := k.candidateTokens(ctx, cfg.TokenContract, bucket.Prefix)
	if err != nil {
		return nil, err
	}
	tokenIndex := types.DrawIndex(k.entropy, seed, uint64(len(candidates)-1))
	tokenID := candidates[tokenIndex]

	// the fallback query may cross prefixes, so the ledger follows the token
	// actually handed out rather than the drawn bucket
	if err := k.DecrementBucket(ctx, types.TokenPrefix(tokenID)); err != nil {
		return nil, err
	}

	outcome, err := buildOutcome(cfg, requester, tokenID)
	if err != nil {
		return nil, err
	}

	cfg.TotalTokenCount--
	if err := k.config.Set(ctx, cfg); err != nil {
		return nil, err
	}

	if err := k.setCursor(ctx, types.MintCursor{
		LastMinter:  requester.String(),
		LastTokenID: tokenID,
	}); err != nil {
		return nil, err
	}

	if cfg.WhitelistEnabled {
		if err := k.DecrementWhitelist(ctx, requester, cfg.Round); err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

// candidateTokens lists held tokens of the drawn bucket, falling back to any
// held token when the bucket page comes back empty.
func (k Keeper) candidateTokens(ctx context.Context, contract, prefix string) ([]string, error) {
	holder := k.ModuleAddress()

	ids, err := k.ledger.HeldTokenIDs(ctx, contract, holder, prefix, prefix, types.TokenQueryLimit)
	if err != nil {
		return nil, err
	}
	if len(ids) > 0 {
		return ids, nil
	}

	ids, err = k.ledger.HeldTokenIDs(ctx, contract, holder, "", "", types.TokenQueryLimit)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, types.ErrNoInventoryRemaining.Wrapf("ownership ledger holds no tokens for %s", holder)
	}
	return ids, nil
}

func (k Keeper) entropySeed(ctx context.Context, requester sdk.AccAddress, cursor types.MintCursor) types.EntropySeed {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	var txIndex uint32
	if counter, ok := wasmtypes.TXCounter(sdkCtx); ok {
		txIndex = counter
	}

	return types.EntropySeed{
		Requester:   requester.String(),
		LastMinter:  cursor.LastMinter,
		LastTokenID: cursor.LastTokenID,
		BlockHeight: uint64(sdkCtx.BlockHeight()),
		BlockTime:   sdkCtx.BlockTime(),
		TxIndex:     txIndex,
	}
}

// buildOutcome splits the mint price between creator and collector and
// addresses the transfer to requester. Zero shares produce no payment.
func buildOutcome(cfg types.Config, requester sdk.AccAddress, tokenID string) (*types.MintOutcome, error) {
	outcome := &types.MintOutcome{
		TokenID:  tokenID,
		Price:    cfg.MintPrice,
		Payments: []types.Payment{},
		Transfer: types.Transfer{
			Contract:  cfg.TokenContract,
			TokenID:   tokenID,
			Recipient: requester.String(),
		},
	}
	if cfg.IsFree() {
		return outcome, nil
	}

	protocolShare, creatorShare := types.SplitFee(cfg.ProtocolFee, cfg.MintPrice.Amount)
	for _, share := range []struct {
		recipient string
		amount    math.Int
	}{
		{cfg.Creator, creatorShare},
		{cfg.Collector, protocolShare},
	} {
		if !share.amount.IsPositive() {
			continue
		}
		coin, err := fractal.SafeNewCoin(cfg.MintPrice.Denom, share.amount)
		if err != nil {
			return nil, err
		}
		outcome.Payments = append(outcome.Payments, types.Payment{
			Recipient: share.recipient,
			Amount:    coin,
		})
	}
	return outcome, nil
}
