package ledger

import (
	"context"
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

var _ types.OwnershipLedger = CW721{}

// CW721 reads and moves tokens of a cw721 contract through x/wasm.
type CW721 struct {
	view types.WasmViewKeeper
	ops  types.WasmOpsKeeper
}

func NewCW721(view types.WasmViewKeeper, ops types.WasmOpsKeeper) CW721 {
	return CW721{view: view, ops: ops}
}

type tokensQuery struct {
	Tokens tokensQueryParams `json:"tokens"`
}

type tokensQueryParams struct {
	Owner      string  `json:"owner"`
	StartAfter *string `json:"start_after,omitempty"`
	Limit      *uint32 `json:"limit,omitempty"`
}

type tokensResponse struct {
	Tokens []string `json:"tokens"`
}

type transferNftMsg struct {
	TransferNft transferNftParams `json:"transfer_nft"`
}

type transferNftParams struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

// HeldTokenIDs queries one page of tokens owned by owner and keeps the ids
// that start with prefix.
func (c CW721) HeldTokenIDs(ctx context.Context, contract string, owner sdk.AccAddress, prefix, startAfter string, limit uint32) ([]string, error) {
	contractAddr, err := sdk.AccAddressFromBech32(contract)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "invalid token contract %q", contract)
	}

	query := tokensQuery{Tokens: tokensQueryParams{
		Owner: owner.String(),
		Limit: &limit,
	}}
	if startAfter != "" {
		query.Tokens.StartAfter = &startAfter
	}
	req, err := json.Marshal(query)
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed marshaling")
	}

	bz, err := c.view.QuerySmart(ctx, contractAddr, req)
	if err != nil {
		return nil, errorsmod.Wrapf(err, "failed to query tokens of %s", contract)
	}
	var res tokensResponse
	if err := json.Unmarshal(bz, &res); err != nil {
		return nil, types.ErrInvalidLedgerResponse.Wrapf("tokens response: %v", err)
	}

	return FilterPrefix(res.Tokens, prefix), nil
}

// Transfer executes transfer_nft on the contract with sender as caller.
func (c CW721) Transfer(ctx context.Context, contract string, sender, recipient sdk.AccAddress, tokenID string) error {
	contractAddr, err := sdk.AccAddressFromBech32(contract)
	if err != nil {
		return errorsmod.Wrapf(err, "invalid token contract %q", contract)
	}

	msg, err := json.Marshal(transferNftMsg{TransferNft: transferNftParams{
		Recipient: recipient.String(),
		TokenID:   tokenID,
	}})
	if err != nil {
		return errorsmod.Wrap(err, "failed marshaling")
	}

	if _, err := c.ops.Execute(sdk.UnwrapSDKContext(ctx), contractAddr, sender, msg, nil); err != nil {
		return errorsmod.Wrapf(err, "failed to transfer token %s", tokenID)
	}
	return nil
}

// FilterPrefix keeps the ids starting with prefix, preserving order.
func FilterPrefix(ids []string, prefix string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			out = append(out, id)
		}
	}
	return out
}
