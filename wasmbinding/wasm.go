package wasmbinding

import (
	"context"
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
	wasmkeeper "github.com/CosmWasm/wasmd/x/wasm/keeper"
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/fractalnft/candymachine/wasmbinding/bindings"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

type QueryPlugin struct {
	candyMachine types.QueryServer
}

// NewQueryPlugin returns a reference to a new QueryPlugin.
func NewQueryPlugin(candyMachine types.QueryServer) *QueryPlugin {
	return &QueryPlugin{candyMachine: candyMachine}
}

// CustomQuerier dispatches custom CosmWasm bindings queries. Responses keep
// the shapes contracts already decode: the bare config, an optional
// whitelist entry and the list of remaining buckets.
func CustomQuerier(qp *QueryPlugin) func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
	return func(ctx sdk.Context, request json.RawMessage) ([]byte, error) {
		var contractQuery bindings.CandyMachineQuery
		if err := json.Unmarshal(request, &contractQuery); err != nil {
			return nil, errorsmod.Wrap(err, "failed to unmarshal request")
		}

		var (
			res any
			err error
		)
		switch {
		case contractQuery.Config != nil:
			res, err = qp.config(ctx)
		case contractQuery.WhitelistSingle != nil:
			res, err = qp.whitelist(ctx, &types.QueryWhitelistRequest{
				Address: contractQuery.WhitelistSingle.Addr,
			})
		case contractQuery.WhitelistAddress != nil:
			res, err = qp.whitelistByRound(ctx, &types.QueryWhitelistByRoundRequest{
				Address: contractQuery.WhitelistAddress.Addr,
				Round:   contractQuery.WhitelistAddress.Round,
			})
		case contractQuery.Seed != nil:
			res, err = qp.seed(ctx)
		default:
			return nil, wasmvmtypes.UnsupportedRequest{Kind: "unknown candy machine query variant"}
		}
		if err != nil {
			return nil, err
		}

		bz, err := json.Marshal(res)
		if err != nil {
			return nil, errorsmod.Wrap(err, "failed marshaling")
		}
		return bz, nil
	}
}

func (qp *QueryPlugin) config(ctx context.Context) (*types.Config, error) {
	res, err := qp.candyMachine.Config(ctx, &types.QueryConfigRequest{})
	if err != nil {
		return nil, err
	}
	return &res.Config, nil
}

func (qp *QueryPlugin) whitelist(ctx context.Context, req *types.QueryWhitelistRequest) (*types.WhitelistEntry, error) {
	res, err := qp.candyMachine.Whitelist(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Entry, nil
}

func (qp *QueryPlugin) whitelistByRound(ctx context.Context, req *types.QueryWhitelistByRoundRequest) (*types.WhitelistEntry, error) {
	res, err := qp.candyMachine.WhitelistByRound(ctx, req)
	if err != nil {
		return nil, err
	}
	return res.Entry, nil
}

func (qp *QueryPlugin) seed(ctx context.Context) (types.Inventory, error) {
	res, err := qp.candyMachine.Inventory(ctx, &types.QueryInventoryRequest{})
	if err != nil {
		return nil, err
	}
	return res.Buckets, nil
}

func RegisterCustomPlugins(candyMachine types.QueryServer) []wasmkeeper.Option {
	wasmQueryPlugin := NewQueryPlugin(candyMachine)

	queryPluginOpt := wasmkeeper.WithQueryPlugins(&wasmkeeper.QueryPlugins{
		Custom: CustomQuerier(wasmQueryPlugin),
	})

	return []wasmkeeper.Option{
		queryPluginOpt,
	}
}
