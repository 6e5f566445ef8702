package types

import "context"

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

// QueryWhitelistRequest looks an address up in the current round.
type QueryWhitelistRequest struct {
	Address string `json:"addr"`
}

// QueryWhitelistByRoundRequest looks an address up in an explicit round.
type QueryWhitelistByRoundRequest struct {
	Address string `json:"addr"`
	Round   uint64 `json:"round"`
}

// QueryWhitelistResponse carries a nil Entry when no allowance is stored.
type QueryWhitelistResponse struct {
	Entry *WhitelistEntry `json:"whitelist"`
}

type QueryInventoryRequest struct{}

type QueryInventoryResponse struct {
	Buckets   Inventory `json:"seeds"`
	Remaining uint64    `json:"remaining"`
}

type QueryLastMintRequest struct{}

type QueryLastMintResponse struct {
	Cursor MintCursor `json:"cursor"`
}

// QueryServer is the read API of the candy machine.
type QueryServer interface {
	Config(ctx context.Context, req *QueryConfigRequest) (*QueryConfigResponse, error)
	Whitelist(ctx context.Context, req *QueryWhitelistRequest) (*QueryWhitelistResponse, error)
	WhitelistByRound(ctx context.Context, req *QueryWhitelistByRoundRequest) (*QueryWhitelistResponse, error)
	Inventory(ctx context.Context, req *QueryInventoryRequest) (*QueryInventoryResponse, error)
	LastMint(ctx context.Context, req *QueryLastMintRequest) (*QueryLastMintResponse, error)
}
