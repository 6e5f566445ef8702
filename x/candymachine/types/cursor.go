package types

// MintCursor records the last successful mint and seeds the next draw.
type MintCursor struct {
	LastMinter  string `json:"last_minter"`
	LastTokenID string `json:"last_token_id"`
}

// InitialCursor is the cursor of a candy machine that has never minted.
func InitialCursor() MintCursor {
	return MintCursor{LastTokenID: InitialTokenID}
}
