package types

import (
	"fmt"

	fractal "github.com/fractalnft/candymachine/types"
)

// GenesisState is the exported candy machine state.
type GenesisState struct {
	Config     Config           `json:"config"`
	Inventory  Inventory        `json:"inventory"`
	Whitelists []WhitelistEntry `json:"whitelists"`
	Cursor     MintCursor       `json:"cursor"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Config:     DefaultConfig(),
		Inventory:  Inventory{},
		Whitelists: []WhitelistEntry{},
		Cursor:     InitialCursor(),
	}
}

type whitelistKey struct {
	addr  string
	round uint64
}

func (gs GenesisState) Validate() error {
	if err := gs.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := gs.Inventory.Validate(); err != nil {
		return fmt.Errorf("invalid inventory: %w", err)
	}

	if err := fractal.ValidateEntries(gs.Whitelists, func(w WhitelistEntry) whitelistKey {
		return whitelistKey{addr: w.Address, round: w.Round}
	}); err != nil {
		return fmt.Errorf("invalid whitelists: %w", err)
	}

	if gs.Cursor.LastTokenID == "" {
		return fmt.Errorf("invalid cursor: last token id is empty")
	}
	return nil
}
