package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// WhitelistEntry is the remaining mint allowance of an address in a round.
type WhitelistEntry struct {
	Address string `json:"addr"`
	Round   uint64 `json:"round"`
	Count   uint64 `json:"count"`
}

func NewWhitelistEntry(addr sdk.AccAddress, round, count uint64) WhitelistEntry {
	return WhitelistEntry{
		Address: addr.String(),
		Round:   round,
		Count:   count,
	}
}

// GrantsMint reports whether the entry still allows a mint in currentRound.
func (w WhitelistEntry) GrantsMint(currentRound uint64) bool {
	return w.Count > 0 && w.Round == currentRound
}

func (w WhitelistEntry) Validate() error {
	if _, err := sdk.AccAddressFromBech32(w.Address); err != nil {
		return ErrInvalidWhitelist.Wrapf("invalid address %q: %v", w.Address, err)
	}
	return nil
}
