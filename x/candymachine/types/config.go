package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	appparams "github.com/fractalnft/candymachine/app/params"
)

// Config is the candy machine configuration record. Only TotalTokenCount is
// changed by minting; every other field belongs to the owner.
type Config struct {
	Owner            string         `json:"owner"`
	Creator          string         `json:"creator"`
	Collector        string         `json:"collector"`
	TokenContract    string         `json:"token_addr"`
	ProtocolFee      math.LegacyDec `json:"protocol_fee"`
	MintPrice        sdk.Coin       `json:"mint_asset"`
	WhitelistEnabled bool           `json:"enable_whitelist"`
	IsOpen           bool           `json:"is_open"`
	Round            uint64         `json:"round"`
	TotalSupply      uint64         `json:"total_supply"`
	TotalTokenCount  uint64         `json:"total_token_count"`
}

// DefaultConfig returns a closed, free candy machine owned by governance.
func DefaultConfig() Config {
	return Config{
		Owner:       appparams.AccGov.String(),
		ProtocolFee: math.LegacyZeroDec(),
		MintPrice:   sdk.NewCoin(appparams.DefaultMintDenom, math.ZeroInt()),
		Round:       DefaultRound,
	}
}

// IsFree reports whether minting requires no payment.
func (c Config) IsFree() bool {
	return c.MintPrice.Amount.IsNil() || c.MintPrice.Amount.IsZero()
}

func (c Config) Validate() error {
	if c.Owner == "" {
		return ErrInvalidConfig.Wrap("owner is required")
	}
	for _, field := range [][2]string{
		{"owner", c.Owner},
		{"creator", c.Creator},
		{"collector", c.Collector},
		{"token_addr", c.TokenContract},
	} {
		if field[1] == "" {
			continue
		}
		if _, err := sdk.AccAddressFromBech32(field[1]); err != nil {
			return ErrInvalidConfig.Wrapf("invalid %s address %q: %v", field[0], field[1], err)
		}
	}

	if c.ProtocolFee.IsNil() {
		return ErrInvalidConfig.Wrap("protocol fee is nil")
	}
	if c.ProtocolFee.IsNegative() || c.ProtocolFee.GT(math.LegacyOneDec()) {
		return ErrInvalidConfig.Wrapf("protocol fee %s must be in [0, 1]", c.ProtocolFee)
	}

	if err := c.MintPrice.Validate(); err != nil {
		return ErrInvalidConfig.Wrapf("invalid mint price: %v", err)
	}
	if !c.IsFree() {
		if c.Creator == "" {
			return ErrInvalidConfig.Wrap("creator is required when the mint price is set")
		}
		if c.ProtocolFee.IsPositive() && c.Collector == "" {
			return ErrInvalidConfig.Wrap("collector is required when a protocol fee is charged")
		}
	}

	if c.TotalTokenCount > c.TotalSupply {
		return ErrInvalidConfig.Wrapf("total token count %d exceeds total supply %d", c.TotalTokenCount, c.TotalSupply)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("Config{owner=%s open=%t whitelist=%t round=%d price=%s fee=%s remaining=%d/%d}",
		c.Owner, c.IsOpen, c.WhitelistEnabled, c.Round, c.MintPrice, c.ProtocolFee, c.TotalTokenCount, c.TotalSupply)
}
