package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// SafeNewCoin validates the coin instead of panicking like sdk.NewCoin.
func SafeNewCoin(denom string, amount sdkmath.Int) (sdk.Coin, error) {
	coin := sdk.Coin{
		Denom:  denom,
		Amount: amount,
	}

	if err := coin.Validate(); err != nil {
		return sdk.Coin{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	return coin, nil
}

// ExactlyCoin reports whether funds hold expected and nothing else.
func ExactlyCoin(funds sdk.Coins, expected sdk.Coin) bool {
	if len(funds) != 1 {
		return false
	}
	return funds[0].Denom == expected.Denom && funds[0].Amount.Equal(expected.Amount)
}
