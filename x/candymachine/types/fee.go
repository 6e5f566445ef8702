package types

import (
	"cosmossdk.io/math"
)

// SplitFee divides amount into the protocol share, floor(amount * feePercent),
// and the creator share, which takes the remainder so that both always add up
// to amount.
func SplitFee(feePercent math.LegacyDec, amount math.Int) (protocolShare, creatorShare math.Int) {
	protocolShare = math.LegacyNewDecFromInt(amount).Mul(feePercent).TruncateInt()
	creatorShare = amount.Sub(protocolShare)
	return protocolShare, creatorShare
}
