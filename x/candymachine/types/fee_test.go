package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func TestSplitFee(t *testing.T) {
	tests := []struct {
		fee      string
		amount   int64
		protocol int64
		creator  int64
	}{
		{"0.1", 1000, 100, 900},
		{"0.003", 100, 0, 100},
		{"0", 1000, 0, 1000},
		{"1", 1000, 1000, 0},
		{"0.25", 7, 1, 6},
		{"0.5", 0, 0, 0},
	}

	for _, tc := range tests {
		protocol, creator := types.SplitFee(math.LegacyMustNewDecFromStr(tc.fee), math.NewInt(tc.amount))
		require.Truef(t, protocol.Equal(math.NewInt(tc.protocol)), "fee %s of %d: protocol share %s", tc.fee, tc.amount, protocol)
		require.Truef(t, creator.Equal(math.NewInt(tc.creator)), "fee %s of %d: creator share %s", tc.fee, tc.amount, creator)
		require.True(t, protocol.Add(creator).Equal(math.NewInt(tc.amount)))
	}
}
