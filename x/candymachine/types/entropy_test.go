package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

func testSeed() types.EntropySeed {
	return types.EntropySeed{
		Requester:   "fractal1requester",
		LastMinter:  "",
		LastTokenID: "0",
		BlockHeight: 12,
		BlockTime:   time.Unix(1_700_000_000, 5).UTC(),
		TxIndex:     3,
	}
}

func TestEntropySeedString(t *testing.T) {
	require.Equal(t, "fractal1requester__0_12_1700000000.000000005_3", testSeed().String())
}

func TestKeccak256EntropyDeterministic(t *testing.T) {
	seed := testSeed()
	first := types.Keccak256Entropy(seed)
	require.True(t, first.Equal(types.Keccak256Entropy(seed)))

	seed.TxIndex++
	require.False(t, first.Equal(types.Keccak256Entropy(seed)))

	// 16 bytes of digest
	require.True(t, first.LT(math.NewUintFromString("340282366920938463463374607431768211456")))
}

func TestKeccak256EntropyKnownAnswer(t *testing.T) {
	// first 16 bytes of keccak256("fractal1requester__0_12_1700000000.000000005_3"), little-endian
	want := math.NewUintFromString("237821761390632023093628789513172907350")
	got := types.Keccak256Entropy(testSeed())
	require.True(t, want.Equal(got), "got %s", got)

	require.Equal(t, uint64(4), types.DrawIndex(types.Keccak256Entropy, testSeed(), 7))
	require.Equal(t, uint64(2), types.DrawIndex(types.Keccak256Entropy, testSeed(), 4))
}

func TestDrawIndex(t *testing.T) {
	called := 0
	source := func(types.EntropySeed) math.Uint {
		called++
		return math.NewUint(17)
	}

	require.Equal(t, uint64(0), types.DrawIndex(source, testSeed(), 0))
	require.Zero(t, called, "a zero range must not consult the source")

	require.Equal(t, uint64(2), types.DrawIndex(source, testSeed(), 5))
	require.Equal(t, 1, called)
}

func TestDrawIndexInRange(t *testing.T) {
	seed := testSeed()
	for rng := uint64(1); rng < 64; rng++ {
		seed.BlockHeight = rng
		require.Less(t, types.DrawIndex(types.Keccak256Entropy, seed, rng), rng)
	}
}
