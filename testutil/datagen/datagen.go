package datagen

import (
	"math/rand"

	"cosmossdk.io/math"
)

func GenRandomByteArray(r *rand.Rand, length uint64) []byte {
	bz := make([]byte, length)
	r.Read(bz)
	return bz
}

func OneInN(r *rand.Rand, n int) bool {
	return RandomInt(r, n) == 0
}

func RandomInt(r *rand.Rand, rng int) uint64 {
	return uint64(r.Intn(rng))
}

func RandomMathInt(r *rand.Rand, rng int) math.Int {
	return math.NewIntFromUint64(RandomInt(r, rng))
}

// RandomInRange returns a random integer in the range [min, max).
func RandomInRange(r *rand.Rand, min, max int) int {
	return r.Intn(max-min) + min
}
