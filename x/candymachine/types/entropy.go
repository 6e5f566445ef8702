package types

import (
	"fmt"
	"math/big"
	"time"

	"cosmossdk.io/math"
	"golang.org/x/crypto/sha3"
)

// EntropySeed is the request and block context a draw is derived from. Every
// field is known to, or influenced by, the caller or the block proposer, so
// draws are predictable and must not protect anything of value.
type EntropySeed struct {
	Requester   string
	LastMinter  string
	LastTokenID string
	BlockHeight uint64
	BlockTime   time.Time
	TxIndex     uint32
}

// String renders the seed in the hashed form
// requester_lastMinter_lastTokenID_height_seconds.nanos_txIndex.
func (s EntropySeed) String() string {
	return fmt.Sprintf("%s_%s_%s_%d_%d.%09d_%d",
		s.Requester,
		s.LastMinter,
		s.LastTokenID,
		s.BlockHeight,
		s.BlockTime.Unix(),
		s.BlockTime.Nanosecond(),
		s.TxIndex,
	)
}

// EntropySource maps a seed to a 128-bit unsigned integer.
type EntropySource func(seed EntropySeed) math.Uint

// Keccak256Entropy hashes the seed with Keccak-256 and reads the first 16
// bytes of the digest as a little-endian integer.
func Keccak256Entropy(seed EntropySeed) math.Uint {
	hasher := sha3.NewLegacyKeccak256()
	// hash.Hash never returns an error
	_, _ = hasher.Write([]byte(seed.String()))
	digest := hasher.Sum(nil)

	be := make([]byte, 16)
	for i := 0; i < 16; i++ {
		be[15-i] = digest[i]
	}
	return math.NewUintFromBigInt(new(big.Int).SetBytes(be))
}

// DrawIndex reduces a draw into [0, rng). A zero range returns 0 without
// consulting source. Modulo reduction is slightly biased when rng does not
// divide 2^128; the bias is negligible for inventory-sized ranges.
func DrawIndex(source EntropySource, seed EntropySeed, rng uint64) uint64 {
	if rng == 0 {
		return 0
	}
	return source(seed).Mod(math.NewUint(rng)).Uint64()
}
