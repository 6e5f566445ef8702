package datagen

import (
	"fmt"
	"math/rand"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	appparams "github.com/fractalnft/candymachine/app/params"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

const bucketPrefixes = "abcdefghijklmnopqrstuvwxyz"

// GenRandomInventory returns between 1 and maxBuckets buckets with distinct
// single letter prefixes and counts in [1, maxCount].
func GenRandomInventory(r *rand.Rand, maxBuckets, maxCount int) types.Inventory {
	if maxBuckets > len(bucketPrefixes) {
		maxBuckets = len(bucketPrefixes)
	}
	n := RandomInRange(r, 1, maxBuckets+1)
	letters := r.Perm(len(bucketPrefixes))[:n]

	inv := make(types.Inventory, 0, n)
	for _, l := range letters {
		inv = append(inv, types.InventoryBucket{
			Prefix: string(bucketPrefixes[l]),
			Count:  uint64(RandomInRange(r, 1, maxCount+1)),
		})
	}
	return inv
}

// TokenIDs lists the concrete token ids backing inv: prefix followed by a
// running number per bucket.
func TokenIDs(inv types.Inventory) []string {
	ids := []string{}
	for _, b := range inv {
		for i := uint64(0); i < b.Count; i++ {
			ids = append(ids, fmt.Sprintf("%s%d", b.Prefix, i))
		}
	}
	return ids
}

// GenRandomConfig returns an open, paid candy machine whose token counter
// matches inv.
func GenRandomConfig(r *rand.Rand, inv types.Inventory) types.Config {
	cfg := types.DefaultConfig()
	cfg.Creator = GenRandomAddress(r).String()
	cfg.Collector = GenRandomAddress(r).String()
	cfg.TokenContract = GenRandomAddress(r).String()
	cfg.ProtocolFee = math.LegacyNewDecWithPrec(int64(RandomInRange(r, 1, 100)), 2)
	cfg.MintPrice = sdk.NewCoin(appparams.DefaultMintDenom, math.NewInt(int64(RandomInRange(r, 1, 10_000))))
	cfg.IsOpen = true
	cfg.TotalSupply = inv.Remaining()
	cfg.TotalTokenCount = inv.Remaining()
	return cfg
}

// GenRandomWhitelist grants each of addrs an allowance in round.
func GenRandomWhitelist(r *rand.Rand, addrs []sdk.AccAddress, round uint64, maxCount int) []types.WhitelistEntry {
	entries := make([]types.WhitelistEntry, 0, len(addrs))
	for _, addr := range addrs {
		entries = append(entries, types.NewWhitelistEntry(addr, round, uint64(RandomInRange(r, 1, maxCount+1))))
	}
	return entries
}
