package datagen

import (
	"math/rand"

	sec256k1 "github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

func GenRandomAccount() *authtypes.BaseAccount {
	senderPrivKey := sec256k1.GenPrivKey()
	return authtypes.NewBaseAccount(senderPrivKey.PubKey().Address().Bytes(), senderPrivKey.PubKey(), 0, 0)
}

// GenRandomAddress returns a random 20 byte account address.
func GenRandomAddress(r *rand.Rand) sdk.AccAddress {
	return sdk.AccAddress(GenRandomByteArray(r, 20))
}

// GenRandomAddresses returns n distinct random addresses.
func GenRandomAddresses(r *rand.Rand, n int) []sdk.AccAddress {
	seen := make(map[string]struct{}, n)
	addrs := make([]sdk.AccAddress, 0, n)
	for len(addrs) < n {
		addr := GenRandomAddress(r)
		if _, ok := seen[addr.String()]; ok {
			continue
		}
		seen[addr.String()] = struct{}{}
		addrs = append(addrs, addr)
	}
	return addrs
}
