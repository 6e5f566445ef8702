package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "candymachine"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// TokenQueryLimit caps the page size requested from the ownership ledger.
	TokenQueryLimit = 30

	// InitialTokenID is the cursor token id before the first mint.
	InitialTokenID = "0"

	// DefaultRound is the whitelist round a fresh candy machine starts in.
	DefaultRound = uint64(1)
)

var (
	ConfigKey       = collections.NewPrefix(1) // key prefix for the candy machine config
	InventoryKey    = collections.NewPrefix(2) // key prefix for the remaining inventory buckets
	WhitelistPrefix = collections.NewPrefix(3) // key prefix for (address, round) => WhitelistEntry
	CursorKey       = collections.NewPrefix(4) // key prefix for the last mint cursor
)
