package types

const (
	// EventTypeMint is emitted when a token leaves the candy machine
	EventTypeMint = "mint"
	// EventTypeUpdateWhitelist is emitted when the owner upserts or delists an allowance
	EventTypeUpdateWhitelist = "update_whitelist"
	// EventTypeSetConfig is emitted when the owner changes the open/whitelist/round flags
	EventTypeSetConfig = "set_config"
	// EventTypeSetInventory is emitted when the owner replaces the inventory seed
	EventTypeSetInventory = "set_inventory"

	AttributeKeyAction    = "action"
	AttributeKeyID        = "id"
	AttributeKeyMinter    = "minter"
	AttributeKeyPrice     = "price"
	AttributeKeyAddress   = "address"
	AttributeKeyRound     = "round"
	AttributeKeyCount     = "count"
	AttributeKeyDelist    = "delist"
	AttributeKeyIsOpen    = "is_open"
	AttributeKeyWhitelist = "enable_whitelist"
	AttributeKeyBuckets   = "buckets"

	AttributeValueMint = "mint"

	MetricsKeyMint       = "mint"
	MetricsKeyMintFailed = "mint_failed"
	MetricsLabelCode     = "code"
)
