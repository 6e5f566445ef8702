package bindings

// CandyMachineQuery is the custom query a contract sends to read the candy
// machine. Exactly one field is set.
type CandyMachineQuery struct {
	Config           *struct{}              `json:"config,omitempty"`
	WhitelistSingle  *WhitelistSingleQuery  `json:"whitelist_single,omitempty"`
	WhitelistAddress *WhitelistAddressQuery `json:"whitelist_address,omitempty"`
	Seed             *struct{}              `json:"seed,omitempty"`
}

// WhitelistSingleQuery looks an address up in the current round.
type WhitelistSingleQuery struct {
	Addr string `json:"addr"`
}

// WhitelistAddressQuery looks an address up in an explicit round.
type WhitelistAddressQuery struct {
	Addr  string `json:"addr"`
	Round uint64 `json:"round"`
}
