package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Scenario describes the candy machine a simulation starts from.
type Scenario struct {
	// Seed feeds the generator of the simulated addresses.
	Seed int64 `yaml:"seed"`
	// Price is a single coin such as "1000ufrac". Empty means free.
	Price       string            `yaml:"price"`
	ProtocolFee string            `yaml:"protocol_fee"`
	Minters     int               `yaml:"minters"`
	Whitelist   WhitelistScenario `yaml:"whitelist"`
	Buckets     []Bucket          `yaml:"buckets"`
}

// WhitelistScenario grants every minter the same allowance in Round.
type WhitelistScenario struct {
	Enabled   bool   `yaml:"enabled"`
	Round     uint64 `yaml:"round"`
	Allowance uint64 `yaml:"allowance"`
}

type Bucket struct {
	Prefix string `yaml:"prefix"`
	Count  uint64 `yaml:"count"`
}

// LoadScenario reads a YAML scenario file and fills in defaults.
func LoadScenario(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}
	if s.ProtocolFee == "" {
		s.ProtocolFee = "0"
	}
	if s.Minters <= 0 {
		s.Minters = 1
	}
	if s.Whitelist.Round == 0 {
		s.Whitelist.Round = 1
	}
	if len(s.Buckets) == 0 {
		return nil, fmt.Errorf("scenario %s has no buckets", path)
	}
	return &s, nil
}
