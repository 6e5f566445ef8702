package cmd

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	appparams "github.com/fractalnft/candymachine/app/params"
	"github.com/fractalnft/candymachine/x/candymachine/keeper"
	"github.com/fractalnft/candymachine/x/candymachine/ledger"
	"github.com/fractalnft/candymachine/x/candymachine/types"
)

const (
	flagScenario  = "scenario"
	flagMints     = "mints"
	flagWorkers   = "workers"
	flagBlockSize = "block-size"
	flagDB        = "db"
	flagQuiet     = "quiet"
)

// knownFailures are reported by their description; anything else by its
// codespace and code.
var knownFailures = []error{
	types.ErrNotWhitelisted,
	types.ErrMintingClosed,
	types.ErrInsufficientPayment,
	types.ErrNoInventoryRemaining,
	types.ErrTokenNotHeld,
}

// Report is the outcome of a simulation run.
type Report struct {
	Mints     int            `yaml:"mints"`
	Minted    []string       `yaml:"minted"`
	Hits      map[string]int `yaml:"hits"`
	Failures  map[string]int `yaml:"failures"`
	Remaining []Bucket       `yaml:"remaining"`
	Creator   string         `yaml:"creator_balance"`
	Collector string         `yaml:"collector_balance"`
	LastMint  string         `yaml:"last_token_id"`
}

// RunOptions are the knobs of a run besides the scenario.
type RunOptions struct {
	Mints     int
	Workers   int
	BlockSize int
	DB        dbm.DB
	Logger    log.Logger
}

// RunCmd seeds a candy machine from a scenario file and mints concurrently.
func RunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Run concurrent mints against a scenario and print a YAML report",
		Example: "candysim run --scenario scenario.yaml --mints 100 --workers 8",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := LoadScenario(v.GetString(flagScenario))
			if err != nil {
				return err
			}

			opts := RunOptions{
				Mints:     v.GetInt(flagMints),
				Workers:   v.GetInt(flagWorkers),
				BlockSize: v.GetInt(flagBlockSize),
				Logger:    log.NewLogger(cmd.ErrOrStderr()),
			}
			if v.GetBool(flagQuiet) {
				opts.Logger = log.NewNopLogger()
			}
			if path := v.GetString(flagDB); path != "" {
				db, err := OpenDB(path)
				if err != nil {
					return err
				}
				defer db.Close()
				opts.DB = db
			}

			report, err := Simulate(scenario, opts)
			if err != nil {
				return err
			}
			bz, err := yaml.Marshal(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}

	cmd.Flags().String(flagScenario, "scenario.yaml", "Path to the YAML scenario")
	cmd.Flags().Int(flagMints, 10, "Number of mint attempts")
	cmd.Flags().Int(flagWorkers, 4, "Number of concurrent minting goroutines")
	cmd.Flags().Int(flagBlockSize, 10, "Mint attempts per simulated block")
	cmd.Flags().String(flagDB, "", "Persist the final state to a goleveldb directory ending with .db")
	cmd.Flags().Bool(flagQuiet, false, "Do not log individual mints")

	return cmd
}

// Simulate builds the candy machine of scenario and runs opts.Mints mint
// attempts across opts.Workers goroutines. Attempt i lands in block
// 1+i/BlockSize at transaction index i%BlockSize.
func Simulate(scenario *Scenario, opts RunOptions) (*Report, error) {
	if opts.Mints < 0 || opts.Workers <= 0 || opts.BlockSize <= 0 {
		return nil, fmt.Errorf("mints must be non-negative, workers and block size positive")
	}
	if opts.DB == nil {
		opts.DB = dbm.NewMemDB()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}

	l := ledger.NewMemory()
	c, err := newChain(opts.DB, opts.Logger, l)
	if err != nil {
		return nil, err
	}

	cfg, minters, err := seed(c, l, scenario, opts.Mints)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Mints:    opts.Mints,
		Minted:   []string{},
		Hits:     map[string]int{},
		Failures: map[string]int{},
	}
	var mu sync.Mutex

	msgServer := keeper.NewMsgServerImpl(*c.candy)
	funds := sdk.NewCoins()
	if !cfg.IsFree() {
		funds = sdk.NewCoins(cfg.MintPrice)
	}

	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i := 0; i < opts.Mints; i++ {
		height := c.ctx.BlockHeight() + int64(i/opts.BlockSize)
		ctx := c.blockContext(height, uint32(i%opts.BlockSize))
		minter := minters[i%len(minters)]

		g.Go(func() error {
			res, err := msgServer.Mint(ctx, &types.MsgMint{Sender: minter.String(), Funds: funds})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failures[failureKind(err)]++
				return nil
			}
			report.Minted = append(report.Minted, res.TokenID)
			report.Hits[types.TokenPrefix(res.TokenID)]++
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(report.Minted)

	if err := fillBalances(c, cfg, report); err != nil {
		return nil, err
	}
	c.commit()
	return report, nil
}

// seed stores the scenario's config, inventory and whitelist, hands the
// module account one token per inventory unit and funds the minters for
// every attempt they may make.
func seed(c *chain, l *ledger.Memory, scenario *Scenario, mints int) (types.Config, []sdk.AccAddress, error) {
	r := rand.New(rand.NewSource(scenario.Seed))
	newAddr := func() sdk.AccAddress {
		bz := make([]byte, 20)
		r.Read(bz)
		return sdk.AccAddress(bz)
	}

	inv := make(types.Inventory, 0, len(scenario.Buckets))
	for _, b := range scenario.Buckets {
		inv = append(inv, types.InventoryBucket{Prefix: b.Prefix, Count: b.Count})
	}

	cfg := types.DefaultConfig()
	cfg.Owner = newAddr().String()
	cfg.Creator = newAddr().String()
	cfg.Collector = newAddr().String()
	cfg.TokenContract = newAddr().String()
	cfg.IsOpen = true
	cfg.WhitelistEnabled = scenario.Whitelist.Enabled
	cfg.Round = scenario.Whitelist.Round
	cfg.TotalSupply = inv.Remaining()
	cfg.TotalTokenCount = inv.Remaining()

	fee, err := math.LegacyNewDecFromStr(scenario.ProtocolFee)
	if err != nil {
		return types.Config{}, nil, fmt.Errorf("invalid protocol fee: %w", err)
	}
	cfg.ProtocolFee = fee
	if scenario.Price != "" {
		price, err := sdk.ParseCoinNormalized(scenario.Price)
		if err != nil {
			return types.Config{}, nil, fmt.Errorf("invalid price: %w", err)
		}
		cfg.MintPrice = price
	}

	if err := c.candy.InitGenesis(c.ctx, types.GenesisState{
		Config:     cfg,
		Inventory:  inv,
		Whitelists: []types.WhitelistEntry{},
		Cursor:     types.InitialCursor(),
	}); err != nil {
		return types.Config{}, nil, err
	}

	moduleAddr := c.candy.ModuleAddress()
	for _, b := range inv {
		for n := uint64(0); n < b.Count; n++ {
			l.Mint(cfg.TokenContract, moduleAddr, fmt.Sprintf("%s%d", b.Prefix, n))
		}
	}

	minters := make([]sdk.AccAddress, scenario.Minters)
	perMinter := int64(mints/scenario.Minters + 1)
	for i := range minters {
		minters[i] = newAddr()
		if cfg.WhitelistEnabled {
			if err := c.candy.UpsertWhitelist(c.ctx, minters[i], cfg.Round, scenario.Whitelist.Allowance); err != nil {
				return types.Config{}, nil, err
			}
		}
		if cfg.IsFree() {
			continue
		}
		coins := sdk.NewCoins(sdk.NewCoin(cfg.MintPrice.Denom, cfg.MintPrice.Amount.MulRaw(perMinter)))
		if err := c.fund(minters[i], coins); err != nil {
			return types.Config{}, nil, err
		}
	}
	return cfg, minters, nil
}

func fillBalances(c *chain, cfg types.Config, report *Report) error {
	inv, err := c.candy.GetInventory(c.ctx)
	if err != nil {
		return err
	}
	report.Remaining = make([]Bucket, 0, len(inv))
	for _, b := range inv {
		report.Remaining = append(report.Remaining, Bucket{Prefix: b.Prefix, Count: b.Count})
	}

	cursor, err := c.candy.GetCursor(c.ctx)
	if err != nil {
		return err
	}
	report.LastMint = cursor.LastTokenID

	denom := cfg.MintPrice.Denom
	if denom == "" {
		denom = appparams.DefaultMintDenom
	}
	for _, acc := range []struct {
		addr string
		out  *string
	}{
		{cfg.Creator, &report.Creator},
		{cfg.Collector, &report.Collector},
	} {
		addr, err := sdk.AccAddressFromBech32(acc.addr)
		if err != nil {
			return err
		}
		*acc.out = c.bank.GetBalance(c.ctx, addr, denom).String()
	}
	return nil
}

func failureKind(err error) string {
	for _, known := range knownFailures {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	codespace, code, _ := errorsmod.ABCIInfo(err, false)
	return fmt.Sprintf("%s/%d", codespace, code)
}
