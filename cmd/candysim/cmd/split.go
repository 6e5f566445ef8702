package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/fractalnft/candymachine/x/candymachine/types"
)

const (
	flagFee    = "fee"
	flagAmount = "amount"
)

type splitResult struct {
	Amount   string `yaml:"amount"`
	Protocol string `yaml:"protocol"`
	Creator  string `yaml:"creator"`
}

// SplitCmd prints how a mint price is divided between collector and creator.
func SplitCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "split",
		Short:   "Print the protocol and creator shares of a mint price",
		Example: "candysim split --fee 0.1 --amount 1000",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fee, err := math.LegacyNewDecFromStr(v.GetString(flagFee))
			if err != nil {
				return fmt.Errorf("invalid --%s: %w", flagFee, err)
			}
			if fee.IsNegative() || fee.GT(math.LegacyOneDec()) {
				return fmt.Errorf("--%s %s must be in [0, 1]", flagFee, fee)
			}
			amount, ok := math.NewIntFromString(v.GetString(flagAmount))
			if !ok || amount.IsNegative() {
				return fmt.Errorf("invalid --%s %q", flagAmount, v.GetString(flagAmount))
			}

			protocol, creator := types.SplitFee(fee, amount)
			bz, err := yaml.Marshal(splitResult{
				Amount:   amount.String(),
				Protocol: protocol.String(),
				Creator:  creator.String(),
			})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(bz)
			return err
		},
	}

	cmd.Flags().String(flagFee, "0", "Protocol fee as a decimal fraction of the price")
	cmd.Flags().String(flagAmount, "0", "Mint price amount in base units")

	return cmd
}
