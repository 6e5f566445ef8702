package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override flags, e.g.
// CANDYSIM_MINTS for --mints.
const EnvPrefix = "CANDYSIM"

// NewRootCmd creates the candysim command tree.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:          "candysim",
		Short:        "Simulate candy machine mints against an in-memory chain state",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(cmd, v)
		},
	}

	rootCmd.AddCommand(
		RunCmd(v),
		SplitCmd(v),
	)

	return rootCmd
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(cmd.Flags())
}
