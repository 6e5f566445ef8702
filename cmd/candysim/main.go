package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/fractalnft/candymachine/cmd/candysim/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		log.NewLogger(rootCmd.OutOrStderr()).Error("failure when running candysim", "err", err)
		os.Exit(1)
	}
}
