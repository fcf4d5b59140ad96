package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brindle/wingnrp/internal/logging"
)

func main() {
	logging.ConfigureRuntime()

	rootCmd := &cobra.Command{
		Use:           "wingmon",
		Short:         "Connect to a console and stream its parameter-tree events",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		walkCmd(),
		configCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wingmon: %s\n", err)
		os.Exit(1)
	}
}
