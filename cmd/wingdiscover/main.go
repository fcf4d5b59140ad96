package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/brindle/wingnrp"
	"github.com/brindle/wingnrp/internal/logging"
)

func main() {
	logging.ConfigureRuntime()

	var stopOnFirst bool

	cmd := &cobra.Command{
		Use:   "wingdiscover",
		Short: "Broadcast a discovery probe and list responding devices",
		Long: `wingdiscover sends a single UDP "WING?" broadcast on port 2222 and
prints every device that answers before the ~5s scan deadline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
			defer cancel()

			devices, err := wingnrp.Discover(ctx, stopOnFirst)
			if err != nil {
				return fmt.Errorf("discover: %w", err)
			}
			if len(devices) == 0 {
				fmt.Println("no devices responded")
				return nil
			}
			for _, d := range devices {
				fmt.Printf("%-16s %-20s %-12s %-12s %s\n", d.IP, d.Name, d.Model, d.Serial, d.Firmware)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stopOnFirst, "stop-on-first", false, "stop scanning after the first response")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wingdiscover: %s\n", err)
		os.Exit(1)
	}
}
