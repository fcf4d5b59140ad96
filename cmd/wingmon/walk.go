package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/brindle/wingnrp"
)

func walkCmd() *cobra.Command {
	var addr string
	var rootID uint32

	cmd := &cobra.Command{
		Use:   "walk",
		Short: "Dump the parameter tree rooted at a node and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				return fmt.Errorf("--addr is required")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			conn, err := wingnrp.Connect(ctx, addr)
			if err != nil {
				return fmt.Errorf("connect %s: %w", addr, err)
			}
			defer conn.Close()

			defs, data, err := conn.WalkTree(ctx, wingnrp.NodeID(rootID))
			if err != nil {
				return fmt.Errorf("walk tree: %w", err)
			}

			for _, def := range defs {
				v, ok := data[def.ID]
				val := ""
				if ok {
					val = v.AsString()
				}
				fmt.Printf("%-10s %-24s %s\n", strconv.FormatUint(uint64(def.ID), 10), def.Name, val)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "device address")
	cmd.Flags().Uint32Var(&rootID, "root", 0, "node id to start the walk from (0 = tree root)")

	return cmd
}
