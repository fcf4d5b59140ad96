package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brindle/wingnrp"
	"github.com/brindle/wingnrp/internal/config"
)

func runCmd() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Connect to a console and stream its events until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConnectionConfig(configPath, addr)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			keepAlive, err := cfg.KeepAlive()
			if err != nil {
				return err
			}

			conn, err := wingnrp.Connect(ctx, cfg.DeviceAddr,
				wingnrp.WithKeepAlivePeriod(keepAlive),
				wingnrp.WithReceiveBufferSize(cfg.ReceiveBufferSize),
				wingnrp.WithEventSink(logSink{}),
			)
			if err != nil {
				return fmt.Errorf("connect %s: %w", cfg.DeviceAddr, err)
			}
			defer conn.Close()

			log.Info().Str("addr", cfg.DeviceAddr).Msg("connected")
			return conn.Read(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a connection config TOML file")
	cmd.Flags().StringVar(&addr, "addr", "", "device address, overrides the config file")

	return cmd
}

func resolveConnectionConfig(configPath, addrOverride string) (config.ConnectionConfig, error) {
	var cfg config.ConnectionConfig
	var err error
	if configPath != "" {
		cfg, err = config.LoadConnectionConfig(configPath)
		if err != nil {
			return config.ConnectionConfig{}, err
		}
	}
	if addrOverride != "" {
		cfg.DeviceAddr = addrOverride
	}
	if cfg.ReceiveBufferSize == 0 {
		cfg.ReceiveBufferSize = 2048
	}
	if err := config.ValidateConnectionConfig(cfg); err != nil {
		return config.ConnectionConfig{}, err
	}
	return cfg, nil
}
