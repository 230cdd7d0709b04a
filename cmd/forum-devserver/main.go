// Command forum-devserver runs an in-memory stand-in for the forum API,
// for local development of the terminal client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/itchan-dev/forum/internal/devserver"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		users      []string
	)

	cmd := &cobra.Command{
		Use:          "forum-devserver",
		Short:        "In-memory forum API for local development",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyEnv(); err != nil {
				return err
			}
			logger.Initialize(cfg.Log.Level, cfg.Log.JSON, os.Stdout)

			if cmd.Flags().Changed("addr") {
				cfg.DevServer.Addr = addr
			}
			if cmd.Flags().Changed("users") {
				cfg.DevServer.Users = users
			}

			srv := devserver.New(cfg.DevServer.Addr, cfg.DevServer.AllowedOrigins, cfg.DevServer.Users...)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "forum.yaml", "Path to yaml config (optional)")
	cmd.Flags().StringVar(&addr, "addr", config.DefaultDevAddr, "Listen address")
	cmd.Flags().StringSliceVar(&users, "users", nil, "Comma-separated usernames to seed")

	return cmd
}
