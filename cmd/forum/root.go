package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/itchan-dev/forum/internal/controller"
	"github.com/itchan-dev/forum/internal/gateway"
	"github.com/itchan-dev/forum/internal/poller"
	"github.com/itchan-dev/forum/internal/state"
	"github.com/itchan-dev/forum/internal/tui"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	apiURL     string
	logFile    string
	logLevel   string
	insecure   bool
	poll       time.Duration
}

func newRootCmd(opts *options) *cobra.Command {

	cmd := &cobra.Command{
		Use:          "forum",
		Short:        "Terminal client for the forum service",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Connect to the default service
  forum

  # Connect to a development service
  forum --api-url http://localhost:7777/api
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", envOr("FORUM_CONFIG", "forum.yaml"), "Path to yaml config (optional)")
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "Base URL of the forum API")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "File to write logs to")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	cmd.Flags().BoolVar(&opts.insecure, "insecure", false, "Accept self-signed TLS certificates")
	cmd.Flags().DurationVar(&opts.poll, "poll-interval", config.DefaultPollInterval, "Thread list refresh interval")

	return cmd
}

// loadConfig layers defaults, the yaml file, FORUM_* env vars and flags.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = opts.apiURL
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("insecure") {
		cfg.API.InsecureSkipVerify = opts.insecure
	}
	if flags.Changed("poll-interval") {
		if opts.poll <= 0 {
			return nil, fmt.Errorf("--poll-interval must be positive, got %s", opts.poll)
		}
		cfg.Poll = opts.poll
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logFile, err := logger.InitializeFile(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File)
	if err != nil {
		return err
	}
	defer logFile.Close()

	client := gateway.New(cfg.API.BaseURL)
	client.Timeout = cfg.API.Timeout
	if cfg.API.InsecureSkipVerify {
		client.Insecure()
	}

	app := state.NewApp()
	ctrl := controller.New(client, app, cfg.ThreadIcon)
	sched := poller.New(ctrl, app.Session, cfg.Poll)

	logger.Log.Info("starting forum client", "api", cfg.API.BaseURL, "poll_interval", cfg.Poll)
	return tui.Run(ctx, ctrl, sched)
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
