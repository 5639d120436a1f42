// Package cli builds the cobra command shared by the terminal and windowed
// front ends: flag binding, config resolution, logging and signal handling.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"termlife/internal/app"
	"termlife/internal/config"
	"termlife/internal/logging"
	rng "termlife/pkg/core"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is reported by --version.
var Version = "0.1.0-dev"

// RunFunc runs a seeded driver until ctx is cancelled.
type RunFunc func(ctx context.Context, cfg *config.Config, d *app.Driver, out io.Writer) error

// Root returns a command that resolves the configuration, seeds a Driver
// and hands it to run. extra binds front end specific flags.
func Root(use, short string, run RunFunc, extra ...func(*config.Config, *pflag.FlagSet)) *cobra.Command {
	cfg := config.Default()
	var configPath string

	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Version: Version,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Resolve(configPath, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("starting simulation",
				slog.Int("size", cfg.Size),
				slog.Int("init_lives", cfg.InitLives),
				slog.Int("init_neighbors", cfg.InitNeighbors),
				slog.Int64("seed", cfg.Seed))

			d := app.NewDriver(cfg, rng.NewRNG(cfg.Seed), logger)
			err := run(ctx, cfg, d, cmd.OutOrStdout())
			logger.Info("simulation stopped", "status", d.Status())
			return err
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	cfg.Bind(fs)
	for _, bind := range extra {
		bind(cfg, fs)
	}
	fs.StringVar(&configPath, "config", "", "YAML file with simulation parameters")
	return cmd
}
