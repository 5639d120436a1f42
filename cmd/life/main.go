// Command life runs Conway's Game of Life in the terminal, reseeding the
// grid whenever the population dies out, stagnates or hits the generation
// limit.
package main

import (
	"context"
	"io"
	"os"

	"termlife/internal/app"
	"termlife/internal/cli"
	"termlife/internal/config"
)

func main() {
	cmd := cli.Root("life", "Game of Life simulation in the terminal", runTerminal)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runTerminal(ctx context.Context, cfg *config.Config, d *app.Driver, out io.Writer) error {
	return app.NewTerminal(d, out, cfg.Interval()).Run(ctx)
}
