//go:build ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"termlife/internal/app"
	"termlife/internal/cli"
	"termlife/internal/config"
	"termlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cmd := cli.Root("life-gui", "Game of Life simulation in a window", runWindow, (*config.Config).BindGUI)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runWindow(ctx context.Context, cfg *config.Config, d *app.Driver, _ io.Writer) error {
	if cfg.Size <= 0 {
		return fmt.Errorf("the window needs a positive --size, got %d", cfg.Size)
	}

	ebiten.SetWindowTitle("life")
	ebiten.SetWindowSize(cfg.Size*cfg.Scale, cfg.Size*cfg.Scale+ui.PanelHeight)

	game := app.NewGame(d, cfg.Interval(), cfg.Scale)
	go func() {
		<-ctx.Done()
		game.Stop()
	}()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
