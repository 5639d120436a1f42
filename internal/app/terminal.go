package app

import (
	"context"
	"errors"
	"io"
	"time"

	"termlife/internal/core"
	"termlife/internal/render"
)

// Terminal runs a Driver against a text stream, redrawing every tick.
type Terminal struct {
	d        *Driver
	out      io.Writer
	interval time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewTerminal returns a Terminal that pauses interval between generations.
func NewTerminal(d *Driver, out io.Writer, interval time.Duration) *Terminal {
	return &Terminal{d: d, out: out, interval: interval, sleep: core.Sleep}
}

// Run prints the seeded grid, then advances, redraws, applies the reset
// rules and sleeps until ctx is cancelled. Cancellation is a clean exit;
// write errors are returned.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.d.Grid().Print(t.out); err != nil {
		return err
	}
	for ctx.Err() == nil {
		st := t.d.Advance()
		if err := render.Frame(t.out, t.d.Grid(), st); err != nil {
			return err
		}
		t.d.Evaluate()

		if err := t.sleep(ctx, t.interval); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
	return nil
}
