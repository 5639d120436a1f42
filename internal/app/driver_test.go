package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"termlife/internal/config"
	"termlife/internal/core"
	"termlife/internal/render"
	rng "termlife/pkg/core"
)

func testConfig(size, lives, maxDead, tillReset int) *config.Config {
	c := config.Default()
	c.Size = size
	c.InitLives = lives
	c.MaxDeadGenerations = maxDead
	c.GenerationsTillReset = tillReset
	return c
}

func TestNewDriverSeeds(t *testing.T) {
	d := NewDriver(testConfig(60, 35, 10, 150), rng.NewRNG(5), nil)
	st := d.Status()
	if st.Runs != 1 || st.Generation != 0 || st.DeadGenerations != 0 {
		t.Fatalf("unexpected initial status %+v", st)
	}
	if st.MaxPopulation != 3600 {
		t.Fatalf("MaxPopulation = %d, want 3600", st.MaxPopulation)
	}
	if d.Grid().NumLive() == 0 {
		t.Fatal("expected seeded cells")
	}
}

func TestStagnationResetIsDelayedOneTick(t *testing.T) {
	// No lives: every generation is empty.
	d := NewDriver(testConfig(5, 0, 2, 150), rng.NewRNG(1), nil)

	for tick := 1; tick <= 3; tick++ {
		d.Advance()
		if d.Evaluate() {
			t.Fatalf("reset at tick %d, expected none yet", tick)
		}
		if got := d.Status().DeadGenerations; got != tick {
			t.Fatalf("tick %d: DeadGenerations = %d", tick, got)
		}
	}

	d.Advance()
	if !d.Evaluate() {
		t.Fatal("expected reset on tick 4")
	}
	st := d.Status()
	if st.Runs != 2 || st.Generation != 0 {
		t.Fatalf("unexpected status after reset %+v", st)
	}
	if st.DeadGenerations != 1 {
		t.Fatalf("DeadGenerations = %d after reset, want 1", st.DeadGenerations)
	}
}

func TestUnchangedPopulationCountsAsDead(t *testing.T) {
	d := NewDriver(testConfig(6, 0, 0, 150), rng.NewRNG(1), nil)
	d.Grid().Place(core.Point{X: 2, Y: 2}, core.Point{X: 3, Y: 2}, core.Point{X: 2, Y: 3}, core.Point{X: 3, Y: 3})

	// Population 4 differs from the initial 0.
	d.Advance()
	if d.Evaluate() || d.Status().DeadGenerations != 0 {
		t.Fatalf("first tick should not count as dead: %+v", d.Status())
	}

	d.Advance()
	if d.Evaluate() || d.Status().DeadGenerations != 1 {
		t.Fatalf("second tick should count as dead: %+v", d.Status())
	}

	d.Advance()
	if !d.Evaluate() {
		t.Fatal("expected stagnation reset on third tick")
	}
	if d.Grid().Tracked() != 0 {
		t.Fatalf("reset should clear the block, %d cells tracked", d.Grid().Tracked())
	}
}

func TestGenerationLimitReset(t *testing.T) {
	d := NewDriver(testConfig(5, 0, 100, 3), rng.NewRNG(1), nil)
	d.Grid().Place(core.Point{X: 1, Y: 1})

	for tick := 1; tick <= 2; tick++ {
		d.Advance()
		if d.Evaluate() {
			t.Fatalf("unexpected reset at tick %d", tick)
		}
	}
	d.Advance()
	if !d.Evaluate() {
		t.Fatal("expected reset at generation 3")
	}
	st := d.Status()
	if st.Runs != 2 || st.Generation != 0 || st.DeadGenerations != 0 {
		t.Fatalf("unexpected status after reset %+v", st)
	}
}

func TestManualResetReseeds(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := NewDriver(testConfig(30, 10, 10, 150), rng.NewRNG(9), logger)
	d.Advance()
	d.Reset()

	st := d.Status()
	if st.Runs != 2 || st.Generation != 0 {
		t.Fatalf("unexpected status after reset %+v", st)
	}
	if d.Grid().NumLive() == 0 {
		t.Fatal("expected reseeded cells")
	}
	if !strings.Contains(logs.String(), "reason=manual") {
		t.Fatalf("expected reset to be logged, got %q", logs.String())
	}
}

func TestTerminalRun(t *testing.T) {
	d := NewDriver(testConfig(4, 0, 10, 150), rng.NewRNG(1), nil)
	var out bytes.Buffer
	term := NewTerminal(d, &out, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sleeps := 0
	term.sleep = func(ctx context.Context, _ time.Duration) error {
		sleeps++
		if sleeps == 3 {
			cancel()
		}
		return ctx.Err()
	}

	if err := term.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if n := strings.Count(got, render.ClearScreen); n != 3 {
		t.Fatalf("got %d frames, want 3", n)
	}
	if !strings.HasPrefix(got, ". . . .\n") {
		t.Fatalf("expected the seeded grid before the first frame, got %q", got[:20])
	}
	if !strings.HasSuffix(got, "Runs: 1\nGeneration: 3\nTotal population: 0/16\n") {
		t.Fatalf("unexpected final status in %q", got)
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminalRunWriteError(t *testing.T) {
	d := NewDriver(testConfig(4, 0, 10, 150), rng.NewRNG(1), nil)
	term := NewTerminal(d, errWriter{}, 0)
	if err := term.Run(context.Background()); err == nil {
		t.Fatal("expected write error")
	}
}
