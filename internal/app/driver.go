package app

import (
	"log/slog"

	"termlife/internal/config"
	"termlife/internal/core"
	"termlife/internal/logging"
	"termlife/internal/sims/life"
	rng "termlife/pkg/core"
)

// Driver owns the grid, the run counters and the reset policy.
type Driver struct {
	grid *life.Grid
	src  rng.Source
	log  *slog.Logger

	initLives            int
	initNeighbors        int
	generationsTillReset int
	maxDeadGenerations   int
	maxPopulation        int

	runs            int
	generation      int
	population      int
	prevPopulation  int
	deadGenerations int
}

// NewDriver builds a grid from cfg and seeds the first run.
func NewDriver(cfg *config.Config, src rng.Source, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = logging.Discard()
	}
	d := &Driver{
		grid:                 life.New(cfg.Size),
		src:                  src,
		log:                  logger,
		initLives:            cfg.InitLives,
		initNeighbors:        cfg.InitNeighbors,
		generationsTillReset: cfg.GenerationsTillReset,
		maxDeadGenerations:   cfg.MaxDeadGenerations,
		maxPopulation:        cfg.MaxPopulation(),
		runs:                 1,
	}
	d.grid.Seed(d.src, d.initLives, d.initNeighbors)
	d.population = d.grid.NumLive()
	return d
}

// Grid returns the simulated grid.
func (d *Driver) Grid() *life.Grid { return d.grid }

// Advance steps the grid one generation and returns the new counters.
func (d *Driver) Advance() core.Status {
	d.generation++
	d.grid.Next()
	d.population = d.grid.NumLive()
	return d.Status()
}

// Evaluate applies the reset rules to the population from the last Advance.
// The dead-generation counter is bumped after its threshold check, so a
// stagnant run resets one tick past MaxDeadGenerations and leaves the
// counter at 1. It reports whether a reset happened.
func (d *Driver) Evaluate() bool {
	reset := false
	if d.population == 0 || d.population == d.prevPopulation {
		if d.deadGenerations > d.maxDeadGenerations {
			d.reset("stagnation")
			reset = true
		}
		d.deadGenerations++
	}

	if d.generation == d.generationsTillReset {
		d.reset("generation limit")
		reset = true
	}

	d.prevPopulation = d.population
	return reset
}

// Reset starts a new run immediately.
func (d *Driver) Reset() { d.reset("manual") }

// Status returns the current counters.
func (d *Driver) Status() core.Status {
	return core.Status{
		Runs:            d.runs,
		Generation:      d.generation,
		Population:      d.population,
		MaxPopulation:   d.maxPopulation,
		DeadGenerations: d.deadGenerations,
	}
}

// reset clears the grid before seeding so every run starts from fresh state.
func (d *Driver) reset(reason string) {
	d.log.Debug("reseeding grid",
		"reason", reason,
		"run", d.runs,
		"generation", d.generation,
		"population", d.population)

	d.runs++
	d.generation = 0
	d.deadGenerations = 0
	d.grid.Clear()
	d.grid.Seed(d.src, d.initLives, d.initNeighbors)
}
