// Package config holds the simulation parameters and resolves them from
// defaults, an optional YAML file, environment variables and flags.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"termlife/internal/logging"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// MaxInitNeighbors is the exclusive upper bound for InitNeighbors.
const MaxInitNeighbors = 4

// Config contains every tunable of a run. Values are fixed once the
// simulation starts.
type Config struct {
	// Size is the side length of the square grid.
	Size int `yaml:"size"`

	// InitLives is the number of random points placed by each seeding.
	InitLives int `yaml:"init_lives"`

	// InitNeighbors is how many compass neighbours of each seed point are
	// also lit. Range: [0, 4).
	InitNeighbors int `yaml:"init_neighbors"`

	// GenerationsTillReset forces a reseed once a run reaches this generation.
	GenerationsTillReset int `yaml:"generations_till_reset"`

	// MaxDeadGenerations is how many empty or unchanged generations are
	// tolerated before reseeding.
	MaxDeadGenerations int `yaml:"max_dead_generations"`

	// RefreshRate is the pause between generations in milliseconds.
	RefreshRate int `yaml:"refresh_rate"`

	// Seed feeds the random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Scale is the pixel size of a cell in the windowed front end.
	Scale int `yaml:"scale"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Size:                 60,
		InitLives:            35,
		InitNeighbors:        2,
		GenerationsTillReset: 150,
		MaxDeadGenerations:   10,
		RefreshRate:          125,
		LogLevel:             logging.DefaultLevel,
		Scale:                8,
	}
}

// Interval returns RefreshRate as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.RefreshRate) * time.Millisecond
}

// MaxPopulation returns the number of cells on the grid.
func (c *Config) MaxPopulation() int { return c.Size * c.Size }

// Bind attaches the simulation parameters to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVarP(&c.Size, "size", "s", c.Size, "grid side length")
	fs.IntVar(&c.InitLives, "init-lives", c.InitLives, "number of random points per seeding")
	fs.IntVar(&c.InitNeighbors, "init-neighbors", c.InitNeighbors, "neighbours lit around each seed point, in [0,4)")
	fs.IntVarP(&c.GenerationsTillReset, "generations-till-reset", "g", c.GenerationsTillReset, "reseed after this many generations")
	fs.IntVarP(&c.MaxDeadGenerations, "max-dead-generations", "m", c.MaxDeadGenerations, "reseed after this many empty or unchanged generations")
	fs.IntVarP(&c.RefreshRate, "refresh-rate", "r", c.RefreshRate, "milliseconds between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 seeds from the clock)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// LoadFromFile reads a YAML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	c := Default()
	if err := c.mergeFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Resolve layers the YAML file at path (if any) and the environment over c,
// then re-applies every flag explicitly set on fs so flags win. The result
// is validated.
func (c *Config) Resolve(path string, fs *pflag.FlagSet) error {
	changed := make(map[string]string)
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			changed[f.Name] = f.Value.String()
		})
	}

	if path != "" {
		if err := c.mergeFile(path); err != nil {
			return err
		}
	}
	applyEnvOverrides(c)

	for name, value := range changed {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapplying --%s: %w", name, err)
		}
	}
	return c.Validate()
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.InitNeighbors < 0 || c.InitNeighbors >= MaxInitNeighbors {
		return fmt.Errorf("init-neighbors must be in [0, %d), got %d", MaxInitNeighbors, c.InitNeighbors)
	}
	if c.InitLives < 0 {
		return fmt.Errorf("init-lives must be non-negative, got %d", c.InitLives)
	}
	if c.GenerationsTillReset < 0 {
		return fmt.Errorf("generations-till-reset must be non-negative, got %d", c.GenerationsTillReset)
	}
	if c.MaxDeadGenerations < 0 {
		return fmt.Errorf("max-dead-generations must be non-negative, got %d", c.MaxDeadGenerations)
	}
	if c.RefreshRate < 0 {
		return fmt.Errorf("refresh-rate must be non-negative, got %d", c.RefreshRate)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies LIFE_* environment variables. Unparseable
// numbers are ignored.
func applyEnvOverrides(c *Config) {
	ints := map[string]*int{
		"LIFE_SIZE":                   &c.Size,
		"LIFE_INIT_LIVES":             &c.InitLives,
		"LIFE_INIT_NEIGHBORS":         &c.InitNeighbors,
		"LIFE_GENERATIONS_TILL_RESET": &c.GenerationsTillReset,
		"LIFE_MAX_DEAD_GENERATIONS":   &c.MaxDeadGenerations,
		"LIFE_REFRESH_RATE":           &c.RefreshRate,
		"LIFE_SCALE":                  &c.Scale,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	if v := os.Getenv("LIFE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv("LIFE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// BindGUI attaches the windowed front end's flags.
func (c *Config) BindGUI(fs *pflag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
}
