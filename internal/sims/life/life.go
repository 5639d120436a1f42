// Package life implements Conway's Game of Life on a bounded square grid
// using a sparse map of live cells and the dead cells next to them.
package life

import (
	"io"
	"strings"

	"termlife/internal/core"
	rng "termlife/pkg/core"
)

const (
	// maxSeedNeighbors caps how many compass neighbours each seed point lights up.
	maxSeedNeighbors = 4

	windowMin = 4
	windowMax = 12
)

// Grid holds the tracked cells of an N×N board. Only live cells and dead
// cells adjacent to a live cell are present; everything else is dead.
type Grid struct {
	size  core.Size
	cells map[core.Point]bool
	dense *core.ByteGrid
}

// New returns an empty grid with the given side length.
func New(size int) *Grid {
	return &Grid{
		size:  core.Size{W: size, H: size},
		cells: make(map[core.Point]bool),
	}
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Printable reports whether p lies inside the visible grid.
func (g *Grid) Printable(p core.Point) bool { return g.size.Contains(p) }

// Seed scatters numLive random points plus up to initNeighbors of each
// point's compass neighbours, all marked alive. Points are kept away from the
// border by a random window divisor. Existing entries are never overwritten
// or removed.
func (g *Grid) Seed(src rng.Source, numLive, initNeighbors int) {
	window, _ := rng.Range(src, windowMin, windowMax)
	lo := g.size.W / window
	hi := g.size.W - lo
	if hi <= lo {
		return
	}
	if initNeighbors > maxSeedNeighbors {
		initNeighbors = maxSeedNeighbors
	}

	for i := 0; i < numLive; i++ {
		x, _ := rng.Range(src, lo, hi)
		y, _ := rng.Range(src, lo, hi)
		p := core.Point{X: x, Y: y}
		g.insert(g.cells, p, true)
		for _, n := range p.Neighbors(initNeighbors) {
			g.insert(g.cells, n, true)
		}
	}
}

// Next advances the grid by one generation. Only tracked cells are
// evaluated; the result is a fresh map that replaces the current one.
func (g *Grid) Next() {
	next := make(map[core.Point]bool, len(g.cells))
	for p, alive := range g.cells {
		n := g.liveNeighbors(p)
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			g.spawn(next, p)
		}
	}
	g.cells = next
}

// NumLive returns the number of live cells.
func (g *Grid) NumLive() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// Alive reports whether p is a live cell. Untracked cells are dead.
func (g *Grid) Alive(p core.Point) bool { return g.cells[p] }

// Tracked returns the number of tracked cells, live or dead.
func (g *Grid) Tracked() int { return len(g.cells) }

// Each calls fn for every tracked cell in unspecified order.
func (g *Grid) Each(fn func(p core.Point, alive bool)) {
	for p, alive := range g.cells {
		fn(p, alive)
	}
}

// Clear drops every tracked cell.
func (g *Grid) Clear() {
	g.cells = make(map[core.Point]bool)
}

// Set tracks p with the given state, overwriting any existing entry.
// Points outside the grid are ignored.
func (g *Grid) Set(p core.Point, alive bool) {
	if !g.Printable(p) {
		return
	}
	g.cells[p] = alive
}

// Place marks each point alive and tracks its neighbours, the same way a
// birth does during Next.
func (g *Grid) Place(points ...core.Point) {
	for _, p := range points {
		g.spawn(g.cells, p)
	}
}

// Print writes the full grid, one row per line, alive as '#' and dead as '.'.
func (g *Grid) Print(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// String renders the grid the same way Print does.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.size.H; y++ {
		for x := 0; x < g.size.W; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			if g.cells[core.Point{X: x, Y: y}] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Cells returns a dense row-major snapshot with 1 for live cells. The slice
// is reused across calls.
func (g *Grid) Cells() []uint8 {
	if g.dense == nil {
		g.dense = core.NewByteGrid(g.size.W, g.size.H)
	}
	g.dense.Clear()
	for p, alive := range g.cells {
		if alive {
			g.dense.Set(p, 1)
		}
	}
	return g.dense.Cells()
}

func (g *Grid) liveNeighbors(p core.Point) int {
	n := 0
	for _, d := range core.Compass {
		if g.cells[p.Add(d)] {
			n++
		}
	}
	return n
}

// spawn marks p alive in m and tracks its printable neighbours as dead
// placeholders unless they are already present.
func (g *Grid) spawn(m map[core.Point]bool, p core.Point) {
	if !g.Printable(p) {
		return
	}
	m[p] = true
	for _, d := range core.Compass {
		g.insert(m, p.Add(d), false)
	}
}

// insert adds p to m only if it is printable and absent.
func (g *Grid) insert(m map[core.Point]bool, p core.Point, alive bool) {
	if !g.Printable(p) {
		return
	}
	if _, ok := m[p]; ok {
		return
	}
	m[p] = alive
}
