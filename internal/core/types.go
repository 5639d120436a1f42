package core

// Point is a signed cell coordinate. It is comparable and used as a map key.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Compass lists the eight neighbour offsets clockwise from east with y
// growing downwards: E, NE, N, NW, W, SW, S, SE.
var Compass = [8]Point{
	{X: 1, Y: 0},
	{X: 1, Y: -1},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Neighbors returns the first n compass neighbours of p. n is clamped to [0, 8].
func (p Point) Neighbors(n int) []Point {
	if n > len(Compass) {
		n = len(Compass)
	}
	if n < 0 {
		n = 0
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = p.Add(Compass[i])
	}
	return out
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether p lies in [0,W) x [0,H).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Area returns W*H.
func (s Size) Area() int { return s.W * s.H }

// Status is a snapshot of the driver counters after a tick.
type Status struct {
	Runs            int
	Generation      int
	Population      int
	MaxPopulation   int
	DeadGenerations int
}
