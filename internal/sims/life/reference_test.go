package life

import (
	"testing"

	"termlife/internal/core"
	rng "termlife/pkg/core"
)

// dense is a full-scan bounded Life used as an oracle for the sparse Grid.
type dense struct {
	n        int
	cur, nxt []uint8
}

func newDense(g *Grid) *dense {
	n := g.Size().W
	d := &dense{n: n, cur: make([]uint8, n*n), nxt: make([]uint8, n*n)}
	copy(d.cur, g.Cells())
	return d
}

func (d *dense) step() {
	n := d.n
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= n || ny < 0 || ny >= n {
						continue
					}
					neighbors += int(d.cur[ny*n+nx])
				}
			}
			idx := y*n + x
			alive := d.cur[idx] == 1
			d.nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				d.nxt[idx] = 1
			}
		}
	}
	d.cur, d.nxt = d.nxt, d.cur
}

func TestSparseMatchesDense(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rng.NewRNG(seed)
		g := New(24)
		// Place tracks neighbours, so the sparse grid sees every candidate birth.
		for i := 0; i < 120; i++ {
			g.Place(core.Point{X: r.IntN(24), Y: r.IntN(24)})
		}
		ref := newDense(g)

		for gen := 1; gen <= 40; gen++ {
			g.Next()
			ref.step()
			got := g.Cells()
			for i := range ref.cur {
				if got[i] != ref.cur[i] {
					t.Fatalf("seed %d generation %d: cell (%d,%d) sparse=%d dense=%d",
						seed, gen, i%24, i/24, got[i], ref.cur[i])
				}
			}
		}
	}
}
