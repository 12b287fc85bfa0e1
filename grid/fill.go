package grid

import (
	"github.com/exascience/pargo/parallel"
)

// FillInterior sets every interior cell (i,j), 1 ≤ i ≤ N, 1 ≤ j ≤ M, to
// fn(i,j). Rows are processed in parallel; fn must therefore be safe for
// concurrent calls with distinct (i,j). The border is never touched.
// Complexity: O(N×M) work split across GOMAXPROCS goroutines.
func (g *Grid) FillInterior(fn func(i, j int) float64) {
	parallel.Range(1, g.n+1, 0, func(low, high int) {
		for i := low; i < high; i++ {
			row := g.Row(i)
			for j := 1; j <= g.m; j++ {
				row[j] = fn(i, j)
			}
		}
	})
}

// ConstantSource builds the right-hand side of the discretized Poisson
// equation for a constant source term f on a mesh of spacing h: every
// interior cell holds h²·f, the border stays zero.
// Returns ErrBadDims if n or m is smaller than 1.
func ConstantSource(n, m int, h, f float64) (*Grid, error) {
	b, err := New(n, m)
	if err != nil {
		return nil, err
	}
	hhf := h * h * f
	b.FillInterior(func(_, _ int) float64 { return hhf })

	return b, nil
}
