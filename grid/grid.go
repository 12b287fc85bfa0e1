package grid

import "math"

// Grid is a 2D scalar field of n×m interior unknowns surrounded by a
// one-cell border on every side. Values are stored row-major in a flat
// buffer of length (n+2)·(m+2); the border holds the fixed boundary
// condition and is zero unless written explicitly via Set.
type Grid struct {
	n, m int // interior dimensions
	ld   int // leading dimension: m+2
	data []float64
}

// New allocates a zero-filled Grid with n×m interior points.
// Returns ErrBadDims if n or m is smaller than 1.
// Complexity: O(n×m) time and memory.
func New(n, m int) (*Grid, error) {
	if n < 1 || m < 1 {
		return nil, ErrBadDims
	}

	return &Grid{
		n:    n,
		m:    m,
		ld:   m + 2,
		data: make([]float64, (n+2)*(m+2)),
	}, nil
}

// N returns the number of interior rows.
func (g *Grid) N() int { return g.n }

// M returns the number of interior columns.
func (g *Grid) M() int { return g.m }

// Ld returns the leading dimension of the flat buffer (M+2).
func (g *Grid) Ld() int { return g.ld }

// Index maps (i,j) to its row-major offset: i·(M+2)+j.
// Valid for 0 ≤ i ≤ N+1, 0 ≤ j ≤ M+1. Complexity: O(1).
func (g *Grid) Index(i, j int) int { return i*g.ld + j }

// At returns the value at (i,j), border cells included.
func (g *Grid) At(i, j int) float64 { return g.data[i*g.ld+j] }

// Set stores v at (i,j), border cells included.
func (g *Grid) Set(i, j int, v float64) { g.data[i*g.ld+j] = v }

// Row returns row i of the buffer as a mutable view, border columns
// included. The view aliases the Grid's storage. Complexity: O(1).
func (g *Grid) Row(i int) []float64 { return g.data[i*g.ld : (i+1)*g.ld] }

// Data returns the flat backing buffer. The slice aliases the Grid's
// storage; callers must preserve the border invariant when writing.
func (g *Grid) Data() []float64 { return g.data }

// SameShape reports whether g and o have identical dimensions.
func (g *Grid) SameShape(o *Grid) bool { return o != nil && g.n == o.n && g.m == o.m }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{n: g.n, m: g.m, ld: g.ld, data: make([]float64, len(g.data))}
	copy(c.data, g.data)

	return c
}

// InteriorEqual reports whether every interior value of g and o agrees
// within absolute tolerance tol. Returns false on shape mismatch.
// Complexity: O(N×M).
func (g *Grid) InteriorEqual(o *Grid, tol float64) bool {
	if !g.SameShape(o) {
		return false
	}
	for i := 1; i <= g.n; i++ {
		gr, or := g.Row(i), o.Row(i)
		for j := 1; j <= g.m; j++ {
			if math.Abs(gr[j]-or[j]) > tol {
				return false
			}
		}
	}

	return true
}
