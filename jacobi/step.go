package jacobi

import "poissolve/grid"

// Step applies one Jacobi sweep over every interior point: for all
// 1 ≤ i ≤ N, 1 ≤ j ≤ M,
//
//	t(i,j) = (b(i,j) + x(i+1,j) + x(i-1,j) + x(i,j+1) + x(i,j-1)) / 4.
//
// Only the interior of t is written; its border must already hold the
// boundary condition. Every point update reads x and b only, so the result
// is independent of update order.
//
// Step panics if any grid is nil, if the three grids are not pairwise
// distinct, or if their shapes differ.
func Step(x, b, t *grid.Grid) {
	checkBuffers(x, b, t)
	stepRows(x, b, t, 1, x.N()+1)
}

// stepRows applies the sweep to rows lo ≤ i < hi. Bands are disjoint across
// workers, so concurrent calls on distinct bands need no synchronization.
func stepRows(x, b, t *grid.Grid, lo, hi int) {
	m := x.M()
	for i := lo; i < hi; i++ {
		up, dn := x.Row(i-1), x.Row(i+1)
		xr, br, tr := x.Row(i), b.Row(i), t.Row(i)
		for j := 1; j <= m; j++ {
			tr[j] = (br[j] + dn[j] + up[j] + xr[j+1] + xr[j-1]) / 4
		}
	}
}

// sumSquaredDiffRows accumulates Σ (x(i,j)-t(i,j))² over the interior of
// rows lo ≤ i < hi.
func sumSquaredDiffRows(x, t *grid.Grid, lo, hi int) float64 {
	m := x.M()
	s := 0.0
	for i := lo; i < hi; i++ {
		xr, tr := x.Row(i), t.Row(i)
		for j := 1; j <= m; j++ {
			d := xr[j] - tr[j]
			s += d * d
		}
	}

	return s
}

// commitRows copies the interior of rows lo ≤ i < hi from t into x.
func commitRows(x, t *grid.Grid, lo, hi int) {
	m := x.M()
	for i := lo; i < hi; i++ {
		copy(x.Row(i)[1:m+1], t.Row(i)[1:m+1])
	}
}

// checkBuffers enforces the buffer contract shared by Step and Solve.
func checkBuffers(x, b, t *grid.Grid) {
	if x == nil || b == nil || t == nil {
		panic("jacobi: nil grid")
	}
	if x == b || x == t || b == t {
		panic("jacobi: x, b, t must be distinct buffers")
	}
	if !x.SameShape(b) || !x.SameShape(t) {
		panic("jacobi: grids must share the same shape")
	}
}
