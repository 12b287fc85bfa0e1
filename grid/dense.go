package grid

import "gonum.org/v1/gonum/mat"

// Dense returns a gonum *mat.Dense of shape (N+2)×(M+2) backed by the
// Grid's own buffer. No data is copied: mutations through the returned
// matrix are visible in the Grid and vice versa.
func (g *Grid) Dense() *mat.Dense {
	return mat.NewDense(g.n+2, g.m+2, g.data)
}
