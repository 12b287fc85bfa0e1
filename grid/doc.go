// Package grid provides the bordered 2D scalar field used by the Jacobi
// Poisson solver.
//
// What:
//
//   - Grid wraps an N×M field of interior unknowns plus a one-cell border
//     on every side, stored as a flat row-major []float64 of length
//     (N+2)×(M+2); element (i,j) lives at offset i·(M+2)+j.
//   - Border cells hold the Dirichlet boundary condition (0.0) and are
//     written only at construction time.
//   - FillInterior populates the interior in parallel; ConstantSource builds
//     the right-hand side h²·f of the discretized Poisson equation.
//   - Dense exposes the backing buffer as a gonum *mat.Dense view, and
//     WriteInterior emits the interior row-major for persistence.
//
// Why:
//
//   - PDE solvers on regular meshes: the flat layout gives contiguous rows,
//     cheap row views, and trivially disjoint write regions for parallel
//     sweeps.
//
// Complexity:
//
//   - At/Set/Row/Index: O(1).
//   - New/Clone/FillInterior/WriteInterior: O(N×M).
//
// Errors:
//
//   - ErrBadDims: requested interior dimensions are smaller than 1×1.
package grid
