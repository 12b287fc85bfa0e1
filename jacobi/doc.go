// Package jacobi solves the discrete 2D Poisson equation with zero Dirichlet
// boundaries using the stationary Jacobi iterative method, in parallel,
// without ever forming the system matrix.
//
// What:
//
//   - Step applies one Jacobi sweep of the 5-point Laplacian stencil:
//     t(i,j) = (b(i,j) + x(i+1,j) + x(i-1,j) + x(i,j+1) + x(i,j-1)) / 4
//     for every interior point of the grid.
//   - Solve drives Step to a fixed point: each round it measures the L2 norm
//     of the change between successive iterates over the interior, stops when
//     the norm drops below Options.Tol or Options.MaxIter rounds have run,
//     and commits the new iterate into x.
//   - Work is partitioned into row bands across a fixed pool of workers that
//     lives for the whole solve; rounds are separated by barriers, never by
//     per-point locking (all interior writes are disjoint by construction).
//
// Why:
//
//   - Elliptic PDEs on regular meshes: the matrix-free stencil form needs
//     O(N×M) memory for grids whose explicit matrix would need O((N×M)²).
//   - The per-round phase structure (sweep → reduce → decide → commit) is the
//     canonical shared-memory pattern for stationary iterative methods.
//
// Complexity:
//
//   - Step: O(N×M) work, split across the worker bands.
//   - Solve: O(k×N×M) for k rounds; memory O(N×M) for one scratch grid,
//     allocated once and reused every round.
//
// Options:
//
//   - Options.Tol: absolute stopping threshold on the L2 iterate delta.
//   - Options.MaxIter: hard ceiling on rounds for non-converging inputs.
//   - Options.Workers: size of the solve-scoped worker pool.
//   - Options.Progress: per-round (iteration, residual) observability sink.
//
// Errors:
//
//   - ErrBadTol: non-positive tolerance.
//   - ErrBadMaxIter: iteration ceiling smaller than 1.
//
// Step and Solve panic when the caller violates the buffer contract (nil,
// aliased, or shape-mismatched grids); those are programming errors, not
// runtime conditions.
//
// Unlike the classic formulation, which exits silently on either trigger,
// Solve reports the termination reason: Result.Status distinguishes
// StatusConverged from StatusIterationLimit.
package jacobi
