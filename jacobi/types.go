// Package jacobi defines options, results, and progress hooks for the
// parallel Jacobi Poisson solver.
package jacobi

import (
	"runtime"
	"time"
)

// Solver defaults: absolute L2 stopping threshold and round ceiling.
const (
	// DefaultTol is the absolute L2 threshold on the iterate delta.
	DefaultTol = 1e-6
	// DefaultMaxIter caps the number of rounds for non-converging inputs.
	DefaultMaxIter = 70000
)

// ProgressFunc receives the round index and the residual (L2 norm of the
// difference between successive iterates) once per round. It is invoked
// from exactly one worker per round, so implementations need no internal
// locking against concurrent solver calls.
type ProgressFunc func(iter int, residual float64)

// Status identifies why a solve stopped.
type Status int

const (
	// StatusConverged means the residual dropped below Options.Tol.
	StatusConverged Status = iota
	// StatusIterationLimit means Options.MaxIter rounds ran without the
	// residual reaching Options.Tol.
	StatusIterationLimit
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusIterationLimit:
		return "iteration limit"
	default:
		return "unknown"
	}
}

// Options configures a solve.
//
// Fields:
//   - Tol      — absolute stopping threshold on the L2 norm of the change
//     between successive iterates. Must be positive.
//   - MaxIter  — hard ceiling on rounds; the solver returns the iterate it
//     reached when the ceiling is hit. Must be at least 1.
//   - Workers  — size of the fixed worker pool created for the solve and
//     reused every round. Values < 1 select runtime.GOMAXPROCS(0).
//   - Progress — optional per-round observability sink; nil disables
//     progress reporting.
type Options struct {
	Tol      float64
	MaxIter  int
	Workers  int
	Progress ProgressFunc
}

// DefaultOptions returns Options with Tol=1e-6, MaxIter=70000, a worker per
// available CPU, and no progress sink.
func DefaultOptions() Options {
	return Options{
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Result reports the outcome of a solve.
type Result struct {
	// Iterations is the number of rounds executed.
	Iterations int
	// Residual is the L2 iterate delta measured in the final round.
	Residual float64
	// Status tells whether the solve converged or hit the round ceiling.
	Status Status
	// Runtime is the wall-clock duration of the solve.
	Runtime time.Duration
}
