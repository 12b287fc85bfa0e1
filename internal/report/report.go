// Package report persists the outcome of a solve: a human-readable run
// summary and the solution grid itself, each to its own file.
package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"poissolve/grid"
	"poissolve/jacobi"
)

// Summary collects everything the run summary reports.
type Summary struct {
	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration
	// N and M are the interior grid dimensions.
	N, M int
	// Workers is the size of the worker pool used.
	Workers int
	// Result is the solver's outcome.
	Result jacobi.Result
}

// WriteSummary writes s to w in the run-summary format.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w,
		"poissolve: parallel Jacobi solver for the 2D Poisson equation\n"+
			"Solve wall time: %f seconds\n"+
			"Grid size: (N,M) = (%d, %d)\n"+
			"Workers used: %d\n"+
			"Iterations: %d (%s)\n"+
			"Final residual: %g\n",
		s.Elapsed.Seconds(), s.N, s.M, s.Workers,
		s.Result.Iterations, s.Result.Status, s.Result.Residual)
	if err != nil {
		return fmt.Errorf("report: write summary: %w", err)
	}

	return nil
}

// WriteSolution writes the interior of g to w row-major, space-separated.
func WriteSolution(w io.Writer, g *grid.Grid) error {
	if err := g.WriteInterior(w); err != nil {
		return fmt.Errorf("report: write solution: %w", err)
	}

	return nil
}

// SaveAll writes the summary to summaryPath and the solution grid to
// solutionPath, creating or truncating both files.
func SaveAll(summaryPath, solutionPath string, s Summary, g *grid.Grid) error {
	if err := saveTo(summaryPath, func(w io.Writer) error { return WriteSummary(w, s) }); err != nil {
		return err
	}

	return saveTo(solutionPath, func(w io.Writer) error { return WriteSolution(w, g) })
}

func saveTo(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}

	return nil
}
