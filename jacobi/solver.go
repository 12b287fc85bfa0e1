package jacobi

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"poissolve/grid"
)

// roundState is the per-round shared state of one solve. partial is written
// one slot per worker during the reduction phase; the remaining fields are
// written only by the leader inside the decision phase and read by every
// worker one barrier later.
type roundState struct {
	partial   []float64
	k         int
	residual  float64
	converged bool
}

// Solve iterates Step until the L2 norm of the change between successive
// iterates drops below opts.Tol or opts.MaxIter rounds have run, whichever
// comes first. x is mutated in place and holds the final iterate on return;
// b is never written. nil opts selects DefaultOptions.
//
// One scratch grid is allocated up front and reused every round. A fixed
// pool of opts.Workers goroutines is created for the solve and torn down on
// return; each round runs four phases over disjoint row bands:
//
//	sweep → partial reduction → leader decision → commit
//
// with a barrier after the reduction, the decision, and the commit. The
// leader phase is executed by exactly one worker per round: it combines the
// partial sums, tests convergence, reports progress, and advances the round
// counter. Combining the partials is order-dependent in the last bits of
// the float64 sum; the perturbation is bounded and accepted.
//
// Solve panics if x or b is nil, aliased, or shape-mismatched, mirroring
// Step's buffer contract.
func Solve(x, b *grid.Grid, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Tol <= 0 {
		return Result{}, ErrBadTol
	}
	if o.MaxIter < 1 {
		return Result{}, ErrBadMaxIter
	}
	if o.Workers < 1 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	if x == nil || b == nil {
		panic("jacobi: nil grid")
	}
	if x == b {
		panic("jacobi: x, b, t must be distinct buffers")
	}
	if !x.SameShape(b) {
		panic("jacobi: grids must share the same shape")
	}

	start := time.Now()

	// Scratch iterate, zero border included. Allocated once per solve.
	t, err := grid.New(x.N(), x.M())
	if err != nil {
		return Result{}, fmt.Errorf("jacobi: allocate scratch iterate: %w", err)
	}

	st := &roundState{partial: make([]float64, o.Workers)}
	bar := newBarrier(o.Workers)

	var wg sync.WaitGroup
	wg.Add(o.Workers)
	for w := 0; w < o.Workers; w++ {
		go func(w int) {
			defer wg.Done()
			solveWorker(w, x, b, t, &o, st, bar)
		}(w)
	}
	wg.Wait()

	status := StatusIterationLimit
	if st.converged {
		status = StatusConverged
	}

	return Result{
		Iterations: st.k,
		Residual:   st.residual,
		Status:     status,
		Runtime:    time.Since(start),
	}, nil
}

// solveWorker runs worker w's share of every round. Worker 0 is the leader
// and owns the decision phase. All workers leave the loop in the same round
// because the termination test reads state that is fixed before the commit
// barrier of that round.
func solveWorker(w int, x, b, t *grid.Grid, o *Options, st *roundState, bar *barrier) {
	lo, hi := rowBand(w, o.Workers, x.N())

	for {
		// New iterate for this band. The band's reduction below reads only
		// rows this worker wrote, so no barrier is needed in between.
		stepRows(x, b, t, lo, hi)

		// Stopping criterion: ||x_k - x_{k+1}|| < tol, measured against the
		// not-yet-committed t.
		st.partial[w] = sumSquaredDiffRows(x, t, lo, hi)
		bar.await()

		if w == 0 {
			s := 0.0
			for _, p := range st.partial {
				s += p
			}
			st.residual = math.Sqrt(s)
			st.converged = st.residual < o.Tol
			if o.Progress != nil {
				o.Progress(st.k, st.residual)
			}
			st.k++
		}
		bar.await()

		commitRows(x, t, lo, hi)
		bar.await()

		if st.converged || st.k >= o.MaxIter {
			return
		}
	}
}

// rowBand splits interior rows 1..n into contiguous bands, one per worker.
// Bands may be empty when workers > n; such workers still take part in
// every barrier.
func rowBand(w, workers, n int) (lo, hi int) {
	return 1 + w*n/workers, 1 + (w+1)*n/workers
}
