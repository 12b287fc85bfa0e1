package jacobi_test

import (
	"testing"

	"poissolve/grid"
	"poissolve/jacobi"
)

// benchmarkSolve runs a fixed number of rounds on an n×n grid with the
// given worker count, so different pool sizes are directly comparable.
func benchmarkSolve(b *testing.B, n, workers, rounds int) {
	src, err := grid.ConstantSource(n, n, 0.01, 1.5)
	if err != nil {
		b.Fatalf("build source: %v", err)
	}
	opts := jacobi.DefaultOptions()
	opts.Workers = workers
	opts.MaxIter = rounds
	opts.Tol = 1e-300 // force exactly MaxIter rounds

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		x, err := grid.New(n, n)
		if err != nil {
			b.Fatalf("build iterate: %v", err)
		}
		b.StartTimer()

		if _, err := jacobi.Solve(x, src, &opts); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_128x1Worker measures 50 rounds on a 128×128 grid, serial pool.
func BenchmarkSolve_128x1Worker(b *testing.B) { benchmarkSolve(b, 128, 1, 50) }

// BenchmarkSolve_128x4Workers measures the same work on a pool of four.
func BenchmarkSolve_128x4Workers(b *testing.B) { benchmarkSolve(b, 128, 4, 50) }

// BenchmarkSolve_512x1Worker measures 50 rounds on a 512×512 grid, serial pool.
func BenchmarkSolve_512x1Worker(b *testing.B) { benchmarkSolve(b, 512, 1, 50) }

// BenchmarkSolve_512x4Workers measures the same work on a pool of four.
func BenchmarkSolve_512x4Workers(b *testing.B) { benchmarkSolve(b, 512, 4, 50) }

// BenchmarkStep_512 measures a single sweep without the iteration machinery.
func BenchmarkStep_512(b *testing.B) {
	x, err := grid.New(512, 512)
	if err != nil {
		b.Fatalf("build iterate: %v", err)
	}
	src, err := grid.ConstantSource(512, 512, 0.01, 1.5)
	if err != nil {
		b.Fatalf("build source: %v", err)
	}
	t, err := grid.New(512, 512)
	if err != nil {
		b.Fatalf("build scratch: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		jacobi.Step(x, src, t)
	}
}
