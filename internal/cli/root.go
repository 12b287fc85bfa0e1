// Package cli implements the poissolve command line: it assembles the grid
// and right-hand side, runs the parallel Jacobi solver, and hands the result
// to the report writers.
package cli

import (
	"runtime"
	"strconv"

	"github.com/spf13/cobra"

	"poissolve/grid"
	"poissolve/internal/config"
	"poissolve/internal/logging"
	"poissolve/internal/report"
	"poissolve/jacobi"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath   string
	tol          float64
	maxIter      int
	workers      int
	summaryPath  string
	solutionPath string
	quiet        bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "poissolve [N [M]]",
	Short: "Parallel Jacobi solver for the 2D Poisson equation",
	Long: `Poissolve solves the discrete 2D Poisson equation with zero Dirichlet
boundaries on an N×M grid using the stationary Jacobi method, matrix-free,
with the work spread across a fixed pool of workers. The run summary and the
converged solution are written to files for inspection.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runSolve,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("poissolve version {{.Version}}\n")

	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML run configuration file")
	f.Float64Var(&tol, "tol", jacobi.DefaultTol, "absolute L2 convergence threshold")
	f.IntVar(&maxIter, "maxit", jacobi.DefaultMaxIter, "iteration ceiling")
	f.IntVar(&workers, "workers", 0, "worker pool size (0 = one per CPU)")
	f.StringVar(&summaryPath, "summary", config.DefaultSummaryPath, "run summary output file")
	f.StringVar(&solutionPath, "solution", config.DefaultSolutionPath, "solution grid output file")
	f.BoolVar(&quiet, "quiet", false, "suppress per-iteration progress output")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runSolve(cmd *cobra.Command, args []string) error {
	if verbose {
		logging.SetLevel(logging.LevelDebug)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, &cfg)

	n, m := cfg.N, cfg.M
	if len(args) > 0 {
		n = parseDim(args[0], config.DefaultN)
	}
	if len(args) > 1 {
		m = parseDim(args[1], 1)
	}

	x, err := grid.New(n, m)
	if err != nil {
		return err
	}
	b, err := grid.ConstantSource(n, m, cfg.H, cfg.F)
	if err != nil {
		return err
	}

	opts := jacobi.Options{
		Tol:     cfg.Solver.Tol,
		MaxIter: cfg.Solver.MaxIter,
		Workers: cfg.Solver.Workers,
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if !quiet {
		opts.Progress = func(iter int, residual float64) {
			logging.Info("jacobi iteration", "iter", iter, "residual", residual)
		}
	}

	logging.Debug("starting solve", "n", n, "m", m, "workers", opts.Workers,
		"tol", opts.Tol, "maxit", opts.MaxIter)

	res, err := jacobi.Solve(x, b, &opts)
	if err != nil {
		return err
	}

	logging.Info("solve finished", "status", res.Status.String(),
		"iterations", res.Iterations, "residual", res.Residual,
		"elapsed", res.Runtime)

	s := report.Summary{
		Elapsed: res.Runtime,
		N:       n,
		M:       m,
		Workers: opts.Workers,
		Result:  res,
	}

	return report.SaveAll(cfg.Output.SummaryPath, cfg.Output.SolutionPath, s, x)
}

// applyFlagOverrides lets explicitly-set flags win over the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("tol") {
		cfg.Solver.Tol = tol
	}
	if f.Changed("maxit") {
		cfg.Solver.MaxIter = maxIter
	}
	if f.Changed("workers") {
		cfg.Solver.Workers = workers
	}
	if f.Changed("summary") {
		cfg.Output.SummaryPath = summaryPath
	}
	if f.Changed("solution") {
		cfg.Output.SolutionPath = solutionPath
	}
}

// parseDim converts a positional dimension argument. Unparsable or negative
// values fall back to def, matching the historical argument handling.
func parseDim(arg string, def int) int {
	v, err := strconv.Atoi(arg)
	if err != nil || v < 0 {
		return def
	}

	return v
}
