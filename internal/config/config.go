// Package config loads and validates the poissolve run configuration from a
// YAML file, applying defaults for anything left unset.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"poissolve/jacobi"
)

// Default values for Config.
const (
	DefaultN            = 50
	DefaultM            = 50
	DefaultSpacing      = 0.01
	DefaultSource       = 1.5
	DefaultSummaryPath  = "output.txt"
	DefaultSolutionPath = "matrix_poisson.txt"
)

// SolverConfig holds the iterative-solver parameters.
type SolverConfig struct {
	// Tol is the absolute L2 convergence threshold.
	Tol float64 `yaml:"tol"`
	// MaxIter caps the number of Jacobi rounds.
	MaxIter int `yaml:"maxit"`
	// Workers sizes the solver's worker pool; 0 selects one per CPU.
	Workers int `yaml:"workers"`
}

// OutputConfig names the files the run writes.
type OutputConfig struct {
	// SummaryPath receives the run summary (timing, size, workers).
	SummaryPath string `yaml:"summary"`
	// SolutionPath receives the converged interior grid, row-major.
	SolutionPath string `yaml:"solution"`
}

// Config is the full run configuration.
type Config struct {
	// N and M are the interior grid dimensions.
	N int `yaml:"n"`
	M int `yaml:"m"`
	// H is the mesh spacing, F the constant source term; the right-hand
	// side is filled with H²·F.
	H float64 `yaml:"h"`
	F float64 `yaml:"f"`

	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
}

// DefaultConfig returns a Config with the stock problem: a 50×50 grid,
// spacing 0.01, constant source 1.5, and the solver defaults.
func DefaultConfig() Config {
	return Config{
		N: DefaultN,
		M: DefaultM,
		H: DefaultSpacing,
		F: DefaultSource,
		Solver: SolverConfig{
			Tol:     jacobi.DefaultTol,
			MaxIter: jacobi.DefaultMaxIter,
		},
		Output: OutputConfig{
			SummaryPath:  DefaultSummaryPath,
			SolutionPath: DefaultSolutionPath,
		},
	}
}

// ValidationError reports a single invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Load reads a YAML Config from path. A missing file is not an error: the
// defaults are returned. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field, returning the first ValidationError found.
// Dimension defaulting for out-of-range N and M is the CLI's job, so only
// structurally unusable values are rejected here.
func (c Config) Validate() error {
	if c.H <= 0 {
		return ValidationError{Field: "h", Message: "mesh spacing must be positive"}
	}
	if c.Solver.Tol <= 0 {
		return ValidationError{Field: "solver.tol", Message: "tolerance must be positive"}
	}
	if c.Solver.MaxIter < 1 {
		return ValidationError{Field: "solver.maxit", Message: "iteration limit must be at least 1"}
	}
	if c.Solver.Workers < 0 {
		return ValidationError{Field: "solver.workers", Message: "worker count cannot be negative"}
	}
	if c.Output.SummaryPath == "" {
		return ValidationError{Field: "output.summary", Message: "summary path cannot be empty"}
	}
	if c.Output.SolutionPath == "" {
		return ValidationError{Field: "output.solution", Message: "solution path cannot be empty"}
	}

	return nil
}
