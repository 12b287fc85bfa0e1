package jacobi

import "errors"

var (
	// ErrBadTol indicates a non-positive convergence tolerance.
	ErrBadTol = errors.New("jacobi: tolerance must be positive")
	// ErrBadMaxIter indicates an iteration ceiling smaller than 1.
	ErrBadMaxIter = errors.New("jacobi: iteration limit must be at least 1")
)
