package grid

import "errors"

// ErrBadDims indicates interior dimensions smaller than 1×1 were requested.
var ErrBadDims = errors.New("grid: interior dimensions must be at least 1x1")
