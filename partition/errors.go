package partition

import "errors"

// ErrDegenerateWeights is returned by GradientWeights when the absolute
// gradient sums to zero over the whole grid (a constant integrand), so no
// weight distribution exists.
//
// Adaptive never surfaces it: it falls back to an equal-width partition and
// marks it with core.UniformFallback.
var ErrDegenerateWeights = errors.New("partition: total variation is zero")
