package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/quadlab/core"
)

// Adaptive — gradient-weighted partition of [a, b] into n cells.
//
// Description:
//
//	Cells are distributed so that their density follows |f'|: where the
//	integrand changes quickly the cells are narrow, where it is flat they
//	are wide. Boundaries are quantiles of the normalized cumulative
//	variation of f over a dense grid.
//
// Algorithm Outline:
//  1. Validate a < b and n >= 1 (before any sampling).
//  2. m = max(Oversample·(n+1), MinSamples) equally spaced grid points.
//  3. ys = f(xs); any NaN/±Inf aborts with core.ErrNonFiniteSample.
//  4. w = |gradient(ys, xs)| / Σ|gradient| (centered differences).
//  5. cdf = cumsum(w).
//  6. n+1 targets 0, 1/n, …, 1 are mapped back to x by linear
//     interpolation of xs over cdf.
//  7. x0 = a and xn = b are pinned; consecutive boundaries form the cells.
//
// Degenerate input:
//
//	A constant f has zero total variation. Instead of dividing by zero the
//	partitioner returns n equal cells with Strategy() == core.UniformFallback.
//
// Complexity:
//
//	Time   = O(m + n·log m) plus m evaluations of f
//	Memory = O(m)
//
// Errors:
//   - core.ErrInvalidInterval — a ≥ b or a non-finite bound.
//   - core.ErrInvalidCount    — n < 1.
//   - core.ErrNonFiniteSample — f is not finite somewhere on the grid.
func Adaptive(f core.Func, a, b float64, n int, opts ...Option) (core.Partition, error) {
	if err := core.ValidateInterval(a, b); err != nil {
		return core.Partition{}, fmt.Errorf("Adaptive: %w", err)
	}
	if err := core.ValidateCount(n); err != nil {
		return core.Partition{}, fmt.Errorf("Adaptive: %w", err)
	}
	cfg := newConfig(opts...)

	xs := Grid(a, b, cfg.gridSize(n))
	ys, err := Sample(f, xs)
	if err != nil {
		return core.Partition{}, fmt.Errorf("Adaptive: %w", err)
	}

	w, err := GradientWeights(xs, ys)
	if errors.Is(err, ErrDegenerateWeights) {
		return core.NewPartition(Grid(a, b, n+1), core.UniformFallback), nil
	}
	if err != nil {
		return core.Partition{}, fmt.Errorf("Adaptive: %w", err)
	}

	bounds := InverseCDF(CumulativeWeights(w), xs, Quantiles(n+1))
	bounds[0], bounds[n] = a, b

	return core.NewPartition(bounds, core.Adaptive), nil
}

// Uniform splits [a, b] into n cells of equal width.
//
// Errors: core.ErrInvalidInterval, core.ErrInvalidCount.
// Complexity: O(n).
func Uniform(a, b float64, n int) (core.Partition, error) {
	if err := core.ValidateInterval(a, b); err != nil {
		return core.Partition{}, fmt.Errorf("Uniform: %w", err)
	}
	if err := core.ValidateCount(n); err != nil {
		return core.Partition{}, fmt.Errorf("Uniform: %w", err)
	}

	return core.NewPartition(Grid(a, b, n+1), core.Uniform), nil
}

// Partitioner is the signature shared by Adaptive and Uniform once their
// options are bound; the convergence study accepts either.
type Partitioner func(f core.Func, a, b float64, n int) (core.Partition, error)

// AdaptiveWith binds opts to Adaptive.
func AdaptiveWith(opts ...Option) Partitioner {
	return func(f core.Func, a, b float64, n int) (core.Partition, error) {
		return Adaptive(f, a, b, n, opts...)
	}
}

// UniformPartitioner adapts Uniform to the Partitioner signature; f is ignored.
func UniformPartitioner(_ core.Func, a, b float64, n int) (core.Partition, error) {
	return Uniform(a, b, n)
}
