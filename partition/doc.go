// Package partition turns "split [a,b] into n pieces" into an explicit,
// non-uniform core.Partition whose cells cluster where the integrand varies
// quickly.
//
// 🚀 How does it work?
//
//	The integrand is sampled on a dense grid, its absolute derivative is
//	estimated with centered differences and normalized into a probability
//	distribution. The boundaries are the n+1 equally spaced quantiles of
//	that distribution:
//
//	  |f'|   ▁▁▂▂▃▄▅▆▇█
//	  cells  |    |   |  | | |||
//
// ✨ Key features:
//   - Adaptive(f, a, b, n)  — gradient-weighted partition, exactly n cells,
//     first boundary == a and last == b bit-for-bit.
//   - Uniform(a, b, n)      — equal-width reference partition.
//   - constant integrands fall back to equal widths (core.UniformFallback).
//   - building blocks exported for inspection and plotting:
//     Grid, Sample, AbsGradient, GradientWeights, CumulativeWeights,
//     Quantiles, InverseCDF.
//
// ⚙️ Usage:
//
//	p, err := partition.Adaptive(f, 0, 1, 16, partition.WithMinSamples(4000))
//	if err != nil {
//	  // core.ErrInvalidInterval, core.ErrInvalidCount, core.ErrNonFiniteSample
//	}
//
// Performance:
//
//   - Time:   O(m + n·log m), m = max(5·(n+1), 1000) by default
//   - Memory: O(m)
package partition
