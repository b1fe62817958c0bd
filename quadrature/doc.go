// Package quadrature approximates ∫f over a core.Partition with composite
// rules applied cell by cell.
//
// 🚀 Rules
//
//	Rectangle  — left edge, right edge, midpoint and a random point per cell
//	Trapezoid  — (f(lo)+f(hi))·w/2
//	Simpson    — (f(lo)+4f(mid)+f(hi))·w/6, independently per cell, so it
//	             works on unequal widths and odd cell counts
//
// ✨ Key properties:
//   - pure functions of (f, partition); only the random rectangle rule also
//     reads an injected *rand.Rand (WithRand / WithSeed)
//   - every cell is visited exactly once, contributions are summed
//   - partitions are not validated; NaN/±Inf samples are reported as
//     core.ErrNonFiniteSample instead of leaking into the sums
//
// ⚙️ Usage:
//
//	p, _ := partition.Adaptive(f, 0, 1, 8)
//	est, err := quadrature.Estimate(f, p, quadrature.WithSeed(1))
//	fmt.Println(est[quadrature.RuleSimpson])
//
// Complexity: O(n) time and at most 4n integrand evaluations per rule set.
package quadrature
