package convergence

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/op/go-logging"

	"github.com/katalvlaran/quadlab/core"
	"github.com/katalvlaran/quadlab/partition"
	"github.com/katalvlaran/quadlab/quadrature"
)

var log = logging.MustGetLogger("convergence")

// ErrNoCounts is returned by Study when the list of cell counts is empty.
var ErrNoCounts = errors.New("convergence: no cell counts to study")

// Options configures a Study.
//
// Fields:
//   - Partitioner — builds the partition for every N (default: Adaptive).
//   - Rules       — rules to track, in output order (default: middle,
//     trapezoid, simpson, as in the classic error plots).
//   - Rand        — RNG for the random rectangle rule; one stream is shared
//     across all N. nil means a time-seeded source.
type Options struct {
	Partitioner partition.Partitioner
	Rules       []quadrature.Rule
	Rand        *rand.Rand
}

// DefaultOptions returns the adaptive partitioner and the three headline rules.
func DefaultOptions() Options {
	return Options{
		Partitioner: partition.AdaptiveWith(),
		Rules:       []quadrature.Rule{quadrature.RuleMiddle, quadrature.RuleTrapezoid, quadrature.RuleSimpson},
	}
}

// Result holds one ErrorSeries per studied rule.
type Result struct {
	Rules     []quadrature.Rule
	Series    map[quadrature.Rule]ErrorSeries
	Reference float64
	Interval  core.Interval
}

// Study — convergence of quadrature rules as the cell count grows.
//
// For every n in counts the partitioner runs once, every rule in
// opts.Rules is applied to that same partition (computed once and reused),
// and a Point with absolute and squared error against reference is
// appended to the rule's series.
//
// Complexity: Σ O(partition(n) + n) over counts.
//
// Errors:
//   - ErrNoCounts if counts is empty.
//   - partitioner errors (core.ErrInvalidInterval, core.ErrInvalidCount, ...).
//   - estimator errors (core.ErrNonFiniteSample).
//
// No partial Result is returned on failure.
func Study(f core.Func, iv core.Interval, reference float64, counts []int, opts Options) (Result, error) {
	if len(counts) == 0 {
		return Result{}, ErrNoCounts
	}
	def := DefaultOptions()
	if opts.Partitioner == nil {
		opts.Partitioner = def.Partitioner
	}
	if len(opts.Rules) == 0 {
		opts.Rules = def.Rules
	}
	var qopts []quadrature.Option
	if opts.Rand != nil {
		qopts = append(qopts, quadrature.WithRand(opts.Rand))
	}

	res := Result{
		Rules:     append([]quadrature.Rule(nil), opts.Rules...),
		Series:    make(map[quadrature.Rule]ErrorSeries, len(opts.Rules)),
		Reference: reference,
		Interval:  iv,
	}
	for _, n := range counts {
		p, err := opts.Partitioner(f, iv.A, iv.B, n)
		if err != nil {
			return Result{}, fmt.Errorf("Study: n=%d: %w", n, err)
		}
		est, err := quadrature.Estimate(f, p, qopts...)
		if err != nil {
			return Result{}, fmt.Errorf("Study: n=%d: %w", n, err)
		}
		for _, r := range res.Rules {
			v, ok := est[r]
			if !ok {
				return Result{}, fmt.Errorf("Study: rule %q: %w", string(r), quadrature.ErrUnknownRule)
			}
			res.Series[r] = append(res.Series[r], newPoint(n, v, reference))
		}
		log.Debugf("n=%d strategy=%s estimates=%v", n, p.Strategy(), est)
	}
	for _, r := range res.Rules {
		log.Infof("%s: error reduced %.3g times over %d counts", r, res.Series[r].Reduction(), len(counts))
	}

	return res, nil
}

// Range returns lo, lo+1, …, hi. It returns nil when hi < lo.
func Range(lo, hi int) []int {
	if hi < lo {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}

	return out
}

// Powers returns base^0, base^1, …, base^(k-1).
func Powers(base, k int) []int {
	out := make([]int, 0, k)
	v := 1
	for i := 0; i < k; i++ {
		out = append(out, v)
		v *= base
	}

	return out
}
