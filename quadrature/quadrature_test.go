package quadrature_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadlab/core"
	"github.com/katalvlaran/quadlab/partition"
	"github.com/katalvlaran/quadlab/quadrature"
)

var ln2Recip = 1 / math.Ln2 // ∫₀¹ 2^x dx ≈ 1.44270

func exp2(x float64) float64 { return math.Pow(2, x) }

func square(x float64) float64 { return x * x }

// TestRectangle_HandComputed checks all deterministic rules on a tiny
// non-uniform partition.
func TestRectangle_HandComputed(t *testing.T) {
	p := core.NewPartition([]float64{0, 1, 3}, core.Custom)

	s, err := quadrature.Rectangle(square, p, quadrature.WithSeed(1))
	require.NoError(t, err)
	assert.InDelta(t, 2.0, s.Left, 1e-12)
	assert.InDelta(t, 19.0, s.Right, 1e-12)
	assert.InDelta(t, 8.25, s.Middle, 1e-12)
	assert.GreaterOrEqual(t, s.Random, s.Left)
	assert.LessOrEqual(t, s.Random, s.Right)

	trap, err := quadrature.Trapezoid(square, p)
	require.NoError(t, err)
	assert.InDelta(t, 10.5, trap, 1e-12)

	simp, err := quadrature.Simpson(square, p)
	require.NoError(t, err)
	assert.InDelta(t, 9.0, simp, 1e-12)
}

// TestRectangle_ByRule exposes the four sums by name.
func TestRectangle_ByRule(t *testing.T) {
	s := quadrature.RectangleSums{Left: 1, Right: 2, Middle: 3, Random: 4}
	m := s.ByRule()

	assert.Len(t, m, 4)
	assert.Equal(t, 1.0, m[quadrature.RuleLeft])
	assert.Equal(t, 2.0, m[quadrature.RuleRight])
	assert.Equal(t, 3.0, m[quadrature.RuleMiddle])
	assert.Equal(t, 4.0, m[quadrature.RuleRandom])
	assert.Equal(t, 4.0, s.Worst(1.1))
	assert.Equal(t, 1.0, s.Worst(3.9))
}

// TestRandomRule_Seeded: an injected seed makes the random rule reproducible.
func TestRandomRule_Seeded(t *testing.T) {
	p, err := partition.Adaptive(exp2, 0, 1, 16)
	require.NoError(t, err)

	s1, err := quadrature.Rectangle(exp2, p, quadrature.WithSeed(42))
	require.NoError(t, err)
	s2, err := quadrature.Rectangle(exp2, p, quadrature.WithSeed(42))
	require.NoError(t, err)
	s3, err := quadrature.Rectangle(exp2, p, quadrature.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	assert.Equal(t, s1, s2)
	assert.Equal(t, s1, s3)
	assert.InDelta(t, ln2Recip, s1.Random, 0.05)
}

// TestExactness pins the polynomial degree each rule integrates exactly on
// an irregular partition.
func TestExactness(t *testing.T) {
	p := core.NewPartition([]float64{0, 0.3, 1.1, 1.15, 2}, core.Custom)

	linear := func(x float64) float64 { return 3*x + 1 } // ∫₀² = 8
	cubic := func(x float64) float64 { return x * x * x } // ∫₀² = 4

	trap, err := quadrature.Trapezoid(linear, p)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, trap, 1e-12)

	rect, err := quadrature.Rectangle(linear, p, quadrature.WithSeed(3))
	require.NoError(t, err)
	assert.InDelta(t, 8.0, rect.Middle, 1e-12)

	simp, err := quadrature.Simpson(cubic, p)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, simp, 1e-12)
}

// TestEndToEnd_Exp2: f=2^x on [0,1] with n=8 adaptive cells.
func TestEndToEnd_Exp2(t *testing.T) {
	p, err := partition.Adaptive(exp2, 0, 1, 8)
	require.NoError(t, err)

	trap, err := quadrature.Trapezoid(exp2, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.44270, trap, 0.01)

	simp, err := quadrature.Simpson(exp2, p)
	require.NoError(t, err)
	assert.InDelta(t, 1.44270, simp, 0.001)
}

// TestConvergence_Exp2: errors at n=256 are orders of magnitude below n=1.
func TestConvergence_Exp2(t *testing.T) {
	errAt := func(n int) (trapErr, simpErr float64) {
		p, err := partition.Adaptive(exp2, 0, 1, n)
		require.NoError(t, err)
		trap, err := quadrature.Trapezoid(exp2, p)
		require.NoError(t, err)
		simp, err := quadrature.Simpson(exp2, p)
		require.NoError(t, err)
		return math.Abs(trap - ln2Recip), math.Abs(simp - ln2Recip)
	}

	trap1, simp1 := errAt(1)
	trap256, simp256 := errAt(256)

	assert.Less(t, trap256, trap1/1000)
	assert.Less(t, simp256, simp1/1000)
	for _, n := range []int{2, 4, 16, 64} {
		tr, sp := errAt(n)
		assert.Less(t, tr, trap1, "n=%d", n)
		assert.Less(t, sp, simp1, "n=%d", n)
	}
}

// TestAccuracyOrdering: Simpson ≤ trapezoid ≤ worst rectangle for n ≥ 16.
func TestAccuracyOrdering(t *testing.T) {
	smooth := []struct {
		name string
		f    core.Func
		a, b float64
		ref  float64
	}{
		{"exp2", exp2, 0, 1, ln2Recip},
		{"exp", math.Exp, 0, 2, math.Exp(2) - 1},
		{"sin", math.Sin, 0, 1, 1 - math.Cos(1)},
	}
	for _, tc := range smooth {
		for _, n := range []int{16, 32, 100} {
			p, err := partition.Adaptive(tc.f, tc.a, tc.b, n)
			require.NoError(t, err)
			est, err := quadrature.Estimate(tc.f, p, quadrature.WithSeed(int64(n)))
			require.NoError(t, err)

			rect := quadrature.RectangleSums{
				Left:   est[quadrature.RuleLeft],
				Right:  est[quadrature.RuleRight],
				Middle: est[quadrature.RuleMiddle],
				Random: est[quadrature.RuleRandom],
			}
			worst := math.Abs(rect.Worst(tc.ref) - tc.ref)
			simpErr := est.AbsError(quadrature.RuleSimpson, tc.ref)
			trapErr := est.AbsError(quadrature.RuleTrapezoid, tc.ref)

			assert.LessOrEqual(t, simpErr, trapErr, "%s n=%d", tc.name, n)
			assert.LessOrEqual(t, trapErr, worst, "%s n=%d", tc.name, n)
		}
	}
}

// TestEstimate_AllRules computes every rule once.
func TestEstimate_AllRules(t *testing.T) {
	p, err := partition.Adaptive(exp2, 0, 1, 10)
	require.NoError(t, err)

	est, err := quadrature.Estimate(exp2, p, quadrature.WithSeed(10))
	require.NoError(t, err)
	require.Len(t, est, len(quadrature.AllRules))
	for _, r := range quadrature.AllRules {
		assert.InDelta(t, ln2Recip, est[r], 0.1, "rule %s", r)
		v, err := quadrature.Apply(r, exp2, p, quadrature.WithSeed(10))
		require.NoError(t, err)
		assert.Equal(t, est[r], v, "rule %s", r)
	}

	d := est[quadrature.RuleLeft] - ln2Recip
	assert.InDelta(t, d*d, est.SquaredError(quadrature.RuleLeft, ln2Recip), 1e-15)
}

// TestNonFiniteSamples: NaN/Inf samples and overflowing sums are failures.
func TestNonFiniteSamples(t *testing.T) {
	p := core.NewPartition([]float64{0, 0.5, 1}, core.Custom)
	recip := func(x float64) float64 { return 1 / x }

	_, err := quadrature.Rectangle(recip, p, quadrature.WithSeed(1))
	assert.ErrorIs(t, err, core.ErrNonFiniteSample)
	_, err = quadrature.Trapezoid(recip, p)
	assert.ErrorIs(t, err, core.ErrNonFiniteSample)
	_, err = quadrature.Simpson(recip, p)
	assert.ErrorIs(t, err, core.ErrNonFiniteSample)
	_, err = quadrature.Estimate(recip, p)
	assert.ErrorIs(t, err, core.ErrNonFiniteSample)

	huge := func(float64) float64 { return math.MaxFloat64 }
	wide := core.NewPartition([]float64{0, 2, 4}, core.Custom)
	_, err = quadrature.Trapezoid(huge, wide)
	assert.ErrorIs(t, err, core.ErrNonFiniteSample)
	_, err = quadrature.Simpson(huge, wide)
	assert.ErrorIs(t, err, core.ErrNonFiniteSample)
}

// TestMalformedPartition: estimators do not validate; they must not crash.
func TestMalformedPartition(t *testing.T) {
	one := func(float64) float64 { return 1 }
	p := core.FromCells([]core.Cell{{Lo: 0, Hi: 1}, {Lo: 0.5, Hi: 0.2}})

	trap, err := quadrature.Trapezoid(one, p)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, trap, 1e-12)

	simp, err := quadrature.Simpson(one, core.Partition{})
	require.NoError(t, err)
	assert.Zero(t, simp)
}

// TestParseRule covers names, aliases and rejection.
func TestParseRule(t *testing.T) {
	cases := map[string]quadrature.Rule{
		"left":      quadrature.RuleLeft,
		"Right":     quadrature.RuleRight,
		" mid ":     quadrature.RuleMiddle,
		"rect":      quadrature.RuleMiddle,
		"random":    quadrature.RuleRandom,
		"trap":      quadrature.RuleTrapezoid,
		"TRAPEZOID": quadrature.RuleTrapezoid,
		"simpson":   quadrature.RuleSimpson,
	}
	for in, want := range cases {
		got, err := quadrature.ParseRule(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := quadrature.ParseRule("gauss")
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)

	rules, err := quadrature.ParseRules([]string{"simpson", "left"})
	require.NoError(t, err)
	assert.Equal(t, []quadrature.Rule{quadrature.RuleSimpson, quadrature.RuleLeft}, rules)
	_, err = quadrature.ParseRules([]string{"left", "nope"})
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)

	_, err = quadrature.Apply("nope", exp2, core.Partition{})
	assert.ErrorIs(t, err, quadrature.ErrUnknownRule)
}

// TestRule_Metadata pins titles and determinism flags.
func TestRule_Metadata(t *testing.T) {
	assert.False(t, quadrature.RuleRandom.Deterministic())
	assert.True(t, quadrature.RuleSimpson.Deterministic())
	assert.Equal(t, "Simpson", quadrature.RuleSimpson.Title())
	assert.Equal(t, "Rectangle (middle)", quadrature.RuleMiddle.Title())
	assert.Equal(t, "custom", quadrature.Rule("custom").Title())
}

// TestWithRand_Nil panics at construction time.
func TestWithRand_Nil(t *testing.T) {
	assert.Panics(t, func() { quadrature.WithRand(nil) })
}
