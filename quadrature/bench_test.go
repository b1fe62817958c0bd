package quadrature_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quadlab/partition"
	"github.com/katalvlaran/quadlab/quadrature"
)

// benchmarkRule applies rule to sin on a uniform partition of [0,π] with n cells.
func benchmarkRule(b *testing.B, rule quadrature.Rule, n int) {
	p, err := partition.Uniform(0, math.Pi, n)
	if err != nil {
		b.Fatal(err)
	}
	seed := quadrature.WithSeed(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quadrature.Apply(rule, math.Sin, p, seed); err != nil {
			b.Fatalf("Apply(%s) failed: %v", rule, err)
		}
	}
}

func BenchmarkMiddle_1k(b *testing.B)    { benchmarkRule(b, quadrature.RuleMiddle, 1000) }
func BenchmarkRandom_1k(b *testing.B)    { benchmarkRule(b, quadrature.RuleRandom, 1000) }
func BenchmarkTrapezoid_1k(b *testing.B) { benchmarkRule(b, quadrature.RuleTrapezoid, 1000) }
func BenchmarkSimpson_1k(b *testing.B)   { benchmarkRule(b, quadrature.RuleSimpson, 1000) }

// BenchmarkEstimate_1k computes every rule on one partition.
func BenchmarkEstimate_1k(b *testing.B) {
	p, err := partition.Uniform(0, math.Pi, 1000)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := quadrature.Estimate(math.Sin, p, quadrature.WithSeed(1)); err != nil {
			b.Fatal(err)
		}
	}
}
