package partition_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/quadlab/core"
	"github.com/katalvlaran/quadlab/partition"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAdaptive
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	2^x on [0,1] grows faster towards 1, so the four cells shrink from left
//	to right. The exact quantiles of |f'| are log2(1+k/4).
func ExampleAdaptive() {
	f := func(x float64) float64 { return math.Pow(2, x) }

	p, err := partition.Adaptive(f, 0, 1, 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(p.Strategy(), p.Len())
	for _, x := range p.Boundaries() {
		fmt.Printf("%.2f ", x)
	}
	fmt.Println()
	// Output:
	// adaptive 4
	// 0.00 0.32 0.58 0.81 1.00
}

// ExampleAdaptive_constant shows the uniform fallback for a flat integrand.
func ExampleAdaptive_constant() {
	p, _ := partition.Adaptive(func(float64) float64 { return 3 }, 0, 1, 4)

	fmt.Println(p.Strategy(), p.Boundaries())
	// Output:
	// uniform-fallback [0 0.25 0.5 0.75 1]
}

// ExampleAdaptive_rejected shows argument validation.
func ExampleAdaptive_rejected() {
	_, err := partition.Adaptive(math.Sin, 1, 0, 5)
	fmt.Println(errors.Is(err, core.ErrInvalidInterval))

	_, err = partition.Adaptive(math.Sin, 0, 1, 0)
	fmt.Println(errors.Is(err, core.ErrInvalidCount))
	// Output:
	// true
	// true
}
