// SPDX-License-Identifier: MIT
// Package: quadlab/catalog
//
// catalog.go — named integrands with closed-form antiderivatives (data-only).
//
// Purpose:
//   - Give the CLI and the experiments a stable set of test functions whose
//     exact integral over any [a,b] is known, so errors can be reported
//     without a reference solver.
//   - "exp2" (2^x on [0,1], reference 1/ln 2) is the default experiment.
//
// Contract:
//   - Entries are immutable; Lookup returns a copy.
//   - Reference(a,b) = Antiderivative(b) − Antiderivative(a).
//   - Default bounds lie inside each entry's domain.

package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/quadlab/core"
)

// DefaultName is the integrand used when none is configured.
const DefaultName = "exp2"

// ErrUnknownFunction is returned by Lookup for names not in the catalog.
var ErrUnknownFunction = errors.New("catalog: unknown function")

// Entry is one integrand with its antiderivative.
type Entry struct {
	Name           string   // lookup key
	Expr           string   // plot/legend label, e.g. "2^x"
	F              core.Func
	Antiderivative core.Func
	DefaultA       float64
	DefaultB       float64
}

// Reference returns the exact value of ∫ₐᵇ F.
func (e Entry) Reference(a, b float64) float64 {
	return e.Antiderivative(b) - e.Antiderivative(a)
}

// Interval returns the entry's default bounds.
func (e Entry) Interval() core.Interval {
	return core.Interval{A: e.DefaultA, B: e.DefaultB}
}

var entries = map[string]Entry{
	"exp2": {
		Name: "exp2", Expr: "2^x",
		F:              func(x float64) float64 { return math.Pow(2, x) },
		Antiderivative: func(x float64) float64 { return math.Pow(2, x) / math.Ln2 },
		DefaultA:       0, DefaultB: 1,
	},
	"exp": {
		Name: "exp", Expr: "e^x",
		F:              math.Exp,
		Antiderivative: math.Exp,
		DefaultA:       0, DefaultB: 1,
	},
	"square": {
		Name: "square", Expr: "x^2",
		F:              func(x float64) float64 { return x * x },
		Antiderivative: func(x float64) float64 { return x * x * x / 3 },
		DefaultA:       0, DefaultB: 1,
	},
	"cube": {
		Name: "cube", Expr: "x^3",
		F:              func(x float64) float64 { return x * x * x },
		Antiderivative: func(x float64) float64 { return x * x * x * x / 4 },
		DefaultA:       -1, DefaultB: 2,
	},
	"sin": {
		Name: "sin", Expr: "sin(x)",
		F:              math.Sin,
		Antiderivative: func(x float64) float64 { return -math.Cos(x) },
		DefaultA:       0, DefaultB: math.Pi,
	},
	"cos": {
		Name: "cos", Expr: "cos(x)",
		F:              math.Cos,
		Antiderivative: math.Sin,
		DefaultA:       0, DefaultB: math.Pi / 2,
	},
	"sqrt": {
		Name: "sqrt", Expr: "sqrt(x)",
		F:              math.Sqrt,
		Antiderivative: func(x float64) float64 { return 2 * x * math.Sqrt(x) / 3 },
		DefaultA:       0, DefaultB: 1,
	},
	"recip1p": {
		Name: "recip1p", Expr: "1/(1+x)",
		F:              func(x float64) float64 { return 1 / (1 + x) },
		Antiderivative: func(x float64) float64 { return math.Log1p(x) },
		DefaultA:       0, DefaultB: 1,
	},
	"tanh": {
		Name: "tanh", Expr: "tanh(20(x-1/2))",
		F:              func(x float64) float64 { return math.Tanh(20 * (x - 0.5)) },
		Antiderivative: func(x float64) float64 { return math.Log(math.Cosh(20*(x-0.5))) / 20 },
		DefaultA:       0, DefaultB: 1,
	},
	"const": {
		Name: "const", Expr: "3",
		F:              func(float64) float64 { return 3 },
		Antiderivative: func(x float64) float64 { return 3 * x },
		DefaultA:       0, DefaultB: 1,
	},
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownFunction)
	}

	return e, nil
}

// Default returns the exp2 entry.
func Default() Entry {
	return entries[DefaultName]
}

// Names returns every registered name in lexicographic order.
func Names() []string {
	out := make([]string, 0, len(entries))
	for name := range entries {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
