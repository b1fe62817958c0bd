package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadlab/catalog"
	"github.com/katalvlaran/quadlab/partition"
	"github.com/katalvlaran/quadlab/quadrature"
)

func TestDefault(t *testing.T) {
	e := catalog.Default()
	assert.Equal(t, "exp2", e.Name)
	assert.Equal(t, "2^x", e.Expr)
	assert.InDelta(t, 1/math.Ln2, e.Reference(e.DefaultA, e.DefaultB), 1e-15)
	assert.InDelta(t, 1.44270, e.Reference(0, 1), 1e-5)
}

func TestLookup(t *testing.T) {
	e, err := catalog.Lookup("sin")
	require.NoError(t, err)
	assert.InDelta(t, 2.0, e.Reference(0, math.Pi), 1e-15)

	_, err = catalog.Lookup("gamma")
	assert.ErrorIs(t, err, catalog.ErrUnknownFunction)
}

func TestNames_Sorted(t *testing.T) {
	names := catalog.Names()
	assert.Contains(t, names, "exp2")
	assert.Contains(t, names, "const")
	assert.IsIncreasing(t, names)
}

// TestReferences_AgreeWithSimpson cross-checks every antiderivative against
// a fine Simpson estimate on the entry's default interval.
func TestReferences_AgreeWithSimpson(t *testing.T) {
	for _, name := range catalog.Names() {
		e, err := catalog.Lookup(name)
		require.NoError(t, err)

		iv := e.Interval()
		p, err := partition.Uniform(iv.A, iv.B, 2000)
		require.NoError(t, err)
		simp, err := quadrature.Simpson(e.F, p)
		require.NoError(t, err, name)

		assert.InDelta(t, e.Reference(iv.A, iv.B), simp, 1e-5, name)
	}
}
