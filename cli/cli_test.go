package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/quadlab/cli"
	"github.com/katalvlaran/quadlab/config"
)

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestFunctions(t *testing.T) {
	out, _, err := run(t, "functions")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "exp2")
	assert.Contains(t, out, "1.442695")
	assert.Contains(t, out, "sqrt")
}

func TestReport(t *testing.T) {
	out, _, err := run(t, "report", "-n", "10", "--seed", "1", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "n = 10, reference = 1.44270")
	assert.Contains(t, out, "Rectangle (random)")
}

func TestReport_FunctionAndBounds(t *testing.T) {
	out, _, err := run(t, "report", "--func", "square", "--b", "3", "-n", "6", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "reference = 9.00000", "∫₀³ x² = 9, a taken from the integrand")
}

func TestTable(t *testing.T) {
	out, _, err := run(t, "table", "--counts", "1,2,4", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 5)
}

func TestAreas(t *testing.T) {
	dir := t.TempDir()
	out, _, err := run(t, "areas", "--counts", "2,3", "--file", "fig.png", "-o", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fig.png"), strings.TrimSpace(out))
	_, err = os.Stat(filepath.Join(dir, "fig.png"))
	assert.NoError(t, err)
}

func TestConvergence_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "quadlab.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
function: sin
seed: 3
log-level: error
convergence:
  max-n: 8
  rules: [middle, simpson]
  file: ""
  csv: errors.csv
`), 0o644))

	out, _, err := run(t, "convergence", "-c", cfgPath, "-o", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "REDUCTION")
	assert.Contains(t, out, "Simpson")
	assert.NotContains(t, out, "Trapezoid")

	_, err = os.Stat(filepath.Join(dir, "errors.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "convergence.png"))
	assert.True(t, os.IsNotExist(err), "empty file name skips the figure")
}

func TestInvalidFlags(t *testing.T) {
	_, errOut, err := run(t, "report", "--func", "nope")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, errOut, "unknown function")

	_, _, err = run(t, "report", "--a", "2", "--b", "1")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "convergence", "--rules", "gauss")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
