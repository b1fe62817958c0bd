// Package lab runs the classic numerical-integration experiments from a
// config.Config: the partition figure, the single-n report, the estimates
// table and the convergence study.
package lab

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/quadlab/catalog"
	"github.com/katalvlaran/quadlab/config"
	"github.com/katalvlaran/quadlab/convergence"
	"github.com/katalvlaran/quadlab/core"
	"github.com/katalvlaran/quadlab/partition"
	"github.com/katalvlaran/quadlab/quadrature"
	"github.com/katalvlaran/quadlab/render"
	"github.com/katalvlaran/quadlab/report"
)

var log = logging.MustGetLogger("lab")

const (
	tileWidth  = 5 * vg.Inch
	tileHeight = 4 * vg.Inch
	areaCols   = 3
)

// Lab holds the resolved experiment inputs. One Lab shares a single RNG
// across all experiments so a configured seed reproduces the whole run.
type Lab struct {
	cfg         config.Config
	entry       catalog.Entry
	iv          core.Interval
	reference   float64
	partitioner partition.Partitioner
	rng         *rand.Rand
	out         io.Writer
}

// New validates cfg and resolves the integrand, bounds and reference.
// Text output goes to out.
func New(cfg config.Config, out io.Writer) (*Lab, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	entry, err := cfg.Entry()
	if err != nil {
		return nil, err
	}
	iv, err := cfg.Bounds()
	if err != nil {
		return nil, err
	}
	reference, err := cfg.ReferenceValue()
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	l := &Lab{
		cfg:       cfg,
		entry:     entry,
		iv:        iv,
		reference: reference,
		rng:       rand.New(rand.NewSource(seed)),
		out:       out,
	}
	if cfg.Sampling.Uniform {
		l.partitioner = partition.UniformPartitioner
	} else {
		l.partitioner = partition.AdaptiveWith(
			partition.WithOversample(cfg.Sampling.Oversample),
			partition.WithMinSamples(cfg.Sampling.MinSamples),
		)
	}
	log.Infof("function=%s interval=[%g,%g] reference=%.6f seed=%d",
		entry.Name, iv.A, iv.B, reference, seed)

	return l, nil
}

// Reference returns the value every estimate is compared against.
func (l *Lab) Reference() float64 { return l.reference }

// Partition builds the configured partition for n cells.
func (l *Lab) Partition(n int) (core.Partition, error) {
	p, err := l.partitioner(l.entry.F, l.iv.A, l.iv.B, n)
	if err != nil {
		return core.Partition{}, err
	}
	if p.Strategy() == core.UniformFallback {
		log.Warningf("n=%d: %s has no variation on [%g,%g], using a uniform partition",
			n, l.entry.Name, l.iv.A, l.iv.B)
	}

	return p, nil
}

// Areas draws one partition figure per configured count, tiled into
// Areas.File under the output directory, and returns the written path.
func (l *Lab) Areas() (string, error) {
	plots := make([]*plot.Plot, 0, len(l.cfg.Areas.Counts))
	for _, n := range l.cfg.Areas.Counts {
		p, err := l.Partition(n)
		if err != nil {
			return "", fmt.Errorf("Areas: %w", err)
		}
		area, err := quadrature.Apply(quadrature.RuleMiddle, l.entry.F, p)
		if err != nil {
			return "", fmt.Errorf("Areas: n=%d: %w", n, err)
		}
		pl, err := render.PartitionPlot(l.entry.F, l.entry.Expr, p, area)
		if err != nil {
			return "", fmt.Errorf("Areas: n=%d: %w", n, err)
		}
		plots = append(plots, pl)
	}

	path, err := l.outputPath(l.cfg.Areas.File)
	if err != nil {
		return "", err
	}
	if err := render.SaveTiled(path, plots, areaCols, tileWidth, tileHeight); err != nil {
		return "", fmt.Errorf("Areas: %w", err)
	}

	return path, nil
}

// Report prints every rule's estimate and absolute error at Report.N.
func (l *Lab) Report() error {
	n := l.cfg.Report.N
	p, err := l.Partition(n)
	if err != nil {
		return fmt.Errorf("Report: %w", err)
	}
	est, err := quadrature.Estimate(l.entry.F, p, quadrature.WithRand(l.rng))
	if err != nil {
		return fmt.Errorf("Report: %w", err)
	}

	return report.Estimates(l.out, n, l.reference, est, quadrature.AllRules)
}

// Table prints the middle, trapezoid and Simpson estimates for every
// configured count.
func (l *Lab) Table() error {
	res, err := l.study(l.cfg.Table.Counts, []quadrature.Rule{
		quadrature.RuleMiddle, quadrature.RuleTrapezoid, quadrature.RuleSimpson,
	})
	if err != nil {
		return fmt.Errorf("Table: %w", err)
	}

	return report.Series(l.out, res)
}

// Convergence studies n = 1..MaxN for the configured rules, prints the
// summary, then writes the tiled error figure and the CSV export when
// their file names are set.
func (l *Lab) Convergence() (convergence.Result, error) {
	rules, err := quadrature.ParseRules(l.cfg.Convergence.Rules)
	if err != nil {
		return convergence.Result{}, fmt.Errorf("Convergence: %w", err)
	}
	res, err := l.study(convergence.Range(1, l.cfg.Convergence.MaxN), rules)
	if err != nil {
		return convergence.Result{}, fmt.Errorf("Convergence: %w", err)
	}
	if err := report.Summary(l.out, res); err != nil {
		return convergence.Result{}, err
	}

	if name := l.cfg.Convergence.File; name != "" {
		plots := make([]*plot.Plot, 0, len(res.Rules))
		for _, r := range res.Rules {
			pl, err := render.ConvergencePlot(r.Title(), res.Series[r])
			if err != nil {
				return convergence.Result{}, fmt.Errorf("Convergence: %w", err)
			}
			plots = append(plots, pl)
		}
		path, err := l.outputPath(name)
		if err != nil {
			return convergence.Result{}, err
		}
		if err := render.SaveTiled(path, plots, len(plots), tileWidth, tileHeight); err != nil {
			return convergence.Result{}, fmt.Errorf("Convergence: %w", err)
		}
	}

	if name := l.cfg.Convergence.CSV; name != "" {
		if err := l.writeCSV(name, res); err != nil {
			return convergence.Result{}, fmt.Errorf("Convergence: %w", err)
		}
	}

	return res, nil
}

// All runs Areas, Report, Table and Convergence in that order and stops
// at the first failure.
func (l *Lab) All() error {
	if _, err := l.Areas(); err != nil {
		return err
	}
	if err := l.Report(); err != nil {
		return err
	}
	if err := l.Table(); err != nil {
		return err
	}
	_, err := l.Convergence()

	return err
}

func (l *Lab) study(counts []int, rules []quadrature.Rule) (convergence.Result, error) {
	return convergence.Study(l.entry.F, l.iv, l.reference, counts, convergence.Options{
		Partitioner: l.partitioner,
		Rules:       rules,
		Rand:        l.rng,
	})
}

func (l *Lab) writeCSV(name string, res convergence.Result) error {
	path, err := l.outputPath(name)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.CSV(f, res); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Infof("wrote %s", path)

	return nil
}

// outputPath joins name onto the output directory, creating it if needed.
func (l *Lab) outputPath(name string) (string, error) {
	dir := l.cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("output dir %s: %w", dir, err)
	}

	return filepath.Join(dir, name), nil
}
