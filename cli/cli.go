// Package cli wires the lab experiments to a cobra command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quadlab/catalog"
	"github.com/katalvlaran/quadlab/config"
	"github.com/katalvlaran/quadlab/lab"
	"github.com/katalvlaran/quadlab/logger"
	"github.com/katalvlaran/quadlab/report"
)

var log = logging.MustGetLogger("cli")

// globalFlags are the persistent flags shared by every experiment command.
type globalFlags struct {
	configPath string
	function   string
	a, b       float64
	seed       int64
	outputDir  string
	logLevel   string
	uniform    bool
}

// Execute runs the quadlab command tree on os.Args and exits non-zero on
// failure.
func Execute() {
	root := NewRootCommand(os.Stdout, os.Stderr)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree writing results to out and logs
// and errors to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var gf globalFlags
	root := &cobra.Command{
		Use:          "quadlab",
		Short:        "adaptive partitions and quadrature experiments",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVarP(&gf.configPath, "config", "c", "", "YAML experiment file")
	pf.StringVarP(&gf.function, "func", "f", catalog.DefaultName, "integrand name (see 'quadlab functions')")
	pf.Float64Var(&gf.a, "a", 0, "left bound, default from the integrand")
	pf.Float64Var(&gf.b, "b", 1, "right bound, default from the integrand")
	pf.Int64Var(&gf.seed, "seed", 0, "seed for the random rectangle rule")
	pf.StringVarP(&gf.outputDir, "out", "o", ".", "directory for figures and CSV")
	pf.StringVar(&gf.logLevel, "log-level", "info", "debug, info, warning, error")
	pf.BoolVar(&gf.uniform, "uniform", false, "use uniform instead of adaptive partitions")

	root.AddCommand(registerAreasCommand(&gf))
	root.AddCommand(registerReportCommand(&gf))
	root.AddCommand(registerTableCommand(&gf))
	root.AddCommand(registerConvergenceCommand(&gf))
	root.AddCommand(registerAllCommand(&gf))
	root.AddCommand(registerFunctionsCommand())

	return root
}

func registerAreasCommand(gf *globalFlags) *cobra.Command {
	var counts []int
	var file string
	areas := &cobra.Command{
		Use:     "areas",
		Short:   "draw the midpoint rectangles of adaptive partitions",
		Example: "quadlab areas --counts 4,8,16 -o out",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLab(cmd, gf, func(cfg *config.Config) {
				if cmd.Flags().Changed("counts") {
					cfg.Areas.Counts = counts
				}
				if cmd.Flags().Changed("file") {
					cfg.Areas.File = file
				}
			})
			if err != nil {
				return err
			}
			path, err := l.Areas()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
	areas.Flags().IntSliceVar(&counts, "counts", nil, "cell counts, one figure each")
	areas.Flags().StringVar(&file, "file", "", "PNG file name inside the output dir")

	return areas
}

func registerReportCommand(gf *globalFlags) *cobra.Command {
	var n int
	cmdReport := &cobra.Command{
		Use:     "report",
		Short:   "print every rule's estimate and error for one cell count",
		Example: "quadlab report -n 10 --seed 1",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLab(cmd, gf, func(cfg *config.Config) {
				if cmd.Flags().Changed("cells") {
					cfg.Report.N = n
				}
			})
			if err != nil {
				return err
			}

			return l.Report()
		},
	}
	cmdReport.Flags().IntVarP(&n, "cells", "n", 10, "number of cells")

	return cmdReport
}

func registerTableCommand(gf *globalFlags) *cobra.Command {
	var counts []int
	table := &cobra.Command{
		Use:     "table",
		Short:   "print middle, trapezoid and Simpson estimates per cell count",
		Example: "quadlab table --counts 1,2,4,8",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLab(cmd, gf, func(cfg *config.Config) {
				if cmd.Flags().Changed("counts") {
					cfg.Table.Counts = counts
				}
			})
			if err != nil {
				return err
			}

			return l.Table()
		},
	}
	table.Flags().IntSliceVar(&counts, "counts", nil, "cell counts, one row each")

	return table
}

func registerConvergenceCommand(gf *globalFlags) *cobra.Command {
	var (
		maxN      int
		rules     []string
		file, csv string
	)
	conv := &cobra.Command{
		Use:     "convergence",
		Short:   "study MAE and MSE for n = 1..max-n",
		Example: "quadlab convergence --max-n 100 --rules middle,simpson --csv errors.csv",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLab(cmd, gf, func(cfg *config.Config) {
				flags := cmd.Flags()
				if flags.Changed("max-n") {
					cfg.Convergence.MaxN = maxN
				}
				if flags.Changed("rules") {
					cfg.Convergence.Rules = rules
				}
				if flags.Changed("file") {
					cfg.Convergence.File = file
				}
				if flags.Changed("csv") {
					cfg.Convergence.CSV = csv
				}
			})
			if err != nil {
				return err
			}
			_, err = l.Convergence()

			return err
		},
	}
	conv.Flags().IntVar(&maxN, "max-n", 300, "largest cell count")
	conv.Flags().StringSliceVar(&rules, "rules", nil, "rules to study")
	conv.Flags().StringVar(&file, "file", "", "PNG file name, empty to skip")
	conv.Flags().StringVar(&csv, "csv", "", "CSV file name, empty to skip")

	return conv
}

func registerAllCommand(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "run areas, report, table and convergence",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLab(cmd, gf, nil)
			if err != nil {
				return err
			}

			return l.All()
		},
	}
}

func registerFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "list the available integrands",
		Run: func(cmd *cobra.Command, args []string) {
			table := report.NewTable(cmd.OutOrStdout())
			table.SetHeader([]string{"NAME", "F(X)", "A", "B", "INTEGRAL"})
			for _, name := range catalog.Names() {
				e, _ := catalog.Lookup(name)
				table.Append([]string{
					name, e.Expr,
					fmt.Sprint(e.DefaultA), fmt.Sprint(e.DefaultB),
					fmt.Sprintf("%.6f", e.Reference(e.DefaultA, e.DefaultB)),
				})
			}
			table.Render()
		},
	}
}

// newLab loads the config file (or defaults), applies the persistent
// flags, then the command's own overrides, and starts logging at the
// resulting level.
func newLab(cmd *cobra.Command, gf *globalFlags, override func(*config.Config)) (*lab.Lab, error) {
	cfg := config.Default()
	if gf.configPath != "" {
		var err error
		if cfg, err = config.Load(gf.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("func") {
		cfg.Function = gf.function
	}
	if flags.Changed("a") || flags.Changed("b") {
		iv := config.IntervalConfig{A: gf.a, B: gf.b}
		if cur, err := cfg.Bounds(); err == nil {
			if !flags.Changed("a") {
				iv.A = cur.A
			}
			if !flags.Changed("b") {
				iv.B = cur.B
			}
		}
		cfg.Interval = &iv
	}
	if flags.Changed("seed") {
		seed := gf.seed
		cfg.Seed = &seed
	}
	if flags.Changed("out") {
		cfg.OutputDir = gf.outputDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(gf.logLevel)
	}
	if flags.Changed("uniform") {
		cfg.Sampling.Uniform = gf.uniform
	}
	if override != nil {
		override(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	if err := logger.InitLog(errOut, cfg.LogLevel, errOut == os.Stderr); err != nil {
		return nil, err
	}
	log.Debugf("running %s with %+v", cmd.Name(), cfg)

	return lab.New(cfg, cmd.OutOrStdout())
}
