// Package render draws partitions and convergence studies with gonum/plot.
//
// Two figures are produced:
//   - PartitionPlot: the integrand, the axes, red markers at a and b and one
//     shaded midpoint rectangle per cell, titled with the midpoint area.
//   - ConvergencePlot: absolute and squared error against the cell count.
//
// Tile arranges several plots on one PNG.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/op/go-logging"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/katalvlaran/quadlab/convergence"
	"github.com/katalvlaran/quadlab/core"
)

var log = logging.MustGetLogger("render")

const (
	curveSamples = 1000
	marginRatio  = 0.2
)

var (
	curveColor  = color.RGBA{B: 255, A: 255}
	boundColor  = color.RGBA{R: 255, A: 128}
	cellFill    = color.RGBA{G: 128, A: 77}
	cellOutline = color.Black
	axisColor   = color.Black
)

// PartitionPlot draws f over p's interval (with a 20% margin on each side)
// and one rectangle of height f(mid) per cell. label names the integrand
// in the legend; area is printed in the title.
func PartitionPlot(f core.Func, label string, p core.Partition, area float64) (*plot.Plot, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("PartitionPlot: %w", core.ErrMalformedPartition)
	}
	iv := p.Interval()
	margin := marginRatio * iv.Length()

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("Area = %.4f, n = %d", area, p.Len())
	pl.X.Label.Text = "x"
	pl.Y.Label.Text = "f(x)"
	pl.Add(plotter.NewGrid())

	for _, c := range p.Cells() {
		h := f(c.Mid())
		rect, err := plotter.NewPolygon(plotter.XYs{
			{X: c.Lo, Y: 0}, {X: c.Hi, Y: 0}, {X: c.Hi, Y: h}, {X: c.Lo, Y: h},
		})
		if err != nil {
			return nil, fmt.Errorf("PartitionPlot: cell [%v,%v]: %w", c.Lo, c.Hi, err)
		}
		rect.Color = cellFill
		rect.LineStyle.Color = cellOutline
		rect.LineStyle.Width = vg.Points(1.5)
		pl.Add(rect)
	}

	curve, err := plotter.NewLine(sampleCurve(f, iv.A-margin, iv.B+margin, curveSamples))
	if err != nil {
		return nil, fmt.Errorf("PartitionPlot: curve: %w", err)
	}
	curve.LineStyle.Color = curveColor
	curve.LineStyle.Width = vg.Points(1.5)
	pl.Add(curve)
	pl.Legend.Add(label, curve)

	for _, x := range []float64{iv.A, iv.B} {
		bound, err := segment(x, 0, x, f(x))
		if err != nil {
			return nil, fmt.Errorf("PartitionPlot: bound: %w", err)
		}
		bound.LineStyle.Color = boundColor
		bound.LineStyle.Width = vg.Points(0.5)
		pl.Add(bound)
	}

	if err := addAxes(pl, iv.A-margin, iv.B+margin); err != nil {
		return nil, fmt.Errorf("PartitionPlot: %w", err)
	}

	return pl, nil
}

// ConvergencePlot draws MAE and MSE of one rule against the cell count.
func ConvergencePlot(title string, s convergence.ErrorSeries) (*plot.Plot, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("ConvergencePlot(%s): empty series", title)
	}
	mae := make(plotter.XYs, len(s))
	mse := make(plotter.XYs, len(s))
	for i, p := range s {
		mae[i] = plotter.XY{X: float64(p.N), Y: p.AbsError}
		mse[i] = plotter.XY{X: float64(p.N), Y: p.SquaredError}
	}

	pl := plot.New()
	pl.Title.Text = title
	pl.X.Label.Text = "Number of cells"
	pl.Y.Label.Text = "Error"
	pl.Add(plotter.NewGrid())
	if err := plotutil.AddLines(pl, "MAE", mae, "MSE", mse); err != nil {
		return nil, fmt.Errorf("ConvergencePlot(%s): %w", title, err)
	}

	return pl, nil
}

// Tile draws plots on a cols-wide grid and writes the image as PNG.
// Each tile is w×h.
func Tile(out io.Writer, plots []*plot.Plot, cols int, w, h vg.Length) error {
	if len(plots) == 0 {
		return fmt.Errorf("Tile: no plots")
	}
	if cols < 1 || cols > len(plots) {
		cols = len(plots)
	}
	rows := (len(plots) + cols - 1) / cols

	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for c := range grid[r] {
			if i := r*cols + c; i < len(plots) {
				grid[r][c] = plots[i]
			}
		}
	}

	img := vgimg.New(w*vg.Length(cols), h*vg.Length(rows))
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows, Cols: cols,
		PadX: vg.Millimeter, PadY: vg.Millimeter,
		PadTop: vg.Points(2), PadBottom: vg.Points(2),
		PadLeft: vg.Points(2), PadRight: vg.Points(2),
	}
	canvases := plot.Align(grid, tiles, dc)
	for r := range grid {
		for c, p := range grid[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(out); err != nil {
		return fmt.Errorf("Tile: %w", err)
	}

	return nil
}

// SaveTiled writes Tile's output to path.
func SaveTiled(path string, plots []*plot.Plot, cols int, w, h vg.Length) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveTiled: %w", err)
	}
	if err := Tile(f, plots, cols, w, h); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("SaveTiled: %w", err)
	}
	log.Infof("wrote %s (%d plots)", path, len(plots))

	return nil
}

// sampleCurve returns n evenly spaced points of f on [lo, hi], dropping
// points where f is not finite (e.g. sqrt left of 0).
func sampleCurve(f core.Func, lo, hi float64, n int) plotter.XYs {
	xys := make(plotter.XYs, 0, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + step*float64(i)
		y := f(x)
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}

	return xys
}

func segment(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
}

// addAxes draws the dashed x axis across [lo, hi] and a dashed y axis at
// x = 0 when 0 is in range.
func addAxes(pl *plot.Plot, lo, hi float64) error {
	dashes := []vg.Length{vg.Points(4), vg.Points(3)}

	xAxis, err := segment(lo, 0, hi, 0)
	if err != nil {
		return err
	}
	xAxis.LineStyle.Color = axisColor
	xAxis.LineStyle.Dashes = dashes
	pl.Add(xAxis)

	if lo <= 0 && hi >= 0 {
		line, err := segment(0, pl.Y.Min, 0, pl.Y.Max)
		if err != nil {
			return err
		}
		line.LineStyle.Color = axisColor
		line.LineStyle.Dashes = dashes
		pl.Add(line)
	}

	return nil
}
