// Package convergence measures how quadrature error shrinks as partitions
// get finer.
//
// A Study runs the partitioner once per cell count, feeds that partition to
// every requested rule, and records an ErrorSeries of
// (n, estimate, |error|, error²) per rule. The series back both the
// tabular reports and the MAE/MSE plots of the render package.
//
//	res, err := convergence.Study(f, iv, 1/math.Ln2, convergence.Range(1, 300),
//	  convergence.DefaultOptions())
//	fmt.Println(res.Series[quadrature.RuleSimpson].Reduction())
package convergence
