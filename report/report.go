// Package report renders quadrature results as console tables and CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/quadlab/convergence"
	"github.com/katalvlaran/quadlab/quadrature"
)

// NewTable returns a borderless, left-aligned, tab-padded table.
func NewTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	return table
}

func format5(v float64) string { return strconv.FormatFloat(v, 'f', 5, 64) }

// Estimates writes one row per rule with its value and absolute error
// against reference, headed by n and the reference itself. Rules missing
// from est are skipped.
func Estimates(w io.Writer, n int, reference float64, est quadrature.Estimates, rules []quadrature.Rule) error {
	if _, err := fmt.Fprintf(w, "===== n = %d, reference = %s =====\n", n, format5(reference)); err != nil {
		return err
	}
	table := NewTable(w)
	table.SetHeader([]string{"METHOD", "VALUE", "ABS ERROR"})
	for _, r := range rules {
		v, ok := est[r]
		if !ok {
			continue
		}
		table.Append([]string{r.Title(), format5(v), format5(est.AbsError(r, reference))})
	}
	table.Render()

	return nil
}

// Series writes one row per tested n and one estimate column per rule.
func Series(w io.Writer, res convergence.Result) error {
	if _, err := fmt.Fprintf(w, "===== reference = %s =====\n", format5(res.Reference)); err != nil {
		return err
	}
	header := []string{"N"}
	for _, r := range res.Rules {
		header = append(header, r.Title())
	}
	table := NewTable(w)
	table.SetHeader(header)
	for i, rows := 0, rowsOf(res); i < rows; i++ {
		row := []string{strconv.Itoa(res.Series[res.Rules[0]][i].N)}
		for _, r := range res.Rules {
			row = append(row, format5(res.Series[r][i].Estimate))
		}
		table.Append(row)
	}
	table.Render()

	return nil
}

// Summary writes the mean absolute/squared error and the error reduction
// of every studied rule.
func Summary(w io.Writer, res convergence.Result) error {
	table := NewTable(w)
	table.SetHeader([]string{"METHOD", "MAE", "MSE", "REDUCTION"})
	for _, r := range res.Rules {
		s := res.Series[r]
		table.Append([]string{
			r.Title(),
			strconv.FormatFloat(s.MeanAbs(), 'e', 3, 64),
			strconv.FormatFloat(s.MeanSquared(), 'e', 3, 64),
			strconv.FormatFloat(s.Reduction(), 'g', 4, 64),
		})
	}
	table.Render()

	return nil
}

// CSV writes the study in long form: n, rule, estimate, abs_error, squared_error.
func CSV(w io.Writer, res convergence.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"n", "rule", "estimate", "abs_error", "squared_error"}); err != nil {
		return err
	}
	for _, r := range res.Rules {
		for _, p := range res.Series[r] {
			rec := []string{
				strconv.Itoa(p.N),
				string(r),
				strconv.FormatFloat(p.Estimate, 'g', -1, 64),
				strconv.FormatFloat(p.AbsError, 'g', -1, 64),
				strconv.FormatFloat(p.SquaredError, 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// rowsOf returns the number of rows of the shortest series (0 when no rules).
func rowsOf(res convergence.Result) int {
	if len(res.Rules) == 0 {
		return 0
	}
	rows := len(res.Series[res.Rules[0]])
	for _, r := range res.Rules[1:] {
		if len(res.Series[r]) < rows {
			rows = len(res.Series[r])
		}
	}

	return rows
}
