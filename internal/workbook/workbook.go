// Package workbook exports analysis results to xlsx workbooks and imports batch
// jobs from them.
package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/batch"
)

const (
	summarySheet      = "Summary"
	maxSheetName      = 31
	chartAnchor       = "D2"
	defaultSheet      = "Sheet1"
	columnWidth       = 16
	invalidSheetChars = `[]:*?/\'`
)

// WriteAnalysis writes one workbook for a single beam: a summary sheet with
// the reactions and extremes, then one sheet per curve with its line chart.
func WriteAnalysis(w io.Writer, condition string, reactions analysis.Reactions, results []*analysis.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"Item", "Value", "Unit"}, {"Condition", condition, ""}}
	if len(results) > 0 {
		r := results[0]
		rows = append(rows,
			[]interface{}{"Load", r.Load, "kN/m"},
			[]interface{}{"Primary span", r.Beam.PrimarySpan, "m"},
			[]interface{}{"Secondary span", r.Beam.SecondarySpan, "m"},
		)
	}
	rows = append(rows,
		[]interface{}{"R1", reactions.R1, "kN"},
		[]interface{}{"R2", reactions.R2, "kN"},
		[]interface{}{"R3", reactions.R3, "kN"},
	)
	for _, r := range results {
		q := r.Equation.Analys
		mx, my := r.Equation.Max()
		nx, ny := r.Equation.Min()
		rows = append(rows,
			[]interface{}{"Max " + q.Title(), my, fmt.Sprintf("%s at x = %.2f m", q.Unit(), mx)},
			[]interface{}{"Min " + q.Title(), ny, fmt.Sprintf("%s at x = %.2f m", q.Unit(), nx)},
		)
	}
	if err := setRows(f, summarySheet, 1, rows); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "A", "C", columnWidth); err != nil {
		return err
	}

	for _, r := range results {
		q := r.Equation.Analys
		if err := writeCurveSheet(f, q.Title(), q, r.Equation); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// WriteBatch writes a summary row per outcome and a curve sheet per
// successful job.
func WriteBatch(w io.Writer, outcomes []batch.Outcome) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(summarySheet)
	if err != nil {
		return err
	}

	header := []interface{}{"Name", "Condition", "Span 1 (m)", "Span 2 (m)", "Load (kN/m)",
		"R1 (kN)", "R2 (kN)", "R3 (kN)"}
	for _, q := range analysis.Quantities {
		header = append(header, "Max "+q.Title()+" ("+q.Unit()+")", "Min "+q.Title()+" ("+q.Unit()+")")
	}
	header = append(header, "Error")
	if err = sw.SetRow("A1", header); err != nil {
		return err
	}

	for i, out := range outcomes {
		row := []interface{}{out.Job.Name, out.Job.Condition, "", "", out.Job.Load}
		if out.Job.Beam != nil {
			row[2], row[3] = out.Job.Beam.PrimarySpan, out.Job.Beam.SecondarySpan
		}

		if out.Err != nil {
			row = append(row, make([]interface{}, 3+2*len(analysis.Quantities))...)
			row = append(row, out.Err.Error())
		} else {
			row = append(row, out.Reactions.R1, out.Reactions.R2, out.Reactions.R3)
			for _, r := range out.Results {
				_, my := r.Equation.Max()
				_, ny := r.Equation.Min()
				row = append(row, my, ny)
			}
			row = append(row, "")
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err = sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err = sw.Flush(); err != nil {
		return err
	}

	for i, out := range outcomes {
		if out.Err != nil {
			continue
		}
		if err = writeJobSheet(f, sheetName(fmt.Sprintf("%d %s", i+1, out.Job.Name)), out.Results); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeCurveSheet(f *excelize.File, sheet string, q analysis.Quantity, c analysis.Curve) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	rows := [][]interface{}{{"x (m)", fmt.Sprintf("%s (%s)", q.Title(), q.Unit())}}
	for i := range c.XData {
		rows = append(rows, []interface{}{c.XData[i], c.YData[i]})
	}
	if err := setRows(f, sheet, 1, rows); err != nil {
		return err
	}

	return f.AddChart(sheet, chartAnchor, lineChart(q.Title(), series(sheet, 1, 2, c.Len())))
}

// writeJobSheet lays the curves of one job side by side, two columns each
func writeJobSheet(f *excelize.File, sheet string, results []*analysis.Result) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	var chartSeries []excelize.ChartSeries
	for i, r := range results {
		c := r.Equation
		q := c.Analys
		xCol := 2*i + 1
		cols := [][]interface{}{{"x (m)", fmt.Sprintf("%s (%s)", q.Title(), q.Unit())}}
		for k := range c.XData {
			cols = append(cols, []interface{}{c.XData[k], c.YData[k]})
		}
		for row, values := range cols {
			cell, err := excelize.CoordinatesToCellName(xCol, row+1)
			if err != nil {
				return err
			}
			if err = f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
		}

		if q == analysis.BendingMoment {
			chartSeries = series(sheet, xCol, xCol+1, c.Len())
		}
	}

	if chartSeries == nil {
		return nil
	}
	anchor, _ := excelize.CoordinatesToCellName(2*len(results)+2, 2)
	return f.AddChart(sheet, anchor, lineChart(analysis.BendingMoment.Title(), chartSeries))
}

func setRows(f *excelize.File, sheet string, firstRow int, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, firstRow+i)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}
	return nil
}

func series(sheet string, xCol, yCol, n int) []excelize.ChartSeries {
	ref := func(col, row int) string {
		cell, _ := excelize.CoordinatesToCellName(col, row, true)
		return cell
	}
	q := "'" + sheet + "'!"

	return []excelize.ChartSeries{{
		Name:       q + ref(yCol, 1),
		Categories: q + ref(xCol, 2) + ":" + ref(xCol, n+1),
		Values:     q + ref(yCol, 2) + ":" + ref(yCol, n+1),
	}}
}

func lineChart(title string, s []excelize.ChartSeries) *excelize.Chart {
	return &excelize.Chart{
		Type:   excelize.Line,
		Series: s,
		Title:  []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{Position: "none"},
	}
}

// sheetName strips characters excel rejects and keeps the name within limits
func sheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return '_'
		}
		return r
	}, name)

	runes := []rune(name)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	return string(runes)
}
