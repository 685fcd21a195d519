// Package report renders a beam analysis as a PDF calculation sheet
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
)

const (
	defaultTitle = "Beam Analysis Report"
	font         = "Helvetica"
	pageWidth    = 190.0
	chartWidth   = 170.0
	chartHeight  = 85.0
	rowHeight    = 6.0
)

// Input is the content of a report
type Input struct {
	Project   string
	Author    string
	Title     string
	Notes     string
	Date      time.Time
	Condition string
	Beam      *beam.Beam
	Load      float64
	Reactions analysis.Reactions
	Results   []*analysis.Result
	// Charts embeds a PNG chart of each curve when set
	Charts bool
}

// Write renders the report to w
func Write(w io.Writer, in Input) error {
	if in.Beam == nil {
		return fmt.Errorf("report: no beam")
	}
	if in.Title == "" {
		in.Title = defaultTitle
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(in.Title, false)
	pdf.SetAuthor(in.Author, false)
	pdf.AddPage()

	pdf.SetFont(font, "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont(font, "", 11)
	pdf.Cell(0, rowHeight, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(rowHeight)
	pdf.Cell(0, rowHeight, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(rowHeight)
	pdf.Cell(0, rowHeight, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(10)

	section(pdf, "Input")
	table(pdf, [][3]string{
		{"Support condition", in.Condition, ""},
		{"Primary span", fmt.Sprintf("%.3f", in.Beam.PrimarySpan), "m"},
		{"Secondary span", fmt.Sprintf("%.3f", in.Beam.SecondarySpan), "m"},
		{"Uniform load", fmt.Sprintf("%.3f", in.Load), "kN/m"},
		{"Flexural rigidity EI", fmt.Sprintf("%.4g", in.Beam.Material.EI()), "N-mm2"},
		{"Deflection factor", fmt.Sprintf("%.3f", in.Beam.DeflectionFactor), ""},
	})

	section(pdf, "Reactions")
	table(pdf, [][3]string{
		{"R1", fmt.Sprintf("%.3f", in.Reactions.R1), "kN"},
		{"R2", fmt.Sprintf("%.3f", in.Reactions.R2), "kN"},
		{"R3", fmt.Sprintf("%.3f", in.Reactions.R3), "kN"},
		{"Support moment M1", fmt.Sprintf("%.3f", in.Reactions.M1), "kN-m"},
	})

	section(pdf, "Extremes")
	var rows [][3]string
	for _, r := range in.Results {
		q := r.Equation.Analys
		mx, my := r.Equation.Max()
		nx, ny := r.Equation.Min()
		rows = append(rows,
			[3]string{"Max " + q.Title(), fmt.Sprintf("%.2f at x = %.2f m", my, mx), q.Unit()},
			[3]string{"Min " + q.Title(), fmt.Sprintf("%.2f at x = %.2f m", ny, nx), q.Unit()},
		)
	}
	table(pdf, rows)

	if in.Notes != "" {
		section(pdf, "Notes")
		pdf.SetFont(font, "", 11)
		pdf.MultiCell(0, rowHeight, in.Notes, "", "L", false)
	}

	if in.Charts {
		if err := charts(pdf, in.Results); err != nil {
			return err
		}
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont(font, "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
}

func table(pdf *gofpdf.Fpdf, rows [][3]string) {
	widths := [3]float64{70, 90, pageWidth - 160}

	pdf.SetFont(font, "", 10)
	pdf.SetFillColor(240, 240, 240)
	for i, row := range rows {
		fill := i%2 == 0
		for k, text := range row {
			align := "L"
			if k == 1 {
				align = "R"
			}
			pdf.CellFormat(widths[k], rowHeight, text, "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

func charts(pdf *gofpdf.Fpdf, results []*analysis.Result) error {
	opt := gofpdf.ImageOptions{ImageType: "PNG"}

	for i, r := range results {
		img, err := diagram.RenderCurve(r.Equation, "png")
		if err != nil {
			return err
		}

		name := fmt.Sprintf("chart%d", i)
		pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(img))
		if i%2 == 0 {
			pdf.AddPage()
		}
		pdf.ImageOptions(name, 20, pdf.GetY(), chartWidth, chartHeight, true, opt, 0, "")
		pdf.Ln(5)

		if err = pdf.Error(); err != nil {
			return err
		}
	}

	return nil
}
