package diagram

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/analysis"
)

// Image size
const (
	imageWidth  = 8 * vg.Inch
	imageHeight = 4 * vg.Inch
)

var curveColors = map[analysis.Quantity]color.RGBA{
	analysis.Deflection:    {R: 0, G: 100, B: 0, A: 255},
	analysis.BendingMoment: {R: 0, G: 0, B: 139, A: 255},
	analysis.ShearForce:    {R: 139, G: 0, B: 0, A: 255},
}

// newCurvePlot builds the line chart of a response curve
func newCurvePlot(c analysis.Curve) (*plot.Plot, error) {
	if c.Len() == 0 {
		return nil, fmt.Errorf("curve %q has no samples", c.Analys)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Diagram", c.Analys.Title())
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", c.Analys.Title(), c.Analys.Unit())
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, c.Len())
	for i := range c.XData {
		pts[i] = plotter.XY{X: c.XData[i], Y: c.YData[i]}
	}

	lineColor, ok := curveColors[c.Analys]
	if !ok {
		lineColor = color.RGBA{A: 255}
	}

	curveLine, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curveLine.LineStyle.Width = vg.Points(2)
	curveLine.LineStyle.Color = lineColor
	curveLine.FillColor = color.RGBA{R: lineColor.R, G: lineColor.G, B: lineColor.B, A: 40}
	p.Add(curveLine)

	// Beam axis
	axis, err := plotter.NewLine(plotter.XYs{
		{X: c.XData[0], Y: 0},
		{X: c.XData[c.Len()-1], Y: 0},
	})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(1)
	axis.LineStyle.Color = color.Gray{Y: 96}
	p.Add(axis)

	// Mark extreme values
	maxX, maxY := c.Max()
	minX, minY := c.Min()
	extremes, err := plotter.NewScatter(plotter.XYs{
		{X: maxX, Y: maxY},
		{X: minX, Y: minY},
	})
	if err != nil {
		return nil, err
	}
	extremes.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	extremes.GlyphStyle.Radius = vg.Points(3)
	extremes.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(extremes)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{X: maxX, Y: maxY}, {X: minX, Y: minY}},
		Labels: []string{
			fmt.Sprintf("%.2f", maxY),
			fmt.Sprintf("%.2f", minY),
		},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	return p, nil
}

// ExportCurve exports a response curve to an image file (png, svg, pdf)
func ExportCurve(c analysis.Curve, filename string) error {
	p, err := newCurvePlot(c)
	if err != nil {
		return err
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(imageWidth, imageHeight, filename)
	default:
		return p.Save(imageWidth, imageHeight, filename+".png")
	}
}

// ExportCurves exports every result to its own file. The quantity is appended to
// the base name, e.g. beam.png becomes beam_deflection.png.
func ExportCurves(results []*analysis.Result, filename string) ([]string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))

	files := make([]string, 0, len(results))
	for _, res := range results {
		name := fmt.Sprintf("%s_%s%s", base, res.Equation.Analys, ext)
		if err := ExportCurve(res.Equation, name); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

// RenderCurve renders a response curve in memory; format is png, svg or pdf
func RenderCurve(c analysis.Curve, format string) ([]byte, error) {
	p, err := newCurvePlot(c)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(imageWidth, imageHeight, format)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
