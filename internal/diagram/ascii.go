package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/analysis"
)

// Terminal chart size
const (
	chartWidth  = 60
	chartHeight = 12
)

// DrawCurve renders a response curve as a terminal line chart
func DrawCurve(c analysis.Curve) string {
	if c.Len() == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s DIAGRAM\n", strings.ToUpper(c.Analys.Title())))
	sb.WriteString("  " + strings.Repeat("─", len(c.Analys.Title())+8) + "\n\n")

	graph := asciigraph.Plot(c.YData,
		asciigraph.Width(chartWidth),
		asciigraph.Height(chartHeight),
		asciigraph.Precision(2),
		asciigraph.Offset(4),
		asciigraph.Caption(fmt.Sprintf("%s (%s) over x = %.2f … %.2f m",
			c.Analys.Title(), c.Analys.Unit(), c.XData[0], c.XData[c.Len()-1])),
	)
	sb.WriteString(graph)
	sb.WriteString("\n")

	maxX, maxY := c.Max()
	minX, minY := c.Min()
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  max = %.2f %s at x = %.2f m\n", maxY, c.Analys.Unit(), maxX))
	sb.WriteString(fmt.Sprintf("  min = %.2f %s at x = %.2f m\n", minY, c.Analys.Unit(), minX))

	return sb.String()
}

// DrawSupports draws the beam line with its supports, e.g.
//
//	△━━━━━━━━━━━━━━━━━━━━△━━━━━━━━━━━━━○
func DrawSupports(l1, l2 float64) string {
	const width = 48

	total := l1 + l2
	if total <= 0 {
		return ""
	}

	line := []rune(strings.Repeat("━", width+1))
	line[0] = '△'
	line[width] = '○'
	if l2 > 0 {
		line[int(l1/total*width)] = '△'
	}

	var sb strings.Builder
	sb.WriteString("  " + strings.Repeat("↓", width+1) + "\n")
	sb.WriteString("  " + string(line) + "\n")
	if l2 > 0 {
		sb.WriteString(fmt.Sprintf("  l1 = %.2f m, l2 = %.2f m\n", l1, l2))
	} else {
		sb.WriteString(fmt.Sprintf("  l = %.2f m\n", l1))
	}
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to n runes; fmt widths count bytes
func pad(s string, n int) string {
	if r := len([]rune(s)); r < n {
		return s + strings.Repeat(" ", n-r)
	}
	return s
}
