package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

func momentResult(t *testing.T) *analysis.Result {
	t.Helper()

	b := beam.NewBeam(6, 4, beam.NewMaterial("steel", map[string]float64{beam.PropEI: 2e9}))
	res, err := analysis.NewBeamAnalysis().GetBendingMoment(b, 10, analysis.TwoSpanUnequalCondition)
	require.NoError(t, err)
	return res
}

func TestDrawCurve(t *testing.T) {
	s := DrawCurve(momentResult(t).Equation)

	assert.Contains(t, s, "BENDING MOMENT DIAGRAM")
	assert.Contains(t, s, "kN-m")
	assert.Contains(t, s, "max = 35.00 kN-m at x = 6.00 m")
	assert.Empty(t, DrawCurve(analysis.Curve{}))
}

func TestDrawSupports(t *testing.T) {
	s := DrawSupports(6, 4)
	assert.Equal(t, 3, strings.Count(s, "△")+strings.Count(s, "○"))
	assert.Contains(t, s, "l1 = 6.00 m, l2 = 4.00 m")

	s = DrawSupports(4, 0)
	assert.Equal(t, 1, strings.Count(s, "△"))
	assert.Contains(t, s, "l = 4.00 m")
}

func TestDrawSummaryBox(t *testing.T) {
	s := DrawSummaryBox("REACTIONS", []string{"R1 = 24.17 kN", "R2 = 64.58 kN"})
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")

	require.Len(t, lines, 5)
	for _, line := range lines {
		assert.Equal(t, len([]rune(lines[0])), len([]rune(line)))
	}
}

func TestRenderCurve(t *testing.T) {
	data, err := RenderCurve(momentResult(t).Equation, "png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\x89PNG"))

	_, err = RenderCurve(analysis.Curve{Analys: analysis.ShearForce}, "png")
	assert.Error(t, err)
}

func TestExportCurves(t *testing.T) {
	b := beam.NewBeam(4, 0, beam.NewMaterial("steel", map[string]float64{beam.PropEI: 2e9}))
	results, err := analysis.NewBeamAnalysis().AnalyzeAll(b, 10, analysis.SimplySupportedCondition)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := ExportCurves(results, filepath.Join(dir, "out", "beam.svg"))
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "out", "beam_shearforce.svg"), files[2])

	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	}
}
