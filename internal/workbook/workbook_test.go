package workbook

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

func jobsWorkbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadJobs(t *testing.T) {
	buf := jobsWorkbook(t, [][]interface{}{
		{"name", "condition", "span_m", "span2_m", "udl_kn_m", "ei_nmm2", "factor"},
		{"B1", "simply-supported", 4, 0, 10, 2e9},
		{},
		{"B2", "two-span-unequal", 6, 4, "10", "4e9", 0.5},
	})

	jobs, err := ReadJobs(buf, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "B1", jobs[0].Name)
	assert.Equal(t, analysis.SimplySupportedCondition, jobs[0].Condition)
	assert.EqualValues(t, 4, jobs[0].Beam.PrimarySpan)
	assert.EqualValues(t, 10, jobs[0].Load)
	assert.EqualValues(t, 2e9, jobs[0].Beam.Material.EI())
	assert.EqualValues(t, 1, jobs[0].Beam.DeflectionFactor)

	assert.EqualValues(t, 4, jobs[1].Beam.SecondarySpan)
	assert.EqualValues(t, 0.5, jobs[1].Beam.DeflectionFactor)
}

func TestReadJobsErrors(t *testing.T) {
	_, err := ReadJobs(jobsWorkbook(t, [][]interface{}{{"name"}}), 1)
	assert.Error(t, err)

	_, err = ReadJobs(jobsWorkbook(t, [][]interface{}{
		{"name", "condition", "span_m", "span2_m", "udl_kn_m", "ei_nmm2"},
		{"B1", "simply-supported", "four", 0, 10, 2e9},
	}), 1)
	assert.ErrorContains(t, err, "row 2")

	_, err = ReadJobs(bytes.NewBufferString("not a workbook"), 1)
	assert.Error(t, err)
}

func TestWriteAnalysis(t *testing.T) {
	ba := analysis.NewBeamAnalysis()
	b := beam.NewBeam(6, 4, beam.NewMaterial("steel", map[string]float64{beam.PropEI: 2e9}))

	results, err := ba.AnalyzeAll(b, 10, analysis.TwoSpanUnequalCondition)
	require.NoError(t, err)
	reactions, err := ba.GetReactions(b, 10, analysis.TwoSpanUnequalCondition)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteAnalysis(&buf, analysis.TwoSpanUnequalCondition, reactions, results))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Deflection", "Bending Moment", "Shear Force"}, f.GetSheetList())

	r1, err := f.GetCellValue("Summary", "B6")
	require.NoError(t, err)
	assert.InDelta(t, 24.1667, cast.ToFloat64(r1), 1e-3)

	rows, err := f.GetRows("Bending Moment")
	require.NoError(t, err)
	assert.Len(t, rows, results[1].Equation.Len()+1)
	assert.Equal(t, "x (m)", rows[0][0])
	assert.Equal(t, "10", rows[len(rows)-1][0])
}

func TestWriteBatch(t *testing.T) {
	steel := beam.NewMaterial("steel", map[string]float64{beam.PropEI: 2e9})
	jobs := []batch.Job{
		{Name: "B1", Condition: analysis.SimplySupportedCondition, Load: 10, Beam: beam.NewBeam(4, 0, steel)},
		{Name: "B/2", Condition: "cantilever", Load: 10, Beam: beam.NewBeam(4, 0, steel)},
	}
	outcomes := batch.NewRunner(nil, 2, nil).Run(context.Background(), jobs)

	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, outcomes))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "1 B1"}, f.GetSheetList())

	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "B1", rows[1][0])
	assert.InDelta(t, 20, cast.ToFloat64(rows[1][5]), 1e-9)

	last := rows[2][len(rows[2])-1]
	assert.Contains(t, last, "cantilever")
	assert.True(t, errors.Is(outcomes[1].Err, analysis.ErrUnsupportedCondition))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "B_2 _x_", sheetName("B/2 [x]"))
	assert.Len(t, []rune(sheetName("a very long beam name that exceeds the limit")), 31)
}
