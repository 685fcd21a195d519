package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
)

const batchYAML = `
materials:
  - name: steel
    properties:
      EI: 2.0e+9
beams:
  - name: B1
    condition: simply-supported
    span: 4
    load: 10
    material: steel
  - name: B2
    condition: two-span-unequal
    span: 6
    span2: 4
    load: 10
    ei: 4.0e+9
    factor: 0.5
  - condition: cantilever
    span: 3
    load: 5
    material: steel
`

func TestParse(t *testing.T) {
	jobs, err := Parse([]byte(batchYAML), 1)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "B1", jobs[0].Name)
	assert.EqualValues(t, 2e9, jobs[0].Beam.Material.EI())
	assert.EqualValues(t, 1, jobs[0].Beam.DeflectionFactor)

	assert.EqualValues(t, 4e9, jobs[1].Beam.Material.EI())
	assert.EqualValues(t, 4, jobs[1].Beam.SecondarySpan)
	assert.EqualValues(t, 0.5, jobs[1].Beam.DeflectionFactor)

	assert.Equal(t, "cantilever 3.00+0.00", jobs[2].Name)

	// Jobs share the named material
	assert.Same(t, jobs[0].Beam.Material, jobs[2].Beam.Material)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("beams:\n  - span: 4\n    material: concrete\n"), 1)
	assert.Error(t, err)

	_, err = Parse([]byte("beams:\n  - span: 4\n"), 1)
	assert.Error(t, err)

	_, err = Parse([]byte("beams: ["), 1)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	jobs, err := Parse([]byte(batchYAML), 1)
	require.NoError(t, err)

	r := NewRunner(analysis.NewBeamAnalysis(), 2, l.NewNopLoggerWrapper())
	outcomes := r.Run(context.Background(), jobs)
	require.Len(t, outcomes, 3)

	require.NoError(t, outcomes[0].Err)
	assert.Equal(t, "B1", outcomes[0].Job.Name)
	assert.Len(t, outcomes[0].Results, 3)
	assert.InDelta(t, 20, outcomes[0].Reactions.R1, 1e-9)

	require.NoError(t, outcomes[1].Err)
	assert.InDelta(t, 100, outcomes[1].Reactions.Total(), 1e-9)

	assert.ErrorIs(t, outcomes[2].Err, analysis.ErrUnsupportedCondition)
}

func TestRunManyKeepsOrder(t *testing.T) {
	steel := beam.NewMaterial("steel", map[string]float64{beam.PropEI: 2e9})

	var jobs []Job
	for i := 1; i <= 50; i++ {
		jobs = append(jobs, Job{
			Name:      fmt.Sprintf("B%d", i),
			Condition: analysis.TwoSpanUnequalCondition,
			Load:      float64(i),
			Beam:      beam.NewBeam(3+float64(i%5), 2+float64(i%3), steel),
		})
	}

	outcomes := NewRunner(nil, 8, nil).Run(context.Background(), jobs)
	for i, out := range outcomes {
		require.NoError(t, out.Err)
		assert.Equal(t, jobs[i].Name, out.Job.Name)
		assert.EqualValues(t, jobs[i].Load, out.Results[0].Load)
	}
}

func TestRunCancelled(t *testing.T) {
	jobs, err := Parse([]byte(batchYAML), 1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := NewRunner(nil, 1, nil).Run(ctx, jobs)
	require.Len(t, outcomes, 3)
	for _, out := range outcomes {
		assert.ErrorIs(t, out.Err, context.Canceled)
		assert.Nil(t, out.Results)
	}
}
