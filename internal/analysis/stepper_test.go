package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepperUniformGrid(t *testing.T) {
	xs := newStepper(10).positions()

	assert.Len(t, xs, gridIntervals+1)
	assert.EqualValues(t, 0, xs[0])
	assert.Contains(t, xs, 9.9)
	assert.EqualValues(t, 10, xs[len(xs)-1])
}

func TestStepperKeepsGridBeforeAlignedSupport(t *testing.T) {
	xs := newStepper(10, 6).positions()

	assert.Len(t, xs, gridIntervals+1)
	assert.Contains(t, xs, 5.8)
	assert.Contains(t, xs, 5.9)
	assert.Contains(t, xs, 6.0)
	assert.Contains(t, xs, 9.9)
	for i := 1; i < len(xs); i++ {
		assert.InDelta(t, 0.1, xs[i]-xs[i-1], 1e-9, "uneven spacing at %d", i)
	}
}

func TestStepperSnapsCriticalPoints(t *testing.T) {
	xs := newStepper(10, 6, 2.4166666666666665, 8.875).positions()

	assert.Contains(t, xs, 6.0)
	assert.Contains(t, xs, 2.4166666666666665)
	assert.Contains(t, xs, 8.875)
	assert.EqualValues(t, 10, xs[len(xs)-1])

	for i := 1; i < len(xs); i++ {
		assert.Greater(t, xs[i], xs[i-1])
		assert.Greater(t, xs[i]-xs[i-1], 0.05-1e-9, "samples too close at %d", i)
	}
}

func TestStepperIgnoresDuplicateAndOutsidePoints(t *testing.T) {
	s := newStepper(10, 6, 6, -1, 11, 10)
	assert.Equal(t, []float64{0, 6, 10}, s.critical)

	xs := s.positions()
	n := 0
	for _, x := range xs {
		if x == 6 {
			n++
		}
	}
	assert.Equal(t, 1, n)
}
