package beam

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMaterialCopiesProperties(t *testing.T) {
	props := map[string]float64{PropEI: 2e9}
	m := NewMaterial("steel", props)
	props[PropEI] = 1

	assert.EqualValues(t, 2e9, m.EI())

	_, ok := m.Property(PropGA)
	assert.False(t, ok)

	var nilMaterial *Material
	assert.EqualValues(t, 0, nilMaterial.EI())
}

func TestBeamValidate(t *testing.T) {
	steel := NewMaterial("steel", map[string]float64{PropEI: 2e9})

	assert.Nil(t, NewBeam(4, 0, steel).Validate(false))
	assert.Nil(t, NewBeam(4, 3, steel).Validate(true))

	assert.NotNil(t, NewBeam(0, 0, steel).Validate(false))
	assert.NotNil(t, NewBeam(-1, 0, steel).Validate(false))
	assert.NotNil(t, NewBeam(4, 0, steel).Validate(true))
	assert.NotNil(t, NewBeam(4, -2, steel).Validate(false))
	assert.NotNil(t, NewBeam(4, 0, nil).Validate(false))

	b := NewBeam(4, 0, steel)
	b.DeflectionFactor = 0
	assert.NotNil(t, b.Validate(false))

	assert.NotNil(t, NewBeam(math.NaN(), 0, steel).Validate(false))
	assert.NotNil(t, NewBeam(math.Inf(1), 0, steel).Validate(false))
	assert.NotNil(t, NewBeam(4, math.NaN(), steel).Validate(true))
	assert.NotNil(t, NewBeam(4, math.Inf(1), steel).Validate(true))

	b.DeflectionFactor = math.NaN()
	assert.NotNil(t, b.Validate(false))

	var nilBeam *Beam
	assert.NotNil(t, nilBeam.Validate(false))
}

func TestBeamTotalLength(t *testing.T) {
	b := NewBeam(4, 3, nil)
	assert.EqualValues(t, 4, b.TotalLength(false))
	assert.EqualValues(t, 7, b.TotalLength(true))
	assert.EqualValues(t, 1, b.DeflectionFactor)
}
