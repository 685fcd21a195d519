package analysis

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Support conditions
const (
	SimplySupportedCondition = "simply-supported"
	TwoSpanUnequalCondition  = "two-span-unequal"
)

// Unit conversion. Rigidity is given in N-mm² and spans in m with loads in kN/m;
// EI/rigidityScale is in kN-m² and deflections come out in m before deflectionScale.
const (
	rigidityScale   = 1000 * 1000 * 1000
	deflectionScale = 1000
)

// gridIntervals is the number of nominal steps along the beam
const gridIntervals = 100

// Analyzer computes the response curves for one support condition
type Analyzer interface {
	Deflection(b *beam.Beam, load float64) (Curve, error)
	BendingMoment(b *beam.Beam, load float64) (Curve, error)
	ShearForce(b *beam.Beam, load float64) (Curve, error)
	Reactions(b *beam.Beam, load float64) (Reactions, error)
}

// Reactions holds the support reactions (kN) and the interior support moment (kN-m).
// For single span beams R2 and M1 are zero and R3 is the right support.
type Reactions struct {
	R1 float64 `json:"r1"`
	R2 float64 `json:"r2"`
	R3 float64 `json:"r3"`
	M1 float64 `json:"m1"`
}

// Total returns the sum of the support reactions
func (r Reactions) Total() float64 {
	return r.R1 + r.R2 + r.R3
}

func validate(b *beam.Beam, twoSpan bool) error {
	if err := b.Validate(twoSpan); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}
	return nil
}

// rigidity returns EI converted to kN-m²
// checkLoad rejects loads that would turn every ordinate into NaN or Inf
func checkLoad(load float64) error {
	if math.IsNaN(load) || math.IsInf(load, 0) {
		return fmt.Errorf("%w: w=%v", ErrInvalidLoad, load)
	}
	return nil
}

func rigidity(b *beam.Beam) (float64, error) {
	ei := b.Material.EI()
	if math.IsNaN(ei) || math.IsInf(ei, 0) || ei <= 0 {
		return 0, fmt.Errorf("%w: %s has no positive %s", ErrMissingProperty, b.Material.Name, beam.PropEI)
	}
	return ei / rigidityScale, nil
}
