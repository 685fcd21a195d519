package beam

import (
	"fmt"
	"math"
)

// Beam holds the geometry of a beam and the material it is made of
type Beam struct {
	// Geometry (m)
	PrimarySpan   float64 `json:"primary_span" yaml:"primary_span"`     // l or l1
	SecondarySpan float64 `json:"secondary_span" yaml:"secondary_span"` // l2, two-span beams only

	Material *Material `json:"material" yaml:"material"`

	// DeflectionFactor (j) multiplies every deflection ordinate. It carries
	// cross-section and unit adjustments that are not part of EI.
	DeflectionFactor float64 `json:"deflection_factor" yaml:"deflection_factor"`
}

// NewBeam creates a beam with a unit deflection factor
func NewBeam(primarySpan, secondarySpan float64, material *Material) *Beam {
	return &Beam{
		PrimarySpan:      primarySpan,
		SecondarySpan:    secondarySpan,
		Material:         material,
		DeflectionFactor: 1,
	}
}

// TotalLength returns the length of the beam along its axis
func (b *Beam) TotalLength(twoSpan bool) float64 {
	if twoSpan {
		return b.PrimarySpan + b.SecondarySpan
	}
	return b.PrimarySpan
}

// Validate checks the geometry. twoSpan requires a positive secondary span.
func (b *Beam) Validate(twoSpan bool) error {
	if b == nil {
		return &ValidationError{"beam is nil"}
	}
	if !finite(b.PrimarySpan) || b.PrimarySpan <= 0 {
		return &ValidationError{fmt.Sprintf("primary span must be positive: l=%.3f", b.PrimarySpan)}
	}
	if !finite(b.SecondarySpan) || b.SecondarySpan < 0 {
		return &ValidationError{fmt.Sprintf("secondary span must not be negative: l2=%.3f", b.SecondarySpan)}
	}
	if twoSpan && b.SecondarySpan <= 0 {
		return &ValidationError{fmt.Sprintf("two-span beam needs a positive secondary span: l2=%.3f", b.SecondarySpan)}
	}
	if !finite(b.DeflectionFactor) || b.DeflectionFactor <= 0 {
		return &ValidationError{fmt.Sprintf("deflection factor must be positive: j=%.3f", b.DeflectionFactor)}
	}
	if b.Material == nil {
		return &ValidationError{"beam has no material"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ValidationError represents a beam validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
