package section

import "fmt"

// Section represents a beam cross-section defined by vertices.
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Material properties
	E  float64 `json:"e,omitempty" yaml:"e,omitempty"`   // Modulus of elasticity (MPa)
	Fc float64 `json:"fc,omitempty" yaml:"fc,omitempty"` // Concrete strength f'c (MPa), gives E when E is not set
	Nu float64 `json:"nu,omitempty" yaml:"nu,omitempty"` // Poisson's ratio

	// Section geometry defined by vertices (in mm)
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices" yaml:"vertices"`

	// Reinforcement layers, transformed into the section with n = Es/E
	Reinforcement []RebarLayer `json:"reinforcement,omitempty" yaml:"reinforcement,omitempty"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x" yaml:"x"` // mm
	Y float64 `json:"y" yaml:"y"` // mm
}

// RebarLayer represents a layer of reinforcement at a specific level
type RebarLayer struct {
	// Position of the reinforcement layer centroid
	Y float64 `json:"y" yaml:"y"` // mm from bottom of section

	// Reinforcement area in this layer
	Area float64 `json:"area" yaml:"area"` // mm²

	// Optional: description of bars (e.g., "3-25mm")
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// SectionProperties holds calculated geometric properties
type SectionProperties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64

	// Second moment of area about the horizontal centroidal axis
	Ig float64 // Gross (mm⁴)

	// Transformed section (gross section plus (n-1)·As per layer)
	ModularRatio         float64 // n = Es/E
	TransformedArea      float64 // mm²
	TransformedCentroidY float64 // mm
	Itr                  float64 // mm⁴

	// Material
	E float64 // MPa
	G float64 // MPa
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if s.E <= 0 && s.Fc <= 0 {
		return &ValidationError{"either e or f'c must be positive"}
	}
	if s.Nu < 0 || s.Nu >= 0.5 {
		return &ValidationError{msg: fmt.Sprintf("poisson's ratio must be in [0, 0.5): nu=%.3f", s.Nu)}
	}
	if area, _, _ := s.calculateAreaAndCentroid(); area <= 0 {
		return &ValidationError{"section has zero area"}
	}
	for i, layer := range s.Reinforcement {
		if layer.Area <= 0 {
			return &ValidationError{msg: fmt.Sprintf("reinforcement layer %d must have positive area", i+1)}
		}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
