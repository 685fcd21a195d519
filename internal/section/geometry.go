package section

import (
	"math"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// CalculateProperties computes geometric properties of the section
func (s *Section) CalculateProperties() *SectionProperties {
	props := &SectionProperties{}

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Calculate area and centroid using the shoelace formula
	props.Area, props.CentroidX, props.CentroidY = s.calculateAreaAndCentroid()

	// Parallel axis theorem from the x-axis to the centroid
	props.Ig = s.secondMomentX() - props.Area*props.CentroidY*props.CentroidY

	props.E = s.modulus()
	nu := s.Nu
	if nu == 0 && s.E <= 0 {
		nu = nscp.NuConcrete
	}
	props.G = nscp.ShearModulus(props.E, nu)

	s.calculateTransformedProperties(props)

	return props
}

// calculateAreaAndCentroid uses the shoelace formula
func (s *Section) calculateAreaAndCentroid() (area, cx, cy float64) {
	n := len(s.Vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := s.Vertices[i].X*s.Vertices[j].Y - s.Vertices[j].X*s.Vertices[i].Y
		signedArea += cross
		sumX += (s.Vertices[i].X + s.Vertices[j].X) * cross
		sumY += (s.Vertices[i].Y + s.Vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}

	return area, cx, cy
}

// secondMomentX returns the second moment of area about the x-axis.
// Clockwise vertices give a negative sum, so the sign is dropped.
func (s *Section) secondMomentX() float64 {
	n := len(s.Vertices)

	var sum float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		vi, vj := s.Vertices[i], s.Vertices[j]
		cross := vi.X*vj.Y - vj.X*vi.Y
		sum += cross * (vi.Y*vi.Y + vi.Y*vj.Y + vj.Y*vj.Y)
	}

	return math.Abs(sum) / 12
}

// modulus returns E, falling back to the NSCP concrete modulus for f'c
func (s *Section) modulus() float64 {
	if s.E > 0 {
		return s.E
	}
	return nscp.Ec(s.Fc)
}

// calculateTransformedProperties adds the reinforcement as (n-1)·As at each layer
func (s *Section) calculateTransformedProperties(props *SectionProperties) {
	props.TransformedArea = props.Area
	props.TransformedCentroidY = props.CentroidY
	props.Itr = props.Ig

	if len(s.Reinforcement) == 0 || props.E <= 0 {
		return
	}

	props.ModularRatio = nscp.Es / props.E
	extra := props.ModularRatio - 1

	area := props.Area
	moment := props.Area * props.CentroidY
	for _, layer := range s.Reinforcement {
		area += extra * layer.Area
		moment += extra * layer.Area * layer.Y
	}

	ytr := moment / area
	itr := props.Ig + props.Area*math.Pow(props.CentroidY-ytr, 2)
	for _, layer := range s.Reinforcement {
		itr += extra * layer.Area * math.Pow(layer.Y-ytr, 2)
	}

	props.TransformedArea = area
	props.TransformedCentroidY = ytr
	props.Itr = itr
}
