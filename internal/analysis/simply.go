package analysis

import "github.com/alexiusacademia/gobeam/internal/beam"

// SimplySupported analyzes a single span beam on pin and roller supports
type SimplySupported struct{}

// Deflection returns v(x) = -(w·x/24EI)(l³ - 2lx² + x³) in mm
func (SimplySupported) Deflection(b *beam.Beam, load float64) (Curve, error) {
	if err := validate(b, false); err != nil {
		return Curve{}, err
	}
	ei, err := rigidity(b)
	if err != nil {
		return Curve{}, err
	}

	l := b.PrimarySpan
	j := b.DeflectionFactor
	return sampleUniform(Deflection, l, func(x float64) float64 {
		return -(load * x / (24 * ei)) * (l*l*l - 2*l*x*x + x*x*x) * deflectionScale * j
	}), nil
}

// BendingMoment returns M(x) = -(w·x/2)(l - x); sagging is negative
func (SimplySupported) BendingMoment(b *beam.Beam, load float64) (Curve, error) {
	if err := validate(b, false); err != nil {
		return Curve{}, err
	}

	l := b.PrimarySpan
	return sampleUniform(BendingMoment, l, func(x float64) float64 {
		return -(load * x / 2) * (l - x)
	}), nil
}

// ShearForce returns V(x) = w(l/2 - x)
func (SimplySupported) ShearForce(b *beam.Beam, load float64) (Curve, error) {
	if err := validate(b, false); err != nil {
		return Curve{}, err
	}

	l := b.PrimarySpan
	return sampleUniform(ShearForce, l, func(x float64) float64 {
		return load * (l/2 - x)
	}), nil
}

// Reactions returns the two end reactions w·l/2
func (SimplySupported) Reactions(b *beam.Beam, load float64) (Reactions, error) {
	if err := validate(b, false); err != nil {
		return Reactions{}, err
	}

	r := load * b.PrimarySpan / 2
	return Reactions{R1: r, R3: r}, nil
}

// sampleUniform evaluates f at gridIntervals+1 evenly spaced points from 0 to length
func sampleUniform(q Quantity, length float64, f func(x float64) float64) Curve {
	cb := newCurveBuilder(q, gridIntervals+1, length)
	for k := 0; k <= gridIntervals; k++ {
		x := length * float64(k) / gridIntervals
		if k == gridIntervals {
			x = length
		}
		cb.add(x, f(x))
	}
	return cb.curve()
}
