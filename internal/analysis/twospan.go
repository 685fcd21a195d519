package analysis

import "github.com/alexiusacademia/gobeam/internal/beam"

// TwoSpanUnequal analyzes a continuous beam over two spans l1 and l2 with the
// interior support at x = l1 and the load over both spans
type TwoSpanUnequal struct{}

// twoSpan holds the quantities shared by the three curve generators
type twoSpan struct {
	l1, l2, l float64
	w         float64
	r         Reactions
}

func newTwoSpan(b *beam.Beam, load float64) (*twoSpan, error) {
	if err := validate(b, true); err != nil {
		return nil, err
	}

	l1, l2 := b.PrimarySpan, b.SecondarySpan
	return &twoSpan{
		l1: l1,
		l2: l2,
		l:  l1 + l2,
		w:  load,
		r:  twoSpanReactions(l1, l2, load),
	}, nil
}

// twoSpanReactions solves the reactions from the interior support moment given by
// the compatibility condition of the continuous beam
func twoSpanReactions(l1, l2, w float64) Reactions {
	m1 := -(w*l2*l2*l2 + w*l1*l1*l1) / (8 * (l1 + l2))
	r1 := m1/l1 + w*l1/2
	r3 := m1/l2 + w*l2/2
	r2 := w*l1 + w*l2 - r1 - r3

	return Reactions{R1: r1, R2: r2, R3: r3, M1: m1}
}

// positions returns the sample positions including both supports and the
// zero-shear points of each span, and the critical positions among them
func (t *twoSpan) positions() (xs, critical []float64) {
	critical = []float64{t.l1}

	// Zero-shear points are undefined without load
	if t.w != 0 {
		if z := t.r.R1 / t.w; z > 0 && z < t.l1 {
			critical = append(critical, z)
		}
		if z := t.l - t.r.R3/t.w; z > t.l1 && z < t.l {
			critical = append(critical, z)
		}
	}

	s := newStepper(t.l, critical...)
	return s.positions(), s.critical
}

// deflection integrates M/EI twice with y(0) = y(l1) = 0
func (t *twoSpan) deflection(x, ei, j float64) float64 {
	r1, r2, w, l1 := t.r.R1, t.r.R2, t.w, t.l1
	c1 := w*l1*l1*l1/24 - r1*l1*l1/6

	eiy := r1*x*x*x/6 - w*x*x*x*x/24 + c1*x
	if x > l1 {
		d := x - l1
		eiy += r2 * d * d * d / 6
	}

	return eiy / ei * deflectionScale * j
}

func (t *twoSpan) moment(x float64) float64 {
	r1, r2, w, l1 := t.r.R1, t.r.R2, t.w, t.l1
	switch {
	case x == 0 || x == t.l:
		return 0
	case x < l1:
		return -(r1*x - w*x*x/2)
	case x > l1:
		return -(r1*x + r2*(x-l1) - w*x*x/2)
	default:
		return -(r1*l1 - w*l1*l1/2)
	}
}

func (t *twoSpan) shear(x float64) float64 {
	r1, r2, w := t.r.R1, t.r.R2, t.w
	switch {
	case x == 0:
		return r1
	case x == t.l:
		return r1 + r2 - w*t.l
	case x <= t.l1:
		return r1 - w*x
	default:
		return r1 + r2 - w*x
	}
}

// Deflection returns the deflected shape in mm
func (TwoSpanUnequal) Deflection(b *beam.Beam, load float64) (Curve, error) {
	t, err := newTwoSpan(b, load)
	if err != nil {
		return Curve{}, err
	}
	ei, err := rigidity(b)
	if err != nil {
		return Curve{}, err
	}

	xs, critical := t.positions()
	cb := newCurveBuilder(Deflection, len(xs), t.l, critical...)
	for _, x := range xs {
		cb.add(x, t.deflection(x, ei, b.DeflectionFactor))
	}
	return cb.curve(), nil
}

// BendingMoment returns the moment diagram, continuous over the interior support
func (TwoSpanUnequal) BendingMoment(b *beam.Beam, load float64) (Curve, error) {
	t, err := newTwoSpan(b, load)
	if err != nil {
		return Curve{}, err
	}

	xs, critical := t.positions()
	cb := newCurveBuilder(BendingMoment, len(xs), t.l, critical...)
	for _, x := range xs {
		cb.add(x, t.moment(x))
	}
	return cb.curve(), nil
}

// ShearForce returns the shear diagram. The interior support is sampled twice,
// first with the value left of the support and then right of it.
func (TwoSpanUnequal) ShearForce(b *beam.Beam, load float64) (Curve, error) {
	t, err := newTwoSpan(b, load)
	if err != nil {
		return Curve{}, err
	}

	xs, critical := t.positions()
	cb := newCurveBuilder(ShearForce, len(xs)+1, t.l, critical...)
	for _, x := range xs {
		cb.add(x, t.shear(x))
		if x == t.l1 {
			cb.jump(x, t.r.R1+t.r.R2-t.w*x)
		}
	}
	return cb.curve(), nil
}

// Reactions returns r1, r2, r3 and the interior support moment
func (TwoSpanUnequal) Reactions(b *beam.Beam, load float64) (Reactions, error) {
	t, err := newTwoSpan(b, load)
	if err != nil {
		return Reactions{}, err
	}
	return t.r, nil
}
