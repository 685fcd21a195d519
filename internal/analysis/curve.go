package analysis

import (
	"fmt"
	"math"
)

// Quantity names one of the response curves
type Quantity string

const (
	Deflection    Quantity = "deflection"
	BendingMoment Quantity = "bendingmoment"
	ShearForce    Quantity = "shearforce"
)

// Quantities in the order AnalyzeAll returns them
var Quantities = []Quantity{Deflection, BendingMoment, ShearForce}

// ParseQuantity accepts the canonical quantity names
func ParseQuantity(s string) (Quantity, error) {
	for _, q := range Quantities {
		if string(q) == s {
			return q, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedQuantity, s)
}

// Title returns a chart title for the quantity
func (q Quantity) Title() string {
	switch q {
	case Deflection:
		return "Deflection"
	case BendingMoment:
		return "Bending Moment"
	case ShearForce:
		return "Shear Force"
	}
	return string(q)
}

// Unit returns the unit of the curve ordinates
func (q Quantity) Unit() string {
	switch q {
	case Deflection:
		return "mm"
	case BendingMoment:
		return "kN-m"
	case ShearForce:
		return "kN"
	}
	return ""
}

// Curve is a response quantity sampled along the beam axis.
// XData runs from 0 to the beam length and has the same length as YData.
type Curve struct {
	Analys Quantity  `json:"analys"`
	XData  []float64 `json:"xdata"`
	YData  []float64 `json:"ydata"`
}

// Len returns the number of samples
func (c Curve) Len() int {
	return len(c.XData)
}

// Max returns the position and value of the largest ordinate
func (c Curve) Max() (x, y float64) {
	return c.extreme(func(a, b float64) bool { return a > b })
}

// Min returns the position and value of the smallest ordinate
func (c Curve) Min() (x, y float64) {
	return c.extreme(func(a, b float64) bool { return a < b })
}

func (c Curve) extreme(better func(a, b float64) bool) (x, y float64) {
	if len(c.YData) == 0 {
		return 0, 0
	}
	x, y = c.XData[0], c.YData[0]
	for i := 1; i < len(c.YData); i++ {
		if better(c.YData[i], y) {
			x, y = c.XData[i], c.YData[i]
		}
	}
	return x, y
}

// curveBuilder accumulates samples, rounding each to the emitted precision.
// Samples whose rounded positions coincide are merged: a pinned position
// (beam end, support, zero-shear point) wins over a grid position, and the
// right end wins over everything.
type curveBuilder struct {
	c          Curve
	end        float64
	pinned     []float64
	lastPinned bool
}

func newCurveBuilder(q Quantity, size int, length float64, pinned ...float64) *curveBuilder {
	return &curveBuilder{
		c: Curve{
			Analys: q,
			XData:  make([]float64, 0, size),
			YData:  make([]float64, 0, size),
		},
		end:    length,
		pinned: pinned,
	}
}

func (cb *curveBuilder) add(x, y float64) {
	rx := round2(x)
	if n := len(cb.c.XData); n > 0 && cb.c.XData[n-1] == rx {
		if cb.lastPinned && x != cb.end {
			return
		}
		cb.c.XData, cb.c.YData = cb.c.XData[:n-1], cb.c.YData[:n-1]
	}
	cb.push(rx, round2(y), cb.isPinned(x))
}

// jump adds a second sample at x for a discontinuity, e.g. shear over a support
func (cb *curveBuilder) jump(x, y float64) {
	cb.push(round2(x), round2(y), true)
}

func (cb *curveBuilder) push(x, y float64, pinned bool) {
	cb.c.XData = append(cb.c.XData, x)
	cb.c.YData = append(cb.c.YData, y)
	cb.lastPinned = pinned
}

func (cb *curveBuilder) isPinned(x float64) bool {
	if x == 0 || x == cb.end {
		return true
	}
	for _, p := range cb.pinned {
		if x == p {
			return true
		}
	}
	return false
}

func (cb *curveBuilder) curve() Curve {
	return cb.c
}

// round2 rounds to two decimals and drops the sign of zero
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}
	return r
}
