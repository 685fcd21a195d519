package analysis

import "sort"

// stepper walks a nominal grid of gridIntervals steps along the beam and replaces
// grid points by critical positions that lie less than one step away, so supports
// and zero-shear points are sampled exactly. A critical position on the grid
// replaces only its own grid point.
type stepper struct {
	length   float64
	step     float64
	eps      float64
	critical []float64
	landed   []bool

	lastEmitted float64
	emitted     bool
}

// newStepper builds a stepper over [0, length]. 0 and length are always critical.
func newStepper(length float64, critical ...float64) *stepper {
	step := length / gridIntervals
	s := &stepper{
		length: length,
		step:   step,
		eps:    step * 1e-9,
	}

	points := append([]float64{0, length}, critical...)
	sort.Float64s(points)
	for _, p := range points {
		if p < 0 || p > length {
			continue
		}
		if n := len(s.critical); n > 0 && p-s.critical[n-1] <= s.eps {
			continue
		}
		s.critical = append(s.critical, p)
	}
	s.landed = make([]bool, len(s.critical))

	return s
}

// positions returns the sample positions in ascending order, from 0 to length
func (s *stepper) positions() []float64 {
	xs := make([]float64, 0, gridIntervals+len(s.critical)+1)

	for k := 0; k <= gridIntervals && !s.done(); k++ {
		nominal := s.length * float64(k) / gridIntervals

		if snapped := s.snap(nominal); len(snapped) > 0 {
			xs = append(xs, snapped...)
			continue
		}

		// Grid points right after a snapped position are dropped
		if s.emitted && nominal-s.lastEmitted < s.step/2 {
			continue
		}
		xs = append(xs, nominal)
		s.emit(nominal)
	}

	return xs
}

// snap lands every pending critical position less than one step from nominal
func (s *stepper) snap(nominal float64) []float64 {
	var out []float64
	for i, c := range s.critical {
		if s.landed[i] {
			continue
		}
		d := c - nominal
		if d < 0 {
			d = -d
		}
		if d < s.step-s.eps {
			out = append(out, c)
			s.landed[i] = true
			s.emit(c)
		}
	}
	return out
}

func (s *stepper) emit(x float64) {
	s.lastEmitted = x
	s.emitted = true
}

// done reports whether the right end has been emitted
func (s *stepper) done() bool {
	return s.landed[len(s.landed)-1]
}
