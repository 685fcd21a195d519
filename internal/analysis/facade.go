package analysis

import (
	"fmt"
	"sort"

	"github.com/alexiusacademia/gobeam/internal/beam"
)

// Result wraps a curve with the beam and load it was computed for
type Result struct {
	Beam     *beam.Beam `json:"beam"`
	Load     float64    `json:"load"`
	Equation Curve      `json:"equation"`
}

// BeamAnalysis dispatches analysis requests to the analyzer of a support condition.
// It holds no mutable state and is safe for concurrent use.
type BeamAnalysis struct {
	analyzers map[string]Analyzer
}

// NewBeamAnalysis creates a BeamAnalysis with every supported condition registered
func NewBeamAnalysis() *BeamAnalysis {
	return &BeamAnalysis{
		analyzers: map[string]Analyzer{
			SimplySupportedCondition: SimplySupported{},
			TwoSpanUnequalCondition:  TwoSpanUnequal{},
		},
	}
}

// Conditions returns the registered condition names in sorted order
func (a *BeamAnalysis) Conditions() []string {
	names := make([]string, 0, len(a.analyzers))
	for name := range a.analyzers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *BeamAnalysis) analyzer(condition string) (Analyzer, error) {
	an, ok := a.analyzers[condition]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCondition, condition)
	}
	return an, nil
}

// GetDeflection computes the deflection curve of b under load
func (a *BeamAnalysis) GetDeflection(b *beam.Beam, load float64, condition string) (*Result, error) {
	return a.Analyze(b, load, condition, Deflection)
}

// GetBendingMoment computes the bending moment curve of b under load
func (a *BeamAnalysis) GetBendingMoment(b *beam.Beam, load float64, condition string) (*Result, error) {
	return a.Analyze(b, load, condition, BendingMoment)
}

// GetShearForce computes the shear force curve of b under load
func (a *BeamAnalysis) GetShearForce(b *beam.Beam, load float64, condition string) (*Result, error) {
	return a.Analyze(b, load, condition, ShearForce)
}

// Analyze computes one response curve of b under load for the given condition
func (a *BeamAnalysis) Analyze(b *beam.Beam, load float64, condition string, quantity Quantity) (*Result, error) {
	an, err := a.analyzer(condition)
	if err != nil {
		return nil, err
	}
	if err = checkLoad(load); err != nil {
		return nil, err
	}

	var curve Curve
	switch quantity {
	case Deflection:
		curve, err = an.Deflection(b, load)
	case BendingMoment:
		curve, err = an.BendingMoment(b, load)
	case ShearForce:
		curve, err = an.ShearForce(b, load)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedQuantity, quantity)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Beam:     b,
		Load:     load,
		Equation: curve,
	}, nil
}

// AnalyzeAll computes deflection, bending moment and shear force, in that order
func (a *BeamAnalysis) AnalyzeAll(b *beam.Beam, load float64, condition string) ([]*Result, error) {
	results := make([]*Result, 0, len(Quantities))
	for _, q := range Quantities {
		res, err := a.Analyze(b, load, condition, q)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// GetReactions computes the support reactions of b under load
func (a *BeamAnalysis) GetReactions(b *beam.Beam, load float64, condition string) (Reactions, error) {
	an, err := a.analyzer(condition)
	if err != nil {
		return Reactions{}, err
	}
	if err = checkLoad(load); err != nil {
		return Reactions{}, err
	}
	return an.Reactions(b, load)
}

// IsTwoSpan reports whether condition uses the secondary span
func IsTwoSpan(condition string) bool {
	return condition == TwoSpanUnequalCondition
}
