package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normalweight concrete modulus coefficient (Section 419.2.2.1)
	EcCoefficient = 4700.0

	// Poisson's ratio
	NuConcrete = 0.2
	NuSteel    = 0.3
)

// Ec calculates the modulus of elasticity of normalweight concrete
// NSCP 2015 Section 419.2.2.1: Ec = 4700√f'c
func Ec(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return EcCoefficient * math.Sqrt(fc)
}

// ShearModulus returns G = E / 2(1 + ν)
func ShearModulus(e, nu float64) float64 {
	return e / (2 * (1 + nu))
}

// ModularRatio returns n = Es/Ec for a concrete strength f'c
func ModularRatio(fc float64) float64 {
	ec := Ec(fc)
	if ec == 0 {
		return 0
	}
	return Es / ec
}
