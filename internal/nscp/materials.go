package nscp

import "math"

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normal-weight concrete coefficient for Ec = 4700√f'c (Section 419.2.2.1)
	ConcreteModulusFactor = 4700.0
)

// ConcreteModulus calculates the modulus of elasticity of normal-weight
// concrete. NSCP 2015 Section 419.2.2.1
func ConcreteModulus(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	// Ec = 4700√f'c (MPa)
	return ConcreteModulusFactor * math.Sqrt(fc)
}

// ModularRatio returns n = Es/Ec, used to transform steel into an
// equivalent concrete area
func ModularRatio(fc float64) float64 {
	ec := ConcreteModulus(fc)
	if ec == 0 {
		return 0
	}
	return Es / ec
}
