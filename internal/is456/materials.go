package is456

// IS 456:2000 / IS 875 Material Constants

const (
	// Partial safety factors (IS 456 Section 36.4.2)
	GammaConcrete = 1.5
	GammaSteel    = 1.15

	// Load factors for the 1.5(DL+LL) gravity combination
	// IS 456 Table 18
	LoadFactorDead = 1.5
	LoadFactorLive = 1.5

	// Fallback strengths for unrecognized grade strings (N/mm²)
	DefaultFck = 20.0
	DefaultFy  = 500.0

	// Densities (kN/m³) - IS 875 Part 1
	ConcreteDensity = 25.0
	SteelDensity    = 78.5
)

// ConcreteGrades maps IS 456 concrete grade designations to their
// characteristic compressive strength fck (N/mm²).
var ConcreteGrades = map[string]float64{
	"M15": 15, "M20": 20, "M25": 25, "M30": 30, "M35": 35,
	"M40": 40, "M45": 45, "M50": 50, "M55": 55, "M60": 60,
}

// SteelGrades maps reinforcement grade designations to their
// characteristic yield strength fy (N/mm²).
var SteelGrades = map[string]float64{
	"Fe415": 415, "Fe500": 500, "Fe550": 550, "Fe600": 600,
}

// MaterialDensities holds unit weights (kN/m³) per IS 875 Part 1.
var MaterialDensities = map[string]float64{
	"concrete":      25.0,
	"brick_masonry": 19.0,
	"stone_masonry": 24.0,
	"steel":         78.5,
	"timber":        6.0,
	"plaster":       20.0,
	"flooring":      23.0,
	"waterproofing": 1.5,
}

// MinCover gives minimum clear cover (mm) per exposure condition
// IS 456 Table 16.
var MinCover = map[string]float64{
	"mild":        20,
	"moderate":    30,
	"severe":      45,
	"very_severe": 50,
	"extreme":     75,
}

// Fck resolves a concrete grade string to fck. Unknown grades fall
// back to DefaultFck; callers that need to distinguish a bad grade
// should use FckStrict.
func Fck(grade string) float64 {
	if fck, ok := ConcreteGrades[grade]; ok {
		return fck
	}
	return DefaultFck
}

// Fy resolves a steel grade string to fy, falling back to DefaultFy
// on unknown grades.
func Fy(grade string) float64 {
	if fy, ok := SteelGrades[grade]; ok {
		return fy
	}
	return DefaultFy
}

// FckStrict resolves a concrete grade and reports whether the grade
// string was recognized.
func FckStrict(grade string) (float64, bool) {
	fck, ok := ConcreteGrades[grade]
	if !ok {
		return DefaultFck, false
	}
	return fck, true
}

// FyStrict resolves a steel grade and reports whether the grade
// string was recognized.
func FyStrict(grade string) (float64, bool) {
	fy, ok := SteelGrades[grade]
	if !ok {
		return DefaultFy, false
	}
	return fy, true
}

// Density returns the unit weight for a material name, defaulting to
// reinforced concrete.
func Density(material string) float64 {
	if d, ok := MaterialDensities[material]; ok {
		return d
	}
	return ConcreteDensity
}
