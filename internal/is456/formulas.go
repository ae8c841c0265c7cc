package is456

import (
	"fmt"
	"math"
)

// Shared limit-state formulas from IS 456:2000. All functions are
// pure; invalid geometry or material inputs are reported as errors and
// never clamped.

// SupportCondition selects the basic span-to-depth ratio of
// IS 456 Section 23.2.1.
type SupportCondition string

const (
	Cantilever      SupportCondition = "cantilever"
	SimplySupported SupportCondition = "simply_supported"
	Continuous      SupportCondition = "continuous"
)

// DesignMoment returns the maximum bending moment (kN-m) for a simply
// supported span under a uniformly distributed load.
// M = w*L²/8 with span in m and udl in kN/m.
func DesignMoment(span, udl float64) float64 {
	return udl * span * span / 8
}

// DesignShear returns the maximum shear force (kN) at the support of
// a simply supported span under a uniformly distributed load.
func DesignShear(span, udl float64) float64 {
	return udl * span / 2
}

// BarArea returns the cross-sectional area (mm²) of a round bar.
func BarArea(dia float64) float64 {
	return math.Pi * dia * dia / 4
}

// RequiredSteelArea computes the tension steel demand (mm²) for a
// rectangular section per IS 456 Annex G.
//
// The section is treated as under-reinforced while the applied moment
// stays below the limiting moment at xu,max = 0.48d (Fe415/Fe500);
// beyond that a simplified lever arm of 0.9d is used.
//
// muNmm is the design moment in N-mm, b and d in mm.
func RequiredSteelArea(muNmm, fck, fy, b, d float64) (float64, error) {
	if b <= 0 || d <= 0 {
		return 0, fmt.Errorf("invalid section: b=%.2f, d=%.2f", b, d)
	}
	if fck <= 0 || fy <= 0 {
		return 0, fmt.Errorf("invalid material properties: fck=%.2f, fy=%.2f", fck, fy)
	}
	if muNmm < 0 {
		return 0, fmt.Errorf("invalid design moment: Mu=%.2f N-mm", muNmm)
	}

	// Limiting moment of resistance, Annex G-1.1(c)
	xuMax := 0.48 * d
	muLim := 0.36 * fck * b * xuMax * (d - 0.42*xuMax)

	if muNmm <= muLim {
		// Under-reinforced: solve with lever arm factor j = 1 - k/3
		k := muNmm / (fck * b * d * d)
		j := 1 - k/3
		return muNmm / (0.87 * fy * j * d), nil
	}

	// Over-reinforced: compression steel is really needed, use the
	// simplified j = 0.9 approximation
	return muNmm / (0.87 * fy * 0.9 * d), nil
}

// shearStrengthBands is the design shear strength of concrete tau_c
// (N/mm²) for fck <= 20, indexed by tension steel percentage.
// IS 456 Table 19.
var shearStrengthBands = []struct {
	pt   float64
	tauC float64
}{
	{0.15, 0.28},
	{0.25, 0.30},
	{0.50, 0.35},
	{0.75, 0.39},
	{1.00, 0.42},
	{1.25, 0.45},
	{1.50, 0.48},
	{1.75, 0.50},
	{2.00, 0.52},
	{2.25, 0.54},
	{2.50, 0.56},
	{2.75, 0.57},
}

// ShearCapacity returns the shear capacity (N) of a section without
// shear reinforcement per IS 456 Table 19.
//
// The steel percentage pt = 100*Ast/(b*d) is capped at 3%. For
// concrete grades above M20 the tabulated strength is adjusted by a
// linear pt term scaled with sqrt(fck/20).
func ShearCapacity(b, d, fck, ast float64) (float64, error) {
	if b <= 0 || d <= 0 {
		return 0, fmt.Errorf("invalid section: b=%.2f, d=%.2f", b, d)
	}
	if fck <= 0 {
		return 0, fmt.Errorf("invalid concrete strength: fck=%.2f", fck)
	}

	pt := 0.15
	if ast > 0 {
		pt = 100 * ast / (b * d)
	}
	pt = math.Min(pt, 3.0)

	var tauC float64
	if fck <= 20 {
		tauC = 0.58 // pt above the last band
		for _, band := range shearStrengthBands {
			if pt <= band.pt {
				tauC = band.tauC
				break
			}
		}
	} else {
		tauC = (0.28 + (pt-0.15)*0.02) * math.Sqrt(fck/20)
	}

	return tauC * b * d, nil
}

// BasicSpanDepthRatio returns the basic span-to-depth ratio for
// deflection control, IS 456 Section 23.2.1.
func BasicSpanDepthRatio(cond SupportCondition) float64 {
	switch cond {
	case Cantilever:
		return 7
	case Continuous:
		return 26
	default:
		return 20
	}
}

// MinSteelArea returns the minimum tension reinforcement
// As,min = (0.85/fy)*b*d per IS 456 Section 26.5.1.1.
func MinSteelArea(b, d, fy float64) (float64, error) {
	if fy <= 0 {
		return 0, fmt.Errorf("invalid steel strength: fy=%.2f", fy)
	}
	if b <= 0 || d <= 0 {
		return 0, fmt.Errorf("invalid section: b=%.2f, d=%.2f", b, d)
	}
	return (0.85 / fy) * b * d, nil
}

// MaxSteelArea returns the maximum tension reinforcement
// As,max = 0.04*b*d per IS 456 Section 26.5.1.1.
func MaxSteelArea(b, d float64) (float64, error) {
	if b <= 0 || d <= 0 {
		return 0, fmt.Errorf("invalid section: b=%.2f, d=%.2f", b, d)
	}
	return 0.04 * b * d, nil
}

// DevelopmentLength returns the required anchorage length (mm) of a
// tension bar, simplified from IS 456 Section 26.2.1.
func DevelopmentLength(barDia, fy, fck float64) (float64, error) {
	if fck <= 0 {
		return 0, fmt.Errorf("invalid concrete strength: fck=%.2f", fck)
	}
	if barDia <= 0 || fy <= 0 {
		return 0, fmt.Errorf("invalid bar: dia=%.2f, fy=%.2f", barDia, fy)
	}
	return barDia * fy / (4 * math.Sqrt(fck)), nil
}
