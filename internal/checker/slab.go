package checker

import (
	"math"

	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/is456"
)

// SlabType distinguishes the load path of a slab panel.
type SlabType string

const (
	OneWay SlabType = "one_way"
	TwoWay SlabType = "two_way"
)

// ClassifySlab applies the aspect-ratio rule: a panel spans one way
// when the longer side is at least twice the shorter side.
func ClassifySlab(lengthMM, breadthMM float64) (SlabType, float64) {
	ratio := math.Max(lengthMM, breadthMM) / math.Min(lengthMM, breadthMM)
	if ratio >= 2.0 {
		return OneWay, ratio
	}
	return TwoWay, ratio
}

// CheckSlab runs the slab check sequence; one-way panels additionally
// get the distribution steel check in the perpendicular direction.
func CheckSlab(in *design.Input) *design.Result {
	res, err := checkSlab(in)
	if err != nil {
		return design.ErrorResult(design.Slab, err)
	}
	return res
}

func checkSlab(in *design.Input) (*design.Result, error) {
	if err := in.Dimensions.Validate(); err != nil {
		return nil, err
	}
	if in.Loads == nil {
		return nil, design.Validationf("loads are required for a slab check")
	}

	length := in.Dimensions.Length.Float() * 1000  // mm
	breadth := in.Dimensions.Breadth.Float() * 1000 // mm
	thickness := in.Dimensions.Depth.Float()        // mm

	cover := in.Reinforcement.Cover.Or(20)
	barDia := in.Reinforcement.BarDiameter.Or(10)
	d := design.EffectiveDepth(thickness, cover, barDia)
	if d <= 0 {
		return nil, design.Computationf("non-positive effective depth: d=%.2f mm", d)
	}

	fck := is456.Fck(in.Materials.ConcreteGrade)
	fy := is456.Fy(in.Materials.SteelGrade)

	// Resolved dead load already includes self-weight.
	deadLoad := in.Loads.DeadLoad.Float()
	liveLoad := in.Loads.LiveLoad.Float()
	wu := is456.LoadFactorDead*deadLoad + is456.LoadFactorLive*liveLoad // kN/m²

	slabType, aspectRatio := ClassifySlab(length, breadth)
	shorterSpanM := math.Min(length, breadth) / 1000

	// Design moment per metre width of slab strip
	var mu float64 // kN-m/m
	if slabType == OneWay {
		mu = wu * shorterSpanM * shorterSpanM / 8
	} else {
		// Simply supported two-way panel moment coefficient
		const alphaX = 0.087
		mu = alphaX * wu * shorterSpanM * shorterSpanM
	}

	// Steel per metre width
	const stripWidth = 1000.0 // mm
	muNmm := mu * 1e6
	astRequired, err := is456.RequiredSteelArea(muNmm, fck, fy, stripWidth, d)
	if err != nil {
		return nil, design.Computationf("required steel: %v", err)
	}

	spacing := in.Reinforcement.Spacing.Or(150)
	barArea := is456.BarArea(barDia)
	astProvided := stripWidth * barArea / spacing // mm²/m

	// 0.12% of gross area for HYSD bars, per metre width
	astMin := 0.12 * thickness * stripWidth / 100

	maxSpacing := math.Min(3*thickness, 300)

	minThickness := shorterSpanM * 1000 / 20 // L/20, simply supported

	vu := wu * shorterSpanM / 2 * 1000 // N per metre width
	tauV := vu / (stripWidth * d)
	tauCMax := 0.25 * math.Sqrt(fck)

	checks := []design.Check{
		{
			Name:        design.CheckMinimumThickness,
			Required:    round2(minThickness),
			Provided:    thickness,
			Pass:        thickness >= minThickness,
			Description: "Minimum thickness for deflection control (IS 456 Cl. 23.2.1)",
		},
		{
			Name:        design.CheckFlexuralStrength,
			Required:    round2(astRequired),
			Provided:    round2(astProvided),
			Pass:        astProvided >= astRequired,
			Description: "Flexural reinforcement adequacy",
		},
		{
			Name:        design.CheckMinimumSteel,
			Required:    round2(astMin),
			Provided:    round2(astProvided),
			Pass:        astProvided >= astMin,
			Description: "Minimum reinforcement (IS 456 Cl. 26.5.2.1)",
		},
		{
			Name:        design.CheckMaximumSpacing,
			Required:    maxSpacing,
			Provided:    spacing,
			Pass:        spacing <= maxSpacing,
			Description: "Maximum spacing of reinforcement (IS 456 Cl. 26.3.3)",
		},
		{
			Name:        design.CheckShearStrength,
			Required:    round3(tauCMax),
			Provided:    round3(tauV),
			Pass:        tauV <= tauCMax,
			Description: "Shear strength (IS 456 Cl. 40.2.1)",
		},
	}

	if slabType == OneWay {
		distSpacing := in.Reinforcement.DistributionSpacing.Or(200)
		astDistProvided := stripWidth * barArea / distSpacing
		checks = append(checks, design.Check{
			Name:        design.CheckDistributionSteel,
			Required:    round2(astMin),
			Provided:    round2(astDistProvided),
			Pass:        astDistProvided >= astMin,
			Description: "Distribution reinforcement (IS 456 Cl. 26.5.2.1)",
		})
	}

	res := &design.Result{
		MemberType: string(design.Slab),
		DesignSummary: map[string]any{
			"length":          length,
			"breadth":         breadth,
			"thickness":       thickness,
			"effective_depth": round2(d),
			"slab_type":       string(slabType),
			"aspect_ratio":    round2(aspectRatio),
			"design_moment":   round2(mu),
			"factored_load":   round2(wu),
			"concrete_grade":  in.Materials.ConcreteGrade,
			"steel_grade":     in.Materials.SteelGrade,
		},
		Checks: checks,
	}
	res.Finalize()
	return res, nil
}
