package checker

import (
	"math"

	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/is456"
)

// CheckFooting runs the isolated footing check sequence: bearing
// pressure, minimum thickness, flexure at the column face, minimum
// steel, spacing, one-way shear at d from the face and punching
// shear.
func CheckFooting(in *design.Input) *design.Result {
	res, err := checkFooting(in)
	if err != nil {
		return design.ErrorResult(design.Footing, err)
	}
	return res
}

func checkFooting(in *design.Input) (*design.Result, error) {
	if err := in.Dimensions.Validate(); err != nil {
		return nil, err
	}
	if in.Loads == nil {
		return nil, design.Validationf("loads are required for a footing check")
	}

	length := in.Dimensions.Length.Float() * 1000   // mm
	breadth := in.Dimensions.Breadth.Float() * 1000 // mm
	thickness := in.Dimensions.Depth.Float()        // mm
	columnSize := in.Dimensions.ColumnSize.Or(300)  // mm

	cover := in.Reinforcement.Cover.Or(50)
	barDia := in.Reinforcement.BarDiameter.Or(16)
	d := design.EffectiveDepth(thickness, cover, barDia)
	if d <= 0 {
		return nil, design.Computationf("non-positive effective depth: d=%.2f mm", d)
	}

	fck := is456.Fck(in.Materials.ConcreteGrade)
	fy := is456.Fy(in.Materials.SteelGrade)

	axialLoad := in.Loads.AxialLoad.Float()                // kN
	sbc := in.Loads.SafeBearingCapacity.Or(200)            // kN/m²
	footingArea := length * breadth / 1e6                  // m²
	if footingArea <= 0 {
		return nil, design.Computationf("zero footing plan area")
	}

	selfWeight := footingArea * thickness / 1000 * is456.ConcreteDensity // kN
	totalLoad := axialLoad + selfWeight
	bearingPressure := totalLoad / footingArea // kN/m²

	// Net upward pressure excludes the footing's own weight
	netPressure := bearingPressure - selfWeight/footingArea

	// Cantilever projection beyond the column face
	cantileverM := (math.Max(length, breadth) - columnSize) / 2 / 1000

	// Bending at the column face for strips in both directions; the
	// wider strip carries the governing moment
	momentX := netPressure * breadth / 1000 * cantileverM * cantileverM / 2
	momentY := netPressure * length / 1000 * cantileverM * cantileverM / 2
	criticalMoment := math.Max(momentX, momentY) // kN-m

	stripWidth := math.Min(length, breadth) // mm
	muNmm := criticalMoment * 1e6
	astRequired, err := is456.RequiredSteelArea(muNmm, fck, fy, stripWidth, d)
	if err != nil {
		return nil, design.Computationf("required steel: %v", err)
	}

	spacing := in.Reinforcement.Spacing.Or(150)
	barArea := is456.BarArea(barDia)
	numBars := math.Floor(stripWidth/spacing) + 1
	astProvided := numBars * barArea

	astMin := 0.12 * thickness * stripWidth / 100
	maxSpacing := math.Min(3*thickness, 450)
	minThickness := math.Max(150, cantileverM*1000/4)

	checks := []design.Check{
		{
			Name:        design.CheckBearingPressure,
			Required:    sbc,
			Provided:    round2(bearingPressure),
			Pass:        bearingPressure <= sbc,
			Description: "Soil bearing pressure check",
		},
		{
			Name:        design.CheckMinimumThickness,
			Required:    round2(minThickness),
			Provided:    thickness,
			Pass:        thickness >= minThickness,
			Description: "Minimum thickness requirement",
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
			Description: "Maximum spacing of reinforcement",
		},
	}

	// One-way shear at distance d from the column face; not critical
	// when the shear span vanishes
	shearSpanM := cantileverM - d/1000
	if shearSpanM > 0 {
		vu := netPressure * stripWidth / 1000 * shearSpanM * 1000 // N
		tauV := vu / (stripWidth * d)
		tauC := 0.36 * math.Sqrt(fck)
		checks = append(checks, design.Check{
			Name:        design.CheckOneWayShear,
			Required:    round3(tauC),
			Provided:    round3(tauV),
			Pass:        tauV <= tauC,
			Description: "One-way shear strength (IS 456 Cl. 40)",
		})
	} else {
		checks = append(checks, design.Check{
			Name:        design.CheckOneWayShear,
			Required:    0,
			Provided:    0,
			Pass:        true,
			Description: "One-way shear - Not critical",
		})
	}

	// Punching shear on the perimeter at d/2 from the column face
	criticalPerimeter := 4 * (columnSize + d)                                    // mm
	punchingArea := (columnSize + d) * (columnSize + d)                          // mm²
	punchingForce := axialLoad*1000 - netPressure*punchingArea/1e6*1000          // N
	tauVPunch := punchingForce / (criticalPerimeter * d)
	tauCPunch := 0.25 * math.Sqrt(fck)
	checks = append(checks, design.Check{
		Name:        design.CheckPunchingShear,
		Required:    round3(tauCPunch),
		Provided:    round3(tauVPunch),
		Pass:        tauVPunch <= tauCPunch,
		Description: "Two-way shear (punching) strength (IS 456 Cl. 31.6)",
	})

	res := &design.Result{
		MemberType: string(design.Footing),
		DesignSummary: map[string]any{
			"length":           length,
			"breadth":          breadth,
			"thickness":        thickness,
			"effective_depth":  round2(d),
			"footing_area":     round2(footingArea),
			"bearing_pressure": round2(bearingPressure),
			"critical_moment":  round2(criticalMoment),
			"concrete_grade":   in.Materials.ConcreteGrade,
			"steel_grade":      in.Materials.SteelGrade,
		},
		Checks: checks,
	}
	res.Finalize()
	return res, nil
}
