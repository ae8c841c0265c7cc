package design

// CheckName is the closed enumeration of limit-state checks the
// engine can run. Each member type runs a fixed ordered subset.
type CheckName string

const (
	CheckFlexuralStrength  CheckName = "flexural_strength"
	CheckMinimumSteel      CheckName = "minimum_steel"
	CheckMaximumSteel      CheckName = "maximum_steel"
	CheckShearStrength     CheckName = "shear_strength"
	CheckDeflection        CheckName = "deflection"
	CheckDevelopmentLength CheckName = "development_length"

	CheckMinimumDimension CheckName = "minimum_dimension"
	CheckSlendernessRatio CheckName = "slenderness_ratio"
	CheckAxialCapacity    CheckName = "axial_capacity"
	CheckMinimumBars      CheckName = "minimum_bars"
	CheckTieReinforcement CheckName = "tie_reinforcement"

	CheckMinimumThickness  CheckName = "minimum_thickness"
	CheckMaximumSpacing    CheckName = "maximum_spacing"
	CheckDistributionSteel CheckName = "distribution_steel"

	CheckBearingPressure CheckName = "bearing_pressure"
	CheckOneWayShear     CheckName = "one_way_shear"
	CheckPunchingShear   CheckName = "punching_shear"
)

// Fixed check sequences per member type. Order is part of the
// contract: results preserve it and the distribution steel check of
// one-way slabs is simply absent for two-way slabs.
var (
	BeamCheckSequence = []CheckName{
		CheckFlexuralStrength,
		CheckMinimumSteel,
		CheckMaximumSteel,
		CheckShearStrength,
		CheckDeflection,
		CheckDevelopmentLength,
	}

	ColumnCheckSequence = []CheckName{
		CheckMinimumDimension,
		CheckSlendernessRatio,
		CheckMinimumSteel,
		CheckMaximumSteel,
		CheckAxialCapacity,
		CheckMinimumBars,
		CheckTieReinforcement,
	}

	SlabCheckSequence = []CheckName{
		CheckMinimumThickness,
		CheckFlexuralStrength,
		CheckMinimumSteel,
		CheckMaximumSpacing,
		CheckShearStrength,
		CheckDistributionSteel, // one-way slabs only
	}

	FootingCheckSequence = []CheckName{
		CheckBearingPressure,
		CheckMinimumThickness,
		CheckFlexuralStrength,
		CheckMinimumSteel,
		CheckMaximumSpacing,
		CheckOneWayShear,
		CheckPunchingShear,
	}
)

// Check is one executed limit-state check. Required holds the code
// limit (demand, minimum, or cap) and Provided the value the design
// actually delivers; the comparison direction is fixed per check kind
// and already folded into Pass.
type Check struct {
	Name        CheckName `json:"name"`
	Required    float64   `json:"required"`
	Provided    float64   `json:"provided"`
	Pass        bool      `json:"pass"`
	Description string    `json:"description"`
}

// Result is the outcome of one compliance run. Either the full check
// sequence for the member type is present, or only Error is set -
// never a partial check set.
type Result struct {
	MemberType        string           `json:"member_type"`
	OverallCompliance bool             `json:"overall_compliance"`
	DesignSummary     map[string]any   `json:"design_summary,omitempty"`
	Checks            []Check          `json:"checks,omitempty"`
	Status            string           `json:"status,omitempty"`
	Recommendations   []string         `json:"recommendations,omitempty"`
	LoadCalculations  any              `json:"load_calculations,omitempty"`
	WindCalculations  *WindCalculation `json:"wind_calculations,omitempty"`
	CalculatedLoads   *Loads           `json:"calculated_loads,omitempty"`
	Error             string           `json:"error,omitempty"`
	SupportedTypes    []string         `json:"supported_types,omitempty"`
}

// Check returns the named check, or nil when absent.
func (r *Result) Check(name CheckName) *Check {
	for i := range r.Checks {
		if r.Checks[i].Name == name {
			return &r.Checks[i]
		}
	}
	return nil
}

// Finalize derives OverallCompliance and Status from the executed
// checks. OverallCompliance is the logical AND over every check
// present.
func (r *Result) Finalize() {
	pass := true
	for _, c := range r.Checks {
		if !c.Pass {
			pass = false
			break
		}
	}
	r.OverallCompliance = pass
	if pass {
		r.Status = "PASS"
	} else {
		r.Status = "FAIL"
	}
}

// ErrorResult wraps a checker fault into an error-only result for the
// given member type.
func ErrorResult(member MemberType, err error) *Result {
	return &Result{
		MemberType: string(member),
		Error:      err.Error(),
	}
}
