// Package compliance dispatches design records to the member
// checkers, deriving loads automatically when needed and decorating
// failed results with generic remediation advice.
package compliance

import (
	"fmt"

	"github.com/structuraltools/goiscc/internal/checker"
	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/loads"
)

// Recommendations appended when a member fails overall compliance.
// They are keyed by member type only, not by the specific check that
// failed.
var recommendations = map[design.MemberType][]string{
	design.Beam: {
		"Consider increasing beam depth if moment capacity is insufficient",
		"Check reinforcement spacing for shear requirements",
	},
	design.Column: {
		"Increase column dimensions if axial capacity is exceeded",
		"Check minimum reinforcement percentage",
	},
	design.Slab: {
		"Consider increasing slab thickness if deflection is excessive",
		"Check reinforcement requirements for flexure",
	},
	design.Footing: {
		"Increase footing dimensions if bearing pressure is excessive",
		"Check reinforcement for punching shear",
	},
}

// Check runs the full compliance pipeline for one design record:
// member dispatch, automatic load derivation when loads are missing
// or requested, the member's fixed check sequence, and merge of the
// load audit into the result. Faults never escape; they come back as
// an error-only result tagged with the member type.
func Check(in *design.Input) *design.Result {
	member, err := design.ParseMemberType(in.MemberType)
	if err != nil {
		return &design.Result{
			Error:          fmt.Sprintf("Unsupported member type: %s", in.MemberType),
			SupportedTypes: supportedTypes(),
		}
	}

	if in.Loads == nil || in.AutoLoads() {
		if err := loads.Calculate(member, in); err != nil {
			return design.ErrorResult(member, err)
		}
	}

	var result *design.Result
	switch member {
	case design.Beam:
		result = checker.CheckBeam(in)
	case design.Column:
		result = checker.CheckColumn(in)
	case design.Slab:
		result = checker.CheckSlab(in)
	case design.Footing:
		result = checker.CheckFooting(in)
	}

	if result.Error != "" {
		return result
	}

	if !result.OverallCompliance {
		result.Recommendations = append(result.Recommendations, recommendations[member]...)
	}

	if in.LoadCalculations != nil {
		result.LoadCalculations = in.LoadCalculations
		result.WindCalculations = in.WindCalculations
		result.CalculatedLoads = in.Loads
	}

	return result
}

func supportedTypes() []string {
	types := make([]string, len(design.SupportedMemberTypes))
	for i, t := range design.SupportedMemberTypes {
		types[i] = string(t)
	}
	return types
}
