package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structuraltools/goiscc/internal/compliance"
	"github.com/structuraltools/goiscc/internal/design"
)

func boolPtr(b bool) *bool { return &b }

func TestCheckUnsupportedMemberType(t *testing.T) {
	res := compliance.Check(&design.Input{MemberType: "wall"})

	assert.Equal(t, "Unsupported member type: wall", res.Error)
	assert.Equal(t, []string{"beam", "column", "slab", "footing"}, res.SupportedTypes)
	assert.Empty(t, res.Checks)
	assert.False(t, res.OverallCompliance)
}

func TestCheckAutoDerivesLoads(t *testing.T) {
	// No loads supplied: the calculator runs and its audit is merged
	// into the result.
	in := &design.Input{
		MemberType: "beam",
		Dimensions: design.Dimensions{Length: 4, Breadth: 300, Depth: 600},
		Materials:  design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement: design.Reinforcement{
			BarDiameter: 16,
			NumBars:     4,
		},
	}

	res := compliance.Check(in)
	require.Empty(t, res.Error)
	require.Len(t, res.Checks, len(design.BeamCheckSequence))

	require.NotNil(t, res.CalculatedLoads)
	assert.Greater(t, res.CalculatedLoads.DeadLoad.Float(), 0.0)
	require.NotNil(t, res.WindCalculations)
	assert.NotNil(t, res.LoadCalculations)
}

func TestCheckExplicitLoadsSkipDerivation(t *testing.T) {
	in := &design.Input{
		MemberType:         "beam",
		Dimensions:         design.Dimensions{Length: 6, Breadth: 300, Depth: 600},
		Materials:          design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement:      design.Reinforcement{BarDiameter: 16, NumBars: 4},
		Loads:              &design.Loads{DeadLoad: 2.5, LiveLoad: 3.0},
		AutoCalculateLoads: boolPtr(false),
	}

	res := compliance.Check(in)
	require.Empty(t, res.Error)

	// The supplied loads drive the check and no audit block appears
	assert.Equal(t, 8.25, res.DesignSummary["factored_load"])
	assert.Nil(t, res.CalculatedLoads)
	assert.Nil(t, res.LoadCalculations)
	assert.Nil(t, res.WindCalculations)
}

func TestCheckRecalculatesExplicitLoadsByDefault(t *testing.T) {
	// With the flag unset, supplied loads are replaced by the derived
	// ones.
	in := &design.Input{
		MemberType: "beam",
		Dimensions: design.Dimensions{Length: 6, Breadth: 300, Depth: 600},
		Materials:  design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Loads:      &design.Loads{DeadLoad: 1, LiveLoad: 1},
	}

	res := compliance.Check(in)
	require.Empty(t, res.Error)
	require.NotNil(t, res.CalculatedLoads)
	assert.NotEqual(t, 1.0, res.CalculatedLoads.DeadLoad.Float())
}

func TestCheckAppendsRecommendationsOnFailure(t *testing.T) {
	in := &design.Input{
		MemberType:         "column",
		Dimensions:         design.Dimensions{Length: 1, Breadth: 150, Depth: 300},
		Materials:          design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement:      design.Reinforcement{BarDiameter: 16, NumBars: 4},
		Loads:              &design.Loads{AxialLoad: 100},
		AutoCalculateLoads: boolPtr(false),
	}

	res := compliance.Check(in)
	require.Empty(t, res.Error)
	require.False(t, res.OverallCompliance)

	assert.Contains(t, res.Recommendations,
		"Increase column dimensions if axial capacity is exceeded")
	assert.Contains(t, res.Recommendations,
		"Check minimum reinforcement percentage")
}

func TestCheckNoRecommendationsOnPass(t *testing.T) {
	in := &design.Input{
		MemberType:         "beam",
		Dimensions:         design.Dimensions{Length: 6, Breadth: 300, Depth: 600},
		Materials:          design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement:      design.Reinforcement{BarDiameter: 16, NumBars: 4},
		Loads:              &design.Loads{DeadLoad: 2.5, LiveLoad: 3.0},
		AutoCalculateLoads: boolPtr(false),
	}

	res := compliance.Check(in)
	require.Empty(t, res.Error)
	require.True(t, res.OverallCompliance)
	assert.Empty(t, res.Recommendations)
}

func TestCheckFaultsBecomeErrorResults(t *testing.T) {
	in := &design.Input{
		MemberType: "slab",
		Dimensions: design.Dimensions{Length: 5, Breadth: 2, Depth: 0},
	}

	res := compliance.Check(in)
	assert.NotEmpty(t, res.Error)
	assert.Equal(t, "slab", res.MemberType)
	assert.Empty(t, res.Checks)
	assert.Empty(t, res.Recommendations)
}

func TestCheckDeterministic(t *testing.T) {
	build := func() *design.Input {
		return &design.Input{
			MemberType:    "slab",
			Dimensions:    design.Dimensions{Length: 5, Breadth: 2, Depth: 150},
			Materials:     design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
			Reinforcement: design.Reinforcement{BarDiameter: 10, Spacing: 150},
		}
	}
	a := compliance.Check(build())
	b := compliance.Check(build())
	assert.Equal(t, a, b)
}
