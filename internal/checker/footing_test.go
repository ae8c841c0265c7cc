package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structuraltools/goiscc/internal/checker"
	"github.com/structuraltools/goiscc/internal/design"
)

func compliantFooting() *design.Input {
	return &design.Input{
		MemberType: "footing",
		Dimensions: design.Dimensions{
			Length:     2,
			Breadth:    2,
			Depth:      500,
			ColumnSize: 400,
		},
		Materials: design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement: design.Reinforcement{
			BarDiameter: 16,
			Spacing:     150,
			Cover:       50,
		},
		Loads: &design.Loads{AxialLoad: 500, SafeBearingCapacity: 200},
	}
}

func TestCheckFootingCompliant(t *testing.T) {
	res := checker.CheckFooting(compliantFooting())

	require.Empty(t, res.Error)
	assert.True(t, res.OverallCompliance)
	require.Len(t, res.Checks, len(design.FootingCheckSequence))
	for i, name := range design.FootingCheckSequence {
		assert.Equal(t, name, res.Checks[i].Name)
		assert.True(t, res.Checks[i].Pass, "check %s", name)
	}

	// 2x2x0.5 m footing: self weight 50 kN on 4 m²,
	// gross pressure (500+50)/4 = 137.5 kN/m²
	bearing := res.Check(design.CheckBearingPressure)
	require.NotNil(t, bearing)
	assert.Equal(t, 200.0, bearing.Required)
	assert.InDelta(t, 137.5, bearing.Provided, 1e-9)

	assert.Equal(t, 4.0, res.DesignSummary["footing_area"])
	// Net pressure 125 over the 0.8 m cantilever on a 2 m strip:
	// M = 125*2*0.8²/2 = 80 kN-m
	assert.InDelta(t, 80.0, res.DesignSummary["critical_moment"].(float64), 0.01)
}

func TestCheckFootingOverloadedBearing(t *testing.T) {
	in := compliantFooting()
	in.Loads.AxialLoad = 900

	res := checker.CheckFooting(in)
	require.Empty(t, res.Error)

	bearing := res.Check(design.CheckBearingPressure)
	require.NotNil(t, bearing)
	// (900+50)/4 = 237.5 > 200
	assert.InDelta(t, 237.5, bearing.Provided, 1e-9)
	assert.False(t, bearing.Pass)
	assert.False(t, res.OverallCompliance)
	assertOverallMatchesChecks(t, res)
}

func TestCheckFootingDefaultBearingCapacity(t *testing.T) {
	in := compliantFooting()
	in.Loads.SafeBearingCapacity = 0

	res := checker.CheckFooting(in)
	require.Empty(t, res.Error)
	assert.Equal(t, 200.0, res.Check(design.CheckBearingPressure).Required)
}

func TestCheckFootingOneWayShearNotCritical(t *testing.T) {
	// A stubby footing where the shear section at d from the column
	// face falls outside the cantilever: the check is reported as not
	// critical and passes.
	in := &design.Input{
		MemberType: "footing",
		Dimensions: design.Dimensions{
			Length:     1,
			Breadth:    1,
			Depth:      400,
			ColumnSize: 600,
		},
		Materials:     design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement: design.Reinforcement{BarDiameter: 16, Spacing: 150, Cover: 50},
		Loads:         &design.Loads{AxialLoad: 200, SafeBearingCapacity: 300},
	}

	res := checker.CheckFooting(in)
	require.Empty(t, res.Error)

	ow := res.Check(design.CheckOneWayShear)
	require.NotNil(t, ow)
	assert.True(t, ow.Pass)
	assert.Equal(t, 0.0, ow.Required)
	assert.Equal(t, 0.0, ow.Provided)
	assert.Contains(t, ow.Description, "Not critical")
}

func TestCheckFootingProvidedSteelFromSpacing(t *testing.T) {
	res := checker.CheckFooting(compliantFooting())

	flex := res.Check(design.CheckFlexuralStrength)
	require.NotNil(t, flex)
	// floor(2000/150)+1 = 14 bars of 16 mm = 2814.9 mm²
	assert.InDelta(t, 2814.87, flex.Provided, 0.05)
	assert.True(t, flex.Pass)
}

func TestCheckFootingErrorOnly(t *testing.T) {
	in := compliantFooting()
	in.Dimensions.Length = 0
	res := checker.CheckFooting(in)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Checks)
	assert.Equal(t, "footing", res.MemberType)
}
