package checker_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structuraltools/goiscc/internal/checker"
	"github.com/structuraltools/goiscc/internal/design"
)

// compliantBeam is a 6 m simply supported 300x600 beam in M20/Fe415
// with 4x16 mm bars under DL 2.5 + LL 3.0 kN/m. Every check passes.
func compliantBeam() *design.Input {
	return &design.Input{
		MemberType: "beam",
		Dimensions: design.Dimensions{Length: 6, Breadth: 300, Depth: 600},
		Materials:  design.Materials{ConcreteGrade: "M20", SteelGrade: "Fe415"},
		Reinforcement: design.Reinforcement{
			BarDiameter: 16,
			NumBars:     4,
			Cover:       25,
		},
		Loads: &design.Loads{DeadLoad: 2.5, LiveLoad: 3.0},
	}
}

func assertOverallMatchesChecks(t *testing.T, res *design.Result) {
	t.Helper()
	all := true
	for _, c := range res.Checks {
		if !c.Pass {
			all = false
		}
	}
	assert.Equal(t, all, res.OverallCompliance,
		"overall compliance must be the AND over every check")
}

func TestCheckBeamCompliant(t *testing.T) {
	res := checker.CheckBeam(compliantBeam())

	require.Empty(t, res.Error)
	assert.Equal(t, "beam", res.MemberType)
	assert.True(t, res.OverallCompliance)
	assert.Equal(t, "PASS", res.Status)

	// The full fixed sequence, in order
	require.Len(t, res.Checks, len(design.BeamCheckSequence))
	for i, name := range design.BeamCheckSequence {
		assert.Equal(t, name, res.Checks[i].Name)
		assert.True(t, res.Checks[i].Pass, "check %s", name)
	}

	// wu = 1.5*2.5 + 1.5*3.0 = 8.25 kN/m, Mu = 37.125 kN-m
	assert.Equal(t, 8.25, res.DesignSummary["factored_load"])
	assert.Equal(t, 37.13, res.DesignSummary["design_moment"])
	assert.Equal(t, 24.75, res.DesignSummary["design_shear"])
	assert.Equal(t, 567.0, res.DesignSummary["effective_depth"])

	// Under-reinforced section: demand well under the provided 804 mm²
	flex := res.Check(design.CheckFlexuralStrength)
	require.NotNil(t, flex)
	assert.InDelta(t, 182.5, flex.Required, 0.5)
	assert.InDelta(t, 804.25, flex.Provided, 0.01)

	assertOverallMatchesChecks(t, res)
}

func TestCheckBeamOverloadedFailsFlexure(t *testing.T) {
	in := compliantBeam()
	in.Loads = &design.Loads{DeadLoad: 20, LiveLoad: 10}

	res := checker.CheckBeam(in)
	require.Empty(t, res.Error)
	assert.False(t, res.OverallCompliance)
	assert.Equal(t, "FAIL", res.Status)

	flex := res.Check(design.CheckFlexuralStrength)
	require.NotNil(t, flex)
	assert.False(t, flex.Pass)
	assertOverallMatchesChecks(t, res)
}

func TestCheckBeamSteelMonotonicity(t *testing.T) {
	// Adding bars can only help flexure: 4x16 falls short of the
	// ~1025 mm² demand at wu = 45 kN/m, 6x16 covers it.
	base := compliantBeam()
	base.Loads = &design.Loads{DeadLoad: 20, LiveLoad: 10}
	base.Reinforcement.NumBars = 4
	sparse := checker.CheckBeam(base)

	more := compliantBeam()
	more.Loads = &design.Loads{DeadLoad: 20, LiveLoad: 10}
	more.Reinforcement.NumBars = 6
	dense := checker.CheckBeam(more)

	sf := sparse.Check(design.CheckFlexuralStrength)
	df := dense.Check(design.CheckFlexuralStrength)
	require.NotNil(t, sf)
	require.NotNil(t, df)

	assert.False(t, sf.Pass)
	assert.True(t, df.Pass)
	assert.Greater(t, df.Provided, sf.Provided)
	// Same loading, same demand
	assert.Equal(t, sf.Required, df.Required)
}

func TestCheckBeamSlenderSpanFailsDeflection(t *testing.T) {
	in := compliantBeam()
	in.Dimensions = design.Dimensions{Length: 12, Breadth: 300, Depth: 450}

	res := checker.CheckBeam(in)
	require.Empty(t, res.Error)

	defl := res.Check(design.CheckDeflection)
	require.NotNil(t, defl)
	// span/d = 12000/417 = 28.8 > 20
	assert.False(t, defl.Pass)
	assert.Equal(t, 20.0, defl.Required)
	assert.False(t, res.OverallCompliance)
}

func TestCheckBeamDefaults(t *testing.T) {
	// Missing reinforcement details fall back to 2x16 with 25 cover
	in := compliantBeam()
	in.Reinforcement = design.Reinforcement{}

	res := checker.CheckBeam(in)
	require.Empty(t, res.Error)
	flex := res.Check(design.CheckFlexuralStrength)
	require.NotNil(t, flex)
	assert.InDelta(t, 402.12, flex.Provided, 0.01)
}

func TestCheckBeamErrorOnlyResults(t *testing.T) {
	missing := compliantBeam()
	missing.Loads = nil
	res := checker.CheckBeam(missing)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Checks, "error results carry no partial check set")
	assert.Equal(t, "beam", res.MemberType)

	degenerate := compliantBeam()
	degenerate.Dimensions.Depth = 0
	res = checker.CheckBeam(degenerate)
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.Checks)

	// Cover larger than the depth leaves no effective section
	shallow := compliantBeam()
	shallow.Dimensions.Depth = 20
	res = checker.CheckBeam(shallow)
	assert.NotEmpty(t, res.Error)
	assert.Contains(t, res.Error, "effective depth")
}

func TestCheckBeamDeterministic(t *testing.T) {
	a := checker.CheckBeam(compliantBeam())
	b := checker.CheckBeam(compliantBeam())
	assert.Equal(t, a, b)
}
