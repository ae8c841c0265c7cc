package loads_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/loads"
)

func TestLiveLoadTable(t *testing.T) {
	assert.Equal(t, 2.0, loads.LiveLoad("residential"))
	assert.Equal(t, 3.0, loads.LiveLoad("office"))
	assert.Equal(t, 7.5, loads.LiveLoad("warehouse"))
	assert.Equal(t, 0.75, loads.LiveLoad("roof"))
	// Unknown classes default to residential
	assert.Equal(t, 2.0, loads.LiveLoad("observatory"))
}

func TestPartitionLoad(t *testing.T) {
	assert.Equal(t, 1.0, loads.PartitionLoad("residential"))
	assert.Equal(t, 1.5, loads.PartitionLoad("retail"))
	assert.Equal(t, 1.5, loads.PartitionLoad("industrial"))
}

func TestSuperimposedDeadLoad(t *testing.T) {
	// finishes 1.0+0.5+0.3, partitions 1.0, MEP 0.5
	total, items := loads.SuperimposedDeadLoad("residential", true, true)
	assert.InDelta(t, 3.3, total, 1e-9)
	assert.Len(t, items, 5)
	assert.Equal(t, 1.0, items["floor_finish"])
	assert.Equal(t, 1.0, items["partition_walls"])

	// MEP is always carried
	total, items = loads.SuperimposedDeadLoad("residential", false, false)
	assert.InDelta(t, 0.5, total, 1e-9)
	assert.Len(t, items, 1)
}

func TestCalculateBeamDefaults(t *testing.T) {
	// 300x600 beam, residential defaults, 3 m tributary width:
	//   self weight 0.3*0.6*25           = 4.5 kN/m
	//   floor dead (3.75 slab + 3.3 SIDL)*3 = 21.15 kN/m
	//   live 2.0*3                       = 6 kN/m
	in := &design.Input{
		MemberType: "beam",
		Dimensions: design.Dimensions{Length: 6, Breadth: 300, Depth: 600},
	}
	require.NoError(t, loads.Calculate(design.Beam, in))

	require.NotNil(t, in.Loads)
	assert.InDelta(t, 25.65, in.Loads.DeadLoad.Float(), 1e-9)
	assert.InDelta(t, 6.0, in.Loads.LiveLoad.Float(), 1e-9)
	assert.InDelta(t, 1.5*(25.65+6.0), in.Loads.FactoredLoad.Float(), 1e-9)

	// Lateral wind on the 0.3 m face at pz = 1.1616 kN/m²
	assert.InDelta(t, 1.1616*0.3, in.Loads.WindLoad.Float(), 1e-6)

	bd, ok := in.LoadCalculations.(*design.BeamLoadBreakdown)
	require.True(t, ok)
	assert.InDelta(t, 4.5, bd.BeamSelfWeight, 1e-9)
	assert.InDelta(t, 21.15, bd.SlabDeadLoad, 1e-9)
	assert.Equal(t, 3.0, bd.TributaryWidth)
	require.NotNil(t, in.WindCalculations)
}

func TestCalculateBeamWallLoad(t *testing.T) {
	in := &design.Input{
		MemberType:         "beam",
		Dimensions:         design.Dimensions{Length: 6, Breadth: 300, Depth: 600},
		BuildingParameters: &design.BuildingParameters{WallLoad: 10},
	}
	require.NoError(t, loads.Calculate(design.Beam, in))
	assert.InDelta(t, 35.65, in.Loads.DeadLoad.Float(), 1e-9)
}

func TestCalculateColumnGoverningCombination(t *testing.T) {
	// 300x300x3 m column, defaults (20 m² tributary, 1 floor):
	//   self     0.09*3*25        = 6.75 kN
	//   floors   7.05*20          = 141 kN
	//   dead     147.75, live 40, wind 1.1616*15 = 17.424 kN
	// Gravity 1.5(D+L) = 281.625 governs over the wind combinations.
	in := &design.Input{
		MemberType: "column",
		Dimensions: design.Dimensions{Length: 3, Breadth: 300, Depth: 300},
	}
	require.NoError(t, loads.Calculate(design.Column, in))

	bd, ok := in.LoadCalculations.(*design.ColumnLoadBreakdown)
	require.True(t, ok)
	assert.InDelta(t, 6.75, bd.ColumnSelfWeight, 1e-9)
	assert.InDelta(t, 147.75, bd.TotalDeadLoad, 1e-9)
	assert.InDelta(t, 40.0, bd.TotalLiveLoad, 1e-9)
	assert.InDelta(t, 17.424, bd.TotalWindLoad, 1e-6)

	assert.InDelta(t, 281.625, bd.Combination1, 1e-6)
	assert.InDelta(t, 1.2*(147.75+40+17.424), bd.Combination2, 1e-6)
	assert.InDelta(t, 1.5*(147.75+10+17.424), bd.Combination3, 1e-6)
	assert.Equal(t, bd.Combination1, bd.CriticalAxialLoad)
	assert.InDelta(t, bd.CriticalAxialLoad, in.Loads.AxialLoad.Float(), 1e-9)

	// Wind moment pz*h²/6 is tiny here; the practical floor governs
	assert.InDelta(t, 50.0, in.Loads.Moment.Float(), 1e-9)
}

func TestCalculateColumnTallBuildingMoment(t *testing.T) {
	// A 20 m column in zone_5 pushes pz*h²/6 past the 50 kN-m floor
	in := &design.Input{
		MemberType:     "column",
		Dimensions:     design.Dimensions{Length: 20, Breadth: 400, Depth: 400},
		WindParameters: &design.WindParameters{WindZone: "zone_5"},
	}
	require.NoError(t, loads.Calculate(design.Column, in))
	assert.Greater(t, in.Loads.Moment.Float(), 50.0)
	require.NotNil(t, in.WindCalculations)
	assert.Equal(t, 55.0, in.WindCalculations.BasicWindSpeed)
}

func TestCalculateSlabDefaults(t *testing.T) {
	// 150 mm slab: self 3.75 + SIDL 3.3 = 7.05 kN/m² dead, 2.0 live
	in := &design.Input{
		MemberType: "slab",
		Dimensions: design.Dimensions{Length: 5, Breadth: 4, Depth: 150},
	}
	require.NoError(t, loads.Calculate(design.Slab, in))

	assert.InDelta(t, 7.05, in.Loads.DeadLoad.Float(), 1e-9)
	assert.InDelta(t, 2.0, in.Loads.LiveLoad.Float(), 1e-9)
	assert.InDelta(t, 9.05, in.Loads.TotalLoad.Float(), 1e-9)

	// Roof uplift is negative: -0.8*pz at the top storey (3 m)
	assert.InDelta(t, -0.8*1.1616, in.Loads.WindLoad.Float(), 1e-6)

	bd, ok := in.LoadCalculations.(*design.SlabLoadBreakdown)
	require.True(t, ok)
	assert.InDelta(t, 3.75, bd.SelfWeight, 1e-9)
	assert.InDelta(t, 3.3, bd.SuperimposedDeadLoad, 1e-9)
	assert.Len(t, bd.SuperimposedBreakdown, 5)
}

func TestCalculateFootingCarriesBearingCapacity(t *testing.T) {
	// An explicitly supplied safe bearing capacity is a soil property
	// and must survive load recalculation.
	in := &design.Input{
		MemberType: "footing",
		Dimensions: design.Dimensions{Length: 2, Breadth: 2, Depth: 500},
		Loads:      &design.Loads{SafeBearingCapacity: 150},
	}
	require.NoError(t, loads.Calculate(design.Footing, in))

	assert.Equal(t, 150.0, in.Loads.SafeBearingCapacity.Float())
	assert.Greater(t, in.Loads.AxialLoad.Float(), 0.0)

	bd, ok := in.LoadCalculations.(*design.FootingLoadBreakdown)
	require.True(t, ok)
	// Defaults: dead 7.05*20 = 141, live 2*20 = 40, wind 17.424;
	// gravity combination 1.5*181 = 271.5 governs.
	assert.InDelta(t, 141.0, bd.TotalDeadLoad, 1e-9)
	assert.InDelta(t, 40.0, bd.TotalLiveLoad, 1e-9)
	assert.InDelta(t, 271.5, bd.CriticalAxialLoad, 1e-6)
	assert.InDelta(t, 2*2*0.5*25, bd.FootingSelfWeight, 1e-9)
}

func TestCalculateRejectsInvalidDimensions(t *testing.T) {
	in := &design.Input{
		MemberType: "beam",
		Dimensions: design.Dimensions{Length: 6, Breadth: 0, Depth: 600},
	}
	err := loads.Calculate(design.Beam, in)
	assert.Error(t, err)
}

func TestCalculateBuildingOverrides(t *testing.T) {
	in := &design.Input{
		MemberType: "column",
		Dimensions: design.Dimensions{Length: 3, Breadth: 300, Depth: 300},
		BuildingParameters: &design.BuildingParameters{
			BuildingUse:   "office",
			NumFloors:     4,
			TributaryArea: 12,
		},
	}
	require.NoError(t, loads.Calculate(design.Column, in))

	bd := in.LoadCalculations.(*design.ColumnLoadBreakdown)
	assert.Equal(t, 4, bd.NumFloors)
	assert.Equal(t, 12.0, bd.TributaryArea)
	// office: live 3.0 kN/m² * 12 m² * 4 floors
	assert.InDelta(t, 144.0, bd.TotalLiveLoad, 1e-9)
}

func TestCalculateIsDeterministic(t *testing.T) {
	build := func() *design.Input {
		return &design.Input{
			MemberType: "column",
			Dimensions: design.Dimensions{Length: 3, Breadth: 300, Depth: 300},
		}
	}
	a, b := build(), build()
	require.NoError(t, loads.Calculate(design.Column, a))
	require.NoError(t, loads.Calculate(design.Column, b))
	assert.Equal(t, a.Loads, b.Loads)
	assert.Equal(t, a.LoadCalculations, b.LoadCalculations)
	assert.Equal(t, a.WindCalculations, b.WindCalculations)
}
