package loads

import (
	"math"

	"github.com/structuraltools/goiscc/internal/design"
	"github.com/structuraltools/goiscc/internal/is456"
)

// Automatic load derivation per IS 875. Everything here is a
// deterministic pure function of the design record; the only side
// effect is writing the resolved Loads and audit blocks back into it.

// Defaults applied when building or wind parameters are left unset.
const (
	DefaultBuildingUse    = "residential"
	DefaultNumFloors      = 1
	DefaultFloorHeight    = 3.0   // m
	DefaultSlabThickness  = 150.0 // mm
	DefaultTributaryArea  = 20.0  // m²
	DefaultTributaryWidth = 3.0   // m
	DefaultWindZone       = "zone_2"
	DefaultTerrain        = 2
	DefaultImportance     = 1.0

	// Wall area assumed to shed wind onto one column line (m²).
	windAreaPerColumn = 15.0

	// Lower bound on the derived column design moment (kN-m).
	minColumnMoment = 50.0
)

// Superimposed dead load components (kN/m²), IS 875 Part 1.
const (
	floorFinishLoad   = 1.0 // flooring + screed
	ceilingFinishLoad = 0.5 // false ceiling + plaster
	waterproofingLoad = 0.3
	mepServicesLoad   = 0.5
)

// LiveLoads holds the imposed floor loads (kN/m²) of IS 875 Part 2 by
// usage class.
var LiveLoads = map[string]float64{
	"residential": 2.0,
	"office":      3.0,
	"retail":      4.0,
	"industrial":  5.0,
	"warehouse":   7.5,
	"parking":     2.5,
	"corridor":    3.0,
	"stairs":      3.0,
	"terrace":     1.5,
	"roof":        0.75,
}

// LiveLoad returns the imposed load for a usage class, defaulting to
// residential for unknown classes.
func LiveLoad(buildingUse string) float64 {
	if q, ok := LiveLoads[buildingUse]; ok {
		return q
	}
	return LiveLoads["residential"]
}

// PartitionLoad returns the equivalent partition wall load (kN/m²)
// for a usage class.
func PartitionLoad(buildingUse string) float64 {
	switch buildingUse {
	case "retail", "industrial":
		return 1.5
	default:
		return 1.0
	}
}

// SuperimposedDeadLoad sums finishes, partitions and MEP allowances
// for floor members (kN/m²) and returns the itemized breakdown.
func SuperimposedDeadLoad(buildingUse string, includePartitions, includeFinishes bool) (float64, map[string]float64) {
	items := map[string]float64{}
	if includeFinishes {
		items["floor_finish"] = floorFinishLoad
		items["ceiling_finish"] = ceilingFinishLoad
		items["waterproofing"] = waterproofingLoad
	}
	if includePartitions {
		items["partition_walls"] = PartitionLoad(buildingUse)
	}
	items["mep_services"] = mepServicesLoad

	total := 0.0
	for _, v := range items {
		total += v
	}
	return total, items
}

// buildingParams resolves the optional building parameters with
// defaults filled in.
type buildingParams struct {
	use            string
	numFloors      int
	floorHeight    float64
	slabThickness  float64
	tributaryArea  float64
	tributaryWidth float64
	wallLoad       float64
}

func resolveBuilding(in *design.Input) buildingParams {
	bp := buildingParams{
		use:            DefaultBuildingUse,
		numFloors:      DefaultNumFloors,
		floorHeight:    DefaultFloorHeight,
		slabThickness:  DefaultSlabThickness,
		tributaryArea:  DefaultTributaryArea,
		tributaryWidth: DefaultTributaryWidth,
	}
	if p := in.BuildingParameters; p != nil {
		if p.BuildingUse != "" {
			bp.use = p.BuildingUse
		}
		if p.NumFloors > 0 {
			bp.numFloors = p.NumFloors.Int()
		}
		bp.floorHeight = p.FloorHeight.Or(DefaultFloorHeight)
		bp.slabThickness = p.SlabThickness.Or(DefaultSlabThickness)
		bp.tributaryArea = p.TributaryArea.Or(DefaultTributaryArea)
		bp.tributaryWidth = p.TributaryWidth.Or(DefaultTributaryWidth)
		bp.wallLoad = p.WallLoad.Float()
	}
	return bp
}

type windParams struct {
	zone       string
	terrain    int
	importance float64
}

func resolveWind(in *design.Input) windParams {
	wp := windParams{zone: DefaultWindZone, terrain: DefaultTerrain, importance: DefaultImportance}
	if p := in.WindParameters; p != nil {
		if p.WindZone != "" {
			wp.zone = p.WindZone
		}
		if p.TerrainCategory > 0 {
			wp.terrain = p.TerrainCategory.Int()
		}
		wp.importance = p.ImportanceFactor.Or(DefaultImportance)
	}
	return wp
}

// Calculate derives all loads for the member and writes the Loads
// block plus the load/wind audit back into the design record.
func Calculate(member design.MemberType, in *design.Input) error {
	if err := in.Dimensions.Validate(); err != nil {
		return err
	}

	switch member {
	case design.Beam:
		return calculateBeam(in)
	case design.Column:
		return calculateColumn(in)
	case design.Slab:
		return calculateSlab(in)
	case design.Footing:
		return calculateFooting(in)
	}
	return design.Unsupportedf("unsupported member type: %s", member)
}

// floorLoads returns the per-area dead and live load of one suspended
// floor (kN/m²) for the resolved building parameters.
func floorLoads(bp buildingParams) (dead, live float64) {
	slabSelf := is456.ConcreteDensity * bp.slabThickness / 1000
	sidl, _ := SuperimposedDeadLoad(bp.use, true, true)
	return slabSelf + sidl, LiveLoad(bp.use)
}

func calculateBeam(in *design.Input) error {
	bp := resolveBuilding(in)
	wp := resolveWind(in)

	widthM := in.Dimensions.Breadth.Float() / 1000
	depthM := in.Dimensions.Depth.Float() / 1000

	selfWeightUDL := widthM * depthM * is456.ConcreteDensity // kN/m

	floorDead, floorLive := floorLoads(bp)
	slabDead := floorDead * bp.tributaryWidth
	slabLive := floorLive * bp.tributaryWidth

	totalDead := selfWeightUDL + slabDead + bp.wallLoad
	totalLive := slabLive
	factored := is456.LoadFactorDead*totalDead + is456.LoadFactorLive*totalLive

	// Lateral wind on the exposed beam face, evaluated at the beam's
	// own depth above ground.
	wind := Wind(depthM, wp.zone, wp.terrain, wp.importance)
	windOnBeam := wind.WindPressure * widthM // kN/m

	in.Loads = &design.Loads{
		DeadLoad:     design.FlexFloat(totalDead),
		LiveLoad:     design.FlexFloat(totalLive),
		WindLoad:     design.FlexFloat(windOnBeam),
		FactoredLoad: design.FlexFloat(factored),
	}
	in.LoadCalculations = &design.BeamLoadBreakdown{
		BeamSelfWeight: selfWeightUDL,
		SlabDeadLoad:   slabDead,
		SlabLiveLoad:   slabLive,
		WallLoad:       bp.wallLoad,
		TotalDeadLoad:  totalDead,
		TotalLiveLoad:  totalLive,
		FactoredLoad:   factored,
		TributaryWidth: bp.tributaryWidth,
	}
	in.WindCalculations = &wind
	return nil
}

// governingCombination applies the three strength combinations and
// returns each together with the maximum.
func governingCombination(dead, live, windLoad float64) (c1, c2, c3, critical float64) {
	c1 = 1.5 * (dead + live)
	c2 = 1.2 * (dead + live + windLoad)
	c3 = 1.5 * (dead + 0.25*live + windLoad)
	critical = math.Max(c1, math.Max(c2, c3))
	return c1, c2, c3, critical
}

func calculateColumn(in *design.Input) error {
	bp := resolveBuilding(in)
	wp := resolveWind(in)

	widthM := in.Dimensions.Breadth.Float() / 1000
	depthM := in.Dimensions.Depth.Float() / 1000
	heightM := in.Dimensions.Length.Float()

	selfWeight := widthM * depthM * heightM * is456.ConcreteDensity // kN

	floorDead, floorLive := floorLoads(bp)
	deadFromFloors := floorDead * bp.tributaryArea * float64(bp.numFloors)
	totalDead := selfWeight + deadFromFloors
	totalLive := floorLive * bp.tributaryArea * float64(bp.numFloors)

	wind := Wind(heightM, wp.zone, wp.terrain, wp.importance)
	totalWind := wind.WindPressure * windAreaPerColumn

	c1, c2, c3, critical := governingCombination(totalDead, totalLive, totalWind)

	// Wind moment pz*h²/6 with a practical floor for minimum
	// eccentricity effects.
	windMoment := wind.WindPressure * heightM * heightM / 6
	moment := math.Max(minColumnMoment, windMoment)

	in.Loads = &design.Loads{
		AxialLoad: design.FlexFloat(critical),
		Moment:    design.FlexFloat(moment),
	}
	in.LoadCalculations = &design.ColumnLoadBreakdown{
		ColumnSelfWeight:   selfWeight,
		DeadLoadFromFloors: deadFromFloors,
		TotalDeadLoad:      totalDead,
		TotalLiveLoad:      totalLive,
		TotalWindLoad:      totalWind,
		Combination1:       c1,
		Combination2:       c2,
		Combination3:       c3,
		CriticalAxialLoad:  critical,
		WindPressure:       wind.WindPressure,
		NumFloors:          bp.numFloors,
		TributaryArea:      bp.tributaryArea,
	}
	in.WindCalculations = &wind
	return nil
}

func calculateSlab(in *design.Input) error {
	bp := resolveBuilding(in)
	wp := resolveWind(in)

	thickness := in.Dimensions.Depth.Float() // mm

	selfWeight := is456.ConcreteDensity * thickness / 1000 // kN/m²
	sidl, sidlItems := SuperimposedDeadLoad(bp.use, true, true)
	live := LiveLoad(bp.use)

	// Uplift on roof slabs at the building's top storey.
	height := bp.floorHeight * float64(bp.numFloors)
	wind := Wind(height, wp.zone, wp.terrain, wp.importance)
	uplift := -0.8 * wind.WindPressure

	totalDead := selfWeight + sidl

	in.Loads = &design.Loads{
		DeadLoad:  design.FlexFloat(totalDead),
		LiveLoad:  design.FlexFloat(live),
		WindLoad:  design.FlexFloat(uplift),
		TotalLoad: design.FlexFloat(totalDead + live),
	}
	in.LoadCalculations = &design.SlabLoadBreakdown{
		SelfWeight:            selfWeight,
		SuperimposedDeadLoad:  sidl,
		LiveLoad:              live,
		WindUplift:            uplift,
		TotalDeadLoad:         totalDead,
		TotalServiceLoad:      totalDead + live,
		SuperimposedBreakdown: sidlItems,
	}
	in.WindCalculations = &wind
	return nil
}

func calculateFooting(in *design.Input) error {
	bp := resolveBuilding(in)
	wp := resolveWind(in)

	lengthM := in.Dimensions.Length.Float()
	breadthM := in.Dimensions.Breadth.Float()
	thicknessM := in.Dimensions.Depth.Float() / 1000

	floorDead, floorLive := floorLoads(bp)
	totalDead := floorDead * bp.tributaryArea * float64(bp.numFloors)
	totalLive := floorLive * bp.tributaryArea * float64(bp.numFloors)

	buildingHeight := bp.floorHeight * float64(bp.numFloors)
	wind := Wind(buildingHeight, wp.zone, wp.terrain, wp.importance)
	totalWind := wind.WindPressure * windAreaPerColumn

	c1, c2, c3, critical := governingCombination(totalDead, totalLive, totalWind)

	selfWeight := lengthM * breadthM * thicknessM * is456.ConcreteDensity

	resolved := &design.Loads{AxialLoad: design.FlexFloat(critical)}
	// Safe bearing capacity is a soil property, not a load; an
	// explicitly supplied value survives recalculation.
	if in.Loads != nil && in.Loads.SafeBearingCapacity > 0 {
		resolved.SafeBearingCapacity = in.Loads.SafeBearingCapacity
	}

	in.Loads = resolved
	in.LoadCalculations = &design.FootingLoadBreakdown{
		DeadLoadPerFloor:  floorDead,
		LiveLoadPerFloor:  floorLive,
		TotalDeadLoad:     totalDead,
		TotalLiveLoad:     totalLive,
		TotalWindLoad:     totalWind,
		Combination1:      c1,
		Combination2:      c2,
		Combination3:      c3,
		CriticalAxialLoad: critical,
		FootingSelfWeight: selfWeight,
		NumFloors:         bp.numFloors,
		TributaryArea:     bp.tributaryArea,
	}
	in.WindCalculations = &wind
	return nil
}
