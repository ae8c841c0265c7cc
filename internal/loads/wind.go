package loads

import (
	"math"

	"github.com/structuraltools/goiscc/internal/design"
)

// Wind pressure derivation per IS 875 Part 3.

// WindSpeeds holds the basic wind speed vb (m/s) for the six wind
// zones of the IS 875 map.
var WindSpeeds = map[string]float64{
	"zone_1": 39,
	"zone_2": 44,
	"zone_3": 47,
	"zone_4": 50,
	"zone_5": 55,
	"zone_6": 60,
}

// terrainBaseFactors gives the k2 factor at or below 10 m height for
// each terrain category. Above 10 m the factor grows with
// (height/10)^0.15.
var terrainBaseFactors = map[int]float64{
	1: 1.05, // open terrain
	2: 1.00, // open terrain with scattered obstructions
	3: 0.91, // built-up terrain
	4: 0.80, // dense urban terrain
}

// Wind computes the design wind pressure at the given height (m).
// Unknown zones fall back to zone_2 (vb = 44 m/s); terrain categories
// outside 1..4 are treated as dense urban. The topography factor k3
// is fixed at 1.0.
func Wind(height float64, zone string, terrainCategory int, importanceFactor float64) design.WindCalculation {
	vb, ok := WindSpeeds[zone]
	if !ok {
		vb = WindSpeeds["zone_2"]
	}

	k2, ok := terrainBaseFactors[terrainCategory]
	if !ok {
		k2 = terrainBaseFactors[4]
	}
	if height > 10 {
		k2 *= math.Pow(height/10, 0.15)
	}

	const k3 = 1.0
	if importanceFactor <= 0 {
		importanceFactor = 1.0
	}

	vz := vb * k2 * k3
	pz := 0.6 * vz * vz / 1000 // kN/m²

	return design.WindCalculation{
		BasicWindSpeed:      vb,
		TerrainHeightFactor: k2,
		TopographyFactor:    k3,
		DesignWindSpeed:     vz,
		WindPressure:        pz * importanceFactor,
		Height:              height,
		Zone:                zone,
	}
}
