package design

// Audit blocks written back into the design record by the automatic
// load calculator so the report layer can show how each figure was
// derived.

// WindCalculation traces the IS 875 Part 3 wind pressure derivation.
type WindCalculation struct {
	BasicWindSpeed      float64 `json:"basic_wind_speed"`      // vb, m/s
	TerrainHeightFactor float64 `json:"terrain_height_factor"` // k2
	TopographyFactor    float64 `json:"topography_factor"`     // k3
	DesignWindSpeed     float64 `json:"design_wind_speed"`     // vz, m/s
	WindPressure        float64 `json:"wind_pressure"`         // pz × importance factor, kN/m²
	Height              float64 `json:"height"`                // m
	Zone                string  `json:"zone"`
}

// BeamLoadBreakdown itemizes the derived UDL on a beam (kN/m).
type BeamLoadBreakdown struct {
	BeamSelfWeight float64 `json:"beam_self_weight"`
	SlabDeadLoad   float64 `json:"slab_dead_load"`
	SlabLiveLoad   float64 `json:"slab_live_load"`
	WallLoad       float64 `json:"wall_load"`
	TotalDeadLoad  float64 `json:"total_dead_load"`
	TotalLiveLoad  float64 `json:"total_live_load"`
	FactoredLoad   float64 `json:"factored_load"`
	TributaryWidth float64 `json:"tributary_width"`
}

// ColumnLoadBreakdown itemizes the axial load aggregation and the
// three IS 1893 style combinations (kN).
type ColumnLoadBreakdown struct {
	ColumnSelfWeight   float64 `json:"column_self_weight"`
	DeadLoadFromFloors float64 `json:"dead_load_from_floors"`
	TotalDeadLoad      float64 `json:"total_dead_load"`
	TotalLiveLoad      float64 `json:"total_live_load"`
	TotalWindLoad      float64 `json:"total_wind_load"`
	Combination1       float64 `json:"load_combination_1"` // 1.5(DL+LL)
	Combination2       float64 `json:"load_combination_2"` // 1.2(DL+LL+WL)
	Combination3       float64 `json:"load_combination_3"` // 1.5(DL+0.25LL+WL)
	CriticalAxialLoad  float64 `json:"critical_axial_load"`
	WindPressure       float64 `json:"wind_pressure"`
	NumFloors          int     `json:"num_floors"`
	TributaryArea      float64 `json:"tributary_area"`
}

// SlabLoadBreakdown itemizes area loads on a slab (kN/m²).
type SlabLoadBreakdown struct {
	SelfWeight            float64 `json:"self_weight"`
	SuperimposedDeadLoad  float64 `json:"superimposed_dead_load"`
	LiveLoad              float64 `json:"live_load"`
	WindUplift            float64 `json:"wind_uplift"`
	TotalDeadLoad         float64 `json:"total_dead_load"`
	TotalServiceLoad      float64 `json:"total_service_load"`
	SuperimposedBreakdown map[string]float64 `json:"superimposed_breakdown,omitempty"`
}

// FootingLoadBreakdown itemizes the superstructure reaction carried
// down to a footing (kN).
type FootingLoadBreakdown struct {
	DeadLoadPerFloor  float64 `json:"dead_load_per_floor"`  // kN/m²
	LiveLoadPerFloor  float64 `json:"live_load_per_floor"`  // kN/m²
	TotalDeadLoad     float64 `json:"total_dead_load"`
	TotalLiveLoad     float64 `json:"total_live_load"`
	TotalWindLoad     float64 `json:"total_wind_load"`
	Combination1      float64 `json:"load_combination_1"`
	Combination2      float64 `json:"load_combination_2"`
	Combination3      float64 `json:"load_combination_3"`
	CriticalAxialLoad float64 `json:"critical_axial_load"`
	FootingSelfWeight float64 `json:"footing_self_weight"`
	NumFloors         int     `json:"num_floors"`
	TributaryArea     float64 `json:"tributary_area"`
}
