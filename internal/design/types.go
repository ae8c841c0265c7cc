package design

import (
	"strings"
)

// MemberType identifies the structural member being checked.
type MemberType string

const (
	Beam    MemberType = "beam"
	Column  MemberType = "column"
	Slab    MemberType = "slab"
	Footing MemberType = "footing"
)

// SupportedMemberTypes lists every member type the engine can check,
// in dispatch order.
var SupportedMemberTypes = []MemberType{Beam, Column, Slab, Footing}

// ParseMemberType resolves a member type string case-insensitively.
func ParseMemberType(s string) (MemberType, error) {
	switch MemberType(strings.ToLower(strings.TrimSpace(s))) {
	case Beam:
		return Beam, nil
	case Column:
		return Column, nil
	case Slab:
		return Slab, nil
	case Footing:
		return Footing, nil
	}
	return "", Unsupportedf("unsupported member type: %s", strings.ToLower(strings.TrimSpace(s)))
}

// Dimensions holds member geometry. Spans and plan dimensions of
// slabs/footings are in metres; sections and thicknesses in mm.
type Dimensions struct {
	Length     FlexFloat `json:"length" yaml:"length"`                             // m (span or column height)
	Breadth    FlexFloat `json:"breadth" yaml:"breadth"`                           // mm for beams/columns, m for slabs/footings
	Depth      FlexFloat `json:"depth" yaml:"depth"`                               // mm (overall depth or thickness)
	ColumnSize FlexFloat `json:"column_size,omitempty" yaml:"column_size,omitempty"` // mm, supported column for footings
}

// Materials carries the grade designations; they resolve through the
// closed tables in internal/is456.
type Materials struct {
	ConcreteGrade string `json:"concrete_grade" yaml:"concrete_grade"`
	SteelGrade    string `json:"steel_grade" yaml:"steel_grade"`
}

// Reinforcement describes the provided steel. Which fields apply
// depends on the member type: beams and columns use bar counts,
// slabs and footings use bar spacing.
type Reinforcement struct {
	BarDiameter         FlexFloat `json:"bar_diameter,omitempty" yaml:"bar_diameter,omitempty"`                 // mm
	NumBars             FlexFloat `json:"num_bars,omitempty" yaml:"num_bars,omitempty"`                         // beams, columns
	Spacing             FlexFloat `json:"spacing,omitempty" yaml:"spacing,omitempty"`                           // mm c/c, slabs, footings
	DistributionSpacing FlexFloat `json:"distribution_spacing,omitempty" yaml:"distribution_spacing,omitempty"` // mm c/c, one-way slabs
	Cover               FlexFloat `json:"cover,omitempty" yaml:"cover,omitempty"`                               // mm
}

// Loads carries resolved member loads, either supplied by the caller
// or derived by the load calculator.
type Loads struct {
	DeadLoad            FlexFloat `json:"dead_load,omitempty" yaml:"dead_load,omitempty"`                         // kN/m (beams) or kN/m² (slabs)
	LiveLoad            FlexFloat `json:"live_load,omitempty" yaml:"live_load,omitempty"`                         // kN/m or kN/m²
	WindLoad            FlexFloat `json:"wind_load,omitempty" yaml:"wind_load,omitempty"`                         // kN/m or kN/m² (negative = uplift)
	FactoredLoad        FlexFloat `json:"factored_load,omitempty" yaml:"factored_load,omitempty"`                 // kN/m
	TotalLoad           FlexFloat `json:"total_load,omitempty" yaml:"total_load,omitempty"`                       // kN/m²
	AxialLoad           FlexFloat `json:"axial_load,omitempty" yaml:"axial_load,omitempty"`                       // kN, columns and footings
	Moment              FlexFloat `json:"moment,omitempty" yaml:"moment,omitempty"`                               // kN-m
	SafeBearingCapacity FlexFloat `json:"safe_bearing_capacity,omitempty" yaml:"safe_bearing_capacity,omitempty"` // kN/m², footings
}

// BuildingParameters feed the automatic load derivation. Zero fields
// take the documented defaults (residential, 1 floor, 3 m storey,
// 150 mm slab, 20 m² tributary area, 3 m tributary width).
type BuildingParameters struct {
	BuildingUse    string    `json:"building_use,omitempty" yaml:"building_use,omitempty"`
	NumFloors      FlexFloat `json:"num_floors,omitempty" yaml:"num_floors,omitempty"`
	FloorHeight    FlexFloat `json:"floor_height,omitempty" yaml:"floor_height,omitempty"`       // m
	SlabThickness  FlexFloat `json:"slab_thickness,omitempty" yaml:"slab_thickness,omitempty"`   // mm
	TributaryArea  FlexFloat `json:"tributary_area,omitempty" yaml:"tributary_area,omitempty"`   // m²
	TributaryWidth FlexFloat `json:"tributary_width,omitempty" yaml:"tributary_width,omitempty"` // m
	WallLoad       FlexFloat `json:"wall_load,omitempty" yaml:"wall_load,omitempty"`             // kN/m on beams
}

// WindParameters select the IS 875 Part 3 wind environment.
type WindParameters struct {
	WindZone         string    `json:"wind_zone,omitempty" yaml:"wind_zone,omitempty"` // zone_1 .. zone_6
	TerrainCategory  FlexFloat `json:"terrain_category,omitempty" yaml:"terrain_category,omitempty"`
	ImportanceFactor FlexFloat `json:"importance_factor,omitempty" yaml:"importance_factor,omitempty"`
}

// Input is the complete design record submitted for a compliance
// check. The load calculator may populate Loads and the audit fields
// before a checker consumes the record; nothing in the core mutates it
// afterwards.
type Input struct {
	MemberType         string              `json:"member_type" yaml:"member_type"`
	Dimensions         Dimensions          `json:"dimensions" yaml:"dimensions"`
	Materials          Materials           `json:"materials" yaml:"materials"`
	Reinforcement      Reinforcement       `json:"reinforcement" yaml:"reinforcement"`
	Loads              *Loads              `json:"loads,omitempty" yaml:"loads,omitempty"`
	BuildingParameters *BuildingParameters `json:"building_parameters,omitempty" yaml:"building_parameters,omitempty"`
	WindParameters     *WindParameters     `json:"wind_parameters,omitempty" yaml:"wind_parameters,omitempty"`

	// AutoCalculateLoads defaults to true when unset; explicit loads
	// are still recalculated unless the caller disables this.
	AutoCalculateLoads *bool `json:"auto_calculate_loads,omitempty" yaml:"auto_calculate_loads,omitempty"`

	// Audit blocks written back by the load calculator.
	LoadCalculations any              `json:"load_calculations,omitempty" yaml:"-"`
	WindCalculations *WindCalculation `json:"wind_calculations,omitempty" yaml:"-"`
}

// AutoLoads reports whether the load calculator should run for this
// record.
func (in *Input) AutoLoads() bool {
	if in.AutoCalculateLoads != nil {
		return *in.AutoCalculateLoads
	}
	return true
}

// EffectiveDepth returns depth - cover - barDia/2 in mm.
func EffectiveDepth(depth, cover, barDia float64) float64 {
	return depth - cover - barDia/2
}

// String implements fmt.Stringer for diagnostics.
func (m MemberType) String() string { return string(m) }

// Validate performs the structural field checks shared by every
// member type.
func (d Dimensions) Validate() error {
	if d.Length <= 0 || d.Breadth <= 0 || d.Depth <= 0 {
		return Validationf("invalid dimensions: length=%.2f, breadth=%.2f, depth=%.2f",
			d.Length.Float(), d.Breadth.Float(), d.Depth.Float())
	}
	return nil
}
