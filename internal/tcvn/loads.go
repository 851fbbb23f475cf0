package tcvn

// Preliminary sizing factors

const (
	// ColumnLoadFactor converts the equivalent floor load into column axial force
	ColumnLoadFactor = 1.15

	// FoundationOverload is applied to the column base force
	FoundationOverload = 1.1

	// PileCountFactor covers eccentricity and moment in the pile cap
	PileCountFactor = 1.2

	// Gravity converts tons to kN
	Gravity = 9.81

	// OverburdenCorrection approximates γ·H under a shallow footing (kN/m²)
	OverburdenCorrection = 20.0

	// SoilUnitFactor converts kg/cm² to kN/m²
	SoilUnitFactor = 100.0

	// FloorsPerGroup is the number of floors sharing one column section
	FloorsPerGroup = 3
)

// Occupancy is a building type with its equivalent floor load.
// The load includes self weight, finishes, partitions and live load.
type Occupancy struct {
	Name string
	Load float64 // kN/m²
}

// Occupancies per TCVN 2737:2023 typical usage
var Occupancies = []Occupancy{
	{"Townhouse/Villa", 10.0},
	{"Office/Hotel", 14.0},
	{"High-rise apartment", 14.5},
}

// CustomOccupancyLoad is used for building types not in the table
const CustomOccupancyLoad = 10.0

// OccupancyLoad returns the equivalent floor load for a building type
// and whether the type was found.
func OccupancyLoad(name string) (float64, bool) {
	for _, o := range Occupancies {
		if o.Name == name {
			return o.Load, true
		}
	}
	return CustomOccupancyLoad, false
}

// Standards cited in calculation reports
var Standards = []string{
	"TCVN 2737:2023: Loads and actions",
	"TCVN 5574:2018: Concrete and reinforced concrete structures",
	"TCVN 9386:2012: Design of structures for earthquake resistance",
	"TCVN 10304:2014: Pile foundation - Design standard",
}
