package project

// Parameters is the complete input of one sizing run.
// Lengths are in m unless the field says mm.
type Parameters struct {
	Name         string `yaml:"name" json:"name"`
	BuildingType string `yaml:"building_type" json:"building_type"`
	ShearWalls   bool   `yaml:"shear_walls" json:"shear_walls"`

	Grid Grid `yaml:"grid" json:"grid"`

	// FloorHeights lists storey heights bottom first. When empty, Floors
	// storeys of TypicalHeight are generated.
	FloorHeights  List    `yaml:"floor_heights" json:"floor_heights"`
	Floors        int     `yaml:"floors" json:"floors"`
	TypicalHeight float64 `yaml:"typical_height" json:"typical_height"`

	Materials Materials `yaml:"materials" json:"materials"`

	// SlabLoad is the equivalent floor load q (kN/m²); zero takes the
	// default of BuildingType.
	SlabLoad float64 `yaml:"slab_load" json:"slab_load"`

	Column     ColumnDef     `yaml:"column" json:"column"`
	Foundation FoundationDef `yaml:"foundation" json:"foundation"`
}

// Grid holds the axis spacings in each plan direction.
type Grid struct {
	X List `yaml:"x" json:"x"`
	Y List `yaml:"y" json:"y"`
}

// Materials names the grades and their design strengths (MPa). A zero
// strength is looked up from the grade name.
type Materials struct {
	Concrete  string  `yaml:"concrete" json:"concrete"`
	Rb        float64 `yaml:"rb" json:"rb"`
	MainSteel string  `yaml:"main_steel" json:"main_steel"`
	Rs        float64 `yaml:"rs" json:"rs"`
	Stirrup   string  `yaml:"stirrup" json:"stirrup"`
	Rsw       float64 `yaml:"rsw" json:"rsw"`
}

// ColumnShape selects how the column section is proportioned.
type ColumnShape string

const (
	ShapeRectangular ColumnShape = "rectangular"
	ShapeSquare      ColumnShape = "square"
)

// Orientation is the plan direction of the long side of a rectangular column.
type Orientation string

const (
	AlongY Orientation = "along-y"
	AlongX Orientation = "along-x"
)

type ColumnDef struct {
	Shape       ColumnShape `yaml:"shape" json:"shape"`
	Orientation Orientation `yaml:"orientation" json:"orientation"`
	FixedWidth  float64     `yaml:"fixed_width" json:"fixed_width"` // b (mm), rectangular only
}

// FoundationType selects the foundation scheme.
type FoundationType string

const (
	FoundationPile    FoundationType = "pile"
	FoundationShallow FoundationType = "shallow"
)

type FoundationDef struct {
	Type FoundationType `yaml:"type" json:"type"`

	// Pile foundation
	PileType     string  `yaml:"pile_type" json:"pile_type"`
	PileSize     float64 `yaml:"pile_size" json:"pile_size"`         // side or diameter (mm)
	PileCapacity float64 `yaml:"pile_capacity" json:"pile_capacity"` // design capacity (tons)

	// Shallow foundation
	SoilCapacity float64 `yaml:"soil_capacity" json:"soil_capacity"` // R (kg/cm²)
}
