package project

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the parameters of a ten storey office building.
func Default() Parameters {
	return Parameters{
		Name:         "Office Building A",
		BuildingType: "Office/Hotel",
		Grid: Grid{
			X: List{6, 7, 6},
			Y: List{5, 5, 5},
		},
		Floors:        10,
		TypicalHeight: 3.3,
		Materials: Materials{
			Concrete:  "B30",
			MainSteel: "CB400-V",
			Stirrup:   "CB240-T",
		},
		Column: ColumnDef{
			Shape:       ShapeRectangular,
			Orientation: AlongY,
			FixedWidth:  220,
		},
		Foundation: FoundationDef{
			Type:         FoundationPile,
			PileType:     "Square 300x300",
			PileCapacity: 45,
			SoilCapacity: 1.5,
		},
	}
}

// Load reads project parameters from a YAML file. Fields missing from
// the file keep their Default values.
func Load(path string) (Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("reading project file: %w", err)
	}
	p, err := Decode(data)
	if err != nil {
		return Parameters{}, fmt.Errorf("parsing project YAML %s: %w", path, err)
	}
	return p, nil
}

// Decode parses YAML project data over the defaults.
func Decode(data []byte) (Parameters, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Parameters{}, err
	}
	return p, nil
}
