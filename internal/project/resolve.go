package project

import (
	"fmt"
	"slices"

	"github.com/alexiusacademia/presize/internal/tcvn"
)

// CustomGrade labels a strength entered directly instead of by grade.
const CustomGrade = "Custom"

// DefaultFloorHeight applies when storeys are generated without a height.
const DefaultFloorHeight = 3.3

// Resolve returns a copy of p with every derivable field filled in:
// floor heights from the typical floor, strengths from grade names, the
// slab load from the building type and the pile size from the pile type.
func (p Parameters) Resolve() (Parameters, error) {
	r := p
	r.Grid.X = slices.Clone(p.Grid.X)
	r.Grid.Y = slices.Clone(p.Grid.Y)
	r.FloorHeights = slices.Clone(p.FloorHeights)

	if r.Floors > MaxFloors && len(r.FloorHeights) == 0 {
		v := &ValidationError{}
		v.add("floors", "at most %d floors, got %d", MaxFloors, r.Floors)
		return Parameters{}, v
	}
	if len(r.FloorHeights) == 0 && r.Floors > 0 {
		h := r.TypicalHeight
		if h == 0 {
			h = DefaultFloorHeight
		}
		r.FloorHeights = make(List, r.Floors)
		for i := range r.FloorHeights {
			r.FloorHeights[i] = h
		}
	}
	r.Floors = len(r.FloorHeights)

	var err error
	m := &r.Materials
	if m.Concrete, m.Rb, err = resolveGrade(m.Concrete, m.Rb, tcvn.ConcreteStrength); err != nil {
		return Parameters{}, err
	}
	if m.MainSteel, m.Rs, err = resolveGrade(m.MainSteel, m.Rs, tcvn.SteelStrength); err != nil {
		return Parameters{}, err
	}
	if m.Stirrup == "" && m.Rsw == 0 {
		m.Stirrup = tcvn.DefaultStirrup
	}
	if m.Stirrup, m.Rsw, err = resolveGrade(m.Stirrup, m.Rsw, tcvn.SteelStrength); err != nil {
		return Parameters{}, err
	}

	if r.SlabLoad == 0 {
		r.SlabLoad, _ = tcvn.OccupancyLoad(r.BuildingType)
	}

	if r.Column.Shape == "" {
		r.Column.Shape = ShapeRectangular
	}
	if r.Column.Orientation == "" {
		r.Column.Orientation = AlongY
	}

	if r.Foundation.Type == "" {
		r.Foundation.Type = FoundationPile
	}
	if f := &r.Foundation; f.Type == FoundationPile {
		if f.PileSize == 0 {
			if f.PileSize, err = tcvn.PileSize(f.PileType); err != nil {
				return Parameters{}, err
			}
		}
		if f.PileType == "" {
			f.PileType = fmt.Sprintf("D%.0f (%s)", f.PileSize, CustomGrade)
		}
	}

	return r, nil
}

// resolveGrade looks up the strength of a named grade. An explicit
// strength wins; when it differs from the table the grade becomes Custom.
func resolveGrade(name string, strength float64, lookup func(string) (float64, error)) (string, float64, error) {
	if strength > 0 {
		if table, err := lookup(name); err != nil || table != strength {
			return CustomGrade, strength, nil
		}
		return name, strength, nil
	}
	if name == "" || name == CustomGrade {
		return name, strength, nil
	}
	s, err := lookup(name)
	if err != nil {
		return "", 0, err
	}
	return name, s, nil
}
