package project

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/presize/internal/tcvn"
)

const (
	MaxFloors     = 100
	MaxSpans      = 50 // per grid direction
	MinFixedWidth = 150.0  // mm
	MaxFixedWidth = 1000.0 // mm
)

// Problem is a single invalid field.
type Problem struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every problem found in a parameter set.
type ValidationError struct {
	Problems []Problem `json:"problems"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.Field + ": " + p.Message
	}
	return "invalid parameters: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Problems = append(e.Problems, Problem{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Validate checks resolved parameters. It returns nil or a
// *ValidationError listing every problem.
func (p Parameters) Validate() error {
	v := &ValidationError{}

	checkLengths(v, "grid.x", p.Grid.X)
	checkLengths(v, "grid.y", p.Grid.Y)
	if len(p.Grid.X) > MaxSpans {
		v.add("grid.x", "at most %d spans, got %d", MaxSpans, len(p.Grid.X))
	}
	if len(p.Grid.Y) > MaxSpans {
		v.add("grid.y", "at most %d spans, got %d", MaxSpans, len(p.Grid.Y))
	}
	checkLengths(v, "floor_heights", p.FloorHeights)
	if len(p.FloorHeights) > MaxFloors {
		v.add("floor_heights", "at most %d floors, got %d", MaxFloors, len(p.FloorHeights))
	}

	if !positive(p.Materials.Rb) {
		v.add("materials.rb", "concrete strength must be positive, got %g", p.Materials.Rb)
	}
	if !positive(p.Materials.Rs) {
		v.add("materials.rs", "main bar strength must be positive, got %g", p.Materials.Rs)
	}
	if !positive(p.Materials.Rsw) {
		v.add("materials.rsw", "stirrup strength must be positive, got %g", p.Materials.Rsw)
	}
	if !positive(p.SlabLoad) {
		v.add("slab_load", "must be positive, got %g", p.SlabLoad)
	}

	switch p.Column.Shape {
	case ShapeSquare:
	case ShapeRectangular:
		if w := p.Column.FixedWidth; !(w >= MinFixedWidth && w <= MaxFixedWidth) {
			v.add("column.fixed_width", "must be between %g and %g mm, got %g", MinFixedWidth, MaxFixedWidth, p.Column.FixedWidth)
		}
	default:
		v.add("column.shape", "unknown shape %q", p.Column.Shape)
	}
	if p.Column.Orientation != AlongX && p.Column.Orientation != AlongY {
		v.add("column.orientation", "unknown orientation %q", p.Column.Orientation)
	}

	switch f := p.Foundation; f.Type {
	case FoundationPile:
		if !positive(f.PileCapacity) {
			v.add("foundation.pile_capacity", "must be positive, got %g", f.PileCapacity)
		}
		if !positive(f.PileSize) {
			v.add("foundation.pile_size", "must be positive, got %g", f.PileSize)
		}
	case FoundationShallow:
		if !positive(f.SoilCapacity*tcvn.SoilUnitFactor - tcvn.OverburdenCorrection) {
			v.add("foundation.soil_capacity", "must exceed %g kg/cm², got %g",
				tcvn.OverburdenCorrection/tcvn.SoilUnitFactor, f.SoilCapacity)
		}
	default:
		v.add("foundation.type", "unknown foundation type %q", f.Type)
	}

	if len(v.Problems) > 0 {
		return v
	}
	return nil
}

func checkLengths(v *ValidationError, field string, values []float64) {
	if len(values) == 0 {
		v.add(field, "at least one value is required")
		return
	}
	for i, x := range values {
		if !positive(x) {
			v.add(fmt.Sprintf("%s[%d]", field, i), "must be positive and finite, got %g", x)
		}
	}
}

// positive reports whether x is a finite number above zero. NaN fails.
func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
