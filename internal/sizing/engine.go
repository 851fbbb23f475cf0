package sizing

import (
	"fmt"

	"github.com/alexiusacademia/presize/internal/project"
)

// Run resolves and validates p, then sizes every member.
func Run(p project.Parameters) (*Schedule, error) {
	resolved, err := p.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving parameters: %w", err)
	}
	if err := resolved.Validate(); err != nil {
		return nil, err
	}
	return Compute(resolved), nil
}

// Compute sizes every member from resolved, valid parameters.
//
// Order matters only for the foundation, which is sized for the ground
// column group.
func Compute(p project.Parameters) *Schedule {
	s := &Schedule{Parameters: p}

	s.Slab = SizeSlab(p.ShortSpan(), p.SlabLoad)
	s.Beams = SizeBeams(p.LongSpan())
	s.Columns = SizeColumns(ColumnInput{
		Floors:        len(p.FloorHeights),
		SlabLoad:      p.SlabLoad,
		TributaryArea: p.TributaryArea(),
		Rb:            p.Materials.Rb,
		Shape:         p.Column.Shape,
		FixedWidth:    p.Column.FixedWidth,
	})
	if p.ShearWalls {
		wall := SizeWall(p.MaxFloorHeight())
		s.Wall = &wall
	}
	s.Foundation = SizeFoundation(FoundationLoad(PeakColumnLoad(s.Columns)), p.Foundation)

	return s
}
