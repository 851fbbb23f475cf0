package diagram

import (
	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/sizing"
)

// PlanData holds what the structural plan shows. Lengths are in m.
type PlanData struct {
	Title string

	XAxes []project.Mark
	YAxes []project.Mark

	// Column extent along X and Y
	ColumnX float64
	ColumnY float64
}

// ElevationData holds what the frame elevation shows. Lengths are in m.
type ElevationData struct {
	Title string

	XAxes  []project.Mark
	Levels []project.Mark // foundation first

	ColumnX   float64 // column extent along X
	BeamDepth float64

	// Current is the highlighted floor, 0 for the first storey
	Current int
}

// NewPlanData lays out the plan of a sized schedule. Columns are drawn
// with the ground group section turned to the chosen orientation.
func NewPlanData(s *sizing.Schedule) PlanData {
	x, y := s.Parameters.GridLines()
	cx, cy := columnFootprint(s)
	return PlanData{
		Title:   "STRUCTURAL PLAN",
		XAxes:   x,
		YAxes:   y,
		ColumnX: cx,
		ColumnY: cy,
	}
}

// NewElevationData lays out the frame elevation with floor highlighted.
// The floor index is clamped to the existing storeys.
func NewElevationData(s *sizing.Schedule, floor int) ElevationData {
	x, _ := s.Parameters.GridLines()
	cx, _ := columnFootprint(s)

	depth := 0.5
	if len(s.Beams) > 0 {
		depth = s.Beams[0].Height / 1000
	}

	return ElevationData{
		Title:     "FRAME ELEVATION",
		XAxes:     x,
		Levels:    s.Parameters.Levels(),
		ColumnX:   cx,
		BeamDepth: depth,
		Current:   s.Parameters.ClampFloor(floor),
	}
}

// columnFootprint returns the ground column extent along X and Y (m).
func columnFootprint(s *sizing.Schedule) (x, y float64) {
	if len(s.Columns) == 0 {
		return 0.2, 0.2
	}
	c := s.Columns[0]
	b, h := c.Width/1000, c.Depth/1000
	long, short := max(b, h), min(b, h)

	if s.Parameters.Column.Orientation == project.AlongX {
		return long, short
	}
	return short, long
}
