package project

import (
	"fmt"
	"math"
)

// LongSpan is the larger of the two maximum spans (m); it drives beam depth.
func (p Parameters) LongSpan() float64 {
	return math.Max(maxOf(p.Grid.X), maxOf(p.Grid.Y))
}

// ShortSpan is the short side of the largest panel (m); it drives slab
// thickness.
func (p Parameters) ShortSpan() float64 {
	return math.Min(maxOf(p.Grid.X), maxOf(p.Grid.Y))
}

// TributaryArea is the plan area carried by one column (m²).
func (p Parameters) TributaryArea() float64 {
	return maxOf(p.Grid.X) * maxOf(p.Grid.Y)
}

// MaxFloorHeight is the tallest storey (m), DefaultFloorHeight when there
// are no floors.
func (p Parameters) MaxFloorHeight() float64 {
	if len(p.FloorHeights) == 0 {
		return DefaultFloorHeight
	}
	return maxOf(p.FloorHeights)
}

// TotalHeight is the sum of all storey heights (m).
func (p Parameters) TotalHeight() float64 {
	var sum float64
	for _, h := range p.FloorHeights {
		sum += h
	}
	return sum
}

func maxOf(values []float64) float64 {
	var m float64
	for i, v := range values {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Mark is a labelled position along an axis (m).
type Mark struct {
	Label  string  `json:"label"`
	Offset float64 `json:"offset"`
}

// Levels returns the foundation level followed by the top of every storey.
// The last storey is labelled Roof.
func (p Parameters) Levels() []Mark {
	levels := []Mark{{Label: "Foundation"}}
	var z float64
	for i, h := range p.FloorHeights {
		z += h
		label := fmt.Sprintf("Floor %d", i+1)
		if i == len(p.FloorHeights)-1 {
			label = "Roof"
		}
		levels = append(levels, Mark{Label: label, Offset: z})
	}
	return levels
}

// GridLines returns the axis positions in plan. X axes are numbered
// 1, 2, 3...; Y axes are lettered A, B, C...
func (p Parameters) GridLines() (x, y []Mark) {
	x = axes(p.Grid.X, func(i int) string { return fmt.Sprint(i + 1) })
	y = axes(p.Grid.Y, axisLetter)
	return x, y
}

func axes(spans []float64, label func(int) string) []Mark {
	marks := []Mark{{Label: label(0)}}
	var pos float64
	for i, s := range spans {
		pos += s
		marks = append(marks, Mark{Label: label(i + 1), Offset: pos})
	}
	return marks
}

// axisLetter maps 0 -> A, 25 -> Z, 26 -> AA.
func axisLetter(i int) string {
	s := ""
	for i++; i > 0; i = (i - 1) / 26 {
		s = string(rune('A'+(i-1)%26)) + s
	}
	return s
}

// ClampFloor limits a displayed floor index to the existing storeys.
func (p Parameters) ClampFloor(idx int) int {
	if idx >= len(p.FloorHeights) {
		idx = len(p.FloorHeights) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
