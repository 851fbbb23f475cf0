package sizing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/tcvn"
)

const (
	ColumnStep   = 50.0  // mm
	MinColumnDim = 200.0 // mm
)

// FloorGroup is a run of consecutive floors sharing one column section.
// Floors are numbered from 1 at the bottom.
type FloorGroup struct {
	Index  int `json:"index"`  // (floor-1) div FloorsPerGroup
	Lowest int `json:"lowest"` // lowest floor number
	Top    int `json:"top"`    // highest floor number
}

// Floors lists the floor numbers of the group, bottom first.
func (g FloorGroup) Floors() []int {
	floors := make([]int, 0, g.Top-g.Lowest+1)
	for f := g.Lowest; f <= g.Top; f++ {
		floors = append(floors, f)
	}
	return floors
}

// String labels the group by its floor range, "Floors 10-10" for a
// single floor.
func (g FloorGroup) String() string {
	return fmt.Sprintf("Floors %d-%d", g.Lowest, g.Top)
}

// PartitionFloors splits floors 1..n into groups of tcvn.FloorsPerGroup,
// ordered from the ground up. Only the top group can be short.
func PartitionFloors(n int) []FloorGroup {
	var groups []FloorGroup
	for lowest := 1; lowest <= n; lowest += tcvn.FloorsPerGroup {
		groups = append(groups, FloorGroup{
			Index:  (lowest - 1) / tcvn.FloorsPerGroup,
			Lowest: lowest,
			Top:    min(lowest+tcvn.FloorsPerGroup-1, n),
		})
	}
	return groups
}

// ColumnInput holds what the column schedule depends on.
type ColumnInput struct {
	Floors        int
	SlabLoad      float64 // q (kN/m²)
	TributaryArea float64 // m²
	Rb            float64 // MPa
	Shape         project.ColumnShape
	FixedWidth    float64 // mm, rectangular only
}

// SizeColumns returns one row per floor group, ground group first.
func SizeColumns(in ColumnInput) []ColumnResult {
	groups := PartitionFloors(in.Floors)
	results := make([]ColumnResult, 0, len(groups))

	for _, g := range groups {
		supported := in.Floors - g.Lowest + 1
		n := tcvn.ColumnLoadFactor * in.SlabLoad * in.TributaryArea * float64(supported)
		reqArea := n * 1000 / in.Rb

		b, h := columnSection(reqArea, in.Shape, in.FixedWidth)
		area := b * h

		results = append(results, ColumnResult{
			Group:           g,
			FloorsSupported: supported,
			AxialLoad:       n,
			RequiredArea:    reqArea,
			Width:           b,
			Depth:           h,
			Area:            area,
			Ratio:           ratio(area, reqArea),
			Status:          check(area, reqArea),
		})
	}

	return results
}

// columnSection proportions a section for the required area (mm²).
func columnSection(reqArea float64, shape project.ColumnShape, fixedWidth float64) (b, h float64) {
	if shape == project.ShapeSquare {
		b = roundUp(math.Sqrt(reqArea), ColumnStep)
		h = b
	} else {
		b = fixedWidth
		h = roundUp(reqArea/fixedWidth, ColumnStep)
	}
	return max(b, MinColumnDim), max(h, MinColumnDim)
}

// PeakColumnLoad is the axial force of the ground group, 0 without columns.
func PeakColumnLoad(columns []ColumnResult) float64 {
	if len(columns) == 0 {
		return 0
	}
	return columns[0].AxialLoad
}
