package sizing

const (
	// SlabSpanRatio is L/h for a two-way floor slab
	SlabSpanRatio = 35.0

	MinSlabThickness  = 100.0 // mm
	SlabThicknessStep = 10.0  // mm
)

// SizeSlab sizes the typical slab from the short span of the largest
// panel (m) and the floor load (kN/m²).
func SizeSlab(shortSpan, load float64) SlabResult {
	required := shortSpan * 1000 / SlabSpanRatio
	selected := max(MinSlabThickness, roundUp(required, SlabThicknessStep))

	return SlabResult{
		Load:              load,
		Span:              shortSpan,
		RequiredThickness: required,
		Thickness:         selected,
		Ratio:             ratio(selected, required),
		Status:            check(selected, required),
	}
}
