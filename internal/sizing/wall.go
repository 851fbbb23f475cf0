package sizing

const (
	WallHeightRatio  = 20.0 // H/t
	MinWallThickness = 200.0
	WallStep         = 50.0
)

// SizeWall sizes the typical shear wall from the tallest storey (m).
func SizeWall(floorHeight float64) WallResult {
	required := floorHeight * 1000 / WallHeightRatio
	selected := max(MinWallThickness, roundUp(required, WallStep))

	return WallResult{
		FloorHeight:       floorHeight,
		RequiredThickness: required,
		Thickness:         selected,
		Ratio:             ratio(selected, required),
		Status:            check(selected, required),
	}
}
