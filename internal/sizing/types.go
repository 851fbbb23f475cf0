package sizing

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/presize/internal/project"
)

// Status is the outcome of a member check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// check passes when the selected value covers the required one.
func check(selected, required float64) Status {
	if selected >= required {
		return StatusPass
	}
	return StatusFail
}

// ratio is selected/required, 0 when nothing is required.
func ratio(selected, required float64) float64 {
	if required == 0 {
		return 0
	}
	return selected / required
}

// roundUp returns the smallest multiple of step not less than x.
func roundUp(x, step float64) float64 {
	return math.Ceil(x/step) * step
}

// roundTo rounds x to the given number of decimals.
func roundTo(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

// SlabResult is the typical floor slab.
type SlabResult struct {
	Load              float64 `json:"load"`               // q (kN/m²)
	Span              float64 `json:"span"`               // short span (m)
	RequiredThickness float64 `json:"required_thickness"` // mm
	Thickness         float64 `json:"thickness"`          // mm
	Ratio             float64 `json:"ratio"`
	Status            Status  `json:"status"`
}

// BeamResult is one beam type.
type BeamResult struct {
	Member         string  `json:"member"`
	Formula        string  `json:"formula"`
	Span           float64 `json:"span"`            // long span (m)
	RequiredHeight float64 `json:"required_height"` // mm
	Height         float64 `json:"height"`          // mm
	RequiredWidth  float64 `json:"required_width"`  // mm
	Width          float64 `json:"width"`           // mm
	Ratio          float64 `json:"ratio"`
	Status         Status  `json:"status"`
}

// Section formats the beam as width x height in mm.
func (b BeamResult) Section() string {
	return fmt.Sprintf("%.0fx%.0f", b.Width, b.Height)
}

// ColumnResult is the section shared by one floor group.
type ColumnResult struct {
	Group           FloorGroup `json:"group"`
	FloorsSupported int        `json:"floors_supported"`
	AxialLoad       float64    `json:"axial_load"`    // N (kN)
	RequiredArea    float64    `json:"required_area"` // mm²
	Width           float64    `json:"width"`         // b (mm)
	Depth           float64    `json:"depth"`         // h (mm)
	Area            float64    `json:"area"`          // b·h (mm²)
	Ratio           float64    `json:"ratio"`
	Status          Status     `json:"status"`
}

// Section formats the column as b x h in mm.
func (c ColumnResult) Section() string {
	return fmt.Sprintf("%.0fx%.0f", c.Width, c.Depth)
}

// WallResult is the typical shear wall.
type WallResult struct {
	FloorHeight       float64 `json:"floor_height"`       // tallest storey (m)
	RequiredThickness float64 `json:"required_thickness"` // mm
	Thickness         float64 `json:"thickness"`          // mm
	Ratio             float64 `json:"ratio"`
	Status            Status  `json:"status"`
}

// PileResult is a pile group under the most loaded column.
type PileResult struct {
	Capacity  float64 `json:"capacity"` // P (tons)
	Size      float64 `json:"size"`     // side or diameter (mm)
	Required  float64 `json:"required"` // piles
	Count     int     `json:"count"`
	Spacing   float64 `json:"spacing"`    // m
	Edge      float64 `json:"edge"`       // m
	CapWidth  float64 `json:"cap_width"`  // m
	CapLength float64 `json:"cap_length"` // m
}

// PadResult is a square shallow footing.
type PadResult struct {
	SoilCapacity float64 `json:"soil_capacity"` // R (kg/cm²)
	RequiredArea float64 `json:"required_area"` // m²
	Side         float64 `json:"side"`          // m
	Area         float64 `json:"area"`          // m²
}

// FoundationResult holds either Pile or Pad depending on Type.
type FoundationResult struct {
	Type        project.FoundationType `json:"type"`
	DesignLoad  float64                `json:"design_load"` // N_f (kN)
	Pile        *PileResult            `json:"pile,omitempty"`
	Pad         *PadResult             `json:"pad,omitempty"`
	Description string                 `json:"description"`
	Detail      string                 `json:"detail"`
	Ratio       float64                `json:"ratio"`
	Status      Status                 `json:"status"`
}

// Schedule is the complete result of one sizing run.
type Schedule struct {
	Parameters project.Parameters `json:"parameters"`
	Slab       SlabResult         `json:"slab"`
	Beams      []BeamResult       `json:"beams"`
	Columns    []ColumnResult     `json:"columns"`
	Wall       *WallResult        `json:"wall,omitempty"`
	Foundation FoundationResult   `json:"foundation"`
}

// Adequate reports whether every member passes its check.
func (s *Schedule) Adequate() bool {
	if s.Slab.Status != StatusPass || s.Foundation.Status != StatusPass {
		return false
	}
	if s.Wall != nil && s.Wall.Status != StatusPass {
		return false
	}
	for _, b := range s.Beams {
		if b.Status != StatusPass {
			return false
		}
	}
	for _, c := range s.Columns {
		if c.Status != StatusPass {
			return false
		}
	}
	return true
}
