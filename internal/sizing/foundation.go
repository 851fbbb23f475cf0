package sizing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/tcvn"
)

const (
	PileSpacingRatio = 3.0 // spacing / pile size
	PileEdgeRatio    = 0.7 // edge distance / pile size

	// Pile caps with more piles than this are sized from the pile grid
	SmallCapPiles = 4
)

// FoundationLoad is the design load at the column base (kN).
func FoundationLoad(peakColumnLoad float64) float64 {
	return peakColumnLoad * tcvn.FoundationOverload
}

// SizeFoundation sizes the foundation under the most loaded column for
// the design load nf (kN).
func SizeFoundation(nf float64, def project.FoundationDef) FoundationResult {
	if def.Type == project.FoundationShallow {
		return sizePad(nf, def.SoilCapacity)
	}
	return sizePiles(nf, def.PileType, def.PileSize, def.PileCapacity)
}

func sizePiles(nf float64, pileType string, size, capacity float64) FoundationResult {
	required := nf / (capacity * tcvn.Gravity)
	count := int(math.Ceil(required * tcvn.PileCountFactor))

	d := size / 1000
	spacing := PileSpacingRatio * d
	edge := PileEdgeRatio * d

	var dim float64
	if count > SmallCapPiles {
		dim = roundTo(math.Sqrt(float64(count)*spacing*spacing), 1)
	} else {
		dim = roundTo(spacing+d+2*edge, 2)
	}

	return FoundationResult{
		Type:       project.FoundationPile,
		DesignLoad: nf,
		Pile: &PileResult{
			Capacity:  capacity,
			Size:      size,
			Required:  required,
			Count:     count,
			Spacing:   spacing,
			Edge:      edge,
			CapWidth:  dim,
			CapLength: dim,
		},
		Description: fmt.Sprintf("%d piles %s", count, pileType),
		Detail:      fmt.Sprintf("Cap %sx%sm (P=%sT)", num(dim), num(dim), num(capacity)),
		Ratio:       ratio(float64(count), required),
		Status:      check(float64(count), required),
	}
}

func sizePad(nf, soilCapacity float64) FoundationResult {
	r := soilCapacity * tcvn.SoilUnitFactor
	reqArea := nf / (r - tcvn.OverburdenCorrection)
	side := math.Ceil(math.Sqrt(reqArea)*10) / 10
	area := side * side

	return FoundationResult{
		Type:       project.FoundationShallow,
		DesignLoad: nf,
		Pad: &PadResult{
			SoilCapacity: soilCapacity,
			RequiredArea: reqArea,
			Side:         side,
			Area:         area,
		},
		Description: fmt.Sprintf("Pad footing B=%sm", num(side)),
		Detail:      fmt.Sprintf("R=%skg/cm2", num(soilCapacity)),
		Ratio:       ratio(area, reqArea),
		Status:      check(area, reqArea),
	}
}

// num prints a float in its shortest exact form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
