package tcvn

import (
	"fmt"
	"strconv"
	"strings"
)

// PileTypes is the standard pile catalog. The size is the side of a
// square pile or the diameter of a round one, in mm.
var PileTypes = []string{
	"Square 200x200",
	"Square 250x250",
	"Square 300x300",
	"Square 350x350",
	"Square 400x400",
	"Spun D300",
	"Spun D350",
	"Spun D400",
	"Spun D500",
	"Spun D600",
	"Bored D800",
	"Bored D1000",
}

// DefaultPileSize applies to names that carry no size
const DefaultPileSize = 400

// PileSize extracts the pile size (mm) from a catalog name.
//
//	"Square 300x300" -> 300
//	"Spun D400"      -> 400
func PileSize(name string) (float64, error) {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return DefaultPileSize, nil
	}
	dim := fields[1]
	switch {
	case strings.Contains(dim, "x"):
		dim = strings.SplitN(dim, "x", 2)[0]
	case strings.HasPrefix(dim, "D"):
		dim = strings.TrimPrefix(dim, "D")
	default:
		return DefaultPileSize, nil
	}
	size, err := strconv.Atoi(dim)
	if err != nil {
		return 0, fmt.Errorf("pile type %q: bad size %q", name, dim)
	}
	return float64(size), nil
}
