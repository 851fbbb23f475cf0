package tcvn

import "fmt"

// TCVN 5574:2018 Material Strengths

// Grade is a named material class with its design strength in MPa.
type Grade struct {
	Name     string
	Strength float64
}

// ConcreteGrades lists design compressive strengths Rb (Table 6.8)
var ConcreteGrades = []Grade{
	{"B15", 8.5},
	{"B20", 11.5},
	{"B25", 14.5},
	{"B30", 17.0},
	{"B35", 19.5},
	{"B40", 22.0},
	{"B45", 25.0},
	{"B50", 27.5},
}

// SteelGrades lists design tensile strengths Rs (TCVN 1651)
var SteelGrades = []Grade{
	{"CB240-T", 210},
	{"CB300-T", 260},
	{"CB300-V", 260},
	{"CB400-V", 350},
	{"CB500-V", 435},
	{"CB600-V", 520},
}

const (
	// Fallbacks used when a grade name is not in the tables
	DefaultRb = 14.5 // B25
	DefaultRs = 350  // CB400-V

	DefaultStirrup = "CB240-T"
)

// ConcreteStrength returns Rb (MPa) for a concrete grade such as "B30".
func ConcreteStrength(grade string) (float64, error) {
	return lookup(ConcreteGrades, grade, "concrete")
}

// SteelStrength returns Rs (MPa) for a rebar grade such as "CB400-V".
func SteelStrength(grade string) (float64, error) {
	return lookup(SteelGrades, grade, "steel")
}

func lookup(grades []Grade, name, kind string) (float64, error) {
	for _, g := range grades {
		if g.Name == name {
			return g.Strength, nil
		}
	}
	return 0, fmt.Errorf("unknown %s grade %q", kind, name)
}

// GradeNames returns the grade names in table order
func GradeNames(grades []Grade) []string {
	names := make([]string, len(grades))
	for i, g := range grades {
		names[i] = g.Name
	}
	return names
}
