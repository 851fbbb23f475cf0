package tcvn

import "testing"

func TestConcreteStrength(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{"B15", 8.5},
		{"B25", 14.5},
		{"B30", 17.0},
		{"B50", 27.5},
	}
	for _, tt := range tests {
		got, err := ConcreteStrength(tt.grade)
		if err != nil {
			t.Fatalf("ConcreteStrength(%q) error: %v", tt.grade, err)
		}
		if got != tt.want {
			t.Errorf("ConcreteStrength(%q) = %v, want %v", tt.grade, got, tt.want)
		}
	}

	if _, err := ConcreteStrength("B99"); err == nil {
		t.Error("expected error for unknown concrete grade")
	}
}

func TestSteelStrength(t *testing.T) {
	got, err := SteelStrength("CB400-V")
	if err != nil || got != 350 {
		t.Errorf("SteelStrength(CB400-V) = %v, %v; want 350", got, err)
	}
	got, err = SteelStrength("CB240-T")
	if err != nil || got != 210 {
		t.Errorf("SteelStrength(CB240-T) = %v, %v; want 210", got, err)
	}
	if _, err := SteelStrength("A36"); err == nil {
		t.Error("expected error for unknown steel grade")
	}
}

func TestGradeNames(t *testing.T) {
	names := GradeNames(ConcreteGrades)
	if len(names) != len(ConcreteGrades) {
		t.Fatalf("len = %d, want %d", len(names), len(ConcreteGrades))
	}
	if names[0] != "B15" || names[len(names)-1] != "B50" {
		t.Errorf("names = %v, want B15..B50", names)
	}
}

func TestOccupancyLoad(t *testing.T) {
	q, ok := OccupancyLoad("Office/Hotel")
	if !ok || q != 14.0 {
		t.Errorf("OccupancyLoad(Office/Hotel) = %v, %v; want 14, true", q, ok)
	}
	q, ok = OccupancyLoad("Warehouse")
	if ok || q != CustomOccupancyLoad {
		t.Errorf("OccupancyLoad(Warehouse) = %v, %v; want %v, false", q, ok, CustomOccupancyLoad)
	}
}

func TestPileSize(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"Square 200x200", 200},
		{"Square 300x300", 300},
		{"Spun D400", 400},
		{"Bored D1000", 1000},
		{"Custom", DefaultPileSize},
		{"Timber pole", DefaultPileSize},
	}
	for _, tt := range tests {
		got, err := PileSize(tt.name)
		if err != nil {
			t.Fatalf("PileSize(%q) error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("PileSize(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if _, err := PileSize("Spun Dxx"); err == nil {
		t.Error("expected error for malformed diameter")
	}
}

func TestPileCatalogSizes(t *testing.T) {
	for _, name := range PileTypes {
		size, err := PileSize(name)
		if err != nil {
			t.Errorf("PileSize(%q) error: %v", name, err)
			continue
		}
		if size < 200 || size > 1000 {
			t.Errorf("PileSize(%q) = %v, outside catalog range", name, size)
		}
	}
}
