package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/sizing"
)

func parse(t *testing.T, args ...string) project.Parameters {
	t.Helper()
	c := &cobra.Command{Use: "test"}
	addProjectFlags(c)
	if err := c.ParseFlags(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	p, err := loadProject(c)
	if err != nil {
		t.Fatalf("loading %v: %v", args, err)
	}
	return p
}

func TestLoadProjectDefaults(t *testing.T) {
	if got := parse(t); !reflect.DeepEqual(got, project.Default()) {
		t.Errorf("no flags = %+v, want Default()", got)
	}
}

func TestLoadProjectFlags(t *testing.T) {
	p := parse(t, "-x", "6x2", "-y", "7, 7", "-n", "4", "--column-shape", "square", "--pile-size", "350")

	if !reflect.DeepEqual(p.Grid.X, project.List{6, 6}) || !reflect.DeepEqual(p.Grid.Y, project.List{7, 7}) {
		t.Errorf("grid = %v / %v", p.Grid.X, p.Grid.Y)
	}
	if p.Floors != 4 || p.Column.Shape != project.ShapeSquare {
		t.Errorf("floors = %d, shape = %s", p.Floors, p.Column.Shape)
	}
	if p.Foundation.PileType != "" || p.Foundation.PileSize != 350 {
		t.Errorf("pile = %q %v, want custom 350", p.Foundation.PileType, p.Foundation.PileSize)
	}
}

func TestLoadProjectFileThenFlags(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tower.yaml")
	yaml := "name: Tower\nfloor_heights: \"4.5, 3.3x5\"\nmaterials:\n  concrete: B25\n"
	if err := os.WriteFile(file, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	p := parse(t, "-f", file, "--concrete", "B35")
	if p.Name != "Tower" || len(p.FloorHeights) != 6 {
		t.Errorf("file values lost: %q %v", p.Name, p.FloorHeights)
	}
	if p.Materials.Concrete != "B35" {
		t.Errorf("concrete = %s, want the flag value B35", p.Materials.Concrete)
	}

	p = parse(t, "-f", file, "-n", "3")
	if p.FloorHeights != nil || p.Floors != 3 {
		t.Errorf("--floors should regenerate heights, got %v", p.FloorHeights)
	}
}

func TestLoadProjectBadList(t *testing.T) {
	c := &cobra.Command{Use: "test"}
	addProjectFlags(c)
	if err := c.ParseFlags([]string{"-x", "6, seven"}); err != nil {
		t.Fatal(err)
	}
	if _, err := loadProject(c); err == nil {
		t.Error("expected error for a malformed span list")
	}
}

func TestWriteExport(t *testing.T) {
	s, err := sizing.Run(project.Default())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	for _, name := range []string{"out/calc.xlsx", "calc.PDF"} {
		file := filepath.Join(dir, name)
		if err := writeExport(s, file); err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info, err := os.Stat(file); err != nil || info.Size() == 0 {
			t.Errorf("%s not written", name)
		}
	}

	if err := writeExport(s, filepath.Join(dir, "calc.docx")); err == nil {
		t.Error("expected error for .docx")
	}
}

func TestSummaryLines(t *testing.T) {
	s, err := sizing.Run(project.Default())
	if err != nil {
		t.Fatal(err)
	}
	lines := summaryLines(s)
	if lines[0] != "Slab:        150 mm" {
		t.Errorf("first line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != "Status:      ADEQUATE" {
		t.Errorf("status line = %q", last)
	}
}
