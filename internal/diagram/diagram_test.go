package diagram

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/sizing"
)

func schedule(t *testing.T, p project.Parameters) *sizing.Schedule {
	t.Helper()
	s, err := sizing.Run(p)
	if err != nil {
		t.Fatalf("sizing failed: %v", err)
	}
	return s
}

func TestRenderTable(t *testing.T) {
	s := schedule(t, project.Default())
	tb, _ := s.Table(sizing.TableColumn)

	out := RenderTable(tb)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "  COLUMN" {
		t.Errorf("title line = %q", lines[0])
	}

	// title, top rule, header, separator, rows, bottom rule
	if want := 4 + len(tb.Rows) + 1; len(lines) != want {
		t.Fatalf("got %d lines, want %d", len(lines), want)
	}
	width := utf8.RuneCountInString(lines[1])
	for i, l := range lines[1:] {
		if n := utf8.RuneCountInString(l); n != width {
			t.Errorf("line %d is %d wide, want %d: %q", i+1, n, width, l)
		}
	}
	if !strings.Contains(out, "Floors 1-3") || !strings.Contains(out, "Axial load N (kN)") {
		t.Error("table is missing its header or first location")
	}
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("SUMMARY", []string{"Slab: 150 mm", "Columns: 4 groups"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	width := utf8.RuneCountInString(lines[0])
	for i, l := range lines {
		if n := utf8.RuneCountInString(l); n != width {
			t.Errorf("line %d is %d wide, want %d", i, n, width)
		}
	}
}

func TestColumnFootprint(t *testing.T) {
	p := project.Default()
	s := schedule(t, p)
	d := NewPlanData(s)
	if d.ColumnX != 0.22 || d.ColumnY != 1.55 {
		t.Errorf("along-y footprint = %vx%v, want 0.22x1.55", d.ColumnX, d.ColumnY)
	}

	p.Column.Orientation = project.AlongX
	d = NewPlanData(schedule(t, p))
	if d.ColumnX != 1.55 || d.ColumnY != 0.22 {
		t.Errorf("along-x footprint = %vx%v, want 1.55x0.22", d.ColumnX, d.ColumnY)
	}
}

func TestDrawPlan(t *testing.T) {
	d := NewPlanData(schedule(t, project.Default()))
	out := DrawPlan(d)

	// 4x4 intersections plus the legend glyph
	if n := strings.Count(out, "■"); n != 17 {
		t.Errorf("found %d column glyphs, want 17", n)
	}
	for _, label := range []string{"A", "D", "1", "4"} {
		if !strings.Contains(out, label) {
			t.Errorf("axis %s missing from plan", label)
		}
	}
	if DrawPlan(PlanData{}) != "" {
		t.Error("empty plan should draw nothing")
	}
}

func TestNewElevationData(t *testing.T) {
	s := schedule(t, project.Default())

	d := NewElevationData(s, 99)
	if d.Current != 9 {
		t.Errorf("current = %d, want clamped to 9", d.Current)
	}
	if len(d.Levels) != 11 || d.Levels[10].Label != "Roof" {
		t.Errorf("levels = %v", d.Levels)
	}
	if d.BeamDepth != 0.6 {
		t.Errorf("beam depth = %v, want 0.6", d.BeamDepth)
	}
	if d = NewElevationData(s, -3); d.Current != 0 {
		t.Errorf("current = %d, want 0", d.Current)
	}
}

func TestExport(t *testing.T) {
	s := schedule(t, project.Default())
	dir := t.TempDir()

	plan := filepath.Join(dir, "out", "plan.png")
	if err := ExportPlan(NewPlanData(s), plan); err != nil {
		t.Fatalf("ExportPlan: %v", err)
	}
	elev := filepath.Join(dir, "elevation")
	if err := ExportElevation(NewElevationData(s, 2), elev); err != nil {
		t.Fatalf("ExportElevation: %v", err)
	}

	for _, f := range []string{plan, elev + ".png"} {
		info, err := os.Stat(f)
		if err != nil {
			t.Fatalf("missing %s: %v", f, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", f)
		}
	}
}

func TestWriteImage(t *testing.T) {
	p, err := PlanPlot(NewPlanData(schedule(t, project.Default())))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteImage(&buf, p, "png"); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}

	if _, err := ElevationPlot(ElevationData{}); err == nil {
		t.Error("expected error for empty elevation")
	}
}

func TestDrawLoadChart(t *testing.T) {
	s := schedule(t, project.Default())
	out := DrawLoadChart(s.Columns)
	if !strings.Contains(out, "Floors 1-3 to Floors 10-10") {
		t.Errorf("chart caption missing:\n%s", out)
	}
	if DrawLoadChart(nil) != "" {
		t.Error("chart without columns should be empty")
	}
	if DrawLoadChart(s.Columns[:1]) == "" {
		t.Error("single group should still draw")
	}
}
