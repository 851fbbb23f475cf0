package report

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/presize/internal/project"
	"github.com/alexiusacademia/presize/internal/sizing"
)

func schedule(t *testing.T, walls bool) *sizing.Schedule {
	t.Helper()
	p := project.Default()
	p.ShearWalls = walls
	s, err := sizing.Run(p)
	if err != nil {
		t.Fatalf("sizing failed: %v", err)
	}
	return s
}

func TestWriteWorkbook(t *testing.T) {
	s := schedule(t, true)
	tables := s.Tables()

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, tables); err != nil {
		t.Fatalf("WriteWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopening workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Slab", "Beam", "Column", "Wall", "Foundation"}
	if got := f.GetSheetList(); !reflect.DeepEqual(got, want) {
		t.Errorf("sheets = %v, want %v", got, want)
	}

	rows, err := f.GetRows("Column")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1+len(s.Columns) {
		t.Fatalf("column sheet has %d rows, want %d", len(rows), 1+len(s.Columns))
	}
	if rows[0][0] != "Location" || rows[1][0] != "Floors 1-3" {
		t.Errorf("column sheet starts %q / %q", rows[0][0], rows[1][0])
	}

	// "Selected thickness (mm)" is the longest text in its column
	width, err := f.GetColWidth("Slab", "F")
	if err != nil {
		t.Fatal(err)
	}
	if want := float64(len("Selected thickness (mm)") + 2); width != want {
		t.Errorf("slab column F width = %v, want %v", width, want)
	}

	style, err := f.GetCellStyle("Beam", "A1")
	if err != nil {
		t.Fatal(err)
	}
	if style == 0 {
		t.Error("header row has no style")
	}
}

func TestWriteWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, nil); err == nil {
		t.Error("expected error for no tables")
	}
}

func TestWritePDF(t *testing.T) {
	for _, walls := range []bool{false, true} {
		var buf bytes.Buffer
		err := WritePDF(&buf, ReportInput{
			Project:      "Office Building A",
			BuildingType: "Office/Hotel",
			Date:         time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			Schedule:     schedule(t, walls),
		})
		if err != nil {
			t.Fatalf("walls=%v: WritePDF: %v", walls, err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			t.Errorf("walls=%v: output is not a PDF", walls)
		}
	}

	if err := WritePDF(&bytes.Buffer{}, ReportInput{}); err == nil {
		t.Error("expected error without a schedule")
	}
}
