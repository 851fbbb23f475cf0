package sizing

import (
	"fmt"

	"github.com/alexiusacademia/presize/internal/project"
)

// Table keys
const (
	TableSlab       = "slab"
	TableBeam       = "beam"
	TableColumn     = "column"
	TableWall       = "wall"
	TableFoundation = "foundation"
)

// Field is a table column. Format is the fmt verb used to print its
// cells, "%v" when empty.
type Field struct {
	Header string `json:"header"`
	Format string `json:"format,omitempty"`
}

// Table is a flat view of one member schedule for display and export.
type Table struct {
	Key     string  `json:"key"`
	Title   string  `json:"title"`
	Columns []Field `json:"columns"`
	Rows    [][]any `json:"rows"`
}

// Text formats cell (row, col) with its column format.
func (t Table) Text(row, col int) string {
	format := t.Columns[col].Format
	if format == "" {
		format = "%v"
	}
	return fmt.Sprintf(format, t.Rows[row][col])
}

// Headers returns the column headers in order.
func (t Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Tables returns the schedule as slab, beam, column, wall (when sized)
// and foundation tables, in that order.
func (s *Schedule) Tables() []Table {
	tables := []Table{s.slabTable(), s.beamTable(), s.columnTable()}
	if s.Wall != nil {
		tables = append(tables, s.wallTable())
	}
	return append(tables, s.foundationTable())
}

// Table returns the table with the given key.
func (s *Schedule) Table(key string) (Table, bool) {
	for _, t := range s.Tables() {
		if t.Key == key {
			return t, true
		}
	}
	return Table{}, false
}

func (s *Schedule) slabTable() Table {
	sl := s.Slab
	return Table{
		Key:   TableSlab,
		Title: "Slab",
		Columns: []Field{
			{Header: "Member"},
			{Header: "Load q (kN/m2)", Format: "%.2f"},
			{Header: "Short span L (m)", Format: "%.2f"},
			{Header: "Formula"},
			{Header: "Required thickness (mm)", Format: "%.2f"},
			{Header: "Selected thickness (mm)", Format: "%d"},
			{Header: "Safety ratio", Format: "%.2f"},
			{Header: "Status"},
		},
		Rows: [][]any{{
			"Typical slab", sl.Load, sl.Span, "L/35",
			sl.RequiredThickness, int(sl.Thickness), sl.Ratio, string(sl.Status),
		}},
	}
}

func (s *Schedule) beamTable() Table {
	t := Table{
		Key:   TableBeam,
		Title: "Beam",
		Columns: []Field{
			{Header: "Member"},
			{Header: "Long span L (m)", Format: "%.2f"},
			{Header: "Formula"},
			{Header: "Required height (mm)", Format: "%.2f"},
			{Header: "Selected section (mm)"},
			{Header: "Safety ratio", Format: "%.2f"},
			{Header: "Status"},
		},
	}
	for _, b := range s.Beams {
		t.Rows = append(t.Rows, []any{
			b.Member, b.Span, b.Formula, b.RequiredHeight, b.Section(), b.Ratio, string(b.Status),
		})
	}
	return t
}

func (s *Schedule) columnTable() Table {
	t := Table{
		Key:   TableColumn,
		Title: "Column",
		Columns: []Field{
			{Header: "Location"},
			{Header: "Axial load N (kN)", Format: "%.2f"},
			{Header: "Required area (cm2)", Format: "%.2f"},
			{Header: "Section (mm)"},
			{Header: "Selected area (cm2)", Format: "%d"},
			{Header: "Safety ratio", Format: "%.2f"},
			{Header: "Status"},
		},
	}
	for _, c := range s.Columns {
		t.Rows = append(t.Rows, []any{
			c.Group.String(), c.AxialLoad, c.RequiredArea / 100, c.Section(),
			int(c.Area / 100), c.Ratio, string(c.Status),
		})
	}
	return t
}

func (s *Schedule) wallTable() Table {
	w := s.Wall
	return Table{
		Key:   TableWall,
		Title: "Wall",
		Columns: []Field{
			{Header: "Member"},
			{Header: "Floor height H (m)", Format: "%.2f"},
			{Header: "Formula"},
			{Header: "Required thickness (mm)", Format: "%.2f"},
			{Header: "Selected thickness (mm)", Format: "%d"},
			{Header: "Safety ratio", Format: "%.2f"},
			{Header: "Status"},
		},
		Rows: [][]any{{
			"Typical shear wall", w.FloorHeight, "H/20",
			w.RequiredThickness, int(w.Thickness), w.Ratio, string(w.Status),
		}},
	}
}

func (s *Schedule) foundationTable() Table {
	f := s.Foundation
	t := Table{Key: TableFoundation, Title: "Foundation"}

	if f.Type == project.FoundationShallow && f.Pad != nil {
		t.Columns = []Field{
			{Header: "Member"},
			{Header: "Column load N (kN)", Format: "%.2f"},
			{Header: "Soil R (kg/cm2)", Format: "%.2f"},
			{Header: "Required area (m2)", Format: "%.2f"},
			{Header: "Selected area (m2)", Format: "%.2f"},
			{Header: "Size / Notes"},
			{Header: "Status"},
		}
		t.Rows = [][]any{{
			"Pad footing", f.DesignLoad, f.Pad.SoilCapacity, f.Pad.RequiredArea,
			f.Pad.Area, f.Detail, string(f.Status),
		}}
		return t
	}

	t.Columns = []Field{
		{Header: "Member"},
		{Header: "Column load N (kN)", Format: "%.2f"},
		{Header: "Pile capacity P (T)", Format: "%.2f"},
		{Header: "Piles required", Format: "%.2f"},
		{Header: "Piles selected", Format: "%d"},
		{Header: "Size / Notes"},
		{Header: "Status"},
	}
	var capacity, required float64
	var count int
	if f.Pile != nil {
		capacity, required, count = f.Pile.Capacity, f.Pile.Required, f.Pile.Count
	}
	t.Rows = [][]any{{
		"Pile foundation", f.DesignLoad, capacity, required, count, f.Detail, string(f.Status),
	}}
	return t
}
