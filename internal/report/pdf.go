package report

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alexiusacademia/presize/internal/sizing"
	"github.com/alexiusacademia/presize/internal/tcvn"
)

// ReportInput is everything the calculation report prints.
type ReportInput struct {
	Project      string
	BuildingType string
	Date         time.Time
	Schedule     *sizing.Schedule
}

// Conclusion closes every report.
const Conclusion = "The preliminary structural scheme is adequate for the applied loads. " +
	"A detailed check is required at the technical design stage."

const (
	pageWidth = 190.0 // A4 less 10 mm margins
	lineH     = 6.0
	cellH     = 6.0
)

// WritePDF writes the calculation report to w.
func WritePDF(w io.Writer, in ReportInput) error {
	if in.Schedule == nil {
		return fmt.Errorf("report needs a schedule")
	}
	s := in.Schedule
	m := s.Parameters.Materials
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetTitle(fmt.Sprintf("%s calculation report", in.Project), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(pageWidth, 10, "PRELIMINARY STRUCTURAL CALCULATION REPORT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(pageWidth, 8, tr("PROJECT: "+strings.ToUpper(in.Project)), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pageWidth, lineH,
		tr(fmt.Sprintf("Building type: %s | Date: %s", in.BuildingType, date.Format("02/01/2006"))),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(pageWidth, lineH, strings.Repeat("-", 70), "", 1, "L", false, 0, "")

	heading(pdf, "I. APPLICABLE STANDARDS")
	for _, std := range tcvn.Standards {
		pdf.MultiCell(pageWidth, lineH, tr("- "+std), "", "L", false)
	}

	heading(pdf, "II. MATERIAL PARAMETERS")
	pdf.MultiCell(pageWidth, lineH, tr(fmt.Sprintf("1. Concrete: %s (Rb = %g MPa)", m.Concrete, m.Rb)), "", "L", false)
	pdf.MultiCell(pageWidth, lineH, tr(fmt.Sprintf("2. Main steel: %s (Rs = %g MPa)", m.MainSteel, m.Rs)), "", "L", false)
	pdf.MultiCell(pageWidth, lineH, tr(fmt.Sprintf("3. Equivalent floor load: q = %g kN/m2", s.Parameters.SlabLoad)), "", "L", false)

	heading(pdf, "III. RESULTS AND SELECTION")
	section := func(title, key string) {
		subheading(pdf, title)
		t, ok := s.Table(key)
		if !ok || len(t.Rows) == 0 {
			pdf.MultiCell(pageWidth, lineH, "Not applicable", "", "L", false)
			return
		}
		gridTable(pdf, tr, t)
	}
	section("1. Slab", sizing.TableSlab)
	section("2. Beam", sizing.TableBeam)
	section("3. Column", sizing.TableColumn)
	section("4. Wall", sizing.TableWall)

	subheading(pdf, "5. Foundation")
	pdf.MultiCell(pageWidth, lineH, tr("Foundation scheme: "+s.Foundation.Description), "", "L", false)
	section("Foundation detail", sizing.TableFoundation)

	heading(pdf, "IV. CONCLUSION")
	pdf.MultiCell(pageWidth, lineH, Conclusion, "", "L", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	return pdf.Output(w)
}

func heading(pdf *fpdf.Fpdf, text string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(pageWidth, 8, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

func subheading(pdf *fpdf.Fpdf, text string) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(pageWidth, 7, text, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
}

// gridTable prints t with borders, columns sized in proportion to their
// longest text and stretched to the page width.
func gridTable(pdf *fpdf.Fpdf, tr func(string) string, t sizing.Table) {
	widths := make([]float64, len(t.Columns))
	var total float64
	for c, h := range t.Headers() {
		n := utf8.RuneCountInString(h)
		for r := range t.Rows {
			n = max(n, utf8.RuneCountInString(t.Text(r, c)))
		}
		widths[c] = float64(n)
		total += widths[c]
	}
	for c := range widths {
		widths[c] = widths[c] / total * pageWidth
	}

	pdf.SetFont("Arial", "B", 7)
	pdf.SetFillColor(240, 240, 240)
	for c, h := range t.Headers() {
		pdf.CellFormat(widths[c], cellH, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(cellH)

	pdf.SetFont("Arial", "", 7)
	for r := range t.Rows {
		for c := range t.Columns {
			pdf.CellFormat(widths[c], cellH, tr(t.Text(r, c)), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(cellH)
	}
	pdf.SetFont("Arial", "", 10)
	pdf.Ln(2)
}
