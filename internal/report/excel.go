package report

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/presize/internal/sizing"
)

const defaultSheet = "Sheet1"

// WriteWorkbook writes one sheet per table to w as an xlsx workbook.
// The header row is bold and every column is as wide as its longest
// text plus 2.
func WriteWorkbook(w io.Writer, tables []sizing.Table) error {
	if len(tables) == 0 {
		return fmt.Errorf("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	decimal, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("creating number style: %w", err)
	}

	for i, t := range tables {
		index, err := f.NewSheet(t.Title)
		if err != nil {
			return fmt.Errorf("creating sheet %s: %w", t.Title, err)
		}
		if i == 0 {
			f.SetActiveSheet(index)
		}
		if err := writeSheet(f, t, header, decimal); err != nil {
			return fmt.Errorf("writing sheet %s: %w", t.Title, err)
		}
	}
	if err := f.DeleteSheet(defaultSheet); err != nil {
		return err
	}

	return f.Write(w)
}

func writeSheet(f *excelize.File, t sizing.Table, header, decimal int) error {
	sheet := t.Title

	headers := make([]any, len(t.Columns))
	for c, h := range t.Headers() {
		headers[c] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}

	for r, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := append([]any(nil), row...)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}

	for c, field := range t.Columns {
		width := utf8.RuneCountInString(field.Header)
		for r := range t.Rows {
			width = max(width, utf8.RuneCountInString(t.Text(r, c)))
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width+2)); err != nil {
			return err
		}

		if field.Format == "%.2f" && len(t.Rows) > 0 {
			top, _ := excelize.CoordinatesToCellName(c+1, 2)
			bottom, _ := excelize.CoordinatesToCellName(c+1, len(t.Rows)+1)
			if err := f.SetCellStyle(sheet, top, bottom, decimal); err != nil {
				return err
			}
		}
	}
	return nil
}
