package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/presize/internal/sizing"
)

// RenderTable draws a schedule table with box-drawing borders
func RenderTable(t sizing.Table) string {
	var sb strings.Builder

	widths := make([]int, len(t.Columns))
	for c, h := range t.Headers() {
		widths[c] = utf8.RuneCountInString(h)
	}
	cells := make([][]string, len(t.Rows))
	for r := range t.Rows {
		cells[r] = make([]string, len(t.Columns))
		for c := range t.Columns {
			cells[r][c] = t.Text(r, c)
			widths[c] = max(widths[c], utf8.RuneCountInString(cells[r][c]))
		}
	}

	rule := func(left, mid, right string) {
		sb.WriteString("  " + left)
		for c, w := range widths {
			if c > 0 {
				sb.WriteString(mid)
			}
			sb.WriteString(strings.Repeat("─", w+2))
		}
		sb.WriteString(right + "\n")
	}
	row := func(values []string) {
		sb.WriteString("  │")
		for c, v := range values {
			sb.WriteString(" " + pad(v, widths[c]) + " │")
		}
		sb.WriteString("\n")
	}

	if t.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.ToUpper(t.Title)))
	}
	rule("┌", "┬", "┐")
	row(t.Headers())
	rule("├", "┼", "┤")
	for _, r := range cells {
		row(r)
	}
	rule("└", "┴", "┘")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, width)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, width)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// Plan drawing scale, characters per metre
const (
	planScaleX = 2.0
	planScaleY = 1.0
)

// DrawPlan creates an ASCII plan of the grid. Beams run along every
// axis and a column sits at every intersection.
func DrawPlan(d PlanData) string {
	var sb strings.Builder

	if len(d.XAxes) == 0 || len(d.YAxes) == 0 {
		return ""
	}

	cols := make([]int, len(d.XAxes))
	for i, m := range d.XAxes {
		cols[i] = int(math.Round(m.Offset * planScaleX))
	}
	rows := make([]int, len(d.YAxes))
	for i, m := range d.YAxes {
		rows[i] = int(math.Round(m.Offset * planScaleY))
	}
	width := cols[len(cols)-1] + 1
	height := rows[len(rows)-1] + 1

	canvas := make([][]rune, height)
	for r := range canvas {
		canvas[r] = []rune(strings.Repeat(" ", width))
	}
	for _, r := range rows {
		for c := range canvas[r] {
			canvas[r][c] = '─'
		}
	}
	for _, c := range cols {
		for r := range canvas {
			if canvas[r][c] == '─' {
				canvas[r][c] = '■'
			} else {
				canvas[r][c] = '│'
			}
		}
	}

	labelRow := func() string {
		line := []rune(strings.Repeat(" ", width+2))
		for i, c := range cols {
			for j, ch := range d.XAxes[i].Label {
				if c+j < len(line) {
					line[c+j] = ch
				}
			}
		}
		return strings.TrimRight("      "+string(line), " ")
	}

	sb.WriteString("\n")
	if d.Title != "" {
		sb.WriteString(fmt.Sprintf("  %s\n", d.Title))
		sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Repeat("─", utf8.RuneCountInString(d.Title))))
	}
	sb.WriteString(labelRow() + "\n")

	// Y grows upward in plan, so the top row is the last axis.
	for r := height - 1; r >= 0; r-- {
		label := ""
		for i, y := range rows {
			if y == r {
				label = d.YAxes[i].Label
			}
		}
		sb.WriteString(fmt.Sprintf("  %3s %s\n", label, string(canvas[r])))
	}
	sb.WriteString(labelRow() + "\n")

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  ■ = Column %.0fx%.0f mm (X x Y)\n", d.ColumnX*1000, d.ColumnY*1000))
	sb.WriteString("  ─ │ = Beams on grid lines\n")

	return sb.String()
}

// DrawLoadChart plots the column axial load of each floor group, from
// the ground group on the left to the roof group on the right.
func DrawLoadChart(columns []sizing.ColumnResult) string {
	if len(columns) == 0 {
		return ""
	}
	loads := make([]float64, len(columns))
	for i, c := range columns {
		loads[i] = c.AxialLoad
	}
	// a single point draws nothing
	if len(loads) == 1 {
		loads = append(loads, loads[0])
	}
	return asciigraph.Plot(loads,
		asciigraph.Height(8),
		asciigraph.Width(40),
		asciigraph.Offset(4),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("Axial load N (kN), %s to %s", columns[0].Group, columns[len(columns)-1].Group)),
	)
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
