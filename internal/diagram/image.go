package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	axisColor      = color.Gray{Y: 150}
	beamColor      = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	beamFill       = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	columnColor    = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	columnFill     = color.RGBA{R: 160, G: 160, B: 160, A: 200}
	highlightColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	dashed = []vg.Length{vg.Points(5), vg.Points(3)}
	dotted = []vg.Length{vg.Points(2), vg.Points(2)}
)

const (
	figureWidth  = 8 * vg.Inch
	figureHeight = 6 * vg.Inch
)

// PlanPlot builds the structural plan: dashed grid axes, beams along
// every axis and a column rectangle at every intersection.
func PlanPlot(d PlanData) (*plot.Plot, error) {
	if len(d.XAxes) == 0 || len(d.YAxes) == 0 {
		return nil, fmt.Errorf("plan needs at least one axis in each direction")
	}

	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	x0, x1 := d.XAxes[0].Offset, d.XAxes[len(d.XAxes)-1].Offset
	y0, y1 := d.YAxes[0].Offset, d.YAxes[len(d.YAxes)-1].Offset

	var labels plotter.XYLabels

	// Axes overshoot the frame by 1 m and carry their label at the end.
	for _, m := range d.XAxes {
		if err := addLine(p, plotter.XYs{{X: m.Offset, Y: y0 - 1}, {X: m.Offset, Y: y1 + 1}}, axisColor, 1, dashed); err != nil {
			return nil, err
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: m.Offset, Y: y1 + 1.3})
		labels.Labels = append(labels.Labels, m.Label)
	}
	for _, m := range d.YAxes {
		if err := addLine(p, plotter.XYs{{X: x0 - 1, Y: m.Offset}, {X: x1 + 1, Y: m.Offset}}, axisColor, 1, dashed); err != nil {
			return nil, err
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: x0 - 1.5, Y: m.Offset})
		labels.Labels = append(labels.Labels, m.Label)
	}

	for _, m := range d.XAxes {
		if err := addLine(p, plotter.XYs{{X: m.Offset, Y: y0}, {X: m.Offset, Y: y1}}, beamColor, 3, nil); err != nil {
			return nil, err
		}
	}
	for _, m := range d.YAxes {
		if err := addLine(p, plotter.XYs{{X: x0, Y: m.Offset}, {X: x1, Y: m.Offset}}, beamColor, 3, nil); err != nil {
			return nil, err
		}
	}

	for _, xm := range d.XAxes {
		for _, ym := range d.YAxes {
			col, err := rectangle(xm.Offset-d.ColumnX/2, ym.Offset-d.ColumnY/2, d.ColumnX, d.ColumnY)
			if err != nil {
				return nil, err
			}
			col.Color = columnColor
			col.LineStyle.Color = color.Black
			p.Add(col)
		}
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	return p, nil
}

// ElevationPlot builds the frame elevation: level lines, full height
// columns on every X axis and beam bands under every level above the
// foundation. The current floor is drawn in red.
func ElevationPlot(d ElevationData) (*plot.Plot, error) {
	if len(d.XAxes) == 0 || len(d.Levels) < 2 {
		return nil, fmt.Errorf("elevation needs at least one axis and one storey")
	}

	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Elevation (m)"

	x0, x1 := d.XAxes[0].Offset, d.XAxes[len(d.XAxes)-1].Offset
	top := d.Levels[len(d.Levels)-1].Offset
	current := d.Current + 1

	var labels plotter.XYLabels

	for i, lv := range d.Levels {
		var c color.Color = axisColor
		w, dash := vg.Length(1), dotted
		if i == current {
			c, w, dash = highlightColor, 2.5, nil
		}
		if err := addLine(p, plotter.XYs{{X: x0 - 1, Y: lv.Offset}, {X: x1 + 1.5, Y: lv.Offset}}, c, w, dash); err != nil {
			return nil, err
		}
		labels.XYs = append(labels.XYs, plotter.XY{X: x1 + 2.5, Y: lv.Offset})
		labels.Labels = append(labels.Labels, fmt.Sprintf("%s (+%.2f)", lv.Label, lv.Offset))
	}

	for _, m := range d.XAxes {
		col, err := rectangle(m.Offset-d.ColumnX/2, 0, d.ColumnX, top)
		if err != nil {
			return nil, err
		}
		col.Color = columnFill
		col.LineStyle.Color = color.Black
		p.Add(col)

		labels.XYs = append(labels.XYs, plotter.XY{X: m.Offset, Y: -1})
		labels.Labels = append(labels.Labels, m.Label)
	}

	for i, lv := range d.Levels[1:] {
		for j := 0; j+1 < len(d.XAxes); j++ {
			a, b := d.XAxes[j].Offset, d.XAxes[j+1].Offset
			beam, err := rectangle(a, lv.Offset-d.BeamDepth, b-a, d.BeamDepth)
			if err != nil {
				return nil, err
			}
			beam.Color = beamFill
			beam.LineStyle.Color = beamColor
			if i+1 == current {
				beam.LineStyle.Color = highlightColor
			}
			p.Add(beam)
		}
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)

	return p, nil
}

// ExportPlan exports the structural plan to an image file
func ExportPlan(d PlanData, filename string) error {
	p, err := PlanPlot(d)
	if err != nil {
		return err
	}
	return saveFigure(p, filename)
}

// ExportElevation exports the frame elevation to an image file
func ExportElevation(d ElevationData, filename string) error {
	p, err := ElevationPlot(d)
	if err != nil {
		return err
	}
	return saveFigure(p, filename)
}

// WriteImage encodes p to w. Format is png, svg or pdf.
func WriteImage(w io.Writer, p *plot.Plot, format string) error {
	wt, err := p.WriterTo(figureWidth, figureHeight, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func saveFigure(p *plot.Plot, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(figureWidth, figureHeight, filename)
	default:
		return p.Save(figureWidth, figureHeight, filename+".png")
	}
}

func addLine(p *plot.Plot, pts plotter.XYs, c color.Color, width vg.Length, dashes []vg.Length) error {
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Color = c
	line.LineStyle.Width = vg.Points(float64(width))
	line.LineStyle.Dashes = dashes
	p.Add(line)
	return nil
}

func rectangle(x, y, w, h float64) (*plotter.Polygon, error) {
	return plotter.NewPolygon(plotter.XYs{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	})
}
