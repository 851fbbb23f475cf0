package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/presize/internal/diagram"
	"github.com/alexiusacademia/presize/internal/sizing"
	"github.com/spf13/cobra"
)

var (
	sizeFloor         int
	sizeShowPlan      bool
	sizePlanFile      string
	sizeElevationFile string
	sizeXLSXFile      string
	sizePDFFile       string
	sizeJSON          bool
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size every structural member of the building",
	Long: `Size slabs, beams, columns, shear walls and the foundation of a
concrete frame building and print the member schedule.

Sizing rules:
  - Slab thickness L/35 of the short span, 100 mm minimum
  - Main beams L/12, secondary beams L/16 of the long span
  - Columns N = 1.15 q A n per group of three storeys, A = N/Rb
  - Shear walls H/20 of the tallest storey, 200 mm minimum
  - Piles n = 1.2 x 1.1 N / P, or a square pad B = sqrt(1.1 N / (R - 20))

Examples:
  # Default ten storey office building
  presize size

  # 12 storeys on a 3x3 bay grid with square columns
  presize size -x "7.5x3" -y "6, 8, 6" -n 12 --column-shape square

  # From a project file, with drawings and a report
  presize size -f tower.yaml --plan-out plan.png --elevation-out elev.svg --floor 4 --pdf tower.pdf`,
	RunE: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)
	addProjectFlags(sizeCmd)

	sizeCmd.Flags().IntVar(&sizeFloor, "floor", 1, "Storey highlighted in the elevation (1 = first)")
	sizeCmd.Flags().BoolVar(&sizeShowPlan, "plan", false, "Show ASCII structural plan")
	sizeCmd.Flags().StringVar(&sizePlanFile, "plan-out", "", "Export plan drawing to file (png, svg, pdf)")
	sizeCmd.Flags().StringVar(&sizeElevationFile, "elevation-out", "", "Export elevation drawing to file (png, svg, pdf)")
	sizeCmd.Flags().StringVar(&sizeXLSXFile, "xlsx", "", "Export schedule workbook to file")
	sizeCmd.Flags().StringVar(&sizePDFFile, "pdf", "", "Export calculation report to file")
	sizeCmd.Flags().BoolVar(&sizeJSON, "json", false, "Print the schedule as JSON")
}

func runSize(cmd *cobra.Command, args []string) error {
	s, err := runSchedule(cmd)
	if err != nil {
		return err
	}

	if sizeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	printHeader("PRELIMINARY STRUCTURAL SIZING - TCVN")
	printInputs(s)
	for _, t := range s.Tables() {
		fmt.Println(diagram.RenderTable(t))
	}
	fmt.Print(diagram.DrawSummaryBox("SUMMARY", summaryLines(s)))

	if sizeShowPlan {
		fmt.Println(diagram.DrawPlan(diagram.NewPlanData(s)))
	}

	if sizePlanFile != "" {
		if err := diagram.ExportPlan(diagram.NewPlanData(s), sizePlanFile); err != nil {
			return fmt.Errorf("exporting plan: %w", err)
		}
		fmt.Printf("\n  Plan exported to: %s\n", sizePlanFile)
	}
	if sizeElevationFile != "" {
		if err := diagram.ExportElevation(diagram.NewElevationData(s, sizeFloor-1), sizeElevationFile); err != nil {
			return fmt.Errorf("exporting elevation: %w", err)
		}
		fmt.Printf("\n  Elevation exported to: %s\n", sizeElevationFile)
	}
	for _, file := range []string{sizeXLSXFile, sizePDFFile} {
		if file == "" {
			continue
		}
		if err := writeExport(s, file); err != nil {
			return err
		}
		fmt.Printf("\n  Exported to: %s\n", file)
	}
	fmt.Println()
	return nil
}

func summaryLines(s *sizing.Schedule) []string {
	lines := []string{fmt.Sprintf("Slab:        %.0f mm", s.Slab.Thickness)}

	beams := make([]string, len(s.Beams))
	for i, b := range s.Beams {
		beams[i] = b.Section()
	}
	lines = append(lines, "Beams:       "+strings.Join(beams, " / ")+" mm")

	if len(s.Columns) > 0 {
		lines = append(lines, fmt.Sprintf("Columns:     %s mm at ground, %d groups", s.Columns[0].Section(), len(s.Columns)))
	}
	if s.Wall != nil {
		lines = append(lines, fmt.Sprintf("Shear wall:  %.0f mm", s.Wall.Thickness))
	}
	lines = append(lines, fmt.Sprintf("Foundation:  %s", s.Foundation.Description))

	status := "ADEQUATE"
	if !s.Adequate() {
		status = "CHECK FAILED MEMBERS"
	}
	return append(lines, "", "Status:      "+status)
}
