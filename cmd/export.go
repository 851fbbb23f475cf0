package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexiusacademia/presize/internal/report"
	"github.com/alexiusacademia/presize/internal/sizing"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE...",
	Short: "Export the member schedule to Excel or PDF",
	Long: `Size the building and write the schedule to each FILE. The format
follows the extension:

  .xlsx  workbook with one sheet per member schedule
  .pdf   calculation report

Examples:
  presize export -f tower.yaml tower.xlsx tower.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := runSchedule(cmd)
		if err != nil {
			return err
		}
		for _, file := range args {
			if err := writeExport(s, file); err != nil {
				return err
			}
			fmt.Printf("Exported to: %s\n", file)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addProjectFlags(exportCmd)
}

// writeExport writes s to file in the format named by its extension.
func writeExport(s *sizing.Schedule, file string) error {
	ext := strings.ToLower(filepath.Ext(file))
	if ext != ".xlsx" && ext != ".pdf" {
		return fmt.Errorf("unsupported export format %q for %s", ext, file)
	}

	if dir := filepath.Dir(file); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer out.Close()

	if ext == ".xlsx" {
		err = report.WriteWorkbook(out, s.Tables())
	} else {
		err = report.WritePDF(out, report.ReportInput{
			Project:      s.Parameters.Name,
			BuildingType: s.Parameters.BuildingType,
			Date:         time.Now(),
			Schedule:     s,
		})
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", file, err)
	}
	return out.Close()
}
