package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/presize/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "presize",
	Short: "Preliminary structural sizing of concrete buildings",
	Long: `presize - Preliminary Structural Sizing

A CLI tool for the preliminary sizing of reinforced concrete building
frames to the Vietnamese standards (TCVN).

From a column grid, storey heights, materials and a floor load it sizes:
  - Slabs and beams from span ratios
  - Columns per group of three storeys from axial load
  - Shear walls from storey height
  - Pile groups or pad footings for the ground column

Results print as tables and export to Excel, PDF and plan/elevation
drawings. The same engine is served over HTTP by 'presize serve'.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   presize v%-47s║\n", version.Version)
		fmt.Println("  ║   Preliminary Structural Sizing                           ║")
		fmt.Println("  ║   TCVN 2737:2023 / 5574:2018 / 10304:2014                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Sizes the structural members of a concrete frame building")
		fmt.Println("  from its grid, storeys, materials and floor load.")
		fmt.Println()
		fmt.Println("  Commands:")
		fmt.Println("    • size        full member schedule, drawings and exports")
		fmt.Println("    • slab, beam, column, wall, foundation   one schedule each")
		fmt.Println("    • export      write the schedule to .xlsx or .pdf")
		fmt.Println("    • serve       JSON API over HTTP")
		fmt.Println()
		fmt.Println("  Use 'presize --help' to see all options.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
}
