package cmd

import (
	"fmt"

	"github.com/alexiusacademia/presize/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of presize",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("presize v%s\n", version.Version)
		fmt.Println("Preliminary Structural Sizing Tool")
		fmt.Printf("Built %s from commit %s\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
