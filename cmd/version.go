package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobeam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobeam v%s\n", version.Version)
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
		fmt.Println("Beam deflection, bending moment and shear force under uniform load")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
