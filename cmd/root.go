package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam response curves under uniformly distributed load",
	Long: `gobeam - Go Beam Analyzer

A CLI tool that computes the deflection, bending moment and shear force
along a beam carrying a uniformly distributed load.

Supported conditions:
  - simply-supported   single span on pin and roller supports
  - two-span-unequal   continuous beam over two unequal spans

Results can be printed, charted in the terminal, exported as images,
written to Excel workbooks and PDF calculation sheets, or served over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Analyzer                                        ║")
		fmt.Printf("  ║   %s ©  %-40s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Deflection, bending moment and shear force curves for beams")
		fmt.Println("  carrying a uniformly distributed load.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Simply supported and two-span continuous beams")
		fmt.Println("    • Support reactions and curve extremes")
		fmt.Println("    • Factored loads using NSCP load combinations")
		fmt.Println("    • Flexural rigidity from polygonal sections")
		fmt.Println("    • Charts, Excel workbooks, PDF reports and an HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
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
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Settings file with GOBEAM_* variables")
}

// loadConfig reads the settings file, when present, and the environment
func loadConfig() (*config.Config, error) {
	return config.Load(envFile)
}
