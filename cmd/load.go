package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	// Unfactored distributed loads (kN/m)
	loadDead       float64
	loadLive       float64
	loadRoof       float64
	loadWind       float64
	loadEarthquake float64
	loadRain       float64

	// Optional beam for factored reactions
	loadSpan      float64
	loadSpan2     float64
	loadCondition string

	// Options
	showAll       bool
	useSimplified bool
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Calculate the factored uniform load using NSCP load combinations",
	Long: `Calculate the factored distributed load (wu) based on NSCP 2015 load combinations.

Provide unfactored uniform loads from different load types and this command will
compute the factored load for all applicable NSCP load combinations. The
governing load can be passed to 'gobeam analyze --load'.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Simple gravity loads (dead + live)
  gobeam load --dead 12 --live 8

  # With wind load, showing every combination
  gobeam load --dead 12 --live 8 --wind 5 --all

  # Factored reactions of a two-span beam
  gobeam load --dead 12 --live 8 --span 6 --span2 4 --condition two-span-unequal`,
	Run: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	// Load flags
	loadCmd.Flags().Float64VarP(&loadDead, "dead", "d", 0, "Dead load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadLive, "live", "l", 0, "Live load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadRoof, "roof", "r", 0, "Roof live load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadWind, "wind", "w", 0, "Wind load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadEarthquake, "earthquake", "e", 0, "Earthquake load (kN/m)")
	loadCmd.Flags().Float64VarP(&loadRain, "rain", "R", 0, "Rain load (kN/m)")

	// Beam flags
	loadCmd.Flags().Float64Var(&loadSpan, "span", 0, "Primary span (m), prints factored reactions when set")
	loadCmd.Flags().Float64Var(&loadSpan2, "span2", 0, "Secondary span (m)")
	loadCmd.Flags().StringVar(&loadCondition, "condition", analysis.SimplySupportedCondition, "Support condition")

	// Options
	loadCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	loadCmd.Flags().BoolVarP(&useSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
}

func runLoad(cmd *cobra.Command, args []string) {
	loads := nscp.LoadIntensities{
		Dead:       loadDead,
		Live:       loadLive,
		Roof:       loadRoof,
		Wind:       loadWind,
		Earthquake: loadEarthquake,
		Rain:       loadRain,
	}

	if loads.IsZero() {
		fmt.Println("Error: Please provide at least one unfactored load.")
		fmt.Println("Use 'gobeam load --help' for usage information.")
		return
	}

	combinations := nscp.LoadCombinations
	if useSimplified {
		combinations = nscp.SimplifiedCombinations
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 FACTORED UNIFORM LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("UNFACTORED LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, item := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", loads.Dead},
		{"Live Load (L)", loads.Live},
		{"Roof Live Load (Lr)", loads.Roof},
		{"Wind Load (W)", loads.Wind},
		{"Earthquake Load (E)", loads.Earthquake},
		{"Rain Load (R)", loads.Rain},
	} {
		if item.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", item.label, item.value)
		}
	}
	w.Flush()
	fmt.Println()

	wu, governingCombo := nscp.CalculateGoverningLoad(loads, combinations)

	if showAll {
		fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  #\tCombination\twu (kN/m)\n")
		fmt.Fprintf(w, "  ─\t───────────\t─────────\n")

		for _, combo := range combinations {
			marker := ""
			if combo.ID == governingCombo.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.CalculateFactoredLoad(loads), marker)
		}
		w.Flush()
		fmt.Println()
	}

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Governing Combination: %s (%s)\n", governingCombo.ID, governingCombo.Description)
	fmt.Println()

	lines := []string{fmt.Sprintf("FACTORED LOAD (wu) = %.2f kN/m", wu)}
	if loadSpan > 0 {
		b := beam.NewBeam(loadSpan, loadSpan2, beam.NewMaterial("unspecified", nil))
		reactions, err := analysis.NewBeamAnalysis().GetReactions(b, wu, loadCondition)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		lines = append(lines, reactionLines(reactions, analysis.IsTwoSpan(loadCondition))...)
	}
	fmt.Print(diagram.DrawSummaryBox("FACTORED DESIGN LOAD", lines))
	fmt.Println()
}

func reactionLines(r analysis.Reactions, twoSpan bool) []string {
	if !twoSpan {
		return []string{
			fmt.Sprintf("R1 = %.2f kN", r.R1),
			fmt.Sprintf("R2 = %.2f kN", r.R3),
		}
	}
	return []string{
		fmt.Sprintf("R1 = %.2f kN", r.R1),
		fmt.Sprintf("R2 = %.2f kN", r.R2),
		fmt.Sprintf("R3 = %.2f kN", r.R3),
		fmt.Sprintf("M at interior support = %.2f kN-m", r.M1),
	}
}
