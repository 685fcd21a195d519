package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile   string
	sectionWidth  float64
	sectionHeight float64
	sectionE      float64
	sectionFc     float64
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Section properties and flexural rigidity",
	Long: `Compute the properties of a beam cross-section and the rigidities
used by 'gobeam analyze --section'.

The section is a polygon defined in a YAML or JSON file with optional
reinforcement layers, transformed into concrete with n = Es/Ec. A plain
rectangle can be given with --width and --height instead.

Example YAML file structure:
  name: T-Beam Section
  fc: 28
  vertices:
    - {x: 0, y: 0}
    - {x: 300, y: 0}
    - {x: 300, y: 400}
    - {x: 600, y: 400}
    - {x: 600, y: 500}
    - {x: 0, y: 500}
  reinforcement:
    - {y: 65, area: 1256.64, description: 4-20mm}

Examples:
  gobeam section --file t-beam.yaml
  gobeam section --width 300 --height 500 --fc 28`,
	Run: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to section YAML or JSON file")
	sectionCmd.Flags().Float64VarP(&sectionWidth, "width", "b", 0, "Rectangle width (mm)")
	sectionCmd.Flags().Float64Var(&sectionHeight, "height", 0, "Rectangle height (mm)")
	sectionCmd.Flags().Float64Var(&sectionE, "e", 0, "Modulus of elasticity (MPa)")
	sectionCmd.Flags().Float64Var(&sectionFc, "fc", 28, "Concrete strength f'c (MPa), gives E when --e is not set")
}

func runSection(cmd *cobra.Command, args []string) {
	var sec *section.Section
	switch {
	case sectionFile != "":
		var err error
		if sec, err = section.LoadFromFile(sectionFile); err != nil {
			fmt.Printf("Error loading section: %v\n", err)
			return
		}
	case sectionWidth > 0 && sectionHeight > 0:
		sec = section.Rectangle(fmt.Sprintf("%gx%g", sectionWidth, sectionHeight), sectionWidth, sectionHeight, sectionE)
		sec.Fc = sectionFc
	default:
		fmt.Println("Error: Please provide --file or --width and --height.")
		fmt.Println("Use 'gobeam section --help' for usage information.")
		return
	}

	material, err := sec.Material()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	props := sec.CalculateProperties()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                 SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("GROSS SECTION:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width × Height:\t%.1f × %.1f mm\n", props.Width, props.Height)
	fmt.Fprintf(w, "  Area Ag:\t%.1f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%.2f, %.2f) mm\n", props.CentroidX, props.CentroidY)
	fmt.Fprintf(w, "  Moment of inertia Ig:\t%.4e mm⁴\n", props.Ig)
	w.Flush()
	fmt.Println()

	if len(sec.Reinforcement) > 0 {
		fmt.Println("TRANSFORMED SECTION:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, layer := range sec.Reinforcement {
			fmt.Fprintf(w, "  Layer at y = %.1f mm:\t%.2f mm²\t%s\n", layer.Y, layer.Area, layer.Description)
		}
		fmt.Fprintf(w, "  Modular ratio n:\t%.3f\n", props.ModularRatio)
		fmt.Fprintf(w, "  Area Atr:\t%.1f mm²\n", props.TransformedArea)
		fmt.Fprintf(w, "  Centroid ytr:\t%.2f mm\n", props.TransformedCentroidY)
		fmt.Fprintf(w, "  Moment of inertia Itr:\t%.4e mm⁴\n", props.Itr)
		w.Flush()
		fmt.Println()
	}

	fmt.Println("MATERIAL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Modulus E:\t%.0f MPa\n", props.E)
	fmt.Fprintf(w, "  Shear modulus G:\t%.0f MPa\n", props.G)
	w.Flush()
	fmt.Println()

	ea, _ := material.Property(beam.PropEA)
	ga, _ := material.Property(beam.PropGA)
	fmt.Print(diagram.DrawSummaryBox("RIGIDITIES", []string{
		fmt.Sprintf("EI = %.4e N-mm²", material.EI()),
		fmt.Sprintf("EA = %.4e N", ea),
		fmt.Sprintf("GA = %.4e N", ga),
	}))
	fmt.Println()
}
