package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/section"
	"github.com/alexiusacademia/gobeam/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	// Beam and load
	analyzeCondition string
	analyzeQuantity  string
	analyzeAll       bool
	analyzeSpan      float64
	analyzeSpan2     float64
	analyzeLoad      float64
	analyzeEI        float64
	analyzeSection   string
	analyzeFactor    float64

	// Output options
	analyzeChart   bool
	analyzeOutput  string
	analyzeXLSX    string
	analyzePDF     string
	analyzeJSON    bool
	analyzeProject string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute deflection, bending moment and shear force curves",
	Long: `Compute the response curves of a beam under a uniformly distributed load.

Curves are sampled along the beam axis from x = 0 to the total length:
  - deflection      (mm)    needs the flexural rigidity EI
  - bendingmoment   (kN-m)
  - shearforce      (kN)

EI is given in N-mm² with --ei, or computed from a polygonal section file
with --section (see 'gobeam section --help'). The deflection factor j
multiplies every deflection ordinate.

Examples:
  # Moment diagram of a 4 m simply supported beam carrying 10 kN/m
  gobeam analyze --span 4 --load 10 --quantity bendingmoment --chart

  # All curves of a two-span beam, exported to Excel and PDF
  gobeam analyze -c two-span-unequal --span 6 --span2 4 --load 10 --ei 2e13 \
    --all --xlsx beam.xlsx --pdf beam.pdf

  # Rigidity from a T-beam section, curves as JSON
  gobeam analyze --span 6 --load 25 --section t-beam.yaml --all --json`,
	Run: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeCondition, "condition", "c", analysis.SimplySupportedCondition, "Support condition (simply-supported, two-span-unequal)")
	analyzeCmd.Flags().StringVarP(&analyzeQuantity, "quantity", "q", string(analysis.Deflection), "Curve to compute (deflection, bendingmoment, shearforce)")
	analyzeCmd.Flags().BoolVarP(&analyzeAll, "all", "a", false, "Compute every curve")

	analyzeCmd.Flags().Float64VarP(&analyzeSpan, "span", "l", 0, "Primary span l or l1 (m) [required]")
	analyzeCmd.Flags().Float64Var(&analyzeSpan2, "span2", 0, "Secondary span l2 (m), two-span beams")
	analyzeCmd.Flags().Float64VarP(&analyzeLoad, "load", "w", 0, "Uniformly distributed load (kN/m)")
	analyzeCmd.Flags().Float64Var(&analyzeEI, "ei", 0, "Flexural rigidity EI (N-mm²)")
	analyzeCmd.Flags().StringVarP(&analyzeSection, "section", "s", "", "Section file (YAML or JSON) giving EI")
	analyzeCmd.Flags().Float64VarP(&analyzeFactor, "factor", "j", 1, "Deflection factor j, overrides GOBEAM_FACTOR")

	analyzeCmd.Flags().BoolVar(&analyzeChart, "chart", false, "Show ASCII chart of each curve")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "Export charts to image files (png, svg, pdf)")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write results to an Excel workbook")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF calculation sheet")
	analyzeCmd.Flags().StringVar(&analyzeProject, "project", "", "Project name printed on the PDF")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print results as JSON")

	analyzeCmd.MarkFlagRequired("span")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Printf("Error loading settings: %v\n", err)
		return
	}
	if !cmd.Flags().Changed("factor") {
		analyzeFactor = cfg.Factor
	}

	material, err := analyzeMaterial()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	b := beam.NewBeam(analyzeSpan, analyzeSpan2, material)
	b.DeflectionFactor = analyzeFactor

	quantities := analysis.Quantities
	if !analyzeAll {
		q, err := analysis.ParseQuantity(analyzeQuantity)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		quantities = []analysis.Quantity{q}
	}

	ba := analysis.NewBeamAnalysis()
	results := make([]*analysis.Result, 0, len(quantities))
	for _, q := range quantities {
		res, err := ba.Analyze(b, analyzeLoad, analyzeCondition, q)
		if err != nil {
			fmt.Printf("Error analyzing beam: %v\n", err)
			return
		}
		results = append(results, res)
	}

	reactions, err := ba.GetReactions(b, analyzeLoad, analyzeCondition)
	if err != nil {
		fmt.Printf("Error analyzing beam: %v\n", err)
		return
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	} else {
		printAnalysis(b, reactions, results)
	}

	writeAnalysisOutputs(b, reactions, results)
}

func analyzeMaterial() (*beam.Material, error) {
	if analyzeSection != "" {
		sec, err := section.LoadFromFile(analyzeSection)
		if err != nil {
			return nil, fmt.Errorf("loading section: %w", err)
		}
		return sec.Material()
	}

	props := map[string]float64{}
	if analyzeEI > 0 {
		props[beam.PropEI] = analyzeEI
	}
	return beam.NewMaterial("user", props), nil
}

func printAnalysis(b *beam.Beam, reactions analysis.Reactions, results []*analysis.Result) {
	twoSpan := analysis.IsTwoSpan(analyzeCondition)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          BEAM ANALYSIS - UNIFORMLY DISTRIBUTED LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if twoSpan {
		fmt.Print(diagram.DrawSupports(b.PrimarySpan, b.SecondarySpan))
	} else {
		fmt.Print(diagram.DrawSupports(b.PrimarySpan, 0))
	}
	fmt.Println()

	fmt.Println("INPUT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Condition:\t%s\n", analyzeCondition)
	fmt.Fprintf(w, "  Total length:\t%.2f m\n", b.TotalLength(twoSpan))
	fmt.Fprintf(w, "  Load w:\t%.2f kN/m\n", analyzeLoad)
	if ei := b.Material.EI(); ei > 0 {
		fmt.Fprintf(w, "  Rigidity EI:\t%.4g N-mm² (%s)\n", ei, b.Material.Name)
	}
	fmt.Fprintf(w, "  Deflection factor j:\t%.3f\n", b.DeflectionFactor)
	w.Flush()
	fmt.Println()

	fmt.Println("EXTREMES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Curve\tMax\tat x (m)\tMin\tat x (m)\tSamples\n")
	fmt.Fprintf(w, "  ─────\t───\t────────\t───\t────────\t───────\n")
	for _, res := range results {
		c := res.Equation
		maxX, maxY := c.Max()
		minX, minY := c.Min()
		fmt.Fprintf(w, "  %s (%s)\t%.2f\t%.2f\t%.2f\t%.2f\t%d\n",
			c.Analys.Title(), c.Analys.Unit(), maxY, maxX, minY, minX, c.Len())
	}
	w.Flush()
	fmt.Println()

	if analyzeChart {
		for _, res := range results {
			fmt.Println(diagram.DrawCurve(res.Equation))
		}
	}

	fmt.Print(diagram.DrawSummaryBox("SUPPORT REACTIONS", reactionLines(reactions, twoSpan)))
	fmt.Println()
}

func writeAnalysisOutputs(b *beam.Beam, reactions analysis.Reactions, results []*analysis.Result) {
	if analyzeOutput != "" {
		files, err := diagram.ExportCurves(results, analyzeOutput)
		if err != nil {
			fmt.Printf("Error exporting charts: %v\n", err)
		} else {
			fmt.Printf("Charts exported to: %s\n", strings.Join(files, ", "))
		}
	}

	if analyzeXLSX != "" {
		if err := writeFile(analyzeXLSX, func(f *os.File) error {
			return workbook.WriteAnalysis(f, analyzeCondition, reactions, results)
		}); err != nil {
			fmt.Printf("Error writing workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook written to: %s\n", analyzeXLSX)
		}
	}

	if analyzePDF != "" {
		in := report.Input{
			Project:   analyzeProject,
			Condition: analyzeCondition,
			Beam:      b,
			Load:      analyzeLoad,
			Reactions: reactions,
			Results:   results,
			Charts:    true,
		}
		if err := writeFile(analyzePDF, func(f *os.File) error {
			return report.Write(f, in)
		}); err != nil {
			fmt.Printf("Error writing report: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", analyzePDF)
		}
	}
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
