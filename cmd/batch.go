package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/alexiusacademia/gobeam/internal/analysis"
	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/workbook"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var (
	batchFile    string
	batchOutput  string
	batchWorkers int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Analyze many beams from a YAML or Excel file",
	Long: `Analyze a list of beams concurrently and write the results to an
Excel workbook with a summary sheet and a sheet of curves per beam.

YAML input:
  materials:
    - name: steel
      properties: {EI: 2.0e+13}
  beams:
    - name: B1
      condition: simply-supported
      span: 4
      load: 10
      material: steel
    - name: B2
      condition: two-span-unequal
      span: 6
      span2: 4
      load: 10
      ei: 4.0e+13
      factor: 0.8

Excel input (.xlsx, first sheet, one header row):
  name | condition | span_m | span2_m | udl_kn_m | ei_nmm2 | factor (optional)

Examples:
  gobeam batch --file beams.yaml --output results.xlsx
  gobeam batch -f beams.xlsx -o results.xlsx --workers 8`,
	Run: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Input file (.yaml, .yml or .xlsx) [required]")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "", "Write results to an Excel workbook")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent workers (default from GOBEAM_WORKERS)")

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) {
	logger := l.NewConsoleLoggerWrapper()

	cfg, err := loadConfig()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("load settings")
		return
	}
	if batchWorkers <= 0 {
		batchWorkers = cfg.Workers
	}

	jobs, err := readBatchJobs(batchFile, cfg.Factor)
	if err != nil {
		logger.WithFields(l.StringField("file", batchFile), l.ErrorField(err)).Error("read jobs")
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	outcomes := batch.NewRunner(analysis.NewBeamAnalysis(), batchWorkers, logger).Run(ctx, jobs)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("                    BATCH ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tCondition\tR1 (kN)\tR2 (kN)\tR3 (kN)\tMax M (kN-m)\tMax |y| (mm)\tStatus\n")
	fmt.Fprintf(w, "  ────\t─────────\t───────\t───────\t───────\t────────────\t────────────\t──────\n")
	failed := 0
	for _, out := range outcomes {
		if out.Err != nil {
			failed++
			fmt.Fprintf(w, "  %s\t%s\t\t\t\t\t\t%v\n", out.Job.Name, out.Job.Condition, out.Err)
			continue
		}
		_, maxM := out.Results[1].Equation.Max()
		_, maxY := out.Results[0].Equation.Max()
		_, minY := out.Results[0].Equation.Min()
		if -minY > maxY {
			maxY = -minY
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\tOK\n", out.Job.Name, out.Job.Condition,
			out.Reactions.R1, out.Reactions.R2, out.Reactions.R3, maxM, maxY)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %d analyzed, %d failed\n", len(outcomes)-failed, failed)
	fmt.Println()

	if batchOutput != "" {
		if err := writeFile(batchOutput, func(f *os.File) error {
			return workbook.WriteBatch(f, outcomes)
		}); err != nil {
			logger.WithFields(l.StringField("file", batchOutput), l.ErrorField(err)).Error("write workbook")
			return
		}
		fmt.Printf("Workbook written to: %s\n", batchOutput)
	}
}

func readBatchJobs(path string, factor float64) ([]batch.Job, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return workbook.ReadJobs(f, factor)
	default:
		return batch.LoadFile(path, factor)
	}
}
