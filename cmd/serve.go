package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/gobeam/internal/server"
	"github.com/sgostarter/i/l"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analysis over HTTP",
	Long: `Start an HTTP server exposing the analysis as a JSON API.

Routes:
  GET  /api/conditions     supported support conditions
  POST /api/analyze        one curve
  POST /api/analyze/all    deflection, bending moment and shear force
  POST /api/reactions      support reactions
  POST /api/chart          one curve as a PNG chart

Request body:
  {
    "condition": "two-span-unequal",
    "quantity": "bendingmoment",
    "load": 10,
    "beam": {
      "primary_span": 6,
      "secondary_span": 4,
      "material": {"name": "steel", "properties": {"EI": 2e13}}
    }
  }

Settings come from the environment or the --env file:
  GOBEAM_ADDR, GOBEAM_RATE, GOBEAM_BURST, GOBEAM_FACTOR, GOBEAM_SHUTDOWN_TIMEOUT

Examples:
  gobeam serve
  gobeam serve --addr :9090`,
	Run: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from GOBEAM_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) {
	logger := l.NewConsoleLoggerWrapper()

	cfg, err := loadConfig()
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("load settings")
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.New(cfg, logger).Run(ctx); err != nil {
		logger.WithFields(l.ErrorField(err)).Fatal("server stopped")
	}
	logger.Info("server stopped")
}
