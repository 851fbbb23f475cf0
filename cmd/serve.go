package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/presize/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the sizing engine as a JSON API",
	Long: `Start an HTTP server exposing the sizing engine.

Endpoints (request body is a JSON project, missing fields use defaults):
  POST /api/size               member schedule
  POST /api/tables             schedule tables
  POST /api/export/xlsx        workbook download
  POST /api/export/pdf         calculation report download
  POST /api/diagram/plan       plan drawing (?format=png|svg|pdf)
  POST /api/diagram/elevation  elevation drawing (?floor=N&format=...)
  GET  /api/health

Configuration is read from the environment or a .env file:
  PRESIZE_ADDR   listen address (default :8080)
  PRESIZE_RATE   requests per second per client (default 5)
  PRESIZE_BURST  burst per client (default 10)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := server.LoadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return server.New(cfg).Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides PRESIZE_ADDR")
}
