package cmd

import (
	"github.com/spf13/cobra"

	"github.com/structuraltools/goiscc/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the compliance checker as an HTTP API",
	Long: `Start the HTTP API.

Routes:
  POST /api/check        Run a compliance check
  POST /api/loads        Run only the load derivation
  POST /api/report/pdf   Check and stream a PDF report
  POST /api/report/xlsx  Check and stream the check schedule
  GET  /healthz          Liveness probe

The listen address comes from --addr, the GOISCC_ADDR environment
variable (a .env file is honoured), or defaults to :8080.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Run(server.ResolveAddr(serveAddr))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (e.g. :8080)")
}
