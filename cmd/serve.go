package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwise/internal/server"
)

var serveAddrFlag string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the fingering search over HTTP",
		Long: `Serve a JSON API:
  GET  /healthz
  GET  /instruments
  GET  /scales/{base}/{pattern}
  POST /fingerings  {"base","scale","shape","instrument","min_notes","limit"}`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return server.New(workflow, store, logger).ListenAndServe(serveAddrFlag)
		},
	}
	cmd.Flags().StringVarP(&serveAddrFlag, "addr", "a", ":8080", "address to listen on")

	return cmd
}
