package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/growplan/internal/server"
)

// newServeCmd creates the serve command, which runs the HTTP layout API until
// interrupted.
func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP layout API",
		Long: `Serve exposes the layout pipeline over HTTP.

Endpoints:
  GET  /healthz          liveness check
  GET  /api/v1/defaults  default parameter set
  POST /api/v1/layout    compute a plan, returns rectangles and metrics
  POST /api/v1/render    compute a plan, returns one rendered artifact`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			return server.New(addr, logger).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
