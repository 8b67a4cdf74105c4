package cli

import (
	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/internal/api"
)

// serveCommand creates the serve command: run the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the crate computation HTTP API",
		Long: `Run the HTTP API exposing crate computation.

Endpoints:
  POST /v1/crate    compute a layout (JSON params, ?format=exp for NX output)
  GET  /healthz     liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(configPath)
			if err != nil {
				return err
			}
			srv := api.NewServer(runner, loggerFromContext(cmd.Context()))
			return srv.ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&configPath, "config", "", "engineering constants TOML file")

	return cmd
}
