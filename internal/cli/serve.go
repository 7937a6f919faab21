package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/heragen/compiler/ledger"
	"github.com/syssam/heragen/internal/preview"
)

func (a *app) serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered artifacts over HTTP without writing them",
		Long: `Starts a read-only preview API:

  GET /healthz
  GET /presets[?module=CRM]
  GET /presets/{key}
  GET /presets/{key}/artifacts
  GET /presets/{key}/artifacts/{feature}
  GET /history[?entity=CONTACT&limit=50]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.generator(false)
			if err != nil {
				return err
			}
			var history preview.History
			if a.cfg.Ledger {
				l := ledger.ForRoot(a.cfg.ProjectRoot())
				defer l.Close()
				history = l
			}
			if !cmd.Flags().Changed("addr") {
				addr = a.cfg.Serve.Addr
			}
			fmt.Fprintf(a.out, "Preview at http://%s\n", addr)
			return preview.New(g, history, a.log).ListenAndServe(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from settings)")
	return cmd
}
