package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/syssam/heragen/compiler/ledger"
	"github.com/syssam/heragen/schema/preset"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		entity string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := ledger.ForRoot(a.cfg.ProjectRoot())
			defer l.Close()
			runs, err := l.List(cmd.Context(), ledger.Filter{
				Entity: string(preset.Normalize(entity)),
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(a.out, "No runs recorded.")
				return nil
			}
			for _, r := range runs {
				fmt.Fprintf(a.out, "%s  %-22s %-10s %d files  %s\n",
					r.Started.Local().Format(time.DateTime),
					r.Entity,
					r.Duration.Round(time.Millisecond),
					len(r.Artifacts),
					faint(shortID(r.ID)),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&entity, "entity", "", "only show runs of one entity type")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
