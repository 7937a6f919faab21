package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/heragen/internal/watch"
)

func (a *app) watchCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "watch [ENTITY_TYPE...]",
		Short: "Regenerate when the settings or overlay file changes",
		Long: `Generates the given entity types, then watches the settings file and the
preset overlay and generates them again after every change. Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return fmt.Errorf("name at least one entity type or pass --all")
			}
			ctx := cmd.Context()
			a.regenerate(ctx, args, all)

			files := []string{a.configPath}
			if p := a.cfg.OverlayPath(); p != "" {
				files = append(files, p)
			}
			w, err := watch.New(files, a.cfg.DebounceDuration(), func(ctx context.Context, path string) {
				fmt.Fprintf(a.out, "\n%s changed\n", path)
				if err := a.loadConfig(); err != nil {
					reportError(a.err, err)
					return
				}
				a.regenerate(ctx, args, all)
			}, a.log)
			if err != nil {
				return err
			}
			if err := w.Start(ctx); err != nil {
				return err
			}
			defer w.Stop()
			fmt.Fprintf(a.out, "Watching %d file(s). Press Ctrl-C to stop.\n", len(files))
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "regenerate every entity type")
	return cmd
}

// regenerate reports failures instead of returning them so that watching
// continues after a bad edit.
func (a *app) regenerate(ctx context.Context, keys []string, all bool) {
	g, l, err := a.generator(true)
	if err != nil {
		reportError(a.err, err)
		return
	}
	defer closeLedger(l)
	if all {
		results, err := g.GenerateAll(ctx)
		if err != nil {
			reportError(a.err, err)
		}
		fmt.Fprintf(a.out, "%s %d entity types generated\n", okMark, len(results))
		return
	}
	for _, key := range keys {
		res, err := g.Generate(ctx, key)
		if err != nil {
			a.log.Debug("regenerate failed", zap.String("entity", key), zap.Error(err))
			reportError(a.err, err)
			continue
		}
		fmt.Fprintf(a.out, "%s %s → %s\n", okMark, res.Key, res.Artifacts[0].Path)
	}
}
