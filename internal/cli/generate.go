package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/heragen/compiler/gen"
)

func (a *app) generateCmd() *cobra.Command {
	var (
		industry   string
		dryRun     bool
		all        bool
		skipGates  []string
		typescript bool
	)
	cmd := &cobra.Command{
		Use:   "generate [ENTITY_TYPE]",
		Short: "Generate the CRUD page for an entity type",
		Long: `Generates src/app/<module path>/page.tsx for the given entity type, plus the
optional API route, README and entity config.

Pre gates (smart code format, entity type, reserved field names) run before
anything is written. Post gates run against the staged files; if one fails
the staged files are discarded and nothing is left behind.

Without an entity type the available types are listed.`,
		Example: `  heragen generate CONTACT
  heragen generate PURCHASE_ORDER --industry=retail
  heragen generate --all --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return a.printCatalog()
			}
			if len(args) > 0 && all {
				return fmt.Errorf("--all cannot be combined with an entity type")
			}
			opts := []gen.Option{gen.WithDryRun(dryRun)}
			if cmd.Flags().Changed("industry") {
				opts = append(opts, gen.WithIndustry(industry))
			}
			if len(skipGates) > 0 {
				opts = append(opts, gen.WithSkipGates(skipGates...))
			}
			if cmd.Flags().Changed("typescript") {
				opts = append(opts, gen.WithTypeScriptGate(typescript))
			}
			g, l, err := a.generator(!dryRun, opts...)
			if err != nil {
				return err
			}
			defer closeLedger(l)

			if all {
				results, err := g.GenerateAll(cmd.Context())
				for _, res := range results {
					fmt.Fprintf(a.out, "%s %-22s %s\n", okMark, res.Key, res.Artifacts[0].Path)
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "\n%d entity types generated\n", len(results))
				return nil
			}

			res, err := g.Generate(cmd.Context(), args[0])
			if err != nil {
				if res != nil {
					printGates(a.out, res)
				}
				return err
			}
			printResult(a.out, res)
			return nil
		},
	}
	cmd.Flags().StringVar(&industry, "industry", "", "industry tag recorded with the run")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render and check without writing files")
	cmd.Flags().BoolVar(&all, "all", false, "generate every entity type")
	cmd.Flags().StringSliceVar(&skipGates, "skip-gate", nil, "gate to skip (repeatable)")
	cmd.Flags().BoolVar(&typescript, "typescript", false, "run tsc --noEmit after staging")
	return cmd
}
