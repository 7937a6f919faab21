package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every preset against the pre gates",
		Long: `Runs the smart code, entity type and field name gates over every preset
and checks that no two presets generate the same file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.generator(false)
			if err != nil {
				return err
			}
			if err := g.Validate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s %d presets valid\n", okMark, g.Config().Registry.Len())
			return nil
		},
	}
}
