package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/heragen/schema/preset"
)

func (a *app) listCmd() *cobra.Command {
	var module string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entity types grouped by module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.cfg.Registry()
			if err != nil {
				return err
			}
			if module == "" {
				printGroups(a.out, reg)
				return nil
			}
			m := preset.Module(string(preset.Normalize(module)))
			group := reg.ByModule()[m]
			if len(group) == 0 {
				return fmt.Errorf("no entity types in module %s", m)
			}
			for _, p := range group {
				fmt.Fprintf(a.out, "%-22s %s\n", p.Key, p.SmartCode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&module, "module", "", "only list one module")
	return cmd
}
