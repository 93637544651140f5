package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/vimfocus/internal/input/keymap"
	"github.com/dshills/vimfocus/internal/input/mode"
)

func newKeysCommand(g *globals) *cobra.Command {
	var (
		script   string
		modeName string
	)

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the effective key bindings",
		Long: `List the bindings of each mode after the Lua script and the config
file have been applied, grouped by category.

Examples:
  vimfocus keys
  vimfocus keys --mode insert --script init.lua`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := mode.All()
			if modeName != "" {
				m, err := mode.Parse(modeName)
				if err != nil {
					return err
				}
				modes = []mode.Mode{m}
			}

			s, err := g.openSession("", script, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			table := s.app.Dispatcher().Keymap()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, m := range modes {
				if i > 0 {
					_, _ = fmt.Fprintln(tw)
				}
				_, _ = fmt.Fprintf(tw, "%s mode\n", m.DisplayName())
				for _, cat := range keymap.GroupByCategory(table.Bindings(m)) {
					_, _ = fmt.Fprintf(tw, "  %s\n", cat.Name)
					for _, e := range cat.Entries {
						_, _ = fmt.Fprintf(tw, "    %s\t%s\t%s\n", e.Combo, e.Action, e.Description)
					}
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "Lua script to run first (overrides plugin.script)")
	cmd.Flags().StringVar(&modeName, "mode", "", "only list this mode: normal or insert")
	return cmd
}
