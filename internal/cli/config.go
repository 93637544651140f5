package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/vimfocus/internal/config"
	"github.com/dshills/vimfocus/internal/input/keymap"
)

func newConfigCommand(g *globals) *cobra.Command {
	var (
		format     string
		withKeymap bool
		script     string
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and environment
overrides are combined. The output is a valid config file.

With --keymap the keymap section lists every binding in effect, including
the defaults and the edits of the Lua script.

Examples:
  vimfocus config
  vimfocus config --format yaml > ~/.config/vimfocus/config.yaml
  vimfocus config --keymap --script init.lua`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := g.loadConfig()
			if err != nil {
				return err
			}
			if path != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "# loaded from %s\n", path)
			}

			if withKeymap {
				s, err := g.openSession("", script, nil)
				if err != nil {
					return err
				}
				defer s.Close()

				cfg = cfg.Clone()
				cfg.Keymap = keymap.Export(s.app.Dispatcher().Keymap(), s.app.Actions())
			}
			return cfg.Encode(cmd.OutOrStdout(), config.Format(format))
		},
	}

	cmd.Flags().StringVar(&format, "format", string(config.FormatTOML), "output format: toml or yaml")
	cmd.Flags().BoolVar(&withKeymap, "keymap", false, "include every binding in effect")
	cmd.Flags().StringVar(&script, "script", "", "Lua script to run first with --keymap (overrides plugin.script)")
	return cmd
}
