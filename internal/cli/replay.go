package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/vimfocus/internal/app"
	"github.com/dshills/vimfocus/internal/input/macro"
)

// replayStep is the JSON form of one replayed key.
type replayStep struct {
	Key      string `json:"key"`
	Result   string `json:"result"`
	Action   string `json:"action,omitempty"`
	Count    int    `json:"count,omitempty"`
	Suppress bool   `json:"suppress"`
	Focused  string `json:"focused"`
	Mode     string `json:"mode"`
	Pending  string `json:"pending,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newReplayCommand(g *globals) *cobra.Command {
	var (
		script string
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "replay <page.html> [keys...]",
		Short: "Feed keys to a page without a terminal",
		Long: `Dispatch a sequence of key combinations against a page and print the
outcome, the focused element and the mode after each one. Keys are given as
arguments or loaded from a macro file recorded with "vimfocus run --record".

Examples:
  vimfocus replay form.html l l j i
  vimfocus replay form.html 3 l C-Tab
  vimfocus replay form.html --file session.yaml --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := replayMacro(file, args[1:])
			if err != nil {
				return err
			}

			s, err := g.openSession(args[0], script, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			steps, err := s.app.Replay(cmd.Context(), m)
			if err != nil {
				return err
			}

			out := make([]replayStep, len(steps))
			for i, st := range steps {
				out[i] = toReplayStep(st)
			}

			switch format {
			case "text":
				return writeReplayText(cmd.OutOrStdout(), out)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&script, "script", "", "Lua script to run at startup (overrides plugin.script)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "macro file to replay")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

// replayMacro builds the macro from a file or from key arguments.
func replayMacro(file string, keys []string) (macro.Macro, error) {
	switch {
	case file != "" && len(keys) > 0:
		return macro.Macro{}, errors.New("give keys or --file, not both")
	case file != "":
		return macro.Load(file)
	case len(keys) == 0:
		return macro.Macro{}, errors.New("no keys to replay")
	}

	m := macro.Macro{Name: "args", Keys: keys}
	if _, err := m.Events(); err != nil {
		return macro.Macro{}, err
	}
	return m, nil
}

func toReplayStep(st app.Step) replayStep {
	out := replayStep{
		Key:      st.Combo,
		Result:   st.Outcome.Result.String(),
		Action:   st.Outcome.Action,
		Count:    st.Outcome.Count,
		Suppress: st.Outcome.Suppress,
		Focused:  st.Focused,
		Mode:     st.Mode.String(),
		Pending:  st.Pending,
	}
	if st.Outcome.Err != nil {
		out.Error = st.Outcome.Err.Error()
	}
	return out
}

func writeReplayText(w io.Writer, steps []replayStep) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "KEY\tRESULT\tACTION\tDEFAULT\tFOCUSED\tMODE\tPENDING")
	for _, st := range steps {
		def := "prevented"
		if !st.Suppress {
			def = "allowed"
		}
		action := st.Action
		if st.Count > 1 {
			action = fmt.Sprintf("%s x%d", action, st.Count)
		}
		if st.Error != "" {
			action += " (" + st.Error + ")"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			st.Key, st.Result, orDash(action), def, orDash(st.Focused), st.Mode, orDash(st.Pending))
	}
	return tw.Flush()
}
