package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dshills/vimfocus/internal/focus"
	"github.com/dshills/vimfocus/internal/page"
)

// graphNode is the JSON form of one graph node.
type graphNode struct {
	ID        string            `json:"id"`
	Tag       string            `json:"tag"`
	Label     string            `json:"label"`
	Rect      focus.Rect        `json:"rect"`
	Eligible  bool              `json:"eligible"`
	Anchor    bool              `json:"anchor,omitempty"`
	Neighbors map[string]string `json:"neighbors"`
}

func newGraphCommand(g *globals) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph <page.html>",
		Short: "Print the focus graph of a page",
		Long: `Print every focusable element of the page with its rectangle and its
left, right, up and down neighbors.

Examples:
  vimfocus graph form.html
  vimfocus graph form.html --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := g.openSession(args[0], "", nil)
			if err != nil {
				return err
			}
			defer s.Close()

			graph := s.app.Graph()
			if err := graph.CheckSymmetry(); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			nodes := graphNodes(graph.Snapshot())
			switch format {
			case "text":
				return writeGraphText(cmd.OutOrStdout(), nodes)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(nodes)
			default:
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}

func graphNodes(snapshot []focus.NodeInfo) []graphNode {
	nodes := make([]graphNode, 0, len(snapshot))
	for _, info := range snapshot {
		el := info.Element.(*page.Element)
		n := graphNode{
			ID:        el.ID(),
			Tag:       el.Tag(),
			Label:     el.Label(),
			Rect:      info.Rect,
			Eligible:  focus.CanReceiveFocus(el),
			Anchor:    info.Anchor,
			Neighbors: make(map[string]string),
		}
		for _, d := range focus.Directions {
			if nb := info.Neighbors[d]; nb != nil {
				n.Neighbors[d.String()] = nb.(*page.Element).ID()
			}
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func writeGraphText(w io.Writer, nodes []graphNode) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTAG\tRECT\tLEFT\tRIGHT\tUP\tDOWN\tNOTE")
	for _, n := range nodes {
		note := ""
		switch {
		case n.Anchor:
			note = "anchor"
		case !n.Eligible:
			note = "skipped"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			n.ID, n.Tag, n.Rect,
			orDash(n.Neighbors["left"]), orDash(n.Neighbors["right"]),
			orDash(n.Neighbors["up"]), orDash(n.Neighbors["down"]),
			note,
		)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
