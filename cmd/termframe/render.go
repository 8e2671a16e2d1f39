package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "render <scene>",
		Short: "Render a scene once to stdout",
		Long: `Render lays out the scene and writes one full frame. When stdout is a terminal
and interactive output is enabled the screen is cleared first; otherwise the
frame is encoded offscreen with no clear or cursor sequences.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := a.cfg.Interactive && isTerminal(cmd.OutOrStdout())
			r, s, err := a.loadScene(cmd, args[0], interactive)
			if err != nil {
				return err
			}
			el, err := s.Element(a.table)
			if err != nil {
				return fmt.Errorf("scene %s: %w", args[0], err)
			}
			l := r.Layout(el)

			if plain {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), r.Compose(l).Text())
				return err
			}

			var out []byte
			if interactive {
				out = r.Render(l)
			} else {
				out = r.RenderOffscreen(l)
			}
			return r.Flush(sinkFor(cmd), out)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the frame as plain text without escape sequences")
	return cmd
}
