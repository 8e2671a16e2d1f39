package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termframe/render"
)

func newDiffCmd(a *app) *cobra.Command {
	var emit bool

	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Compare the frames of two scenes",
		Long: `Diff renders both scenes on the same surface and reports the changed rows and
cell count. With --emit it instead writes the escape sequence stream that turns
the first frame into the second.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, before, err := a.loadScene(cmd, args[0], false)
			if err != nil {
				return err
			}
			after, err := loadElement(a, args[1])
			if err != nil {
				return err
			}
			first, err := before.Element(a.table)
			if err != nil {
				return fmt.Errorf("scene %s: %w", args[0], err)
			}

			l1, l2 := r.Layout(first), r.Layout(after)
			out := cmd.OutOrStdout()

			if emit {
				r.RenderDiff(l1)
				return r.Flush(sinkFor(cmd), r.RenderDiff(l2))
			}

			f1, f2 := r.Compose(l1), r.Compose(l2)
			changed := render.ChangedCells(f1, f2)
			if changed == 0 {
				_, err := fmt.Fprintln(out, "frames identical")
				return err
			}
			if _, err := fmt.Fprint(out, render.TextDiff(f1.Text(), f2.Text())); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d cells changed\n", changed)
			return err
		},
	}

	cmd.Flags().BoolVar(&emit, "emit", false, "write the minimal update sequence instead of a report")
	return cmd
}
