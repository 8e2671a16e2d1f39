package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termframe/layout"
)

func newLayoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <scene>",
		Short: "Print the computed layout tree as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, s, err := a.loadScene(cmd, args[0], false)
			if err != nil {
				return err
			}
			el, err := s.Element(a.table)
			if err != nil {
				return fmt.Errorf("scene %s: %w", args[0], err)
			}
			return layout.WriteDebugJSON(r.Layout(el), cmd.OutOrStdout())
		},
	}
}
