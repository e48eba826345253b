// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var opts sceneOpts
	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Print the bounds of every widget of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, root, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tbl, err := boundsTable(root)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			name := s.Name
			if name == "" {
				name = args[0]
			}
			sz := root.Bounds().Size()
			fmt.Fprintln(w, StyleTitle.Render(name)+" "+StyleDim.Render(fmt.Sprintf("%d×%d", sz.X, sz.Y)))
			fmt.Fprintln(w, tbl)
			return nil
		},
	}
	opts.addFlags(cmd)
	return cmd
}
