// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/scene"
	"github.com/latticeui/lattice/widget"
)

// Execute runs latticeview with the arguments of the process.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand returns the latticeview command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "latticeview",
		Short:        "latticeview lays out scene files",
		Long:         `latticeview lays out TOML or YAML scene files with the grid, form, flex and stack algorithms, and reports or renders the result.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newRenderCmd())
	return root
}

// sceneOpts holds the flags shared by the commands that lay out a
// scene. Zero values keep the settings of the scene file.
type sceneOpts struct {
	width  int     // root width in pixels
	height int     // root height in pixels
	scale  float32 // pixels per dp and sp
}

func (o *sceneOpts) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.width, "width", 0, "lay out at this width in pixels")
	cmd.Flags().IntVar(&o.height, "height", 0, "lay out at this height in pixels")
	cmd.Flags().Float32Var(&o.scale, "scale", 0, "pixels per dp and sp")
}

// load reads the scene at path, builds its widget tree and lays it
// out.
func (o *sceneOpts) load(ctx context.Context, path string) (*scene.Scene, *widget.Panel, error) {
	logger := loggerFromContext(ctx)
	s, err := scene.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if o.scale < 0 {
		return nil, nil, fmt.Errorf("invalid scale %g", o.scale)
	}
	if o.scale > 0 {
		s.Metric.PxPerDp, s.Metric.PxPerSp = o.scale, o.scale
	}
	root, err := s.Build(logger)
	if err != nil {
		return nil, nil, err
	}
	w, h := s.Hints()
	if o.width > 0 {
		w = layout.Exact(o.width)
	}
	if o.height > 0 {
		h = layout.Exact(o.height)
	}
	p := newProgress(logger)
	if err := root.Pack(w, h); err != nil {
		return nil, nil, err
	}
	p.done("laid out "+path, "size", root.Bounds().Size())
	return s, root, nil
}
