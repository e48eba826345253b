// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/basicfont"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/widget"
)

const (
	colorPanel     = "#c8c8c8"
	colorBoxFill   = "#d6e6f5"
	colorBoxStroke = "#4a7fb5"
	colorText      = "#202020"
)

func newRenderCmd() *cobra.Command {
	var (
		opts   sceneOpts
		output string
	)
	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render the layout of a scene to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, root, err := opts.load(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			dc, err := draw(root)
			if err != nil {
				return err
			}
			if err := dc.SavePNG(output); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "wrote %s", output)
			return nil
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: the scene path with a .png extension)")
	return cmd
}

// draw paints the outlines of panels, the boxes and the text of the
// labels of a laid out tree.
func draw(root *widget.Panel) (*gg.Context, error) {
	sz := root.Bounds().Size()
	dc := gg.NewContext(max(sz.X, 1), max(sz.Y, 1))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetLineWidth(1)
	err := widget.Walk(root, func(n widget.Node) error {
		r := n.Bounds
		x, y := float64(r.Min.X), float64(r.Min.Y)
		w, h := float64(r.Dx()), float64(r.Dy())
		switch n.Kind {
		case widget.KindPanel:
			if n.Depth == 0 {
				return nil
			}
			dc.SetHexColor(colorPanel)
			dc.DrawRectangle(x+.5, y+.5, w-1, h-1)
			dc.Stroke()
		case widget.KindBox:
			dc.SetHexColor(colorBoxFill)
			dc.DrawRectangle(x, y, w, h)
			dc.Fill()
			dc.SetHexColor(colorBoxStroke)
			dc.DrawRectangle(x+.5, y+.5, w-1, h-1)
			dc.Stroke()
		case widget.KindLabel:
			drawLabel(dc, n.Child.(*widget.Label), r)
		}
		return nil
	})
	return dc, err
}

func drawLabel(dc *gg.Context, l *widget.Label, r image.Rectangle) {
	area := l.Inset.Shrink(r)
	if area.Dx() <= 0 {
		return
	}
	dc.SetHexColor(colorText)
	lt := l.Lines(layout.Exact(area.Dx()))
	for i, line := range lt.Lines {
		x := area.Min.X + l.Alignment.Offset(line.Width, area.Dx())
		y := area.Min.Y + i*lt.LineHeight + lt.Baseline
		dc.DrawString(line.Text, float64(x), float64(y))
	}
}
