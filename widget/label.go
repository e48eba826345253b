// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/text"
)

// Label is a widget of wrapping text. Offered a width, it breaks its
// text to fit and grows in height.
type Label struct {
	Base
	Text string
	// Alignment specify the text alignment.
	Alignment text.Alignment
	// Inset is kept free around the text.
	Inset layout.Inset
	// Shaper measures the text. Labels may share a Shaper.
	Shaper *text.Shaper
}

var defaultShaper = new(text.Shaper)

// NewLabel returns a label measured with the default face.
func NewLabel(txt string) *Label {
	return &Label{Text: txt}
}

// NaturalSize implements layout.Child.
func (l *Label) NaturalSize(w, h layout.Hint, force bool) image.Point {
	inset := l.Inset.Size()
	width := w
	if !w.IsNatural() {
		width = layout.Exact(max(1, w.Px()-inset.X))
	}
	sz := l.Lines(width).Size().Add(inset)
	return image.Point{X: w.Or(sz.X), Y: h.Or(sz.Y)}
}

// Lines returns the text broken into lines for the given width.
func (l *Label) Lines(width layout.Hint) *text.Layout {
	s := l.Shaper
	if s == nil {
		s = defaultShaper
	}
	return s.Layout(l.Text, width)
}
