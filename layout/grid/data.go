// SPDX-License-Identifier: Unlicense OR MIT

package grid

import (
	"image"

	"github.com/latticeui/lattice/layout"
)

// Align is the placement of a child inside its cell.
type Align uint8

const (
	// Begin places the child at the left or top of its cell.
	Begin Align = iota
	// Center centers the child in its cell.
	Center
	// End places the child at the right or bottom of its cell.
	End
	// Fill stretches the child to its cell.
	Fill
)

// Data is the constraint record of a child laid out by a grid Layout.
// The zero Data occupies a single cell, keeps its natural size and
// sits at the top left of the cell.
type Data struct {
	// ColumnSpan and RowSpan are the number of cells the child
	// occupies. Values below 1 mean 1; a column span wider than the
	// grid is clamped to the number of columns.
	ColumnSpan, RowSpan int
	HAlign, VAlign      Align
	// GrabHorizontal and GrabVertical mark the child's column or row
	// as eligible to absorb the space left in the container.
	GrabHorizontal, GrabVertical bool
	// WidthHint and HeightHint replace the natural size when Exact.
	WidthHint, HeightHint layout.Hint
	// MinWidth and MinHeight are the sizes a grabbing column or row
	// never shrinks below.
	MinWidth, MinHeight int
	// HIndent and VIndent offset the child inside its cell.
	HIndent, VIndent int
	// Exclude removes the child from the layout. Excluded children
	// are neither sized nor moved.
	Exclude bool

	cache layout.SizeCache
}

func (d *Data) hints() layout.Hints {
	return layout.Hints{W: d.WidthHint, H: d.HeightHint}
}

// measure returns the size of ch for the hints w and h. An Exact hint
// is the size on its axis.
func (d *Data) measure(ch layout.Child, w, h layout.Hint, flush bool) image.Point {
	sz := d.cache.Get(ch, layout.Hints{W: w, H: h}, d.hints(), flush)
	return image.Point{X: w.Or(sz.X), Y: h.Or(sz.Y)}
}

func (a Align) String() string {
	switch a {
	case Begin:
		return "Begin"
	case Center:
		return "Center"
	case End:
		return "End"
	case Fill:
		return "Fill"
	default:
		panic("unreachable")
	}
}
