// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"image"

	"github.com/latticeui/lattice/layout"
)

// Data is the constraint record of a child laid out by a form
// Layout. A nil attachment leaves its edge to be derived from the
// opposite edge and the natural size of the child.
type Data struct {
	Left, Right, Top, Bottom *Attachment

	// Width and Height replace the natural size when Exact.
	Width, Height layout.Hint

	cache layout.SizeCache
}

// edge returns the attachment for the near or far edge along a.
func (d *Data) edge(a layout.Axis, far bool) *Attachment {
	switch {
	case a == layout.Horizontal && !far:
		return d.Left
	case a == layout.Horizontal:
		return d.Right
	case !far:
		return d.Top
	default:
		return d.Bottom
	}
}

func (d *Data) hints() layout.Hints {
	return layout.Hints{W: d.Width, H: d.Height}
}

// measure returns the size of ch for q, replacing each axis by the
// declared hint when it is Exact.
func (d *Data) measure(ch layout.Child, q layout.Hints, flush bool) image.Point {
	sz := d.cache.Get(ch, q, d.hints(), flush)
	return image.Point{X: d.Width.Or(sz.X), Y: d.Height.Or(sz.Y)}
}
