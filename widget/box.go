// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/latticeui/lattice/layout"
)

// Base holds the state common to all widgets. It implements every
// method of layout.Child except NaturalSize.
type Base struct {
	// Name identifies the widget in scenes and reports.
	Name string

	bounds image.Rectangle
	data   any
}

// SetBounds implements layout.Child.
func (b *Base) SetBounds(r image.Rectangle) { b.bounds = r }

// Bounds returns the bounds last assigned, relative to the parent.
func (b *Base) Bounds() image.Rectangle { return b.bounds }

// LayoutData implements layout.Child.
func (b *Base) LayoutData() any { return b.data }

// SetLayoutData implements layout.Child.
func (b *Base) SetLayoutData(d any) { b.data = d }

func (b *Base) base() *Base { return b }

// Box is a widget of fixed natural size.
type Box struct {
	Base
	Size image.Point
}

// NewBox returns a Box of w×h pixels.
func NewBox(w, h int) *Box {
	return &Box{Size: image.Point{X: w, Y: h}}
}

// NaturalSize implements layout.Child.
func (b *Box) NaturalSize(w, h layout.Hint, force bool) image.Point {
	return image.Point{X: w.Or(b.Size.X), Y: h.Or(b.Size.Y)}
}
