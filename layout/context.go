// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Child is an element positioned by a layout algorithm. The algorithms
// hold no reference to a Child beyond the current pass.
//
// Implementations must be comparable, typically by being pointers:
// algorithms use children as map keys to resolve references between
// siblings.
type Child interface {
	// NaturalSize returns the size the child prefers for the given
	// hints. It must be idempotent when force is false and nothing
	// about the child changed.
	NaturalSize(w, h Hint, force bool) image.Point
	// SetBounds positions the child relative to its container.
	SetBounds(r image.Rectangle)
	// LayoutData returns the per-child constraint record, or nil.
	LayoutData() any
	// SetLayoutData attaches a constraint record to the child.
	SetLayoutData(d any)
}

// Container is a parent element laid out by an Algorithm.
type Container interface {
	// Children returns the ordered children of the container.
	Children() []Child
	// ClientArea returns the area available to children.
	ClientArea() image.Rectangle
	// Algorithm returns the layout algorithm selected for the
	// container, or nil.
	Algorithm() Algorithm
}

// Algorithm computes container sizes and child bounds. Passes run
// synchronously and must not overlap for the same container.
type Algorithm interface {
	// ComputeSize returns the preferred size of c for the given hints.
	// An Exact hint is returned unchanged on its axis.
	ComputeSize(c Container, w, h Hint, flush bool) (image.Point, error)
	// Layout assigns bounds to the children of c inside its client
	// area.
	Layout(c Container, flush bool) error
	// FlushCache invalidates every cached measurement of ch.
	FlushCache(ch Child)
	// Policy identifies the algorithm.
	Policy() Policy
}

// ComputeSize returns the preferred size of c according to its
// algorithm. A container without an algorithm has zero size.
func ComputeSize(c Container, w, h Hint, flush bool) (image.Point, error) {
	alg := c.Algorithm()
	if alg == nil {
		return image.Point{X: w.Or(0), Y: h.Or(0)}, nil
	}
	return alg.ComputeSize(c, w, h, flush)
}

// Lay positions the children of c according to its algorithm.
func Lay(c Container, flush bool) error {
	alg := c.Algorithm()
	if alg == nil {
		return nil
	}
	return alg.Layout(c, flush)
}

// Invalidate discards the measurements cached for ch by the algorithm
// of c. Hosts call it whenever the content of ch changes.
func Invalidate(c Container, ch Child) {
	if alg := c.Algorithm(); alg != nil {
		alg.FlushCache(ch)
	}
}
