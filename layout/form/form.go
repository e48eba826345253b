// SPDX-License-Identifier: Unlicense OR MIT

/*
Package form implements the attachment layout: every edge of every
child is a linear equation in the size of the container, or a position
relative to an edge of a sibling.

	ok := widget.NewBox(80, 24)
	cancel := widget.NewBox(80, 24)
	ok.SetLayoutData(&form.Data{
		Right:  form.Percent(100, -8),
		Bottom: form.Percent(100, -8),
	})
	cancel.SetLayoutData(&form.Data{
		Right:  form.To(ok, 0, form.Default),
		Bottom: form.To(ok, 0, form.Far),
	})

Sibling references are resolved recursively. A reference cycle does
not fail: the child being resolved is marked while its siblings are
visited, and an edge reached again through the cycle is anchored on
whatever its opposite edge resolved to so far. The outcome depends on
the order the children are visited in; hosts relying on a particular
arrangement should break the cycle instead.
*/
package form

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/latticeui/lattice/internal/debuglog"
	"github.com/latticeui/lattice/layout"
)

// Layout positions children by solving their attachments.
type Layout struct {
	// MarginWidth is kept on the left and right of the children,
	// MarginHeight on the top and bottom.
	MarginWidth, MarginHeight int
	// Additional margins for individual edges.
	MarginLeft, MarginTop, MarginRight, MarginBottom int
	// Spacing separates a child from a sibling it is attached to
	// with Default alignment.
	Spacing int
	// Logger receives debug entries; nil discards them.
	Logger *log.Logger
}

// Policy implements layout.Algorithm.
func (l *Layout) Policy() layout.Policy { return layout.Attachment }

// FlushCache implements layout.Algorithm.
func (l *Layout) FlushCache(ch layout.Child) {
	if d, ok := ch.LayoutData().(*Data); ok {
		d.cache.Invalidate()
	}
}

// ComputeSize implements layout.Algorithm. An exact hint is the
// reported extent unless a child reaches past it.
func (l *Layout) ComputeSize(c layout.Container, w, h layout.Hint, flush bool) (image.Point, error) {
	m := l.margins()
	sz, err := l.layout(c, false, image.Point{}, inner(w, m.X), inner(h, m.Y), flush)
	if err != nil {
		return image.Point{}, err
	}
	return image.Point{X: w.AtLeast(sz.X), Y: h.AtLeast(sz.Y)}, nil
}

// Layout implements layout.Algorithm. Every edge of every child is
// solved before the first bounds are assigned: on error no child is
// moved.
func (l *Layout) Layout(c layout.Container, flush bool) error {
	r := c.ClientArea()
	origin := r.Min.Add(image.Point{
		X: l.MarginLeft + l.MarginWidth,
		Y: l.MarginTop + l.MarginHeight,
	})
	m := l.margins()
	_, err := l.layout(c, true, origin, layout.Exact(r.Dx()-m.X), layout.Exact(r.Dy()-m.Y), flush)
	return err
}

func (l *Layout) margins() image.Point {
	return image.Point{
		X: l.MarginLeft + 2*l.MarginWidth + l.MarginRight,
		Y: l.MarginTop + 2*l.MarginHeight + l.MarginBottom,
	}
}

// inner returns the hint left for the children of a container hinted
// h once margins m are taken off.
func inner(h layout.Hint, m int) layout.Hint {
	if h.IsNatural() {
		return h
	}
	return layout.Exact(h.Px() - m)
}

func (l *Layout) layout(c layout.Container, move bool, origin image.Point, width, height layout.Hint, flush bool) (image.Point, error) {
	lg := debuglog.Or(l.Logger)
	kids := c.Children()
	lg.Debug("attachment pass", "children", len(kids), "width", width, "height", height, "move", move)
	s := newSolver(kids, l.Spacing, flush, lg)
	var bounds []image.Rectangle
	if move {
		bounds = make([]image.Rectangle, len(kids))
	}
	var w, h int
	for i := range s.nodes {
		n := &s.nodes[i]
		if width.IsNatural() {
			cw, err := s.span(i, layout.Horizontal)
			if err != nil {
				return image.Point{}, err
			}
			w = max(w, cw)
			continue
		}
		n.needed = false
		x1, x2, err := s.solve(i, layout.Horizontal, width.Px())
		if err != nil {
			return image.Point{}, err
		}
		if n.data.Height.IsNatural() && !n.needed {
			// Both horizontal edges are pinned; the height of
			// wrapping content depends on the solved width.
			s.remeasure(i, max(0, x2-x1))
			lg.Debug("attachment re-measure", "child", i, "width", x2-x1, "size", n.size)
		}
		w = max(w, x2)
		if move {
			bounds[i].Min.X = origin.X + x1
			bounds[i].Max.X = origin.X + x2
		}
	}
	for i := range s.nodes {
		if height.IsNatural() {
			ch, err := s.span(i, layout.Vertical)
			if err != nil {
				return image.Point{}, err
			}
			h = max(h, ch)
			continue
		}
		y1, y2, err := s.solve(i, layout.Vertical, height.Px())
		if err != nil {
			return image.Point{}, err
		}
		h = max(h, y2)
		if move {
			bounds[i].Min.Y = origin.Y + y1
			bounds[i].Max.Y = origin.Y + y2
		}
	}
	if move {
		for i, ch := range kids {
			ch.SetBounds(bounds[i])
		}
	}
	return image.Point{X: w, Y: h}.Add(l.margins()), nil
}
