// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Stack lays out children on top of each other, according to an
// alignment direction.
type Stack struct {
	// Alignment is the direction to align children
	// smaller than the available space.
	Alignment Direction
	// Inset is kept free around the children.
	Inset Inset
}

// StackData is the constraint record of a Stack child.
type StackData struct {
	// Expanded children are sized to the whole client area.
	Expanded bool

	cache SizeCache
}

// Policy implements Algorithm.
func (s *Stack) Policy() Policy { return Fill }

// FlushCache implements Algorithm.
func (s *Stack) FlushCache(ch Child) {
	if d, ok := ch.LayoutData().(*StackData); ok {
		d.cache.Invalidate()
	}
}

// ComputeSize implements Algorithm. The size of a Stack is the
// maximum size of its children.
func (s *Stack) ComputeSize(c Container, w, h Hint, flush bool) (image.Point, error) {
	var maxSZ image.Point
	for _, ch := range c.Children() {
		sz := s.natural(ch, w, h, flush)
		maxSZ.X = max(maxSZ.X, sz.X)
		maxSZ.Y = max(maxSZ.Y, sz.Y)
	}
	maxSZ = maxSZ.Add(s.Inset.Size())
	return image.Point{X: w.Or(maxSZ.X), Y: h.Or(maxSZ.Y)}, nil
}

// Layout implements Algorithm. The order of the children determines
// their stacking order.
func (s *Stack) Layout(c Container, flush bool) error {
	area := s.Inset.Shrink(c.ClientArea())
	maxSZ := area.Size()
	for _, ch := range c.Children() {
		if s.data(ch).Expanded {
			ch.SetBounds(area)
			continue
		}
		sz := s.natural(ch, Natural, Natural, flush)
		sz.X = min(sz.X, maxSZ.X)
		sz.Y = min(sz.Y, maxSZ.Y)
		var p image.Point
		switch s.Alignment {
		case N, S, Center:
			p.X = (maxSZ.X - sz.X) / 2
		case NE, SE, E:
			p.X = maxSZ.X - sz.X
		}
		switch s.Alignment {
		case W, Center, E:
			p.Y = (maxSZ.Y - sz.Y) / 2
		case SW, S, SE:
			p.Y = maxSZ.Y - sz.Y
		}
		p = p.Add(area.Min)
		ch.SetBounds(image.Rectangle{Min: p, Max: p.Add(sz)})
	}
	return nil
}

func (s *Stack) data(ch Child) *StackData {
	d, ok := ch.LayoutData().(*StackData)
	if !ok {
		d = new(StackData)
		ch.SetLayoutData(d)
	}
	return d
}

func (s *Stack) natural(ch Child, w, h Hint, flush bool) image.Point {
	d := s.data(ch)
	if flush {
		d.cache.Invalidate()
	}
	inset := s.Inset.Size()
	if !w.IsNatural() {
		w = Exact(w.Px() - inset.X)
	}
	if !h.IsNatural() {
		h = Exact(h.Px() - inset.Y)
	}
	q := Hints{W: w, H: h}
	return d.cache.Get(ch, q, Hints{}, false)
}
