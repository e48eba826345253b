// SPDX-License-Identifier: Unlicense OR MIT

/*
Package fynelayout lets fyne containers use the layout algorithms.

	g := grid.New(2)
	l := fynelayout.New(g)
	l.SetData(name, &grid.Data{VAlign: grid.Center})
	l.SetData(entry, &grid.Data{HAlign: grid.Fill, GrabHorizontal: true})
	c := container.New(l, name, entry)

Objects report their fyne minimum size, rounded up to whole pixels, as
their natural size. Hidden objects take no part in the layout, and
objects removed from the container are forgotten along with their
constraint records.
*/
package fynelayout

import (
	"image"
	"math"

	"fyne.io/fyne/v2"

	"github.com/latticeui/lattice/layout"
)

// Layout is a fyne.Layout backed by a layout.Algorithm.
type Layout struct {
	alg  layout.Algorithm
	objs map[fyne.CanvasObject]*object
}

var _ fyne.Layout = (*Layout)(nil)

// New returns a fyne.Layout positioning objects with alg.
func New(alg layout.Algorithm) *Layout {
	return &Layout{alg: alg, objs: make(map[fyne.CanvasObject]*object)}
}

// SetData attaches the constraint record of the layout algorithm to
// o, such as a *grid.Data or a *form.Data.
func (l *Layout) SetData(o fyne.CanvasObject, data any) {
	l.object(o).data = data
}

// Child returns the layout child standing for o, to be used as the
// Ref of an attachment.
func (l *Layout) Child(o fyne.CanvasObject) layout.Child {
	return l.object(o)
}

// Refresh discards the cached size of o. Call it when the minimum
// size of o changes.
func (l *Layout) Refresh(o fyne.CanvasObject) {
	if ob, ok := l.objs[o]; ok {
		l.alg.FlushCache(ob)
	}
}

// Layout implements fyne.Layout.
func (l *Layout) Layout(objs []fyne.CanvasObject, size fyne.Size) {
	c := l.container(objs, size)
	if err := layout.Lay(c, false); err != nil {
		fyne.LogError("lattice layout failed", err)
	}
}

// MinSize implements fyne.Layout.
func (l *Layout) MinSize(objs []fyne.CanvasObject) fyne.Size {
	c := l.container(objs, fyne.Size{})
	sz, err := layout.ComputeSize(c, layout.Natural, layout.Natural, false)
	if err != nil {
		fyne.LogError("lattice size computation failed", err)
		return fyne.Size{}
	}
	return fyne.NewSize(float32(sz.X), float32(sz.Y))
}

func (l *Layout) object(o fyne.CanvasObject) *object {
	ob, ok := l.objs[o]
	if !ok {
		ob = &object{o: o}
		l.objs[o] = ob
	}
	return ob
}

func (l *Layout) container(objs []fyne.CanvasObject, size fyne.Size) *container {
	c := &container{
		alg:  l.alg,
		area: image.Rect(0, 0, int(size.Width), int(size.Height)),
	}
	present := make(map[fyne.CanvasObject]bool, len(objs))
	for _, o := range objs {
		present[o] = true
		if !o.Visible() {
			continue
		}
		c.kids = append(c.kids, l.object(o))
	}
	for o := range l.objs {
		if !present[o] {
			delete(l.objs, o)
		}
	}
	return c
}

type container struct {
	alg  layout.Algorithm
	kids []layout.Child
	area image.Rectangle
}

func (c *container) Children() []layout.Child    { return c.kids }
func (c *container) ClientArea() image.Rectangle { return c.area }
func (c *container) Algorithm() layout.Algorithm { return c.alg }

// object adapts a fyne.CanvasObject to layout.Child.
type object struct {
	o    fyne.CanvasObject
	data any
}

func (ob *object) NaturalSize(w, h layout.Hint, force bool) image.Point {
	ms := ob.o.MinSize()
	return image.Point{
		X: w.Or(int(math.Ceil(float64(ms.Width)))),
		Y: h.Or(int(math.Ceil(float64(ms.Height)))),
	}
}

func (ob *object) SetBounds(r image.Rectangle) {
	ob.o.Move(fyne.NewPos(float32(r.Min.X), float32(r.Min.Y)))
	ob.o.Resize(fyne.NewSize(float32(r.Dx()), float32(r.Dy())))
}

func (ob *object) LayoutData() any     { return ob.data }
func (ob *object) SetLayoutData(d any) { ob.data = d }
