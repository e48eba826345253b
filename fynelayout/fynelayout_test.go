// SPDX-License-Identifier: Unlicense OR MIT

package fynelayout

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/latticeui/lattice/layout/form"
	"github.com/latticeui/lattice/layout/grid"
)

// rect is a bare canvas object with a fixed minimum size.
type rect struct {
	min    fyne.Size
	pos    fyne.Position
	size   fyne.Size
	hidden bool
}

func (r *rect) MinSize() fyne.Size         { return r.min }
func (r *rect) Move(p fyne.Position)       { r.pos = p }
func (r *rect) Position() fyne.Position    { return r.pos }
func (r *rect) Resize(s fyne.Size)         { r.size = s }
func (r *rect) Size() fyne.Size            { return r.size }
func (r *rect) Hide()                      { r.hidden = true }
func (r *rect) Visible() bool              { return !r.hidden }
func (r *rect) Show()                      { r.hidden = false }
func (r *rect) Refresh()                   {}

func newRect(w, h float32) *rect {
	return &rect{min: fyne.NewSize(w, h)}
}

func objects(rs ...*rect) []fyne.CanvasObject {
	var objs []fyne.CanvasObject
	for _, r := range rs {
		objs = append(objs, r)
	}
	return objs
}

func TestGrid(t *testing.T) {
	g := grid.New(2)
	g.HSpacing = 4
	l := New(g)
	label := newRect(30, 10)
	entry := newRect(50.5, 12)
	l.SetData(entry, &grid.Data{HAlign: grid.Fill, GrabHorizontal: true})
	objs := objects(label, entry)

	assert.Equal(t, fyne.NewSize(85, 12), l.MinSize(objs))

	l.Layout(objs, fyne.NewSize(200, 40))
	assert.Equal(t, fyne.NewPos(0, 0), label.pos)
	assert.Equal(t, fyne.NewSize(30, 10), label.size)
	assert.Equal(t, fyne.NewPos(34, 0), entry.pos)
	assert.Equal(t, fyne.NewSize(166, 12), entry.size)
}

func TestHiddenObjects(t *testing.T) {
	l := New(grid.New(1))
	a := newRect(10, 10)
	hidden := newRect(90, 90)
	hidden.Hide()
	assert.Equal(t, fyne.NewSize(10, 10), l.MinSize(objects(a, hidden)))
}

func TestRemovedObjects(t *testing.T) {
	l := New(grid.New(1))
	a, b := newRect(10, 10), newRect(20, 20)
	l.SetData(b, &grid.Data{HAlign: grid.Fill})
	b.Hide()
	l.Layout(objects(a, b), fyne.NewSize(50, 50))
	assert.Len(t, l.objs, 2, "hidden objects keep their records")

	l.Layout(objects(a), fyne.NewSize(50, 50))
	assert.Len(t, l.objs, 1)
	assert.NotContains(t, l.objs, fyne.CanvasObject(b))

	for i := 0; i < 10; i++ {
		l.MinSize(objects(a, newRect(5, 5)))
	}
	assert.Len(t, l.objs, 2)
}

func TestFormSiblings(t *testing.T) {
	l := New(&form.Layout{Spacing: 6})
	ok := newRect(80, 24)
	cancel := newRect(80, 24)
	l.SetData(ok, &form.Data{Right: form.Percent(100, -8), Bottom: form.Percent(100, -8)})
	l.SetData(cancel, &form.Data{
		Right:  form.To(l.Child(ok), 0, form.Default),
		Bottom: form.To(l.Child(ok), 0, form.Far),
	})

	l.Layout(objects(ok, cancel), fyne.NewSize(300, 100))
	assert.Equal(t, fyne.NewPos(212, 68), ok.pos)
	assert.Equal(t, fyne.NewPos(126, 68), cancel.pos)
}

func TestRefresh(t *testing.T) {
	l := New(grid.New(1))
	a := newRect(10, 10)
	objs := objects(a)
	assert.Equal(t, float32(10), l.MinSize(objs).Width)

	a.min = fyne.NewSize(25, 10)
	l.Refresh(a)
	assert.Equal(t, float32(25), l.MinSize(objs).Width)
}
