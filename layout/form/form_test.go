// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"errors"
	"image"
	"testing"

	"github.com/latticeui/lattice/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type box struct {
	size   image.Point
	wrap   bool
	bounds image.Rectangle
	moves  int
	data   any
}

func (b *box) NaturalSize(w, h layout.Hint, force bool) image.Point {
	sz := b.size
	if b.wrap && !w.IsNatural() && w.Px() > 0 {
		area := b.size.X * b.size.Y
		sz = image.Point{X: w.Px(), Y: (area + w.Px() - 1) / w.Px()}
	}
	return image.Point{X: w.Or(sz.X), Y: h.Or(sz.Y)}
}

func (b *box) SetBounds(r image.Rectangle) { b.bounds = r; b.moves++ }
func (b *box) LayoutData() any             { return b.data }
func (b *box) SetLayoutData(d any)         { b.data = d }

type panel struct {
	kids []layout.Child
	area image.Rectangle
	alg  layout.Algorithm
}

func (p *panel) Children() []layout.Child    { return p.kids }
func (p *panel) ClientArea() image.Rectangle { return p.area }
func (p *panel) Algorithm() layout.Algorithm { return p.alg }

func newBox(w, h int) *box {
	return &box{size: image.Pt(w, h)}
}

func newPanel(l *Layout, w, h int, kids ...*box) *panel {
	p := &panel{alg: l, area: image.Rect(0, 0, w, h)}
	for _, k := range kids {
		p.kids = append(p.kids, k)
	}
	return p
}

func TestStretch(t *testing.T) {
	a := newBox(10, 10)
	a.data = &Data{Left: Percent(0, 0), Right: Percent(100, 0)}
	p := newPanel(&Layout{}, 200, 100, a)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(0, 0, 200, 10), a.bounds)
}

func TestDivideByZero(t *testing.T) {
	ok := newBox(10, 10)
	bad := newBox(10, 10)
	bad.data = &Data{Left: Fraction(10, 0, 0)}
	p := newPanel(&Layout{}, 200, 100, ok, bad)

	err := layout.Lay(p, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivideByZero))
	assert.Zero(t, ok.moves, "no bounds are applied")
	assert.Zero(t, bad.moves, "no bounds are applied")

	_, err = layout.ComputeSize(p, layout.Natural, layout.Natural, false)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestDefaults(t *testing.T) {
	a := newBox(30, 20)
	p := newPanel(&Layout{}, 200, 100, a)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(0, 0, 30, 20), a.bounds)
	assert.IsType(t, &Data{}, a.data)
}

func TestNaturalSize(t *testing.T) {
	tests := []struct {
		name  string
		left  *Attachment
		right *Attachment
		width int
	}{
		{"offset from origin", Percent(0, 5), nil, 85},
		{"pinned to far edge", nil, Percent(100, -8), 88},
		{"starts at fraction", Percent(50, 0), nil, 160},
		{"ends before fraction", nil, Percent(50, -10), 180},
		{"spans fraction", Percent(0, 0), Percent(50, 0), 160},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newBox(80, 10)
			a.data = &Data{Left: tt.left, Right: tt.right}
			p := newPanel(&Layout{}, 0, 0, a)
			sz, err := layout.ComputeSize(p, layout.Natural, layout.Natural, false)
			require.NoError(t, err)
			assert.Equal(t, tt.width, sz.X)

			// The natural size fits the child exactly.
			p.area = image.Rect(0, 0, sz.X, sz.Y)
			require.NoError(t, layout.Lay(p, false))
			assert.Equal(t, 80, a.bounds.Dx())
			assert.LessOrEqual(t, a.bounds.Max.X, sz.X)
			assert.GreaterOrEqual(t, a.bounds.Min.X, 0)
		})
	}
}

func TestMargins(t *testing.T) {
	l := &Layout{MarginWidth: 4, MarginHeight: 2, MarginLeft: 1, MarginBottom: 3}
	a := newBox(10, 10)
	p := newPanel(l, 100, 50, a)

	sz, err := layout.ComputeSize(p, layout.Natural, layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(19, 17), sz)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(5, 2, 15, 12), a.bounds)
}

func TestSiblings(t *testing.T) {
	anchor := newBox(100, 20)
	anchor.data = &Data{Left: Percent(0, 10), Top: Percent(0, 10)}
	tests := []struct {
		name string
		data func() *Data
		want image.Rectangle
	}{
		{
			"after",
			func() *Data { return &Data{Left: To(anchor, 0, Default), Top: To(anchor, 0, Near)} },
			image.Rect(115, 10, 155, 30),
		},
		{
			"below",
			func() *Data { return &Data{Left: To(anchor, 0, Near), Top: To(anchor, 0, Default)} },
			image.Rect(10, 35, 50, 55),
		},
		{
			"near with offset",
			func() *Data { return &Data{Left: To(anchor, 3, Near), Top: To(anchor, 0, Far)} },
			image.Rect(13, 35, 53, 55),
		},
		{
			"aligned far",
			func() *Data { return &Data{Right: To(anchor, 0, Far), Bottom: To(anchor, 0, Far)} },
			image.Rect(70, 10, 110, 30),
		},
		{
			"before",
			func() *Data { return &Data{Right: To(anchor, 0, Default), Top: To(anchor, 0, Near)} },
			image.Rect(-35, 10, 5, 30),
		},
		{
			"centered",
			func() *Data { return &Data{Left: To(anchor, 0, Center), Top: To(anchor, 0, Center)} },
			image.Rect(40, 10, 80, 30),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBox(40, 20)
			b.data = tt.data()
			p := newPanel(&Layout{Spacing: 5}, 300, 200, anchor, b)
			require.NoError(t, layout.Lay(p, false))
			assert.Equal(t, image.Rect(10, 10, 110, 30), anchor.bounds)
			assert.Equal(t, tt.want, b.bounds)
		})
	}
}

func TestForeignReference(t *testing.T) {
	stranger := newBox(50, 50)
	a := newBox(20, 20)
	a.data = &Data{Left: To(stranger, 7, Default)}
	p := newPanel(&Layout{Spacing: 5}, 100, 100, a)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(7, 0, 27, 20), a.bounds)
}

func TestCycle(t *testing.T) {
	a := newBox(50, 10)
	b := newBox(50, 10)
	a.data = &Data{Left: To(b, 0, Default)}
	b.data = &Data{Left: To(a, 0, Default)}
	p := newPanel(&Layout{}, 300, 100, a, b)

	sz, err := layout.ComputeSize(p, layout.Natural, layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(150, 10), sz)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(100, 0, 150, 10), a.bounds)
	assert.Equal(t, image.Rect(50, 0, 100, 10), b.bounds)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(100, 0, 150, 10), a.bounds)
	assert.Equal(t, image.Rect(50, 0, 100, 10), b.bounds)
}

func TestSelfReference(t *testing.T) {
	a := newBox(50, 10)
	a.data = &Data{Left: To(a, 0, Default)}
	p := newPanel(&Layout{}, 300, 100, a)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(50, 0, 100, 10), a.bounds)
}

func TestRemeasure(t *testing.T) {
	text := &box{size: image.Pt(100, 10), wrap: true}
	text.data = &Data{Left: Percent(0, 0), Right: Percent(100, 0)}
	p := newPanel(&Layout{}, 50, 100, text)

	sz, err := layout.ComputeSize(p, layout.Exact(50), layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(50, 20), sz)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(0, 0, 50, 20), text.bounds)
}

func TestExactHints(t *testing.T) {
	a := newBox(10, 10)
	a.data = &Data{Width: layout.Exact(40), Height: layout.Exact(15)}
	p := newPanel(&Layout{}, 100, 100, a)

	sz, err := layout.ComputeSize(p, layout.Natural, layout.Exact(99), false)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(40, 99), sz)

	require.NoError(t, layout.Lay(p, false))
	assert.Equal(t, image.Rect(0, 0, 40, 15), a.bounds)
}

func TestExactHintsOverflow(t *testing.T) {
	a := newBox(20, 10)
	a.data = &Data{Right: Percent(100, 0)}
	l := &Layout{MarginWidth: 3}
	p := newPanel(l, 0, 0, a)

	sz, err := layout.ComputeSize(p, layout.Exact(50), layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(50, 10), sz, "margins come off the hint")

	a.data = &Data{Left: Percent(100, 0)}
	sz, err = layout.ComputeSize(p, layout.Exact(50), layout.Natural, true)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(70, 10), sz, "a child past the hint widens the container")
}

func TestFlush(t *testing.T) {
	a := newBox(10, 10)
	p := newPanel(&Layout{}, 100, 100, a)
	sz, err := layout.ComputeSize(p, layout.Natural, layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, 10, sz.X)

	a.size = image.Pt(20, 10)
	sz, err = layout.ComputeSize(p, layout.Natural, layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, 10, sz.X, "stale until invalidated")

	layout.Invalidate(p, a)
	sz, err = layout.ComputeSize(p, layout.Natural, layout.Natural, false)
	require.NoError(t, err)
	assert.Equal(t, 20, sz.X)
}

func BenchmarkLayout(b *testing.B) {
	var kids []*box
	for i := 0; i < 64; i++ {
		k := newBox(20+i%5, 10)
		d := &Data{Top: Percent(0, 0)}
		if i > 0 {
			d.Left = To(kids[i-1], 0, Default)
			d.Top = To(kids[i-1], 0, Center)
		}
		k.data = d
		kids = append(kids, k)
	}
	p := newPanel(&Layout{Spacing: 2}, 4000, 100, kids...)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := layout.Lay(p, false); err != nil {
			b.Fatal(err)
		}
	}
}
