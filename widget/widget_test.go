// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"errors"
	"image"
	"testing"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/layout/form"
	"github.com/latticeui/lattice/layout/grid"
	"github.com/latticeui/lattice/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelNaturalSize(t *testing.T) {
	l := widget.NewLabel("hello world")
	assert.Equal(t, image.Pt(77, 13), l.NaturalSize(layout.Natural, layout.Natural, false))
	assert.Equal(t, image.Pt(50, 26), l.NaturalSize(layout.Exact(50), layout.Natural, false))
	assert.Equal(t, image.Pt(50, 5), l.NaturalSize(layout.Exact(50), layout.Exact(5), false))

	l.Inset = layout.UniformInset(4)
	assert.Equal(t, image.Pt(85, 21), l.NaturalSize(layout.Natural, layout.Natural, false))
	assert.Equal(t, image.Pt(58, 34), l.NaturalSize(layout.Exact(58), layout.Natural, false))
}

func TestLabelRewrapInGrid(t *testing.T) {
	l := widget.NewLabel("hello world")
	l.SetLayoutData(&grid.Data{HAlign: grid.Fill, GrabHorizontal: true})
	root := widget.NewPanel(grid.New(1), l)

	require.NoError(t, root.Pack(layout.Exact(50), layout.Natural))
	assert.Equal(t, image.Rect(0, 0, 50, 26), root.Bounds())
	assert.Equal(t, image.Rect(0, 0, 50, 26), l.Bounds())
}

func TestNestedPanels(t *testing.T) {
	left := widget.NewBox(30, 20)
	inner := widget.NewBox(10, 10)
	inner.Name = "inner"
	inner.SetLayoutData(&form.Data{Left: form.Percent(0, 5)})
	right := widget.NewPanel(&form.Layout{}, inner)
	root := widget.NewPanel(grid.New(2), left, right)

	require.NoError(t, root.Pack(layout.Natural, layout.Natural))
	assert.Equal(t, image.Rect(0, 0, 45, 20), root.Bounds())
	assert.Equal(t, image.Rect(30, 0, 45, 10), right.Bounds())
	assert.Equal(t, image.Rect(5, 0, 15, 10), inner.Bounds())

	var nodes []widget.Node
	require.NoError(t, widget.Walk(root, func(n widget.Node) error {
		nodes = append(nodes, n)
		return nil
	}))
	require.Len(t, nodes, 4)
	assert.Equal(t, widget.KindPanel, nodes[0].Kind)
	assert.Equal(t, widget.KindBox, nodes[1].Kind)
	assert.Equal(t, "inner", nodes[3].Name)
	assert.Equal(t, 2, nodes[3].Depth)
	assert.Equal(t, image.Rect(35, 0, 45, 10), nodes[3].Bounds)
}

func TestWalkStops(t *testing.T) {
	root := widget.NewPanel(grid.New(1), widget.NewBox(1, 1), widget.NewBox(1, 1))
	stop := errors.New("stop")
	visits := 0
	err := widget.Walk(root, func(n widget.Node) error {
		visits++
		if n.Kind == widget.KindBox {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visits)
}

func TestPanelError(t *testing.T) {
	bad := widget.NewBox(10, 10)
	bad.SetLayoutData(&form.Data{Left: form.Fraction(1, 0, 0)})
	sub := widget.NewPanel(&form.Layout{}, bad)
	sub.Name = "broken"
	root := widget.NewPanel(grid.New(1), sub)

	err := root.Pack(layout.Natural, layout.Natural)
	require.Error(t, err)
	assert.ErrorIs(t, err, form.ErrDivideByZero)
	assert.Contains(t, err.Error(), `panel "broken"`)
	assert.ErrorIs(t, sub.Err(), form.ErrDivideByZero)
}

func TestInvalidate(t *testing.T) {
	b := widget.NewBox(10, 10)
	sub := widget.NewPanel(&layout.Flex{}, b)
	root := widget.NewPanel(grid.New(1), sub)
	require.NoError(t, root.Pack(layout.Natural, layout.Natural))
	assert.Equal(t, 10, root.Bounds().Dx())

	b.Size = image.Pt(40, 10)
	require.NoError(t, root.Pack(layout.Natural, layout.Natural))
	assert.Equal(t, 10, root.Bounds().Dx(), "measurements are cached")

	assert.True(t, root.Invalidate(b))
	assert.False(t, root.Invalidate(widget.NewBox(1, 1)))
	require.NoError(t, root.Pack(layout.Natural, layout.Natural))
	assert.Equal(t, 40, root.Bounds().Dx())
	assert.Equal(t, image.Rect(0, 0, 40, 10), b.Bounds())
}

func TestPanelWithoutAlgorithm(t *testing.T) {
	b := widget.NewBox(10, 10)
	p := widget.NewPanel(nil, b)
	assert.Equal(t, image.Pt(0, 0), p.NaturalSize(layout.Natural, layout.Natural, false))
	require.NoError(t, p.Layout(false))
	assert.Equal(t, image.Rectangle{}, b.Bounds())
}
