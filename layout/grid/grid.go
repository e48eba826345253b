// SPDX-License-Identifier: Unlicense OR MIT

/*
Package grid implements the spanning grid layout.

Children fill the cells of a grid with a fixed number of columns, left
to right and top to bottom, each child covering ColumnSpan × RowSpan
cells. Column widths and row heights are the natural sizes of the
children in them; when the container is given more or less space than
that, the difference is distributed over the columns and rows holding
children that grab space, never shrinking one below its minimum.

	g := grid.New(2)
	g.HSpacing = 10
	label.SetLayoutData(&grid.Data{VAlign: grid.Center})
	field.SetLayoutData(&grid.Data{HAlign: grid.Fill, GrabHorizontal: true})
*/
package grid

import (
	"image"

	"github.com/charmbracelet/log"
	"github.com/latticeui/lattice/internal/debuglog"
	"github.com/latticeui/lattice/layout"
)

// Layout positions children in the cells of a grid.
type Layout struct {
	// NumColumns is the number of columns. A Layout with less than
	// one column positions nothing.
	NumColumns int
	// EqualWidth forces all columns to the same width.
	EqualWidth bool
	// MarginWidth is kept on the left and right of the grid,
	// MarginHeight on the top and bottom.
	MarginWidth, MarginHeight int
	// Additional margins for individual edges.
	MarginLeft, MarginTop, MarginRight, MarginBottom int
	// HSpacing separates columns, VSpacing rows.
	HSpacing, VSpacing int
	// Logger receives debug entries; nil discards them.
	Logger *log.Logger
}

// New returns a Layout with the given number of columns.
func New(columns int) *Layout {
	return &Layout{NumColumns: columns}
}

// Policy implements layout.Algorithm.
func (l *Layout) Policy() layout.Policy { return layout.Grid }

// FlushCache implements layout.Algorithm.
func (l *Layout) FlushCache(ch layout.Child) {
	if d, ok := ch.LayoutData().(*Data); ok {
		d.cache.Invalidate()
	}
}

// ComputeSize implements layout.Algorithm. It never fails. An exact
// hint is the reported extent unless the columns or rows need more,
// as when their minimum sizes do not fit.
func (l *Layout) ComputeSize(c layout.Container, w, h layout.Hint, flush bool) (image.Point, error) {
	sz := l.layout(c, false, image.Point{}, w, h, flush)
	return image.Point{X: w.AtLeast(sz.X), Y: h.AtLeast(sz.Y)}, nil
}

// Layout implements layout.Algorithm. It never fails.
func (l *Layout) Layout(c layout.Container, flush bool) error {
	r := c.ClientArea()
	l.layout(c, true, r.Min, layout.Exact(r.Dx()), layout.Exact(r.Dy()), flush)
	return nil
}

func (l *Layout) margins() image.Point {
	return image.Point{
		X: l.MarginLeft + 2*l.MarginWidth + l.MarginRight,
		Y: l.MarginTop + 2*l.MarginHeight + l.MarginBottom,
	}
}

func (l *Layout) layout(c layout.Container, move bool, origin image.Point, width, height layout.Hint, flush bool) image.Point {
	lg := debuglog.Or(l.Logger)
	margins := l.margins()
	if l.NumColumns < 1 {
		return margins
	}
	items := l.measure(c.Children(), flush)
	if len(items) == 0 {
		return margins
	}
	g := place(items, l.NumColumns)
	lg.Debug("grid pass", "children", len(items), "columns", g.columns, "rows", g.rows, "width", width, "height", height, "move", move)

	cols := &tracks{g: g, a: layout.Horizontal, spacing: l.HSpacing, equal: l.EqualWidth, log: lg}
	cols.measure()
	cols.fit(width, margins.X)

	if !width.IsNatural() {
		l.rewrap(g, cols, lg)
	}

	rows := &tracks{g: g, a: layout.Vertical, spacing: l.VSpacing, log: lg}
	rows.measure()
	rows.fit(height, margins.Y)

	if move {
		l.position(g, cols, rows, origin)
	}
	return image.Point{
		X: cols.total() + l.HSpacing*(g.columns-1) + margins.X,
		Y: rows.total() + l.VSpacing*(g.rows-1) + margins.Y,
	}
}

// measure returns the children taking part in the pass with their
// natural sizes, synthesizing constraint records where missing.
func (l *Layout) measure(kids []layout.Child, flush bool) []item {
	items := make([]item, 0, len(kids))
	for _, ch := range kids {
		d, ok := ch.LayoutData().(*Data)
		if ok && d.Exclude {
			continue
		}
		if !ok {
			d = new(Data)
			ch.SetLayoutData(d)
		}
		if flush {
			d.cache.Invalidate()
		}
		sz := d.measure(ch, d.WidthHint, d.HeightHint, flush)
		if d.GrabHorizontal && d.MinWidth > 0 && sz.X < d.MinWidth {
			sz = d.measure(ch, layout.Exact(d.MinWidth), d.HeightHint, false)
		}
		if d.GrabVertical && d.MinHeight > 0 {
			sz.Y = max(sz.Y, d.MinHeight)
		}
		items = append(items, item{child: ch, data: d, size: sz})
	}
	return items
}

// rewrap re-measures the children whose height depends on a width
// other than the one they were measured at: filling children whose
// cell is wider or narrower, and children wider than their cell.
func (l *Layout) rewrap(g *cells, cols *tracks, lg *log.Logger) {
	for idx := range g.items {
		it := &g.items[idx]
		d := it.data
		if !d.HeightHint.IsNatural() {
			continue
		}
		current := cols.cell(it.col, it.hspan) - d.HIndent
		if (current != it.size.X && d.HAlign == Fill) || it.size.X > current {
			it.size = d.measure(it.child, layout.Exact(max(0, current)), d.HeightHint, false)
			if d.GrabVertical && d.MinHeight > 0 {
				it.size.Y = max(it.size.Y, d.MinHeight)
			}
			lg.Debug("grid re-wrap", "row", it.row, "column", it.col, "width", current, "size", it.size)
		}
	}
}

// position assigns bounds to every item inside its cell.
func (l *Layout) position(g *cells, cols, rows *tracks, origin image.Point) {
	gridY := origin.Y + l.MarginTop + l.MarginHeight
	for i := 0; i < g.rows; i++ {
		gridX := origin.X + l.MarginLeft + l.MarginWidth
		for j := 0; j < g.columns; j++ {
			if it, ok := g.at(layout.Horizontal, j, i, true); ok {
				x, w := align(it.data.HAlign, gridX, cols.cell(j, it.hspan), it.data.HIndent, it.size.X)
				y, h := align(it.data.VAlign, gridY, rows.cell(i, it.vspan), it.data.VIndent, it.size.Y)
				it.child.SetBounds(image.Rect(x, y, x+w, y+h))
			}
			gridX += cols.sizes[j] + l.HSpacing
		}
		gridY += rows.sizes[i] + l.VSpacing
	}
}

// align returns the position and extent of a child of the given
// natural extent inside a cell starting at pos.
func align(a Align, pos, cell, indent, extent int) (int, int) {
	p := pos + indent
	e := min(extent, cell)
	switch a {
	case Center:
		p += max(0, (cell-indent-e)/2)
	case End:
		p += max(0, cell-indent-e)
	case Fill:
		e = cell - indent
	}
	return p, e
}
