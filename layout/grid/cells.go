// SPDX-License-Identifier: Unlicense OR MIT

package grid

import (
	"image"

	"github.com/latticeui/lattice/layout"
)

// item is a child taking part in a pass.
type item struct {
	child layout.Child
	data  *Data
	// size is the measured size, updated by the re-wrap step.
	size     image.Point
	row, col int
	hspan    int
	vspan    int
}

// cells is the occupancy grid of a pass. Every cell holds the index
// of the item covering it, or -1.
type cells struct {
	items   []item
	slots   [][]int
	columns int
	rows    int
}

const empty = -1

// place assigns every item to the first free window of its spans,
// scanning rows top to bottom and wrapping to a new row when the
// current one cannot fit the window.
func place(items []item, columns int) *cells {
	g := &cells{items: items, columns: columns}
	row, column := 0, 0
	for idx := range items {
		it := &items[idx]
		hspan := max(1, min(it.data.ColumnSpan, columns))
		vspan := max(1, it.data.RowSpan)
		for {
			g.grow(row + vspan)
			for column < columns && g.slots[row][column] != empty {
				column++
			}
			end := column + hspan
			if end <= columns {
				i := column
				for i < end && g.slots[row][i] == empty {
					i++
				}
				if i == end {
					break
				}
				column = i
			}
			if column+hspan >= columns {
				column = 0
				row++
			}
		}
		for j := 0; j < vspan; j++ {
			for k := 0; k < hspan; k++ {
				g.slots[row+j][column+k] = idx
			}
		}
		it.row, it.col = row, column
		it.hspan, it.vspan = hspan, vspan
		g.rows = max(g.rows, row+vspan)
		column += hspan
	}
	return g
}

func (g *cells) grow(rows int) {
	for len(g.slots) < rows {
		r := make([]int, g.columns)
		for i := range r {
			r[i] = empty
		}
		g.slots = append(g.slots, r)
	}
}

// count returns the number of tracks along a.
func (g *cells) count(a layout.Axis) int {
	if a == layout.Horizontal {
		return g.columns
	}
	return g.rows
}

// at returns the item covering track t along a and track o across a,
// if that cell is the first (top left) or last (bottom right) cell of
// the item.
func (g *cells) at(a layout.Axis, t, o int, first bool) (*item, bool) {
	row, col := o, t
	if a == layout.Vertical {
		row, col = t, o
	}
	idx := g.slots[row][col]
	if idx == empty {
		return nil, false
	}
	it := &g.items[idx]
	i, j := row+it.vspan-1, col+it.hspan-1
	if !first {
		i, j = row-it.vspan+1, col-it.hspan+1
	}
	if i < 0 || i >= g.rows || j < 0 || j >= g.columns || g.slots[i][j] != idx {
		return nil, false
	}
	return it, true
}

// span returns the number of tracks the item covers along a.
func (it *item) span(a layout.Axis) int {
	if a == layout.Horizontal {
		return it.hspan
	}
	return it.vspan
}

func (it *item) extent(a layout.Axis) int {
	return a.Main(it.size)
}

func (it *item) indent(a layout.Axis) int {
	if a == layout.Horizontal {
		return it.data.HIndent
	}
	return it.data.VIndent
}

func (it *item) grab(a layout.Axis) bool {
	if a == layout.Horizontal {
		return it.data.GrabHorizontal
	}
	return it.data.GrabVertical
}

func (it *item) min(a layout.Axis) int {
	if a == layout.Horizontal {
		return it.data.MinWidth
	}
	return it.data.MinHeight
}

// floored reports whether the item imposes a minimum on its tracks.
func (it *item) floored(a layout.Axis) bool {
	return !it.grab(a) || it.min(a) != 0
}

// floor returns the minimum extent of the item along a: its measured
// extent, or its minimum if it grabs.
func (it *item) floor(a layout.Axis) int {
	if it.grab(a) {
		return it.min(a)
	}
	return it.extent(a)
}
