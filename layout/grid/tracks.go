// SPDX-License-Identifier: Unlicense OR MIT

package grid

import (
	"github.com/charmbracelet/log"
	"github.com/latticeui/lattice/layout"
	"golang.org/x/exp/slices"
)

// tracks sizes the columns or the rows of a pass.
type tracks struct {
	g       *cells
	a       layout.Axis
	spacing int
	// equal forces every track to the size of the widest.
	equal bool
	log   *log.Logger

	sizes  []int
	mins   []int
	expand []bool
	// grow is the number of expandable tracks.
	grow int
}

// measure computes the natural size of every track from the items
// covering it. Single-track items set the track sizes first, then the
// deficit of spanning items is spread over the tracks they span.
func (t *tracks) measure() {
	n := t.g.count(t.a)
	other := t.g.count(cross(t.a))
	t.sizes = make([]int, n)
	t.mins = make([]int, n)
	t.expand = make([]bool, n)
	for j := 0; j < n; j++ {
		for i := 0; i < other; i++ {
			it, ok := t.g.at(t.a, j, i, true)
			if !ok || it.span(t.a) != 1 {
				continue
			}
			t.sizes[j] = max(t.sizes[j], it.extent(t.a)+it.indent(t.a))
			if it.grab(t.a) {
				if !t.expand[j] {
					t.grow++
				}
				t.expand[j] = true
			}
			if it.floored(t.a) {
				t.mins[j] = max(t.mins[j], it.floor(t.a)+it.indent(t.a))
			}
		}
		for i := 0; i < other; i++ {
			it, ok := t.g.at(t.a, j, i, false)
			if !ok || it.span(t.a) == 1 {
				continue
			}
			span := it.span(t.a)
			spanSize, spanMin, spanGrow := t.sum(j, span)
			if it.grab(t.a) && spanGrow == 0 {
				t.grow++
				t.expand[j] = true
			}
			w := it.extent(t.a) + it.indent(t.a) - spanSize - (span-1)*t.spacing
			if w > 0 {
				if t.equal {
					t.equalize(j, span, w+spanSize)
				} else {
					t.spread(t.sizes, j, span, spanGrow, w)
				}
			}
			if it.floored(t.a) {
				w = it.floor(t.a) + it.indent(t.a) - spanMin - (span-1)*t.spacing
				if w > 0 {
					t.spread(t.mins, j, span, spanGrow, w)
				}
			}
		}
	}
}

// sum returns the size, minimum size and expandable count of the span
// tracks ending at track j.
func (t *tracks) sum(j, span int) (size, minSize, grow int) {
	for k := 0; k < span; k++ {
		size += t.sizes[j-k]
		minSize += t.mins[j-k]
		if t.expand[j-k] {
			grow++
		}
	}
	return size, minSize, grow
}

// spread adds w to the span tracks ending at track j: evenly over the
// expandable ones, the remainder on the last expandable track touched,
// or entirely on track j if none expands.
func (t *tracks) spread(sizes []int, j, span, grow, w int) {
	if grow == 0 {
		sizes[j] += w
		return
	}
	delta, rem := w/grow, w%grow
	last := -1
	for k := 0; k < span; k++ {
		if t.expand[j-k] {
			last = j - k
			sizes[last] += delta
		}
	}
	if last > -1 {
		sizes[last] += rem
	}
}

// equalize gives every span track ending at track j an equal share of
// total, never shrinking a track.
func (t *tracks) equalize(j, span, total int) {
	size, rem := total/span, total%span
	last := -1
	for k := 0; k < span; k++ {
		last = j - k
		t.sizes[last] = max(size, t.sizes[last])
	}
	if last > -1 {
		t.sizes[last] += rem
	}
}

// fit resizes the tracks for available pixels. With equal set every
// track takes the same size; otherwise the slack is distributed over
// the expandable tracks until the total matches available or no track
// can absorb more.
func (t *tracks) fit(available layout.Hint, margins int) {
	n := len(t.sizes)
	avail := available.Px() - t.spacing*(n-1) - margins
	if t.equal {
		minSize, size := slices.Max(t.mins), slices.Max(t.sizes)
		if !available.IsNatural() && t.grow > 0 {
			size = max(minSize, avail/n)
		}
		for j := range t.sizes {
			t.expand[j] = t.grow > 0
			t.sizes[j] = size
		}
		return
	}
	if available.IsNatural() || t.grow == 0 {
		return
	}
	c := t.grow
	total := t.total()
	// Every round either reaches avail, removes a track from the
	// expandable set or re-applies the floors of spanning items. The
	// cap only matters when those floors cannot all be met.
	for round := 0; total != avail && round <= 2*n+1; round++ {
		delta, rem := (avail-total)/c, (avail-total)%c
		last, pinned := -1, -1
		for j := range t.sizes {
			if !t.expand[j] {
				continue
			}
			if t.sizes[j]+delta > t.mins[j] {
				last = j
				t.sizes[j] += delta
			} else {
				pinned = j
				t.sizes[j] = t.mins[j]
				t.expand[j] = false
				c--
			}
		}
		switch {
		case last > -1:
			t.sizes[last] += rem
		case rem > 0:
			// Every track sits at its floor and may still grow.
			t.sizes[pinned] += rem
		}
		t.floors()
		if c == 0 {
			break
		}
		total = t.total()
	}
	if total = t.total(); total != avail {
		t.log.Debug("grid minimum sizes exceed available space", "axis", t.a, "available", avail, "total", total)
	}
}

// floors grows the tracks under spanning items back to the minimum
// those items require.
func (t *tracks) floors() {
	other := t.g.count(cross(t.a))
	for j := range t.sizes {
		for i := 0; i < other; i++ {
			it, ok := t.g.at(t.a, j, i, false)
			if !ok || it.span(t.a) == 1 || !it.floored(t.a) {
				continue
			}
			span := it.span(t.a)
			var spanSize, spanGrow int
			for k := 0; k < span; k++ {
				spanSize += t.sizes[j-k]
				if t.expand[j-k] {
					spanGrow++
				}
			}
			w := it.floor(t.a) + it.indent(t.a) - spanSize - (span-1)*t.spacing
			if w > 0 {
				t.spread(t.sizes, j, span, spanGrow, w)
			}
		}
	}
}

func (t *tracks) total() int {
	var s int
	for _, v := range t.sizes {
		s += v
	}
	return s
}

// cell returns the size of span tracks starting at track j, including
// the spacing between them.
func (t *tracks) cell(j, span int) int {
	s := t.spacing * (span - 1)
	for k := 0; k < span; k++ {
		s += t.sizes[j+k]
	}
	return s
}

func cross(a layout.Axis) layout.Axis {
	if a == layout.Horizontal {
		return layout.Vertical
	}
	return layout.Horizontal
}
