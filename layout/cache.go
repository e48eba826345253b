// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// SizeCache memoizes the natural size of a child. The default slot
// holds the measurement for the hints declared by the child's
// constraint record, the current slot the most recent ad hoc query,
// so that the several passes of an algorithm do not evict each other.
//
// The zero SizeCache is empty and ready to use.
type SizeCache struct {
	dflt, cur sizeSlot
}

type sizeSlot struct {
	hints Hints
	size  image.Point
	valid bool
}

// Get returns the natural size of ch for the hints q. Unless
// recompute is set, a slot holding exactly q answers without calling
// ch.
func (c *SizeCache) Get(ch Child, q, declared Hints, recompute bool) image.Point {
	if !recompute {
		if c.dflt.valid && c.dflt.hints == q {
			return c.dflt.size
		}
		if c.cur.valid && c.cur.hints == q {
			return c.cur.size
		}
	}
	sz := ch.NaturalSize(q.W, q.H, recompute)
	slot := &c.cur
	if q == declared {
		slot = &c.dflt
	}
	*slot = sizeSlot{hints: q, size: sz, valid: true}
	return sz
}

// Invalidate clears both slots.
func (c *SizeCache) Invalidate() {
	c.dflt = sizeSlot{}
	c.cur = sizeSlot{}
}
