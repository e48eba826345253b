// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/latticeui/lattice/layout"
)

// solver resolves the edges of the children of one container for the
// duration of a single pass. Nodes are indexed by the position of the
// child in the container.
type solver struct {
	nodes   []node
	index   map[layout.Child]int
	spacing int
	flush   bool
	log     *log.Logger
}

type node struct {
	child layout.Child
	data  *Data
	// edges caches resolved equations by axis and side.
	edges    [2][2]*Attachment
	visiting bool
	// needed records that the natural width was consulted while
	// solving the horizontal edges.
	needed bool
	size   image.Point
	sized  bool
}

func newSolver(kids []layout.Child, spacing int, flush bool, l *log.Logger) *solver {
	s := &solver{
		nodes:   make([]node, len(kids)),
		index:   make(map[layout.Child]int, len(kids)),
		spacing: spacing,
		flush:   flush,
		log:     l,
	}
	for i, ch := range kids {
		d, ok := ch.LayoutData().(*Data)
		if !ok {
			d = new(Data)
			ch.SetLayoutData(d)
		}
		if flush {
			d.cache.Invalidate()
		}
		s.nodes[i] = node{child: ch, data: d}
		s.index[ch] = i
	}
	return s
}

// extent returns the natural size of child i along a.
func (s *solver) extent(i int, a layout.Axis) int {
	n := &s.nodes[i]
	if a == layout.Horizontal {
		n.needed = true
	}
	if !n.sized {
		n.size = n.data.measure(n.child, n.data.hints(), s.flush)
		n.sized = true
	}
	return a.Main(n.size)
}

// remeasure replaces the size of child i by its natural size at the
// given width.
func (s *solver) remeasure(i int, width int) {
	n := &s.nodes[i]
	q := layout.Hints{W: layout.Exact(width), H: n.data.Height}
	n.size = n.data.measure(n.child, q, false)
	n.sized = true
}

func side(far bool) int {
	if far {
		return 1
	}
	return 0
}

// edge returns the resolved equation of the near or far edge of child
// i along a.
func (s *solver) edge(i int, a layout.Axis, far bool) Attachment {
	if e := s.nodes[i].edges[a][side(far)]; e != nil {
		return *e
	}
	if s.nodes[i].visiting {
		// A reference cycle passes through child i. Anchor the edge
		// on whatever the opposite edge resolved to so far; the
		// result is provisional and not cached.
		s.log.Debug("attachment cycle", "child", i, "edge", edgeName(a, far))
		return s.provisional(i, a, far)
	}
	res := s.resolve(i, a, far)
	s.nodes[i].edges[a][side(far)] = &res
	return res
}

func (s *solver) provisional(i int, a layout.Axis, far bool) Attachment {
	if opp := s.nodes[i].edges[a][side(!far)]; opp != nil {
		if far {
			return opp.PlusOffset(s.extent(i, a))
		}
		return opp.MinusOffset(s.extent(i, a))
	}
	if far {
		return Attachment{Denominator: 100, Offset: s.extent(i, a)}
	}
	return Attachment{Denominator: 100}
}

func (s *solver) resolve(i int, a layout.Axis, far bool) Attachment {
	n := &s.nodes[i]
	att := n.data.edge(a, far)
	if att == nil {
		switch {
		case n.data.edge(a, !far) == nil && far:
			return Attachment{Denominator: 100, Offset: s.extent(i, a)}
		case n.data.edge(a, !far) == nil:
			return Attachment{Denominator: 100}
		case far:
			return s.edge(i, a, false).PlusOffset(s.extent(i, a))
		default:
			return s.edge(i, a, true).MinusOffset(s.extent(i, a))
		}
	}
	j, ok := -1, false
	if att.Ref != nil {
		j, ok = s.index[att.Ref]
	}
	if !ok {
		// Unknown siblings are ignored: the equation is taken as
		// relative to the container.
		return att.equation()
	}
	n.visiting = true
	near := s.edge(j, a, false)
	farEdge := s.edge(j, a, true)
	s.nodes[i].visiting = false
	if att.Align == Center {
		half := farEdge.Minus(near).MinusOffset(s.extent(i, a)).Divide(2)
		if far {
			return farEdge.Minus(half).PlusOffset(att.Offset)
		}
		return near.Plus(half).PlusOffset(att.Offset)
	}
	switch {
	case !far && att.Align == Near:
		return near.PlusOffset(att.Offset)
	case !far:
		return farEdge.PlusOffset(att.Offset + s.spacing)
	case att.Align == Far:
		return farEdge.PlusOffset(att.Offset)
	default:
		return near.PlusOffset(att.Offset - s.spacing)
	}
}

// span returns the container extent along a required by child i when
// the container is free to take its preferred size.
func (s *solver) span(i int, a layout.Axis) (int, error) {
	near := s.edge(i, a, false)
	far := s.edge(i, a, true)
	if near.Denominator == 0 || far.Denominator == 0 {
		return 0, fmt.Errorf("form: child %d %v extent: %w", i, a, ErrDivideByZero)
	}
	diff := far.Minus(near)
	if diff.Numerator == 0 {
		// The child has a fixed extent; find the container extent
		// that fits its free fraction.
		switch {
		case far.Numerator == 0:
			return far.Offset, nil
		case far.Numerator == far.Denominator:
			return -near.Offset, nil
		case far.Offset <= 0:
			return -near.Offset * near.Denominator / near.Numerator, nil
		default:
			return far.Denominator * far.Offset / (far.Denominator - far.Numerator), nil
		}
	}
	natural := s.extent(i, a)
	if diff.Numerator < 0 {
		ext, err := diff.SolveExtent(natural)
		if err != nil {
			return 0, fmt.Errorf("form: child %d %v extent: %w", i, a, err)
		}
		return ext, nil
	}
	// Each edge rounds down on its own, so the solved extent of the
	// difference can leave the child a pixel short. Scan up from an
	// extent where it is known to be short to the first that fits.
	lo, err := diff.SolveExtent(natural - 1)
	if err != nil {
		return 0, fmt.Errorf("form: child %d %v extent: %w", i, a, err)
	}
	for ext := max(0, lo); ; ext++ {
		p1, _ := near.SolvePosition(ext)
		p2, _ := far.SolvePosition(ext)
		if p2-p1 >= natural {
			return ext, nil
		}
	}
}

// solve returns the positions of the near and far edges of child i in
// a container of the given extent.
func (s *solver) solve(i int, a layout.Axis, extent int) (p1, p2 int, err error) {
	near, far := s.edge(i, a, false), s.edge(i, a, true)
	if p1, err = near.SolvePosition(extent); err != nil {
		return 0, 0, fmt.Errorf("form: child %d %s edge: %w", i, edgeName(a, false), err)
	}
	if p2, err = far.SolvePosition(extent); err != nil {
		return 0, 0, fmt.Errorf("form: child %d %s edge: %w", i, edgeName(a, true), err)
	}
	return p1, p2, nil
}

func edgeName(a layout.Axis, far bool) string {
	switch {
	case a == layout.Horizontal && !far:
		return "left"
	case a == layout.Horizontal:
		return "right"
	case !far:
		return "top"
	default:
		return "bottom"
	}
}
