// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"

	"github.com/latticeui/lattice/layout"
)

// Panel is a widget containing other widgets, positioned by a layout
// algorithm. A Panel is both a layout.Container and a layout.Child, so
// panels nest.
type Panel struct {
	Base
	// Alg positions the children. Nil leaves them unplaced.
	Alg layout.Algorithm

	kids []layout.Child
	err  error
}

// NewPanel returns a panel laid out by alg.
func NewPanel(alg layout.Algorithm, kids ...layout.Child) *Panel {
	return &Panel{Alg: alg, kids: kids}
}

// Add appends children to the panel.
func (p *Panel) Add(kids ...layout.Child) {
	p.kids = append(p.kids, kids...)
}

// Children implements layout.Container.
func (p *Panel) Children() []layout.Child { return p.kids }

// Algorithm implements layout.Container.
func (p *Panel) Algorithm() layout.Algorithm { return p.Alg }

// ClientArea implements layout.Container. Children are positioned
// relative to the panel.
func (p *Panel) ClientArea() image.Rectangle {
	return image.Rectangle{Max: p.bounds.Size()}
}

// NaturalSize implements layout.Child. A failure of the algorithm
// yields a zero size on the natural axes and is kept for Err.
func (p *Panel) NaturalSize(w, h layout.Hint, force bool) image.Point {
	sz, err := layout.ComputeSize(p, w, h, force)
	p.err = err
	if err != nil {
		return image.Point{X: w.Or(0), Y: h.Or(0)}
	}
	return sz
}

// Err returns the error of the last size computation, if any.
func (p *Panel) Err() error { return p.err }

// Layout positions the children of p and, recursively, of every
// nested panel.
func (p *Panel) Layout(flush bool) error {
	if err := layout.Lay(p, flush); err != nil {
		return fmt.Errorf("panel %q: %w", p.Name, err)
	}
	for _, ch := range p.kids {
		if sub, ok := ch.(*Panel); ok {
			if err := sub.Layout(flush); err != nil {
				return err
			}
		}
	}
	return nil
}

// Pack sizes p for the hints, places it at the origin and lays out
// the whole tree.
func (p *Panel) Pack(w, h layout.Hint) error {
	sz, err := layout.ComputeSize(p, w, h, false)
	if err != nil {
		return fmt.Errorf("panel %q: %w", p.Name, err)
	}
	p.SetBounds(image.Rectangle{Max: sz})
	return p.Layout(false)
}

// Invalidate discards the cached measurements of ch, a child of p,
// and of every panel above it up to p.
func (p *Panel) Invalidate(ch layout.Child) bool {
	for _, k := range p.kids {
		if k == ch {
			layout.Invalidate(p, ch)
			return true
		}
		if sub, ok := k.(*Panel); ok && sub.Invalidate(ch) {
			layout.Invalidate(p, sub)
			return true
		}
	}
	return false
}

// Kind names the type of widget.
type Kind uint8

const (
	KindBox Kind = iota
	KindLabel
	KindPanel
	KindOther
)

// Node is a widget visited by Walk.
type Node struct {
	Name  string
	Kind  Kind
	Child layout.Child
	// Bounds is relative to the root of the walk.
	Bounds image.Rectangle
	Depth  int
}

// Walk calls fn for p and every widget below it, parents first.
func Walk(p *Panel, fn func(n Node) error) error {
	return walk(p, image.Point{}, 0, fn)
}

func walk(ch layout.Child, origin image.Point, depth int, fn func(n Node) error) error {
	n := Node{Child: ch, Depth: depth, Kind: KindOther}
	if b, ok := ch.(interface{ base() *Base }); ok {
		n.Name = b.base().Name
		n.Bounds = b.base().bounds
	}
	if depth == 0 {
		n.Bounds = image.Rectangle{Max: n.Bounds.Size()}
	} else {
		n.Bounds = n.Bounds.Add(origin)
	}
	switch ch.(type) {
	case *Box:
		n.Kind = KindBox
	case *Label:
		n.Kind = KindLabel
	case *Panel:
		n.Kind = KindPanel
	}
	if err := fn(n); err != nil {
		return err
	}
	if p, ok := ch.(*Panel); ok {
		for _, k := range p.kids {
			if err := walk(k, n.Bounds.Min, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

func (k Kind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindLabel:
		return "label"
	case KindPanel:
		return "panel"
	case KindOther:
		return "other"
	default:
		panic("unreachable")
	}
}
