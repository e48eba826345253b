// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"
)

// Hint is an optional size in pixels passed to a child when asking for
// its natural size. The zero Hint is Natural.
type Hint struct {
	px    int
	exact bool
}

// Hints is a pair of width and height hints.
type Hints struct {
	W, H Hint
}

// Natural asks a child for the size it prefers absent any constraint.
var Natural Hint

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the mutual alignment of a list of children.
type Alignment uint8

// Direction is the alignment of children relative to a containing
// space.
type Direction uint8

// Policy identifies the algorithm a container lays out with.
type Policy uint8

// Inset is the empty space kept between a container's client area
// and its children.
type Inset struct {
	Top, Right, Bottom, Left int
}

const (
	Start Alignment = iota
	End
	Middle
)

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

const (
	Horizontal Axis = iota
	Vertical
)

const (
	Fill Policy = iota
	Row
	Grid
	Attachment
)

// Exact returns a Hint of px pixels. Negative values are clamped to
// zero.
func Exact(px int) Hint {
	if px < 0 {
		px = 0
	}
	return Hint{px: px, exact: true}
}

// IsNatural reports whether h carries no pixel value.
func (h Hint) IsNatural() bool {
	return !h.exact
}

// Px returns the pixel value of h, or 0 for Natural.
func (h Hint) Px() int {
	return h.px
}

// Or returns the pixel value of h, or def if h is Natural.
func (h Hint) Or(def int) int {
	if h.exact {
		return h.px
	}
	return def
}

// AtLeast returns px if h is Natural, and otherwise the larger of px
// and the pixel value of h.
func (h Hint) AtLeast(px int) int {
	if h.exact {
		return max(h.px, px)
	}
	return px
}

func (h Hint) String() string {
	if !h.exact {
		return "natural"
	}
	return fmt.Sprintf("%dpx", h.px)
}

// UniformInset returns an Inset with v applied to all edges.
func UniformInset(v int) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Size returns the total horizontal and vertical space taken by in.
func (in Inset) Size() image.Point {
	return image.Point{X: in.Left + in.Right, Y: in.Top + in.Bottom}
}

// Shrink returns r with in removed from its edges. The result never
// has negative dimensions.
func (in Inset) Shrink(r image.Rectangle) image.Rectangle {
	r.Min.X += in.Left
	r.Min.Y += in.Top
	r.Max.X -= in.Right
	r.Max.Y -= in.Bottom
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Main returns the coordinate of p along a.
func (a Axis) Main(p image.Point) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Cross returns the coordinate of p across a.
func (a Axis) Cross(p image.Point) int {
	if a == Horizontal {
		return p.Y
	}
	return p.X
}

// Point builds a point from its main and cross coordinates along a.
func (a Axis) Point(main, cross int) image.Point {
	if a == Horizontal {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}

func (p Policy) String() string {
	switch p {
	case Fill:
		return "Fill"
	case Row:
		return "Row"
	case Grid:
		return "Grid"
	case Attachment:
		return "Attachment"
	default:
		panic("unreachable")
	}
}
