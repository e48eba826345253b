// SPDX-License-Identifier: Unlicense OR MIT

package form

import (
	"errors"
	"fmt"

	"github.com/latticeui/lattice/layout"
	"golang.org/x/exp/constraints"
)

// ErrDivideByZero is reported when an attachment equation cannot be
// solved because it would divide by zero.
var ErrDivideByZero = errors.New("attachment divides by zero")

// Align selects the edge of a referenced sibling an attachment is
// relative to.
type Align uint8

const (
	// Default attaches to the adjacent edge of the sibling: the far
	// edge for a near attachment, the near edge for a far one, with
	// Layout.Spacing in between.
	Default Align = iota
	// Near attaches to the sibling's left or top edge.
	Near
	// Far attaches to the sibling's right or bottom edge.
	Far
	// Center centers the child on the sibling.
	Center
)

// Attachment is the equation of one edge of a child:
//
//	position = Numerator/Denominator × extent + Offset
//
// where extent is the size of the container along the edge's axis,
// or, when Ref is set, a position relative to the resolved edge of
// that sibling.
type Attachment struct {
	Numerator   int
	Denominator int
	Offset      int

	// Ref is the sibling the attachment is relative to.
	Ref   layout.Child
	Align Align
}

// Percent returns an attachment at num percent of the container plus
// offset.
func Percent(num, offset int) *Attachment {
	return &Attachment{Numerator: num, Denominator: 100, Offset: offset}
}

// Fraction returns an attachment at num/den of the container plus
// offset. A zero den is accepted here and reported when the
// attachment is solved.
func Fraction(num, den, offset int) *Attachment {
	return &Attachment{Numerator: num, Denominator: den, Offset: offset}
}

// To returns an attachment relative to an edge of the sibling ref.
func To(ref layout.Child, offset int, align Align) *Attachment {
	return &Attachment{Denominator: 100, Offset: offset, Ref: ref, Align: align}
}

// SolvePosition returns the position of the edge in a container of
// the given extent.
func (a Attachment) SolvePosition(extent int) (int, error) {
	if a.Denominator == 0 {
		return 0, fmt.Errorf("%v: solving position: %w", a, ErrDivideByZero)
	}
	return a.Offset + floorDiv(a.Numerator*extent, a.Denominator), nil
}

// SolveExtent returns the container extent that places the edge at
// position.
func (a Attachment) SolveExtent(position int) (int, error) {
	if a.Numerator == 0 || a.Denominator == 0 {
		return 0, fmt.Errorf("%v: solving extent: %w", a, ErrDivideByZero)
	}
	return (position - a.Offset) * a.Denominator / a.Numerator, nil
}

// Plus returns the sum of the equations a and b.
func (a Attachment) Plus(b Attachment) Attachment {
	return reduce(Attachment{
		Numerator:   a.Numerator*b.Denominator + a.Denominator*b.Numerator,
		Denominator: a.Denominator * b.Denominator,
		Offset:      a.Offset + b.Offset,
	})
}

// Minus returns the difference of the equations a and b.
func (a Attachment) Minus(b Attachment) Attachment {
	return reduce(Attachment{
		Numerator:   a.Numerator*b.Denominator - a.Denominator*b.Numerator,
		Denominator: a.Denominator * b.Denominator,
		Offset:      a.Offset - b.Offset,
	})
}

// PlusOffset returns a shifted by n pixels.
func (a Attachment) PlusOffset(n int) Attachment {
	return Attachment{Numerator: a.Numerator, Denominator: a.Denominator, Offset: a.Offset + n}
}

// MinusOffset returns a shifted by -n pixels.
func (a Attachment) MinusOffset(n int) Attachment {
	return a.PlusOffset(-n)
}

// Divide returns the equation a divided by n. The offset is divided
// with truncation. Dividing by zero yields a zero denominator.
func (a Attachment) Divide(n int) Attachment {
	if n == 0 {
		return Attachment{Numerator: a.Numerator, Offset: a.Offset}
	}
	return reduce(Attachment{
		Numerator:   a.Numerator,
		Denominator: a.Denominator * n,
		Offset:      a.Offset / n,
	})
}

// equation strips the sibling reference of a.
func (a Attachment) equation() Attachment {
	return Attachment{Numerator: a.Numerator, Denominator: a.Denominator, Offset: a.Offset}
}

func (a Attachment) String() string {
	s := fmt.Sprintf("%d/%d%+d", a.Numerator, a.Denominator, a.Offset)
	if a.Ref != nil {
		s = fmt.Sprintf("%v of sibling%+d", a.Align, a.Offset)
	}
	return s
}

func (a Align) String() string {
	switch a {
	case Default:
		return "Default"
	case Near:
		return "Near"
	case Far:
		return "Far"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}

// reduce divides the fraction of a by the GCD of its terms, keeping
// the denominator positive. A zero denominator is left in place for
// the next solve to report.
func reduce(a Attachment) Attachment {
	g := gcd(a.Numerator, a.Denominator)
	if g == 0 {
		return a
	}
	a.Numerator /= g
	a.Denominator /= g
	if a.Denominator < 0 {
		a.Numerator, a.Denominator = -a.Numerator, -a.Denominator
	}
	return a
}

func gcd[T constraints.Signed](m, n T) T {
	if m < 0 {
		m = -m
	}
	if n < 0 {
		n = -n
	}
	for n != 0 {
		m, n = n, m%n
	}
	return m
}

func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
