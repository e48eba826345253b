// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text breaks text into lines and measures it, so that labels can
report a natural size for any width they are offered.
*/
package text

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Line is one line of broken text.
type Line struct {
	Text string
	// Width is the advance of Text, trailing spaces excluded.
	Width fixed.Int26_6
}

// Layout is text broken into lines of a single face.
type Layout struct {
	Lines []Line
	// LineHeight is the distance between the tops of two lines.
	LineHeight int
	// Baseline is the distance from the top of a line to its
	// baseline.
	Baseline int
}

// Size returns the pixel size of the layout: its widest line by the
// height of all its lines.
func (l *Layout) Size() image.Point {
	var w fixed.Int26_6
	for _, line := range l.Lines {
		w = max(w, line.Width)
	}
	return image.Point{X: w.Ceil(), Y: len(l.Lines) * l.LineHeight}
}

type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Offset returns the pixel offset of a line of the given width in a
// box pixels wide.
func (a Alignment) Offset(width fixed.Int26_6, box int) int {
	switch a {
	case Start:
		return 0
	case End:
		return (fixed.I(box) - width).Floor()
	case Middle:
		return ((fixed.I(box) - width) / 2).Floor()
	default:
		panic(fmt.Errorf("unknown alignment %d", a))
	}
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
