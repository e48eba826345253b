// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
)

// Flex lays out children along an axis, according to alignment and
// weights.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing controls the distribution of space left after
	// layout.
	Spacing Spacing
	// Alignment is the alignment in the cross axis.
	Alignment Alignment
	// Inset is kept free around the children.
	Inset Inset
}

// FlexData is the constraint record of a Flex child.
type FlexData struct {
	// Weight is the share of the space left by rigid children that
	// the child takes. Zero means rigid.
	Weight float32
	// Width and Height replace the natural size when Exact.
	Width, Height Hint

	cache SizeCache
}

// Spacing determine the spacing mode for a Flex.
type Spacing uint8

const (
	// SpaceEnd leaves space at the end.
	SpaceEnd Spacing = iota
	// SpaceStart leaves space at the start.
	SpaceStart
	// SpaceSides shares space between the start and end.
	SpaceSides
	// SpaceAround distributes space evenly between children,
	// with half as much space at the start and end.
	SpaceAround
	// SpaceBetween distributes space evenly between children,
	// leaving no space at the start and end.
	SpaceBetween
	// SpaceEvenly distributes space evenly between children and
	// at the start and end.
	SpaceEvenly
)

type flexChild struct {
	data *FlexData
	size image.Point
}

// Policy implements Algorithm.
func (f *Flex) Policy() Policy { return Row }

// FlushCache implements Algorithm.
func (f *Flex) FlushCache(ch Child) {
	if d, ok := ch.LayoutData().(*FlexData); ok {
		d.cache.Invalidate()
	}
}

// ComputeSize implements Algorithm.
func (f *Flex) ComputeSize(c Container, w, h Hint, flush bool) (image.Point, error) {
	children := f.measure(c.Children(), flush)
	main, cross := 0, 0
	for _, ch := range children {
		main += f.Axis.Main(ch.size)
		if v := f.Axis.Cross(ch.size); v > cross {
			cross = v
		}
	}
	sz := f.Axis.Point(main, cross).Add(f.Inset.Size())
	return image.Point{X: w.Or(sz.X), Y: h.Or(sz.Y)}, nil
}

// Layout implements Algorithm. Rigid children are sized before
// weighted children; the position of the children is determined by
// their order.
func (f *Flex) Layout(c Container, flush bool) error {
	kids := c.Children()
	children := f.measure(kids, flush)
	area := f.Inset.Shrink(c.ClientArea())
	mainMax := f.Axis.Main(area.Size())
	crossMax := f.Axis.Cross(area.Size())
	size := 0
	for i, child := range children {
		if child.data.Weight != 0 {
			continue
		}
		sz := f.Axis.Main(child.size)
		if rem := mainMax - size; sz > rem {
			sz = max(rem, 0)
		}
		children[i].size = f.Axis.Point(sz, f.Axis.Cross(child.size))
		size += sz
	}
	rigidSize := size
	// fraction is the rounding error from a weighting.
	var fraction float32
	for i, child := range children {
		if child.data.Weight == 0 {
			continue
		}
		var flexSize int
		if mainMax > size {
			flexSize = mainMax - rigidSize
			// Apply weight and add any leftover fraction from a
			// previous weighted child.
			childSize := float32(flexSize)*child.data.Weight + fraction
			flexSize = int(childSize + .5)
			fraction = childSize - float32(flexSize)
			if rem := mainMax - size; flexSize > rem {
				flexSize = rem
			}
		}
		children[i].size = f.Axis.Point(flexSize, f.Axis.Cross(child.size))
		size += flexSize
	}
	var maxCross int
	for i, child := range children {
		cr := min(f.Axis.Cross(child.size), crossMax)
		children[i].size = f.Axis.Point(f.Axis.Main(child.size), cr)
		if cr > maxCross {
			maxCross = cr
		}
	}
	var space int
	if mainMax > size {
		space = mainMax - size
	}
	var mainSize int
	switch f.Spacing {
	case SpaceSides:
		mainSize += space / 2
	case SpaceStart:
		mainSize += space
	case SpaceEvenly:
		mainSize += space / (1 + len(children))
	case SpaceAround:
		if len(children) > 0 {
			mainSize += space / (len(children) * 2)
		}
	}
	for i, child := range children {
		var cross int
		switch f.Alignment {
		case End:
			cross = maxCross - f.Axis.Cross(child.size)
		case Middle:
			cross = (maxCross - f.Axis.Cross(child.size)) / 2
		}
		pt := area.Min.Add(f.Axis.Point(mainSize, cross))
		kids[i].SetBounds(image.Rectangle{Min: pt, Max: pt.Add(child.size)})
		mainSize += f.Axis.Main(child.size)
		if i < len(children)-1 {
			switch f.Spacing {
			case SpaceEvenly:
				mainSize += space / (1 + len(children))
			case SpaceAround:
				mainSize += space / len(children)
			case SpaceBetween:
				mainSize += space / (len(children) - 1)
			}
		}
	}
	return nil
}

func (f *Flex) measure(kids []Child, flush bool) []flexChild {
	children := make([]flexChild, len(kids))
	for i, ch := range kids {
		d, ok := ch.LayoutData().(*FlexData)
		if !ok {
			d = new(FlexData)
			ch.SetLayoutData(d)
		}
		if flush {
			d.cache.Invalidate()
		}
		hs := Hints{W: d.Width, H: d.Height}
		sz := d.cache.Get(ch, hs, hs, false)
		children[i] = flexChild{data: d, size: image.Point{X: d.Width.Or(sz.X), Y: d.Height.Or(sz.Y)}}
	}
	return children
}

func (s Spacing) String() string {
	switch s {
	case SpaceEnd:
		return "SpaceEnd"
	case SpaceStart:
		return "SpaceStart"
	case SpaceSides:
		return "SpaceSides"
	case SpaceAround:
		return "SpaceAround"
	case SpaceBetween:
		return "SpaceBetween"
	case SpaceEvenly:
		return "SpaceEvenly"
	default:
		panic("unreachable")
	}
}
