// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene loads widget trees from TOML or YAML descriptions.

A scene names a root panel, the layout algorithm of every panel and the
constraint record of every child:

	name = "dialog"
	width = "320dp"

	[metric]
	px_per_dp = 2.0

	[root]
	layout = "form"
	spacing = "4dp"

	[[root.children]]
	name = "ok"
	width = 80
	height = 24
	form = { right = "100%-8dp", bottom = "100%-8dp" }

	[[root.children]]
	name = "cancel"
	width = 80
	height = 24
	form = { right = "ok", bottom = "ok.bottom" }

Lengths are numbers of pixels or strings with a dp, sp or px suffix,
converted with the scene metric.

Form attachments are written as expressions. "50%" and "1/3" attach to
a fraction of the container, "ok" to the adjacent edge of the sibling
named ok, and "ok.left", "ok.right", "ok.top", "ok.bottom" or
"ok.center" to a given edge of it. A "+" or "-" length may follow, and
a lone length such as "8dp" is an offset from the near edge of the
container.
*/
package scene

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/unit"
)

// Scene is a widget tree and the space it is laid out in.
type Scene struct {
	Name string `toml:"name" yaml:"name"`
	// Width and Height are the hints of the root panel. Unset lengths
	// leave the axis to the natural size of the tree.
	Width  Length `toml:"width" yaml:"width"`
	Height Length `toml:"height" yaml:"height"`
	Metric Metric `toml:"metric" yaml:"metric"`
	Root   Node   `toml:"root" yaml:"root"`
}

// Metric converts the lengths of a scene to pixels. Zero scales are
// treated as 1.
type Metric struct {
	PxPerDp float32 `toml:"px_per_dp" yaml:"px_per_dp"`
	PxPerSp float32 `toml:"px_per_sp" yaml:"px_per_sp"`
}

// Node describes a widget. Its kind is "box", "label" or "panel";
// when omitted, a node with children or a layout is a panel, a node
// with text a label and any other node a box.
type Node struct {
	Kind string `toml:"kind" yaml:"kind"`
	Name string `toml:"name" yaml:"name"`

	// Width and Height are the natural size of a box.
	Width  Length `toml:"width" yaml:"width"`
	Height Length `toml:"height" yaml:"height"`

	// Text of a label, and its alignment: start, middle or end.
	Text      string `toml:"text" yaml:"text"`
	TextAlign string `toml:"text_align" yaml:"text_align"`

	// Inset is kept free around the text of a label and around the
	// children of flex and stack panels.
	Inset Length `toml:"inset" yaml:"inset"`

	// Layout is the algorithm of a panel: grid (the default), form,
	// flex or stack.
	Layout string `toml:"layout" yaml:"layout"`
	// Columns of a grid; zero means one.
	Columns    int  `toml:"columns" yaml:"columns"`
	EqualWidth bool `toml:"equal_width" yaml:"equal_width"`
	// Margins of grid and form panels. Margin sets both MarginWidth
	// and MarginHeight.
	Margin       Length `toml:"margin" yaml:"margin"`
	MarginWidth  Length `toml:"margin_width" yaml:"margin_width"`
	MarginHeight Length `toml:"margin_height" yaml:"margin_height"`
	MarginLeft   Length `toml:"margin_left" yaml:"margin_left"`
	MarginTop    Length `toml:"margin_top" yaml:"margin_top"`
	MarginRight  Length `toml:"margin_right" yaml:"margin_right"`
	MarginBottom Length `toml:"margin_bottom" yaml:"margin_bottom"`
	HSpacing     Length `toml:"h_spacing" yaml:"h_spacing"`
	VSpacing     Length `toml:"v_spacing" yaml:"v_spacing"`
	// Spacing separates form children attached to each other.
	Spacing Length `toml:"spacing" yaml:"spacing"`
	// Axis of a flex: horizontal or vertical.
	Axis string `toml:"axis" yaml:"axis"`
	// Distribute is the flex spacing mode: end, start, sides, around,
	// between or evenly.
	Distribute string `toml:"distribute" yaml:"distribute"`
	// Align is the cross alignment of a flex (start, middle, end) or
	// the direction of a stack (nw, n, ne, e, se, s, sw, w, center).
	Align string `toml:"align" yaml:"align"`

	Children []Node `toml:"children" yaml:"children"`

	// At most one constraint record, matching the layout of the
	// parent panel.
	Grid  *GridData  `toml:"grid" yaml:"grid"`
	Form  *FormData  `toml:"form" yaml:"form"`
	Flex  *FlexData  `toml:"flex" yaml:"flex"`
	Stack *StackData `toml:"stack" yaml:"stack"`
}

// GridData is the scene form of grid.Data. Alignments are begin,
// center, end or fill.
type GridData struct {
	ColumnSpan     int    `toml:"column_span" yaml:"column_span"`
	RowSpan        int    `toml:"row_span" yaml:"row_span"`
	HAlign         string `toml:"h_align" yaml:"h_align"`
	VAlign         string `toml:"v_align" yaml:"v_align"`
	GrabHorizontal bool   `toml:"grab_horizontal" yaml:"grab_horizontal"`
	GrabVertical   bool   `toml:"grab_vertical" yaml:"grab_vertical"`
	WidthHint      Length `toml:"width_hint" yaml:"width_hint"`
	HeightHint     Length `toml:"height_hint" yaml:"height_hint"`
	MinWidth       Length `toml:"min_width" yaml:"min_width"`
	MinHeight      Length `toml:"min_height" yaml:"min_height"`
	HIndent        Length `toml:"h_indent" yaml:"h_indent"`
	VIndent        Length `toml:"v_indent" yaml:"v_indent"`
	Exclude        bool   `toml:"exclude" yaml:"exclude"`
}

// FormData is the scene form of form.Data, with attachments written
// as expressions.
type FormData struct {
	Left   string `toml:"left" yaml:"left"`
	Right  string `toml:"right" yaml:"right"`
	Top    string `toml:"top" yaml:"top"`
	Bottom string `toml:"bottom" yaml:"bottom"`
	Width  Length `toml:"width" yaml:"width"`
	Height Length `toml:"height" yaml:"height"`
}

// FlexData is the scene form of layout.FlexData.
type FlexData struct {
	Weight float32 `toml:"weight" yaml:"weight"`
	Width  Length  `toml:"width" yaml:"width"`
	Height Length  `toml:"height" yaml:"height"`
}

// StackData is the scene form of layout.StackData.
type StackData struct {
	Expanded bool `toml:"expanded" yaml:"expanded"`
}

// Length is a length that may be left unset.
type Length struct {
	unit.Value
	Set bool
}

// UnmarshalText implements encoding.TextUnmarshaler. Both decoders
// hand numbers over as text, so plain numbers are pixels.
func (l *Length) UnmarshalText(b []byte) error {
	v, err := unit.Parse(string(b))
	if err != nil {
		return err
	}
	*l = Length{Value: v, Set: true}
	return nil
}

// Format is the encoding of a scene file.
type Format uint8

const (
	TOML Format = iota
	YAML
)

// FormatOf returns the format of a scene file named path, chosen by
// its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("scene: unknown format of %q", path)
	}
}

// Load reads the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a scene. YAML scenes must not carry unknown keys.
func Decode(data []byte, f Format) (*Scene, error) {
	s := new(Scene)
	switch f {
	case TOML:
		if err := toml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(s); err != nil {
			return nil, fmt.Errorf("scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("scene: unknown format %d", f)
	}
	return s, nil
}

// Hints returns the hints for the root panel.
func (s *Scene) Hints() (w, h layout.Hint) {
	m := s.metric()
	return hint(m, s.Width), hint(m, s.Height)
}

func (s *Scene) metric() unit.Metric {
	return unit.Metric{PxPerDp: s.Metric.PxPerDp, PxPerSp: s.Metric.PxPerSp}
}

func hint(m unit.Metric, l Length) layout.Hint {
	if !l.Set {
		return layout.Natural
	}
	return layout.Exact(m.Px(l.Value))
}

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		panic("unreachable")
	}
}
