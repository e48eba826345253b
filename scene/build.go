// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/latticeui/lattice/internal/debuglog"
	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/layout/form"
	"github.com/latticeui/lattice/layout/grid"
	"github.com/latticeui/lattice/text"
	"github.com/latticeui/lattice/unit"
	"github.com/latticeui/lattice/widget"
)

// Build returns the widget tree of the scene. The grid and form
// algorithms of the tree log to logger, which may be nil.
func (s *Scene) Build(logger *log.Logger) (*widget.Panel, error) {
	b := &builder{m: s.metric(), logger: logger}
	root := s.Root
	if root.Kind == "" {
		root.Kind = "panel"
	}
	ch, err := b.node(&root, "root")
	if err != nil {
		return nil, err
	}
	p, ok := ch.(*widget.Panel)
	if !ok {
		return nil, fmt.Errorf("scene: root is a %s, not a panel", root.Kind)
	}
	debuglog.Or(logger).Debug("scene built", "name", s.Name, "policy", p.Alg.Policy())
	return p, nil
}

type builder struct {
	m      unit.Metric
	logger *log.Logger
}

func (b *builder) px(l Length) int {
	if !l.Set {
		return 0
	}
	return b.m.Px(l.Value)
}

// set assigns l to v if l is set.
func (b *builder) set(v *int, l Length) {
	if l.Set {
		*v = b.px(l)
	}
}

func (b *builder) hint(l Length) layout.Hint {
	return hint(b.m, l)
}

func (b *builder) node(n *Node, path string) (layout.Child, error) {
	if n.Name != "" {
		path = n.Name
	}
	switch kindOf(n) {
	case "box":
		w := widget.NewBox(b.px(n.Width), b.px(n.Height))
		w.Name = n.Name
		return w, nil
	case "label":
		l := widget.NewLabel(n.Text)
		l.Name = n.Name
		a, err := lookup("text alignment", n.TextAlign, text.Start, text.Middle, text.End)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", path, err)
		}
		l.Alignment = a
		l.Inset = layout.UniformInset(b.px(n.Inset))
		return l, nil
	case "panel":
		return b.panel(n, path)
	default:
		return nil, fmt.Errorf("scene: %s: unknown kind %q", path, n.Kind)
	}
}

func kindOf(n *Node) string {
	switch {
	case n.Kind != "":
		return strings.ToLower(n.Kind)
	case len(n.Children) > 0 || n.Layout != "":
		return "panel"
	case n.Text != "":
		return "label"
	default:
		return "box"
	}
}

func (b *builder) panel(n *Node, path string) (*widget.Panel, error) {
	alg, err := b.algorithm(n)
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", path, err)
	}
	p := widget.NewPanel(alg)
	p.Name = n.Name
	siblings := make(map[string]layout.Child)
	for i := range n.Children {
		cn := &n.Children[i]
		ch, err := b.node(cn, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if cn.Name != "" {
			if _, dup := siblings[cn.Name]; dup {
				return nil, fmt.Errorf("scene: %s: duplicate name %q", path, cn.Name)
			}
			siblings[cn.Name] = ch
		}
		p.Add(ch)
	}
	// Attachments may refer to later siblings, so records are built
	// once every child exists.
	for i, ch := range p.Children() {
		cn := &n.Children[i]
		data, err := b.data(alg, cn, siblings)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", childPath(path, cn, i), err)
		}
		if data != nil {
			ch.SetLayoutData(data)
		}
	}
	return p, nil
}

func childPath(path string, n *Node, i int) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("%s.children[%d]", path, i)
}

func (b *builder) algorithm(n *Node) (layout.Algorithm, error) {
	switch strings.ToLower(n.Layout) {
	case "", "grid":
		g := grid.New(max(n.Columns, 1))
		g.EqualWidth = n.EqualWidth
		b.set(&g.MarginWidth, n.Margin)
		b.set(&g.MarginHeight, n.Margin)
		b.set(&g.MarginWidth, n.MarginWidth)
		b.set(&g.MarginHeight, n.MarginHeight)
		b.set(&g.MarginLeft, n.MarginLeft)
		b.set(&g.MarginTop, n.MarginTop)
		b.set(&g.MarginRight, n.MarginRight)
		b.set(&g.MarginBottom, n.MarginBottom)
		b.set(&g.HSpacing, n.HSpacing)
		b.set(&g.VSpacing, n.VSpacing)
		g.Logger = b.logger
		return g, nil
	case "form":
		f := &form.Layout{Logger: b.logger}
		b.set(&f.MarginWidth, n.Margin)
		b.set(&f.MarginHeight, n.Margin)
		b.set(&f.MarginWidth, n.MarginWidth)
		b.set(&f.MarginHeight, n.MarginHeight)
		b.set(&f.MarginLeft, n.MarginLeft)
		b.set(&f.MarginTop, n.MarginTop)
		b.set(&f.MarginRight, n.MarginRight)
		b.set(&f.MarginBottom, n.MarginBottom)
		b.set(&f.Spacing, n.Spacing)
		return f, nil
	case "flex":
		f := &layout.Flex{Inset: layout.UniformInset(b.px(n.Inset))}
		var err error
		if f.Axis, err = lookup("axis", n.Axis, layout.Horizontal, layout.Vertical); err != nil {
			return nil, err
		}
		dist := n.Distribute
		if dist != "" && !strings.HasPrefix(strings.ToLower(dist), "space") {
			dist = "space" + dist
		}
		f.Spacing, err = lookup("distribution", dist,
			layout.SpaceEnd, layout.SpaceStart, layout.SpaceSides,
			layout.SpaceAround, layout.SpaceBetween, layout.SpaceEvenly)
		if err != nil {
			return nil, err
		}
		if f.Alignment, err = lookup("alignment", n.Align, layout.Start, layout.Middle, layout.End); err != nil {
			return nil, err
		}
		return f, nil
	case "stack":
		s := &layout.Stack{Inset: layout.UniformInset(b.px(n.Inset))}
		var err error
		s.Alignment, err = lookup("direction", n.Align,
			layout.NW, layout.N, layout.NE, layout.E, layout.SE,
			layout.S, layout.SW, layout.W, layout.Center)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", n.Layout)
	}
}

// data returns the constraint record of the child n for alg. A nil
// record leaves the algorithm to its defaults.
func (b *builder) data(alg layout.Algorithm, n *Node, siblings map[string]layout.Child) (any, error) {
	want := map[layout.Policy]string{
		layout.Grid:       "grid",
		layout.Attachment: "form",
		layout.Row:        "flex",
		layout.Fill:       "stack",
	}[alg.Policy()]
	for _, r := range []struct {
		name string
		set  bool
	}{
		{"grid", n.Grid != nil},
		{"form", n.Form != nil},
		{"flex", n.Flex != nil},
		{"stack", n.Stack != nil},
	} {
		if r.set && r.name != want {
			return nil, fmt.Errorf("%s data in a %s panel", r.name, want)
		}
	}
	switch {
	case n.Grid != nil:
		return b.gridData(n.Grid)
	case n.Form != nil:
		return b.formData(n.Form, siblings)
	case n.Flex != nil:
		return &layout.FlexData{
			Weight: n.Flex.Weight,
			Width:  b.hint(n.Flex.Width),
			Height: b.hint(n.Flex.Height),
		}, nil
	case n.Stack != nil:
		return &layout.StackData{Expanded: n.Stack.Expanded}, nil
	}
	return nil, nil
}

func (b *builder) gridData(g *GridData) (*grid.Data, error) {
	d := &grid.Data{
		ColumnSpan:     g.ColumnSpan,
		RowSpan:        g.RowSpan,
		GrabHorizontal: g.GrabHorizontal,
		GrabVertical:   g.GrabVertical,
		WidthHint:      b.hint(g.WidthHint),
		HeightHint:     b.hint(g.HeightHint),
		MinWidth:       b.px(g.MinWidth),
		MinHeight:      b.px(g.MinHeight),
		HIndent:        b.px(g.HIndent),
		VIndent:        b.px(g.VIndent),
		Exclude:        g.Exclude,
	}
	var err error
	aligns := []grid.Align{grid.Begin, grid.Center, grid.End, grid.Fill}
	if d.HAlign, err = lookup("alignment", g.HAlign, aligns...); err != nil {
		return nil, err
	}
	if d.VAlign, err = lookup("alignment", g.VAlign, aligns...); err != nil {
		return nil, err
	}
	return d, nil
}

func (b *builder) formData(f *FormData, siblings map[string]layout.Child) (*form.Data, error) {
	d := &form.Data{Width: b.hint(f.Width), Height: b.hint(f.Height)}
	for _, e := range []struct {
		expr string
		axis layout.Axis
		dst  **form.Attachment
	}{
		{f.Left, layout.Horizontal, &d.Left},
		{f.Right, layout.Horizontal, &d.Right},
		{f.Top, layout.Vertical, &d.Top},
		{f.Bottom, layout.Vertical, &d.Bottom},
	} {
		if strings.TrimSpace(e.expr) == "" {
			continue
		}
		a, err := parseAttachment(&exprState{
			orig: e.expr,
			axis: e.axis,
			m:    b.m,
			lookup: func(name string) (layout.Child, bool) {
				ch, ok := siblings[name]
				return ch, ok
			},
		})
		if err != nil {
			return nil, err
		}
		*e.dst = a
	}
	return d, nil
}

// lookup returns the value among values whose name is name, ignoring
// case. An empty name selects the first value.
func lookup[T fmt.Stringer](what, name string, values ...T) (T, error) {
	if name == "" {
		return values[0], nil
	}
	for _, v := range values {
		if strings.EqualFold(v.String(), name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q", what, name)
}
