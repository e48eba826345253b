// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"fmt"
	"strconv"

	"github.com/latticeui/lattice/layout"
	"github.com/latticeui/lattice/layout/form"
	"github.com/latticeui/lattice/unit"
)

type exprState struct {
	orig string
	expr string
	axis layout.Axis
	m    unit.Metric
	// lookup returns the sibling with the given name.
	lookup func(name string) (layout.Child, bool)
}

type exprError string

// parseAttachment parses an attachment expression for an edge along
// axis. Errors mark the failing position with a cross, ✗.
func parseAttachment(st *exprState) (a *form.Attachment, err error) {
	st.expr = st.orig
	defer func() {
		if e := recover(); e != nil {
			msg, ok := e.(exprError)
			if !ok {
				panic(e)
			}
			pos := len(st.orig) - len(st.expr)
			a = nil
			err = fmt.Errorf("attachment %s:%d: %s", st.orig[:pos]+"✗"+st.orig[pos:], pos, msg)
		}
	}()
	a = parseBase(st)
	if !atEnd(st) {
		switch peek(st) {
		case '+':
			expect(st, "+")
			a.Offset += st.m.Px(parseLength(st))
		case '-':
			expect(st, "-")
			a.Offset -= st.m.Px(parseLength(st))
		default:
			errorf("expected + or -")
		}
	}
	if !atEnd(st) {
		errorf("unexpected %q", st.expr)
	}
	return a, nil
}

func parseBase(st *exprState) *form.Attachment {
	c := peek(st)
	if c == '_' || isLetter(c) {
		return parseRef(st)
	}
	// A fraction starts with an integer; anything else is a length.
	save := st.expr
	if isDigit(c) {
		num := parseInt(st)
		if !atEnd(st) {
			switch peek(st) {
			case '%':
				expect(st, "%")
				return form.Percent(num, 0)
			case '/':
				expect(st, "/")
				return form.Fraction(num, parseInt(st), 0)
			}
		}
	}
	st.expr = save
	return form.Percent(0, st.m.Px(parseLength(st)))
}

func parseRef(st *exprState) *form.Attachment {
	skipWhitespace(st)
	save := st.expr
	name := parseIdent(st)
	ref, ok := st.lookup(name)
	if !ok {
		st.expr = save
		errorf("unknown sibling %q", name)
	}
	align := form.Default
	if !atEnd(st) && peek(st) == '.' {
		expect(st, ".")
		edge := parseIdent(st)
		a, ok := alignFor(edge, st.axis)
		if !ok {
			errorf("invalid %s edge %q", st.axis, edge)
		}
		align = a
	}
	return form.To(ref, 0, align)
}

func alignFor(edge string, axis layout.Axis) (form.Align, bool) {
	switch edge {
	case "default":
		return form.Default, true
	case "near":
		return form.Near, true
	case "far":
		return form.Far, true
	case "center":
		return form.Center, true
	}
	near, far := "left", "right"
	if axis == layout.Vertical {
		near, far = "top", "bottom"
	}
	switch edge {
	case near:
		return form.Near, true
	case far:
		return form.Far, true
	}
	return 0, false
}

func parseLength(st *exprState) unit.Value {
	skipWhitespace(st)
	i := 0
	for ; i < len(st.expr); i++ {
		c := rune(st.expr[i])
		if !isDigit(c) && c != '.' {
			break
		}
	}
	for ; i < len(st.expr); i++ {
		if !isLetter(rune(st.expr[i])) {
			break
		}
	}
	expr := st.expr[:i]
	if expr == "" {
		errorf("missing length")
	}
	v, err := unit.Parse(expr)
	if err != nil {
		errorf("invalid length %q", expr)
	}
	st.expr = st.expr[i:]
	return v
}

func parseInt(st *exprState) int {
	skipWhitespace(st)
	i := 0
	for ; i < len(st.expr); i++ {
		if !isDigit(rune(st.expr[i])) {
			break
		}
	}
	expr := st.expr[:i]
	v, err := strconv.Atoi(expr)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	st.expr = st.expr[i:]
	return v
}

func parseIdent(st *exprState) string {
	skipWhitespace(st)
	i := 0
	for ; i < len(st.expr); i++ {
		c := rune(st.expr[i])
		if !isLetter(c) && c != '_' && (i == 0 || !isDigit(c)) {
			break
		}
	}
	if i == 0 {
		errorf("missing name")
	}
	name := st.expr[:i]
	st.expr = st.expr[i:]
	return name
}

func atEnd(st *exprState) bool {
	skipWhitespace(st)
	return len(st.expr) == 0
}

func peek(st *exprState) rune {
	skipWhitespace(st)
	if len(st.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(st.expr[0])
}

func expect(st *exprState, str string) {
	skipWhitespace(st)
	n := len(str)
	if len(st.expr) < n || st.expr[:n] != str {
		errorf("expected %q", str)
	}
	st.expr = st.expr[n:]
}

func skipWhitespace(st *exprState) {
	for len(st.expr) > 0 {
		switch st.expr[0] {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			st.expr = st.expr[1:]
		default:
			return
		}
	}
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c rune) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func errorf(f string, args ...any) {
	panic(exprError(fmt.Sprintf(f, args...)))
}
