// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/latticeui/lattice/layout"
)

// cacheSize bounds the layouts a Shaper keeps.
const cacheSize = 1000

// Shaper breaks text into lines with a font face, keeping the most
// recently requested layouts.
//
// Font faces are not safe for concurrent use, and neither is a Shaper.
type Shaper struct {
	// Face is the font face to measure with. Nil means
	// basicfont.Face7x13.
	Face font.Face

	cache *lru.Cache[key, *Layout]
}

type key struct {
	text  string
	width layout.Hint
}

// Layout returns str broken into lines. Newlines always break. Given
// an exact width, lines also break after the last space that keeps
// their text within it, and words wider than width break between
// runes.
func (s *Shaper) Layout(str string, width layout.Hint) *Layout {
	if s.cache == nil {
		s.cache, _ = lru.New[key, *Layout](cacheSize)
	}
	k := key{text: str, width: width}
	if l, ok := s.cache.Get(k); ok {
		return l
	}
	l := s.wrap(str, width)
	s.cache.Add(k, l)
	return l
}

func (s *Shaper) face() font.Face {
	if s.Face == nil {
		return basicfont.Face7x13
	}
	return s.Face
}

func (s *Shaper) wrap(str string, width layout.Hint) *Layout {
	f := s.face()
	m := f.Metrics()
	l := &Layout{LineHeight: m.Height.Ceil(), Baseline: m.Ascent.Ceil()}
	limit := fixed.Int26_6(math.MaxInt32)
	if !width.IsNatural() {
		limit = fixed.I(max(1, width.Px()))
	}
	for _, para := range strings.Split(str, "\n") {
		l.Lines = append(l.Lines, wrapParagraph(f, para, limit)...)
	}
	return l
}

// wrapParagraph fills each line with as many words as fit within
// limit. Trailing spaces may hang past limit. It returns at least one
// line.
func wrapParagraph(f font.Face, para string, limit fixed.Int26_6) []Line {
	var lines []Line
	var cur Line
	// pen is the advance of cur.Text, trailing spaces included.
	var pen fixed.Int26_6
	for _, w := range words(para) {
		ink := visible(f, w)
		if cur.Text != "" && pen+ink > limit {
			lines = append(lines, cur)
			cur, pen = Line{}, 0
		}
		for cur.Text == "" && ink > limit {
			n, adv := prefix(f, w, limit)
			if n == len(w) {
				break
			}
			lines = append(lines, Line{Text: w[:n], Width: adv})
			w = w[n:]
			ink = visible(f, w)
		}
		cur.Text += w
		cur.Width = pen + ink
		pen += font.MeasureString(f, w)
	}
	return append(lines, cur)
}

// visible returns the advance of w without its trailing spaces.
func visible(f font.Face, w string) fixed.Int26_6 {
	return font.MeasureString(f, strings.TrimRightFunc(w, unicode.IsSpace))
}

// words splits s after every run of spaces, leaving the spaces at the
// end of the word before them.
func words(s string) []string {
	var ws []string
	start, space := 0, false
	for i, r := range s {
		sp := unicode.IsSpace(r)
		if space && !sp {
			ws = append(ws, s[start:i])
			start = i
		}
		space = sp
	}
	if start < len(s) {
		ws = append(ws, s[start:])
	}
	return ws
}

// prefix returns the byte length and advance of the longest prefix of
// w within limit. The first rune is always taken.
func prefix(f font.Face, w string, limit fixed.Int26_6) (int, fixed.Int26_6) {
	_, n := utf8.DecodeRuneInString(w)
	adv := font.MeasureString(f, w[:n])
	for n < len(w) {
		_, sz := utf8.DecodeRuneInString(w[n:])
		next := font.MeasureString(f, w[:n+sz])
		if next > limit {
			break
		}
		n, adv = n+sz, next
	}
	return n, adv
}
