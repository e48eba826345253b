// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"image"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"

	"github.com/latticeui/lattice/widget"
)

func TestDrawLabelLines(t *testing.T) {
	dc := gg.NewContext(20, 40)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	drawLabel(dc, widget.NewLabel("ii\nii"), image.Rect(0, 0, 20, 40))

	img := dc.Image()
	inked := func(y0, y1 int) bool {
		for y := y0; y < y1; y++ {
			for x := 0; x < 20; x++ {
				if r, _, _, _ := img.At(x, y).RGBA(); r < 0x8000 {
					return true
				}
			}
		}
		return false
	}
	assert.True(t, inked(0, 13), "first line sits on its baseline")
	assert.True(t, inked(13, 26), "second line")
	assert.False(t, inked(26, 40))
}
