/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"image"

	"github.com/zhimiaox/fontsheet"
)

// bitmap is a rendered glyph. left and top locate the top-left pixel of mask
// relative to the pen position on the baseline, y pointing up.
type bitmap struct {
	mask      *image.Alpha
	left, top int
}

type engine interface {
	// glyph renders r. found is false when the font has no glyph for r and
	// the .notdef glyph was rendered instead.
	glyph(r rune) (g bitmap, found bool, err error)
	// ascent in pixels at the cell height.
	ascent() int
}

const (
	// monochrome threshold on coverage
	litAlpha = 0x80
	// weakest span peak kept by dropout control
	dropoutAlpha = 0x40
)

// monoMask thresholds m to one bit per pixel, row-major over m's bounds.
// Thin stems that never reach litAlpha would vanish, so on every scanline a
// run of covered pixels without a lit one lights its strongest pixel, provided
// that reaches dropoutAlpha.
func monoMask(m *image.Alpha) []bool {
	b := m.Bounds()
	w := b.Dx()
	lit := make([]bool, w*b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := lit[y*w : (y+1)*w]
		peak, peakX, anyLit := uint8(0), -1, false
		flush := func() {
			if !anyLit && peak >= dropoutAlpha {
				row[peakX] = true
			}
			peak, peakX, anyLit = 0, -1, false
		}
		for x := 0; x < w; x++ {
			a := m.AlphaAt(b.Min.X+x, b.Min.Y+y).A
			if a == 0 {
				flush()
				continue
			}
			if a >= litAlpha {
				row[x] = true
				anyLit = true
			}
			if a > peak {
				peak, peakX = a, x
			}
		}
		flush()
	}
	return lit
}

// placeGlyph copies the lit pixels of g into a blank w x h cell with the
// bitmap's top-left pixel at origin. Pixels outside the cell are dropped.
func placeGlyph(g bitmap, w, h int, origin image.Point) *image.Paletted {
	cell := image.NewPaletted(image.Rect(0, 0, w, h), fontsheet.Palette)
	if g.mask == nil {
		return cell
	}
	mw := g.mask.Bounds().Dx()
	for i, on := range monoMask(g.mask) {
		if !on {
			continue
		}
		p := origin.Add(image.Pt(i%mw, i/mw))
		if p.In(cell.Rect) {
			cell.SetColorIndex(p.X, p.Y, fontsheet.Foreground)
		}
	}
	return cell
}
