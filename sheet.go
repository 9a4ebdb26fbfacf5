/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontsheet

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Palette of a monochrome sheet. Index 0 is background, index 1 is foreground.
var Palette = color.Palette{color.Black, color.White}

const (
	Background uint8 = 0
	Foreground uint8 = 1
)

// NewSheet returns a blank sheet covering g.
func NewSheet(g Grid) *image.Paletted {
	return image.NewPaletted(g.Bounds(), Palette)
}

// Monochrome converts src to a 1-bit image with origin (0, 0). Without
// dithering a pixel is foreground when its luma is at least 128.
func Monochrome(src image.Image, dither bool) *image.Paletted {
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), Palette)
	if dither {
		draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, b.Min)
		return dst
	}
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			if g.Y >= 0x80 {
				dst.SetColorIndex(x, y, Foreground)
			}
		}
	}
	return dst
}

// Invert swaps foreground and background in place.
func Invert(p *image.Paletted) {
	for i, v := range p.Pix {
		if v == Background {
			p.Pix[i] = Foreground
		} else {
			p.Pix[i] = Background
		}
	}
}

// Lit reports whether the pixel at (x, y) is foreground. Pixels outside p are
// background.
func Lit(p *image.Paletted, x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	return p.ColorIndexAt(x, y) != Background
}
