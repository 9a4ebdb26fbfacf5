/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pack converts a monochrome glyph sheet into packed glyph rows, one
// bit per pixel, and generates C or Go source embedding them.
package pack

import (
	"fmt"
	"image"
	"log/slog"
	"unicode"

	"github.com/zhimiaox/fontsheet"
)

// Options describe the sheet layout and pixel conversion.
type Options struct {
	CellWidth  int
	CellHeight int
	// Count is the number of glyphs to pack, starting at cell 0.
	Count int
	// Dither converts grayscale sheets with Floyd-Steinberg error diffusion
	// instead of a fixed threshold.
	Dither bool
	// Invert treats dark pixels as foreground.
	Invert bool
}

// MaxCount bounds the glyph count: one glyph per Unicode code point.
const MaxCount = unicode.MaxRune + 1

// DefaultOptions packs 256 glyphs of 8x16 pixels.
func DefaultOptions() Options {
	return Options{CellWidth: 8, CellHeight: 16, Count: 256}
}

// Font is a packed bitmap font. Each glyph holds Height rows of BytesPerRow
// bytes. A row is a Width-bit value with column x at bit Width-1-x, stored
// big-endian.
type Font struct {
	Width       int
	Height      int
	BytesPerRow int
	Glyphs      [][]byte
}

// BytesPerRow returns the number of bytes needed for a row of width pixels.
func BytesPerRow(width int) int {
	return (width + 7) / 8
}

// Row returns row y of glyph i as a Width-bit value.
func (f *Font) Row(i, y int) uint64 {
	var v uint64
	for _, b := range f.Glyphs[i][y*f.BytesPerRow : (y+1)*f.BytesPerRow] {
		v = v<<8 | uint64(b)
	}
	return v
}

// Pack packs opts.Count glyphs from img. The image must be an exact multiple
// of the cell size. Glyphs whose cell lies outside the image pack as zeros.
func Pack(img image.Image, opts Options) (*Font, error) {
	if opts.Count <= 0 || opts.Count > MaxCount {
		return nil, fmt.Errorf("%w: glyph count %d", fontsheet.ErrInvalidGrid, opts.Count)
	}
	if opts.CellWidth > 64 {
		return nil, fmt.Errorf("%w: cell width %d exceeds 64", fontsheet.ErrInvalidGrid, opts.CellWidth)
	}
	grid, err := fontsheet.GridFor(img.Bounds(), opts.CellWidth, opts.CellHeight)
	if err != nil {
		return nil, err
	}
	sheet := fontsheet.Monochrome(img, opts.Dither)
	if opts.Invert {
		fontsheet.Invert(sheet)
	}
	if opts.Count > grid.Capacity() {
		slog.Warn("glyph count exceeds the sheet, packing blank glyphs",
			"count", opts.Count, "cells", grid.Capacity())
	}

	f := &Font{
		Width:       opts.CellWidth,
		Height:      opts.CellHeight,
		BytesPerRow: BytesPerRow(opts.CellWidth),
		Glyphs:      make([][]byte, opts.Count),
	}
	for i := range f.Glyphs {
		f.Glyphs[i] = packCell(sheet, grid.Cell(i), f.BytesPerRow)
	}
	return f, nil
}

// packCell packs the pixels of cell r, row by row.
func packCell(sheet *image.Paletted, r image.Rectangle, bpr int) []byte {
	w := r.Dx()
	out := make([]byte, r.Dy()*bpr)
	for y := 0; y < r.Dy(); y++ {
		var v uint64
		for x := 0; x < w; x++ {
			if fontsheet.Lit(sheet, r.Min.X+x, r.Min.Y+y) {
				v |= 1 << (w - 1 - x)
			}
		}
		row := out[y*bpr : (y+1)*bpr]
		for k := bpr - 1; k >= 0; k-- {
			row[k] = byte(v)
			v >>= 8
		}
	}
	return out
}
