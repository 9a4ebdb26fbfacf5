/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package preview prints glyph cells as ASCII art.
package preview

import (
	"bufio"
	"image"
	"io"

	"golang.org/x/term"

	"github.com/zhimiaox/fontsheet"
	"github.com/zhimiaox/fontsheet/pack"
)

const (
	off = '.'
	on  = '8'
)

// Sheet prints the first count cells of sheet.
func Sheet(w io.Writer, sheet *image.Paletted, g fontsheet.Grid, count, width int) error {
	lit := func(i, x, y int) bool {
		c := g.Cell(i)
		return fontsheet.Lit(sheet, c.Min.X+x, c.Min.Y+y)
	}
	return write(w, lit, count, g.CellWidth, g.CellHeight, width)
}

// Font prints the glyphs of a packed font.
func Font(w io.Writer, f *pack.Font, width int) error {
	lit := func(i, x, y int) bool {
		return f.Row(i, y)&(1<<(f.Width-1-x)) != 0
	}
	return write(w, lit, len(f.Glyphs), f.Width, f.Height, width)
}

// Width returns the width of the terminal at fd, or 80 if fd is not a terminal.
func Width(fd int) int {
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// write prints glyphs side by side, separated by a blank column, as many per
// band as fit in width.
func write(w io.Writer, lit func(i, x, y int) bool, count, cw, ch, width int) error {
	bw := bufio.NewWriter(w)
	per := max(1, (width+1)/(cw+1))
	for first := 0; first < count; first += per {
		n := min(per, count-first)
		if first > 0 {
			bw.WriteByte('\n')
		}
		for y := 0; y < ch; y++ {
			for k := 0; k < n; k++ {
				if k > 0 {
					bw.WriteByte(' ')
				}
				for x := 0; x < cw; x++ {
					if lit(first+k, x, y) {
						bw.WriteByte(on)
					} else {
						bw.WriteByte(off)
					}
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
