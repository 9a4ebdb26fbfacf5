/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontsheet

import (
	"fmt"
	"image"
)

// Grid describes a glyph sheet: Columns × Rows cells of CellWidth × CellHeight
// pixels each, filled left to right, top to bottom.
type Grid struct {
	Columns    int
	Rows       int
	CellWidth  int
	CellHeight int
}

// Validate reports whether every dimension of g is positive.
func (g Grid) Validate() error {
	if g.Columns <= 0 || g.Rows <= 0 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return fmt.Errorf("%w: %dx%d cells of %dx%d px", ErrInvalidGrid, g.Columns, g.Rows, g.CellWidth, g.CellHeight)
	}
	return nil
}

// Bounds returns the pixel bounds of the whole sheet.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Columns*g.CellWidth, g.Rows*g.CellHeight)
}

// Capacity is the number of cells in the sheet.
func (g Grid) Capacity() int {
	return g.Columns * g.Rows
}

// Cell returns the pixel rectangle of glyph index i. Indices at or beyond
// Capacity follow the same layout and fall outside Bounds.
func (g Grid) Cell(i int) image.Rectangle {
	x := (i % g.Columns) * g.CellWidth
	y := (i / g.Columns) * g.CellHeight
	return image.Rect(x, y, x+g.CellWidth, y+g.CellHeight)
}

// GridFor derives the grid of a sheet with the given bounds. The sheet must be
// an exact multiple of the cell size in both directions.
func GridFor(bounds image.Rectangle, cellWidth, cellHeight int) (Grid, error) {
	if cellWidth <= 0 || cellHeight <= 0 {
		return Grid{}, fmt.Errorf("%w: cell %dx%d", ErrInvalidGrid, cellWidth, cellHeight)
	}
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || w%cellWidth != 0 || h%cellHeight != 0 {
		return Grid{}, fmt.Errorf("%w: image %dx%d, cell %dx%d", ErrDimensionMismatch, w, h, cellWidth, cellHeight)
	}
	return Grid{
		Columns:    w / cellWidth,
		Rows:       h / cellHeight,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}, nil
}
