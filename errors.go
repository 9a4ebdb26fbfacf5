/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontsheet

import "errors"

var (
	// ErrInputNotFound is returned when a font or sheet image does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrDimensionMismatch is returned when a sheet is not an exact multiple of the cell size.
	ErrDimensionMismatch = errors.New("image dimensions are not a multiple of character dimensions")
	// ErrRangeOverflow is returned when a codepoint range does not fit the grid.
	ErrRangeOverflow = errors.New("codepoint range does not fit the grid")
	// ErrInvalidGrid is returned for non-positive or out-of-range grid, cell or glyph count values.
	ErrInvalidGrid = errors.New("invalid grid")
)
