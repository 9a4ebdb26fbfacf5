/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package render rasterizes a contiguous range of font glyphs into a
// monochrome sheet of fixed-size cells.
package render

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/zhimiaox/fontsheet"
)

// Render rasterizes opts.Start..opts.End from the font in src onto a new
// sheet covering opts.Grid. Any font or glyph error aborts the rendering.
func Render(src []byte, opts Options) (*image.Paletted, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	eng, err := newEngine(src, opts)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := opts.Grid
	sheet := fontsheet.NewSheet(g)
	baseline := 0
	if opts.Align == AlignBaseline {
		baseline = eng.ascent()
	}
	missing := make([]rune, 0)
	n := int(opts.End-opts.Start) + 1
	for i := 0; i < n; i++ {
		r := opts.runeFor(opts.Start + rune(i))
		glyph, found, err := eng.glyph(r)
		if err != nil {
			return nil, fmt.Errorf("render %U: %w", r, err)
		}
		if !found {
			missing = append(missing, r)
		}
		origin := image.Point{}
		if opts.Align == AlignBaseline {
			origin = image.Pt(glyph.left, baseline-glyph.top)
		}
		cell := placeGlyph(glyph, g.CellWidth, g.CellHeight, origin)
		draw.Draw(sheet, g.Cell(i), cell, image.Point{}, draw.Src)
	}
	if len(missing) > 0 {
		slog.Warn("font has no glyph for some runes, rendered .notdef", "runes", string(missing), "runes_raw", missing)
	}
	slog.Debug("sheet rendered",
		"engine", opts.Engine, "align", opts.Align,
		"glyphs", int(opts.End-opts.Start)+1, "size", g.Bounds().Size())
	return sheet, nil
}

// RenderFile is Render with the font read from path.
func RenderFile(path string, opts Options) (*image.Paletted, error) {
	src, err := fontsheet.ReadInput(path)
	if err != nil {
		return nil, err
	}
	return Render(src, opts)
}

func newEngine(src []byte, opts Options) (engine, error) {
	w, h := opts.Grid.CellWidth, opts.Grid.CellHeight
	switch opts.Engine {
	case EngineSFNT, "":
		return newSFNTEngine(src, w, h)
	case EngineFreetype:
		return newFreetypeEngine(src, w, h, opts.Hinting)
	}
	return nil, fmt.Errorf("unknown engine %q", opts.Engine)
}
