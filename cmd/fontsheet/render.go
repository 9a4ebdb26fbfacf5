/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/zhimiaox/fontsheet"
	"github.com/zhimiaox/fontsheet/internal/preview"
	"github.com/zhimiaox/fontsheet/render"
)

func runRender(args []string) error {
	var (
		c       common
		fs      = flag.NewFlagSet("render", flag.ContinueOnError)
		def     = render.DefaultOptions()
		font    = fs.String("font", "ssfiracode.ttf", "TrueType/OpenType font to rasterize")
		out     = fs.String("o", "ssfiracode.png", "glyph sheet to write (.png or .bmp)")
		width   = fs.Int("cell-width", def.Grid.CellWidth, "glyph cell width in pixels")
		height  = fs.Int("cell-height", def.Grid.CellHeight, "glyph cell height in pixels")
		columns = fs.Int("columns", def.Grid.Columns, "cells per sheet row")
		rows    = fs.Int("rows", def.Grid.Rows, "cell rows")
		start   = fs.Int("start", int(def.Start), "first code of the range")
		end     = fs.Int("end", int(def.End), "last code of the range (inclusive)")
		engine  = fs.String("engine", string(def.Engine), "rasterizer: sfnt or freetype")
		align   = fs.String("align", def.Align.String(), "glyph placement in the cell: topleft or baseline")
		hinting = fs.String("hinting", "none", "freetype hinting: none, vertical or full")
		cmName  = fs.String("charmap", "", "single-byte code page for codes 0-255, e.g. IBM437")
		show    = fs.Bool("preview", false, "print the rendered glyphs as ASCII art")
	)
	c.register(fs)
	if err := c.parse(fs, args); err != nil {
		return err
	}

	opts := def
	opts.Grid.CellWidth, opts.Grid.CellHeight = *width, *height
	opts.Grid.Columns, opts.Grid.Rows = *columns, *rows
	var ok bool
	if opts.Start, ok = fontsheet.ConvInt[rune](*start); !ok {
		return fmt.Errorf("%w: start %d", fontsheet.ErrRangeOverflow, *start)
	}
	if opts.End, ok = fontsheet.ConvInt[rune](*end); !ok {
		return fmt.Errorf("%w: end %d", fontsheet.ErrRangeOverflow, *end)
	}
	var err error
	if opts.Engine, err = render.ParseEngine(*engine); err != nil {
		return err
	}
	if opts.Align, err = render.ParseAlign(*align); err != nil {
		return err
	}
	if opts.Hinting, err = render.ParseHinting(*hinting); err != nil {
		return err
	}
	if *cmName != "" {
		if opts.Charmap, err = render.LookupCharmap(*cmName); err != nil {
			return err
		}
	}

	sheet, err := render.RenderFile(*font, opts)
	if err != nil {
		return err
	}
	if err := render.Save(*out, sheet); err != nil {
		return err
	}
	slog.Info("Saved font grid", "output", *out, "font", *font,
		"size", sheet.Bounds().Size(), "glyphs", int(opts.End-opts.Start)+1)

	if *show {
		count := int(opts.End-opts.Start) + 1
		return preview.Sheet(os.Stdout, sheet, opts.Grid, count, preview.Width(int(os.Stdout.Fd())))
	}
	return nil
}
