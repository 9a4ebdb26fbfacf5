/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zhimiaox/fontsheet"
	"github.com/zhimiaox/fontsheet/internal/preview"
	"github.com/zhimiaox/fontsheet/pack"
	"github.com/zhimiaox/fontsheet/render"
)

func runPack(args []string) error {
	var (
		c        common
		fs       = flag.NewFlagSet("pack", flag.ContinueOnError)
		def      = pack.DefaultOptions()
		img      = fs.String("img", "ssfiracode.png", "glyph sheet image (png, gif, jpeg or bmp)")
		out      = fs.String("o", "firacode.h", "generated source file")
		width    = fs.Int("cell-width", def.CellWidth, "glyph cell width in pixels")
		height   = fs.Int("cell-height", def.CellHeight, "glyph cell height in pixels")
		count    = fs.Int("count", def.Count, "number of glyphs to pack")
		dither   = fs.Bool("dither", false, "Floyd-Steinberg dithering for grayscale sheets")
		invert   = fs.Bool("invert", false, "dark pixels are foreground")
		lang     = fs.String("lang", string(pack.LangC), "output language: c or go")
		name     = fs.String("name", "", "array name (font_data for C, FontData for Go)")
		pkg      = fs.String("package", "font", "package clause of Go output")
		annotate = fs.Bool("annotate", false, "comment every glyph with its code and Unicode name")
		first    = fs.Int("first", 0x20, "code of glyph 0 in annotations")
		cmName   = fs.String("charmap", "", "single-byte code page for annotations, e.g. IBM437")
		show     = fs.Bool("preview", false, "print the packed glyphs as ASCII art")
	)
	c.register(fs)
	if err := c.parse(fs, args); err != nil {
		return err
	}

	opts := pack.Options{
		CellWidth:  *width,
		CellHeight: *height,
		Count:      *count,
		Dither:     *dither,
		Invert:     *invert,
	}
	hopts := pack.HeaderOptions{
		Name:     *name,
		Package:  *pkg,
		Annotate: *annotate,
	}
	var ok bool
	if hopts.FirstCode, ok = fontsheet.ConvInt[rune](*first); !ok {
		return fmt.Errorf("%w: first %d", fontsheet.ErrRangeOverflow, *first)
	}
	var err error
	if hopts.Lang, err = pack.ParseLang(*lang); err != nil {
		return err
	}
	if *cmName != "" {
		if hopts.Charmap, err = render.LookupCharmap(*cmName); err != nil {
			return err
		}
	}

	f, err := pack.ConvertFile(*img, *out, opts, hopts)
	if err != nil {
		return err
	}
	if *show {
		return preview.Font(os.Stdout, f, preview.Width(int(os.Stdout.Fd())))
	}
	return nil
}
