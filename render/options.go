/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/zhimiaox/fontsheet"
)

// Engine selects the glyph rasterizer.
type Engine string

const (
	// EngineSFNT renders unhinted outlines from x/image/font/sfnt.
	EngineSFNT Engine = "sfnt"
	// EngineFreetype renders TrueType outlines with the freetype port, optionally hinted.
	EngineFreetype Engine = "freetype"
)

// ParseEngine returns the engine named s.
func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(s)); e {
	case EngineSFNT, EngineFreetype:
		return e, nil
	}
	return "", fmt.Errorf("unknown engine %q", s)
}

// Align controls where a glyph bitmap is placed inside its cell.
type Align int

const (
	// AlignTopLeft puts the top-left pixel of the glyph bitmap at the top-left of the cell.
	AlignTopLeft Align = iota
	// AlignBaseline keeps the glyph bearings, with the baseline at the font ascent.
	AlignBaseline
)

// ParseAlign returns the alignment named s ("topleft" or "baseline").
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(s) {
	case "topleft", "top-left", "":
		return AlignTopLeft, nil
	case "baseline":
		return AlignBaseline, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", s)
}

func (a Align) String() string {
	if a == AlignBaseline {
		return "baseline"
	}
	return "topleft"
}

// ParseHinting returns the hinting mode named s ("none", "vertical" or "full").
func ParseHinting(s string) (font.Hinting, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return font.HintingNone, nil
	case "vertical":
		return font.HintingVertical, nil
	case "full":
		return font.HintingFull, nil
	}
	return font.HintingNone, fmt.Errorf("unknown hinting %q", s)
}

// LookupCharmap returns the single-byte code page registered with IANA under
// name, e.g. "IBM437" or "ISO-8859-1".
func LookupCharmap(name string) (*charmap.Charmap, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, err
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("%s is not a single-byte code page", name)
	}
	return cm, nil
}

// Options configure a sheet rendering.
type Options struct {
	Grid fontsheet.Grid
	// Start and End are the inclusive code range, one cell per code.
	Start, End rune
	Engine     Engine
	Align      Align
	// Hinting only applies to EngineFreetype.
	Hinting font.Hinting
	// Charmap, when set, maps codes 0x00-0xFF to runes before rendering.
	Charmap *charmap.Charmap
}

// DefaultOptions is the printable ASCII range on a 12x8 grid of 8x16 cells.
func DefaultOptions() Options {
	return Options{
		Grid: fontsheet.Grid{
			Columns:    12,
			Rows:       8,
			CellWidth:  8,
			CellHeight: 16,
		},
		Start:   0x20,
		End:     0x7E,
		Engine:  EngineSFNT,
		Align:   AlignTopLeft,
		Hinting: font.HintingNone,
	}
}

func (o Options) validate() error {
	if err := o.Grid.Validate(); err != nil {
		return err
	}
	if o.End < o.Start || o.Start < 0 || o.End > unicode.MaxRune {
		return fmt.Errorf("%w: %#x-%#x", fontsheet.ErrRangeOverflow, o.Start, o.End)
	}
	if n := int(o.End-o.Start) + 1; n > o.Grid.Capacity() {
		return fmt.Errorf("%w: %d codes, %d cells", fontsheet.ErrRangeOverflow, n, o.Grid.Capacity())
	}
	if o.Charmap != nil && o.End > 0xFF {
		return fmt.Errorf("%w: code page range ends at 0xff, got %#x", fontsheet.ErrRangeOverflow, o.End)
	}
	return nil
}

func (o Options) runeFor(code rune) rune {
	if o.Charmap == nil {
		return code
	}
	return o.Charmap.DecodeByte(byte(code))
}
