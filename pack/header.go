/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pack

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/runenames"
)

// Lang is the language of the generated source.
type Lang string

const (
	LangC  Lang = "c"
	LangGo Lang = "go"
)

// ParseLang returns the language named s.
func ParseLang(s string) (Lang, error) {
	switch l := Lang(strings.ToLower(s)); l {
	case LangC, LangGo:
		return l, nil
	case "":
		return LangC, nil
	}
	return "", fmt.Errorf("unknown output language %q", s)
}

// HeaderOptions control source generation.
type HeaderOptions struct {
	Lang Lang
	// Name of the array, font_data for C and FontData for Go by default.
	Name string
	// Source is the sheet path quoted in the leading comment.
	Source string
	// Package clause of Go output, "font" by default.
	Package string
	// Annotate appends the code, character and Unicode name of each glyph,
	// counting codes from FirstCode, optionally through Charmap.
	Annotate  bool
	FirstCode rune
	Charmap   *charmap.Charmap
}

// Generate returns the source embedding f.
func (f *Font) Generate(opts HeaderOptions) ([]byte, error) {
	var buf bytes.Buffer
	var err error
	switch opts.Lang {
	case LangGo:
		err = f.writeGo(&buf, opts)
	case LangC, "":
		err = f.WriteC(&buf, opts)
	default:
		err = fmt.Errorf("unknown output language %q", opts.Lang)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteC writes f as a C array declaration.
func (f *Font) WriteC(w io.Writer, opts HeaderOptions) error {
	name := opts.Name
	if name == "" {
		name = "font_data"
	}
	ew := &errWriter{w: w}
	ew.printf("/* Generated font data from %s */\n\n", opts.Source)
	ew.printf("const unsigned char %s[%d][%d] = {\n", name, len(f.Glyphs), f.Height*f.BytesPerRow)
	for i, glyph := range f.Glyphs {
		ew.printf("        { ")
		for _, b := range glyph {
			ew.printf("0x%02X, ", b)
		}
		ew.printf(" },")
		if note := opts.note(i); note != "" {
			ew.printf(" /* %s */", note)
		}
		ew.printf("\n")
	}
	ew.printf("};\n")
	return ew.err
}

func (f *Font) writeGo(w io.Writer, opts HeaderOptions) error {
	name, pkg := opts.Name, opts.Package
	if name == "" {
		name = "FontData"
	}
	if pkg == "" {
		pkg = "font"
	}
	var src bytes.Buffer
	fmt.Fprintf(&src, "// Code generated by fontsheet from %s. DO NOT EDIT.\n\n", opts.Source)
	fmt.Fprintf(&src, "package %s\n\n", pkg)
	fmt.Fprintf(&src, "// %s holds %d glyphs of %dx%d pixels, %d byte(s) per row.\n",
		name, len(f.Glyphs), f.Width, f.Height, f.BytesPerRow)
	fmt.Fprintf(&src, "var %s = [%d][%d]byte{\n", name, len(f.Glyphs), f.Height*f.BytesPerRow)
	for i, glyph := range f.Glyphs {
		src.WriteString("{")
		for k, b := range glyph {
			if k > 0 {
				src.WriteString(", ")
			}
			fmt.Fprintf(&src, "0x%02x", b)
		}
		src.WriteString("},")
		if note := opts.note(i); note != "" {
			fmt.Fprintf(&src, " // %s", note)
		}
		src.WriteString("\n")
	}
	src.WriteString("}\n")

	code, err := format.Source(src.Bytes())
	if err != nil {
		return fmt.Errorf("format generated source: %w", err)
	}
	_, err = w.Write(code)
	return err
}

// note describes glyph i, e.g. "0x41 'A' LATIN CAPITAL LETTER A".
func (o HeaderOptions) note(i int) string {
	if !o.Annotate {
		return ""
	}
	code := o.FirstCode + rune(i)
	r := code
	if o.Charmap != nil {
		if code > 0xFF {
			return fmt.Sprintf("0x%02X", code)
		}
		r = o.Charmap.DecodeByte(byte(code))
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "0x%02X", code)
	if unicode.IsPrint(r) && r != ' ' {
		fmt.Fprintf(&sb, " '%c'", r)
	}
	if n := runenames.Name(r); n != "" {
		sb.WriteString(" " + n)
	}
	return sb.String()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
