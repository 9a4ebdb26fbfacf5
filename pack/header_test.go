package pack

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"
)

var twoGlyphs = &Font{
	Width:       8,
	Height:      2,
	BytesPerRow: 1,
	Glyphs:      [][]byte{{0xFF, 0x00}, {0x00, 0x80}},
}

func TestWriteC(t *testing.T) {
	code, err := twoGlyphs.Generate(HeaderOptions{Source: "sheet.png"})
	if err != nil {
		t.Fatal(err)
	}
	want := "/* Generated font data from sheet.png */\n\n" +
		"const unsigned char font_data[2][2] = {\n" +
		"        { 0xFF, 0x00,  },\n" +
		"        { 0x00, 0x80,  },\n" +
		"};\n"
	if d := cmp.Diff(want, string(code)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestWriteCAnnotated(t *testing.T) {
	code, err := twoGlyphs.Generate(HeaderOptions{Source: "s.png", Name: "glyphs", Annotate: true, FirstCode: 0x41})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"const unsigned char glyphs[2][2] = {",
		"{ 0xFF, 0x00,  }, /* 0x41 'A' LATIN CAPITAL LETTER A */",
		"{ 0x00, 0x80,  }, /* 0x42 'B' LATIN CAPITAL LETTER B */",
	} {
		if !strings.Contains(string(code), want) {
			t.Errorf("missing %q in\n%s", want, code)
		}
	}
}

func TestAnnotateCharmap(t *testing.T) {
	o := HeaderOptions{Annotate: true, FirstCode: 0xDB, Charmap: charmap.CodePage437}
	if got, want := o.note(0), "0xDB '█' FULL BLOCK"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	o = HeaderOptions{Annotate: true, FirstCode: 0x20}
	if got, want := o.note(0), "0x20 SPACE"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteGo(t *testing.T) {
	code, err := twoGlyphs.Generate(HeaderOptions{Lang: LangGo, Source: "sheet.png", Package: "firacode"})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Code generated by fontsheet from sheet.png. DO NOT EDIT.",
		"package firacode",
		"var FontData = [2][2]byte{",
		"{0xff, 0x00},",
		"{0x00, 0x80},",
	} {
		if !strings.Contains(string(code), want) {
			t.Errorf("missing %q in\n%s", want, code)
		}
	}
}

func TestParseLang(t *testing.T) {
	if l, err := ParseLang("GO"); err != nil || l != LangGo {
		t.Errorf("got %q, %v", l, err)
	}
	if _, err := ParseLang("rust"); err == nil {
		t.Error("expected an error")
	}
}
