package render

import (
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/zhimiaox/fontsheet/pack"
)

func TestSaveAndPack(t *testing.T) {
	opts := DefaultOptions()
	sheet, err := Render(gomono.TTF, opts)
	if err != nil {
		t.Fatal(err)
	}
	want, err := pack.Pack(sheet, pack.Options{CellWidth: 8, CellHeight: 16, Count: 95})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"sheet.png", "sheet.bmp"} {
		path := filepath.Join(t.TempDir(), name)
		if err := Save(path, sheet); err != nil {
			t.Fatal(err)
		}
		img, err := pack.Decode(path)
		if err != nil {
			t.Fatal(err)
		}
		if img.Bounds() != sheet.Bounds() {
			t.Fatalf("%s: bounds %v", name, img.Bounds())
		}
		got, err := pack.Pack(img, pack.Options{CellWidth: 8, CellHeight: 16, Count: 95})
		if err != nil {
			t.Fatal(err)
		}
		for i := range want.Glyphs {
			if string(got.Glyphs[i]) != string(want.Glyphs[i]) {
				t.Errorf("%s: glyph %d differs after a round trip", name, i)
			}
		}
	}
}
