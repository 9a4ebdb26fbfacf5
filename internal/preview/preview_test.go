package preview

import (
	"bytes"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zhimiaox/fontsheet"
	"github.com/zhimiaox/fontsheet/pack"
)

func TestSheet(t *testing.T) {
	g := fontsheet.Grid{Columns: 3, Rows: 1, CellWidth: 2, CellHeight: 2}
	sheet := fontsheet.NewSheet(g)
	sheet.SetColorIndex(0, 0, fontsheet.Foreground)
	sheet.SetColorIndex(3, 1, fontsheet.Foreground)
	sheet.SetColorIndex(4, 0, fontsheet.Foreground)

	var buf bytes.Buffer
	if err := Sheet(&buf, sheet, g, 3, 5); err != nil {
		t.Fatal(err)
	}
	want := "8. ..\n" +
		".. .8\n" +
		"\n" +
		"8.\n" +
		"..\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestFont(t *testing.T) {
	f := &pack.Font{Width: 3, Height: 2, BytesPerRow: 1, Glyphs: [][]byte{{0x04, 0x03}, {0x07, 0x00}}}
	var buf bytes.Buffer
	if err := Font(&buf, f, 80); err != nil {
		t.Fatal(err)
	}
	want := "8.. 888\n" +
		".88 ...\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestWidthNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if w := Width(int(f.Fd())); w != 80 {
		t.Errorf("got %d", w)
	}
}
