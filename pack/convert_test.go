package pack

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/zhimiaox/fontsheet"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "sheet.png"), filepath.Join(dir, "font.h")

	img := image.NewPaletted(image.Rect(0, 0, 96, 128), fontsheet.Palette)
	img.SetColorIndex(8, 16, fontsheet.Foreground)
	writePNG(t, in, img)

	f, err := ConvertFile(in, out, DefaultOptions(), HeaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Glyphs) != 256 || f.Glyphs[13][0] != 0x80 {
		t.Errorf("unexpected glyphs: %d, %#02x", len(f.Glyphs), f.Glyphs[13][0])
	}
	code, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(code, []byte("/* Generated font data from "+in+" */\n\nconst unsigned char font_data[256][16] = {\n")) {
		t.Errorf("unexpected header:\n%.200s", code)
	}
}

func TestConvertFileMismatchWritesNothing(t *testing.T) {
	dir := t.TempDir()
	in, out := filepath.Join(dir, "sheet.png"), filepath.Join(dir, "font.h")
	writePNG(t, in, image.NewGray(image.Rect(0, 0, 100, 128)))

	_, err := ConvertFile(in, out, DefaultOptions(), HeaderOptions{})
	if !errors.Is(err, fontsheet.ErrDimensionMismatch) {
		t.Fatalf("got %v, want ErrDimensionMismatch", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output exists after a failed conversion: %v", err)
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "font.h")
	_, err := ConvertFile(filepath.Join(dir, "nope.png"), out, DefaultOptions(), HeaderOptions{})
	if !errors.Is(err, fontsheet.ErrInputNotFound) {
		t.Fatalf("got %v, want ErrInputNotFound", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output exists after a failed conversion: %v", err)
	}
}

func TestDecodeGrayscale(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "gray.png")
	img := image.NewGray(image.Rect(0, 0, 8, 1))
	img.SetGray(7, 0, color.Gray{Y: 0xc0})
	writePNG(t, in, img)

	dec, err := Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Pack(dec, Options{CellWidth: 8, CellHeight: 1, Count: 1})
	if err != nil {
		t.Fatal(err)
	}
	if f.Glyphs[0][0] != 0x01 {
		t.Errorf("got %#02x, want 0x01", f.Glyphs[0][0])
	}
}
