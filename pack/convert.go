/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pack

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	// sheet decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/zhimiaox/fontsheet"
)

// Decode reads a sheet image from path.
func Decode(path string) (image.Image, error) {
	data, err := fontsheet.ReadInput(path)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	slog.Debug("sheet decoded", "path", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

// ConvertFile packs the sheet at in and writes the generated source to out.
// Nothing is written unless packing and generation succeed.
func ConvertFile(in, out string, opts Options, hopts HeaderOptions) (*Font, error) {
	img, err := Decode(in)
	if err != nil {
		return nil, err
	}
	f, err := Pack(img, opts)
	if err != nil {
		return nil, err
	}
	if hopts.Source == "" {
		hopts.Source = in
	}
	code, err := f.Generate(hopts)
	if err != nil {
		return nil, err
	}
	if err := fontsheet.WriteFileAtomic(out, code); err != nil {
		return nil, err
	}
	slog.Info("Conversion complete", "output", out, "glyphs", len(f.Glyphs), "lang", hopts.Lang)
	return f, nil
}
