/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"bytes"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/zhimiaox/fontsheet"
)

// Save encodes img as BMP when path ends in .bmp and as PNG otherwise. A
// two-colour paletted image is written as a 1-bit PNG.
func Save(path string, img image.Image) error {
	var buf bytes.Buffer
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(&buf, img)
	default:
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return err
	}
	return fontsheet.WriteFileAtomic(path, buf.Bytes())
}
