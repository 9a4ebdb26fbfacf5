/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

type sfntEngine struct {
	f   *sfnt.Font
	buf sfnt.Buffer
	// x/y pixels per em
	width, height int
}

func newSFNTEngine(src []byte, width, height int) (*sfntEngine, error) {
	f, err := sfnt.Parse(src)
	if err != nil {
		return nil, err
	}
	return &sfntEngine{f: f, width: width, height: height}, nil
}

func (e *sfntEngine) ascent() int {
	metrics, err := e.f.Metrics(&e.buf, fixed.I(e.height), font.HintingNone)
	if err != nil {
		return e.height
	}
	return metrics.Ascent.Ceil()
}

func (e *sfntEngine) glyph(r rune) (bitmap, bool, error) {
	glyphIndex, err := e.f.GlyphIndex(&e.buf, r)
	if err != nil {
		return bitmap{}, false, err
	}
	found := glyphIndex != 0
	// outlines are loaded at the y ppem, x is scaled down to the x ppem afterwards
	segments, err := e.f.LoadGlyph(&e.buf, glyphIndex, fixed.I(e.height), nil)
	if err != nil {
		return bitmap{}, found, err
	}
	sx := float32(e.width) / float32(e.height)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X) / 64 * sx, float32(p.Y) / 64
	}

	// control box, y down
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, seg := range segments {
		for _, a := range seg.Args[:argCount(seg.Op)] {
			x, y := pt(a)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if len(segments) == 0 || minX > maxX {
		return bitmap{}, found, nil
	}
	x0, y0 := int(math.Floor(float64(minX))), int(math.Floor(float64(minY)))
	x1, y1 := int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY)))
	width, height := x1-x0, y1-y0
	if width == 0 || height == 0 {
		return bitmap{}, found, nil
	}

	var (
		originX = float32(-x0)
		originY = float32(-y0)
		started bool
	)
	rasterizer := vector.NewRasterizer(width, height)
	rasterizer.DrawOp = draw.Src
	for _, seg := range segments {
		ax, ay := pt(seg.Args[0])
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				rasterizer.ClosePath()
			}
			rasterizer.MoveTo(originX+ax, originY+ay)
			started = true
		case sfnt.SegmentOpLineTo:
			rasterizer.LineTo(originX+ax, originY+ay)
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(seg.Args[1])
			rasterizer.QuadTo(originX+ax, originY+ay, originX+bx, originY+by)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(seg.Args[1])
			cx, cy := pt(seg.Args[2])
			rasterizer.CubeTo(originX+ax, originY+ay, originX+bx, originY+by, originX+cx, originY+cy)
		}
	}
	if started {
		rasterizer.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	rasterizer.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return bitmap{mask: dst, left: x0, top: -y0}, found, nil
}

func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	}
	return 1
}
