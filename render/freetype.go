/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package render

import (
	"image"

	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type freetypeEngine struct {
	f       *truetype.Font
	gb      truetype.GlyphBuf
	hinting font.Hinting
	asc     int
	// x/y pixels per em
	width, height int
	points        []truetype.Point
}

func newFreetypeEngine(src []byte, width, height int, hinting font.Hinting) (*freetypeEngine, error) {
	f, err := truetype.Parse(src)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{Size: float64(height), DPI: 72, Hinting: hinting})
	defer face.Close()
	return &freetypeEngine{
		f:       f,
		hinting: hinting,
		asc:     face.Metrics().Ascent.Ceil(),
		width:   width,
		height:  height,
	}, nil
}

func (e *freetypeEngine) ascent() int { return e.asc }

func (e *freetypeEngine) glyph(r rune) (bitmap, bool, error) {
	idx := e.f.Index(r)
	if err := e.gb.Load(e.f, fixed.I(e.height), idx, e.hinting); err != nil {
		return bitmap{}, idx != 0, err
	}
	found := idx != 0
	if len(e.gb.Points) == 0 {
		return bitmap{}, found, nil
	}

	// scale x to the x ppem; glyph buffer coordinates are y up
	e.points = append(e.points[:0], e.gb.Points...)
	for i := range e.points {
		e.points[i].X = fixed.Int26_6(int64(e.points[i].X) * int64(e.width) / int64(e.height))
	}
	bounds := fixed.Rectangle26_6{Min: fixed.Point26_6{X: e.points[0].X, Y: e.points[0].Y}}
	bounds.Max = bounds.Min
	for _, p := range e.points[1:] {
		bounds.Min.X, bounds.Max.X = min(bounds.Min.X, p.X), max(bounds.Max.X, p.X)
		bounds.Min.Y, bounds.Max.Y = min(bounds.Min.Y, p.Y), max(bounds.Max.Y, p.Y)
	}
	x0, x1 := bounds.Min.X.Floor(), bounds.Max.X.Ceil()
	yBottom, yTop := bounds.Min.Y.Floor(), bounds.Max.Y.Ceil()
	width, height := x1-x0, yTop-yBottom
	if width == 0 || height == 0 {
		return bitmap{}, found, nil
	}

	rast := raster.NewRasterizer(width, height)
	rast.UseNonZeroWinding = true
	dx, dy := fixed.I(-x0), fixed.I(yTop)
	start := 0
	for _, end := range e.gb.Ends {
		drawContour(rast, e.points[start:end], dx, dy)
		start = end
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Rasterize(raster.NewAlphaSrcPainter(dst))
	return bitmap{mask: dst, left: x0, top: yTop}, found, nil
}

// drawContour adds one quadratic TrueType contour to r, translated by
// (dx, dy) and flipped to y down.
func drawContour(r *raster.Rasterizer, ps []truetype.Point, dx, dy fixed.Int26_6) {
	if len(ps) == 0 {
		return
	}
	at := func(p truetype.Point) fixed.Point26_6 {
		return fixed.Point26_6{X: dx + p.X, Y: dy - p.Y}
	}
	onCurve := func(p truetype.Point) bool { return p.Flags&0x01 != 0 }

	// the contour must start on an on-curve point, synthesize one between
	// two off-curve end points if needed
	start, others := at(ps[0]), ps[1:]
	if !onCurve(ps[0]) {
		last := ps[len(ps)-1]
		if onCurve(last) {
			start, others = at(last), ps[:len(ps)-1]
		} else {
			l := at(last)
			start = fixed.Point26_6{X: (start.X + l.X) / 2, Y: (start.Y + l.Y) / 2}
			others = ps
		}
	}
	r.Start(start)
	q0, on0 := start, true
	for _, p := range others {
		q, on := at(p), onCurve(p)
		switch {
		case on && on0:
			r.Add1(q)
		case on:
			r.Add2(q0, q)
		case !on0:
			mid := fixed.Point26_6{X: (q0.X + q.X) / 2, Y: (q0.Y + q.Y) / 2}
			r.Add2(q0, mid)
		}
		q0, on0 = q, on
	}
	if on0 {
		r.Add1(start)
	} else {
		r.Add2(q0, start)
	}
}
