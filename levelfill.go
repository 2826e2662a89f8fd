// seehuhn.de/go/levelfill - fill level lines into raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package levelfill fills the interior of level lines into raster images.
//
// A level line is the closed polygonal boundary between the pixels of an
// image above and below some threshold. Its vertices lie on the half-integer
// grid of pixel corners. The fill is exact and uses the even-odd rule on
// pixel centres. Centres on a vertical or slanted part of the curve are
// set. Centres on a horizontal part of the curve are set if the interior
// lies to the left of the direction of travel, as seen on screen with y
// pointing down.
//
// Filling every level line of a tree of level lines, parents before
// children and each with its own level as the value, reconstructs the
// quantised image the tree was extracted from. See [Reconstruct].
package levelfill

import (
	"fmt"
	"image"

	"seehuhn.de/go/geom/vec"
)

// Sample is the type of the values stored in a raster buffer.
type Sample interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// FillCurve sets all pixels inside the closed curve to value.
//
// The buffer holds width×height samples in row-major order. The curve is
// closed implicitly: the last vertex connects back to the first. A curve
// with a single distinct vertex sets the pixel at that vertex, if the vertex
// lies at a pixel centre. Parts of the curve outside the buffer are clipped.
//
// If inter is not nil, its storage is reused and it is left holding the
// crossings of this curve. Otherwise a temporary table is used.
//
// An empty curve, or a non-positive width or height, leaves buf unchanged.
// Otherwise FillCurve panics if buf is too short, or with an *InvariantError
// if the curve crosses itself in a way which leaves a row with unpaired
// crossings.
func FillCurve[T Sample](curve []vec.Vec2, value T, buf []T, width, height int, inter *Intervals) {
	if len(curve) == 0 || width <= 0 || height <= 0 {
		return
	}
	if len(buf) < width*height {
		panic(fmt.Sprintf("levelfill: buffer of length %d too short for %d×%d image",
			len(buf), width, height))
	}
	fillCurve(curve, gridShift, value, buf, width, height, width, inter)
}

// FillGray sets all pixels of img inside the closed curve to value. Curve
// coordinates are image coordinates, so that the pixel centre of
// img.Pix[img.PixOffset(x, y)] is at (x+0.5, y+0.5). See [FillCurve] for
// details.
func FillGray(img *image.Gray, curve []vec.Vec2, value uint8, inter *Intervals) {
	b := img.Rect
	if b.Empty() {
		return
	}
	shift := gridShift.Sub(vec.Vec2{X: float64(b.Min.X), Y: float64(b.Min.Y)})
	fillCurve(curve, shift, value, img.Pix, b.Dx(), b.Dy(), img.Stride, inter)
}

// fillCurve implements FillCurve for buffers where consecutive rows start
// stride samples apart. The vertex curve[i]+shift is used in place of
// curve[i]; integer coordinates after the shift are pixel centres.
func fillCurve[T Sample](curve []vec.Vec2, shift vec.Vec2, value T, buf []T, width, height, stride int, inter *Intervals) {
	if len(curve) == 0 || width <= 0 || height <= 0 {
		return
	}

	w, ok := newWalker(curve, shift)
	if !ok {
		fillPoint(curve[0], shift, value, buf, width, height, stride)
		return
	}

	if inter == nil {
		inter = NewIntervals(height)
	} else {
		inter.Reset(height)
	}
	for _, pt := range curve[1:] {
		w.lineTo(pt, inter)
	}
	w.lineTo(curve[0], inter)

	fillRows(value, buf, width, stride, inter)
}

// fillPoint handles curves with a single distinct vertex. The pixel is set
// only if the vertex is at its centre.
func fillPoint[T Sample](pt, shift vec.Vec2, value T, buf []T, width, height, stride int) {
	p := pt.Add(shift)
	if !isInteger(p.X) || !isInteger(p.Y) {
		Logger().Debug("single vertex off the pixel grid", "x", pt.X, "y", pt.Y)
		return
	}
	if p.X < 0 || p.X >= float64(width) || p.Y < 0 || p.Y >= float64(height) {
		return
	}
	buf[int(p.Y)*stride+int(p.X)] = value
}
