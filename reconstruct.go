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

package levelfill

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// LevelLine is a closed curve together with the grey level of the region
// it encloses.
type LevelLine struct {
	Level  float64
	Points []vec.Vec2
}

// Reconstruct clears img and fills every level line with its level,
// truncated and clamped to 0–255. Lines are filled in order, so that later
// lines overwrite earlier ones. For a tree of level lines listed parents
// first, this reconstructs the quantised image.
func Reconstruct(img *image.Gray, lines []LevelLine) {
	b := img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		clear(img.Pix[i : i+b.Dx()])
	}

	inter := NewIntervals(b.Dy())
	for _, l := range lines {
		FillGray(img, l.Points, grayLevel(l.Level), inter)
	}

	Logger().Info("reconstructed image",
		"lines", len(lines),
		"width", b.Dx(),
		"height", b.Dy())
}

// grayLevel converts a level to an 8-bit grey value.
func grayLevel(level float64) uint8 {
	switch {
	case math.IsNaN(level) || level <= 0:
		return 0
	case level >= 255:
		return 255
	default:
		return uint8(level)
	}
}
