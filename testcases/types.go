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

package testcases

import (
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name   string     // lowercase a-z and _ only
	Curve  []vec.Vec2 // closed curve, in pixel corner coordinates
	Width  int        // canvas width in pixels
	Height int        // canvas height in pixels

	// Want gives the expected result, one string per row.
	// '#' marks a set pixel, '.' a clear one.
	Want []string
}

// Mask converts Want into a row-major buffer, with set pixels equal to on.
func (tc TestCase) Mask(on byte) []byte {
	mask := make([]byte, tc.Width*tc.Height)
	for y, row := range tc.Want {
		for x := range row {
			if row[x] == '#' {
				mask[y*tc.Width+x] = on
			}
		}
	}
	return mask
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
