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

//go:generate go run ./testcases/export

import "seehuhn.de/go/levelfill/testcases"

// RenderExample renders a test case into a grayscale buffer, in row-major
// order with consecutive rows stride bytes apart. Pixels inside the curve
// are set to 255, all other pixels are left unchanged.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	fillCurve(tc.Curve, gridShift, 255, buf, width, height, stride, nil)
}
