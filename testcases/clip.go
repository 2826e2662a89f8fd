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

import "seehuhn.de/go/geom/vec"

var clipCases = []TestCase{
	{
		Name:   "overflow",
		Curve:  []vec.Vec2{pt(-3, -3), pt(12, -2), pt(11, 13), pt(-2, 12)},
		Width:  8,
		Height: 8,
		Want: []string{
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
			"########",
		},
	},
	{
		Name:   "partly_outside",
		Curve:  []vec.Vec2{pt(-2.2, 2), pt(5, -1.7), pt(9.6, 4.4), pt(3, 9.1)},
		Width:  8,
		Height: 8,
		Want: []string{
			".######.",
			"#######.",
			"########",
			"########",
			"########",
			"########",
			".######.",
			"..###...",
		},
	},
	{
		Name:   "left_of_image",
		Curve:  []vec.Vec2{pt(-6, 1), pt(-1, 1), pt(-1, 6), pt(-6, 6)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "below_image",
		Curve:  []vec.Vec2{pt(1.5, 9.5), pt(5.5, 9.5), pt(5.5, 12.5), pt(1.5, 12.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "wide_triangle",
		Curve:  []vec.Vec2{pt(-4.5, 0.5), pt(12.5, 3.5), pt(-4.5, 6.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"#.......",
			"#######.",
			"########",
			"#######.",
			"#.......",
			"........",
			"........",
		},
	},
}
