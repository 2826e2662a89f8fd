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

var degenerateCases = []TestCase{
	{
		Name:   "empty",
		Curve:  []vec.Vec2{},
		Width:  4,
		Height: 4,
		Want: []string{
			"....",
			"....",
			"....",
			"....",
		},
	},
	{
		Name:   "point_centre",
		Curve:  []vec.Vec2{pt(5.5, 3.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			"........",
			".....#..",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "point_off_centre",
		Curve:  []vec.Vec2{pt(5.3, 3.5)},
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
		Name:   "point_repeated",
		Curve:  []vec.Vec2{pt(2.5, 2.5), pt(2.5, 2.5), pt(2.5, 2.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			"..#.....",
			"........",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "point_outside",
		Curve:  []vec.Vec2{pt(9.5, 1.5)},
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
		Name:   "square_repeated_vertices",
		Curve:  []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 0), pt(4, 4), pt(0, 4), pt(0, 4), pt(0, 0)},
		Width:  8,
		Height: 8,
		Want: []string{
			"####....",
			"####....",
			"####....",
			"####....",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "segment_vertical",
		Curve:  []vec.Vec2{pt(2.5, 1.5), pt(2.5, 5.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"..#.....",
			"..#.....",
			"..#.....",
			"..#.....",
			"..#.....",
			"........",
			"........",
		},
	},
	{
		Name:   "segment_horizontal",
		Curve:  []vec.Vec2{pt(1.5, 2.5), pt(5.5, 2.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			".#####..",
			"........",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "thin_sliver",
		Curve:  []vec.Vec2{pt(1.5, 1.5), pt(6.5, 1.5), pt(1.5, 1.7)},
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
}
