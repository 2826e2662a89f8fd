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

var polygonCases = []TestCase{
	{
		Name:   "square",
		Curve:  []vec.Vec2{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)},
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
	// interior left of the top edge: rows 1 and 4 are set
	{
		Name:   "rectangle_ccw",
		Curve:  []vec.Vec2{pt(1.5, 1.5), pt(1.5, 4.5), pt(5.5, 4.5), pt(5.5, 1.5), pt(3.5, 1.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			".#####..",
			".#####..",
			".#####..",
			".#####..",
			"........",
			"........",
			"........",
		},
	},
	// interior right of the top edge: rows 1 and 4 stay clear
	{
		Name:   "rectangle_cw",
		Curve:  []vec.Vec2{pt(1.5, 1.5), pt(3.5, 1.5), pt(5.5, 1.5), pt(5.5, 4.5), pt(1.5, 4.5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			".#####..",
			".#####..",
			"........",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "triangle_peak",
		Curve:  []vec.Vec2{pt(3.5, 1.5), pt(0.5, 5), pt(6.5, 5)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"...#....",
			"...#....",
			"..###...",
			".#####..",
			"........",
			"........",
			"........",
		},
	},
	{
		Name:   "triangle_valley",
		Curve:  []vec.Vec2{pt(3.5, 6.5), pt(6.5, 2), pt(0.5, 2)},
		Width:  8,
		Height: 8,
		Want: []string{
			"........",
			"........",
			".#####..",
			".#####..",
			"..###...",
			"...#....",
			"...#....",
			"........",
		},
	},
	{
		Name:   "diamond",
		Curve:  []vec.Vec2{pt(4.5, 0.5), pt(8.5, 4.5), pt(4.5, 8.5), pt(0.5, 4.5)},
		Width:  10,
		Height: 10,
		Want: []string{
			"....#.....",
			"...###....",
			"..#####...",
			".#######..",
			"#########.",
			".#######..",
			"..#####...",
			"...###....",
			"....#.....",
			"..........",
		},
	},
	{
		Name:   "notch",
		Curve:  []vec.Vec2{pt(1.5, 1.5), pt(1.5, 6.5), pt(7.5, 6.5), pt(7.5, 1.5), pt(5.5, 1.5), pt(5.5, 4.5), pt(3.5, 4.5), pt(3.5, 1.5)},
		Width:  10,
		Height: 8,
		Want: []string{
			"..........",
			".###.###..",
			".###.###..",
			".###.###..",
			".#######..",
			".#######..",
			".#######..",
			"..........",
		},
	},
	{
		Name:   "pentagon",
		Curve:  []vec.Vec2{pt(5, 0.7), pt(9.3, 3.9), pt(7.6, 9.1), pt(2.3, 9), pt(0.8, 3.8)},
		Width:  10,
		Height: 10,
		Want: []string{
			"..........",
			"....##....",
			"...####...",
			".########.",
			".########.",
			".########.",
			"..######..",
			"..######..",
			"..######..",
			"..........",
		},
	},
}
