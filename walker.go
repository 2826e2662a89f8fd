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
	"math"

	"seehuhn.de/go/geom/vec"
)

// gridShift moves curve vertices from pixel corner coordinates to pixel
// centre coordinates. After the shift, row y of the raster is the
// horizontal line at integer height y.
var gridShift = vec.Vec2{X: -0.5, Y: -0.5}

// walker traces a closed polyline edge by edge and records the row
// crossings of every edge in an interval table.
//
// Crossings are counted so that every row ends up with an even number of
// entries: a vertex on a row where the curve keeps its vertical direction
// contributes once, a vertex where it turns back contributes twice (a
// zero-width interval), and a horizontal run along a row contributes once
// or not at all, depending on the orientation of the curve.
type walker struct {
	p          vec.Vec2 // current vertex, shifted
	shift      vec.Vec2 // added to every vertex before use
	horizontal bool     // current vertex is on a horizontal edge along a row
	dir        int      // right (+1) or left (-1) if horizontal, else down (+1) or up (-1)
}

// newWalker positions a walker at the first vertex of the curve. The
// direction state is taken from the closing edge, which ends at the first
// vertex. All vertices are translated by shift, which normally is
// gridShift. The second return value is false if the curve has only one
// distinct vertex.
func newWalker(curve []vec.Vec2, shift vec.Vec2) (walker, bool) {
	i := lastDistinct(curve)
	if i == 0 {
		return walker{}, false
	}

	q := curve[i].Add(shift)
	p := curve[0].Add(shift)
	w := walker{p: p, shift: shift}
	if q.Y == p.Y {
		w.horizontal = isInteger(p.Y)
		w.dir = sign(q.X, p.X)
	} else {
		w.dir = sign(q.Y, p.Y)
	}
	return w, true
}

// lastDistinct returns the index of the last vertex which differs from
// curve[0], or 0 if there is no such vertex.
func lastDistinct(curve []vec.Vec2) int {
	for i := len(curve) - 1; i > 0; i-- {
		if curve[i] != curve[0] {
			return i
		}
	}
	return 0
}

// lineTo adds the edge from the current vertex to pt.
// Only rows inside the table are visited, so that the cost of an edge is
// bounded by the table height.
func (w *walker) lineTo(pt vec.Vec2, inter *Intervals) {
	q := w.p
	p := pt.Add(w.shift)
	w.p = p
	prevDir := w.dir

	if q.Y == p.Y {
		w.horizontalTo(q, p, prevDir, inter)
		return
	}

	dir := sign(q.Y, p.Y)
	w.dir = dir
	h := inter.Height()
	y1 := rowIndex(q.Y, h)
	y2 := rowIndex(p.Y, h) + dir
	slope := (q.X - p.X) / (q.Y - p.Y)

	switch {
	case w.horizontal: // leaving a horizontal run
		w.horizontal = false
		if prevDir != dir {
			inter.add(y1, q.X)
		}
		y1 += dir
	case dir != prevDir && q.Y == float64(y1): // local peak or valley
		inter.add(y1, q.X)
		inter.add(y1, q.X)
		y1 += dir
	case dir > 0 && float64(y1) < q.Y:
		y1 += dir
	}

	for j := y1; j != y2; j += dir {
		fj := float64(j)
		if dir > 0 && p.Y <= fj || dir < 0 && fj <= p.Y {
			continue // the edge ends before reaching row j
		}
		// The conversion prevents a fused multiply-add.
		x := q.X + float64(slope*(fj-q.Y))
		inter.add(j, x)
	}
}

// horizontalTo handles an edge from q to p with q.Y == p.Y.
// Only edges lying along a row contribute.
func (w *walker) horizontalTo(q, p vec.Vec2, prevDir int, inter *Intervals) {
	if q.X == p.X || !isInteger(q.Y) {
		return
	}

	w.dir = sign(q.X, p.X)
	y := rowIndex(q.Y, inter.Height())
	if w.horizontal { // continuing the run, possibly turning back
		if prevDir != w.dir {
			inter.add(y, q.X)
		}
	} else { // first edge of a run
		w.horizontal = true
		if prevDir == w.dir {
			inter.add(y, q.X)
		}
	}
}

// rowIndex returns the row containing y, clamped to the range -1, ..., h.
// Rows -1 and h lie outside a table of height h.
func rowIndex(y float64, h int) int {
	switch {
	case y < -1:
		return -1
	case y > float64(h):
		return h
	default:
		return int(math.Floor(y))
	}
}

// sign returns +1 if a < b and -1 otherwise.
func sign(a, b float64) int {
	if a < b {
		return 1
	}
	return -1
}

// isInteger reports whether f is an integer. The test is exact.
func isInteger(f float64) bool {
	return f == math.Floor(f)
}
