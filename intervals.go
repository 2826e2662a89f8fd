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

import "slices"

// Intervals records, for every row of a raster, the x-coordinates where a
// curve crosses the row. Filling the row between consecutive crossings,
// using the even-odd rule, gives the interior of the curve.
//
// One Intervals value can be reused for many curves drawn into images of the
// same height. Rows are cleared in place, so that after the first few curves
// no more allocations are needed.
//
// An Intervals value is not safe for concurrent use.
type Intervals struct {
	rows [][]float64
}

// NewIntervals returns an empty table for a raster with the given number of
// rows.
func NewIntervals(height int) *Intervals {
	t := &Intervals{}
	t.Reset(height)
	return t
}

// Reset resizes the table to the given number of rows and removes all
// recorded crossings, preserving buffer capacity for reuse.
func (t *Intervals) Reset(height int) {
	height = max(height, 0)
	if cap(t.rows) < height {
		t.rows = slices.Grow(t.rows[:cap(t.rows)], height-cap(t.rows))
	}
	t.rows = t.rows[:height]
	for i := range t.rows {
		t.rows[i] = t.rows[i][:0]
	}
}

// Height returns the number of rows in the table.
func (t *Intervals) Height() int {
	return len(t.rows)
}

// Row returns the crossings recorded for row y. The values are in the order
// they were recorded, until the row has been filled; afterwards they are
// sorted. The returned slice is only valid until the next call to Reset.
func (t *Intervals) Row(y int) []float64 {
	if y < 0 || y >= len(t.rows) {
		return nil
	}
	return t.rows[y]
}

// add records a crossing at position x on row y.
// Crossings outside the raster are dropped.
func (t *Intervals) add(y int, x float64) {
	if y < 0 || y >= len(t.rows) {
		return
	}
	t.rows[y] = append(t.rows[y], x)
}
