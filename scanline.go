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
	"fmt"
	"slices"
)

// InvariantError describes a row whose crossings do not pair up. This
// happens only for self-intersecting curves or because of a bug in the
// edge walker. Fill operations panic with an *InvariantError instead of
// writing wrong pixels.
type InvariantError struct {
	Row    int
	Bounds []float64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("levelfill: row %d has unpaired crossings %v", e.Row, e.Bounds)
}

// fillRows fills all non-empty rows of inter. Row y of the image starts at
// buf[y*stride] and has the given width.
func fillRows[T Sample](value T, buf []T, width, stride int, inter *Intervals) {
	for y, bounds := range inter.rows {
		if len(bounds) == 0 {
			continue
		}
		row := buf[y*stride : y*stride+width]
		if !fillLine(value, row, bounds) {
			panic(&InvariantError{Row: y, Bounds: slices.Clone(bounds)})
		}
	}
}

// fillLine sorts the crossings of one row and sets the pixels inside the
// curve, using the even-odd rule. A crossing at an integer position also
// sets the pixel at that position. The return value is false if the
// crossings do not pair up.
func fillLine[T Sample](value T, row []T, bounds []float64) bool {
	if len(bounds)%2 != 0 {
		return false
	}
	slices.Sort(bounds)

	inside := false
	k := 0
	for k < len(bounds) && bounds[k] < 0 { // crossings left of the image
		inside = !inside
		k++
	}
	if k == len(bounds) {
		return !inside
	}

	first := len(row)
	if bounds[k] < float64(first) {
		first = int(bounds[k])
	}
	if inside {
		fillSpan(row[:min(len(row), first)], value)
	}
	for i := first; i < len(row); i++ {
		fi := float64(i)
		for bounds[k] < fi {
			inside = !inside
			k++
			if k == len(bounds) {
				return !inside
			}
		}
		if inside || bounds[k] == fi {
			row[i] = value
		}
	}
	return true
}

// fillSpan sets all elements of span to value.
func fillSpan[T Sample](span []T, value T) {
	if len(span) <= 16 {
		for i := range span {
			span[i] = value
		}
		return
	}
	for i := range span[:16] {
		span[i] = value
	}
	for i := 16; i < len(span); i *= 2 {
		copy(span[i:], span[:i])
	}
}
