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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/levelfill/testcases"
)

func allCases() []testcases.TestCase {
	var cases []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			tc.Name = category + "_" + tc.Name
			cases = append(cases, tc)
		}
	}
	return cases
}

func findCase(t *testing.T, category, name string) testcases.TestCase {
	t.Helper()
	for _, tc := range testcases.All[category] {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("test case %s_%s not found", category, name)
	return testcases.TestCase{}
}

func TestAgainstReference(t *testing.T) {
	shared := NewIntervals(0)
	tables := []struct {
		name  string
		inter *Intervals
	}{
		{"own", nil},
		{"shared", shared},
	}

	for _, tc := range allCases() {
		for _, table := range tables {
			name := tc.Name + "_" + table.name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				FillCurve(tc.Curve, 255, actual, w, h, table.inter)

				if err := compareImages(name, tc.Mask(255), actual, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func TestRenderExampleStride(t *testing.T) {
	const pad = 3
	for _, tc := range allCases() {
		t.Run(tc.Name, func(t *testing.T) {
			w, h := tc.Width, tc.Height
			stride := w + pad
			buf := make([]byte, stride*h)
			for i := range buf {
				buf[i] = 7
			}

			RenderExample(tc, buf, w, h, stride)

			want := tc.Mask(255)
			for y := range h {
				for x := range stride {
					got := buf[y*stride+x]
					var exp byte = 7
					if x < w && want[y*w+x] != 0 {
						exp = 255
					}
					if got != exp {
						t.Fatalf("pixel (%d,%d): got %d, want %d", x, y, got, exp)
					}
				}
			}
		})
	}
}

// TestRotation checks that the result does not depend on which vertex
// the curve starts at.
func TestRotation(t *testing.T) {
	for _, tc := range allCases() {
		if len(tc.Curve) < 2 {
			continue
		}
		t.Run(tc.Name, func(t *testing.T) {
			w, h := tc.Width, tc.Height
			want := make([]byte, w*h)
			FillCurve(tc.Curve, 1, want, w, h, nil)

			for k := 1; k < len(tc.Curve); k++ {
				rotated := append(slices.Clone(tc.Curve[k:]), tc.Curve[:k]...)
				got := make([]byte, w*h)
				FillCurve(rotated, 1, got, w, h, nil)
				if !slices.Equal(got, want) {
					t.Errorf("rotation by %d:\n%s\nwant:\n%s",
						k, maskString(got, w), maskString(want, w))
				}
			}
		})
	}
}

func TestRandomPolygons(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const w, h = 16, 16
	inter := NewIntervals(h)
	for i := range 500 {
		curve := randomStar(rng, w, h)
		want := make([]byte, w*h)
		FillCurve(curve, 1, want, w, h, inter)

		for k := 1; k < len(curve); k++ {
			rotated := append(slices.Clone(curve[k:]), curve[:k]...)
			got := make([]byte, w*h)
			FillCurve(rotated, 1, got, w, h, inter)
			if !slices.Equal(got, want) {
				t.Fatalf("polygon %d %v, rotation by %d:\n%s\nwant:\n%s",
					i, curve, k, maskString(got, w), maskString(want, w))
			}
		}
	}
}

// randomStar returns a polygon which is star-shaped with respect to its
// centre, with vertices on the half-integer grid.
func randomStar(rng *rand.Rand, w, h int) []vec.Vec2 {
	n := 3 + rng.IntN(8)
	cx := float64(rng.IntN(w)) + 0.5
	cy := float64(rng.IntN(h)) + 0.5
	var curve []vec.Vec2
	for i := range n {
		// walk around the centre, one octant sector per vertex at most
		sector := i * 8 / n
		r := float64(1 + rng.IntN(6))
		d := sectorDirs[sector]
		p := vec.Vec2{X: cx + r*d.X, Y: cy + r*d.Y}
		if len(curve) > 0 && curve[len(curve)-1] == p {
			continue
		}
		curve = append(curve, p)
	}
	return curve
}

var sectorDirs = [8]vec.Vec2{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

func TestIdempotent(t *testing.T) {
	for _, tc := range allCases() {
		t.Run(tc.Name, func(t *testing.T) {
			w, h := tc.Width, tc.Height
			once := make([]byte, w*h)
			FillCurve(tc.Curve, 9, once, w, h, nil)

			twice := make([]byte, w*h)
			inter := NewIntervals(h)
			FillCurve(tc.Curve, 9, twice, w, h, inter)
			FillCurve(tc.Curve, 9, twice, w, h, inter)

			if !slices.Equal(once, twice) {
				t.Errorf("second fill changed the result:\n%s\nwant:\n%s",
					maskString(twice, w), maskString(once, w))
			}
		})
	}
}

func TestSinglePoint(t *testing.T) {
	cases := []struct {
		p    vec.Vec2
		x, y int
		ok   bool
	}{
		{vec.Vec2{X: 5.5, Y: 3.5}, 5, 3, true},
		{vec.Vec2{X: 0.5, Y: 0.5}, 0, 0, true},
		{vec.Vec2{X: 7.5, Y: 7.5}, 7, 7, true},
		{vec.Vec2{X: 5.3, Y: 3.5}, 0, 0, false},
		{vec.Vec2{X: 5.5, Y: 3}, 0, 0, false},
		{vec.Vec2{X: 5, Y: 3}, 0, 0, false},
		{vec.Vec2{X: -0.5, Y: 3.5}, 0, 0, false},
		{vec.Vec2{X: 8.5, Y: 3.5}, 0, 0, false},
		{vec.Vec2{X: 3.5, Y: 8.5}, 0, 0, false},
	}
	const w, h = 8, 8
	for _, c := range cases {
		buf := make([]uint16, w*h)
		FillCurve([]vec.Vec2{c.p, c.p}, 1000, buf, w, h, nil)
		for i, v := range buf {
			want := uint16(0)
			if c.ok && i == c.y*w+c.x {
				want = 1000
			}
			if v != want {
				t.Errorf("%v: pixel (%d,%d) = %d, want %d", c.p, i%w, i/w, v, want)
			}
		}
	}
}

func TestSquare(t *testing.T) {
	curve := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	const w, h = 8, 8
	buf := make([]int32, w*h)
	FillCurve(curve, 1, buf, w, h, nil)

	for y := range h {
		for x := range w {
			want := int32(0)
			if x <= 3 && y <= 3 {
				want = 1
			}
			if got := buf[y*w+x]; got != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFloatSamples(t *testing.T) {
	curve := []vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}
	const w, h = 4, 4
	buf := make([]float32, w*h)
	for i := range buf {
		buf[i] = -1
	}
	FillCurve(curve, 0.25, buf, w, h, nil)

	want := []float32{
		-1, -1, -1, -1,
		-1, 0.25, 0.25, -1,
		-1, 0.25, 0.25, -1,
		-1, -1, -1, -1,
	}
	if !slices.Equal(buf, want) {
		t.Errorf("got %v, want %v", buf, want)
	}
}

// TestReusedIntervals checks that a shared table gives the same result as
// separate tables.
func TestReusedIntervals(t *testing.T) {
	a := findCase(t, "polygon", "square").Curve
	b := findCase(t, "polygon", "diamond").Curve
	const w, h = 10, 10

	fresh := make([]byte, w*h)
	FillCurve(a, 1, fresh, w, h, nil)
	FillCurve(b, 2, fresh, w, h, nil)

	reused := make([]byte, w*h)
	inter := NewIntervals(3) // wrong height on purpose
	FillCurve(a, 1, reused, w, h, inter)
	FillCurve(b, 2, reused, w, h, inter)

	if !slices.Equal(reused, fresh) {
		t.Errorf("shared table:\n%s\nwant:\n%s", maskString(reused, w), maskString(fresh, w))
	}
	if inter.Height() != h {
		t.Errorf("table height %d, want %d", inter.Height(), h)
	}
}

func TestUnpairedCrossings(t *testing.T) {
	inter := NewIntervals(4)
	inter.add(2, 1.5)
	inter.add(2, 3.5)
	inter.add(2, 5.5)
	buf := make([]byte, 8*4)

	defer func() {
		r := recover()
		err, ok := r.(error)
		var invErr *InvariantError
		if !ok || !errors.As(err, &invErr) {
			t.Fatalf("expected *InvariantError panic, got %v", r)
		}
		if invErr.Row != 2 || len(invErr.Bounds) != 3 {
			t.Errorf("wrong error details: %v", invErr)
		}
	}()
	fillRows[byte](1, buf, 8, 8, inter)
}

func TestShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	curve := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	FillCurve(curve, 1, make([]byte, 15), 4, 4, nil)
}

func TestEmptyCurveShortBuffer(t *testing.T) {
	buf := make([]byte, 3)
	FillCurve(nil, 1, buf, 4, 4, nil)
	FillCurve([]vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}}, 1, buf, 0, 4, nil)
	if !slices.Equal(buf, []byte{0, 0, 0}) {
		t.Errorf("buffer changed to %v", buf)
	}
}

func TestFillGray(t *testing.T) {
	tc := findCase(t, "polygon", "notch")
	full := image.NewGray(image.Rect(0, 0, tc.Width+4, tc.Height+4))
	sub := full.SubImage(image.Rect(2, 2, tc.Width+2, tc.Height+2)).(*image.Gray)

	// The curve is given in the coordinates of sub.
	curve := make([]vec.Vec2, len(tc.Curve))
	for i, p := range tc.Curve {
		curve[i] = vec.Vec2{X: p.X + 2, Y: p.Y + 2}
	}
	FillGray(sub, curve, 200, nil)

	want := tc.Mask(200)
	for y := range full.Rect.Dy() {
		for x := range full.Rect.Dx() {
			exp := uint8(0)
			if x >= 2 && x < tc.Width+2 && y >= 2 && y < tc.Height+2 {
				exp = want[(y-2)*tc.Width+(x-2)]
			}
			if got := full.GrayAt(x, y).Y; got != exp {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, exp)
			}
		}
	}
}

func TestFillGrayAllocs(t *testing.T) {
	tc := findCase(t, "polygon", "pentagon")
	full := image.NewGray(image.Rect(0, 0, tc.Width+5, tc.Height+5))
	sub := full.SubImage(image.Rect(3, 5, tc.Width+3, tc.Height+5)).(*image.Gray)
	curve := make([]vec.Vec2, len(tc.Curve))
	for i, p := range tc.Curve {
		curve[i] = vec.Vec2{X: p.X + 3, Y: p.Y + 5}
	}
	inter := NewIntervals(tc.Height)

	allocs := testing.AllocsPerRun(10, func() {
		FillGray(sub, curve, 1, inter)
	})
	if allocs != 0 {
		t.Errorf("FillGray on a sub-image allocates %g times per call", allocs)
	}

	want := tc.Mask(1)
	for y := range tc.Height {
		for x := range tc.Width {
			if got := full.GrayAt(x+3, y+5).Y; got != want[y*tc.Width+x] {
				t.Errorf("pixel (%d,%d) = %d, want %d", x, y, got, want[y*tc.Width+x])
			}
		}
	}
}

// TestAgainstVector compares with golang.org/x/image/vector for rectangles
// with integer corners, where the anti-aliased coverage is exactly 0 or 1.
func TestAgainstVector(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const w, h = 20, 15
	inter := NewIntervals(h)
	for range 100 {
		x0, x1 := rng.IntN(w+1), rng.IntN(w+1)
		y0, y1 := rng.IntN(h+1), rng.IntN(h+1)
		if x0 == x1 || y0 == y1 {
			continue
		}
		corners := []vec.Vec2{
			{X: float64(x0), Y: float64(y0)},
			{X: float64(x1), Y: float64(y0)},
			{X: float64(x1), Y: float64(y1)},
			{X: float64(x0), Y: float64(y1)},
		}

		got := make([]byte, w*h)
		FillCurve(corners, 255, got, w, h, inter)

		r := vector.NewRasterizer(w, h)
		r.MoveTo(float32(corners[0].X), float32(corners[0].Y))
		for _, p := range corners[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
		dst := image.NewAlpha(image.Rect(0, 0, w, h))
		r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

		if !slices.Equal(got, dst.Pix) {
			t.Fatalf("rectangle %v:\n%s\nwant:\n%s",
				corners, maskString(got, w), maskString(dst.Pix, w))
		}
	}
}

// maskString formats a buffer as text, one line per row.
func maskString[T Sample](buf []T, w int) string {
	var sb strings.Builder
	for i, v := range buf {
		if v != 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
		if i%w == w-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	var bad int
	for i := range w * h {
		if expected[i] != actual[i] {
			bad++
		}
	}
	if bad == 0 {
		return nil
	}
	_ = writeDiffImage(name, expected, actual, w, h)
	return fmt.Errorf("%d pixels differ:\n%s\nwant:\n%s",
		bad, maskString(actual, w), maskString(expected, w))
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// Create 3-panel image: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green=missing, red=extra, black=match
			var diffColor color.RGBA
			switch {
			case expected[i] > actual[i]:
				diffColor = color.RGBA{G: 255, A: 255}
			case expected[i] < actual[i]:
				diffColor = color.RGBA{R: 255, A: 255}
			default:
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
