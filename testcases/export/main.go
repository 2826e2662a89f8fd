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

// Command export renders all test cases with the level line filler and
// writes the results to testdata/render/, as PNG and TIFF images.
// Run from the module root directory.
package main

import (
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/tiff"

	"seehuhn.de/go/levelfill"
	"seehuhn.de/go/levelfill/testcases"
)

const outDir = "testdata/render"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
			levelfill.RenderExample(tc, img.Pix, tc.Width, tc.Height, img.Stride)

			err := writeFile(filepath.Join(outDir, name+".png"), func(f *os.File) error {
				return png.Encode(f, img)
			})
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			err = writeFile(filepath.Join(outDir, name+".tif"), func(f *os.File) error {
				return tiff.Encode(f, img, nil)
			})
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeFile(path string, encode func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f)
}
