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

// Command llfill reconstructs a grey scale image from a file of level lines.
//
// Usage:
//
//	llfill [-width w] [-height h] [-v] lines.txt out.png
//
// The level lines are filled in the order given in the file, each with its
// own level. The output format is PNG, or TIFF if the output file name ends
// in ".tif" or ".tiff". If the image size is not given, it is taken from
// the bounding box of the level lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"seehuhn.de/go/levelfill"
	"seehuhn.de/go/levelfill/llfile"
)

func main() {
	width := flag.Int("width", 0, "image width in pixels (default: from the level lines)")
	height := flag.Int("height", 0, "image height in pixels (default: from the level lines)")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [options] lines.txt out.png\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		levelfill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	err := run(flag.Arg(0), flag.Arg(1), *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, "llfill:", err)
		os.Exit(1)
	}
}

func run(inName, outName string, width, height int) error {
	lines, err := readLines(inName)
	if err != nil {
		return err
	}
	levelfill.Logger().Info("read level lines", "file", inName, "count", len(lines))

	if width <= 0 || height <= 0 {
		w, h := imageSize(lines)
		if width <= 0 {
			width = w
		}
		if height <= 0 {
			height = h
		}
	}
	if width <= 0 || height <= 0 {
		return errors.New("cannot determine the image size")
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	levelfill.Reconstruct(img, lines)

	return writeImage(outName, img)
}

func readLines(name string) (lines []levelfill.LevelLine, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err = llfile.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lines, nil
}

// imageSize returns the smallest image size which contains all vertices.
func imageSize(lines []levelfill.LevelLine) (width, height int) {
	var xMax, yMax float64
	for _, l := range lines {
		for _, p := range l.Points {
			xMax = max(xMax, p.X)
			yMax = max(yMax, p.Y)
		}
	}
	return int(math.Ceil(xMax)), int(math.Ceil(yMax))
}

func writeImage(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	levelfill.Logger().Info("wrote image", "file", name)
	return nil
}
