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

// Package llfile reads and writes level lines in the text format of
// megawave's flreadasc.
//
// Every vertex is on a line of its own, as two numbers "x y". A line
// consisting of the single letter "e" ends a curve and a line "q" ends the
// file. Optionally, a curve may start with a line holding a single number,
// the level of the curve. Blank lines and lines starting with "%" are
// ignored.
package llfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/levelfill"
)

// SyntaxError reports a malformed line in a level line file.
type SyntaxError struct {
	Line int // 1-based line number
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("llfile: line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

var (
	errLevelAfterPoints = errors.New("level after the first vertex")
	errMalformed        = errors.New("expected \"x y\", a level, \"e\" or \"q\"")
)

// Read reads level lines until the terminating "q" line.
func Read(r io.Reader) ([]levelfill.LevelLine, error) {
	var lines []levelfill.LevelLine
	var cur levelfill.LevelLine
	pending := false // cur holds a level or vertices

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}

		switch text {
		case "q":
			if pending {
				return nil, &SyntaxError{Line: lineNo, Err: errors.New("unterminated curve")}
			}
			return lines, nil
		case "e":
			lines = append(lines, cur)
			cur = levelfill.LevelLine{}
			pending = false
			continue
		}

		fields := strings.Fields(text)
		switch len(fields) {
		case 1:
			if len(cur.Points) > 0 {
				return nil, &SyntaxError{Line: lineNo, Err: errLevelAfterPoints}
			}
			level, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Err: err}
			}
			cur.Level = level
		case 2:
			x, err := strconv.ParseFloat(fields[0], 64)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Err: err}
			}
			y, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, &SyntaxError{Line: lineNo, Err: err}
			}
			cur.Points = append(cur.Points, vec.Vec2{X: x, Y: y})
		default:
			return nil, &SyntaxError{Line: lineNo, Err: errMalformed}
		}
		pending = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("llfile: %w", err)
	}
	return nil, &SyntaxError{Line: lineNo, Err: io.ErrUnexpectedEOF}
}

// Write writes level lines, followed by the terminating "q" line.
// Levels equal to zero are omitted.
func Write(w io.Writer, lines []levelfill.LevelLine) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		if l.Level != 0 {
			bw.WriteString(formatFloat(l.Level))
			bw.WriteByte('\n')
		}
		for _, p := range l.Points {
			bw.WriteString(formatFloat(p.X))
			bw.WriteByte(' ')
			bw.WriteString(formatFloat(p.Y))
			bw.WriteByte('\n')
		}
		bw.WriteString("e\n")
	}
	bw.WriteString("q\n")
	return bw.Flush()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
