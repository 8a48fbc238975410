// seehuhn.de/go/bresenham - integer line rasterization
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

// Command genref generates reference images for the test cases.
// For every case it writes a PPM file, a PNG file enlarged for viewing and
// a PDF file showing the pixels as vector squares.
package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/bresenham"
	"seehuhn.de/go/bresenham/pdfout"
	"seehuhn.de/go/bresenham/testcases"
)

const refDir = "testdata/reference"

// pngScale is the enlargement factor for the PNG previews.
const pngScale = 4

func main() {
	// Create output directory
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	// Process all test cases
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			c, err := bresenham.RenderExample(tc, bresenham.Rasterizer{})
			if err != nil {
				panic(err)
			}

			if err := writeFile(filepath.Join(refDir, name+".ppm"), c, bresenham.WritePPM); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writeFile(filepath.Join(refDir, name+".png"), c, writePNG); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := writeFile(filepath.Join(refDir, name+".pdf"), c, pdfout.Write); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(w io.Writer, c *bresenham.Canvas) error {
	return bresenham.WritePNG(w, c, pngScale)
}

func writeFile(fname string, c *bresenham.Canvas, write func(io.Writer, *bresenham.Canvas) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f, c)
}
