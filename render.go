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

// Package bresenham rasterizes straight line segments onto an RGB pixel
// grid using only integer arithmetic, and writes the grid as a plain-text
// PPM image.
package bresenham

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genref

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/bresenham/testcases"
)

// RenderExample renders a test case onto a freshly cleared canvas of the
// test case's size.  Segments are drawn first, in order, followed by the
// outlines.  The test case CTM applies to the outlines only.
func RenderExample(tc testcases.TestCase, r Rasterizer) (*Canvas, error) {
	c := NewCanvas(tc.Width, tc.Height)
	c.Clear()

	for i, seg := range tc.Segments {
		err := r.Draw(c, seg.From(), seg.To(), fromRGB(seg.Color))
		if err != nil {
			return nil, fmt.Errorf("%s: segment %d: %w", tc.Name, i, err)
		}
	}

	if tc.CTM != (matrix.Matrix{}) {
		r.CTM = tc.CTM
	}
	for i, o := range tc.Outlines {
		err := r.DrawPath(c, o.Path, fromRGB(o.Color))
		if err != nil {
			return nil, fmt.Errorf("%s: outline %d: %w", tc.Name, i, err)
		}
	}
	return c, nil
}

func fromRGB(c testcases.RGB) Color {
	return Color{R: c[0], G: c[1], B: c[2]}
}
