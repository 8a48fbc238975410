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

// Package pdfout writes a canvas as a single-page PDF file.
//
// Every pixel becomes a filled unit square, so the page shows the raster
// exactly at any zoom level.  Horizontal runs of equally colored pixels are
// merged into a single rectangle.
package pdfout

import (
	"io"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/bresenham"
)

// Write writes c as a PDF page of c.Width() × c.Height() points.
// Channels are clamped to [0, 255].
func Write(w io.Writer, c *bresenham.Canvas) error {
	width := float64(c.Width())
	height := float64(c.Height())
	paper := &pdf.Rectangle{URx: width, URy: height}

	page, err := document.WriteSinglePage(w, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, width, height)
	page.Fill()

	// PDF origin is bottom-left; canvas rows count from the top.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	groups := runs(c)
	for _, g := range groups {
		page.SetFillColor(color.DeviceRGB(
			float64(g.color.R)/255,
			float64(g.color.G)/255,
			float64(g.color.B)/255,
		))
		for _, r := range g.rects {
			page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		}
		page.Fill()
	}

	return page.Close()
}

// colorRuns holds the rectangles of all runs of one color.
type colorRuns struct {
	color bresenham.Color
	rects []rect.Rect
}

// runs collects maximal horizontal runs of equally colored, non-black
// pixels, grouped by (clamped) color.  Groups are ordered by the first
// appearance of their color in row-major order.
func runs(c *bresenham.Canvas) []colorRuns {
	var groups []colorRuns
	index := make(map[bresenham.Color]int)

	for y := range c.Height() {
		row := c.Pix[y*c.Stride : y*c.Stride+c.Width()]
		x := 0
		for x < len(row) {
			col := row[x].Clamped()
			start := x
			for x < len(row) && row[x].Clamped() == col {
				x++
			}
			if col == bresenham.Black {
				continue
			}

			i, ok := index[col]
			if !ok {
				i = len(groups)
				index[col] = i
				groups = append(groups, colorRuns{color: col})
			}
			groups[i].rects = append(groups[i].rects, rect.Rect{
				LLx: float64(start),
				LLy: float64(y),
				URx: float64(x),
				URy: float64(y + 1),
			})
		}
	}
	return groups
}
