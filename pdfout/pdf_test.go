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


package pdfout

import (
	"bytes"
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/bresenham"
	"seehuhn.de/go/bresenham/testcases"
)

func TestRuns(t *testing.T) {
	c := bresenham.NewCanvas(5, 2)
	c.Clear()
	set := func(x, y int, col bresenham.Color) {
		if err := c.SetPixel(image.Pt(x, y), col); err != nil {
			t.Fatal(err)
		}
	}
	set(0, 0, bresenham.Red)
	set(1, 0, bresenham.Red)
	set(2, 0, bresenham.Green)
	set(4, 0, bresenham.Red)
	set(1, 1, bresenham.Color{R: 400}) // clamps to red
	set(2, 1, bresenham.Red)

	got := runs(c)
	want := []colorRuns{
		{
			color: bresenham.Red,
			rects: []rect.Rect{
				{LLx: 0, LLy: 0, URx: 2, URy: 1},
				{LLx: 4, LLy: 0, URx: 5, URy: 1},
				{LLx: 1, LLy: 1, URx: 3, URy: 2},
			},
		},
		{
			color: bresenham.Green,
			rects: []rect.Rect{{LLx: 2, LLy: 0, URx: 3, URy: 1}},
		},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(colorRuns{})); diff != "" {
		t.Errorf("runs differ (-want +got):\n%s", diff)
	}
}

func TestRunsBlank(t *testing.T) {
	c := bresenham.NewCanvas(7, 3)
	c.Clear()
	if got := runs(c); len(got) != 0 {
		t.Errorf("blank canvas has %d colour groups", len(got))
	}
}

func TestWrite(t *testing.T) {
	c, err := bresenham.RenderExample(testcases.Demo(64, 64), bresenham.Rasterizer{})
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if err := Write(buf, c); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header")
	}
	if !bytes.Contains(buf.Bytes(), []byte("%%EOF")) {
		t.Errorf("output has no end-of-file marker")
	}
}
