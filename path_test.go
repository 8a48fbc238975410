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

package bresenham

import (
	"errors"
	"image"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func polygon(closed bool, pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		if closed {
			yield(path.CmdClose, nil)
		}
	}
}

// paintedPixels returns the set of non-black pixels of c.
func paintedPixels(c *Canvas) map[image.Point]Color {
	res := make(map[image.Point]Color)
	for y := range c.Height() {
		for x := range c.Width() {
			if col := c.Pix[y*c.Stride+x]; col != Black {
				res[image.Pt(x, y)] = col
			}
		}
	}
	return res
}

func linePixels(segs ...[2]image.Point) map[image.Point]Color {
	res := make(map[image.Point]Color)
	for _, s := range segs {
		for p := range Line(s[0], s[1]) {
			res[p] = Green
		}
	}
	return res
}

func checkPixels(t *testing.T, c *Canvas, want map[image.Point]Color) {
	t.Helper()
	got := paintedPixels(c)
	for p, col := range want {
		if got[p] != col {
			t.Errorf("pixel %v: got %v, want %v", p, got[p], col)
		}
	}
	for p := range got {
		if _, ok := want[p]; !ok {
			t.Errorf("unexpected pixel %v", p)
		}
	}
}

func TestDrawPathTriangle(t *testing.T) {
	c := NewCanvas(16, 16)
	tri := polygon(true, vec.Vec2{X: 1.5, Y: 1.2}, vec.Vec2{X: 14.9, Y: 3}, vec.Vec2{X: 6, Y: 13.7})
	if err := (Rasterizer{}).DrawPath(c, tri, Green); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, c, linePixels(
		[2]image.Point{{1, 1}, {14, 3}},
		[2]image.Point{{14, 3}, {6, 13}},
		[2]image.Point{{6, 13}, {1, 1}},
	))
}

func TestDrawPathOpen(t *testing.T) {
	c := NewCanvas(16, 16)
	open := polygon(false, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10})
	if err := (Rasterizer{}).DrawPath(c, open, Green); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, c, linePixels(
		[2]image.Point{{0, 0}, {10, 0}},
		[2]image.Point{{10, 0}, {10, 10}},
	))
}

func TestDrawPathCTM(t *testing.T) {
	c := NewCanvas(32, 32)
	sq := polygon(true, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 5, Y: 0}, vec.Vec2{X: 5, Y: 5}, vec.Vec2{X: 0, Y: 5})
	r := Rasterizer{CTM: matrix.Scale(4, 4).Translate(6, 6)}
	if err := r.DrawPath(c, sq, Green); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, c, linePixels(
		[2]image.Point{{6, 6}, {26, 6}},
		[2]image.Point{{26, 6}, {26, 26}},
		[2]image.Point{{26, 26}, {6, 26}},
		[2]image.Point{{6, 26}, {6, 6}},
	))
}

func TestDrawPathLineToWithoutMoveTo(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 3, Y: 3}}) {
			return
		}
		if !yield(path.CmdClose, nil) {
			return
		}
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 1, Y: 1}}) {
			return
		}
		yield(path.CmdLineTo, []vec.Vec2{{X: 1, Y: 4}})
	}

	c := NewCanvas(8, 8)
	if err := (Rasterizer{}).DrawPath(c, p, Green); err != nil {
		t.Fatal(err)
	}
	checkPixels(t, c, linePixels([2]image.Point{{1, 1}, {1, 4}}))
}

func TestDrawPathCurve(t *testing.T) {
	p := func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) {
			return
		}
		if !yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 0}}) {
			return
		}
		yield(path.CmdQuadTo, []vec.Vec2{{X: 5, Y: 5}, {X: 0, Y: 5}})
	}

	c := NewCanvas(8, 8)
	err := (Rasterizer{}).DrawPath(c, p, Green)
	if !errors.Is(err, ErrCurve) {
		t.Errorf("got error %v, want ErrCurve", err)
	}
	if len(paintedPixels(c)) != 0 {
		t.Error("canvas modified")
	}
}

func TestDrawPathOutOfBounds(t *testing.T) {
	c := NewCanvas(8, 8)
	p := polygon(false, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 6, Y: 1}, vec.Vec2{X: 6, Y: 12})
	err := (Rasterizer{}).DrawPath(c, p, Green)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got error %v, want ErrOutOfBounds", err)
	}
	// the first segment is drawn before the error is detected
	checkPixels(t, c, linePixels([2]image.Point{{1, 1}, {6, 1}}))
}

func TestSegments(t *testing.T) {
	var got [][2]image.Point
	sq := polygon(true, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 2, Y: 0}, vec.Vec2{X: 0, Y: 2})
	Rasterizer{}.segments(sq, func(a, b image.Point) bool {
		got = append(got, [2]image.Point{a, b})
		return len(got) < 2
	})
	want := [][2]image.Point{{{0, 0}, {2, 0}}, {{2, 0}, {0, 2}}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
