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


package displayer

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/bresenham"
)

// fakeDisplay records the pixels written to it.
type fakeDisplay struct {
	w, h     int16
	pix      map[image.Point]color.RGBA
	displays int
}

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pix: make(map[image.Point]color.RGBA)}
}

func (d *fakeDisplay) Size() (x, y int16) {
	return d.w, d.h
}

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pix[image.Pt(int(x), int(y))] = c
}

func (d *fakeDisplay) Display() error {
	d.displays++
	return nil
}

func TestBlit(t *testing.T) {
	c := bresenham.NewCanvas(4, 3)
	c.Clear()
	if err := c.SetPixel(image.Pt(1, 2), bresenham.Color{R: 300, G: 10, B: -5}); err != nil {
		t.Fatal(err)
	}

	// The display is narrower than the canvas.
	d := newFakeDisplay(3, 5)
	if err := Blit(d, c); err != nil {
		t.Fatal(err)
	}

	if d.displays != 1 {
		t.Errorf("Display called %d times, want 1", d.displays)
	}
	if len(d.pix) != 3*3 {
		t.Errorf("%d pixels written, want 9", len(d.pix))
	}
	want := color.RGBA{R: 255, G: 10, B: 0, A: 255}
	if got := d.pix[image.Pt(1, 2)]; got != want {
		t.Errorf("pixel (1,2) = %v, want %v", got, want)
	}
	if got := d.pix[image.Pt(0, 0)]; got != (color.RGBA{A: 255}) {
		t.Errorf("pixel (0,0) = %v, want opaque black", got)
	}
}

func TestDrawLine(t *testing.T) {
	d := newFakeDisplay(8, 8)
	a, b := image.Pt(0, 0), image.Pt(7, 3)
	if err := DrawLine(d, a, b, bresenham.Cyan); err != nil {
		t.Fatal(err)
	}

	want := make(map[image.Point]color.RGBA)
	for p := range bresenham.Line(a, b) {
		want[p] = color.RGBA{G: 255, B: 255, A: 255}
	}
	if diff := cmp.Diff(want, d.pix); diff != "" {
		t.Errorf("pixels differ (-want +got):\n%s", diff)
	}
	if d.displays != 0 {
		t.Errorf("Display called %d times, want 0", d.displays)
	}
}

func TestDrawLineOutOfBounds(t *testing.T) {
	d := newFakeDisplay(8, 8)
	err := DrawLine(d, image.Pt(0, 0), image.Pt(8, 3), bresenham.Red)
	if !errors.Is(err, bresenham.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	var rangeErr *bresenham.RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Point != image.Pt(8, 3) {
		t.Errorf("unexpected error %v", err)
	}
	if len(d.pix) != 0 {
		t.Errorf("%d pixels written after error", len(d.pix))
	}
}
