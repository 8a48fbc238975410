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

package testcases

// Demo returns the twelve-line demo scene, scaled to a canvas of the given
// size.  The command draws it at 512×512 by default.
func Demo(width, height int) TestCase {
	w, h := width-1, height-1
	return TestCase{
		Name:   "demo",
		Width:  width,
		Height: height,
		Segments: []Segment{
			// octants 1 and 5
			seg(0, 0, w, h, Green),
			seg(0, 0, w, height/2, Green),
			seg(w, h, 0, height/2, Green),

			// octants 8 and 4
			seg(0, h, w, 0, Cyan),
			seg(0, h, w, height/2, Cyan),
			seg(w, 0, 0, height/2, Cyan),

			// octants 2 and 6
			seg(0, 0, width/2, h, Red),
			seg(w, h, width/2, 0, Red),

			// octants 7 and 3
			seg(0, h, width/2, 0, Magenta),
			seg(w, 0, width/2, h, Magenta),

			// horizontal and vertical
			seg(0, height/2, w, height/2, Yellow),
			seg(width/2, 0, width/2, h, Yellow),
		},
	}
}

var demoCases = []TestCase{
	withName(Demo(512, 512), "default_size"),
	withName(Demo(64, 64), "small"),
	withName(Demo(97, 61), "odd_size"),
}

func withName(tc TestCase, name string) TestCase {
	tc.Name = name
	return tc
}
