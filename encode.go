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
	"image/png"
	"io"

	"golang.org/x/image/bmp"
)

// WritePNG writes the canvas as a PNG image, enlarged by the given integer
// factor.  Channels are clamped to [0, 255].
func WritePNG(w io.Writer, c *Canvas, scale int) error {
	return png.Encode(w, c.RGBA(scale))
}

// WriteBMP writes the canvas as a BMP image, enlarged by the given integer
// factor.  Channels are clamped to [0, 255].
func WriteBMP(w io.Writer, c *Canvas, scale int) error {
	return bmp.Encode(w, c.RGBA(scale))
}
