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
	"bufio"
	"errors"
	"io"
	"strconv"
)

// maxPPMPixels limits the canvas size accepted by ReadPPM.
const maxPPMPixels = 1 << 26

// WritePPM writes the canvas as a plain-text (P3) PPM image.
//
// The header gives the number of rows followed by the number of columns,
// and the maximum channel value 255.  Each row of the canvas becomes one
// line of space-separated channel values.  Channel values are written as
// stored; out-of-range values are not clamped.
func WritePPM(w io.Writer, c *Canvas) error {
	rows, cols := c.Height(), c.Width()

	out := bufio.NewWriter(w)
	buf := make([]byte, 0, 64)
	buf = append(buf, "P3\n"...)
	buf = strconv.AppendInt(buf, int64(rows), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(cols), 10)
	buf = append(buf, "\n255\n"...)
	if _, err := out.Write(buf); err != nil {
		return err
	}

	for y := range rows {
		row := c.Pix[y*c.Stride : y*c.Stride+cols]
		for x, col := range row {
			buf = buf[:0]
			buf = strconv.AppendInt(buf, int64(col.R), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(col.G), 10)
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(col.B), 10)
			if x == cols-1 {
				buf = append(buf, '\n')
			} else {
				buf = append(buf, ' ')
			}
			if _, err := out.Write(buf); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

// ReadPPM reads a plain-text PPM image in the format written by WritePPM.
// Comments are not supported.  The maximum channel value must be 255;
// channel values are stored as found, even when outside [0, 255].
func ReadPPM(r io.Reader) (*Canvas, error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	pos := 0
	next := func() (string, error) {
		if !s.Scan() {
			if err := s.Err(); err != nil {
				return "", err
			}
			return "", &FormatError{Token: pos, Err: io.ErrUnexpectedEOF}
		}
		pos++
		return s.Text(), nil
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, &FormatError{Token: pos - 1, Err: err}
		}
		return v, nil
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if magic != "P3" {
		return nil, &FormatError{Token: 0, Err: errors.New("wrong magic number " + strconv.Quote(magic))}
	}
	rows, err := nextInt()
	if err != nil {
		return nil, err
	}
	cols, err := nextInt()
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 || cols > 0 && rows > maxPPMPixels/cols {
		return nil, &FormatError{Token: 2, Err: errors.New("invalid image size")}
	}
	maxVal, err := nextInt()
	if err != nil {
		return nil, err
	}
	if maxVal != 255 {
		return nil, &FormatError{Token: 3, Err: errors.New("unsupported maximum value " + strconv.Itoa(maxVal))}
	}

	c := NewCanvas(cols, rows)
	for i := range c.Pix {
		var ch [3]int
		for j := range ch {
			ch[j], err = nextInt()
			if err != nil {
				return nil, err
			}
		}
		c.Pix[i] = Color{R: ch[0], G: ch[1], B: ch[2]}
	}
	return c, nil
}
