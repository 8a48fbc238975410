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
	"fmt"
	"image"
	"strconv"
)

var (
	// ErrOutOfBounds is matched by every [RangeError].
	ErrOutOfBounds = errors.New("point outside canvas")

	// ErrCurve is returned when a path passed to [Rasterizer.DrawPath]
	// contains a Bézier segment.
	ErrCurve = errors.New("curve segments are not supported")

	// ErrFormat is matched by every [FormatError].
	ErrFormat = errors.New("not a valid P3 image")
)

// RangeError reports an access to a pixel outside the canvas.
type RangeError struct {
	Point  image.Point
	Bounds image.Rectangle
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("point %v outside canvas %v", err.Point, err.Bounds)
}

// Is makes RangeError match [ErrOutOfBounds].
func (err *RangeError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// FormatError indicates that a PPM file could not be parsed.
type FormatError struct {
	Token int // index of the offending whitespace-separated token
	Err   error
}

func (err *FormatError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "not a valid P3 image" + middle + " (at token " + strconv.Itoa(err.Token) + ")"
}

func (err *FormatError) Unwrap() error {
	return err.Err
}

// Is makes FormatError match [ErrFormat].
func (err *FormatError) Is(target error) bool {
	return target == ErrFormat
}
