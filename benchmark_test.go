package bresenham

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"
)

var benchSizes = []int{20, 200, 2000}

// BenchmarkLine benchmarks drawing a fan of lines from the centre of the
// canvas to every tenth pixel on the border.
func BenchmarkLine(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			c := NewCanvas(size, size)
			center := image.Pt(size/2, size/2)
			ends := fanEnds(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				for _, p := range ends {
					if err := c.DrawLine(center, p, Green); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

// BenchmarkLineIter measures the pixel iterator without touching a canvas.
func BenchmarkLineIter(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := image.Pt(size/2, size/2)
			ends := fanEnds(size)

			b.ResetTimer()
			b.ReportAllocs()

			n := 0
			for b.Loop() {
				for _, p := range ends {
					for range Line(center, p) {
						n++
					}
				}
			}
			_ = n
		})
	}
}

// BenchmarkVectorLine benchmarks x/image/vector drawing the same fan,
// each line as a quadrilateral of width one.
func BenchmarkVectorLine(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			cx := float32(size)/2 + 0.5
			cy := cx
			ends := fanEnds(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				for _, p := range ends {
					addThinLine(r, cx, cy, float32(p.X)+0.5, float32(p.Y)+0.5)
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// fanEnds returns every tenth point on the border of a size×size canvas.
func fanEnds(size int) []image.Point {
	var res []image.Point
	step := max(1, size/10)
	for i := 0; i < size; i += step {
		res = append(res,
			image.Pt(i, 0),
			image.Pt(size-1, i),
			image.Pt(size-1-i, size-1),
			image.Pt(0, size-1-i))
	}
	return res
}

// addThinLine adds a closed quadrilateral of width one around the segment
// from (x0, y0) to (x1, y1).
func addThinLine(r *vector.Rasterizer, x0, y0, x1, y1 float32) {
	dx, dy := x1-x0, y1-y0
	var nx, ny float32
	if abs(int(dx)) >= abs(int(dy)) {
		ny = 0.5
	} else {
		nx = 0.5
	}
	r.MoveTo(x0-nx, y0-ny)
	r.LineTo(x1-nx, y1-ny)
	r.LineTo(x1+nx, y1+ny)
	r.LineTo(x0+nx, y0+ny)
	r.ClosePath()
}
