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

// Command bresenham draws the demo scene of lines in all eight octants and
// writes it to an image file.
//
// Without flags the program draws onto a 512×512 canvas and writes the
// plain-text PPM file "bresenham.ppm" in the current directory.  The
// output format is chosen by the file name extension: .ppm, .png, .bmp or
// .pdf, unless the -format flag is given.  The file name "-" writes to
// standard output, in PPM format by default.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/bresenham"
	"seehuhn.de/go/bresenham/internal/logging"
	"seehuhn.de/go/bresenham/pdfout"
	"seehuhn.de/go/bresenham/testcases"
)

func main() {
	output := flag.String("o", "bresenham.ppm", "output file (\"-\" for standard output)")
	format := flag.String("format", "", "output format: ppm, png, bmp or pdf (default from file name)")
	width := flag.Int("width", 512, "canvas width in pixels")
	height := flag.Int("height", 512, "canvas height in pixels")
	legacy := flag.Bool("legacy", false, "use the legacy rounding for steep lines with negative slope")
	clamp := flag.Bool("clamp", false, "clamp channel values to [0, 255] before writing")
	scale := flag.Int("scale", 1, "enlargement factor for PNG and BMP output")
	logFormat := flag.String("log", "text", "log format (text or json)")
	flag.Parse()

	if err := logging.Setup(os.Stderr, logging.Config{Handler: *logFormat}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := config{
		Output: *output,
		Format: *format,
		Width:  *width,
		Height: *height,
		Legacy: *legacy,
		Clamp:  *clamp,
		Scale:  *scale,
	}
	if err := run(cfg); err != nil {
		slog.Error("drawing failed", "error", err)
		os.Exit(1)
	}
}

type config struct {
	Output        string
	Format        string
	Width, Height int
	Legacy        bool
	Clamp         bool
	Scale         int
}

// encoder writes a canvas in one output format.
type encoder struct {
	binary bool
	write  func(w io.Writer, c *bresenham.Canvas, scale int) error
}

var encoders = map[string]encoder{
	".ppm": {write: func(w io.Writer, c *bresenham.Canvas, _ int) error {
		return bresenham.WritePPM(w, c)
	}},
	".png": {binary: true, write: bresenham.WritePNG},
	".bmp": {binary: true, write: bresenham.WriteBMP},
	".pdf": {binary: true, write: func(w io.Writer, c *bresenham.Canvas, _ int) error {
		return pdfout.Write(w, c)
	}},
}

var errTerminal = errors.New("refusing to write binary data to a terminal")

func run(cfg config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale < 1 {
		return fmt.Errorf("invalid scale factor %d", cfg.Scale)
	}

	ext := "." + strings.TrimPrefix(strings.ToLower(cfg.Format), ".")
	switch {
	case cfg.Format != "":
		// explicit format
	case cfg.Output == "-":
		ext = ".ppm"
	default:
		ext = strings.ToLower(filepath.Ext(cfg.Output))
	}
	enc, ok := encoders[ext]
	if !ok {
		return fmt.Errorf("%s: unsupported output format %q", cfg.Output, ext)
	}
	if cfg.Scale != 1 && (ext == ".ppm" || ext == ".pdf") {
		slog.Warn("scale factor ignored", "format", ext, "scale", cfg.Scale)
	}

	scene := testcases.Demo(cfg.Width, cfg.Height)
	c, err := bresenham.RenderExample(scene, bresenham.Rasterizer{Legacy: cfg.Legacy})
	if err != nil {
		return err
	}
	if cfg.Clamp {
		c.Clamp()
	}

	if cfg.Output == "-" {
		if enc.binary && term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
		return enc.write(os.Stdout, c, cfg.Scale)
	}

	err = writeFile(cfg.Output, func(w io.Writer) error {
		return enc.write(w, c, cfg.Scale)
	})
	if err != nil {
		return err
	}
	slog.Info("image written",
		"file", cfg.Output,
		"width", cfg.Width,
		"height", cfg.Height,
		"lines", len(scene.Segments))
	return nil
}

func writeFile(fname string, write func(io.Writer) error) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
