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

import (
	"image"
	"regexp"
	"testing"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestNames(t *testing.T) {
	for category, cases := range All {
		if !validName.MatchString(category) {
			t.Errorf("invalid category name %q", category)
		}
		seen := make(map[string]bool)
		for _, tc := range cases {
			if !validName.MatchString(tc.Name) {
				t.Errorf("%s: invalid name %q", category, tc.Name)
			}
			if seen[tc.Name] {
				t.Errorf("%s: duplicate name %q", category, tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

func TestSegmentsInBounds(t *testing.T) {
	for category, cases := range All {
		for _, tc := range cases {
			if tc.Width <= 0 || tc.Height <= 0 {
				t.Errorf("%s/%s: invalid size %dx%d", category, tc.Name, tc.Width, tc.Height)
				continue
			}
			bounds := image.Rect(0, 0, tc.Width, tc.Height)
			for i, seg := range tc.Segments {
				if !seg.From().In(bounds) || !seg.To().In(bounds) {
					t.Errorf("%s/%s: segment %d outside the canvas", category, tc.Name, i)
				}
			}
		}
	}
}

func TestDemo(t *testing.T) {
	tc := Demo(512, 512)
	if len(tc.Segments) != 12 {
		t.Fatalf("demo has %d segments, want 12", len(tc.Segments))
	}

	first := tc.Segments[0]
	if first.From() != image.Pt(0, 0) || first.To() != image.Pt(511, 511) {
		t.Errorf("unexpected first segment %v", first)
	}

	colors := make(map[RGB]bool)
	for _, seg := range tc.Segments {
		colors[seg.Color] = true
	}
	if len(colors) != 6 {
		t.Errorf("demo uses %d colours, want 6", len(colors))
	}
}
