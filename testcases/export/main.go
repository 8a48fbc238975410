// Command export writes test case definitions to JSON for external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/bresenham/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name     string        `json:"name"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Segments []jsonSegment `json:"segments,omitempty"`
	Outlines []jsonOutline `json:"outlines,omitempty"`
	CTM      []float64     `json:"ctm,omitempty"`
}

type jsonSegment struct {
	From  [2]int `json:"from"`
	To    [2]int `json:"to"`
	Color [3]int `json:"color"`
}

type jsonOutline struct {
	Path  []jsonPathElem `json:"path"`
	Color [3]int         `json:"color"`
}

type jsonPathElem struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
	}
	for _, s := range tc.Segments {
		jtc.Segments = append(jtc.Segments, jsonSegment{
			From:  [2]int{s.X0, s.Y0},
			To:    [2]int{s.X1, s.Y1},
			Color: s.Color,
		})
	}
	for _, o := range tc.Outlines {
		jtc.Outlines = append(jtc.Outlines, jsonOutline{
			Path:  pathToJSON(o.Path),
			Color: o.Color,
		})
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonPathElem {
	var elems []jsonPathElem
	for cmd, pts := range p {
		elem := jsonPathElem{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			elem.Cmd = "M"
		case path.CmdLineTo:
			elem.Cmd = "L"
		case path.CmdQuadTo:
			elem.Cmd = "Q"
		case path.CmdCubeTo:
			elem.Cmd = "C"
		case path.CmdClose:
			elem.Cmd = "Z"
		}
		for i, pt := range pts {
			elem.Pts[i] = []float64{pt.X, pt.Y}
		}
		elems = append(elems, elem)
	}
	return elems
}
