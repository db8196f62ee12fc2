// seehuhn.de/go/stencil - turn photos into cuttable stencil outlines
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

import "seehuhn.de/go/geom/path"

var solidCases = []TestCase{
	{
		Name:         "blob",
		Paths:        []*path.Data{rectangle(20, 30, 80, 70, false)},
		Width:        100,
		Height:       100,
		PrintType:    "solid",
		WantClosures: []int{1},
	},
	{
		Name:         "ring",
		Paths:        []*path.Data{ring(50, 50, 40, 20)},
		Width:        100,
		Height:       100,
		PrintType:    "solid",
		WantClosures: []int{1},
	},
	{
		Name: "outline_second",
		Paths: []*path.Data{
			rectangle(40, 40, 60, 60, false),
			join(rectangle(10, 10, 90, 90, false), rectangle(30, 30, 70, 70, true)),
		},
		Width:        100,
		Height:       100,
		PrintType:    "solid",
		WantClosures: []int{1},
	},
	{
		Name: "islands",
		Paths: []*path.Data{
			star(30, 50, 20, 8),
			circle(75, 50, 15, false),
		},
		Width:        100,
		Height:       100,
		PrintType:    "solid",
		WantClosures: []int{1},
	},
	{
		Name:         "unclosed",
		Paths:        []*path.Data{(&path.Data{}).MoveTo(pt(10, 10)).LineTo(pt(90, 10)).LineTo(pt(50, 90))},
		Width:        100,
		Height:       100,
		PrintType:    "solid",
		WantClosures: []int{1},
	},
}

var textCases = []TestCase{
	{
		Name: "three_letters",
		Paths: []*path.Data{
			rectangle(10, 20, 30, 80, false),
			ring(50, 50, 15, 7),
			star(85, 50, 12, 5),
		},
		Width:        100,
		Height:       100,
		PrintType:    "text",
		WantClosures: []int{1, 2, 1},
	},
}

// ring builds a disc with a round hole, as one path.
func ring(cx, cy, outer, inner float64) *path.Data {
	return join(circle(cx, cy, outer, false), circle(cx, cy, inner, true))
}
