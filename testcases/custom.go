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

var flagCases = []TestCase{
	{
		Name: "ring_and_bar",
		Paths: []*path.Data{
			ring(30, 50, 20, 10),
			rectangle(60, 20, 90, 80, false),
		},
		Width:        100,
		Height:       100,
		PrintType:    "custom",
		Repair:       "flag",
		WantClosures: []int{2, 1},
	},
}

var bridgeCases = []TestCase{
	{
		Name:         "square_ring",
		Paths:        []*path.Data{join(rectangle(10, 10, 90, 90, false), rectangle(30, 30, 70, 70, true))},
		Width:        100,
		Height:       100,
		PrintType:    "custom",
		Repair:       "bridge",
		WantClosures: []int{1},
	},
	{
		Name:         "round_ring",
		Paths:        []*path.Data{ring(50, 50, 40, 20)},
		Width:        100,
		Height:       100,
		PrintType:    "custom",
		WantClosures: []int{1},
	},
	{
		Name: "two_holes",
		Paths: []*path.Data{join(
			rectangle(0, 10, 100, 90, false),
			rectangle(10, 30, 40, 70, true),
			rectangle(60, 30, 90, 70, true),
		)},
		Width:        100,
		Height:       100,
		PrintType:    "custom",
		Repair:       "bridge",
		WantClosures: []int{1},
	},
	{
		// The scan line y=30 misses both triangles and meets the open
		// subpath once.
		Name: "single_crossing",
		Paths: []*path.Data{(&path.Data{}).
			MoveTo(pt(10, 10)).LineTo(pt(30, 10)).LineTo(pt(20, 20)).Close().
			MoveTo(pt(10, 50)).LineTo(pt(30, 50)).LineTo(pt(20, 40)).Close().
			MoveTo(pt(80, 10)).LineTo(pt(80, 50)),
		},
		Width:        100,
		Height:       100,
		PrintType:    "custom",
		Repair:       "bridge",
		WantClosures: []int{2},
	},
}
