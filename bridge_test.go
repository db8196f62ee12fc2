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

package stencil

import (
	"errors"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stencil/svgdoc"
)

func TestBridgeRing(t *testing.T) {
	p := &svgdoc.Path{D: "M0,0 L10,0 L10,10 L0,10 Z M3,3 L3,7 L7,7 L7,3 Z"}
	if err := Bridge(p); err != nil {
		t.Fatal(err)
	}

	want := "M0,0 L10,0 L0,10 L0,0 L7,7 L7,3 L3,3 L0,5 L3,5 L7,5 L10,5" +
		" L10,0 L10,10 L0,10 L3,3 L3,7 L7,7 Z"
	if p.D != want {
		t.Errorf("got  %q\nwant %q", p.D, want)
	}
	if n := p.Closures(); n != 1 {
		t.Errorf("closures = %d, want 1", n)
	}
}

func TestBridgeOddCrossings(t *testing.T) {
	// The triangle meets the scan line y=5 three times, twice at its
	// corner (10,5).  The last crossing has no partner.
	p := &svgdoc.Path{D: "M0,0 L10,5 L0,10 Z M20,0 L30,0 Z"}
	if err := Bridge(p); err != nil {
		t.Fatal(err)
	}

	want := "M0,0 L10,5 L0,10 L0,0 L20,0 L30,0 L20,0 L0,5 L10,5 L0,10 Z"
	if p.D != want {
		t.Errorf("got  %q\nwant %q", p.D, want)
	}
	if n := strings.Count(p.D, "L0,5 L10,5"); n != 1 {
		t.Errorf("found %d bridges, want 1", n)
	}
}

func TestBridgeCurves(t *testing.T) {
	p := &svgdoc.Path{D: "M0,0 C0,10 10,10 10,0 Z M2,1 Q5,4 8,1 Z M4,2 L6,2 L5,7 Z"}
	if err := Bridge(p); err != nil {
		t.Fatal(err)
	}
	if n := p.Closures(); n != 1 {
		t.Errorf("closures = %d, want 1", n)
	}
	data, err := p.Data()
	if err != nil {
		t.Fatal(err)
	}
	var curves int
	for _, cmd := range data.Cmds {
		if cmd == path.CmdCubeTo || cmd == path.CmdQuadTo {
			curves++
		}
	}
	if curves != 2 {
		t.Errorf("found %d curves, want 2", curves)
	}
}

func TestBridgeUnchanged(t *testing.T) {
	cases := []struct {
		name string
		d    string
		err  error
	}{
		{"open", "M0,0 L10,0 L10,10", nil},
		{"single", "M0,0 L10,0 L10,10 Z", nil},
		{"one crossing", "M0,0 L10,0 Z M0,8 L10,8 Z M20,0 L20,8", ErrInsufficientCrossings},
		{"no crossing", "M0,0 L10,0 Z M0,0 C0,10 10,10 10,0 Z", ErrInsufficientCrossings},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &svgdoc.Path{D: tc.d}
			err := Bridge(p)
			if !errors.Is(err, tc.err) {
				t.Errorf("got error %v, want %v", err, tc.err)
			}
			if p.D != tc.d {
				t.Errorf("path changed to %q", p.D)
			}
		})
	}
}

func TestBridgeMalformed(t *testing.T) {
	p := &svgdoc.Path{D: "M0,0 L10,0 Z M5,5 A1,1 0 0 1 6,6 Z"}
	err := Bridge(p)
	var syntaxErr *svgdoc.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("got error %v, want a syntax error", err)
	}
}

func TestScanCrossings(t *testing.T) {
	segs := []segment{
		{cmd: path.CmdLineTo, start: vec.Vec2{X: 8, Y: 0}, pts: []vec.Vec2{{X: 8, Y: 10}}},
		{cmd: path.CmdLineTo, start: vec.Vec2{X: 0, Y: 5}, pts: []vec.Vec2{{X: 10, Y: 5}}},
		{cmd: path.CmdLineTo, start: vec.Vec2{X: 0, Y: 10}, pts: []vec.Vec2{{X: 4, Y: 0}}},
		{cmd: path.CmdLineTo, start: vec.Vec2{X: 0, Y: 6}, pts: []vec.Vec2{{X: 0, Y: 9}}},
	}
	got := scanCrossings(segs, 5)
	want := []vec.Vec2{{X: 2, Y: 5}, {X: 8, Y: 5}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("crossing %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSegments(t *testing.T) {
	data, err := svgdoc.ParseData("M0,0 L1,0 L1,1 L0,0 Z M2,2 Q3,3 4,2 Z")
	if err != nil {
		t.Fatal(err)
	}
	segs := segments(data)

	// The first closepath adds nothing, since the subpath is already
	// back at its start.
	if len(segs) != 5 {
		t.Fatalf("got %d segments, want 5", len(segs))
	}
	last := segs[4]
	if last.start != (vec.Vec2{X: 4, Y: 2}) || last.end() != (vec.Vec2{X: 2, Y: 2}) {
		t.Errorf("closing segment %v -> %v", last.start, last.end())
	}
	if segs[3].cmd != path.CmdQuadTo || len(segs[3].pts) != 2 {
		t.Errorf("unexpected quadratic segment %v", segs[3])
	}
}
