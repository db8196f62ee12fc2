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

package svgdoc

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the SVG colour keywords likely to appear in stencil
// files to their hex values.
var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"gray":   "#808080",
	"grey":   "#808080",
	"silver": "#c0c0c0",
	"red":    "#ff0000",
	"maroon": "#800000",
	"green":  "#008000",
	"lime":   "#00ff00",
	"blue":   "#0000ff",
	"navy":   "#000080",
	"yellow": "#ffff00",
	"orange": "#ffa500",
	"purple": "#800080",
}

// ParseFill interprets the value of a fill attribute.  An empty value gives
// black, the SVG default.  The values "none" and "transparent" give
// ok == false.  Values which cannot be parsed are treated as black.
func ParseFill(fill string) (c colorful.Color, ok bool) {
	s := strings.ToLower(strings.TrimSpace(fill))
	switch s {
	case "":
		return colorful.Color{}, true
	case "none", "transparent":
		return colorful.Color{}, false
	}
	if hex, found := namedColors[s]; found {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, true
	}
	return c, true
}
