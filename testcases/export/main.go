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

// Command export writes all test cases to testdata/cases, for visual
// inspection.  For every case it writes the traced input as SVG, the
// converted result as SVG, a PNG preview and a PDF proof of the result.
package main

import (
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/stencil"
	"seehuhn.de/go/stencil/preview"
	"seehuhn.de/go/stencil/proof"
	"seehuhn.de/go/stencil/svgdoc"
	"seehuhn.de/go/stencil/testcases"
)

const outDir = "testdata/cases"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	c := &stencil.Converter{}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := export(c, name, &tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func export(c *stencil.Converter, name string, tc *testcases.TestCase) error {
	doc := tc.Document()
	if err := writeSVG(filepath.Join(outDir, name+"_in.svg"), doc); err != nil {
		return err
	}

	policy := stencil.ParsePrintType(tc.PrintType, stencil.ParseRepair(tc.Repair))
	if _, err := c.Refine(doc, policy); err != nil {
		return err
	}
	if err := writeSVG(filepath.Join(outDir, name+".svg"), doc); err != nil {
		return err
	}
	if err := writePNG(filepath.Join(outDir, name+".png"), doc); err != nil {
		return err
	}
	return proof.Write(filepath.Join(outDir, name+".pdf"), doc)
}

func writeSVG(fname string, doc *svgdoc.Document) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := svgdoc.Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(fname string, doc *svgdoc.Document) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, preview.Render(doc, 4)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
