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

package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/stencil"
	"seehuhn.de/go/stencil/internal/config"
	"seehuhn.de/go/stencil/preview"
	"seehuhn.de/go/stencil/proof"
	"seehuhn.de/go/stencil/svgdoc"
)

var convertOpts struct {
	output    string
	printType string
	repair    string
	maxDim    int
	pngPath   string
	pdfPath   string
}

var convertCmd = &cobra.Command{
	Use:   "convert <image|svg>",
	Short: "Convert an image or an SVG file into a stencil",
	Long: `Convert traces an image into a stencil outline and writes it as SVG.

Supported image formats are PNG, JPEG, GIF, BMP, TIFF and WebP.  If the
input is an SVG file, tracing is skipped and only the print type and
centring are applied.

Print types:
  solid   - keep only the outer outline, filled (default)
  text    - keep all traced paths
  custom  - repair paths with islands, by bridging or by flagging them`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVarP(&convertOpts.output, "output", "o", "", "output SVG file")
	f.StringVar(&convertOpts.printType, "type", "", "print type: solid, text or custom")
	f.StringVar(&convertOpts.repair, "repair", "", "repair for the custom print type: bridge or flag")
	f.IntVar(&convertOpts.maxDim, "max", 0, "longer side of the traced bitmap, in pixels")
	f.StringVar(&convertOpts.pngPath, "preview", "", "also write a PNG preview to this file")
	f.StringVar(&convertOpts.pdfPath, "pdf", "", "also write a PDF proof to this file")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	in := args[0]

	c := *cfg
	flags := cmd.Flags()
	if flags.Changed("type") {
		c.PrintType = convertOpts.printType
	}
	if flags.Changed("repair") {
		c.CustomRepair = convertOpts.repair
	}
	if flags.Changed("max") {
		c.MaxDimension = convertOpts.maxDim
	}
	if err := c.Validate(); err != nil {
		return err
	}

	out := convertOpts.output
	if out == "" {
		out = outputName(in, filepath.Dir(in))
	}

	doc, err := convertFile(cmd.Context(), &c, in)
	if err != nil {
		return err
	}
	if err := writeSVG(out, doc); err != nil {
		return err
	}
	if convertOpts.pngPath != "" {
		if err := writePNG(convertOpts.pngPath, doc, c.Preview.Scale); err != nil {
			return err
		}
	}
	if convertOpts.pdfPath != "" {
		if err := proof.Write(convertOpts.pdfPath, doc); err != nil {
			return err
		}
	}

	var problematic int
	for _, p := range doc.Paths {
		if p.Problematic {
			problematic++
		}
	}
	cmd.Printf("%s: %d paths, %d problematic\n", out, len(doc.Paths), problematic)
	return nil
}

// convertFile converts one input file, using the print type of the
// configuration.
func convertFile(ctx context.Context, c *config.Config, in string) (*svgdoc.Document, error) {
	data, err := os.ReadFile(in)
	if err != nil {
		return nil, err
	}

	conv := c.Converter()
	conv.Logger = stencil.Logger().With("file", filepath.Base(in))

	if isSVG(in) {
		doc, err := svgdoc.Read(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", in, err)
		}
		if _, err := conv.Refine(doc, c.Policy()); err != nil {
			return nil, fmt.Errorf("%s: %w", in, err)
		}
		return doc, nil
	}

	doc, err := conv.Convert(ctx, data, c.Policy())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in, err)
	}
	return doc, nil
}

// outputName returns the name of the SVG file for the input file in.
func outputName(in, dir string) string {
	base := filepath.Base(in)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if isSVG(in) {
		stem += "_stencil"
	}
	return filepath.Join(dir, stem+".svg")
}

func isSVG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".svg")
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

func writePNG(fname string, doc *svgdoc.Document, scale float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, preview.Render(doc, scale)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
