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
	"bytes"
	"context"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/stencil/svgdoc"
	"seehuhn.de/go/stencil/trace"
)

// blob returns an image of a white square with a black square in the
// middle.
func blob(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	inner := image.Rect(size/4, size/4, 3*size/4, 3*size/4)
	draw.Draw(img, inner, image.Black, image.Point{}, draw.Src)
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// fixedTracer returns a tracer which always returns a copy of the given
// paths on a 500x500 canvas.
func fixedTracer(paths ...string) trace.Tracer {
	return trace.Func(func(ctx context.Context, img image.Image) (*svgdoc.Document, error) {
		doc := &svgdoc.Document{Width: 500, Height: 500}
		for _, d := range paths {
			doc.Paths = append(doc.Paths, &svgdoc.Path{D: d})
		}
		return doc, nil
	})
}

func TestConvertSolidBlob(t *testing.T) {
	doc, err := Convert(context.Background(), encodePNG(t, blob(100)), Solid{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(doc.Paths))
	}
	p := doc.Paths[0]
	if n := p.Closures(); n != 1 {
		t.Errorf("closures = %d, want 1", n)
	}
	if p.Fill != "black" {
		t.Errorf("fill = %q, want black", p.Fill)
	}

	bbox, err := p.Bounds()
	if err != nil {
		t.Fatal(err)
	}
	bbox = svgdoc.TransformBox(bbox, p.CTM())
	w, h := doc.CanvasSize()
	cx, cy := (bbox.LLx+bbox.URx)/2, (bbox.LLy+bbox.URy)/2
	if math.Abs(cx-w/2) > 1e-6 || math.Abs(cy-h/2) > 1e-6 {
		t.Errorf("shape centred at (%g, %g) on a %gx%g canvas", cx, cy, w, h)
	}
}

func TestConvertBridgeRing(t *testing.T) {
	c := &Converter{Tracer: fixedTracer(ringD)}
	doc, err := c.ConvertImage(context.Background(), blob(20), Custom{Repair: RepairBridge})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(doc.Paths))
	}
	p := doc.Paths[0]
	if n := p.Closures(); n != 1 {
		t.Errorf("closures = %d, want 1", n)
	}
	if !strings.Contains(p.D, "L0,5 L3,5") {
		t.Errorf("no bridge in %q", p.D)
	}
}

func TestConvertTracedRing(t *testing.T) {
	img := blob(100)
	draw.Draw(img, image.Rect(40, 40, 60, 60), image.White, image.Point{}, draw.Src)

	tr := &trace.Potrace{}
	traced, err := tr.Trace(context.Background(), img)
	if err != nil {
		t.Fatal(err)
	}
	if len(traced.Paths) != 1 || traced.Paths[0].Closures() != 2 {
		t.Fatalf("traced ring: %d paths, want one path with two closures", len(traced.Paths))
	}

	doc, err := Convert(context.Background(), encodePNG(t, img), Custom{Repair: RepairBridge}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(doc.Paths))
	}
	p := doc.Paths[0]
	if n := p.Closures(); n != 1 {
		t.Errorf("closures = %d, want 1", n)
	}
	if p.Problematic {
		t.Error("bridged ring still marked as problematic")
	}
}

func TestConvertEmptyImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	_, err := Convert(context.Background(), encodePNG(t, img), Solid{}, 0)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got error %v, want %v", err, ErrEmptyImage)
	}
}

func TestConvertTextKeepsPaths(t *testing.T) {
	paths := []string{ringD, squareD, "M40,0 L50,0 L50,5 Z"}
	c := &Converter{Tracer: fixedTracer(paths...)}
	doc, err := c.ConvertImage(context.Background(), blob(20), Text{})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Paths) != 3 {
		t.Fatalf("got %d paths, want 3", len(doc.Paths))
	}
	for i, p := range doc.Paths {
		if p.D != paths[i] {
			t.Errorf("path %d changed to %q", i, p.D)
		}
		if p.Fill != "" {
			t.Errorf("path %d: fill set to %q", i, p.Fill)
		}
		// The paths together span [0,50]x[0,30].
		if p.Transform != svgdoc.Translate(225, 235) {
			t.Errorf("path %d: transform = %v", i, p.Transform)
		}
	}
}

func TestConvertSingleCrossing(t *testing.T) {
	d := "M0,0 L10,0 Z M0,8 L10,8 Z M20,0 L20,8"
	c := &Converter{Tracer: fixedTracer(d)}
	doc, err := c.ConvertImage(context.Background(), blob(20), Custom{})
	if err != nil {
		t.Fatal(err)
	}
	p := doc.Paths[0]
	if p.D != d {
		t.Errorf("path changed to %q", p.D)
	}
	if !p.Problematic {
		t.Error("problematic flag lost")
	}
}

func TestConvertTraceFailure(t *testing.T) {
	cases := []struct {
		name   string
		tracer trace.Tracer
	}{
		{"error", trace.Func(func(context.Context, image.Image) (*svgdoc.Document, error) {
			return nil, trace.ErrNoPaths
		})},
		{"empty", trace.Func(func(context.Context, image.Image) (*svgdoc.Document, error) {
			return &svgdoc.Document{}, nil
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &Converter{Tracer: tc.tracer}
			_, err := c.ConvertImage(context.Background(), blob(20), Solid{})
			if !errors.Is(err, ErrTraceFailure) {
				t.Errorf("got error %v, want %v", err, ErrTraceFailure)
			}
		})
	}
}

func TestConvertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Convert(ctx, encodePNG(t, blob(50)), Solid{}, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestConvertBadImage(t *testing.T) {
	_, err := Convert(context.Background(), []byte("not an image"), Solid{}, 0)
	if err == nil {
		t.Error("expected an error")
	}
}

func TestConvertMaxDimension(t *testing.T) {
	var size image.Point
	tr := trace.Func(func(ctx context.Context, img image.Image) (*svgdoc.Document, error) {
		size = img.Bounds().Size()
		return &svgdoc.Document{
			Width:  float64(size.X),
			Height: float64(size.Y),
			Paths:  []*svgdoc.Path{{D: squareD}},
		}, nil
	})
	c := &Converter{Tracer: tr, MaxDimension: 64}
	if _, err := c.ConvertImage(context.Background(), blob(200), Solid{}); err != nil {
		t.Fatal(err)
	}
	// The white border is opaque, so nothing is cropped.
	if size != (image.Point{X: 64, Y: 64}) {
		t.Errorf("tracer saw a %v image", size)
	}
}

func TestRefine(t *testing.T) {
	doc := &svgdoc.Document{
		Width:  200,
		Height: 100,
		Paths: []*svgdoc.Path{
			{D: "M0,0 L10,0 L10,10 L0,10 Z", Transform: svgdoc.Translate(5, 5)},
		},
	}
	if _, err := (&Converter{}).Refine(doc, Text{}); err != nil {
		t.Fatal(err)
	}
	p := doc.Paths[0]
	if p.D != "M5,5 L15,5 L15,15 L5,15 Z" {
		t.Errorf("transform not applied: %q", p.D)
	}
	if p.Transform != svgdoc.Translate(90, 40) {
		t.Errorf("transform = %v", p.Transform)
	}
}

func TestConverterLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := "M0,0 L10,0 Z M0,8 L10,8 Z M20,0 L20,8"
	c := &Converter{Tracer: fixedTracer(d), Logger: log}
	if _, err := c.ConvertImage(context.Background(), blob(20), Custom{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"request=", "path not bridged", "level=WARN", "centred"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output misses %q:\n%s", want, out)
		}
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer SetLogger(nil)

	Logger().Warn("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("message not logged: %q", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is not silent")
	}
}

func TestParsePrintType(t *testing.T) {
	cases := []struct {
		name   string
		repair string
		want   Policy
	}{
		{"solid", "", Solid{}},
		{"SOLID", "flag", Solid{}},
		{"text", "", Text{}},
		{"custom", "", Custom{Repair: RepairBridge}},
		{"custom", "flag", Custom{Repair: RepairFlag}},
		{" Custom ", "FLAG", Custom{Repair: RepairFlag}},
		{"", "", Solid{}},
		{"engraving", "", Solid{}},
	}
	for _, tc := range cases {
		got := ParsePrintType(tc.name, ParseRepair(tc.repair))
		if got != tc.want {
			t.Errorf("%q/%q: got %v, want %v", tc.name, tc.repair, got, tc.want)
		}
	}
	if s := (Custom{Repair: RepairFlag}).String(); s != "custom/flag" {
		t.Errorf("got %q", s)
	}
}
