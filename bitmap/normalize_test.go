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

package bitmap

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// blob returns a transparent image with an opaque rectangle r.
func blob(w, h int, r image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	return img
}

func TestContentBounds(t *testing.T) {
	r := image.Rect(3, 4, 10, 6)
	if got := ContentBounds(blob(20, 20, r)); got != r {
		t.Errorf("got %v, want %v", got, r)
	}

	if got := ContentBounds(blob(20, 20, image.Rectangle{})); !got.Empty() {
		t.Errorf("expected empty bounds, got %v", got)
	}

	opaque := image.NewGray(image.Rect(0, 0, 7, 5))
	if got := ContentBounds(opaque); got != opaque.Bounds() {
		t.Errorf("opaque image: got %v, want %v", got, opaque.Bounds())
	}
}

func TestNormalizeCropOnly(t *testing.T) {
	img := blob(100, 100, image.Rect(10, 20, 40, 30))
	res, err := Normalize(img, 500)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Bounds(); got != image.Rect(0, 0, 30, 10) {
		t.Errorf("got bounds %v, want 30x10", got)
	}
	if _, _, _, a := res.At(0, 0).RGBA(); a == 0 {
		t.Error("cropped image should start with content")
	}
}

func TestNormalizeScale(t *testing.T) {
	type testCase struct {
		w, h, maxDim int
		wantW, wantH int
	}
	cases := []testCase{
		{1000, 500, 500, 500, 250},
		{300, 900, 500, 166, 500},
		{400, 400, 236, 236, 236},
		{600, 1, 125, 125, 1},
		{2000, 1000, 0, DefaultMaxDimension, DefaultMaxDimension / 2},
	}
	for _, tc := range cases {
		img := blob(tc.w, tc.h, image.Rect(0, 0, tc.w, tc.h))
		res, err := Normalize(img, tc.maxDim)
		if err != nil {
			t.Fatal(err)
		}
		b := res.Bounds()
		if b.Dx() != tc.wantW || b.Dy() != tc.wantH {
			t.Errorf("%dx%d max %d: got %dx%d, want %dx%d",
				tc.w, tc.h, tc.maxDim, b.Dx(), b.Dy(), tc.wantW, tc.wantH)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	_, err := Normalize(img, 500)
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}
}

func TestPixelsFor(t *testing.T) {
	if got := PixelsFor(20, 300); got != 236 {
		t.Errorf("PixelsFor(20, 300) = %d, want 236", got)
	}
	if LegacyMarkerDimension != 236 {
		t.Errorf("LegacyMarkerDimension = %d, want 236", LegacyMarkerDimension)
	}
}

func TestDecode(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, blob(4, 4, image.Rect(1, 1, 3, 3))); err != nil {
		t.Fatal(err)
	}
	img, format, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != "png" {
		t.Errorf("format %q, want png", format)
	}
	if got := ContentBounds(img); got != image.Rect(1, 1, 3, 3) {
		t.Errorf("content bounds %v", got)
	}
}
