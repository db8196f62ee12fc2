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

// Package trace converts normalized bitmaps into vector documents.
//
// The tracing algorithm itself is treated as a black box behind the
// [Tracer] interface.  [Potrace] is the default implementation, based on a
// pure Go port of potrace.
package trace

import (
	"context"
	"errors"
	"image"

	"seehuhn.de/go/stencil/svgdoc"
)

// ErrNoPaths is returned by tracers when the bitmap produced no paths.
var ErrNoPaths = errors.New("tracer returned no paths")

// Tracer turns a bitmap into a vector document.
//
// The returned document has one path per connected region.  Each path is a
// sequence of closed sub-contours: the outer boundary first, followed by
// the boundaries of its holes.  When regions are nested, outer regions are
// listed before inner ones.
//
// Trace is a synchronous call.  Implementations should give up early if the
// context is cancelled, but no deadline is imposed by the stencil pipeline.
type Tracer interface {
	Trace(ctx context.Context, img image.Image) (*svgdoc.Document, error)
}

// Func adapts an ordinary function to the Tracer interface.
type Func func(ctx context.Context, img image.Image) (*svgdoc.Document, error)

// Trace calls f(ctx, img).
func (f Func) Trace(ctx context.Context, img image.Image) (*svgdoc.Document, error) {
	return f(ctx, img)
}
