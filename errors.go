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
	"fmt"

	"seehuhn.de/go/stencil/bitmap"
)

// Conversion errors.  All errors returned by this package can be matched
// against these values using errors.Is, or against *MalformedPathError
// using errors.As.
var (
	// ErrEmptyImage indicates that the uploaded image has no visible
	// content.  The upload must be rejected.
	ErrEmptyImage = bitmap.ErrEmptyImage

	// ErrTraceFailure indicates that the tracer failed or returned no
	// paths.
	ErrTraceFailure = errors.New("tracing failed")

	// ErrInsufficientCrossings is returned by Bridge when the scan line
	// meets the path in fewer than two points.  The pipeline recovers from
	// this by leaving the path unbridged.
	ErrInsufficientCrossings = errors.New("scan line has fewer than two crossings")
)

// MalformedPathError is returned when the data of a path cannot be parsed.
type MalformedPathError struct {
	Index int   // position of the path in the document
	Err   error // usually a *svgdoc.SyntaxError
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("path %d: %v", e.Index, e.Err)
}

func (e *MalformedPathError) Unwrap() error {
	return e.Err
}
