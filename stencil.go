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

// Package stencil turns photos into vector outlines which can be cut
// from a sheet of material.
//
// A conversion runs through a fixed sequence of stages.  The uploaded image
// is cropped to its visible content and scaled (package bitmap), traced
// into vector paths (package trace), classified for printability, rewritten
// according to a print type [Policy], and finally centred on the canvas.
// The result is a [svgdoc.Document], ready to be written as SVG.
//
// Three print types are supported:
//
//   - [Solid] keeps only the outer outline of the shape, filled.
//   - [Text] keeps the traced paths as they are.
//   - [Custom] either marks problematic paths with a flag colour, or joins
//     their islands to the surrounding material using [Bridge].
package stencil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"log/slog"

	"github.com/google/uuid"

	"seehuhn.de/go/stencil/bitmap"
	"seehuhn.de/go/stencil/svgdoc"
	"seehuhn.de/go/stencil/trace"
)

// Converter holds the settings for image conversions.
// The zero value is ready to use.  A Converter can be used concurrently,
// provided its Tracer can.
type Converter struct {
	// Tracer turns the normalized bitmap into paths.
	// Nil selects a potrace tracer with default settings.
	Tracer trace.Tracer

	// MaxDimension is the length, in pixels, of the longer side of the
	// normalized bitmap.  Zero selects bitmap.DefaultMaxDimension.
	MaxDimension int

	// DefaultFill is the fill colour of the outline under the Solid print
	// type.  The empty string selects DefaultFill.
	DefaultFill string

	// FlagFill is the fill colour for problematic paths under
	// Custom{Repair: RepairFlag}.  The empty string selects FlagFill.
	FlagFill string

	// Logger receives progress information.  Nil selects the package
	// logger, see SetLogger.
	Logger *slog.Logger
}

// Convert converts an encoded image to a printable vector document, using
// the potrace tracer.  If maxDimension is zero, the default size is used.
func Convert(ctx context.Context, imageBytes []byte, p Policy, maxDimension int) (*svgdoc.Document, error) {
	c := &Converter{MaxDimension: maxDimension}
	return c.Convert(ctx, imageBytes, p)
}

// Convert decodes an image and converts it to a printable vector document.
// Supported image formats are PNG, JPEG, GIF, BMP, TIFF and WebP.
func (c *Converter) Convert(ctx context.Context, imageBytes []byte, p Policy) (*svgdoc.Document, error) {
	log := c.requestLogger()

	img, format, err := bitmap.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	log.Debug("decoded", "format", format, "size", img.Bounds().Size())

	return c.convert(ctx, img, p, log)
}

// ConvertImage converts a decoded image to a printable vector document.
func (c *Converter) ConvertImage(ctx context.Context, img image.Image, p Policy) (*svgdoc.Document, error) {
	return c.convert(ctx, img, p, c.requestLogger())
}

func (c *Converter) convert(ctx context.Context, img image.Image, p Policy, log *slog.Logger) (*svgdoc.Document, error) {
	maxDim := c.MaxDimension
	if maxDim <= 0 {
		maxDim = bitmap.DefaultMaxDimension
	}
	norm, err := bitmap.Normalize(img, maxDim)
	if err != nil {
		return nil, err
	}
	log.Debug("normalized", "size", norm.Bounds().Size())

	tracer := c.Tracer
	if tracer == nil {
		tracer = &trace.Potrace{}
	}
	doc, err := tracer.Trace(ctx, norm)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrTraceFailure, err)
	}
	if doc == nil || len(doc.Paths) == 0 {
		return nil, fmt.Errorf("%w: no paths", ErrTraceFailure)
	}
	log.Debug("traced", "paths", len(doc.Paths))

	if _, err := c.finish(doc, p, log); err != nil {
		return nil, err
	}
	return doc, nil
}

// Refine applies the print type policy and centring to an existing
// document, for example to an uploaded SVG file.  The document is modified
// in place.
//
// Transforms of the input paths are first applied to the path data, since
// centring replaces the transforms.
func (c *Converter) Refine(doc *svgdoc.Document, p Policy) (*Report, error) {
	log := c.requestLogger()
	for i, path := range doc.Paths {
		if err := path.Bake(); err != nil {
			log.Warn("cannot apply transform", "index", i, "error", err)
		}
	}
	return c.finish(doc, p, log)
}

func (c *Converter) finish(doc *svgdoc.Document, p Policy, log *slog.Logger) (*Report, error) {
	rep, err := c.apply(doc, p, log)
	if err != nil {
		return nil, err
	}
	if p != nil {
		log.Debug("policy applied", "type", p.String(), "paths", len(doc.Paths))
	}

	if offset, ok := Center(doc); ok {
		log.Debug("centred", "dx", offset.X, "dy", offset.Y)
	}
	return rep, nil
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger()
}

func (c *Converter) requestLogger() *slog.Logger {
	return c.logger().With("request", uuid.NewString())
}
