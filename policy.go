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
	"log/slog"
	"strings"

	"seehuhn.de/go/stencil/svgdoc"
)

// Fill colours used when the converter does not set its own.
const (
	DefaultFill = "black"
	FlagFill    = "#00004d"
)

// Apply classifies the paths of doc and then rewrites doc in place
// according to the policy.  A nil policy is treated as Solid.
//
// Solid keeps only the outline.  An outline with several closures is cut
// after its first closure and an outline without closure gets a final
// " Z", so that the result always has exactly one closure.  An outline
// with one closure keeps its path data unchanged.
//
// The returned report describes the document before the policy was
// applied.  The Problematic field of every path is set from the report;
// paths which are successfully bridged are no longer problematic.
func (c *Converter) Apply(doc *svgdoc.Document, p Policy) (*Report, error) {
	return c.apply(doc, p, c.logger())
}

func (c *Converter) apply(doc *svgdoc.Document, p Policy, log *slog.Logger) (*Report, error) {
	if len(doc.Paths) == 0 {
		return nil, fmt.Errorf("%w: document has no paths", ErrTraceFailure)
	}
	if p == nil {
		p = Solid{}
	}

	rep := Classify(doc)
	for i, pr := range rep.Paths {
		doc.Paths[i].Problematic = pr.Problematic
		if pr.Err != nil {
			log.Warn("malformed path", "index", i, "error", pr.Err)
		}
	}
	log.Debug("classified",
		"paths", len(doc.Paths),
		"problematic", len(rep.Problematic()),
		"outline", rep.Outline,
		"decisive", rep.Decisive)

	var err error
	switch p := p.(type) {
	case Solid:
		err = c.applySolid(doc, rep)
	case Text:
		// The document is printed as traced.
	case Custom:
		switch p.Repair {
		case RepairFlag:
			c.applyFlag(doc, rep)
		case RepairBridge:
			c.applyBridge(doc, rep, log)
		default:
			err = fmt.Errorf("unknown repair mode %d", int(p.Repair))
		}
	default:
		err = fmt.Errorf("unknown print type %q", p)
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// applySolid keeps only the outline path, reduced to its first closed
// sub-contour and filled.
func (c *Converter) applySolid(doc *svgdoc.Document, rep *Report) error {
	pr := rep.Paths[rep.Outline]
	if pr.Err != nil {
		return pr.Err
	}
	outline := doc.Paths[rep.Outline]

	switch {
	case pr.Closures > 1:
		end := strings.IndexAny(outline.D, "Zz")
		outline.D = outline.D[:end+1]
		outline.Problematic = false
	case pr.Closures == 0:
		outline.D = strings.TrimSpace(outline.D) + " Z"
	}
	outline.Fill = c.fill()

	doc.Paths = []*svgdoc.Path{outline}
	return nil
}

// applyFlag gives every problematic path the flag colour.
func (c *Converter) applyFlag(doc *svgdoc.Document, rep *Report) {
	for i, pr := range rep.Paths {
		if pr.Problematic && pr.Err == nil {
			doc.Paths[i].Fill = c.flagFill()
		}
	}
}

// applyBridge bridges every problematic path.  Paths which cannot be
// bridged are left unchanged and stay problematic.
func (c *Converter) applyBridge(doc *svgdoc.Document, rep *Report, log *slog.Logger) {
	for i, pr := range rep.Paths {
		if !pr.Problematic || pr.Err != nil {
			continue
		}
		p := doc.Paths[i]
		err := Bridge(p)
		switch {
		case err == nil:
			p.Problematic = false
			log.Debug("bridged", "index", i, "closures", pr.Closures)
		case errors.Is(err, ErrInsufficientCrossings):
			log.Warn("path not bridged", "index", i, "error", err)
		default:
			log.Warn("path not bridged", "index", i,
				"error", &MalformedPathError{Index: i, Err: err})
		}
	}
}

func (c *Converter) fill() string {
	if c.DefaultFill != "" {
		return c.DefaultFill
	}
	return DefaultFill
}

func (c *Converter) flagFill() string {
	if c.FlagFill != "" {
		return c.FlagFill
	}
	return FlagFill
}
