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
	"strings"
)

// Policy selects how a traced document is turned into a printable one.
// The only implementations are Solid, Text and Custom.
type Policy interface {
	isPolicy()
	String() string
}

// Solid keeps only the outline of the traced shape and fills it.
// All inner detail is discarded.
type Solid struct{}

func (Solid) isPolicy() {}

func (Solid) String() string { return "solid" }

// Text passes the traced document through unchanged.  Text stencils are
// assumed to be printable as they are.
type Text struct{}

func (Text) isPolicy() {}

func (Text) String() string { return "text" }

// Custom keeps all paths and deals with paths which are likely not
// printable, as selected by Repair.
type Custom struct {
	Repair Repair
}

func (Custom) isPolicy() {}

func (c Custom) String() string { return "custom/" + c.Repair.String() }

// Repair selects what the Custom policy does with problematic paths.
type Repair int

const (
	// RepairBridge inserts bridges, so that islands of material stay
	// connected to the rest of the stencil.
	RepairBridge Repair = iota

	// RepairFlag marks problematic paths with the flag fill colour, for a
	// human to fix.
	RepairFlag
)

func (r Repair) String() string {
	switch r {
	case RepairBridge:
		return "bridge"
	case RepairFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// ParseRepair converts "bridge" or "flag" to a Repair value.
// All other strings select RepairBridge.
func ParseRepair(s string) Repair {
	if strings.EqualFold(strings.TrimSpace(s), "flag") {
		return RepairFlag
	}
	return RepairBridge
}

// ParsePrintType converts the print type names "solid", "text" and "custom"
// into a policy.  Unknown names, including the empty string, select Solid.
// The repair mode is only used for "custom".
func ParsePrintType(name string, repair Repair) Policy {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text":
		return Text{}
	case "custom":
		return Custom{Repair: repair}
	default:
		return Solid{}
	}
}
