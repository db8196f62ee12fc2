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

// Package config loads the settings of the stencil command from a TOML
// file.
package config

import (
	"fmt"
	"os"

	"github.com/dennwc/gotrace"
	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/stencil"
	"seehuhn.de/go/stencil/bitmap"
	"seehuhn.de/go/stencil/trace"
)

// Config holds the conversion settings.
type Config struct {
	MaxDimension int    `toml:"max_dimension"`
	PrintType    string `toml:"print_type"`
	CustomRepair string `toml:"custom_repair"`
	DefaultFill  string `toml:"default_fill"`
	FlagFill     string `toml:"flag_fill"`

	Trace   Trace   `toml:"trace"`
	Preview Preview `toml:"preview"`
}

// Trace holds the tracer settings.
type Trace struct {
	Threshold    int     `toml:"threshold"`
	TurdSize     int     `toml:"turd_size"`
	AlphaMax     float64 `toml:"alpha_max"`
	OptTolerance float64 `toml:"opt_tolerance"`
}

// Preview holds the settings for PNG previews.
type Preview struct {
	Scale float64 `toml:"scale"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		MaxDimension: bitmap.DefaultMaxDimension,
		PrintType:    "solid",
		CustomRepair: "bridge",
		DefaultFill:  stencil.DefaultFill,
		FlagFill:     stencil.FlagFill,
		Trace: Trace{
			Threshold:    trace.DefaultThreshold,
			TurdSize:     gotrace.Defaults.TurdSize,
			AlphaMax:     gotrace.Defaults.AlphaMax,
			OptTolerance: gotrace.Defaults.OptTolerance,
		},
		Preview: Preview{Scale: 1},
	}
}

// Load reads a configuration file.  Settings missing from the file keep
// their default values.  If the file does not exist, the defaults are
// returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	} else if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	switch {
	case c.MaxDimension < 0:
		return fmt.Errorf("invalid max_dimension %d", c.MaxDimension)
	case c.Trace.Threshold < 0 || c.Trace.Threshold > 255:
		return fmt.Errorf("invalid trace.threshold %d", c.Trace.Threshold)
	case c.Trace.TurdSize < 0:
		return fmt.Errorf("invalid trace.turd_size %d", c.Trace.TurdSize)
	case c.Preview.Scale < 0:
		return fmt.Errorf("invalid preview.scale %g", c.Preview.Scale)
	}
	return nil
}

// Policy returns the print type selected by the configuration.
func (c *Config) Policy() stencil.Policy {
	return stencil.ParsePrintType(c.PrintType, stencil.ParseRepair(c.CustomRepair))
}

// Converter returns a converter with the configured settings.
func (c *Config) Converter() *stencil.Converter {
	params := gotrace.Defaults
	params.TurdSize = c.Trace.TurdSize
	if c.Trace.AlphaMax > 0 {
		params.AlphaMax = c.Trace.AlphaMax
	}
	if c.Trace.OptTolerance > 0 {
		params.OptTolerance = c.Trace.OptTolerance
	}

	return &stencil.Converter{
		Tracer: &trace.Potrace{
			Threshold: uint8(c.Trace.Threshold),
			Params:    &params,
		},
		MaxDimension: c.MaxDimension,
		DefaultFill:  c.DefaultFill,
		FlagFill:     c.FlagFill,
	}
}
