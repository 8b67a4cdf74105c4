// Package config holds the engineering constants the layout algorithms are
// parameterized on, with optional overrides from a TOML file.
//
// The compiled-in defaults match the standard crate template (24" cleat
// spacing, 96x48 plywood, quarter-inch growth increments). A site that cuts
// different stock or works to a stricter spacing rule drops an
// autocrate.toml next to its runs:
//
//	max_cleat_spacing = 20.0
//	sheet_length = 120.0
//	lumber_widths = [11.25, 9.25, 7.25]
//
// Only the keys present in the file override the defaults.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// Constants are the tunable rule values for one engine run. Zero values are
// never valid; use Default or Load to obtain a populated set.
type Constants struct {
	// MaxCleatSpacing is the maximum allowed centerline-to-centerline gap
	// between adjacent cleats on any panel.
	MaxCleatSpacing float64 `toml:"max_cleat_spacing"`

	// GrowthIncrement quantizes reconciliation growth: any additional
	// material requirement is rounded up to a multiple of this.
	GrowthIncrement float64 `toml:"growth_increment"`

	// EdgeClearance is the minimum clear distance between a splice cleat's
	// facing edge and an edge cleat's facing edge.
	EdgeClearance float64 `toml:"edge_clearance"`

	// Sheet stock dimensions (long axis x short axis).
	SheetLength float64 `toml:"sheet_length"`
	SheetWidth  float64 `toml:"sheet_width"`

	// MinSectionWidth drops horizontal splice-cleat sections narrower than
	// this rather than emitting sliver components.
	MinSectionWidth float64 `toml:"min_section_width"`

	// MaxPanelDim rejects panels larger than any crate this template is
	// rated for; it bounds the tiling and placement loops.
	MaxPanelDim float64 `toml:"max_panel_dim"`

	// LumberWidths is the default floorboard catalog (actual widths of
	// nominal 2x12 down to 2x4), used when the caller supplies none.
	LumberWidths []float64 `toml:"lumber_widths"`
}

// Default returns the compiled-in constants for the standard crate template.
func Default() Constants {
	return Constants{
		MaxCleatSpacing: 24.0,
		GrowthIncrement: 0.25,
		EdgeClearance:   0.5,
		SheetLength:     96.0,
		SheetWidth:      48.0,
		MinSectionWidth: 0.25,
		MaxPanelDim:     500.0,
		LumberWidths:    []float64{11.25, 9.25, 7.25, 5.5, 3.5, 2.5, 1.5},
	}
}

// Load reads TOML overrides from path and merges them over the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func Load(path string) (Constants, error) {
	c := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Constants{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if err := c.Validate(); err != nil {
		return Constants{}, err
	}
	return c, nil
}

// Validate rejects constant sets that would make the layout rules
// contradictory (and reconciliation non-convergent).
func (c Constants) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"max_cleat_spacing", c.MaxCleatSpacing},
		{"growth_increment", c.GrowthIncrement},
		{"sheet_length", c.SheetLength},
		{"sheet_width", c.SheetWidth},
		{"min_section_width", c.MinSectionWidth},
		{"max_panel_dim", c.MaxPanelDim},
	}
	for _, f := range positives {
		if f.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", f.name, f.value)
		}
	}
	if c.EdgeClearance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "edge_clearance must not be negative, got %v", c.EdgeClearance)
	}
	if c.MaxCleatSpacing <= c.EdgeClearance {
		return errors.New(errors.ErrCodeInvalidConfig,
			"max_cleat_spacing (%v) must exceed edge_clearance (%v)", c.MaxCleatSpacing, c.EdgeClearance)
	}
	for _, w := range c.LumberWidths {
		if w <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "lumber_widths entries must be positive, got %v", w)
		}
	}
	return nil
}
