package crate

import (
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// Params is the full input record for one crate computation: product
// dimensions, clearances, and material constants. All fields are inches
// except Weight (pounds). A Params value is read-only once validated; each
// engine run is a pure function of it.
type Params struct {
	ProductLength float64 `json:"product_length" toml:"product_length"`
	ProductWidth  float64 `json:"product_width" toml:"product_width"`
	ProductHeight float64 `json:"product_height" toml:"product_height"`
	ProductWeight float64 `json:"product_weight" toml:"product_weight"`

	ClearanceSide   float64 `json:"clearance_side" toml:"clearance_side"`
	ClearanceAbove  float64 `json:"clearance_above" toml:"clearance_above"`
	GroundClearance float64 `json:"ground_clearance" toml:"ground_clearance"`

	SheathingThickness  float64 `json:"sheathing_thickness" toml:"sheathing_thickness"`
	CleatThickness      float64 `json:"cleat_thickness" toml:"cleat_thickness"`
	CleatMemberWidth    float64 `json:"cleat_member_width" toml:"cleat_member_width"`
	FloorboardThickness float64 `json:"floorboard_thickness" toml:"floorboard_thickness"`

	// Floorboard selection. LumberWidths is ordered by caller preference but
	// the layout algorithm consumes it largest-first regardless.
	LumberWidths     []float64 `json:"lumber_widths" toml:"lumber_widths"`
	MinCustomWidth   float64   `json:"min_custom_width" toml:"min_custom_width"`
	ForceCustomBoard bool      `json:"force_custom_board" toml:"force_custom_board"`
	MaxMiddleGap     float64   `json:"max_middle_gap" toml:"max_middle_gap"`

	// AllowSmallSkids permits the 3x4 skid class for light loads; some
	// freight rules disallow it regardless of weight.
	AllowSmallSkids bool `json:"allow_small_skids" toml:"allow_small_skids"`
}

// Validate checks every Params field before any layout computation runs.
// It returns an INVALID_INPUT error describing the first problem found;
// nothing partial is ever computed from invalid inputs.
func (p *Params) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"product_length", p.ProductLength},
		{"product_width", p.ProductWidth},
		{"product_height", p.ProductHeight},
		{"product_weight", p.ProductWeight},
		{"sheathing_thickness", p.SheathingThickness},
		{"cleat_thickness", p.CleatThickness},
		{"cleat_member_width", p.CleatMemberWidth},
		{"floorboard_thickness", p.FloorboardThickness},
	}
	for _, f := range positives {
		if f.value <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be positive, got %v", f.name, f.value)
		}
	}

	nonNegatives := []struct {
		name  string
		value float64
	}{
		{"clearance_side", p.ClearanceSide},
		{"clearance_above", p.ClearanceAbove},
		{"ground_clearance", p.GroundClearance},
		{"max_middle_gap", p.MaxMiddleGap},
	}
	for _, f := range nonNegatives {
		if f.value < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must not be negative, got %v", f.name, f.value)
		}
	}

	if len(p.LumberWidths) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "lumber_widths must not be empty")
	}
	for _, w := range p.LumberWidths {
		if w <= 0 {
			return errors.New(errors.ErrCodeInvalidInput, "lumber_widths entries must be positive, got %v", w)
		}
	}

	if p.MinCustomWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "min_custom_width must not be negative, got %v", p.MinCustomWidth)
	}
	if p.ForceCustomBoard && p.MinCustomWidth <= 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"force_custom_board requires a positive min_custom_width")
	}

	return nil
}
