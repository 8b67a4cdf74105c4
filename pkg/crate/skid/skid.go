// Package skid sizes and spaces the runners the crate rests on.
//
// The lumber class comes from a fixed weight-band table: heavier products
// get larger cross-sections and, within some bands, tighter spacing rules.
// Skids always come in pairs at minimum, one under each crate edge.
package skid

import (
	"math"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// MaxWeight is the heaviest product the skid table is rated for, in pounds.
const MaxWeight = 60000.0

// Class is one weight-banded skid lumber selection. Width and Height are
// the actual (not nominal) cross-section dimensions.
type Class struct {
	Callout    string
	Width      float64
	Height     float64
	MaxSpacing float64
}

// ClassFor selects the skid lumber class for a product weight.
//
// The bands are non-overlapping; the 4x6 band varies its allowed spacing by
// weight sub-range. The 3x4 class is only offered when allowSmall is set
// (some freight rules require 4x4 minimum regardless of weight); otherwise
// light loads fall through to 4x4.
func ClassFor(weight float64, allowSmall bool) (Class, error) {
	switch {
	case weight <= 0:
		return Class{}, errors.New(errors.ErrCodeInvalidInput,
			"product weight must be positive, got %v", weight)
	case weight <= 500 && allowSmall:
		return Class{Callout: "3x4", Width: 2.5, Height: 3.5, MaxSpacing: 30}, nil
	case weight <= 4500:
		return Class{Callout: "4x4", Width: 3.5, Height: 3.5, MaxSpacing: 30}, nil
	case weight <= 20000:
		c := Class{Callout: "4x6", Width: 3.5, Height: 5.5}
		switch {
		case weight <= 6000:
			c.MaxSpacing = 41
		case weight <= 12000:
			c.MaxSpacing = 28
		default:
			c.MaxSpacing = 24
		}
		return c, nil
	case weight <= 40000:
		return Class{Callout: "6x6", Width: 5.5, Height: 5.5, MaxSpacing: 24}, nil
	case weight <= MaxWeight:
		return Class{Callout: "8x8", Width: 7.25, Height: 7.25, MaxSpacing: 24}, nil
	default:
		return Class{}, errors.New(errors.ErrCodeUnsupportedWeight,
			"product weight %v exceeds the %v skid table limit", weight, MaxWeight)
	}
}

// Plan spaces skids of the given class across the crate width.
//
// Count is the fewest skids whose pitch stays within the class spacing rule,
// never fewer than two. Skids are centered about the crate's centerline:
// the first skid's centerline sits half a skid width in from the crate edge,
// which in the centered frame is -(crateWidth-skidWidth)/2.
func Plan(crateWidth float64, c Class) crate.SkidLayout {
	span := crateWidth - c.Width
	count := 2
	if span > 0 {
		if n := int(math.Ceil(span/c.MaxSpacing-1e-9)) + 1; n > count {
			count = n
		}
	}
	pitch := 0.0
	if count > 1 {
		pitch = span / float64(count-1)
	}
	return crate.SkidLayout{
		Callout:    c.Callout,
		Width:      c.Width,
		Height:     c.Height,
		Count:      count,
		Pitch:      pitch,
		FirstX:     -span / 2,
		MaxSpacing: c.MaxSpacing,
	}
}
