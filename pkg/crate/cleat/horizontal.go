package cleat

import (
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// Section is one short horizontal cleat segment reinforcing a horizontal
// plywood seam. X is the segment's left end along the panel width; the
// segment's vertical position is the splice line it backs.
type Section struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// SectionHorizontal returns the horizontal cleat segments for one splice
// line: one segment per gap between adjacent vertical cleats, edge cleats
// included, spanning the clear distance between the two cleats' facing
// edges.
//
// verticals must be the panel's final vertical cleats sorted by centerline.
// A negative edge-to-edge span (stale left edges after envelope growth) is
// recomputed from centerline distance minus the member width, anchored at
// the left cleat's right edge. Spans below minWidth are dropped. More than
// the fixed section instance count is a hard error, not a silent truncation.
func SectionHorizontal(verticals []crate.Cleat, memberWidth, minWidth float64) ([]Section, error) {
	if len(verticals) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"need at least the two edge cleats, got %d", len(verticals))
	}

	sections := make([]Section, 0, len(verticals)-1)
	for i := 1; i < len(verticals); i++ {
		left, right := verticals[i-1], verticals[i]

		x := left.LeftEdge + memberWidth
		span := right.LeftEdge - x
		if span < 0 {
			x = left.Centerline + memberWidth/2
			span = right.Centerline - left.Centerline - memberWidth
		}
		if span < minWidth {
			continue
		}
		sections = append(sections, Section{X: x, Width: span})
	}

	if len(sections) > crate.MaxHorizontalSections {
		return nil, errors.New(errors.ErrCodeCapacityExceeded,
			"splice needs %d horizontal sections, max is %d",
			len(sections), crate.MaxHorizontalSections)
	}
	return sections, nil
}
