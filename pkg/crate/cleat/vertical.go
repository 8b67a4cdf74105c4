// Package cleat places structural battens on a panel face.
//
// Vertical cleats run the panel height: two mandatory edge cleats bound the
// panel, every plywood splice gets a cleat centered on the seam, and any
// remaining gap wider than the spacing rule is filled with evenly spaced
// intermediates. Horizontal splice-cleat sections are the short segments
// between adjacent vertical cleats that reinforce a horizontal seam.
//
// Placement never throws on an unsatisfiable splice-to-edge clearance;
// it reports the extra panel width that would resolve it and leaves the
// growth decision to the reconciliation engine.
package cleat

import (
	"math"
	"sort"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

const eps = 1e-6

// Rules are the spacing constraints vertical placement works to.
type Rules struct {
	MemberWidth   float64 // cleat lumber face width
	MaxSpacing    float64 // max centerline-to-centerline gap
	EdgeClearance float64 // min clear gap between facing cleat edges
	Increment     float64 // growth quantum for NeedExtra
}

// minCenterDistance is the closest two cleat centerlines may sit: the two
// facing edges just clear each other by EdgeClearance.
func (r Rules) minCenterDistance() float64 {
	return r.MemberWidth + r.EdgeClearance
}

// Placement is the vertical cleat solution for one panel.
type Placement struct {
	// EdgeLeft and EdgeRight are the mandatory edge cleat centerlines,
	// at half a member width inside each panel edge.
	EdgeLeft  float64
	EdgeRight float64

	// Intermediate holds the sorted interior centerlines: splice cleats
	// plus any synthetic fill cleats. Empty when the panel is narrow
	// enough that the edge cleats alone satisfy the spacing rule.
	Intermediate []float64

	// Symmetric reports that the panel had no splices and the interior
	// cleats were distributed at uniform intervals for bilateral symmetry.
	Symmetric bool

	// NeedExtra is the additional panel width, rounded up to the rules'
	// increment, required before a splice cleat can clear the edge cleats.
	// Zero means the placement is complete and valid; non-zero means
	// Intermediate is empty and the panel must grow.
	NeedExtra float64
}

// Centerlines returns every cleat centerline, edges included, sorted.
func (p Placement) Centerlines() []float64 {
	all := make([]float64, 0, len(p.Intermediate)+2)
	all = append(all, p.EdgeLeft)
	all = append(all, p.Intermediate...)
	all = append(all, p.EdgeRight)
	return all
}

// MaxGap returns the widest centerline-to-centerline gap in the placement.
func (p Placement) MaxGap() float64 {
	all := p.Centerlines()
	var maxGap float64
	for i := 1; i < len(all); i++ {
		if gap := all[i] - all[i-1]; gap > maxGap {
			maxGap = gap
		}
	}
	return maxGap
}

// PlaceVertical computes the vertical cleat centerlines for a panel.
//
// Splice positions become cleat candidates unless one sits too close to an
// edge cleat, in which case the returned Placement carries NeedExtra instead
// of centerlines. With no splices at all the interior cleats are distributed
// symmetrically; with splices, gaps over the spacing rule are filled greedily
// with evenly spaced intermediates.
func PlaceVertical(panelWidth float64, splices []float64, r Rules) (Placement, error) {
	if panelWidth <= r.MemberWidth {
		return Placement{}, errors.New(errors.ErrCodeInvalidInput,
			"panel width %.3f cannot fit two %.3f edge cleats", panelWidth, r.MemberWidth)
	}

	p := Placement{
		EdgeLeft:  r.MemberWidth / 2,
		EdgeRight: panelWidth - r.MemberWidth/2,
	}

	if extra := spliceClearanceShortfall(p, splices, r); extra > 0 {
		p.NeedExtra = extra
		return p, nil
	}

	if len(splices) == 0 {
		p.Intermediate = symmetricFill(p.EdgeLeft, p.EdgeRight, r.MaxSpacing)
		p.Symmetric = true
	} else {
		interior, err := spliceFill(p, splices, r)
		if err != nil {
			return Placement{}, err
		}
		p.Intermediate = interior
	}

	if len(p.Intermediate) > crate.MaxIntermediateVerticals {
		return Placement{}, errors.New(errors.ErrCodeCapacityExceeded,
			"panel needs %d intermediate cleats, max is %d",
			len(p.Intermediate), crate.MaxIntermediateVerticals)
	}
	return p, nil
}

// spliceClearanceShortfall returns the rounded-up extra width needed before
// every splice clears both edge cleats, or 0 when all splices clear already.
// Growth moves the right edge cleat outward while splice seams stay put, so
// one increment request can resolve several near-edge seams at once.
func spliceClearanceShortfall(p Placement, splices []float64, r Rules) float64 {
	minDist := r.minCenterDistance()
	var worst float64
	for _, s := range splices {
		if d := s - p.EdgeLeft; d < minDist-eps && minDist-d > worst {
			worst = minDist - d
		}
		if d := p.EdgeRight - s; d < minDist-eps && minDist-d > worst {
			worst = minDist - d
		}
	}
	if worst <= 0 {
		return 0
	}
	return roundUp(worst, r.Increment)
}

// symmetricFill distributes interior cleats at exactly uniform centerline
// intervals between the edge cleats, using the minimum count whose spacing
// satisfies the rule. Uniform intervals keep the panel bilaterally
// symmetric rather than packing cleats left to right.
func symmetricFill(left, right, maxSpacing float64) []float64 {
	span := right - left
	if span <= maxSpacing+eps {
		return nil
	}
	segments := int(math.Ceil(span/maxSpacing - eps))
	step := span / float64(segments)
	interior := make([]float64, 0, segments-1)
	for i := 1; i < segments; i++ {
		interior = append(interior, left+float64(i)*step)
	}
	return interior
}

// spliceFill accepts the splice cleats and then fills any remaining
// over-wide gap with evenly spaced synthetic cleats.
func spliceFill(p Placement, splices []float64, r Rules) ([]float64, error) {
	accepted := append([]float64(nil), splices...)
	sort.Float64s(accepted)

	anchors := make([]float64, 0, len(accepted)+2)
	anchors = append(anchors, p.EdgeLeft)
	anchors = append(anchors, accepted...)
	anchors = append(anchors, p.EdgeRight)

	interior := append([]float64(nil), accepted...)
	for i := 1; i < len(anchors); i++ {
		gap := anchors[i] - anchors[i-1]
		if gap <= r.MaxSpacing+eps {
			continue
		}
		segments := int(math.Ceil(gap/r.MaxSpacing - eps))
		step := gap / float64(segments)
		if step < r.minCenterDistance() {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"fill spacing %.3f collides with %.3f member width; spacing rule and cleat size are contradictory",
				step, r.MemberWidth)
		}
		for s := 1; s < segments; s++ {
			interior = append(interior, anchors[i-1]+float64(s)*step)
		}
	}
	sort.Float64s(interior)
	return interior, nil
}

// roundUp quantizes v upward to a multiple of step.
func roundUp(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Ceil(v/step-eps) * step
}
