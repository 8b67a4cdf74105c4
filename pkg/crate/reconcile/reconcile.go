// Package reconcile grows the crate envelope to a fixed point where every
// panel's cleat layout satisfies the spacing and clearance rules.
//
// A splice seam that lands too close to a panel's edge cleat cannot be
// fixed by moving cleats: the panel itself must widen. Widening one panel
// changes the envelope, which changes the other panels' dimensions, which
// can surface new seam conflicts. The engine therefore iterates full passes
// over the panels in a fixed order (front/back width, left/right length,
// top width, top length), applying quantized growth until a whole pass
// produces none.
//
// Termination: growth only ever increases an envelope axis, each increment
// is at least the configured quantum, and a panel has at most a handful of
// seams, so the fixed point lands within a few passes. Exceeding the pass
// cap means the rule constants are contradictory, which is an internal
// error, not an input error.
package reconcile

import (
	"github.com/charmbracelet/log"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/config"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/cleat"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/floorboard"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/sheet"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/skid"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

const (
	// maxPasses caps the reconciliation loop. Valid inputs converge in two
	// or three passes; the cap only trips on contradictory constants.
	maxPasses = 20

	eps = 1e-6
)

// Run computes the complete crate layout for validated parameters.
// It is a pure function of its inputs: running it twice yields identical
// results. logger may be nil.
func Run(p crate.Params, c config.Constants, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	class, err := skid.ClassFor(p.ProductWeight, p.AllowSmallSkids)
	if err != nil {
		return nil, err
	}
	if class.Height < p.GroundClearance {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"ground clearance %v exceeds the %s skid height %v for this weight class",
			p.GroundClearance, class.Callout, class.Height)
	}

	e := engine{
		params: p,
		consts: c,
		class:  class,
		logger: logger,
		stock:  sheet.Stock{Length: c.SheetLength, Width: c.SheetWidth},
		rules: cleat.Rules{
			MemberWidth:   p.CleatMemberWidth,
			MaxSpacing:    c.MaxCleatSpacing,
			EdgeClearance: c.EdgeClearance,
			Increment:     c.GrowthIncrement,
		},
	}
	return e.run()
}

// engine holds one run's working state. The envelope accumulator is owned
// exclusively here for the duration of the run.
type engine struct {
	params crate.Params
	consts config.Constants
	class  skid.Class
	logger *log.Logger
	stock  sheet.Stock
	rules  cleat.Rules

	env          crate.Envelope
	growthWidth  float64
	growthLength float64
}

// assembly is the material build-up of one panel: sheathing plus cleat.
func (e *engine) assembly() float64 {
	return e.params.SheathingThickness + e.params.CleatThickness
}

// panelHeight is the common height of the four wall panels: the envelope
// minus the skid the walls stand beside.
func (e *engine) panelHeight() float64 {
	return e.env.Height - e.class.Height
}

func (e *engine) run() (*Result, error) {
	p := e.params
	e.env = crate.Envelope{
		Width:  p.ProductWidth + 2*p.ClearanceSide + 2*e.assembly(),
		Length: p.ProductLength + 2*p.ClearanceSide + 2*e.assembly(),
		Height: p.ProductHeight + p.ClearanceAbove + p.FloorboardThickness + e.class.Height,
	}
	e.logger.Debug("initial envelope",
		"width", e.env.Width, "length", e.env.Length, "height", e.env.Height)

	passes := 0
	for {
		passes++
		if passes > maxPasses {
			return nil, errors.New(errors.ErrCodeInternal,
				"reconciliation did not converge in %d passes; spacing and clearance constants are contradictory", maxPasses)
		}
		grew, err := e.pass()
		if err != nil {
			return nil, err
		}
		if !grew {
			break
		}
	}
	e.logger.Debug("envelope reconciled",
		"passes", passes, "grown_width", e.growthWidth, "grown_length", e.growthLength)

	return e.assemble(passes)
}

// pass runs the panels once in the documented order and reports whether any
// envelope growth was applied. The order is load-bearing: a width change
// from the front/back step feeds into the top panel steps within the same
// pass rather than a pass later.
func (e *engine) pass() (bool, error) {
	grew := false

	steps := []struct {
		name  PanelName
		axis  crate.Axis
		dims  func() (w, h float64)
		seams func(t sheet.Tiling) []float64
	}{
		{
			// Front/back panels tile across the crate width.
			name: PanelFront,
			axis: crate.AxisWidth,
			dims: func() (float64, float64) { return e.env.Width, e.panelHeight() },
		},
		{
			// Side panels tile across the length between the end walls.
			name: PanelLeft,
			axis: crate.AxisLength,
			dims: func() (float64, float64) { return e.sidePanelWidth(), e.panelHeight() },
		},
		{
			// Top panel, width axis.
			name: PanelTop,
			axis: crate.AxisWidth,
			dims: func() (float64, float64) { return e.env.Width, e.env.Length },
		},
		{
			// Top panel, length axis: the same face viewed across its
			// other dimension, seams taken from the row boundaries.
			name: PanelTop,
			axis: crate.AxisLength,
			dims: func() (float64, float64) { return e.env.Width, e.env.Length },
			seams: func(t sheet.Tiling) []float64 {
				return t.HorizontalSplices()
			},
		},
	}

	for _, s := range steps {
		w, h := s.dims()
		t, err := sheet.Tile(w, h, e.stock, e.consts.MaxPanelDim)
		if err != nil {
			return false, err
		}

		splices := t.VerticalSplices()
		spanWidth := w
		if s.seams != nil {
			splices = s.seams(t)
			spanWidth = h
		}

		placement, err := cleat.PlaceVertical(spanWidth, splices, e.rules)
		if err != nil {
			return false, err
		}
		if placement.NeedExtra > 0 {
			e.grow(s.name, s.axis, placement.NeedExtra)
			grew = true
		}
	}
	return grew, nil
}

// sidePanelWidth is the side panels' horizontal extent: the crate length
// minus the two end-wall assemblies they butt against.
func (e *engine) sidePanelWidth() float64 {
	return e.env.Length - 2*e.assembly()
}

func (e *engine) grow(name PanelName, axis crate.Axis, extra float64) {
	e.env = e.env.Grown(axis, extra)
	switch axis {
	case crate.AxisWidth:
		e.growthWidth += extra
	case crate.AxisLength:
		e.growthLength += extra
	}
	e.logger.Debug("panel growth", "panel", name, "axis", axis, "extra", extra)
}

// assemble builds the final Result from the reconciled envelope. Every
// placement here must come back clean; a residual NeedExtra after the fixed
// point is an internal invariant violation.
func (e *engine) assemble(passes int) (*Result, error) {
	res := &Result{
		Params:       e.params,
		Envelope:     e.env,
		Passes:       passes,
		GrowthWidth:  e.growthWidth,
		GrowthLength: e.growthLength,
	}

	front, err := e.wallPanel(PanelFront, e.env.Width)
	if err != nil {
		return nil, err
	}
	back := front
	back.Name = PanelBack

	left, err := e.wallPanel(PanelLeft, e.sidePanelWidth())
	if err != nil {
		return nil, err
	}
	right := left
	right.Name = PanelRight

	top, err := e.topPanel()
	if err != nil {
		return nil, err
	}

	res.Panels = []PanelLayout{front, back, left, right, top}

	res.Skids = skid.Plan(e.env.Width, e.class)

	span := e.env.Length - 2*e.assembly()
	floor, err := floorboard.Plan(span, e.assembly(), e.params.LumberWidths,
		e.params.MinCustomWidth, e.params.MaxMiddleGap, e.params.ForceCustomBoard)
	if err != nil {
		return nil, err
	}
	res.Floor = floor

	for i := range res.Panels {
		if err := checkSpacing(&res.Panels[i], e.rules.MaxSpacing); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// wallPanel lays out one of the four vertical panels at its final size.
func (e *engine) wallPanel(name PanelName, width float64) (PanelLayout, error) {
	height := e.panelHeight()
	t, err := sheet.Tile(width, height, e.stock, e.consts.MaxPanelDim)
	if err != nil {
		return PanelLayout{}, err
	}
	placement, err := cleat.PlaceVertical(width, t.VerticalSplices(), e.rules)
	if err != nil {
		return PanelLayout{}, err
	}
	if placement.NeedExtra > 0 {
		return PanelLayout{}, errors.New(errors.ErrCodeInternal,
			"%s panel still needs %.3f width after reconciliation", name, placement.NeedExtra)
	}

	pl := PanelLayout{
		Name: name,
		Spec: crate.PanelSpec{
			Width:              width,
			Height:             height,
			SheathingThickness: e.params.SheathingThickness,
			CleatThickness:     e.params.CleatThickness,
			CleatMemberWidth:   e.params.CleatMemberWidth,
		},
		Sheets:          t.Sheets,
		Verticals:       e.verticalCleats(placement, height),
		Symmetric:       placement.Symmetric,
		EdgeCleatCount:  4,
		EdgeCleatLength: height,
		EdgeCapLength:   width - 2*e.params.CleatMemberWidth,
	}

	if splices := t.HorizontalSplices(); len(splices) > 0 {
		// Wall panels reinforce their lowest seam with short sections that
		// dodge the vertical cleats.
		pl.SpliceY = splices[0]
		sections, err := cleat.SectionHorizontal(pl.Verticals,
			e.params.CleatMemberWidth, e.consts.MinSectionWidth)
		if err != nil {
			return PanelLayout{}, err
		}
		pl.Sections = sections
	}
	return pl, nil
}

// topPanel lays out the cap. Unlike the walls it is cleated on both axes:
// column seams get cleats running the crate length, row seams get cleats
// running the crate width.
func (e *engine) topPanel() (PanelLayout, error) {
	w, l := e.env.Width, e.env.Length
	t, err := sheet.Tile(w, l, e.stock, e.consts.MaxPanelDim)
	if err != nil {
		return PanelLayout{}, err
	}

	across, err := cleat.PlaceVertical(w, t.VerticalSplices(), e.rules)
	if err != nil {
		return PanelLayout{}, err
	}
	along, err := cleat.PlaceVertical(l, t.HorizontalSplices(), e.rules)
	if err != nil {
		return PanelLayout{}, err
	}
	if across.NeedExtra > 0 || along.NeedExtra > 0 {
		return PanelLayout{}, errors.New(errors.ErrCodeInternal,
			"top panel still needs growth after reconciliation (width %.3f, length %.3f)",
			across.NeedExtra, along.NeedExtra)
	}

	mw := e.params.CleatMemberWidth
	horizontals := make([]crate.Cleat, 0, len(along.Intermediate))
	for _, c := range along.Intermediate {
		horizontals = append(horizontals, crate.Cleat{
			Centerline:  c,
			LeftEdge:    c - mw/2,
			Length:      w - 2*mw,
			Orientation: crate.Horizontal,
		})
	}

	return PanelLayout{
		Name: PanelTop,
		Spec: crate.PanelSpec{
			Width:              w,
			Height:             l,
			SheathingThickness: e.params.SheathingThickness,
			CleatThickness:     e.params.CleatThickness,
			CleatMemberWidth:   mw,
		},
		Sheets:          t.Sheets,
		Verticals:       e.verticalCleats(across, l),
		Symmetric:       across.Symmetric && along.Symmetric,
		Horizontals:     horizontals,
		EdgeCleatCount:  4,
		EdgeCleatLength: l,
		EdgeCapLength:   w - 2*mw,
	}, nil
}

// verticalCleats materializes a placement into cleat records of the given
// length, edges included, sorted by centerline.
func (e *engine) verticalCleats(p cleat.Placement, length float64) []crate.Cleat {
	mw := e.params.CleatMemberWidth
	centers := p.Centerlines()
	cleats := make([]crate.Cleat, 0, len(centers))
	for _, c := range centers {
		cleats = append(cleats, crate.Cleat{
			Centerline:  c,
			LeftEdge:    c - mw/2,
			Length:      length,
			Orientation: crate.Vertical,
		})
	}
	return cleats
}

// checkSpacing is the engine's exit invariant: every adjacent centerline
// gap on every panel stays within the spacing rule.
func checkSpacing(pl *PanelLayout, maxSpacing float64) error {
	for i := 1; i < len(pl.Verticals); i++ {
		gap := pl.Verticals[i].Centerline - pl.Verticals[i-1].Centerline
		if gap > maxSpacing+eps {
			return errors.New(errors.ErrCodeInternal,
				"%s panel cleat gap %.3f exceeds the %.1f spacing rule", pl.Name, gap, maxSpacing)
		}
	}
	return nil
}
