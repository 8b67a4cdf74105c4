package crate

import "fmt"

// =============================================================================
// Fixed Instance Capacities
// =============================================================================

// Capacities imposed by the downstream NX expression template, which
// pre-declares a fixed number of instances per component type. These are
// ceilings, not resizable buffers; exceeding one is a hard failure.
const (
	MaxSheetsPerPanel        = 10 // plywood sheets per panel
	MaxIntermediateVerticals = 7  // intermediate vertical cleats per panel
	MaxHorizontalSections    = 6  // horizontal splice-cleat sections per panel
	MaxFloorboards           = 20 // floorboards across the crate base
)

// =============================================================================
// Envelope
// =============================================================================

// Axis identifies a horizontal envelope dimension that the reconciliation
// engine may grow. Height never grows during reconciliation.
type Axis int

const (
	// AxisWidth is the crate's overall width (front/back panel direction).
	AxisWidth Axis = iota
	// AxisLength is the crate's overall length (side panel direction).
	AxisLength
)

// String returns the axis name for log messages.
func (a Axis) String() string {
	switch a {
	case AxisWidth:
		return "width"
	case AxisLength:
		return "length"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Envelope is the overall crate bounding box. During reconciliation the
// engine owns a single Envelope value and replaces it via Grown; dimensions
// are monotonically non-decreasing across passes.
type Envelope struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// Grown returns a copy of the envelope with delta added to the given axis.
// Negative deltas are ignored: the envelope never shrinks.
func (e Envelope) Grown(axis Axis, delta float64) Envelope {
	if delta <= 0 {
		return e
	}
	switch axis {
	case AxisWidth:
		e.Width += delta
	case AxisLength:
		e.Length += delta
	}
	return e
}

// =============================================================================
// Panels
// =============================================================================

// PanelSpec is an immutable snapshot of one panel's dimensions and material
// constants, derived from the envelope at the start of a reconciliation pass.
type PanelSpec struct {
	Width              float64 `json:"width"`
	Height             float64 `json:"height"`
	SheathingThickness float64 `json:"sheathing_thickness"`
	CleatThickness     float64 `json:"cleat_thickness"`
	CleatMemberWidth   float64 `json:"cleat_member_width"`
}

// Sheet is one rectangular plywood piece within a panel's tiling. The tiling
// covers [0,Width]x[0,Height] of the panel exactly, with no overlaps.
type Sheet struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the sheet's surface area.
func (s Sheet) Area() float64 { return s.Width * s.Height }

// Orientation distinguishes vertical cleats (along panel height) from
// horizontal splice-cleat sections (along panel width).
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Cleat is one structural batten on a panel. Centerline and LeftEdge are
// positions along the panel axis perpendicular to the cleat's long axis.
type Cleat struct {
	Centerline  float64     `json:"centerline"`
	LeftEdge    float64     `json:"left_edge"`
	Length      float64     `json:"length"`
	Orientation Orientation `json:"orientation"`
}

// =============================================================================
// Base Components
// =============================================================================

// SkidLayout positions the base runners under the crate. FirstX is the first
// skid's centerline in the centered coordinate frame; subsequent skids sit at
// FirstX + i*Pitch.
type SkidLayout struct {
	Callout    string  `json:"callout"` // nominal lumber size, e.g. "4x6"
	Width      float64 `json:"width"`   // actual cross-section width
	Height     float64 `json:"height"`  // actual cross-section height
	Count      int     `json:"count"`
	Pitch      float64 `json:"pitch"`
	FirstX     float64 `json:"first_x"`
	MaxSpacing float64 `json:"max_spacing"` // rule the layout was sized against
}

// Floorboard is one board across the crate base. Y is the board's leading
// edge along the crate length, measured from the layout's start offset.
type Floorboard struct {
	Width  float64 `json:"width"`
	Y      float64 `json:"y"`
	Custom bool    `json:"custom,omitempty"`
}

// FloorboardLayout is the ordered board sequence plus the remainder
// disposition. MiddleGap and CustomWidth are mutually exclusive: at most one
// is non-zero.
type FloorboardLayout struct {
	Boards      []Floorboard `json:"boards"`
	MiddleGap   float64      `json:"middle_gap"`
	CustomWidth float64      `json:"custom_width"`
}
