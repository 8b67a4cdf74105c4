package reconcile

import (
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/cleat"
)

// PanelName identifies one of the five crate panels.
type PanelName string

const (
	PanelFront PanelName = "front"
	PanelBack  PanelName = "back"
	PanelLeft  PanelName = "left"
	PanelRight PanelName = "right"
	PanelTop   PanelName = "top"
)

// PanelNames lists the panels in serialization order.
var PanelNames = []PanelName{PanelFront, PanelBack, PanelLeft, PanelRight, PanelTop}

// PanelLayout is the complete computed layout for one panel.
type PanelLayout struct {
	Name PanelName       `json:"name"`
	Spec crate.PanelSpec `json:"spec"`

	// Sheets is the plywood tiling covering the panel exactly.
	Sheets []crate.Sheet `json:"sheets"`

	// Verticals holds every vertical cleat sorted by centerline, the two
	// edge cleats first and last.
	Verticals []crate.Cleat `json:"verticals"`

	// Symmetric reports uniform interior spacing (spliceless panel).
	Symmetric bool `json:"symmetric,omitempty"`

	// Horizontals are full-width cleats across the panel, used on the top
	// panel where seams in the second axis get their own cleats instead
	// of short sections.
	Horizontals []crate.Cleat `json:"horizontals,omitempty"`

	// SpliceY is the horizontal seam the Sections reinforce; zero when the
	// panel tiles in a single row.
	SpliceY  float64         `json:"splice_y,omitempty"`
	Sections []cleat.Section `json:"sections,omitempty"`

	// Perimeter edge members: two vertical edge cleats of EdgeCleatLength
	// plus two horizontal caps of EdgeCapLength between them.
	EdgeCleatCount  int     `json:"edge_cleat_count"`
	EdgeCleatLength float64 `json:"edge_cleat_length"`
	EdgeCapLength   float64 `json:"edge_cap_length"`
}

// Result is the full output of one reconciliation run: the final envelope
// and every component layout the serializer needs. It is created fresh per
// run and never mutated afterward.
type Result struct {
	Params   crate.Params   `json:"params"`
	Envelope crate.Envelope `json:"envelope"`

	Panels []PanelLayout `json:"panels"`

	Skids crate.SkidLayout       `json:"skids"`
	Floor crate.FloorboardLayout `json:"floor"`

	// Passes is how many full reconciliation passes ran before the fixed
	// point, including the final all-quiet pass.
	Passes int `json:"passes"`

	// Growth is the total envelope growth applied per axis.
	GrowthWidth  float64 `json:"growth_width"`
	GrowthLength float64 `json:"growth_length"`
}

// Panel returns the layout for the named panel, or nil.
func (r *Result) Panel(name PanelName) *PanelLayout {
	for i := range r.Panels {
		if r.Panels[i].Name == name {
			return &r.Panels[i]
		}
	}
	return nil
}
