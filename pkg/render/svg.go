// Package render draws crate panels as SVG shop diagrams.
//
// Each panel gets one standalone SVG: plywood sheets as light fills with
// their seams visible, cleats as darker strokes over them, and the panel
// outline on top. The drawings are for visual review of a layout before
// cutting, not CAD interchange; the nx package owns the machine-readable
// output.
package render

import (
	"bytes"
	"fmt"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
)

const (
	// scale converts inches to SVG user units.
	scale = 4.0
	// margin frames the panel inside the viewport.
	margin = 20.0
)

const (
	sheetFill   = "#f2e8d5"
	sheetStroke = "#b8a888"
	cleatFill   = "#c89b6c"
	cleatStroke = "#7a5c3a"
	outline     = "#333333"
)

// SVGOption configures panel rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	showLabels bool
}

// WithLabels adds dimension labels to cleat centerlines.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.showLabels = true } }

// PanelSVG renders one panel layout as a complete SVG document.
//
// The drawing uses shop orientation: x to the right, y upward, so the SVG
// y axis is flipped around the panel height.
func PanelSVG(p *reconcile.PanelLayout, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w := p.Spec.Width*scale + 2*margin
	h := p.Spec.Height*scale + 2*margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `<title>%s panel %.2f x %.2f</title>`+"\n", p.Name, p.Spec.Width, p.Spec.Height)

	flipY := func(y, height float64) float64 {
		return margin + (p.Spec.Height-y-height)*scale
	}

	for _, s := range p.Sheets {
		fmt.Fprintf(&buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			margin+s.X*scale, flipY(s.Y, s.Height), s.Width*scale, s.Height*scale, sheetFill, sheetStroke)
	}

	mw := p.Spec.CleatMemberWidth
	for _, c := range p.Verticals {
		fmt.Fprintf(&buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			margin+c.LeftEdge*scale, flipY(0, c.Length), mw*scale, c.Length*scale, cleatFill, cleatStroke)
		if r.showLabels {
			fmt.Fprintf(&buf, `<text x="%.2f" y="%.2f" font-size="10" text-anchor="middle">%.2f</text>`+"\n",
				margin+c.Centerline*scale, margin+p.Spec.Height*scale+12, c.Centerline)
		}
	}

	for _, c := range p.Horizontals {
		fmt.Fprintf(&buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			margin+mw*scale, flipY(c.LeftEdge, mw), c.Length*scale, mw*scale, cleatFill, cleatStroke)
	}

	for _, s := range p.Sections {
		fmt.Fprintf(&buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			margin+s.X*scale, flipY(p.SpliceY-mw/2, mw), s.Width*scale, mw*scale, cleatFill, cleatStroke)
	}

	fmt.Fprintf(&buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
		margin, margin, p.Spec.Width*scale, p.Spec.Height*scale, outline)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
