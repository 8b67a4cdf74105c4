// Package report turns a computed crate layout into human-facing documents:
// a bill of materials, a printable PDF cut sheet, and an XLSX workbook for
// the shop floor. The package consumes a finished reconcile.Result and never
// recomputes geometry.
package report

import (
	"fmt"
	"sort"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
)

// =============================================================================
// Bill of Materials
// =============================================================================

// Line is one aggregated BOM entry. Identical cut sizes of the same material
// collapse into a single line with a quantity.
type Line struct {
	Material string  `json:"material"` // "plywood", "cleat", "skid", "floorboard"
	Detail   string  `json:"detail"`   // where the pieces are used
	Width    float64 `json:"width"`
	Length   float64 `json:"length"`
	Qty      int     `json:"qty"`
}

// CutSize formats the line's dimensions for display.
func (l Line) CutSize() string {
	return fmt.Sprintf("%.2f x %.2f", l.Width, l.Length)
}

// BOM is the full bill of materials for one crate.
type BOM struct {
	Lines []Line `json:"lines"`

	// Totals for the summary footer.
	SheetArea   float64 `json:"sheet_area"`   // total plywood area, sq in
	CleatLength float64 `json:"cleat_length"` // total cleat linear length, in
}

// Build aggregates every component of the result into BOM lines. Lines are
// grouped by material and cut size, then sorted by material, width, length
// so the output is deterministic.
func Build(res *reconcile.Result) *BOM {
	type key struct {
		material string
		detail   string
		width    float64
		length   float64
	}
	counts := make(map[key]int)
	add := func(material, detail string, width, length float64) {
		counts[key{material, detail, round2(width), round2(length)}]++
	}

	bom := &BOM{}
	for i := range res.Panels {
		p := &res.Panels[i]
		detail := string(p.Name) + " panel"
		mw := p.Spec.CleatMemberWidth

		for _, s := range p.Sheets {
			add("plywood", detail, s.Width, s.Height)
			bom.SheetArea += s.Area()
		}
		for _, c := range p.Verticals {
			add("cleat", detail, mw, c.Length)
			bom.CleatLength += c.Length
		}
		for _, c := range p.Horizontals {
			add("cleat", detail, mw, c.Length)
			bom.CleatLength += c.Length
		}
		for _, s := range p.Sections {
			add("cleat", detail+" splice", mw, s.Width)
			bom.CleatLength += s.Width
		}
	}

	for i := 0; i < res.Skids.Count; i++ {
		add("skid", res.Skids.Callout, res.Skids.Width, res.Envelope.Length)
	}
	for _, b := range res.Floor.Boards {
		detail := "floor"
		if b.Custom {
			detail = "floor (custom rip)"
		}
		add("floorboard", detail, b.Width, res.Envelope.Width)
	}

	for k, qty := range counts {
		bom.Lines = append(bom.Lines, Line{
			Material: k.material,
			Detail:   k.detail,
			Width:    k.width,
			Length:   k.length,
			Qty:      qty,
		})
	}
	sort.Slice(bom.Lines, func(i, j int) bool {
		a, b := bom.Lines[i], bom.Lines[j]
		if a.Material != b.Material {
			return materialRank(a.Material) < materialRank(b.Material)
		}
		if a.Detail != b.Detail {
			return a.Detail < b.Detail
		}
		if a.Width != b.Width {
			return a.Width > b.Width
		}
		return a.Length > b.Length
	})
	return bom
}

// materialRank orders BOM sections the way a packer reads the crate:
// structure first, then sheathing, then the base.
func materialRank(m string) int {
	switch m {
	case "plywood":
		return 0
	case "cleat":
		return 1
	case "skid":
		return 2
	case "floorboard":
		return 3
	}
	return 4
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
