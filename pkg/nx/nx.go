// Package nx serializes a crate layout into an NX parametric expression
// file.
//
// The NX template declares a fixed number of component instances per panel
// (sheets, intermediate cleats, splice sections, floorboards) and expects a
// value for every slot on every run: the format has no notion of a
// variable-length array. This package is the only place that contract
// lives. Active components serialize their geometry with a suppress flag of
// 1; unused slots get a suppress flag of 0 and the 0.001 sentinel geometry
// the template tolerates for suppressed features.
//
// Output is "KEY = value" text, one scalar per line, with an [Inch] unit
// tag on dimensioned values and occasional trailing comments:
//
//	[Inch]OVERALL_WIDTH = 51.0000
//	FRONT_CLEAT_2_SUPPRESS = 1
//	[Inch]FRONT_CLEAT_2_X = 25.0000	// intermediate
package nx

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
)

// inactive is the sentinel geometry value the NX template expects on
// suppressed instances: small enough to never render, non-zero so the
// template's expressions stay well-defined.
const inactive = 0.001

// Marshal renders the full expression file for one crate layout.
func Marshal(res *reconcile.Result) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// AutoCrate NX expressions\n")
	fmt.Fprintf(&buf, "// product %.4g x %.4g x %.4g, %.4g lb\n\n",
		res.Params.ProductLength, res.Params.ProductWidth,
		res.Params.ProductHeight, res.Params.ProductWeight)

	writeScalar(&buf, "OVERALL_WIDTH", res.Envelope.Width, "")
	writeScalar(&buf, "OVERALL_LENGTH", res.Envelope.Length, "")
	writeScalar(&buf, "OVERALL_HEIGHT", res.Envelope.Height, "")
	buf.WriteByte('\n')

	for _, p := range res.Panels {
		writePanel(&buf, &p)
	}
	writeSkids(&buf, res.Skids)
	writeFloor(&buf, res.Floor)

	return buf.Bytes()
}

// WriteFile writes the expression file with 0644 permissions.
func WriteFile(res *reconcile.Result, path string) error {
	if err := os.WriteFile(path, Marshal(res), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writePanel(buf *bytes.Buffer, p *reconcile.PanelLayout) {
	prefix := strings.ToUpper(string(p.Name))

	writeScalar(buf, prefix+"_PANEL_WIDTH", p.Spec.Width, "")
	writeScalar(buf, prefix+"_PANEL_HEIGHT", p.Spec.Height, "")
	writeScalar(buf, prefix+"_SHEATHING_THK", p.Spec.SheathingThickness, "")
	writeScalar(buf, prefix+"_CLEAT_THK", p.Spec.CleatThickness, "")
	writeScalar(buf, prefix+"_CLEAT_WIDTH", p.Spec.CleatMemberWidth, "")
	writeFlag(buf, prefix+"_EDGE_CLEAT_COUNT", p.EdgeCleatCount)
	writeScalar(buf, prefix+"_EDGE_CLEAT_LEN", p.EdgeCleatLength, "")
	writeScalar(buf, prefix+"_EDGE_CAP_LEN", p.EdgeCapLength, "")

	// Sheet slots.
	for i := 0; i < crate.MaxSheetsPerPanel; i++ {
		key := fmt.Sprintf("%s_SHEET_%d", prefix, i+1)
		if i < len(p.Sheets) {
			s := p.Sheets[i]
			writeFlag(buf, key+"_SUPPRESS", 1)
			writeScalar(buf, key+"_X", s.X, "")
			writeScalar(buf, key+"_Y", s.Y, "")
			writeScalar(buf, key+"_W", s.Width, "")
			writeScalar(buf, key+"_H", s.Height, "")
		} else {
			writeInactive(buf, key, "_X", "_Y", "_W", "_H")
		}
	}

	// Intermediate vertical cleat slots (edges are template geometry, not
	// slots; only the interior cleats instance in).
	interior := p.Verticals
	if len(interior) >= 2 {
		interior = interior[1 : len(interior)-1]
	}
	for i := 0; i < crate.MaxIntermediateVerticals; i++ {
		key := fmt.Sprintf("%s_CLEAT_%d", prefix, i+1)
		if i < len(interior) {
			c := interior[i]
			writeFlag(buf, key+"_SUPPRESS", 1)
			writeScalar(buf, key+"_X", c.Centerline, "intermediate")
			writeScalar(buf, key+"_LEFT", c.LeftEdge, "")
			writeScalar(buf, key+"_LEN", c.Length, "")
		} else {
			writeInactive(buf, key, "_X", "_LEFT", "_LEN")
		}
	}

	// Horizontal splice section slots.
	writeScalar(buf, prefix+"_SPLICE_Y", p.SpliceY, "")
	for i := 0; i < crate.MaxHorizontalSections; i++ {
		key := fmt.Sprintf("%s_SECTION_%d", prefix, i+1)
		if i < len(p.Sections) {
			s := p.Sections[i]
			writeFlag(buf, key+"_SUPPRESS", 1)
			writeScalar(buf, key+"_X", s.X, "")
			writeScalar(buf, key+"_W", s.Width, "")
		} else {
			writeInactive(buf, key, "_X", "_W")
		}
	}

	// Cross cleat slots, populated only on the top panel.
	for i := 0; i < crate.MaxIntermediateVerticals; i++ {
		key := fmt.Sprintf("%s_CROSS_CLEAT_%d", prefix, i+1)
		if i < len(p.Horizontals) {
			c := p.Horizontals[i]
			writeFlag(buf, key+"_SUPPRESS", 1)
			writeScalar(buf, key+"_Y", c.Centerline, "")
			writeScalar(buf, key+"_LEN", c.Length, "")
		} else {
			writeInactive(buf, key, "_Y", "_LEN")
		}
	}
	buf.WriteByte('\n')
}

func writeSkids(buf *bytes.Buffer, s crate.SkidLayout) {
	writeFlag(buf, "SKID_COUNT", s.Count)
	writeScalar(buf, "SKID_WIDTH", s.Width, s.Callout)
	writeScalar(buf, "SKID_HEIGHT", s.Height, "")
	writeScalar(buf, "SKID_PITCH", s.Pitch, "")
	writeScalar(buf, "SKID_FIRST_X", s.FirstX, "")
	buf.WriteByte('\n')
}

func writeFloor(buf *bytes.Buffer, f crate.FloorboardLayout) {
	writeScalar(buf, "FLOOR_MIDDLE_GAP", f.MiddleGap, "")
	writeScalar(buf, "FLOOR_CUSTOM_WIDTH", f.CustomWidth, "")
	for i := 0; i < crate.MaxFloorboards; i++ {
		key := fmt.Sprintf("FLOORBOARD_%d", i+1)
		if i < len(f.Boards) {
			b := f.Boards[i]
			comment := ""
			if b.Custom {
				comment = "custom rip"
			}
			writeFlag(buf, key+"_SUPPRESS", 1)
			writeScalar(buf, key+"_W", b.Width, comment)
			writeScalar(buf, key+"_Y", b.Y, "")
		} else {
			writeInactive(buf, key, "_W", "_Y")
		}
	}
}

// writeScalar emits one dimensioned value with its unit tag.
func writeScalar(buf *bytes.Buffer, key string, v float64, comment string) {
	if comment != "" {
		fmt.Fprintf(buf, "[Inch]%s = %.4f\t// %s\n", key, v, comment)
		return
	}
	fmt.Fprintf(buf, "[Inch]%s = %.4f\n", key, v)
}

// writeFlag emits one unitless integer value.
func writeFlag(buf *bytes.Buffer, key string, v int) {
	fmt.Fprintf(buf, "%s = %d\n", key, v)
}

// writeInactive fills one suppressed slot: flag 0 and sentinel geometry.
func writeInactive(buf *bytes.Buffer, key string, fields ...string) {
	writeFlag(buf, key+"_SUPPRESS", 0)
	for _, f := range fields {
		writeScalar(buf, key+f, inactive, "")
	}
}
