package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
)

func sampleResult() *reconcile.Result {
	spec := crate.PanelSpec{
		Width:              51,
		Height:             36.5,
		SheathingThickness: 0.75,
		CleatThickness:     0.75,
		CleatMemberWidth:   3.5,
	}
	panel := func(name reconcile.PanelName) reconcile.PanelLayout {
		return reconcile.PanelLayout{
			Name:   name,
			Spec:   spec,
			Sheets: []crate.Sheet{{X: 0, Y: 0, Width: 51, Height: 36.5}},
			Verticals: []crate.Cleat{
				{Centerline: 1.75, LeftEdge: 0, Length: 36.5},
				{Centerline: 25.5, LeftEdge: 23.75, Length: 36.5},
				{Centerline: 49.25, LeftEdge: 47.5, Length: 36.5},
			},
			Symmetric: true,
		}
	}
	return &reconcile.Result{
		Params:   crate.Params{ProductWeight: 1200},
		Envelope: crate.Envelope{Width: 51, Length: 96, Height: 36.5},
		Panels: []reconcile.PanelLayout{
			panel(reconcile.PanelFront),
			panel(reconcile.PanelBack),
		},
		Skids: crate.SkidLayout{
			Callout: "4x4", Width: 3.5, Height: 3.5,
			Count: 3, Pitch: 22, FirstX: -22, MaxSpacing: 30,
		},
		Floor: crate.FloorboardLayout{
			Boards: []crate.Floorboard{
				{Width: 11.25, Y: 0},
				{Width: 11.25, Y: 11.75},
				{Width: 0.5, Y: 11.25, Custom: true},
			},
			CustomWidth: 0.5,
		},
		Passes: 1,
	}
}

func TestBuildAggregatesIdenticalCuts(t *testing.T) {
	bom := Build(sampleResult())

	// Front and back are identical panels but keep separate detail lines;
	// within each panel the three equal cleats collapse to qty 3.
	var frontCleats *Line
	for i := range bom.Lines {
		l := &bom.Lines[i]
		if l.Material == "cleat" && l.Detail == "front panel" {
			frontCleats = l
		}
	}
	require.NotNil(t, frontCleats, "missing front panel cleat line")
	assert.Equal(t, 3, frontCleats.Qty)
	assert.InDelta(t, 3.5, frontCleats.Width, 1e-9)
	assert.InDelta(t, 36.5, frontCleats.Length, 1e-9)
}

func TestBuildTotals(t *testing.T) {
	bom := Build(sampleResult())

	// Two panels, one full sheet each.
	assert.InDelta(t, 2*51*36.5, bom.SheetArea, 1e-6)
	// Six cleats of 36.5.
	assert.InDelta(t, 6*36.5, bom.CleatLength, 1e-6)
}

func TestBuildSkidsAndFloor(t *testing.T) {
	bom := Build(sampleResult())

	byMaterial := map[string]int{}
	for _, l := range bom.Lines {
		byMaterial[l.Material] += l.Qty
	}
	assert.Equal(t, 3, byMaterial["skid"])
	assert.Equal(t, 3, byMaterial["floorboard"])

	var custom bool
	for _, l := range bom.Lines {
		if l.Material == "floorboard" && strings.Contains(l.Detail, "custom") {
			custom = true
			assert.Equal(t, 1, l.Qty)
		}
	}
	assert.True(t, custom, "custom rip missing from BOM")
}

func TestBuildOrderDeterministic(t *testing.T) {
	a := Build(sampleResult())
	b := Build(sampleResult())
	require.Equal(t, a.Lines, b.Lines)

	// Plywood leads, base members trail.
	assert.Equal(t, "plywood", a.Lines[0].Material)
	assert.Equal(t, "floorboard", a.Lines[len(a.Lines)-1].Material)
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	err := WritePDF(&buf, sampleResult(), PDFOptions{
		Title:  "Test Crate",
		Author: "shop",
		Now:    func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"), "not a PDF stream")
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleResult()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	for _, name := range []string{sheetSummary, sheetBOM, sheetPanels} {
		idx, err := f.GetSheetIndex(name)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0, "missing sheet %s", name)
	}

	v, err := f.GetCellValue(sheetSummary, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Overall Width (in)", v)

	rows, err := f.GetRows(sheetBOM)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Material", "Used For", "Width (in)", "Length (in)", "Qty"}, rows[0])
	assert.Equal(t, len(Build(sampleResult()).Lines)+1, len(rows))
}
