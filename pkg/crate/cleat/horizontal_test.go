package cleat

import (
	"math"
	"testing"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// verticalCleats builds sorted vertical cleats with consistent left edges
// from centerlines, the way the reconciliation engine materializes them.
func verticalCleats(centers []float64, memberWidth float64) []crate.Cleat {
	cleats := make([]crate.Cleat, len(centers))
	for i, c := range centers {
		cleats[i] = crate.Cleat{
			Centerline:  c,
			LeftEdge:    c - memberWidth/2,
			Orientation: crate.Vertical,
		}
	}
	return cleats
}

func TestSectionHorizontal(t *testing.T) {
	// Edge cleats at 1.75 and 98.25 with one interior cleat at 50.
	verticals := verticalCleats([]float64{1.75, 50, 98.25}, 3.5)
	sections, err := SectionHorizontal(verticals, 3.5, 0.25)
	if err != nil {
		t.Fatalf("SectionHorizontal() error = %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("len(sections) = %d, want 2", len(sections))
	}

	// First span: from the left edge cleat's right face (3.5) to the
	// interior cleat's left face (48.25).
	if math.Abs(sections[0].X-3.5) > 1e-9 || math.Abs(sections[0].Width-44.75) > 1e-9 {
		t.Errorf("sections[0] = %+v, want {X:3.5 Width:44.75}", sections[0])
	}
	if math.Abs(sections[1].X-51.75) > 1e-9 || math.Abs(sections[1].Width-44.75) > 1e-9 {
		t.Errorf("sections[1] = %+v, want {X:51.75 Width:44.75}", sections[1])
	}
}

func TestSectionHorizontalStaleLeftEdges(t *testing.T) {
	// Left edges recorded before an envelope growth step can disagree with
	// the centerlines; a negative edge-to-edge span falls back to
	// center-to-center distance minus the member width.
	verticals := []crate.Cleat{
		{Centerline: 1.75, LeftEdge: 10.0}, // stale, far right of reality
		{Centerline: 30, LeftEdge: 12.0},
	}
	sections, err := SectionHorizontal(verticals, 3.5, 0.25)
	if err != nil {
		t.Fatalf("SectionHorizontal() error = %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1", len(sections))
	}
	wantWidth := 30 - 1.75 - 3.5
	if math.Abs(sections[0].Width-wantWidth) > 1e-9 {
		t.Errorf("Width = %v, want %v (center distance fallback)", sections[0].Width, wantWidth)
	}
	wantX := 1.75 + 3.5/2
	if math.Abs(sections[0].X-wantX) > 1e-9 {
		t.Errorf("X = %v, want %v (anchored at left cleat's right edge)", sections[0].X, wantX)
	}
}

func TestSectionHorizontalDropsSlivers(t *testing.T) {
	// Cleats 3.6 apart leave a 0.1 clear span, under the 0.25 minimum.
	verticals := verticalCleats([]float64{1.75, 5.35, 30}, 3.5)
	sections, err := SectionHorizontal(verticals, 3.5, 0.25)
	if err != nil {
		t.Fatalf("SectionHorizontal() error = %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("len(sections) = %d, want 1 (sliver dropped)", len(sections))
	}
}

func TestSectionHorizontalCapacity(t *testing.T) {
	centers := make([]float64, 0, 9)
	for i := 0; i < 9; i++ {
		centers = append(centers, float64(i)*20+1.75)
	}
	_, err := SectionHorizontal(verticalCleats(centers, 3.5), 3.5, 0.25)
	if err == nil {
		t.Fatal("SectionHorizontal() = nil error, want capacity failure")
	}
	if !errors.Is(err, errors.ErrCodeCapacityExceeded) {
		t.Errorf("code = %v, want CAPACITY_EXCEEDED", errors.GetCode(err))
	}
}

func TestSectionHorizontalNeedsEdges(t *testing.T) {
	_, err := SectionHorizontal(verticalCleats([]float64{1.75}, 3.5), 3.5, 0.25)
	if err == nil {
		t.Fatal("SectionHorizontal() = nil error with a single cleat")
	}
}
