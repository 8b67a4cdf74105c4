package floorboard

import (
	"math"
	"testing"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

var catalog = []float64{11.25, 9.25, 7.25, 5.5}

func TestPlanSmallRemainderBecomesGap(t *testing.T) {
	got, err := Plan(23.0, 1.0, catalog, 2.5, 1.0, false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(got.Boards) != 2 {
		t.Fatalf("len(Boards) = %d, want 2", len(got.Boards))
	}
	for _, b := range got.Boards {
		if b.Width != 11.25 {
			t.Errorf("board width = %v, want 11.25", b.Width)
		}
	}
	if math.Abs(got.MiddleGap-0.5) > 1e-9 {
		t.Errorf("MiddleGap = %v, want 0.5", got.MiddleGap)
	}
	if got.CustomWidth != 0 {
		t.Errorf("CustomWidth = %v, want 0", got.CustomWidth)
	}

	// The gap sits between the two boards: second board is pushed right.
	if got.Boards[0].Y != 1.0 {
		t.Errorf("Boards[0].Y = %v, want 1.0", got.Boards[0].Y)
	}
	if math.Abs(got.Boards[1].Y-12.75) > 1e-9 {
		t.Errorf("Boards[1].Y = %v, want 12.75 (11.25 + 0.5 gap after offset)", got.Boards[1].Y)
	}
}

func TestPlanForcedCustomBoard(t *testing.T) {
	got, err := Plan(23.0, 1.0, catalog, 2.5, 1.0, true)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if len(got.Boards) != 3 {
		t.Fatalf("len(Boards) = %d, want 3", len(got.Boards))
	}
	if got.MiddleGap != 0 {
		t.Errorf("MiddleGap = %v, want 0", got.MiddleGap)
	}
	if math.Abs(got.CustomWidth-0.5) > 1e-9 {
		t.Errorf("CustomWidth = %v, want 0.5", got.CustomWidth)
	}
	// Custom board is the middle entry, not appended.
	if !got.Boards[1].Custom {
		t.Errorf("Boards[1].Custom = false, want the custom board centered: %+v", got.Boards)
	}
	if math.Abs(got.Boards[1].Width-0.5) > 1e-9 {
		t.Errorf("Boards[1].Width = %v, want 0.5", got.Boards[1].Width)
	}
}

func TestPlanRemainderAboveMinBecomesCustom(t *testing.T) {
	// 25.5 leaves 3.0 after two 11.25 boards; 3.0 >= 2.5 min custom.
	got, err := Plan(25.5, 0, catalog, 2.5, 1.0, false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if math.Abs(got.CustomWidth-3.0) > 1e-9 {
		t.Errorf("CustomWidth = %v, want 3.0", got.CustomWidth)
	}
	if got.MiddleGap != 0 {
		t.Errorf("MiddleGap = %v, want 0", got.MiddleGap)
	}
}

func TestPlanGapOverMaxBecomesCustom(t *testing.T) {
	// Remainder 2.0 is under the 2.5 custom minimum but over the 0.25
	// allowable gap, so it is ripped as a custom board anyway.
	got, err := Plan(24.5, 0, catalog, 2.5, 0.25, false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if math.Abs(got.CustomWidth-2.0) > 1e-9 {
		t.Errorf("CustomWidth = %v, want 2.0", got.CustomWidth)
	}
}

func TestPlanExactFitNoRemainder(t *testing.T) {
	got, err := Plan(22.5, 0, catalog, 2.5, 1.0, false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if got.MiddleGap != 0 || got.CustomWidth != 0 {
		t.Errorf("remainder disposition = gap %v custom %v, want none", got.MiddleGap, got.CustomWidth)
	}
	if len(got.Boards) != 2 {
		t.Errorf("len(Boards) = %d, want 2", len(got.Boards))
	}
}

func TestPlanMixedCatalogGreedy(t *testing.T) {
	// 28.0: two 11.25 boards leave 5.5, which the 5.5 catalog entry fills
	// exactly once the larger widths no longer fit.
	got, err := Plan(28.0, 0, catalog, 2.5, 0.5, false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	wantWidths := []float64{11.25, 11.25, 5.5}
	if len(got.Boards) != len(wantWidths) {
		t.Fatalf("boards = %+v, want widths %v", got.Boards, wantWidths)
	}
	var widths []float64
	for _, b := range got.Boards {
		widths = append(widths, b.Width)
	}
	sortedWant := map[float64]int{11.25: 2, 5.5: 1}
	for _, w := range widths {
		sortedWant[w]--
	}
	for w, n := range sortedWant {
		if n != 0 {
			t.Errorf("board width %v count off by %d in %v", w, n, widths)
		}
	}
	if got.MiddleGap != 0 {
		t.Errorf("MiddleGap = %v, want 0", got.MiddleGap)
	}
}

func TestPlanConservation(t *testing.T) {
	spans := []float64{23.0, 25.5, 28.0, 22.5, 96.25, 115.0, 57.3}
	for _, span := range spans {
		for _, force := range []bool{false, true} {
			got, err := Plan(span, 0.75, catalog, 2.5, 0.25, force)
			if err != nil {
				t.Fatalf("Plan(%v, force=%v) error = %v", span, force, err)
			}
			if cov := Coverage(got); math.Abs(cov-span) > 1e-6 {
				t.Errorf("Plan(%v, force=%v) coverage = %v, want %v", span, force, cov, span)
			}
			// Gap and custom board are mutually exclusive.
			if got.MiddleGap > 0 && got.CustomWidth > 0 {
				t.Errorf("Plan(%v, force=%v) has both gap %v and custom %v",
					span, force, got.MiddleGap, got.CustomWidth)
			}
		}
	}
}

func TestPlanPositionsAreContiguous(t *testing.T) {
	got, err := Plan(96.25, 2.0, catalog, 2.5, 0.25, false)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	y := 2.0
	mid := -1
	for i, b := range got.Boards {
		if math.Abs(b.Y-y) > 1e-9 {
			if mid == -1 && math.Abs(b.Y-(y+got.MiddleGap)) < 1e-9 {
				mid = i // the one allowed discontinuity: the middle gap
				y += got.MiddleGap
			} else {
				t.Fatalf("Boards[%d].Y = %v, want %v", i, b.Y, y)
			}
		}
		y += b.Width
	}
}

func TestPlanCapacity(t *testing.T) {
	// A 500 span on 5.5-wide boards needs 90 boards.
	_, err := Plan(500, 0, []float64{5.5}, 2.5, 0.25, false)
	if err == nil {
		t.Fatal("Plan() = nil error, want capacity failure")
	}
	if !errors.Is(err, errors.ErrCodeCapacityExceeded) {
		t.Errorf("code = %v, want CAPACITY_EXCEEDED", errors.GetCode(err))
	}
}

func TestPlanRejectsBadInput(t *testing.T) {
	if _, err := Plan(0, 0, catalog, 2.5, 0.25, false); err == nil {
		t.Error("Plan(span=0) = nil error")
	}
	if _, err := Plan(23, 0, nil, 2.5, 0.25, false); err == nil {
		t.Error("Plan(empty catalog) = nil error")
	}
	if _, err := Plan(23, 0, []float64{5.5, -1}, 2.5, 0.25, false); err == nil {
		t.Error("Plan(negative width) = nil error")
	}
}

func TestCoverage(t *testing.T) {
	l := crate.FloorboardLayout{
		Boards:    []crate.Floorboard{{Width: 11.25}, {Width: 11.25}},
		MiddleGap: 0.5,
	}
	if got := Coverage(l); math.Abs(got-23.0) > 1e-9 {
		t.Errorf("Coverage() = %v, want 23.0", got)
	}
}
