package sheet

import (
	"math"
	"testing"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

var stdStock = Stock{Length: 96, Width: 48}

const maxDim = 500.0

func TestTileSingleSheet(t *testing.T) {
	got, err := Tile(48, 40, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	if len(got.Sheets) != 1 {
		t.Fatalf("len(Sheets) = %d, want 1", len(got.Sheets))
	}
	want := crate.Sheet{X: 0, Y: 0, Width: 48, Height: 40}
	if got.Sheets[0] != want {
		t.Errorf("Sheets[0] = %+v, want %+v", got.Sheets[0], want)
	}
	if len(got.VerticalSplices()) != 0 || len(got.HorizontalSplices()) != 0 {
		t.Error("single sheet tiling should have no splices")
	}
}

func TestTileStandardOrientation(t *testing.T) {
	// 100x40: standard needs 2 sheets, rotated 3.
	got, err := Tile(100, 40, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	if len(got.Sheets) != 2 {
		t.Fatalf("len(Sheets) = %d, want 2", len(got.Sheets))
	}
	if got.Rotated {
		t.Error("Rotated = true, want standard orientation")
	}
	first := crate.Sheet{X: 0, Y: 0, Width: 96, Height: 40}
	if got.Sheets[0] != first {
		t.Errorf("Sheets[0] = %+v, want %+v", got.Sheets[0], first)
	}
	second := crate.Sheet{X: 96, Y: 0, Width: 4, Height: 40}
	if got.Sheets[1] != second {
		t.Errorf("Sheets[1] = %+v, want %+v", got.Sheets[1], second)
	}
	splices := got.VerticalSplices()
	if len(splices) != 1 || splices[0] != 96 {
		t.Errorf("VerticalSplices() = %v, want [96]", splices)
	}
}

func TestTileRotatedWinsOnCount(t *testing.T) {
	// 100x50: standard 2x2=4 sheets, rotated 3x1=3 sheets.
	got, err := Tile(100, 50, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	if len(got.Sheets) != 3 {
		t.Fatalf("len(Sheets) = %d, want 3", len(got.Sheets))
	}
	if !got.Rotated {
		t.Error("Rotated = false, want rotated orientation")
	}
	first := crate.Sheet{X: 0, Y: 0, Width: 48, Height: 50}
	if got.Sheets[0] != first {
		t.Errorf("Sheets[0] = %+v, want %+v", got.Sheets[0], first)
	}
}

func TestTileTieFewerColumnsWins(t *testing.T) {
	// 96x96: standard 1x2 and rotated 2x1 both need 2 sheets; standard has
	// fewer columns so it wins and the splice is horizontal, not vertical.
	got, err := Tile(96, 96, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	if got.Rotated {
		t.Error("Rotated = true, want standard on fewer-columns tie-break")
	}
	if got.Columns != 1 || got.Rows != 2 {
		t.Errorf("grid = %dx%d, want 1x2", got.Columns, got.Rows)
	}
}

func TestTileRemainderRowAtBottom(t *testing.T) {
	// 90x60 standard: one column, two rows. The 12-high remainder row
	// sits at y=0 with the full 48-high row above it.
	got, err := Tile(90, 60, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	if len(got.Sheets) != 2 {
		t.Fatalf("len(Sheets) = %d, want 2", len(got.Sheets))
	}
	if got.Sheets[0].Y != 0 || math.Abs(got.Sheets[0].Height-12) > 1e-9 {
		t.Errorf("bottom sheet = %+v, want remainder height 12 at y=0", got.Sheets[0])
	}
	if math.Abs(got.Sheets[1].Y-12) > 1e-9 || got.Sheets[1].Height != 48 {
		t.Errorf("top sheet = %+v, want full height 48 at y=12", got.Sheets[1])
	}
	splices := got.HorizontalSplices()
	if len(splices) != 1 || math.Abs(splices[0]-12) > 1e-9 {
		t.Errorf("HorizontalSplices() = %v, want [12]", splices)
	}
}

func TestTileExactMultipleNoPhantomColumn(t *testing.T) {
	got, err := Tile(96, 48, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	if len(got.Sheets) != 1 {
		t.Errorf("len(Sheets) = %d, want 1 for exact stock size", len(got.Sheets))
	}
}

func TestTileCoversPanelExactly(t *testing.T) {
	dims := []struct{ w, h float64 }{
		{48, 40}, {100, 40}, {100, 50}, {96, 96}, {90, 60},
		{130.5, 57.25}, {191.75, 101.5}, {0.5, 0.5}, {96, 48},
	}
	for _, d := range dims {
		got, err := Tile(d.w, d.h, stdStock, maxDim)
		if err != nil {
			t.Fatalf("Tile(%v, %v) error = %v", d.w, d.h, err)
		}
		if area := got.CoveredArea(); math.Abs(area-d.w*d.h) > 1e-6 {
			t.Errorf("Tile(%v, %v) covered area = %v, want %v", d.w, d.h, area, d.w*d.h)
		}
		for _, s := range got.Sheets {
			if s.Width <= 0 || s.Height <= 0 {
				t.Errorf("Tile(%v, %v) produced non-positive sheet %+v", d.w, d.h, s)
			}
		}
		wantCount := minSheetCount(d.w, d.h)
		if len(got.Sheets) != wantCount {
			t.Errorf("Tile(%v, %v) = %d sheets, want minimal %d", d.w, d.h, len(got.Sheets), wantCount)
		}
	}
}

// minSheetCount is the tiling-minimality oracle.
func minSheetCount(w, h float64) int {
	std := int(math.Ceil(w/96-1e-6)) * int(math.Ceil(h/48-1e-6))
	rot := int(math.Ceil(w/48-1e-6)) * int(math.Ceil(h/96-1e-6))
	if rot < std {
		return rot
	}
	return std
}

func TestTileNoOverlap(t *testing.T) {
	got, err := Tile(191.75, 101.5, stdStock, maxDim)
	if err != nil {
		t.Fatalf("Tile() error = %v", err)
	}
	for i, a := range got.Sheets {
		for _, b := range got.Sheets[i+1:] {
			if a.X < b.X+b.Width-1e-9 && b.X < a.X+a.Width-1e-9 &&
				a.Y < b.Y+b.Height-1e-9 && b.Y < a.Y+a.Height-1e-9 {
				t.Errorf("sheets overlap: %+v and %+v", a, b)
			}
		}
	}
}

func TestTileRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		w, h     float64
		wantCode errors.Code
	}{
		{"zero width", 0, 40, errors.ErrCodeInvalidInput},
		{"negative height", 50, -1, errors.ErrCodeInvalidInput},
		{"oversized", 501, 40, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tile(tt.w, tt.h, stdStock, maxDim)
			if err == nil {
				t.Fatal("Tile() = nil error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestTileCapacity(t *testing.T) {
	// 480x144 needs 5x3=15 sheets either way, over the 10-slot ceiling.
	_, err := Tile(480, 144, stdStock, maxDim)
	if err == nil {
		t.Fatal("Tile() = nil error, want capacity failure")
	}
	if !errors.Is(err, errors.ErrCodeCapacityExceeded) {
		t.Errorf("code = %v, want CAPACITY_EXCEEDED", errors.GetCode(err))
	}
}
