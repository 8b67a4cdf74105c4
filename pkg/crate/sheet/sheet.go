// Package sheet tiles a panel face with plywood stock.
//
// Stock sheets come in one size (typically 96x48). A panel wider or taller
// than one sheet is covered by a grid of clipped sheets; the seams between
// grid cells are the splice lines the cleat placement algorithms reinforce.
// The tiling is exact: the sheets' union covers the panel with no overlap
// and no waste inside the panel boundary.
package sheet

import (
	"math"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

const eps = 1e-6

// Stock is the plywood sheet size available to the tiler. Length is the long
// axis, Width the short axis.
type Stock struct {
	Length float64
	Width  float64
}

// Tiling is the computed sheet grid for one panel.
type Tiling struct {
	Sheets []crate.Sheet

	// Grid geometry for splice derivation. CellWidth/CellHeight are the
	// full-size cell dimensions in the chosen orientation.
	Columns    int
	Rows       int
	CellWidth  float64
	CellHeight float64

	// PanelWidth/PanelHeight echo the tiled panel for conservation checks.
	PanelWidth  float64
	PanelHeight float64

	// Rotated reports that the stock's short axis runs along the panel
	// width (the "rotated" orientation won the sheet-count comparison).
	Rotated bool
}

// gridFor evaluates both stock orientations and returns the winning cell
// dimensions. The decision table, in order:
//
//  1. Fewer total sheets wins.
//  2. Tie: fewer columns wins (fewer vertical splices to cleat).
//  3. Still tied: standard orientation (long axis along panel width).
func gridFor(w, h float64, stock Stock) (cellW, cellH float64, rotated bool) {
	stdCols := cellCount(w, stock.Length)
	stdRows := cellCount(h, stock.Width)
	rotCols := cellCount(w, stock.Width)
	rotRows := cellCount(h, stock.Length)

	stdTotal := stdCols * stdRows
	rotTotal := rotCols * rotRows

	switch {
	case rotTotal < stdTotal:
		rotated = true
	case rotTotal == stdTotal && rotCols < stdCols:
		rotated = true
	}

	if rotated {
		return stock.Width, stock.Length, true
	}
	return stock.Length, stock.Width, false
}

// cellCount returns how many cells of size cell are needed to span dim.
// Exact multiples do not gain a phantom cell from float rounding.
func cellCount(dim, cell float64) int {
	return int(math.Ceil(dim/cell - eps))
}

// Tile covers a panel of w x h with stock sheets and returns the tiling.
//
// Sheets are laid out column-major from the left edge; edge sheets are
// clipped to the remaining panel extent. Within a column needing more than
// one row, the undersized remainder row sits at the bottom (y=0) with
// full-height rows stacked above it, which fixes where the horizontal splice
// lines fall.
//
// Returns INVALID_INPUT for non-positive or oversized panels and
// CAPACITY_EXCEEDED when the grid needs more than the fixed per-panel sheet
// instance count.
func Tile(w, h float64, stock Stock, maxPanelDim float64) (Tiling, error) {
	if w <= 0 || h <= 0 {
		return Tiling{}, errors.New(errors.ErrCodeInvalidInput,
			"panel dimensions must be positive, got %.3f x %.3f", w, h)
	}
	if w > maxPanelDim || h > maxPanelDim {
		return Tiling{}, errors.New(errors.ErrCodeInvalidInput,
			"panel %.1f x %.1f exceeds the %.0f dimension limit", w, h, maxPanelDim)
	}
	if stock.Length <= 0 || stock.Width <= 0 {
		return Tiling{}, errors.New(errors.ErrCodeInvalidConfig,
			"stock dimensions must be positive, got %.1f x %.1f", stock.Length, stock.Width)
	}

	cellW, cellH, rotated := gridFor(w, h, stock)
	cols := cellCount(w, cellW)
	rows := cellCount(h, cellH)

	if cols*rows > crate.MaxSheetsPerPanel {
		return Tiling{}, errors.New(errors.ErrCodeCapacityExceeded,
			"panel %.1f x %.1f needs %d sheets, max is %d", w, h, cols*rows, crate.MaxSheetsPerPanel)
	}

	t := Tiling{
		Columns:     cols,
		Rows:        rows,
		CellWidth:   cellW,
		CellHeight:  cellH,
		PanelWidth:  w,
		PanelHeight: h,
		Rotated:     rotated,
	}

	heights := rowHeights(h, cellH, rows)
	x := 0.0
	for c := 0; c < cols; c++ {
		sw := math.Min(cellW, w-x)
		if sw <= eps {
			break
		}
		y := 0.0
		for _, sh := range heights {
			t.Sheets = append(t.Sheets, crate.Sheet{X: x, Y: y, Width: sw, Height: sh})
			y += sh
		}
		x += sw
	}
	return t, nil
}

// rowHeights returns the per-row sheet heights from the bottom of the panel
// up. The remainder row, when one exists, is first (y=0).
func rowHeights(h, cellH float64, rows int) []float64 {
	if rows <= 1 {
		return []float64{h}
	}
	heights := make([]float64, 0, rows)
	rem := h - float64(rows-1)*cellH
	if rem > eps {
		heights = append(heights, rem)
	} else {
		// Exact multiple: no remainder row, all rows full height.
		heights = append(heights, cellH)
	}
	for len(heights) < rows {
		heights = append(heights, cellH)
	}
	return heights
}

// VerticalSplices returns the x positions of the interior column seams,
// left to right. A single-column tiling has none.
func (t Tiling) VerticalSplices() []float64 {
	if t.Columns <= 1 {
		return nil
	}
	splices := make([]float64, 0, t.Columns-1)
	for c := 1; c < t.Columns; c++ {
		splices = append(splices, float64(c)*t.CellWidth)
	}
	return splices
}

// HorizontalSplices returns the y positions of the interior row seams,
// bottom to top. With the remainder row at the bottom, the lowest seam sits
// at the remainder height.
func (t Tiling) HorizontalSplices() []float64 {
	if t.Rows <= 1 {
		return nil
	}
	splices := make([]float64, 0, t.Rows-1)
	y := 0.0
	heights := rowHeights(t.PanelHeight, t.CellHeight, t.Rows)
	for _, sh := range heights[:len(heights)-1] {
		y += sh
		splices = append(splices, y)
	}
	return splices
}

// CoveredArea returns the summed sheet area; it equals the panel area for
// every valid tiling.
func (t Tiling) CoveredArea() float64 {
	var sum float64
	for _, s := range t.Sheets {
		sum += s.Area()
	}
	return sum
}
