// Package floorboard fills the crate base with boards from a lumber catalog.
//
// The fill is greedy, largest width first. Whatever span remains after the
// standard boards becomes either a narrow custom-ripped board or a small
// deliberate gap, and either one sits at the middle of the board sequence
// rather than at the end so the base stays visually and structurally
// balanced.
package floorboard

import (
	"sort"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

const eps = 1e-6

// Plan lays out floorboards across usableSpan starting at startOffset.
//
// Standard boards are consumed greedily from the catalog, largest first.
// The remainder becomes a custom board when forceCustom is set, when it is
// at least minCustom wide, or when leaving it open would exceed maxGap;
// otherwise it is recorded as a middle gap. The custom board (or the gap)
// is inserted at the midpoint index ceil(n/2) of the board sequence.
//
// Conservation holds for every valid result:
// sum(board widths) + middle gap == usableSpan.
func Plan(usableSpan, startOffset float64, widths []float64, minCustom, maxGap float64, forceCustom bool) (crate.FloorboardLayout, error) {
	if usableSpan <= 0 {
		return crate.FloorboardLayout{}, errors.New(errors.ErrCodeInvalidInput,
			"usable span must be positive, got %v", usableSpan)
	}
	if len(widths) == 0 {
		return crate.FloorboardLayout{}, errors.New(errors.ErrCodeInvalidInput,
			"floorboard width catalog is empty")
	}

	catalog := append([]float64(nil), widths...)
	sort.Sort(sort.Reverse(sort.Float64Slice(catalog)))

	var standard []float64
	remaining := usableSpan
	for _, w := range catalog {
		if w <= 0 {
			return crate.FloorboardLayout{}, errors.New(errors.ErrCodeInvalidInput,
				"floorboard widths must be positive, got %v", w)
		}
		for remaining >= w-eps {
			standard = append(standard, w)
			remaining -= w
		}
	}
	if remaining < eps {
		remaining = 0
	}

	layout := crate.FloorboardLayout{}
	if remaining > 0 {
		useCustom := forceCustom || remaining >= minCustom-eps || remaining > maxGap+eps
		if useCustom {
			layout.CustomWidth = remaining
		} else {
			layout.MiddleGap = remaining
		}
	}

	boardCount := len(standard)
	if layout.CustomWidth > 0 {
		boardCount++
	}
	if boardCount > crate.MaxFloorboards {
		return crate.FloorboardLayout{}, errors.New(errors.ErrCodeCapacityExceeded,
			"span %v needs %d floorboards, max is %d", usableSpan, boardCount, crate.MaxFloorboards)
	}

	mid := (len(standard) + 1) / 2 // ceil(n/2)

	boards := make([]crate.Floorboard, 0, boardCount)
	for _, w := range standard[:mid] {
		boards = append(boards, crate.Floorboard{Width: w})
	}
	if layout.CustomWidth > 0 {
		boards = append(boards, crate.Floorboard{Width: layout.CustomWidth, Custom: true})
	}
	for _, w := range standard[mid:] {
		boards = append(boards, crate.Floorboard{Width: w})
	}

	y := startOffset
	for i := range boards {
		if layout.MiddleGap > 0 && i == mid {
			y += layout.MiddleGap
		}
		boards[i].Y = y
		y += boards[i].Width
	}
	layout.Boards = boards
	return layout, nil
}

// Coverage returns the span the layout accounts for: board widths plus the
// middle gap. It equals the planned usable span for every valid layout.
func Coverage(l crate.FloorboardLayout) float64 {
	sum := l.MiddleGap
	for _, b := range l.Boards {
		sum += b.Width
	}
	return sum
}
