package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

const (
	sheetSummary = "Summary"
	sheetBOM     = "Bill of Materials"
	sheetPanels  = "Panels"
)

// WriteXLSX emits the crate layout as a three-sheet workbook: a summary of
// the run, the aggregated bill of materials, and a per-panel component
// breakdown. Column layouts are fixed so the shop's downstream macros keep
// working.
func WriteXLSX(w io.Writer, res *reconcile.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSummarySheet(f, res); err != nil {
		return err
	}
	if err := writeBOMSheet(f, res); err != nil {
		return err
	}
	if err := writePanelsSheet(f, res); err != nil {
		return err
	}

	// NewFile seeds a default "Sheet1"; drop it once real sheets exist.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "removing default sheet")
	}
	if idx, err := f.GetSheetIndex(sheetSummary); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing workbook")
	}
	return nil
}

func writeSummarySheet(f *excelize.File, res *reconcile.Result) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating summary sheet")
	}
	rows := [][]interface{}{
		{"Overall Width (in)", res.Envelope.Width},
		{"Overall Length (in)", res.Envelope.Length},
		{"Overall Height (in)", res.Envelope.Height},
		{"Product Weight (lb)", res.Params.ProductWeight},
		{"Skid Size", res.Skids.Callout},
		{"Skid Count", res.Skids.Count},
		{"Reconciliation Passes", res.Passes},
		{"Width Growth (in)", res.GrowthWidth},
		{"Length Growth (in)", res.GrowthLength},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &row); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing summary row")
		}
	}
	return nil
}

func writeBOMSheet(f *excelize.File, res *reconcile.Result) error {
	if _, err := f.NewSheet(sheetBOM); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating bom sheet")
	}
	header := []interface{}{"Material", "Used For", "Width (in)", "Length (in)", "Qty"}
	if err := f.SetSheetRow(sheetBOM, "A1", &header); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing bom header")
	}
	bom := Build(res)
	for i, line := range bom.Lines {
		row := []interface{}{line.Material, line.Detail, line.Width, line.Length, line.Qty}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetBOM, cell, &row); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing bom row")
		}
	}
	return nil
}

func writePanelsSheet(f *excelize.File, res *reconcile.Result) error {
	if _, err := f.NewSheet(sheetPanels); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating panels sheet")
	}
	header := []interface{}{"Panel", "Width (in)", "Height (in)", "Sheets", "Vertical Cleats", "Sections"}
	if err := f.SetSheetRow(sheetPanels, "A1", &header); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing panels header")
	}
	for i := range res.Panels {
		p := &res.Panels[i]
		row := []interface{}{
			string(p.Name),
			p.Spec.Width,
			p.Spec.Height,
			len(p.Sheets),
			len(p.Verticals),
			len(p.Sections),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheetPanels, cell, &row); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing panel row")
		}
	}
	return nil
}
