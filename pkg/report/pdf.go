package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// PDFOptions customizes the cut sheet header.
type PDFOptions struct {
	Title  string
	Author string

	// Now supplies the report date; defaults to time.Now. Tests pin it.
	Now func() time.Time
}

// WritePDF renders the crate layout as a printable cut sheet: header,
// envelope summary, then the bill of materials as a table.
func WritePDF(w io.Writer, res *reconcile.Result, opts PDFOptions) error {
	if opts.Title == "" {
		opts.Title = "Crate Cut Sheet"
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, opts.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if opts.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Prepared by: %s", opts.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Overall: %.2f W x %.2f L x %.2f H in",
		res.Envelope.Width, res.Envelope.Length, res.Envelope.Height))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Product weight: %.0f lb, skids: %d x %s",
		res.Params.ProductWeight, res.Skids.Count, res.Skids.Callout))
	pdf.Ln(10)

	bom := Build(res)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{28, 52, 40, 40, 15}
	headers := []string{"Material", "Used For", "Width (in)", "Length (in)", "Qty"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range bom.Lines {
		cells := []string{
			line.Material,
			line.Detail,
			fmt.Sprintf("%.2f", line.Width),
			fmt.Sprintf("%.2f", line.Length),
			fmt.Sprintf("%d", line.Qty),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, fmt.Sprintf("Plywood area: %.1f sq ft, cleat stock: %.1f lin ft",
		bom.SheetArea/144, bom.CleatLength/12))

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing pdf")
	}
	return nil
}
