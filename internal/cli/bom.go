package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/pipeline"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/report"
)

// bomOpts holds the command-line flags for the bom command.
type bomOpts struct {
	configPath string
	pdfPath    string
	xlsxPath   string
}

// bomCommand creates the bom command: print the bill of materials and
// optionally export it as PDF or XLSX.
func (c *CLI) bomCommand() *cobra.Command {
	var (
		flags paramFlags
		opts  bomOpts
	)

	cmd := &cobra.Command{
		Use:   "bom",
		Short: "Print the crate bill of materials",
		Long: `Compute the crate layout and print its bill of materials as a table.

Examples:
  autocrate bom --params crate.toml
  autocrate bom --params crate.toml --pdf cutsheet.pdf --xlsx bom.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBOM(cmd, &flags, &opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "engineering constants TOML file")
	cmd.Flags().StringVar(&opts.pdfPath, "pdf", "", "also write a PDF cut sheet to this path")
	cmd.Flags().StringVar(&opts.xlsxPath, "xlsx", "", "also write an XLSX workbook to this path")

	return cmd
}

func (c *CLI) runBOM(cmd *cobra.Command, flags *paramFlags, opts *bomOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	params, err := flags.resolve(cmd)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(opts.configPath)
	if err != nil {
		return err
	}

	res, err := runner.Compute(ctx, pipeline.Options{Params: params, Logger: logger})
	if err != nil {
		return err
	}

	bom := report.Build(res)
	printBOMTable(bom)

	if opts.pdfPath != "" {
		f, err := os.Create(opts.pdfPath)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", opts.pdfPath)
		}
		defer f.Close()
		if err := report.WritePDF(f, res, report.PDFOptions{}); err != nil {
			return err
		}
		printFile(opts.pdfPath)
	}
	if opts.xlsxPath != "" {
		f, err := os.Create(opts.xlsxPath)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", opts.xlsxPath)
		}
		defer f.Close()
		if err := report.WriteXLSX(f, res); err != nil {
			return err
		}
		printFile(opts.xlsxPath)
	}
	return nil
}

// printBOMTable renders the bill of materials as a bordered table.
func printBOMTable(bom *report.BOM) {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, len(bom.Lines))
	for _, line := range bom.Lines {
		rows = append(rows, []string{
			line.Material,
			line.Detail,
			line.CutSize(),
			fmt.Sprintf("%d", line.Qty),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Material", "Used For", "Cut Size (in)", "Qty").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	fmt.Println(t.Render())
	fmt.Println(StyleDim.Render(fmt.Sprintf("  plywood %.1f sq ft · cleat stock %.1f lin ft",
		bom.SheetArea/144, bom.CleatLength/12)))
}
