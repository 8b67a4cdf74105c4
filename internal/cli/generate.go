package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output     string // output file path
	formats    string // comma-separated extra formats
	configPath string // engineering constants TOML
	yes        bool   // skip the interactive review
}

// generateCommand creates the generate command: compute a crate layout and
// write the NX expression file plus any extra formats.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags paramFlags
		opts  generateOpts
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compute a crate layout and write the NX expression file",
		Long: `Compute a complete crate layout around the product and write the result.

The product dimensions come from flags or a TOML parameters file. The crate
envelope is reconciled to a fixed point, panels are tiled and cleated, and
the layout is written as an NX expression file by default.

Examples:
  autocrate generate --length 90 --width 45 --height 30 --weight 1200
  autocrate generate --params crate.toml -o out/crate.exp
  autocrate generate --params crate.toml --formats exp,pdf,xlsx --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, &flags, &opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "crate.exp", "output file for the expression format")
	cmd.Flags().StringVar(&opts.formats, "formats", pipeline.FormatExp, "comma-separated output formats (exp,json,svg,pdf,xlsx)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "engineering constants TOML file")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "skip the interactive layout review")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, flags *paramFlags, opts *generateOpts) error {
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

	formats := strings.Split(opts.formats, ",")
	pipeOpts := pipeline.Options{
		Params:  params,
		Formats: formats,
		Logger:  logger,
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Reconciling crate dimensions...")
	spinner.Start()

	res, err := runner.Compute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Computed layout in %d passes", res.Passes))

	if !opts.yes {
		accepted, err := confirmLayout(res)
		if err != nil {
			return err
		}
		if !accepted {
			printWarning("layout rejected, nothing written")
			return nil
		}
	}

	artifacts, err := runner.RenderArtifacts(res, pipeOpts)
	if err != nil {
		return err
	}

	printSuccess("Crate layout generated")
	printCrateSummary(res)
	fmt.Println()

	if err := writeArtifacts(artifacts, opts.output); err != nil {
		return err
	}

	if !pipeOpts.Wants(pipeline.FormatPDF) {
		printNextStep("Cut sheet", appName+" bom --params <file> --pdf crate.pdf")
	}
	return nil
}

// writeArtifacts writes each artifact next to the expression output path.
// The exp artifact keeps the exact -o path; everything else derives its
// name from it.
func writeArtifacts(artifacts map[string][]byte, expPath string) error {
	base := strings.TrimSuffix(expPath, filepath.Ext(expPath))
	for key, data := range artifacts {
		path := expPath
		if key != pipeline.FormatExp {
			path = base + "." + strings.TrimPrefix(key, "svg-") // svg-front -> base.front
			if strings.HasPrefix(key, "svg-") {
				path += ".svg"
			}
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", dir)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
		}
		printFile(path)
	}
	return nil
}
