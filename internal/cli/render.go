package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/pipeline"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	configPath string
	outDir     string
	labels     bool
}

// renderCommand creates the render command: write SVG panel drawings.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags paramFlags
		opts  renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write SVG drawings of every crate panel",
		Long: `Compute the crate layout and write one SVG drawing per panel.

Examples:
  autocrate render --params crate.toml -o drawings/
  autocrate render --length 90 --width 45 --height 30 --weight 1200 --labels`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, &flags, &opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&opts.configPath, "config", "", "engineering constants TOML file")
	cmd.Flags().StringVarP(&opts.outDir, "output", "o", ".", "output directory for drawings")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "add cleat centerline labels")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, flags *paramFlags, opts *renderOpts) error {
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

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating %s", opts.outDir)
	}

	var svgOpts []render.SVGOption
	if opts.labels {
		svgOpts = append(svgOpts, render.WithLabels())
	}

	printSuccess("Rendered %d panels", len(res.Panels))
	for i := range res.Panels {
		p := &res.Panels[i]
		path := filepath.Join(opts.outDir, string(p.Name)+".svg")
		if err := os.WriteFile(path, render.PanelSVG(p, svgOpts...), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
		}
		printFile(path)
	}
	return nil
}
