package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/config"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/nx"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/observability"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/render"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/report"
)

// Runner encapsulates pipeline execution. It is stateless except for the
// constants and logger - it doesn't store pipeline results. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Consts config.Constants
	Logger *log.Logger
}

// NewRunner creates a runner with the given engineering constants.
// If consts is nil, compiled-in defaults are used.
func NewRunner(consts *config.Constants, logger *log.Logger) *Runner {
	c := config.Default()
	if consts != nil {
		c = *consts
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Consts: c, Logger: logger}
}

// Execute runs the complete validate → reconcile → serialize pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	computeStart := time.Now()
	observability.Pipeline().OnComputeStart(ctx)
	res, err := r.Compute(ctx, opts)
	observability.Pipeline().OnComputeComplete(ctx, passesOf(res), time.Since(computeStart), err)
	if err != nil {
		return nil, err
	}
	result.Crate = res
	result.Stats.ComputeTime = time.Since(computeStart)
	result.Stats.Passes = res.Passes

	opts.Logger.Info("computed crate layout",
		"width", res.Envelope.Width,
		"length", res.Envelope.Length,
		"height", res.Envelope.Height,
		"passes", res.Passes,
		"duration", result.Stats.ComputeTime)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.RenderArtifacts(res, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("serialized outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Compute runs validation and the reconciliation engine, honoring ctx
// cancellation before the engine starts.
func (r *Runner) Compute(ctx context.Context, opts Options) (*reconcile.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "pipeline canceled")
	}
	r.applyLogger(&opts)

	consts, err := r.loadConstants(opts)
	if err != nil {
		return nil, err
	}
	return reconcile.Run(opts.Params, consts, opts.Logger)
}

// RenderArtifacts serializes a computed layout into every requested format.
func (r *Runner) RenderArtifacts(res *reconcile.Result, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		switch format {
		case FormatExp:
			artifacts[FormatExp] = nx.Marshal(res)

		case FormatJSON:
			data, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshaling result")
			}
			artifacts[FormatJSON] = data

		case FormatSVG:
			var svgOpts []render.SVGOption
			if opts.Labels {
				svgOpts = append(svgOpts, render.WithLabels())
			}
			for i := range res.Panels {
				p := &res.Panels[i]
				key := fmt.Sprintf("%s-%s", FormatSVG, p.Name)
				artifacts[key] = render.PanelSVG(p, svgOpts...)
			}

		case FormatPDF:
			var buf bytes.Buffer
			err := report.WritePDF(&buf, res, report.PDFOptions{
				Title:  opts.Title,
				Author: opts.Author,
			})
			if err != nil {
				return nil, err
			}
			artifacts[FormatPDF] = buf.Bytes()

		case FormatXLSX:
			var buf bytes.Buffer
			if err := report.WriteXLSX(&buf, res); err != nil {
				return nil, err
			}
			artifacts[FormatXLSX] = buf.Bytes()
		}
	}
	return artifacts, nil
}

// loadConstants resolves the engineering constants for a run: explicit
// Constants win, then a TOML file at ConfigPath, then the runner's own.
func (r *Runner) loadConstants(opts Options) (config.Constants, error) {
	if opts.Constants != nil {
		c := *opts.Constants
		if err := c.Validate(); err != nil {
			return config.Constants{}, err
		}
		return c, nil
	}
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return r.Consts, nil
}

func passesOf(res *reconcile.Result) int {
	if res == nil {
		return 0
	}
	return res.Passes
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
