// Package pipeline provides the core crate generation pipeline for AutoCrate.
//
// This package implements the complete validate → reconcile → serialize
// pipeline that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Validate: Check parameters and load engineering constants
//  2. Compute: Run the dimension reconciliation engine to a fixed point
//  3. Serialize: Generate output artifacts (NX expressions, JSON, SVG, PDF, XLSX)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(nil, logger)
//	opts := pipeline.Options{
//	    Params:  params,
//	    Formats: []string{"exp", "pdf"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	exp := result.Artifacts["exp"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/config"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/crate/reconcile"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/errors"
)

// =============================================================================
// Formats
// =============================================================================

// Format constants for output artifacts.
const (
	FormatExp  = "exp"  // NX expression file
	FormatJSON = "json" // full layout result
	FormatSVG  = "svg"  // per-panel drawings, keyed "svg-<panel>"
	FormatPDF  = "pdf"  // printable cut sheet
	FormatXLSX = "xlsx" // BOM workbook
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatExp:  true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatXLSX: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: exp, json, svg, pdf, xlsx)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Params is the crate computation input.
	Params crate.Params `json:"params"`

	// ConfigPath points at an optional TOML constants file. Ignored when
	// Constants is set directly.
	ConfigPath string `json:"config_path,omitempty"`

	// Formats selects the artifacts to generate. Defaults to ["exp"].
	Formats []string `json:"formats,omitempty"`

	// Report header fields for PDF output.
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`

	// Labels adds dimension labels to SVG drawings.
	Labels bool `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Constants *config.Constants `json:"-"`
	Logger    *log.Logger       `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatExp}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if err := o.Params.Validate(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Wants reports whether the given format was requested.
func (o *Options) Wants(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Crate is the computed layout.
	Crate *reconcile.Result

	// Artifacts contains serialized outputs. Scalar formats key by format
	// name; SVG drawings key per panel as "svg-front", "svg-top", etc.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Passes      int
	ComputeTime time.Duration
	RenderTime  time.Duration
}
