// Package cli implements the autocrate command-line interface.
//
// This package provides commands for computing crate layouts from product
// dimensions, exporting NX expression files, generating bills of materials,
// rendering panel drawings, and serving the HTTP API. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Compute a crate layout and write the NX expression file
//   - bom: Print or export the bill of materials
//   - render: Write SVG panel drawings
//   - serve: Run the HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/buildinfo"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/config"
	"github.com/Shivam-Bhardwaj/AutoCrate-V12-sub000/pkg/pipeline"
)

// appName is the application name used for display.
const appName = "autocrate"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "AutoCrate computes shipping crate panel layouts",
		Long:         `AutoCrate sizes a structural shipping crate around a product: it reconciles panel dimensions to a fixed point, tiles plywood, places cleats and skids, and exports the result as an NX expression file, drawings, or a bill of materials.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.bomCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use, loading engineering
// constants from configPath when given.
func (c *CLI) newRunner(configPath string) (*pipeline.Runner, error) {
	consts := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		consts = loaded
	}
	return pipeline.NewRunner(&consts, c.Logger), nil
}
