// Package cli implements the badgepress command-line interface.
//
// This package provides commands for generating badge PDFs from a roster
// spreadsheet, inspecting the roster before printing, and serving a live
// preview in the browser. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Render the badge sheets and write PDF output
//   - inspect: Show who gets a badge and what it will say, without rendering
//   - preview: Serve the generated sheets over HTTP for browser review
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/llennemann/badgepress/pkg/buildinfo"
	"github.com/llennemann/badgepress/pkg/config"
	"github.com/llennemann/badgepress/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "badgepress"

	// defaultConfigPath is the config file used when none is given.
	defaultConfigPath = "badgepress.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

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
	root := &cobra.Command{
		Use:          "badgepress",
		Short:        "Badgepress turns a conference roster into printable badge sheets",
		Long:         `Badgepress reads attendee registrations from a spreadsheet export and lays them out as print-ready badge PDFs, six to a letter sheet, with fitted names, pronouns, ribbons, and QR codes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Config Helpers
// =============================================================================

// configPath resolves the config file from positional args.
func configPath(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return defaultConfigPath
}

// loadConfig loads and validates the config file for a command.
func loadConfig(args []string) (*config.Config, error) {
	return config.Load(configPath(args))
}
