// Package cli implements the popper command-line interface.
//
// The CLI exposes the placement resolver for scripted use (resolve) and
// an interactive terminal playground for exploring placements
// (playground). Verbose logging is available on every command via
// --verbose (-v) using the charmbracelet/log library.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fxui/popper/pkg/buildinfo"
)

// appName is the application name used for display.
const appName = "popper"

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
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Popper positions floating UI elements relative to an anchor",
		Long:         `Popper is a positioning engine for floating elements (tooltips, dropdowns, popovers) anchored to a reference element, with twelve placement variants and viewport clipping.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.playgroundCommand())
	root.AddCommand(c.completionCommand())

	return root
}
