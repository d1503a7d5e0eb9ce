// Package cli implements the twicurl command-line interface.
//
// twicurl renders TwicPics URLs from the shell: a source, a list of
// transformation steps and optionally a named preset from a TOML file.
// The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - build: Render a URL for a source
//   - presets: List, show and locate preset definitions
//   - completion: Generate shell completion scripts
//
// # Configuration
//
//   - TWICURL_PRESETS: preset file (default ~/.config/twicurl/presets.toml)
//   - TWICURL_AUTH: authentication token applied to every built URL
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/twicurl/pkg/buildinfo"
)

// appName is the application name used for directories and display.
const appName = "twicurl"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	config Config
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
// Configuration is read from the environment before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "twicurl builds TwicPics transformation URLs",
		Long:         `twicurl builds TwicPics URLs from a source, a list of transformations and reusable presets.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			c.config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.presetsCommand())
	root.AddCommand(c.completionCommand())

	return root
}
