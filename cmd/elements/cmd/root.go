// Package cmd implements the elements CLI commands.
//
// The root command configures logging and the framework error handler,
// then dispatches to subcommands (render, theme, version).
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/go-drift/elements/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

type globalFlags struct {
	verbose bool
	project string
	noColor bool
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "elements",
		Short: "Render element compositions and manage themes",
		Long: `elements renders the widget gallery headlessly and inspects theme
files.

Project settings are read from elements.yaml next to the project's go.mod.`,
		Example: `  # Render the gallery to <app>.png
  elements render

  # Render with a theme file at twice the resolution
  elements render --theme light.toml --scale 2 -o gallery.png

  # Print the default theme as TOML
  elements theme dump --format toml`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd, flags)
		},
	}

	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flags.project, "project", "", "Project directory (default: nearest directory with go.mod)")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored log output")

	root.AddCommand(renderCmd(&flags), themeCmd(), versionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// setupLogging installs a tint handler as the default logger and routes
// framework errors to it.
func setupLogging(cmd *cobra.Command, flags globalFlags) {
	level := slog.LevelInfo
	if flags.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    flags.noColor || os.Getenv("NO_COLOR") != "",
	}))
	slog.SetDefault(logger)
	errors.SetHandler(&errors.LogHandler{Logger: logger, Verbose: flags.verbose})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "elements version %s (built %s)\n", Version, BuildTime)
		},
	}
}
