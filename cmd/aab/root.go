// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"aab-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// addonFile allows specifying a custom add-on metadata file
	addonFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "aab",
		Short: "A build helper for Anki add-ons",
		Long: TitleStyle.Render("aab") + SubtitleStyle.Render(" - A build helper for Anki add-ons") + `

aab compiles the Qt assets of an add-on project into importable Python
modules: Qt Designer forms (designer/*.ui) through pyuic and resource
bundles (resources/*.qrc) through pyrcc, one output tree per build target.
Every output directory gets a generated __init__.py that re-exports the
compiled modules.

Add-on metadata (name, author, copyright) is read from addon.json at the
project root and stamped into the generated files.

` + SubtitleStyle.Render("Examples:") + `
  aab ui                    Build UI assets for the default target (anki21)
  aab ui anki20             Build UI assets for the legacy toolchain
  aab init                  Create a starter addon.json
  aab config show           Show the resolved add-on metadata`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&addonFile, "addon-json", "", "add-on metadata file (default ./addon.json)")

	// Add subcommands
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay renders an error for terminal output, expanding
// actionable errors with their suggestions.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}
