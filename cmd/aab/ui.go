// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"aab-cli/internal/config"
	"aab-cli/internal/issue"
	"aab-cli/internal/uibuild"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	uiDist string

	// uiCmd compiles Qt designer files and resources for one build target
	uiCmd = &cobra.Command{
		Use:   "ui [target]",
		Short: "Compile Qt forms and resources for a build target",
		Long: `Compile the add-on's Qt assets for a build target.

Forms (designer/*.ui) are compiled with pyuic and resources
(resources/*.qrc) with pyrcc; the tool's major version follows the
target (anki21 uses PyQt5, anki20 uses PyQt4). Compiled modules land in
src/<module_name>/gui/<category>/<target>/ inside the distribution
directory, together with a generated __init__.py aggregator.

Categories whose input folder or compiler tool is missing are skipped
with a warning.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runUI,
	}
)

func init() {
	uiCmd.Flags().StringVarP(&uiDist, "dist", "d", uibuild.DefaultRoot, "distribution directory to build in")
}

func runUI(cmd *cobra.Command, args []string) error {
	target := uibuild.TargetAnki21
	if len(args) > 0 {
		target = uibuild.Target(args[0])
	}
	if !target.IsValid() {
		return issue.NewErrorContext().
			WithOperation("select build target").
			WithResource(string(target)).
			WithSuggestion("Supported targets: " + strings.Join(supportedTargets(), ", ")).
			Wrap(&uibuild.UnknownTargetError{Target: target}).
			BuildError()
	}

	addon, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		AddonFilePath: addonFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	builder := uibuild.New(uibuild.Options{
		Root:    uiDist,
		Addon:   addon,
		Program: uibuild.ProgramInfo{Title: config.AppName, Version: Version},
		Logger:  newUILogger(),
	})

	if err := builder.Build(cmd.Context(), target); err != nil {
		return err
	}

	fmt.Printf("%s UI build complete for target %s\n", SuccessStyle.Render("✓"), target)

	return nil
}

// newUILogger creates the build logger, honoring the global verbose flag.
func newUILogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ui"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// supportedTargets lists the valid target identifiers in build order.
func supportedTargets() []string {
	return []string{string(uibuild.TargetAnki21), string(uibuild.TargetAnki20)}
}
