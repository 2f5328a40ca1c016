// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	"aab-cli/internal/config"

	"github.com/spf13/cobra"
)

// configCmd is the `aab config` command tree.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect add-on metadata",
	Long: `Inspect the add-on metadata used for builds.

Metadata is read from addon.json at the project root (or the file given
via --addon-json).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show resolved add-on metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showAddonMetadata(cmd)
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the metadata file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := addonFile
			if path == "" {
				path = config.AddonFileName
			}
			fmt.Println(path)
			return nil
		},
	})
}

func showAddonMetadata(cmd *cobra.Command) error {
	addon, err := config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		AddonFilePath: addonFile,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
		return &ExitError{Code: 1, Err: err}
	}

	fmt.Println(TitleStyle.Render("Add-on metadata"))
	printField("display_name", addon.DisplayName)
	printField("module_name", addon.ModuleName)
	printField("repo_name", addon.RepoName)
	printField("author", addon.Author)
	printField("contact", addon.Contact)
	printField("homepage", addon.Homepage)
	if addon.HasCopyrightStart() {
		printField("copyright_start", fmt.Sprintf("%d", addon.CopyrightStart))
	}
	if len(addon.Targets) > 0 {
		printField("targets", strings.Join(addon.Targets, ", "))
	}

	return nil
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Printf("  %s %s\n", SubtitleStyle.Render(name+":"), value)
}
