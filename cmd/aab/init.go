// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"aab-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a starter addon.json
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Create a starter addon.json in the current directory",
		Long: `Create a starter addon.json in the current directory.

The generated file carries placeholder metadata; edit it before the
first build so generated file headers carry the right attribution.`,
		RunE: runInit,
	}
)

// starterAddonJSON is the scaffold written by `aab init`. Values satisfy
// the schema so a build works immediately after editing nothing.
const starterAddonJSON = `{
    "display_name": "My Add-on",
    "module_name": "my_addon",
    "author": "Your Name",
    "contact": "you@example.com",
    "targets": ["anki21"]
}
`

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing addon.json")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := addonFile
	if filename == "" {
		filename = config.AddonFileName
	}

	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	if err := os.WriteFile(filename, []byte(starterAddonJSON), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit addon.json with your add-on's metadata")
	fmt.Println("  2. Place Qt Designer files under dist/designer/")
	fmt.Println("  3. Run 'aab ui' to compile them")

	return nil
}
