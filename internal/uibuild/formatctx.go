// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"fmt"
	"time"

	"aab-cli/internal/config"
)

// ProgramInfo identifies the generator stamped into file headers. Version
// normally comes from the CLI layer's ldflags-injected value.
type ProgramInfo struct {
	Title   string
	Version string
}

// formatContext assembles the substitution values for generated file
// templates. Computed once per Builder; read-only thereafter.
func formatContext(addon *config.Addon, program ProgramInfo, now time.Time) map[string]string {
	return map[string]string{
		"display_name": addon.DisplayName,
		"author":       addon.Author,
		"contact":      addon.Contact,
		"title":        program.Title,
		"version":      program.Version,
		"years":        copyrightYears(addon, now),
	}
}

// copyrightYears formats the copyright span: "start-now" when a start year
// is configured and differs from the current year, otherwise just "now".
func copyrightYears(addon *config.Addon, now time.Time) string {
	year := now.Year()
	if addon.HasCopyrightStart() && addon.CopyrightStart != year {
		return fmt.Sprintf("%d-%d", addon.CopyrightStart, year)
	}
	return fmt.Sprintf("%d", year)
}
