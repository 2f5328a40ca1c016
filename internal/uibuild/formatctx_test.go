// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"testing"
	"time"

	"aab-cli/internal/config"
)

func TestCopyrightYears(t *testing.T) {
	t.Parallel()

	now := time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start int
		want  string
	}{
		{"range from earlier start", 2016, "2016-2019"},
		{"start equals current year", 2019, "2019"},
		{"unset start", 0, "2019"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			addon := &config.Addon{CopyrightStart: tt.start}
			if got := copyrightYears(addon, now); got != tt.want {
				t.Errorf("copyrightYears() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatContext(t *testing.T) {
	t.Parallel()

	addon := &config.Addon{
		DisplayName:    "Example Add-on",
		Author:         "Jane Doe",
		Contact:        "jane@example.com",
		CopyrightStart: 2016,
	}
	now := time.Date(2019, time.January, 2, 0, 0, 0, 0, time.UTC)

	got := formatContext(addon, ProgramInfo{Title: "aab", Version: "1.0.0"}, now)

	want := map[string]string{
		"display_name": "Example Add-on",
		"author":       "Jane Doe",
		"contact":      "jane@example.com",
		"title":        "aab",
		"version":      "1.0.0",
		"years":        "2016-2019",
	}
	for key, value := range want {
		if got[key] != value {
			t.Errorf("formatContext()[%q] = %q, want %q", key, got[key], value)
		}
	}
}
