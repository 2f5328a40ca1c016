// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField is the sentinel error wrapped by MissingFieldError.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidModuleName is returned when module_name is not a valid
	// Python package identifier.
	ErrInvalidModuleName = errors.New("invalid module name")
)

type (
	// Addon holds the add-on build metadata from addon.json. Field names
	// follow the on-disk keys via mapstructure tags.
	Addon struct {
		DisplayName    string   `mapstructure:"display_name"`
		ModuleName     string   `mapstructure:"module_name"`
		RepoName       string   `mapstructure:"repo_name"`
		Author         string   `mapstructure:"author"`
		Contact        string   `mapstructure:"contact"`
		Homepage       string   `mapstructure:"homepage"`
		CopyrightStart int      `mapstructure:"copyright_start"`
		Targets        []string `mapstructure:"targets"`
	}

	// MissingFieldError is returned when a required addon.json field is
	// absent or empty. It wraps ErrMissingField for errors.Is compatibility.
	MissingFieldError struct {
		Field string
	}
)

// Error returns the error message for MissingFieldError.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Unwrap returns ErrMissingField so callers can match with errors.Is.
func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Validate checks the invariants that the CUE schema cannot see once values
// have passed through Viper defaults (required fields present and non-blank).
func (a *Addon) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"display_name", a.DisplayName},
		{"module_name", a.ModuleName},
		{"author", a.Author},
		{"contact", a.Contact},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// HasCopyrightStart reports whether a copyright start year is configured.
// A zero value means "not set", never "year zero".
func (a *Addon) HasCopyrightStart() bool {
	return a.CopyrightStart != 0
}
