// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"errors"
	"fmt"
)

const (
	// TargetAnki21 builds against the PyQt5 toolchain.
	TargetAnki21 Target = "anki21"
	// TargetAnki20 builds against the legacy PyQt4 toolchain.
	TargetAnki20 Target = "anki20"
)

// ErrUnknownTarget is the sentinel error wrapped by UnknownTargetError.
var ErrUnknownTarget = errors.New("unknown build target")

type (
	// Target selects which major version of the Qt compiler toolchain
	// drives the build.
	Target string

	// UnknownTargetError is returned when a Target has no tool version
	// mapping. It wraps ErrUnknownTarget for errors.Is compatibility.
	UnknownTargetError struct {
		Target Target
	}

	// Category describes one kind of compiled asset. The set of categories
	// is fixed at process start; Category values are never mutated.
	Category struct {
		// Name identifies the category ("forms" or "resources").
		Name string
		// Pattern is the non-recursive input glob ("*.ui", "*.qrc").
		Pattern string
		// Tool is the compiler base name; the target's tool version is
		// appended to form the executable name (pyuic + 5 = pyuic5).
		Tool string
		// Suffix is appended to each input file stem to form the
		// compiled module name.
		Suffix string
		// PostBuild is applied to each freshly compiled output file.
		// Nil means no post-processing. Bound statically here so no
		// name-based lookup happens at build time.
		PostBuild func(path string) error
	}
)

// toolVersions maps each supported target to the version digit appended to
// compiler tool names.
var toolVersions = map[Target]string{
	TargetAnki21: "5",
	TargetAnki20: "4",
}

// Error returns the error message for UnknownTargetError.
func (e *UnknownTargetError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTarget, e.Target)
}

// Unwrap returns ErrUnknownTarget so callers can match with errors.Is.
func (e *UnknownTargetError) Unwrap() error {
	return ErrUnknownTarget
}

// IsValid reports whether the target has a tool version mapping.
func (t Target) IsValid() bool {
	_, ok := toolVersions[t]
	return ok
}

// ToolVersion returns the compiler version digit for the target.
func (t Target) ToolVersion() (string, error) {
	version, ok := toolVersions[t]
	if !ok {
		return "", &UnknownTargetError{Target: t}
	}
	return version, nil
}

// Categories returns the fixed build order: forms first, then resources.
func Categories() []Category {
	return []Category{
		{
			Name:      "forms",
			Pattern:   "*.ui",
			Tool:      "pyuic",
			Suffix:    "",
			PostBuild: MungeForm,
		},
		{
			Name:    "resources",
			Pattern: "*.qrc",
			Tool:    "pyrcc",
			Suffix:  "_rc",
		},
	}
}
