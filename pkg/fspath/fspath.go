// SPDX-License-Identifier: MPL-2.0

// Package fspath provides small wrappers around path/filepath used for
// human-readable path display and for deriving output file names. Generated
// artifacts embed the paths they were built from, so display formatting is
// part of the build output contract, not just logging cosmetics.
package fspath

import (
	"os"
	"path/filepath"
	"strings"
)

// Rel formats path relative to the current working directory for display.
// It falls back to the input path unchanged when the working directory
// cannot be determined or no relative form exists (e.g. different volumes
// on Windows).
func Rel(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}

// Stem returns the final path element with its extension removed.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// WithExt replaces the extension of path with ext. The extension must
// include the leading dot, matching filepath.Ext conventions.
func WithExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
