// SPDX-License-Identifier: MPL-2.0

// Package config loads add-on build metadata using Viper with JSON as the
// file format.
//
// Metadata is read from addon.json at the project root. The file is
// validated against a CUE schema (addon_schema.cue) before unmarshaling to
// ensure type safety and clear error messages for invalid values. The loaded
// Addon value is passed explicitly into consumers; there is no package-level
// configuration state.
package config
