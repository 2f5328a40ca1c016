// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for aab.
//
// This package implements the Cobra command hierarchy for the aab CLI: the
// root command, the UI build command, metadata inspection, and project
// scaffolding.
package cmd
