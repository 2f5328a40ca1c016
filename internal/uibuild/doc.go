// SPDX-License-Identifier: MPL-2.0

// Package uibuild compiles Qt Designer forms (.ui) and Qt resource bundles
// (.qrc) into importable Python modules for an add-on's gui package, and
// generates the __init__.py aggregator that re-exports the compiled modules.
//
// Compilation is delegated to the external pyuic/pyrcc toolchain; the major
// version of the tool is selected by the build target. Categories whose
// input folder, matching files, or compiler tool are absent are skipped with
// a warning, leaving any previously built output untouched. Compiler or
// filesystem failures abort the build pass.
package uibuild
