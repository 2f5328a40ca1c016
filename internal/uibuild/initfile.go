// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// InitFileName is the aggregator file generated per output directory.
const InitFileName = "__init__.py"

// headerTemplate is the banner stamped at the top of every generated
// aggregator. Placeholders are expanded from the builder's format context.
const headerTemplate = `# -*- coding: utf-8 -*-
#
# ${display_name} Add-on for Anki
# Copyright (C)  ${years} ${author} <${contact}>
#
# This file was automatically generated by ${title} v${version}
# It is subject to the same licensing terms as the rest of the program
# (see the LICENSE file which accompanies this program).
#
# WARNING! All changes made in this file will be lost!

"""
Initializes generated Qt forms/resources
"""`

// writeInitFile regenerates the aggregator for outDir from scratch: header
// banner, __all__ manifest, and one relative import per module, joined by
// blank lines. Any existing aggregator is overwritten.
func writeInitFile(modules []string, outDir string, format map[string]string) error {
	header := expand(headerTemplate, format)
	manifest := exportManifest(modules)
	imports := importList(modules)

	content := strings.Join([]string{header, manifest, imports}, "\n\n") + "\n"

	path := filepath.Join(outDir, InitFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write init file %s: %w", path, err)
	}

	return nil
}

// exportManifest renders the __all__ assignment, one quoted module per line
// in build order.
func exportManifest(modules []string) string {
	var b strings.Builder
	b.WriteString("__all__ = [\n")
	for i, module := range modules {
		fmt.Fprintf(&b, "    %q", module)
		if i < len(modules)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

// importList renders one relative import statement per module in build order.
func importList(modules []string) string {
	lines := make([]string, len(modules))
	for i, module := range modules {
		lines[i] = "from . import " + module
	}
	return strings.Join(lines, "\n")
}

// expand substitutes ${name} placeholders from the format context. Unknown
// placeholders expand to the empty string.
func expand(template string, format map[string]string) string {
	return os.Expand(template, func(name string) string {
		return format[name]
	})
}
