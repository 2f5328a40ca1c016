// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
)

// rcImportPattern matches the resource import lines pyuic appends to
// compiled forms, including the trailing newline when present.
var rcImportPattern = regexp.MustCompile(`(?m)^import .+?_rc$\n?`)

// MungeForm removes auto-generated resource import lines from a compiled
// form. pyuic emits "import <name>_rc" for every paired resource file, but
// resource modules are initialized manually by the add-on, so the automatic
// import must not survive. The file is rewritten in place; a form without
// matching lines is left untouched.
func MungeForm(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read compiled form %s: %w", path, err)
	}

	munged := rcImportPattern.ReplaceAll(data, nil)
	if bytes.Equal(munged, data) {
		return nil
	}

	if err := os.WriteFile(path, munged, 0o644); err != nil {
		return fmt.Errorf("failed to rewrite compiled form %s: %w", path, err)
	}

	return nil
}
