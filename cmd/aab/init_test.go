// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"strings"
	"testing"

	"aab-cli/internal/config"
)

func TestRunInit_CreatesStarterFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	data, err := os.ReadFile(config.AddonFileName)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, key := range []string{"display_name", "module_name", "author", "contact"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("scaffold missing key %q:\n%s", key, data)
		}
	}
}

func TestRunInit_ScaffoldPassesSchema(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error = %v", err)
	}

	_, err := config.NewProvider().Load(t.Context(), config.LoadOptions{ProjectDir: dir})
	if err != nil {
		t.Fatalf("Load(scaffold) error = %v", err)
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(config.AddonFileName, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	err := runInit(initCmd, nil)
	if err == nil {
		t.Fatal("runInit() error = nil, want already-exists error")
	}

	initForce = true
	defer func() { initForce = false }()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() with --force error = %v", err)
	}
	data, err := os.ReadFile(config.AddonFileName)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) == "{}" {
		t.Error("runInit() with --force did not overwrite")
	}
}
