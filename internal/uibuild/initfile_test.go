// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testFormat = map[string]string{
	"display_name": "Example Add-on",
	"author":       "Jane Doe",
	"contact":      "jane@example.com",
	"title":        "aab",
	"version":      "1.0.0",
	"years":        "2016-2019",
}

func TestWriteInitFile_Content(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := writeInitFile([]string{"dialog", "main"}, dir, testFormat); err != nil {
		t.Fatalf("writeInitFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, InitFileName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)

	wantLines := []string{
		"# Example Add-on Add-on for Anki",
		"# Copyright (C)  2016-2019 Jane Doe <jane@example.com>",
		"# This file was automatically generated by aab v1.0.0",
		"# WARNING! All changes made in this file will be lost!",
	}
	for _, line := range wantLines {
		if !strings.Contains(content, line) {
			t.Errorf("init file missing line %q:\n%s", line, content)
		}
	}

	wantManifest := "__all__ = [\n    \"dialog\",\n    \"main\"\n]"
	if !strings.Contains(content, wantManifest) {
		t.Errorf("init file missing manifest %q:\n%s", wantManifest, content)
	}

	wantImports := "from . import dialog\nfrom . import main\n"
	if !strings.HasSuffix(content, wantImports) {
		t.Errorf("init file does not end with %q:\n%s", wantImports, content)
	}

	if !strings.HasSuffix(content, "\n") {
		t.Error("init file missing trailing newline")
	}
}

func TestWriteInitFile_PreservesModuleOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	modules := []string{"zebra", "alpha", "middle"}
	if err := writeInitFile(modules, dir, testFormat); err != nil {
		t.Fatalf("writeInitFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, InitFileName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	content := string(data)

	last := -1
	for _, module := range modules {
		idx := strings.Index(content, "from . import "+module)
		if idx < 0 {
			t.Fatalf("init file missing import for %q", module)
		}
		if idx < last {
			t.Errorf("import for %q out of order", module)
		}
		last = idx
	}
}

func TestWriteInitFile_SingleModuleManifestHasNoComma(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := writeInitFile([]string{"main"}, dir, testFormat); err != nil {
		t.Fatalf("writeInitFile() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, InitFileName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	want := "__all__ = [\n    \"main\"\n]"
	if !strings.Contains(string(data), want) {
		t.Errorf("init file manifest = ..., want %q:\n%s", want, data)
	}
}

func TestWriteInitFile_OverwritesExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, InitFileName)
	if err := os.WriteFile(path, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := writeInitFile([]string{"main"}, dir, testFormat); err != nil {
		t.Fatalf("writeInitFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if strings.Contains(string(data), "stale content") {
		t.Error("init file still contains stale content")
	}
}

func TestWriteInitFile_Deterministic(t *testing.T) {
	t.Parallel()

	dirA := t.TempDir()
	dirB := t.TempDir()
	modules := []string{"dialog", "main"}

	if err := writeInitFile(modules, dirA, testFormat); err != nil {
		t.Fatalf("writeInitFile() error = %v", err)
	}
	if err := writeInitFile(modules, dirB, testFormat); err != nil {
		t.Fatalf("writeInitFile() error = %v", err)
	}

	a, err := os.ReadFile(filepath.Join(dirA, InitFileName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dirB, InitFileName))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(a) != string(b) {
		t.Error("init file content differs between identical runs")
	}
}
