// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"testing"

	"aab-cli/internal/uibuild"
)

func TestRunUI_UnknownTarget(t *testing.T) {
	uiCmd.SetContext(context.Background())

	err := runUI(uiCmd, []string{"anki19"})
	if !errors.Is(err, uibuild.ErrUnknownTarget) {
		t.Fatalf("runUI() error = %v, want ErrUnknownTarget", err)
	}
}

func TestRunUI_MissingMetadata(t *testing.T) {
	t.Chdir(t.TempDir())
	uiCmd.SetContext(context.Background())

	err := runUI(uiCmd, nil)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("runUI() error = %v, want ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("Code = %d, want 1", exitErr.Code)
	}
}

func TestSupportedTargets(t *testing.T) {
	got := supportedTargets()
	if len(got) != 2 || got[0] != "anki21" || got[1] != "anki20" {
		t.Errorf("supportedTargets() = %v", got)
	}
}
