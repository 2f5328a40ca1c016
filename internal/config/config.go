// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"aab-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "aab"
	// AddonFileName is the metadata file expected at the project root.
	AddonFileName = "addon.json"
)

//go:embed addon_schema.cue
var addonSchema string

// loadWithOptions performs option-driven metadata loading. Callers that want
// caching can wrap this function.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Addon, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load add-on metadata canceled: %w", ctx.Err())
	default:
	}

	path := opts.AddonFilePath
	if path == "" {
		dir := opts.ProjectDir
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, AddonFileName)
	}

	if !fileExists(path) {
		return nil, "", issue.NewErrorContext().
			WithOperation("load add-on metadata").
			WithResource(path).
			WithSuggestion("Run 'aab init' to create a starter addon.json").
			WithSuggestion("Pass --addon-json to point at a metadata file elsewhere").
			Wrap(fmt.Errorf("addon file not found: %s", path)).
			BuildError()
	}

	v := viper.New()
	if err := loadJSONIntoViper(v, path); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("load add-on metadata").
			WithResource(path).
			WithSuggestion("Check that the file contains valid JSON").
			WithSuggestion("Verify the values match the addon.json schema").
			Wrap(err).
			BuildError()
	}

	var addon Addon
	if err := v.Unmarshal(&addon); err != nil {
		return nil, "", fmt.Errorf("failed to parse add-on metadata: %w", err)
	}

	if err := addon.Validate(); err != nil {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate add-on metadata").
			WithResource(path).
			WithSuggestion("Fill in display_name, module_name, author and contact").
			Wrap(err).
			BuildError()
	}

	return &addon, path, nil
}

// loadJSONIntoViper parses an addon.json file, validates it against the
// #Addon schema, and merges its contents into Viper. JSON is a subset of CUE
// syntax, so the file compiles directly and unifies with the schema.
func loadJSONIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read addon file: %w", err)
	}

	cuectx := cuecontext.New()

	schemaValue := cuectx.CompileString(addonSchema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile addon schema: %w", schemaValue.Err())
	}

	userValue := cuectx.CompileBytes(data, cue.Filename(path))
	if userValue.Err() != nil {
		return fmt.Errorf("invalid addon file: %w", userValue.Err())
	}

	schema := schemaValue.LookupPath(cue.ParsePath("#Addon"))
	unified := schema.Unify(userValue)
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("addon file does not match schema: %w", err)
	}

	var addonMap map[string]any
	if err := unified.Decode(&addonMap); err != nil {
		return fmt.Errorf("failed to decode addon file: %w", err)
	}

	return v.MergeConfigMap(addonMap)
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
