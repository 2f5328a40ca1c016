// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit metadata loading inputs.
type LoadOptions struct {
	// AddonFilePath forces loading from a specific file when set.
	AddonFilePath string
	// ProjectDir overrides the directory searched for addon.json.
	ProjectDir string
}

// Provider loads add-on metadata from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Addon, error)
}

type fileProvider struct{}

// NewProvider creates a metadata provider backed by the filesystem.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads metadata from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Addon, error) {
	addon, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return addon, nil
}
