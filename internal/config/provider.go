// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the user config directory lookup when set.
	ConfigDirPath string
	// ProjectDir is searched for plugkit.cue before the user config
	// directory. Empty means the working directory.
	ProjectDir string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
	LoadResult(ctx context.Context, opts LoadOptions) (*Result, error)
}

// Result is a loaded configuration together with the file it came from.
type Result struct {
	Config *Config
	// Path is the config file that was loaded, or "" when only defaults
	// and environment overrides apply.
	Path string
}

type fileProvider struct{}

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	res, err := LoadResult(ctx, opts)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadResult is the package-level LoadResult.
func (p *fileProvider) LoadResult(ctx context.Context, opts LoadOptions) (*Result, error) {
	return LoadResult(ctx, opts)
}

// LoadResult loads configuration and reports which file was used.
func LoadResult(ctx context.Context, opts LoadOptions) (*Result, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Result{Config: cfg, Path: path}, nil
}
