// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"plugkit-cli/pkg/pluginconfig"
)

var (
	// ErrHookReturnedNil is returned when an override hook yields no document.
	ErrHookReturnedNil = errors.New("manifest override returned no document")

	// ErrWriteFailed wraps every failure to store an encoded manifest.
	ErrWriteFailed = errors.New("failed to write manifest")
)

type (
	// Hook post-processes the assembled manifest document. Whatever it
	// returns is serialized as is.
	Hook interface {
		Apply(ctx context.Context, doc Document) (Document, error)
	}

	// HookFunc adapts an ordinary function to the Hook interface.
	HookFunc func(ctx context.Context, doc Document) (Document, error)

	// BuildOptions configures a Build run.
	BuildOptions struct {
		// Dir is the project directory holding package.json.
		Dir string

		// PackageJSON overrides the descriptor file name.
		PackageJSON string

		// ConfigKey overrides the package.json key of the plugin block.
		ConfigKey string

		// OutputPath is where the manifest is written. Relative paths are
		// resolved against Dir. Defaults to FileName.
		OutputPath string

		// Minify selects the compact encoding instead of two-space indentation.
		Minify bool

		// Hook, when non-nil, post-processes the document before encoding.
		Hook Hook

		// DryRun skips the write and only returns the encoded bytes.
		DryRun bool
	}

	// BuildResult describes a completed build.
	BuildResult struct {
		// Path is the output location (written unless DryRun was set).
		Path string
		// Data is the encoded manifest.
		Data []byte
		// Manifest is the assembled manifest before the hook ran.
		Manifest *Manifest
	}
)

// Apply calls f(ctx, doc).
func (f HookFunc) Apply(ctx context.Context, doc Document) (Document, error) {
	return f(ctx, doc)
}

// OutputFile returns the resolved output path.
func (o BuildOptions) OutputFile() string {
	out := o.OutputPath
	if out == "" {
		out = FileName
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(o.Dir, out)
}

// Build loads the project configuration, assembles the manifest, applies
// the hook and writes the encoded result. On any error nothing is written.
func Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	cfg, err := pluginconfig.Load(ctx, pluginconfig.LoadOptions{
		Dir:         opts.Dir,
		PackageJSON: opts.PackageJSON,
		ConfigKey:   opts.ConfigKey,
	})
	if err != nil {
		return nil, err
	}

	m, err := Assemble(cfg)
	if err != nil {
		return nil, err
	}

	doc := m.Document()
	if opts.Hook != nil {
		slog.Debug("applying manifest override")
		doc, err = opts.Hook.Apply(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("manifest override failed: %w", err)
		}
		if doc == nil {
			return nil, ErrHookReturnedNil
		}
	}

	data, err := Encode(doc, opts.Minify)
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}

	result := &BuildResult{Path: opts.OutputFile(), Data: data, Manifest: m}
	if opts.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build canceled: %w", err)
	}
	if err := Write(result.Path, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	slog.Debug("manifest written", "path", result.Path, "bytes", len(data))
	return result, nil
}
