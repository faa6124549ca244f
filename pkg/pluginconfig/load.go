// SPDX-License-Identifier: MPL-2.0

package pluginconfig

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"plugkit-cli/pkg/cueutil"
)

//go:embed raw_config_schema.cue
var rawConfigSchema []byte

// ErrMalformedPackageJSON is returned when package.json is not valid JSON.
var ErrMalformedPackageJSON = errors.New("malformed package.json")

// LoadOptions controls where Load looks for the configuration.
type LoadOptions struct {
	// Dir is the project directory. Defaults to the working directory.
	Dir string

	// PackageJSON is the descriptor file name relative to Dir.
	// Defaults to PackageJSONFileName.
	PackageJSON string

	// ConfigKey is the package.json key holding the block.
	// Defaults to ConfigKey.
	ConfigKey string
}

// Path returns the descriptor path the options resolve to.
func (o LoadOptions) Path() string {
	name := o.PackageJSON
	if name == "" {
		name = PackageJSONFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.Dir, name)
}

func (o LoadOptions) key() string {
	if o.ConfigKey == "" {
		return ConfigKey
	}
	return o.ConfigKey
}

// Load reads package.json and returns the normalized plugin configuration.
// A missing package.json, a missing block and an empty block all yield
// DefaultConfig.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load plugin config canceled: %w", ctx.Err())
	default:
	}

	path := opts.Path()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no package.json found, using default plugin config", "path", path)
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return ParsePackageJSON(data, path, opts.key())
}

// ParsePackageJSON extracts the block stored under key from package.json
// content, validates it against the schema and normalizes it.
func ParsePackageJSON(data []byte, filename, key string) (*Config, error) {
	var descriptor map[string]json.RawMessage
	if err := json.Unmarshal(data, &descriptor); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPackageJSON, filename, err)
	}

	block, ok := descriptor[key]
	if !ok || isEmptyObject(block) {
		slog.Debug("no plugin config block, using defaults", "path", filename, "key", key)
		return DefaultConfig(), nil
	}

	raw, err := DecodeRawConfig(block, filename)
	if err != nil {
		return nil, err
	}
	// A block with keys is never the default, even when none of them is
	// one Parse models.
	return parse(raw)
}

// DecodeRawConfig validates a raw configuration block against the embedded
// schema and decodes it. Required fields (a menu command's name, a relaunch
// button's name, a file's src) must be present; optional ones may be absent.
func DecodeRawConfig(block []byte, filename string) (*RawConfig, error) {
	if _, err := cueutil.ValidateJSON(
		rawConfigSchema,
		block,
		"#RawConfig",
		cueutil.WithFilename(filename),
	); err != nil {
		return nil, err
	}

	var raw RawConfig
	if err := json.Unmarshal(block, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &raw, nil
}

// isEmptyObject reports whether block is null or an object without keys.
func isEmptyObject(block json.RawMessage) bool {
	trimmed := bytes.TrimSpace(block)
	if bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return false
	}
	return len(obj) == 0
}
