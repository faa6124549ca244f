// SPDX-License-Identifier: MPL-2.0

package projecttest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

const defaultConfigKey = "figma-plugin"

type (
	// Option configures a test project.
	Option func(*project)

	project struct {
		descriptor map[string]json.RawMessage
		configKey  string
		block      json.RawMessage
		files      map[string]string
		raw        *string
	}
)

// New creates a project directory under t.TempDir() and returns its path.
// By default, the project contains a package.json with:
//   - "name": "test-project"
//   - no plugin configuration block
//
// Usage:
//
//	dir := projecttest.New(t)
//	dir := projecttest.New(t, projecttest.WithPluginConfig(`{"main": "src/main.ts"}`))
//	dir := projecttest.New(t,
//	    projecttest.WithPluginConfig(`{"main": "src/main.ts"}`),
//	    projecttest.WithFile("figma.manifest.jq", `.name = "Patched"`),
//	)
func New(t testing.TB, opts ...Option) string {
	t.Helper()

	p := &project{
		descriptor: map[string]json.RawMessage{"name": json.RawMessage(`"test-project"`)},
		configKey:  defaultConfigKey,
		files:      make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}

	dir := t.TempDir()

	if p.raw != nil {
		writeFile(t, filepath.Join(dir, "package.json"), *p.raw)
	} else if p.descriptor != nil {
		if p.block != nil {
			p.descriptor[p.configKey] = p.block
		}
		data, err := json.MarshalIndent(p.descriptor, "", "  ")
		if err != nil {
			t.Fatalf("failed to encode package.json: %v", err)
		}
		writeFile(t, filepath.Join(dir, "package.json"), string(data))
	}

	for name, content := range p.files {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
	}
	return dir
}

// --- Options ---

// WithPluginConfig stores block (a JSON object) under the plugin config key.
func WithPluginConfig(block string) Option {
	return func(p *project) {
		p.block = json.RawMessage(block)
	}
}

// WithConfigKey changes the package.json key WithPluginConfig writes to.
func WithConfigKey(key string) Option {
	return func(p *project) {
		p.configKey = key
	}
}

// WithRawPackageJSON writes content verbatim as package.json, ignoring
// every other package.json option.
func WithRawPackageJSON(content string) Option {
	return func(p *project) {
		p.raw = &content
	}
}

// WithoutPackageJSON leaves the project without a package.json.
func WithoutPackageJSON() Option {
	return func(p *project) {
		p.descriptor = nil
		p.raw = nil
	}
}

// WithFile adds a file relative to the project root. Slash-separated
// names are converted to the host separator.
func WithFile(name, content string) Option {
	return func(p *project) {
		p.files[name] = content
	}
}

func writeFile(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
