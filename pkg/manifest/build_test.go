// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"plugkit-cli/internal/testutil/projecttest"
	"plugkit-cli/pkg/cueutil"
	"plugkit-cli/pkg/pluginconfig"
)

func TestBuild_WritesManifest(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t, projecttest.WithPluginConfig(`{"name": "Hello World", "main": "src/main.ts", "ui": "src/ui.ts"}`))

	result, err := Build(context.Background(), BuildOptions{Dir: dir})
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if want := filepath.Join(dir, FileName); result.Path != want {
		t.Errorf("Path = %q, want %q", result.Path, want)
	}
	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("failed to read manifest: %v", err)
	}
	want := `{
  "api": "1.0.0",
  "editorType": [
    "figma"
  ],
  "name": "Hello World",
  "id": "hello-world",
  "main": "build/main.js",
  "ui": "build/ui.js"
}
`
	if string(data) != want {
		t.Errorf("manifest =\n%s\nwant\n%s", data, want)
	}
	if string(result.Data) != want {
		t.Error("BuildResult.Data differs from the written file")
	}
}

func TestBuild_MissingPackageJSONUsesDefaults(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t, projecttest.WithoutPackageJSON())

	result, err := Build(context.Background(), BuildOptions{Dir: dir, Minify: true})
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	want := `{"api":"1.0.0","editorType":["figma"],"name":"figma-plugin","id":"figma-plugin","main":"build/main.js"}` + "\n"
	if string(result.Data) != want {
		t.Errorf("manifest = %s, want %s", result.Data, want)
	}
}

func TestBuild_ErrorWritesNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		block   string
		hook    Hook
		wantErr error
	}{
		{
			name:    "missing main",
			block:   `{"name": "P", "menu": ["-"]}`,
			wantErr: pluginconfig.ErrConfiguration,
		},
		{
			name:    "relaunch button without main",
			block:   `{"name": "P", "main": "src/main.ts", "relaunchButtons": {"x": {"name": "X"}}}`,
			wantErr: pluginconfig.ErrConfiguration,
		},
		{
			name:    "only host keys",
			block:   `{"networkAccess": {"allowedDomains": ["none"]}}`,
			wantErr: pluginconfig.ErrConfiguration,
		},
		{
			name:    "menu command without name",
			block:   `{"name": "P", "menu": [{"main": "a.ts"}]}`,
			wantErr: cueutil.ErrValidation,
		},
		{
			name:  "hook failure",
			block: `{"name": "P", "main": "src/main.ts"}`,
			hook: HookFunc(func(context.Context, Document) (Document, error) {
				return nil, errHookBoom
			}),
			wantErr: errHookBoom,
		},
		{
			name:  "hook returns nothing",
			block: `{"name": "P", "main": "src/main.ts"}`,
			hook: HookFunc(func(context.Context, Document) (Document, error) {
				return nil, nil
			}),
			wantErr: ErrHookReturnedNil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := projecttest.New(t, projecttest.WithPluginConfig(tt.block))

			_, err := Build(context.Background(), BuildOptions{Dir: dir, Hook: tt.hook})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if _, statErr := os.Stat(filepath.Join(dir, FileName)); !errors.Is(statErr, fs.ErrNotExist) {
				t.Errorf("manifest should not be written on failure, stat error = %v", statErr)
			}
		})
	}
}

var errHookBoom = errors.New("boom")

func TestBuild_HookReplacesDocument(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t, projecttest.WithPluginConfig(`{"name": "P", "main": "src/main.ts"}`))

	hook := HookFunc(func(_ context.Context, doc Document) (Document, error) {
		doc["name"] = "Patched"
		doc["documentAccess"] = "dynamic-page"
		delete(doc, "editorType")
		return doc, nil
	})

	result, err := Build(context.Background(), BuildOptions{Dir: dir, Hook: hook, Minify: true})
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	want := `{"api":"1.0.0","name":"Patched","id":"p","main":"build/main.js","documentAccess":"dynamic-page"}` + "\n"
	if string(result.Data) != want {
		t.Errorf("manifest = %s, want %s", result.Data, want)
	}
	if result.Manifest.Name != "P" {
		t.Errorf("BuildResult.Manifest.Name = %q, want the pre-hook value P", result.Manifest.Name)
	}
}

func TestBuild_DryRunAndOutputPath(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t,
		projecttest.WithConfigKey("plugin"),
		projecttest.WithPluginConfig(`{"name": "P", "main": "src/main.ts"}`),
	)

	opts := BuildOptions{Dir: dir, ConfigKey: "plugin", OutputPath: filepath.Join("dist", "manifest.json"), DryRun: true}
	result, err := Build(context.Background(), opts)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if want := filepath.Join(dir, "dist", "manifest.json"); result.Path != want {
		t.Errorf("Path = %q, want %q", result.Path, want)
	}
	if !strings.Contains(string(result.Data), `"name": "P"`) {
		t.Errorf("dry run data should hold the manifest, got %s", result.Data)
	}
	if _, err := os.Stat(result.Path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("dry run must not write, stat error = %v", err)
	}

	opts.DryRun = false
	if _, err := Build(context.Background(), opts); err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}
	if _, err := os.Stat(result.Path); err != nil {
		t.Errorf("manifest not written to custom output path: %v", err)
	}
}

func TestBuild_Canceled(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t, projecttest.WithPluginConfig(`{"main": "src/main.ts"}`))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Build(ctx, BuildOptions{Dir: dir}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Build() error = %v, want context.Canceled", err)
	}
}

func TestBuild_WriteFailure(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t,
		projecttest.WithPluginConfig(`{"main": "src/main.ts"}`),
		projecttest.WithFile("blocked", "not a directory"),
	)

	_, err := Build(context.Background(), BuildOptions{Dir: dir, OutputPath: "blocked/manifest.json"})
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("Build() error = %v, want ErrWriteFailed", err)
	}
}
