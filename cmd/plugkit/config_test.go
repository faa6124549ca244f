// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"plugkit-cli/internal/testutil/projecttest"
	"plugkit-cli/pkg/types"
)

func TestConfigShow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []projecttest.Option
		want []string
	}{
		{
			name: "defaults",
			want: []string{"(using defaults)", "manifest.json", "figma-plugin", "500ms"},
		},
		{
			name: "project file",
			opts: []projecttest.Option{projecttest.WithFile("plugkit.cue", `watch: debounce: "250ms"`)},
			want: []string{"plugkit.cue", "250ms"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := projecttest.New(t, tt.opts...)
			run := runCLI(t, context.Background(), "config", "show", "--dir", dir)
			if run.err != nil {
				t.Fatalf("config show failed: %v\nstderr: %s", run.err, run.stderr.String())
			}
			for _, want := range tt.want {
				if !strings.Contains(run.stdout.String(), want) {
					t.Errorf("stdout missing %q:\n%s", want, run.stdout.String())
				}
			}
		})
	}
}

func TestConfigShow_InvalidSettings(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t, projecttest.WithFile("plugkit.cue", `unknown_key: true`))

	run := runCLI(t, context.Background(), "config", "show", "--dir", dir)

	var exitErr *ExitError
	if !errors.As(run.err, &exitErr) || exitErr.Code != types.ExitConfigError {
		t.Fatalf("error = %v, want ExitError with code %d", run.err, types.ExitConfigError)
	}
	if !strings.Contains(run.stderr.String(), "Failed to load configuration") {
		t.Errorf("stderr missing catalog entry:\n%s", run.stderr.String())
	}
}

func TestConfigDump(t *testing.T) {
	t.Parallel()

	dir := projecttest.New(t, projecttest.WithFile("plugkit.cue", `output: minify: true`))

	run := runCLI(t, context.Background(), "config", "dump", "--dir", dir)
	if run.err != nil {
		t.Fatalf("config dump failed: %v", run.err)
	}
	if !strings.Contains(run.stdout.String(), "minify:   true") {
		t.Errorf("dump does not reflect the project file:\n%s", run.stdout.String())
	}
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	run := runCLI(t, context.Background(), "config", "path", "--dir", dir)
	if run.err != nil {
		t.Fatalf("config path failed: %v", run.err)
	}
	if !strings.Contains(run.stdout.String(), filepath.Join(dir, "plugkit.cue")) {
		t.Errorf("stdout = %q, want the project file path", run.stdout.String())
	}
}
