// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"plugkit-cli/internal/config"
)

// isolatedConfig loads settings without consulting the real user config
// directory.
type isolatedConfig struct {
	userDir string
}

func (p isolatedConfig) LoadResult(ctx context.Context, opts config.LoadOptions) (*config.Result, error) {
	opts.ConfigDirPath = p.userDir
	return config.LoadResult(ctx, opts)
}

type cliRun struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
}

func newTestApp(t *testing.T, run *cliRun) *App {
	t.Helper()
	return NewApp(Dependencies{
		Config: isolatedConfig{userDir: t.TempDir()},
		Stdout: &run.stdout,
		Stderr: &run.stderr,
	})
}

// runCLI executes the root command with args and captures its output.
func runCLI(t *testing.T, ctx context.Context, args ...string) *cliRun {
	t.Helper()

	run := &cliRun{}
	rootCmd := NewRootCommand(newTestApp(t, run))
	rootCmd.SetArgs(args)
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	run.err = rootCmd.ExecuteContext(ctx)
	return run
}
