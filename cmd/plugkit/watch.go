// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"plugkit-cli/internal/config"
	"plugkit-cli/internal/watch"
	"plugkit-cli/pkg/pluginconfig"
)

// runWatchMode builds once, then rebuilds after every settled burst of
// changes until the context is canceled (Ctrl+C). Failed rebuilds are
// reported and the loop keeps going, so the user can fix the file and
// save again.
func runWatchMode(ctx context.Context, app *App, rootFlags *rootFlagValues, flags *buildFlagValues) error {
	res, err := app.settings(ctx, rootFlags.dir, rootFlags.configPath)
	if err != nil {
		return app.fail(classifyConfigError(err))
	}

	dir := rootFlags.dir
	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return err
		}
	}

	req := flags.request(rootFlags, false)
	rebuild := func(ctx context.Context) {
		result, err := app.Manifests.Build(ctx, req)
		if err != nil {
			renderError(app.stderr, err, app.verbose, app.style)
			return
		}
		fmt.Fprintf(app.stdout, "%s Wrote %s\n", SuccessStyle.Render("✓"), result.Path)
	}

	rebuild(ctx)
	fmt.Fprintf(app.stdout, "\n%s Watching for changes (Ctrl+C to stop)...\n", KeyStyle.Render("→"))

	w, err := watch.New(watch.Config{
		Dir:      dir,
		Patterns: watchPatterns(res.Config),
		Ignore:   watchIgnores(dir, flags.output, res.Config),
		Debounce: res.Config.Watch.Debounce,
		Logger:   app.slogger(),
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Fprintf(app.stdout, "%s Detected %d change(s), rebuilding...\n", KeyStyle.Render("→"), len(changed))
			rebuild(ctx)
			return nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	return w.Run(ctx)
}

// watchPatterns swaps the default descriptor name for the configured one.
func watchPatterns(cfg *config.Config) []string {
	patterns := watch.DefaultPatterns()
	if cfg.PackageJSON != "" && cfg.PackageJSON != pluginconfig.PackageJSONFileName {
		patterns = slices.DeleteFunc(patterns, func(p string) bool { return p == pluginconfig.PackageJSONFileName })
		patterns = append(patterns, filepath.ToSlash(cfg.PackageJSON))
	}
	return patterns
}

// watchIgnores keeps the build output from triggering another build.
func watchIgnores(dir, flagOutput string, cfg *config.Config) []string {
	output := flagOutput
	if output == "" {
		output = cfg.Output.Manifest
	}
	if filepath.IsAbs(output) {
		rel, err := filepath.Rel(dir, output)
		if err != nil {
			return nil
		}
		output = rel
	}
	return []string{filepath.ToSlash(filepath.Clean(output))}
}
