// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"plugkit-cli/internal/config"
	"plugkit-cli/pkg/manifest"
	"plugkit-cli/pkg/manifest/override"
)

type (
	// App is the composition root of the CLI. Command handlers receive it
	// and delegate through its services.
	App struct {
		Config    ConfigProvider
		Manifests ManifestService
		stdout    io.Writer
		stderr    io.Writer
		logger    *log.Logger

		// verbose and style are resolved from flags and settings before
		// each command runs.
		verbose bool
		style   string
	}

	// Dependencies are the injection points of NewApp. Nil fields get
	// production defaults.
	Dependencies struct {
		Config    ConfigProvider
		Manifests ManifestService
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads tool settings.
	ConfigProvider interface {
		LoadResult(ctx context.Context, opts config.LoadOptions) (*config.Result, error)
	}

	// BuildRequest carries the CLI inputs of a manifest build. Zero values
	// defer to the loaded settings.
	BuildRequest struct {
		// Dir is the project directory. Empty means the working directory.
		Dir string
		// ConfigPath is the explicit --config value.
		ConfigPath string
		// Output overrides output.manifest.
		Output string
		// ConfigKey overrides config_key.
		ConfigKey string
		// Minify forces compact output; it cannot turn off output.minify.
		Minify bool
		// NoOverride skips figma.manifest.go and figma.manifest.jq.
		NoOverride bool
		// DryRun encodes without writing.
		DryRun bool
	}

	// ManifestService compiles a project's plugin configuration.
	ManifestService interface {
		Build(ctx context.Context, req BuildRequest) (*manifest.BuildResult, error)
	}

	manifestService struct {
		config ConfigProvider
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Manifests == nil {
		deps.Manifests = &manifestService{config: deps.Config}
	}

	return &App{
		Config:    deps.Config,
		Manifests: deps.Manifests,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		logger:    newLogger(deps.Stderr),
		style:     "auto",
	}
}

// settings loads the tool settings for req's project.
func (a *App) settings(ctx context.Context, dir, configPath string) (*config.Result, error) {
	return a.Config.LoadResult(ctx, config.LoadOptions{
		ConfigFilePath: configPath,
		ProjectDir:     dir,
	})
}

// prepare applies ui settings before a command runs. A settings failure
// is ignored here; the command reports it when it loads them itself.
func (a *App) prepare(ctx context.Context, flags *rootFlagValues) {
	verbose := flags.verbose
	if res, err := a.settings(ctx, flags.dir, flags.configPath); err == nil {
		verbose = verbose || res.Config.UI.Verbose
		a.style = string(res.Config.UI.ColorScheme)
	}
	a.verbose = verbose
	a.setVerbose(verbose)
}

// fail renders err and returns the ExitError for the handler.
func (a *App) fail(err error) error {
	return renderError(a.stderr, err, a.verbose, a.style)
}

// Build resolves req against the settings, loads the override hook and
// runs the manifest pipeline. Failures come back as classified
// *issue.ActionableError values.
func (s *manifestService) Build(ctx context.Context, req BuildRequest) (*manifest.BuildResult, error) {
	res, err := s.config.LoadResult(ctx, config.LoadOptions{
		ConfigFilePath: req.ConfigPath,
		ProjectDir:     req.Dir,
	})
	if err != nil {
		return nil, classifyConfigError(err)
	}

	opts, err := buildOptions(req, res.Config)
	if err != nil {
		return nil, err
	}

	result, err := manifest.Build(ctx, opts)
	if err != nil {
		return nil, classifyBuildError(err, opts)
	}
	return result, nil
}

// buildOptions merges flags over settings. Flags win when set.
func buildOptions(req BuildRequest, cfg *config.Config) (manifest.BuildOptions, error) {
	dir := req.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return manifest.BuildOptions{}, err
		}
		dir = wd
	}

	opts := manifest.BuildOptions{
		Dir:         dir,
		PackageJSON: cfg.PackageJSON,
		ConfigKey:   cfg.ConfigKey,
		OutputPath:  cfg.Output.Manifest,
		Minify:      cfg.Output.Minify || req.Minify,
		DryRun:      req.DryRun,
	}
	if req.ConfigKey != "" {
		opts.ConfigKey = req.ConfigKey
	}
	if req.Output != "" {
		opts.OutputPath = req.Output
	}

	if cfg.Override.Enabled && !req.NoOverride {
		hook, err := override.Resolve(dir)
		if err != nil {
			return manifest.BuildOptions{}, classifyBuildError(err, opts)
		}
		opts.Hook = hook
	}
	return opts, nil
}
