// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type buildFlagValues struct {
	output     string
	configKey  string
	minify     bool
	noOverride bool
	watch      bool
}

func newBuildCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	flags := &buildFlagValues{}

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Write the plugin manifest",
		Long: `Compile the plugin configuration in package.json and write manifest.json.

Nothing is written when the configuration is invalid or the override hook
fails. With --watch, plugkit rebuilds whenever package.json, plugkit.cue or
an override file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch {
				return runWatchMode(cmd.Context(), app, rootFlags, flags)
			}
			return runBuild(cmd.Context(), app, rootFlags, flags)
		},
	}

	addCompileFlags(buildCmd.Flags(), flags)
	buildCmd.Flags().StringVarP(&flags.output, "output", "o", "", "manifest path, relative to the project directory (default from settings)")
	buildCmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "rebuild when an input file changes")

	return buildCmd
}

// addCompileFlags registers the flags shared by build and manifest.
func addCompileFlags(fs *pflag.FlagSet, flags *buildFlagValues) {
	fs.StringVar(&flags.configKey, "config-key", "", `package.json key of the plugin block (default "figma-plugin")`)
	fs.BoolVar(&flags.minify, "minify", false, "write compact JSON")
	fs.BoolVar(&flags.noOverride, "no-override", false, "ignore figma.manifest.go and figma.manifest.jq")
}

func (f *buildFlagValues) request(rootFlags *rootFlagValues, dryRun bool) BuildRequest {
	return BuildRequest{
		Dir:        rootFlags.dir,
		ConfigPath: rootFlags.configPath,
		Output:     f.output,
		ConfigKey:  f.configKey,
		Minify:     f.minify,
		NoOverride: f.noOverride,
		DryRun:     dryRun,
	}
}

func runBuild(ctx context.Context, app *App, rootFlags *rootFlagValues, flags *buildFlagValues) error {
	result, err := app.Manifests.Build(ctx, flags.request(rootFlags, false))
	if err != nil {
		return app.fail(err)
	}
	fmt.Fprintf(app.stdout, "%s Wrote %s\n", SuccessStyle.Render("✓"), result.Path)
	return nil
}

func newManifestCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	flags := &buildFlagValues{}

	manifestCmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the plugin manifest without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Manifests.Build(cmd.Context(), flags.request(rootFlags, true))
			if err != nil {
				return app.fail(err)
			}
			_, err = app.stdout.Write(result.Data)
			return err
		},
	}

	addCompileFlags(manifestCmd.Flags(), flags)
	return manifestCmd
}
