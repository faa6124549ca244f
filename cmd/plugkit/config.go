// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"plugkit-cli/internal/config"
)

// newConfigCommand creates the `plugkit config` command tree.
func newConfigCommand(app *App, rootFlags *rootFlagValues) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect plugkit settings",
		Long: `Inspect plugkit settings.

Settings are read from the first file found of:
  - the --config flag
  - plugkit.cue in the project directory
  - plugkit.cue in the user config directory
    (Linux: ~/.config/plugkit, macOS: ~/Library/Application Support/plugkit,
     Windows: %APPDATA%\plugkit)

PLUGKIT_* environment variables override file values, for example
PLUGKIT_OUTPUT_MINIFY=true.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.settings(cmd.Context(), rootFlags.dir, rootFlags.configPath)
			if err != nil {
				return app.fail(classifyConfigError(err))
			}
			showConfig(app.stdout, res)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the effective settings as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.settings(cmd.Context(), rootFlags.dir, rootFlags.configPath)
			if err != nil {
				return app.fail(classifyConfigError(err))
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(res.Config))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show where settings are looked up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(app.stdout, "Project file: %s\n", filepath.Join(rootFlags.dir, config.FileName()))
			fmt.Fprintf(app.stdout, "User file:    %s\n", filepath.Join(cfgDir, config.FileName()))
			return nil
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, res *config.Result) {
	cfg := res.Config
	value := func(v any) string { return SuccessStyle.Render(fmt.Sprint(v)) }

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if res.Path != "" {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), res.Path)
	} else {
		fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("package_json"), value(cfg.PackageJSON))
	fmt.Fprintf(w, "%s: %s\n", KeyStyle.Render("config_key"), value(cfg.ConfigKey))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("output"))
	fmt.Fprintf(w, "  manifest: %s\n", value(cfg.Output.Manifest))
	fmt.Fprintf(w, "  minify: %s\n", value(cfg.Output.Minify))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("override"))
	fmt.Fprintf(w, "  enabled: %s\n", value(cfg.Override.Enabled))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", value(cfg.UI.ColorScheme))
	fmt.Fprintf(w, "  verbose: %s\n", value(cfg.UI.Verbose))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", KeyStyle.Render("watch"))
	fmt.Fprintf(w, "  debounce: %s\n", value(cfg.Watch.Debounce))
}
